package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KarthikSBhattar/forge-lang/internal/arena"
)

func main() {
	var (
		trace     bool
		arenaSize int
	)

	root := &cobra.Command{
		Use:           "forge [file]",
		Short:         "Run a Forge program, or start a REPL if no file is given",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []Option{WithArenaSize(arenaSize), WithStdout(os.Stdout)}
			if trace {
				opts = append(opts, WithTrace(os.Stderr))
			}
			if len(args) == 1 {
				return runFile(args[0], opts)
			}
			return runREPL(opts)
		},
	}

	root.PersistentFlags().BoolVar(&trace, "trace", false, "log each primitive invocation to stderr")
	root.PersistentFlags().IntVar(&arenaSize, "arena-size", arena.DefaultSize, "memory arena size in bytes")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runFile(path string, opts []Option) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	ip := New(append(opts, WithStdin(os.Stdin))...)
	if err := ip.Exec(Lex(string(src))); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return nil
}

func runREPL(opts []Option) error {
	ip := New(append(opts, WithStdin(os.Stdin))...)
	fmt.Fprintln(os.Stdout, "Forge REPL -- type 'exit' to quit")
	// The input primitive reads from ip.Stdin too, so the REPL prompt must
	// read lines from that same buffered reader rather than a second one
	// layered over os.Stdin -- two independent bufio readers would race
	// for bytes.
	for {
		fmt.Fprint(os.Stdout, ">> ")
		line, err := ip.Stdin.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "exit" {
			return nil
		}
		if line != "" {
			if execErr := ip.Exec(Lex(line)); execErr != nil {
				fmt.Fprintln(os.Stdout, "Error:", execErr)
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
