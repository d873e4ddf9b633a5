/* Package main: Forge, a stack-based scripting language

Forge programs are flat token streams executed by a single interpreter
loop: no separate parse tree, no bytecode. Every token is either a
literal (an integer, a float, a quoted string, or one of true/false/none),
a primitive name looked up in a fixed registry, a user-defined word
introduced by def, or one of the four block-forming control-flow keywords
(if, times, while, for).

There is exactly one namespace for variables and one for functions; both
are visible to every frame, because functions share the caller's stack
and variables outright -- there is no lexical scoping and no call-local
state beyond what a function chooses to stash and later retrieve.

The data stack, the variable table, the function dictionary, and the
memory arena together make up an Interpreter. A program is just a
sequence of tokens run through Interpreter.Exec; a REPL line and a whole
source file are executed exactly the same way.

The memory arena (internal/arena) is a separate, fixed-size byte store
addressed by alloc/free/read/write primitives. It models a C-like heap:
first-fit allocation, free-list coalescing, and no bounds checking against
live allocations on read/write -- an out-of-bounds or stale pointer access
succeeds as long as it stays inside the arena, by design.
*/
package main
