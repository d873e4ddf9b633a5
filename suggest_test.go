package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestMessageIncludesNearestMatch(t *testing.T) {
	known := []string{"print", "drop", "dup"}
	got := suggestMessage("pint", known)
	assert.Contains(t, got, "print")
	assert.Contains(t, got, "did you mean")
}

func TestSuggestMessageFallsBackWithoutAMatch(t *testing.T) {
	known := []string{"print", "drop", "dup"}
	got := suggestMessage("zzzzzzzzzz", known)
	assert.NotContains(t, got, "did you mean")
}
