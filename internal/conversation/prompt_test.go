package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_Pure(t *testing.T) {
	a := BuildPrompt("ctx", "input", "history")
	b := BuildPrompt("ctx", "input", "history")
	assert.Equal(t, a, b)
}

func TestBuildPrompt_ContainsAllSections(t *testing.T) {
	got := BuildPrompt(
		"Type: transcript\nContent: prefers email\n\n",
		"Do you have five minutes?",
		"Salesperson: hello\nProspect: hi",
	)

	assert.Contains(t, got, "sales prospect")
	assert.Contains(t, got, "never the salesperson")
	assert.Contains(t, got, "Type: transcript\nContent: prefers email")
	assert.Contains(t, got, "Do you have five minutes?")
	assert.Contains(t, got, "Salesperson: hello\nProspect: hi")
}

func TestBuildPrompt_DistinctInputsDistinctPrompts(t *testing.T) {
	assert.NotEqual(t,
		BuildPrompt("", "message one", ""),
		BuildPrompt("", "message two", ""),
	)
}

func TestBuildPrompt_EmptyContextStillWellFormed(t *testing.T) {
	got := BuildPrompt("", "hello", "")
	assert.Contains(t, got, "Background information about you:\n\n")
	assert.Contains(t, got, "hello")
}
