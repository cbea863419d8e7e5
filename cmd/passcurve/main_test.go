package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodes(t *testing.T) {
	// Failures exit with 2; 1 is reserved for a future distinct failure class.
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 2, ExitError)
}
