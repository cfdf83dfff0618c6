package testutil

import (
	"log"
	"os"
	"testing"
)

// TestLogger returns a logger prefixed with the running test's name so
// interleaved room-actor output stays attributable. Output goes to stdout
// rather than t.Log because actor goroutines can outlive the test body.
func TestLogger(t *testing.T) *log.Logger {
	return log.New(os.Stdout, t.Name()+" ", log.LstdFlags)
}
