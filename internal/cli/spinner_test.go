package cli

import (
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("Testing...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
}

func TestSpinnerDoubleStop(t *testing.T) {
	s := newSpinner("Testing...")
	s.Start()
	s.Stop()
	s.Stop() // must not panic or block
}
