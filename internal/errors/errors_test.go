package errors

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(errors.New("storage not loaded")); got != "Error: storage not loaded" {
		t.Errorf("Format() = %q, want \"Error: storage not loaded\"", got)
	}
}
