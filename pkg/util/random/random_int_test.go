package random

import (
	"strings"
	"testing"
)

func TestNewId(t *testing.T) {
	id := NewId("C")
	if !strings.HasPrefix(id, "C") || len(id) != 1+6+11 {
		t.Fatalf("unexpected id %q", id)
	}
	if NewId("C") == id {
		t.Fatalf("ids should not repeat")
	}
}
