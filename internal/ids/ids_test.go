package ids

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewID_IsUUIDv4(t *testing.T) {
	id := NewID()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("parse %q: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("version=%d", parsed.Version())
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}
