package domain_test

import (
	"testing"

	"github.com/forgepm/resolve/internal/core/domain"
)

func TestComputeOriginHash_Deterministic(t *testing.T) {
	manifests := [][]byte{[]byte("root one"), []byte("root two")}
	locations := []string{"github.com/a/b", "github.com/c/d"}

	first := domain.ComputeOriginHash(manifests, locations)
	second := domain.ComputeOriginHash(manifests, locations)

	if first != second {
		t.Fatalf("expected deterministic hash, got %q then %q", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64-character hex sha256 digest, got %d chars", len(first))
	}
}

func TestComputeOriginHash_SensitiveToManifestContent(t *testing.T) {
	locations := []string{"github.com/a/b"}

	original := domain.ComputeOriginHash([][]byte{[]byte("root")}, locations)
	changed := domain.ComputeOriginHash([][]byte{[]byte("root!")}, locations)

	if original == changed {
		t.Fatal("expected differing manifest bytes to produce different hashes")
	}
}

func TestComputeOriginHash_SensitiveToLocationOrder(t *testing.T) {
	manifests := [][]byte{[]byte("root")}

	forward := domain.ComputeOriginHash(manifests, []string{"github.com/a/b", "github.com/c/d"})
	reversed := domain.ComputeOriginHash(manifests, []string{"github.com/c/d", "github.com/a/b"})

	if forward == reversed {
		t.Fatal("expected location order to affect the hash")
	}
}

func TestComputeOriginHash_EmptyInputsAreStable(t *testing.T) {
	first := domain.ComputeOriginHash(nil, nil)
	second := domain.ComputeOriginHash([][]byte{}, []string{})

	if first != second {
		t.Fatalf("expected nil and empty slices to hash identically, got %q and %q", first, second)
	}
}
