// Package artifacts implements the managed-dependency on-disk directory
// layout spec.md §6 describes: one subdirectory per checked-out or
// downloaded package, named after its canonical identity.
package artifacts

import (
	"os"
	"path/filepath"

	"github.com/forgepm/resolve/internal/core/domain"
	"go.trai.ch/zerr"
)

// Remover implements checkout.ArtifactRemover over a plain directory tree.
type Remover struct {
	Root string
}

// NewRemover constructs a Remover rooted at root.
func NewRemover(root string) *Remover {
	return &Remover{Root: root}
}

// RemoveArtifact deletes the artifact directory for id, if it exists.
func (r *Remover) RemoveArtifact(id domain.PackageIdentity) error {
	path := r.PathFor(id)
	if err := os.RemoveAll(path); err != nil {
		return zerr.Wrap(err, "failed to remove artifact directory")
	}
	return nil
}

// PathFor returns the on-disk directory an identity's artifact is stored under.
func (r *Remover) PathFor(id domain.PackageIdentity) string {
	return filepath.Join(r.Root, sanitize(id.String()))
}

func sanitize(identity string) string {
	out := make([]rune, 0, len(identity))
	for _, r := range identity {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
