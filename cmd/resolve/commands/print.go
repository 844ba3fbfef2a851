package commands

import (
	"fmt"
	"io"

	"github.com/forgepm/resolve/internal/core/domain"
)

func printChanges(w io.Writer, changes []domain.ReconciledChange) {
	if len(changes) == 0 {
		_, _ = fmt.Fprintln(w, "no changes")
		return
	}
	for _, c := range changes {
		switch c.Change.Kind {
		case domain.ChangeAdded:
			_, _ = fmt.Fprintf(w, "+ %s (%s)\n", c.Package.Identity, c.Package.Location)
		case domain.ChangeUpdated:
			_, _ = fmt.Fprintf(w, "~ %s (%s)\n", c.Package.Identity, c.Package.Location)
		case domain.ChangeRemoved:
			_, _ = fmt.Fprintf(w, "- %s\n", c.Package.Identity)
		}
	}
}
