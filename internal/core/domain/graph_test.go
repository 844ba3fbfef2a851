package domain_test

import (
	"testing"

	"github.com/forgepm/resolve/internal/core/domain"
	"go.trai.ch/zerr"
)

func rootRef(identity string) domain.PackageReference {
	return domain.PackageReference{
		Identity: domain.NewPackageIdentity(identity),
		Kind:     domain.ReferenceKindRoot,
		Location: identity,
	}
}

func TestRequiredPackageGraph_AddPackage(t *testing.T) {
	g := domain.NewRequiredPackageGraph()
	ref := rootRef("example.com/a")

	if err := g.AddPackage(ref, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := g.AddPackage(ref, nil)
	if err == nil {
		t.Fatal("expected error when adding duplicate identity, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if identity, ok := meta["identity"].(string); !ok || identity != ref.Identity.String() {
		t.Errorf("expected metadata identity=%s, got %v", ref.Identity.String(), meta["identity"])
	}
}

func TestRequiredPackageGraph_Validate_MissingDependency(t *testing.T) {
	g := domain.NewRequiredPackageGraph()
	missing := domain.NewPackageIdentity("example.com/missing")

	if err := g.AddPackage(rootRef("example.com/a"), []domain.PackageIdentity{missing}); err != nil {
		t.Fatalf("failed to add package a: %v", err)
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for missing dependency, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if dep, ok := meta["dependency"].(string); !ok || dep != missing.String() {
		t.Errorf("expected metadata dependency=%s, got %v", missing.String(), meta["dependency"])
	}
}

func TestRequiredPackageGraph_Validate_Cycle(t *testing.T) {
	g := domain.NewRequiredPackageGraph()
	a := domain.NewPackageIdentity("example.com/a")
	b := domain.NewPackageIdentity("example.com/b")

	if err := g.AddPackage(rootRef("example.com/a"), []domain.PackageIdentity{b}); err != nil {
		t.Fatalf("failed to add package a: %v", err)
	}
	if err := g.AddPackage(rootRef("example.com/b"), []domain.PackageIdentity{a}); err != nil {
		t.Fatalf("failed to add package b: %v", err)
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if cycle, ok := meta["cycle"].(string); !ok || cycle == "" {
		t.Errorf("expected metadata cycle to be a non-empty string, got %v", meta["cycle"])
	}
}

func TestRequiredPackageGraph_Validate_Acyclic(t *testing.T) {
	g := domain.NewRequiredPackageGraph()
	b := domain.NewPackageIdentity("example.com/b")
	c := domain.NewPackageIdentity("example.com/c")

	if err := g.AddPackage(rootRef("example.com/a"), []domain.PackageIdentity{b}); err != nil {
		t.Fatalf("failed to add package a: %v", err)
	}
	if err := g.AddPackage(rootRef("example.com/b"), []domain.PackageIdentity{c}); err != nil {
		t.Fatalf("failed to add package b: %v", err)
	}
	if err := g.AddPackage(rootRef("example.com/c"), nil); err != nil {
		t.Fatalf("failed to add package c: %v", err)
	}

	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestRequiredPackageGraph_Walk(t *testing.T) {
	g := domain.NewRequiredPackageGraph()
	refs := []domain.PackageReference{
		rootRef("example.com/a"),
		rootRef("example.com/b"),
		rootRef("example.com/c"),
	}
	for _, ref := range refs {
		if err := g.AddPackage(ref, nil); err != nil {
			t.Fatalf("failed to add package %s: %v", ref.Identity, err)
		}
	}

	seen := make(map[domain.PackageIdentity]bool)
	count := 0
	for ref := range g.Walk() {
		seen[ref.Identity] = true
		count++
	}

	if count != 3 {
		t.Fatalf("expected 3 packages walked, got %d", count)
	}
	for _, ref := range refs {
		if !seen[ref.Identity] {
			t.Errorf("expected Walk to yield %s", ref.Identity)
		}
	}
}

func TestRequiredPackageGraph_Roots(t *testing.T) {
	g := domain.NewRequiredPackageGraph()
	root := rootRef("example.com/root")
	dep := domain.PackageReference{
		Identity: domain.NewPackageIdentity("example.com/dep"),
		Kind:     domain.ReferenceKindRemoteSourceControl,
		Location: "example.com/dep",
	}

	if err := g.AddPackage(root, []domain.PackageIdentity{dep.Identity}); err != nil {
		t.Fatalf("failed to add root: %v", err)
	}
	if err := g.AddPackage(dep, nil); err != nil {
		t.Fatalf("failed to add dep: %v", err)
	}

	roots := g.Roots()
	if len(roots) != 1 || roots[0] != root.Identity {
		t.Errorf("expected Roots() to return only %s, got %v", root.Identity, roots)
	}
	if g.PackageCount() != 2 {
		t.Errorf("expected PackageCount()=2, got %d", g.PackageCount())
	}
}

func TestRequiredPackageGraph_Dependencies(t *testing.T) {
	g := domain.NewRequiredPackageGraph()
	b := domain.NewPackageIdentity("example.com/b")
	c := domain.NewPackageIdentity("example.com/c")

	if err := g.AddPackage(rootRef("example.com/a"), []domain.PackageIdentity{b, c}); err != nil {
		t.Fatalf("failed to add package a: %v", err)
	}

	deps := g.Dependencies(domain.NewPackageIdentity("example.com/a"))
	if len(deps) != 2 || deps[0] != b || deps[1] != c {
		t.Errorf("expected dependencies [%s %s], got %v", b, c, deps)
	}
}
