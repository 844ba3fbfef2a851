// Package domain contains the core domain models and business logic for the
// workspace dependency resolution core.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// node is one entry in a RequiredPackageGraph: a package plus the set of
// other identities it requires.
type node struct {
	ref     PackageReference
	depends []PackageIdentity
}

// RequiredPackageGraph represents the set of packages reachable from a
// workspace's roots, together with the require-edges between them. Unlike
// a build task DAG, a package requirement set has no execution order to
// compute; Validate only needs to confirm every edge target exists and that
// the graph is free of a self-referential or mutual identity cycle (a
// package cannot legally require itself, directly or transitively, since no
// resolution could ever satisfy that).
type RequiredPackageGraph struct {
	nodes map[PackageIdentity]node
	roots []PackageIdentity
}

// NewRequiredPackageGraph creates an empty graph.
func NewRequiredPackageGraph() *RequiredPackageGraph {
	return &RequiredPackageGraph{nodes: make(map[PackageIdentity]node)}
}

// AddPackage adds a package and its declared dependency identities to the
// graph. It returns an error if the identity is already present.
func (g *RequiredPackageGraph) AddPackage(ref PackageReference, dependsOn []PackageIdentity) error {
	if _, exists := g.nodes[ref.Identity]; exists {
		return zerr.With(ErrIdentityAlreadyExists, "identity", ref.Identity.String())
	}
	g.nodes[ref.Identity] = node{ref: ref, depends: dependsOn}
	if ref.Kind == ReferenceKindRoot {
		g.roots = append(g.roots, ref.Identity)
	}
	return nil
}

// Roots returns the identities registered as workspace root packages.
func (g *RequiredPackageGraph) Roots() []PackageIdentity {
	return g.roots
}

// Package looks up a package's reference by identity.
func (g *RequiredPackageGraph) Package(id PackageIdentity) (PackageReference, bool) {
	n, ok := g.nodes[id]
	return n.ref, ok
}

// PackageCount returns the number of packages currently in the graph.
func (g *RequiredPackageGraph) PackageCount() int {
	return len(g.nodes)
}

// Validate checks that every dependency edge targets a package present in
// the graph and that no package transitively requires itself.
func (g *RequiredPackageGraph) Validate() error {
	visited := make(map[PackageIdentity]int) // 0: unvisited, 1: visiting, 2: done
	var path []PackageIdentity

	var visit func(id PackageIdentity) error
	visit = func(id PackageIdentity) error {
		visited[id] = 1
		path = append(path, id)

		n, exists := g.nodes[id]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", id.String())
		}

		for _, dep := range n.depends {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[id] = 2
		path = path[:len(path)-1]
		return nil
	}

	for id := range g.nodes {
		if visited[id] == 0 {
			if err := visit(id); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *RequiredPackageGraph) buildCycleError(path []PackageIdentity, dep PackageIdentity) error {
	cyclePath := ""
	startIdx := -1
	for i, id := range path {
		if id == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Walk returns an iterator over every package reference in the graph. Order
// is unspecified and may differ between calls on the same graph; callers
// that need deterministic order should sort by identity themselves.
func (g *RequiredPackageGraph) Walk() iter.Seq[PackageReference] {
	return func(yield func(PackageReference) bool) {
		for _, n := range g.nodes {
			if !yield(n.ref) {
				return
			}
		}
	}
}

// Dependencies returns the identities a package directly requires.
func (g *RequiredPackageGraph) Dependencies(id PackageIdentity) []PackageIdentity {
	return g.nodes[id].depends
}
