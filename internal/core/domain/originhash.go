package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// ComputeOriginHash implements spec.md §4.1: concatenate the raw bytes of
// each root manifest file in the order roots are listed, then concatenate
// each top-level dependency's location string in declaration order, and
// hash the result with SHA-256. Deterministic, order-sensitive, and never
// used for anything security-sensitive — it is a cheap staleness guard,
// mirroring the shape of the teacher's GenerateEnvID but keyed to the
// spec's byte-and-location concatenation instead of a sorted tool map.
func ComputeOriginHash(manifestBytes [][]byte, dependencyLocations []string) string {
	h := sha256.New()
	for _, b := range manifestBytes {
		h.Write(b)
	}
	for _, loc := range dependencyLocations {
		h.Write([]byte(loc))
	}
	return hex.EncodeToString(h.Sum(nil))
}
