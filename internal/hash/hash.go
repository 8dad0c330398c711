// Package hash fingerprints generated-quadrant snapshots.
//
// A plan is only valid against the world state it was planned for. The
// fingerprint of the pre-generated set is stored alongside each plan
// document, so a plan can be detected as stale when the surrounding
// quadrants have changed since planning.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/danieljhkim/tileplan/internal/grid"
)

// Fingerprint computes a deterministic SHA-256 digest of a point set.
// The points are hashed in row-major order, so two sets with the same
// members always produce the same fingerprint.
func Fingerprint(points grid.PointSet) string {
	h := sha256.New()
	for _, p := range points.Sorted() {
		fmt.Fprintf(h, "%d,%d\n", p.X, p.Y)
	}
	return hex.EncodeToString(h.Sum(nil))
}
