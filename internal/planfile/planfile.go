// Package planfile reads and writes plan documents on disk.
//
// A plan document wraps a rectangle or strip plan with the metadata the
// tool needs later: a document id, the planning timestamp, and a
// fingerprint of the world snapshot the plan was computed against.
package planfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/danieljhkim/tileplan/internal/grid"
	"github.com/danieljhkim/tileplan/internal/hash"
	"github.com/danieljhkim/tileplan/internal/planner"
)

// Document kinds.
const (
	KindRectangle = "rectangle"
	KindStrip     = "strip"
)

// Document is the on-disk envelope around a plan. Exactly one of
// Rectangle and Strip is set, matching Kind.
type Document struct {
	ID                  string                 `json:"id"`
	Kind                string                 `json:"kind"`
	CreatedAt           time.Time              `json:"created_at"`
	SnapshotFingerprint string                 `json:"snapshot_fingerprint"`
	Rectangle           *planner.RectanglePlan `json:"rectangle,omitempty"`
	Strip               *planner.StripPlan     `json:"strip,omitempty"`
}

// NewRectangleDocument wraps a rectangle plan in a fresh document.
func NewRectangleDocument(plan *planner.RectanglePlan, createdAt time.Time) *Document {
	return &Document{
		ID:                  uuid.NewString(),
		Kind:                KindRectangle,
		CreatedAt:           createdAt.UTC(),
		SnapshotFingerprint: hash.Fingerprint(plan.PreGenerated),
		Rectangle:           plan,
	}
}

// NewStripDocument wraps a strip plan in a fresh document.
func NewStripDocument(plan *planner.StripPlan, createdAt time.Time) *Document {
	return &Document{
		ID:                  uuid.NewString(),
		Kind:                KindStrip,
		CreatedAt:           createdAt.UTC(),
		SnapshotFingerprint: hash.Fingerprint(plan.PreGenerated),
		Strip:               plan,
	}
}

// Bounds returns the planned region regardless of kind.
func (d *Document) Bounds() (grid.RectBounds, error) {
	switch d.Kind {
	case KindRectangle:
		if d.Rectangle == nil {
			return grid.RectBounds{}, fmt.Errorf("document %s has kind %s but no rectangle plan", d.ID, d.Kind)
		}
		return d.Rectangle.Bounds, nil
	case KindStrip:
		if d.Strip == nil {
			return grid.RectBounds{}, fmt.Errorf("document %s has kind %s but no strip plan", d.ID, d.Kind)
		}
		return d.Strip.Bounds, nil
	}
	return grid.RectBounds{}, fmt.Errorf("document %s has unknown kind %q", d.ID, d.Kind)
}

// Filename returns the canonical file name for this document, derived
// from its kind and bounds. Re-planning the same region overwrites the
// previous document.
func (d *Document) Filename() (string, error) {
	bounds, err := d.Bounds()
	if err != nil {
		return "", err
	}
	prefix := "plan_rect"
	if d.Kind == KindStrip {
		prefix = "plan_strip"
	}
	return fmt.Sprintf("%s_%d_%d_%d_%d.json", prefix,
		bounds.TopLeft.X, bounds.TopLeft.Y,
		bounds.BottomRight.X, bounds.BottomRight.Y), nil
}

// Save writes the document into dir under its canonical name and returns
// the full path.
func Save(dir string, doc *Document) (string, error) {
	name, err := doc.Filename()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create plan directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode plan document: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write plan document: %w", err)
	}
	return path, nil
}

// Load reads a document from disk and checks that its kind and payload
// agree.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode plan document %s: %w", path, err)
	}
	if _, err := doc.Bounds(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateStepStatus loads the strip document at path, sets the status of
// one step, and writes the document back in place.
func UpdateStepStatus(path string, step int, status planner.StepStatus) (*Document, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	if doc.Kind != KindStrip {
		return nil, fmt.Errorf("document %s is a %s plan; only strip steps carry a status", doc.ID, doc.Kind)
	}
	if step < 0 || step >= len(doc.Strip.Steps) {
		return nil, fmt.Errorf("step %d out of range: plan has %d steps", step, len(doc.Strip.Steps))
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown step status %q", status)
	}

	doc.Strip.Steps[step].Status = status

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write plan document: %w", err)
	}
	return doc, nil
}
