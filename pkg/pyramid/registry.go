package pyramid

import (
	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

// Registry holds the ordered category labels of one chart.
//
// The first series processed establishes the categories; every later series
// is checked against them. A Registry is not safe for concurrent use.
type Registry struct {
	categories []models.Category
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// IsEmpty reports whether no categories have been extracted yet.
func (r *Registry) IsEmpty() bool {
	return len(r.categories) == 0
}

// Len returns the number of categories.
func (r *Registry) Len() int {
	return len(r.categories)
}

// Extract populates the registry from labels in order.
// It panics if the registry is already populated.
func (r *Registry) Extract(labels []string) {
	if !r.IsEmpty() {
		panic("pyramid: Extract called on a populated registry")
	}
	r.categories = make([]models.Category, len(labels))
	for i, label := range labels {
		r.categories[i] = models.Category{Index: i, Label: label}
	}
}

// Check reports whether labels match the registry label-for-label, in order.
func (r *Registry) Check(labels []string) bool {
	_, ok := r.mismatch(labels)
	return ok
}

// mismatch returns the first position where labels disagree with the
// registry. A position equal to the shorter length means the lengths differ.
func (r *Registry) mismatch(labels []string) (int, bool) {
	n := min(len(labels), len(r.categories))
	for i := 0; i < n; i++ {
		if r.categories[i].Label != labels[i] {
			return i, false
		}
	}
	if len(labels) != len(r.categories) {
		return n, false
	}
	return -1, true
}

// Rewrite replaces each pair's label with its ordinal position.
// The data must already have been checked against the registry.
func (r *Registry) Rewrite(data []models.DataPair) []models.Point {
	points := make([]models.Point, len(data))
	for i, d := range data {
		points[i] = models.Point{Ordinal: i, Value: d.Value}
	}
	return points
}

// Categories returns a copy of the registry contents.
func (r *Registry) Categories() []models.Category {
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Label returns the category label at ordinal.
func (r *Registry) Label(ordinal int) (string, bool) {
	if ordinal < 0 || ordinal >= len(r.categories) {
		return "", false
	}
	return r.categories[ordinal].Label, true
}

// Reset empties the registry.
func (r *Registry) Reset() {
	r.categories = nil
}
