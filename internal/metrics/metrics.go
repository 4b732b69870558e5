// Package metrics counts what a conversion run built and skipped, in the
// Prometheus text format so batch runs can be picked up by a textfile collector.
package metrics

import (
	"fmt"

	"github.com/philipparndt/mcnpgeom/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the counters of one run
type Recorder struct {
	registry   *prometheus.Registry
	elements   *prometheus.CounterVec
	placements *prometheus.CounterVec
}

// NewRecorder creates a recorder with its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcnpgeom",
			Name:      "deck_elements_total",
			Help:      "Deck elements by type and build result.",
		}, []string{"element", "result"}),
		placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcnpgeom",
			Name:      "placements_total",
			Help:      "Placed lattice nodes by lattice kind.",
		}, []string{"kind"}),
	}
	r.registry.MustRegister(r.elements, r.placements)
	return r
}

// RecordBuild counts the built transforms and lattices and the skipped elements
func (r *Recorder) RecordBuild(geo *models.Geometry, skipped []error) {
	r.elements.WithLabelValues("transform", "built").Add(float64(len(geo.Transforms)))
	r.elements.WithLabelValues("lattice", "built").Add(float64(len(geo.Lattices)))
	r.elements.WithLabelValues("any", "skipped").Add(float64(len(skipped)))
}

// RecordPlacements counts placement records per lattice kind
func (r *Recorder) RecordPlacements(docs []models.PlacementDoc) {
	for _, doc := range docs {
		r.placements.WithLabelValues(doc.Kind).Inc()
	}
}

// WriteTextfile writes all counters to path in the text exposition format
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
