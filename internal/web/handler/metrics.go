package handler

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	selections     *prometheus.CounterVec //nolint:gochecknoglobals
	selectionsOnce sync.Once              //nolint:gochecknoglobals
)

// CountSelection counts an accepted click on section with key.
func CountSelection(section, key string) {
	selectionsOnce.Do(func() {
		selections = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_selections_total",
				Help: "Number of accepted menu, category and tab clicks.",
			},
			[]string{"section", "key"},
		)
	})

	selections.WithLabelValues(section, key).Inc()
}
