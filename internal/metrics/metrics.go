package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polka_searches_total",
		Help: "Total number of catalogue searches",
	}, []string{"outcome"})

	PagesShownTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polka_pages_shown_total",
		Help: "Total number of result pages revealed via the advance control",
	})

	DetailOpensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polka_detail_opens_total",
		Help: "Total number of detail panel opens",
	}, []string{"outcome"})

	ThemeSwitchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polka_theme_switches_total",
		Help: "Total number of theme switches",
	}, []string{"theme"})
)
