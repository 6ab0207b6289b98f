package csvimport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commitCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pairshare_csv_commit_created_total",
		Help: "Expenses successfully created by CSV batch commits.",
	})
	commitFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pairshare_csv_commit_failed_total",
		Help: "Per-row create failures during CSV batch commits.",
	})
)
