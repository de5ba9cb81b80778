package itemdb

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gw2tracker_itemdb_pages_fetched_total",
		Help: "Total number of item pages fetched from the remote API, by locale.",
	}, []string{"locale"})

	rebuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gw2tracker_itemdb_rebuilds_total",
		Help: "Total number of item database rebuilds, by result (completed, canceled, failed).",
	}, []string{"result"})

	itemsLoaded = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gw2tracker_itemdb_items",
		Help: "Number of items in the loaded item database, by locale.",
	}, []string{"locale"})
)
