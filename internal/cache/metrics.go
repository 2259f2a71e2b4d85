package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultHit    = "hit"
	resultMiss   = "miss"
	resultFailed = "render_failed"
	resultError  = "store_error"
)

var PageCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "website_page_cache_total",
	Help: "Page cache lookups by page and result",
}, []string{"page", "result"})
