package tw

import "github.com/prometheus/client_golang/prometheus"

// Collector exports an engine's cache counters to Prometheus. Values are read
// from Engine.Stats at scrape time.
type Collector struct {
	engine *Engine

	hits      *prometheus.Desc
	misses    *prometheus.Desc
	sets      *prometheus.Desc
	rollovers *prometheus.Desc
	size      *prometheus.Desc
}

// NewCollector returns a collector for e. Register it with a prometheus.Registerer.
func NewCollector(e *Engine, namespace string, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "merge_cache", name), help, nil, constLabels)
	}
	return &Collector{
		engine:    e,
		hits:      desc("hits_total", "Merge results served from the cache."),
		misses:    desc("misses_total", "Merge calls that had to resolve conflicts."),
		sets:      desc("sets_total", "Merge results written to the cache."),
		rollovers: desc("rollovers_total", "Times the current cache generation was retired."),
		size:      desc("entries", "Entries held across both cache generations."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.sets
	ch <- c.rollovers
	ch <- c.size
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.engine.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.sets, prometheus.CounterValue, float64(s.Sets))
	ch <- prometheus.MustNewConstMetric(c.rollovers, prometheus.CounterValue, float64(s.Rollovers))
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(s.Size))
}
