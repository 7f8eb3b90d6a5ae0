package metrics

import "github.com/penglongli/gin-metrics/ginmetrics"

// GetMonitor configures the process-wide gin-metrics monitor. Call Use on
// the result once per process.
func GetMonitor(path string) *ginmetrics.Monitor {
	if path == "" {
		path = "/metrics"
	}

	m := ginmetrics.GetMonitor()
	m.SetMetricPath(path)
	// requests slower than this many seconds are counted as slow
	m.SetSlowTime(1)
	m.SetDuration([]float64{0.005, 0.01, 0.05, 0.1, 0.2, 0.5, 1, 2})

	return m
}
