package manager

import (
	"context"
	"time"

	"github.com/plfanzen/plfanzen/pkg/metrics"
)

// MetricsCollector keeps the active-instances gauge in sync with the
// cluster. Instances are namespaces, so this process cannot maintain the
// count incrementally: other manager replicas and garbage-collection jobs
// change it too. Polling the API is the simple truth.
type MetricsCollector struct {
	manager *Manager
	stopCh  chan struct{}
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(mgr *Manager) *MetricsCollector {
	return &MetricsCollector{
		manager: mgr,
		stopCh:  make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *MetricsCollector) Start() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *MetricsCollector) Stop() {
	close(c.stopCh)
}

func (c *MetricsCollector) collect() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := c.manager.instances.CountAll(ctx)
	if err != nil {
		c.manager.logger.Warn().Err(err).Msg("failed to count instance namespaces")
		return
	}
	metrics.InstancesActive.Set(float64(count))
}
