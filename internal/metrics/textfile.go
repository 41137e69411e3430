package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile dumps the default registry to path in the Prometheus text format,
// for pickup by a node-exporter textfile collector.
func WriteTextfile(path string) error {
	return writeTextfile(path, prometheus.DefaultGatherer)
}

func writeTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
