// Package metrics holds Prometheus collectors for transaction decoding.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decodeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_decoder",
		Name:      "decode_total",
		Help:      "Count of raw transaction decode attempts.",
	}, []string{"network", "status", "reason"})

	decodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_decoder",
		Name:      "decode_duration_seconds",
		Help:      "Duration of decoding a raw transaction.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs..2.6s
	}, []string{"network", "status"})

	decodeSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_decoder",
		Name:      "decode_size_bytes",
		Help:      "Size of raw transactions handed to the decoder.",
		Buckets:   prometheus.ExponentialBuckets(64, 2, 14), // 64B..512KiB
	}, []string{"network"})

	decodeElements = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_decoder",
		Name:      "decode_elements",
		Help:      "Number of inputs or outputs per decoded transaction.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network", "section"})
)

// Decoder tracks metrics for decode operations.
type Decoder struct {
	network string
}

// NewDecoder constructs a metrics collector labelled with the annotation network.
func NewDecoder(network string) *Decoder {
	if network == "" {
		network = "unknown"
	}
	return &Decoder{network: network}
}

// ObserveDecode records a single decode outcome. reason is the error kind and is
// ignored on success.
func (m Decoder) ObserveDecode(err error, reason string, size int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	} else {
		reason = "none"
	}

	decodeTotal.WithLabelValues(m.network, status, reason).Inc()
	decodeDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	decodeSize.WithLabelValues(m.network).Observe(float64(size))
}

// ObserveElements records the number of inputs and outputs of a decoded transaction.
func (m Decoder) ObserveElements(inputs, outputs int) {
	decodeElements.WithLabelValues(m.network, "inputs").Observe(float64(inputs))
	decodeElements.WithLabelValues(m.network, "outputs").Observe(float64(outputs))
}
