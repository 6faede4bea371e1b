package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TransfersSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transfers_submitted_total",
			Help: "Total transfer commands enqueued",
		},
	)
	TransfersProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transfers_processed_total",
			Help: "Total transfer commands processed successfully",
		},
	)
	TransferAttemptsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transfer_attempts_failed_total",
			Help: "Total failed transfer processing attempts, including retries",
		},
	)
	TransfersDeadLettered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transfers_dead_lettered_total",
			Help: "Total transfer commands routed to the dead-letter queue",
		},
	)
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker pool queue depth",
		},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(TransfersSubmitted)
	prometheus.MustRegister(TransfersProcessed)
	prometheus.MustRegister(TransferAttemptsFailed)
	prometheus.MustRegister(TransfersDeadLettered)
	prometheus.MustRegister(WorkerQueueDepth)
}
