package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	BrowserFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderlines_fetch_total",
			Help: "Order line fetches issued by the browser",
		},
		[]string{"outcome"}, // ok|error
	)
	BrowserStaleResults = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orderlines_fetch_stale_total",
			Help: "Fetch results dropped because a newer request was issued",
		},
	)
)

var (
	SessionOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "browser_session_operations_total",
			Help: "Browser session store operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	SessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "browser_sessions_active",
			Help: "Number of browser sessions currently held in memory",
		},
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	OrderLinesServed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orderlines_served_total",
			Help: "Order lines returned by /api/orderlines",
		},
	)
)

// MustRegister регистрирует все коллекторы; повторный вызов не паникует.
func MustRegister() {
	for _, c := range []prometheus.Collector{
		BrowserFetches, BrowserStaleResults,
		SessionOps, SessionsActive,
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		OrderLinesServed,
	} {
		if err := prometheus.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			panic(err)
		}
	}
}
