package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "antar", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "antar",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	OTPIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "antar", Name: "otp_issued_total", Help: "Verification codes issued per channel"},
		[]string{"channel"},
	)
	OTPValidatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "antar", Name: "otp_validated_total", Help: "Verification code validation outcomes"},
		[]string{"channel", "result"},
	)

	FareQuotesTotal = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: "antar", Name: "fare_quotes_total", Help: "Total fare quotes served"},
	)
	RidesRequestedTotal = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: "antar", Name: "rides_requested_total", Help: "Total rides requested"},
	)
	RideStatusTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "antar", Name: "ride_status_total", Help: "Ride status transitions applied"},
		[]string{"status"},
	)

	DriversOnline = promauto.NewGauge(
		prometheus.GaugeOpts{Namespace: "antar", Name: "drivers_online", Help: "Number of drivers with an active beacon"},
	)
)
