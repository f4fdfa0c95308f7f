package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Challenge repository metrics
	ChallengesLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "plfanzen_challenges_loaded",
			Help: "Number of challenges successfully loaded from the working tree",
		},
	)

	ChallengeLoadFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plfanzen_challenge_load_failures_total",
			Help: "Total number of challenges dropped from a batch load, by challenge id",
		},
		[]string{"challenge_id"},
	)

	RepoSyncs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plfanzen_repo_syncs_total",
			Help: "Total number of repository sync attempts by outcome",
		},
		[]string{"status"},
	)

	// Instance lifecycle metrics
	InstancesStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plfanzen_instances_started_total",
			Help: "Total number of challenge instances started",
		},
	)

	InstancesStopped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plfanzen_instances_stopped_total",
			Help: "Total number of challenge instances stopped",
		},
	)

	InstancesActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "plfanzen_instances_active",
			Help: "Number of currently existing challenge instance namespaces",
		},
	)

	// Scoring and flag metrics
	FlagSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plfanzen_flag_submissions_total",
			Help: "Total number of flag submissions by result",
		},
		[]string{"result"},
	)

	ScriptErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plfanzen_script_errors_total",
			Help: "Total number of author-script evaluation failures by kind",
		},
		[]string{"kind"},
	)

	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plfanzen_api_requests_total",
			Help: "Total number of gRPC requests by method and status",
		},
		[]string{"method", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "plfanzen_api_request_duration_seconds",
			Help:    "gRPC request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// SSH gateway metrics
	GatewaySessions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plfanzen_gateway_sessions_total",
			Help: "Total number of SSH gateway sessions by kind",
		},
		[]string{"kind"},
	)

	GatewayAuthFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plfanzen_gateway_auth_failures_total",
			Help: "Total number of rejected SSH authentication attempts",
		},
	)

	GatewayBackends = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "plfanzen_gateway_backends",
			Help: "Number of backends currently installed in the registry",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(ChallengesLoaded)
	prometheus.MustRegister(ChallengeLoadFailures)
	prometheus.MustRegister(RepoSyncs)
	prometheus.MustRegister(InstancesStarted)
	prometheus.MustRegister(InstancesStopped)
	prometheus.MustRegister(InstancesActive)
	prometheus.MustRegister(FlagSubmissions)
	prometheus.MustRegister(ScriptErrors)
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
	prometheus.MustRegister(GatewaySessions)
	prometheus.MustRegister(GatewayAuthFailures)
	prometheus.MustRegister(GatewayBackends)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
