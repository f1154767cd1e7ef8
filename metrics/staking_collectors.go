package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StakingMetrics tracks the signing requests issued by the staking manager.
type StakingMetrics struct {
	SignRequestsCounter        *prometheus.CounterVec
	SignFailuresCounter        *prometheus.CounterVec
	SignLatency                *prometheus.HistogramVec
	DelegationMsgsCounter      *prometheus.CounterVec
	LastResolvedParamsVersion  prometheus.Gauge
	EstimatedStakingFeeSatHist prometheus.Histogram
}

var stakingMetricsRegisterOnce sync.Once

var stakingMetricsInstance *StakingMetrics

func NewStakingMetrics() *StakingMetrics {
	stakingMetricsRegisterOnce.Do(func() {
		stakingMetricsInstance = &StakingMetrics{
			SignRequestsCounter: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "staking_manager_sign_requests_total",
					Help: "Total number of signing requests sent to the signer providers",
				},
				[]string{"step"},
			),
			SignFailuresCounter: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "staking_manager_sign_failures_total",
					Help: "Total number of signing requests rejected by the signer providers",
				},
				[]string{"step"},
			),
			SignLatency: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "staking_manager_sign_latency_seconds",
					Help:    "Time spent waiting for the signer providers",
					Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
				},
				[]string{"step"},
			),
			DelegationMsgsCounter: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "staking_manager_delegation_msgs_total",
					Help: "Total number of delegation messages assembled",
				},
				[]string{"kind"},
			),
			LastResolvedParamsVersion: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "staking_manager_last_resolved_params_version",
				Help: "Version of the staking params resolved by the last operation",
			}),
			EstimatedStakingFeeSatHist: prometheus.NewHistogram(prometheus.HistogramOpts{
				Name:    "staking_manager_estimated_staking_fee_sat",
				Help:    "Distribution of estimated staking transaction fees in satoshis",
				Buckets: prometheus.ExponentialBuckets(100, 2, 14),
			}),
		}

		prometheus.MustRegister(stakingMetricsInstance.SignRequestsCounter)
		prometheus.MustRegister(stakingMetricsInstance.SignFailuresCounter)
		prometheus.MustRegister(stakingMetricsInstance.SignLatency)
		prometheus.MustRegister(stakingMetricsInstance.DelegationMsgsCounter)
		prometheus.MustRegister(stakingMetricsInstance.LastResolvedParamsVersion)
		prometheus.MustRegister(stakingMetricsInstance.EstimatedStakingFeeSatHist)
	})

	return stakingMetricsInstance
}

// RecordSignRequest records a finished signing request of the given step.
func (m *StakingMetrics) RecordSignRequest(step string, start time.Time, err error) {
	m.SignRequestsCounter.WithLabelValues(step).Inc()
	m.SignLatency.WithLabelValues(step).Observe(time.Since(start).Seconds())
	if err != nil {
		m.SignFailuresCounter.WithLabelValues(step).Inc()
	}
}

func (m *StakingMetrics) RecordDelegationMsg(kind string) {
	m.DelegationMsgsCounter.WithLabelValues(kind).Inc()
}

func (m *StakingMetrics) RecordParamsVersion(version uint32) {
	m.LastResolvedParamsVersion.Set(float64(version))
}

func (m *StakingMetrics) RecordEstimatedFee(feeSat int64) {
	m.EstimatedStakingFeeSatHist.Observe(float64(feeSat))
}
