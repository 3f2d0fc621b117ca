package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 转换相关的 Prometheus 指标
type Metrics struct {
	recodes *prometheus.CounterVec
	bytes   *prometheus.HistogramVec
	detects *prometheus.CounterVec
}

// NewMetrics 创建指标并注册到 reg，reg 为空时不注册
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		recodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smstext",
			Name:      "recode_total",
			Help:      "Number of recode calls by direction, kind and result.",
		}, []string{"direction", "kind", "result"}),
		bytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "smstext",
			Name:      "recode_bytes",
			Help:      "Input size of successful recode calls.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 10),
		}, []string{"direction", "kind"}),
		detects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smstext",
			Name:      "detect_total",
			Help:      "Number of encoding detections by direction and detected kind.",
		}, []string{"direction", "kind"}),
	}
	if reg != nil {
		reg.MustRegister(m.recodes, m.bytes, m.detects)
	}
	return m
}

func (m *Metrics) observeRecode(direction, kind string, size int, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = ErrorClass(err)
	}
	m.recodes.WithLabelValues(direction, kind, result).Inc()
	if err == nil {
		m.bytes.WithLabelValues(direction, kind).Observe(float64(size))
	}
}

func (m *Metrics) observeDetect(direction, kind string) {
	if m == nil {
		return
	}
	m.detects.WithLabelValues(direction, kind).Inc()
}
