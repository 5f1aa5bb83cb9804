package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "sigma_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	semesterResets       prometheus.Counter
	semesterResetCleared prometheus.Gauge

	maintenanceRecords *prometheus.CounterVec
	faultRecords       prometheus.Counter

	worklistSaves *prometheus.CounterVec

	statsTotal   *prometheus.CounterVec
	statsLatency *prometheus.HistogramVec

	exportTotal *prometheus.CounterVec
)

// Init registers the maintenance metrics with the default registry.
// Helpers are no-ops until Init runs.
func Init() {
	registerOnce.Do(func() {
		semesterResets = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "semester_resets_total",
				Help: "Total semester completion resets applied",
			},
		)
		semesterResetCleared = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "semester_reset_cleared_elements",
				Help: "Elements that were completed before the last semester reset",
			},
		)
		maintenanceRecords = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "maintenance_records_total",
				Help: "Total maintenance records by installation type",
			},
			[]string{"installation_type"},
		)
		faultRecords = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "fault_records_total",
				Help: "Total fault records",
			},
		)
		worklistSaves = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "worklist_saves_total",
				Help: "Total monthly worklist saves by whether an existing list was replaced",
			},
			[]string{"replaced"},
		)
		statsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "semester_stats_total",
				Help: "Total semester stats computations by result",
			},
			[]string{"result"},
		)
		statsLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "semester_stats_latency_seconds",
				Help:    "Semester stats computation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "stats_export_total",
				Help: "Total semester stats exports by format and result",
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			semesterResets,
			semesterResetCleared,
			maintenanceRecords,
			faultRecords,
			worklistSaves,
			statsTotal,
			statsLatency,
			exportTotal,
		)
	})
}

// IncSemesterReset records an applied reset and how many completed elements it cleared.
func IncSemesterReset(cleared int) {
	if semesterResets != nil {
		semesterResets.Inc()
	}
	if semesterResetCleared != nil {
		semesterResetCleared.Set(float64(cleared))
	}
}

func IncMaintenanceRecord(installationType string) {
	if installationType == "" {
		installationType = "unknown"
	}
	if maintenanceRecords != nil {
		maintenanceRecords.WithLabelValues(installationType).Inc()
	}
}

func IncFaultRecord() {
	if faultRecords != nil {
		faultRecords.Inc()
	}
}

func IncWorklistSave(replaced bool) {
	if worklistSaves != nil {
		worklistSaves.WithLabelValues(strconv.FormatBool(replaced)).Inc()
	}
}

// ObserveSemesterStats records stats latency and result.
func ObserveSemesterStats(result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if statsTotal != nil {
		statsTotal.WithLabelValues(result).Inc()
	}
	if statsLatency != nil {
		statsLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

func IncStatsExport(format, result string) {
	if result == "" {
		result = ResultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
}
