package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	coursesLoaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sectionplanner",
			Name:      "courses_loaded_total",
			Help:      "Count of course loads by source kind and outcome.",
		},
		[]string{"source", "status"},
	)

	enumerations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sectionplanner",
			Name:      "enumerations_total",
			Help:      "Count of schedule enumerations run.",
		},
	)

	candidatesEvaluated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sectionplanner",
			Name:      "candidates_evaluated_total",
			Help:      "Count of index vectors checked across all enumerations.",
		},
	)

	schedulesFound = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sectionplanner",
			Name:      "schedules_found",
			Help:      "Number of timetables found per enumeration.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	enumerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sectionplanner",
			Name:      "enumeration_duration_seconds",
			Help:      "Time spent enumerating timetables.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	exportsWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sectionplanner",
			Name:      "exports_written_total",
			Help:      "Count of exports by format and outcome.",
		},
		[]string{"format", "status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(coursesLoaded, enumerations, candidatesEvaluated, schedulesFound, enumerationDuration, exportsWritten)
	})
}

func IncCoursesLoaded(source, status string) {
	coursesLoaded.WithLabelValues(source, status).Inc()
}

// ObserveEnumeration records one enumeration run
func ObserveEnumeration(candidates uint64, schedules int, elapsed time.Duration) {
	enumerations.Inc()
	candidatesEvaluated.Add(float64(candidates))
	schedulesFound.Observe(float64(schedules))
	enumerationDuration.Observe(elapsed.Seconds())
}

func IncExportsWritten(format, status string) {
	exportsWritten.WithLabelValues(format, status).Inc()
}
