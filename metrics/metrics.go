package metrics

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/suitekit/suitekit/types"
)

const (
	MetricsNamespace = "suitekit"
)

var (
	Debug                bool = false
	validResults              = []types.TestStatus{types.TestStatusPass, types.TestStatusFail, types.TestStatusTimeout, types.TestStatusError}
	nonAlphanumericRegex      = regexp.MustCompile(`[^a-zA-Z ]+`)

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of errors",
	}, []string{
		"error",
	})

	testsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "tests_total",
		Help:      "Count of executed test methods",
	}, []string{
		"run_id",
		"class",
		"test",
		"result",
	})

	runResults = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_results",
		Help:      "Result of test runs",
	}, []string{
		"run_id",
		"result",
	})

	runTestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "run_tests_total",
		Help:      "Total number of tests in a run",
	}, []string{
		"run_id",
	})

	runTestsPassed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "run_tests_passed",
		Help:      "Number of passed tests in a run",
	}, []string{
		"run_id",
	})

	runTestsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "run_tests_failed",
		Help:      "Number of failed tests in a run",
	}, []string{
		"run_id",
	})

	runDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_duration_seconds",
		Help:      "Duration of test runs",
	}, []string{
		"run_id",
	})
)

// errToLabel tries to make the error string a more valid Prometheus label
func errToLabel(err error) string {
	if err == nil {
		return "nil"
	}
	errClean := nonAlphanumericRegex.ReplaceAllString(err.Error(), "")
	errClean = strings.ReplaceAll(errClean, " ", "_")
	errClean = strings.ReplaceAll(errClean, "__", "_")
	return errClean
}

func RecordError(error string) {
	if Debug {
		log.Debug().Str("m", "errors_total").Str("error", error).Msg("metric inc")
	}
	errorsTotal.WithLabelValues(error).Inc()
}

// RecordErrorDetails concats the error message to the label
// and also tries to clean the label to be a valid Prometheus label
func RecordErrorDetails(label string, err error) {
	if err == nil {
		return
	}
	label = fmt.Sprintf("%s.%s", label, errToLabel(err))
	RecordError(label)
}

// RecordTest records the classified outcome of one test method invocation.
func RecordTest(runID string, class string, test string, result types.TestStatus) {
	if !isValidResult(result) {
		log.Error().Str("result", string(result)).Msg("RecordTest - invalid result")
		return
	}
	if Debug {
		log.Debug().Str("m", "tests_total").Str("run_id", runID).
			Str("class", class).Str("test", test).Str("result", string(result)).
			Msg("metric inc")
	}
	testsTotal.WithLabelValues(runID, class, test, string(result)).Inc()
}

// RecordRun records the aggregate outcome of a full run.
func RecordRun(
	runID string,
	result types.TestStatus,
	total int,
	passed int,
	failed int,
	duration time.Duration,
) {
	runResults.WithLabelValues(runID, string(result)).Set(1)
	runTestsTotal.WithLabelValues(runID).Add(float64(total))
	runTestsPassed.WithLabelValues(runID).Add(float64(passed))
	runTestsFailed.WithLabelValues(runID).Add(float64(failed))
	runDuration.WithLabelValues(runID).Set(duration.Seconds())
}

func isValidResult(result types.TestStatus) bool {
	return slices.Contains(validResults, result)
}
