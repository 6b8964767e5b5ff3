package plaid

import (
	"strconv"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/pkg/errors"
)

// metricsSink is the subset of the statsd client the plaid client reports to.
type metricsSink interface {
	Incr(name string, tags []string, rate float64) error
	Timing(name string, value time.Duration, tags []string, rate float64) error
}

type noopSink struct{}

func (noopSink) Incr(string, []string, float64) error                  { return nil }
func (noopSink) Timing(string, time.Duration, []string, float64) error { return nil }

func newStatsdSink(addr string) (metricsSink, error) {
	client, err := statsd.New(addr, statsd.WithNamespace("plaid."))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create statsd client (addr = %v)", addr)
	}
	return client, nil
}

// record reports one round trip. status is 0 when the api was not reached.
func (pc *PlaidClient) record(endpoint string, status int, elapsed time.Duration) {
	tags := []string{
		"endpoint:" + endpoint,
		"status:" + strconv.Itoa(status),
	}
	pc.metrics.Incr("request", tags, 1)
	pc.metrics.Timing("latency", elapsed, tags, 1)
}
