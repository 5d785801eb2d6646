// Package reporter ships averaged training metrics to an experiment
// tracking server.
package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Metric is the wire form of a single reported value.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Epoch int     `json:"epoch"`
}

type Reporter struct {
	client   *resty.Client
	endpoint string
	run      string
}

// New returns a reporter posting to endpoint under the given run name.
func New(endpoint, run string) *Reporter {
	return &Reporter{
		client:   resty.New(),
		endpoint: endpoint,
		run:      run,
	}
}

// ReportMetrics posts one epoch of averaged metrics. Retries are the
// caller's concern.
func (r *Reporter) ReportMetrics(ctx context.Context, epoch int, metrics map[string]float64) error {
	payload := make([]Metric, 0, len(metrics))
	for name, value := range metrics {
		payload = append(payload, Metric{Name: name, Value: value, Epoch: epoch})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(r.endpoint + "/api/runs/" + r.run + "/metrics")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("report metrics: unexpected status %d", resp.StatusCode())
	}
	return nil
}
