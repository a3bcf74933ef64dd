// result.go
package qresult

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/theapemachine/errnie"
)

/*
Result is the in-memory store for one job's output: an ordered collection
of per-experiment records plus the identity of the run that produced
them. A Result is materialized once, from a backend payload or direct
construction, and read-only afterwards.
*/
type Result struct {
	BackendName    string             `json:"backend_name"`
	BackendVersion string             `json:"backend_version"`
	QobjID         string             `json:"qobj_id"`
	JobID          string             `json:"job_id"`
	Success        bool               `json:"success"`
	Date           string             `json:"date,omitempty"`
	Status         string             `json:"status,omitempty"`
	Header         map[string]any     `json:"header,omitempty"`
	Results        []ExperimentResult `json:"results"`

	config *Config
}

/*
NewResult builds a result store from already-materialized experiment
records. Missing qobj and job identifiers are minted so every result can
be traced. A nil config selects the defaults.
*/
func NewResult(backendName, backendVersion, qobjID, jobID string, success bool,
	results []ExperimentResult, config *Config) (*Result, error) {
	if qobjID == "" {
		qobjID = uuid.New().String()
	}
	if jobID == "" {
		jobID = uuid.New().String()
	}
	if config == nil {
		config = NewConfig()
	}

	r := &Result{
		BackendName:    backendName,
		BackendVersion: backendVersion,
		QobjID:         qobjID,
		JobID:          jobID,
		Success:        success,
		Results:        results,
		config:         config,
	}
	if err := r.validate(); err != nil {
		return nil, err
	}

	errnie.Info("new result - backend %s, job %s, %d experiment(s)",
		backendName, jobID, len(results))
	return r, nil
}

/*
FromJSON materializes a result store from a backend result payload. This
is not a backend client; it only decodes the payload a job fetch already
delivered. A nil config selects the defaults.
*/
func FromJSON(payload []byte, config *Config) (*Result, error) {
	var r Result
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("decoding result payload: %w", err)
	}
	if config == nil {
		config = NewConfig()
	}
	r.config = config
	if err := r.validate(); err != nil {
		return nil, err
	}

	errnie.Info("decoded result payload - backend %s, job %s, %d experiment(s)",
		r.BackendName, r.JobID, len(r.Results))
	return &r, nil
}

func (r *Result) validate() error {
	if !r.cfg().ValidateShots {
		return nil
	}
	for i := range r.Results {
		if r.Results[i].Shots < 0 {
			return newBackendError(`experiment "%d" reports a negative shot count (%d)`,
				i, r.Results[i].Shots)
		}
	}
	return nil
}

func (r *Result) cfg() *Config {
	if r.config == nil {
		return NewConfig()
	}
	return r.config
}

// Len returns the number of experiment records in the store.
func (r *Result) Len() int {
	return len(r.Results)
}

// Records returns the experiment records in store order.
func (r *Result) Records() []ExperimentResult {
	return r.Results
}

// ExperimentNames lists the header name of every experiment in store
// order; headerless experiments contribute an empty string.
func (r *Result) ExperimentNames() []string {
	return lo.Map(r.Results, func(exp ExperimentResult, _ int) string {
		return exp.Name()
	})
}
