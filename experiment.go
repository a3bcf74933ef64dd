package qresult

import (
	"encoding/json"

	"github.com/theapemachine/errnie"
)

// Counts maps measured state labels to occurrence counts.
type Counts map[string]int

// Probabilities maps measured state labels to probability values. Values
// are taken as the backend supplied them; this layer never checks that
// they sum to one.
type Probabilities map[string]float64

// Calibration holds backend-defined calibration data. The shape is opaque
// to this package and returned to callers unmodified.
type Calibration map[string]any

// Data-mapping keys populated by the backend.
const (
	keyCounts        = "counts"
	keyProbabilities = "probabilities"
	keyCalibration   = "calibration"
)

/*
ExperimentResult is the backend's output for one executed experiment: a
free-form data mapping (counts, probabilities, calibration, ...) and an
optional header describing the classical register layout. Records are
created when a result payload is materialized and never mutated after.
*/
type ExperimentResult struct {
	Shots   int               `json:"shots"`
	Success bool              `json:"success"`
	Status  string            `json:"status,omitempty"`
	Data    map[string]any    `json:"data"`
	Header  *ExperimentHeader `json:"header,omitempty"`
}

// UnmarshalJSON decodes one experiment record from a backend payload.
// A header that fails to decode is dropped, not fatal: the record stays
// readable and the accessors format raw state keys instead.
func (e *ExperimentResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Shots   int             `json:"shots"`
		Success bool            `json:"success"`
		Status  string          `json:"status,omitempty"`
		Data    map[string]any  `json:"data"`
		Header  json.RawMessage `json:"header,omitempty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Shots = raw.Shots
	e.Success = raw.Success
	e.Status = raw.Status
	e.Data = raw.Data
	e.Header = nil

	if len(raw.Header) > 0 && string(raw.Header) != "null" {
		var header ExperimentHeader
		if err := json.Unmarshal(raw.Header, &header); err != nil {
			errnie.Info("dropping undecodable experiment header: %v", err)
		} else {
			e.Header = &header
		}
	}
	return nil
}

// DataValue looks up one entry in the experiment's data mapping.
func (e *ExperimentResult) DataValue(key string) (any, bool) {
	v, ok := e.Data[key]
	return v, ok
}

// Name returns the experiment's header name, or "" without a header.
func (e *ExperimentResult) Name() string {
	if e.Header == nil {
		return ""
	}
	return e.Header.Name
}

// decodedHeader runs the tolerant header decode shared by the accessors:
// a failure is reported to the caller only under StrictHeaders, otherwise
// the experiment is treated as headerless.
func (e *ExperimentResult) decodedHeader(strict bool) (map[string]any, error) {
	header, err := e.Header.ToMap()
	if err != nil {
		if strict {
			return nil, err
		}
		errnie.Info("header unavailable for experiment %q, formatting raw state keys", e.Name())
		return nil, nil
	}
	return header, nil
}
