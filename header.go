// header.go
package qresult

import (
	"encoding/json"
	"fmt"
)

// CregSize records the name and width of one classical register. On the
// wire it is a two-element ["name", size] array.
type CregSize struct {
	Name string
	Size int
}

func (c CregSize) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Name, c.Size})
}

func (c *CregSize) UnmarshalJSON(data []byte) error {
	var pair []any
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("creg size entry must be a [name, size] pair, got %d element(s)", len(pair))
	}
	name, nameOK := pair[0].(string)
	size, sizeOK := pair[1].(float64)
	if !nameOK || !sizeOK {
		return fmt.Errorf("creg size entry must be a [string, number] pair")
	}
	c.Name = name
	c.Size = int(size)
	return nil
}

/*
ExperimentHeader carries the metadata a backend attaches to one executed
experiment: the circuit name, the number of classical memory slots, and
the classical register layout. The layout drives state-label formatting
in the count and probability accessors. Backends may attach additional
fields; those are preserved verbatim in Metadata.
*/
type ExperimentHeader struct {
	Name        string
	MemorySlots int
	CregSizes   []CregSize
	Metadata    map[string]any
}

func (h ExperimentHeader) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(h.Metadata)+3)
	for k, v := range h.Metadata {
		m[k] = v
	}
	if h.Name != "" {
		m["name"] = h.Name
	}
	if h.MemorySlots > 0 {
		m["memory_slots"] = h.MemorySlots
	}
	if len(h.CregSizes) > 0 {
		m["creg_sizes"] = h.CregSizes
	}
	return json.Marshal(m)
}

func (h *ExperimentHeader) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		switch key {
		case "name":
			if err := json.Unmarshal(value, &h.Name); err != nil {
				return fmt.Errorf("decoding header name: %w", err)
			}
		case "memory_slots":
			if err := json.Unmarshal(value, &h.MemorySlots); err != nil {
				return fmt.Errorf("decoding header memory_slots: %w", err)
			}
		case "creg_sizes":
			if err := json.Unmarshal(value, &h.CregSizes); err != nil {
				return fmt.Errorf("decoding header creg_sizes: %w", err)
			}
		default:
			var extra any
			if err := json.Unmarshal(value, &extra); err != nil {
				return fmt.Errorf("decoding header field %q: %w", key, err)
			}
			if h.Metadata == nil {
				h.Metadata = make(map[string]any)
			}
			h.Metadata[key] = extra
		}
	}
	return nil
}

/*
ToMap flattens the header into a plain mapping, the shape the formatting
routine consumes. A nil header yields an error; the accessors treat that
as "no header" and continue with unformatted state keys.
*/
func (h *ExperimentHeader) ToMap() (map[string]any, error) {
	if h == nil {
		return nil, newBackendError("experiment carries no header")
	}
	m := make(map[string]any, len(h.Metadata)+3)
	for k, v := range h.Metadata {
		m[k] = v
	}
	if h.Name != "" {
		m["name"] = h.Name
	}
	if h.MemorySlots > 0 {
		m["memory_slots"] = h.MemorySlots
	}
	if len(h.CregSizes) > 0 {
		m["creg_sizes"] = h.CregSizes
	}
	return m, nil
}
