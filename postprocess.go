// postprocess.go
package qresult

import (
	"strconv"
	"strings"
)

/*
State keys arrive from the backend either as hex strings ("0x2") or as
raw bit strings. Formatting turns them into display-ready labels: binary,
zero-padded to the header's memory-slot count, with a space between
classical registers. Without a header the keys pass through unchanged.
*/

// FormatCounts formats the state keys of a counts mapping against a
// decoded header. Values are carried over untouched.
func FormatCounts(raw Counts, header map[string]any) Counts {
	slots, sizes := headerLayout(header)
	out := make(Counts, len(raw))
	for key, count := range raw {
		out[formatStateLabel(key, slots, sizes)] = count
	}
	return out
}

// FormatProbabilities formats the state keys of a probability mapping
// against a decoded header. Values are carried over untouched; no
// normalization or sum check happens here.
func FormatProbabilities(raw Probabilities, header map[string]any) Probabilities {
	slots, sizes := headerLayout(header)
	out := make(Probabilities, len(raw))
	for key, prob := range raw {
		out[formatStateLabel(key, slots, sizes)] = prob
	}
	return out
}

// headerLayout pulls the register layout out of a decoded header mapping.
// It accepts both the typed entries ExperimentHeader.ToMap produces and
// the float64/[]any shapes of a generically JSON-decoded header; an
// unrecognized entry means "no layout".
func headerLayout(header map[string]any) (int, []CregSize) {
	if header == nil {
		return 0, nil
	}

	slots := 0
	switch t := header["memory_slots"].(type) {
	case int:
		slots = t
	case float64:
		slots = int(t)
	}

	switch t := header["creg_sizes"].(type) {
	case []CregSize:
		return slots, t
	case []any:
		sizes := make([]CregSize, 0, len(t))
		for _, entry := range t {
			pair, ok := entry.([]any)
			if !ok || len(pair) != 2 {
				return slots, nil
			}
			name, nameOK := pair[0].(string)
			size, sizeOK := pair[1].(float64)
			if !nameOK || !sizeOK {
				return slots, nil
			}
			sizes = append(sizes, CregSize{Name: name, Size: int(size)})
		}
		return slots, sizes
	}
	return slots, nil
}

func formatStateLabel(key string, memorySlots int, cregSizes []CregSize) string {
	label := key
	if strings.HasPrefix(label, "0x") {
		if value, err := strconv.ParseUint(label[2:], 16, 64); err == nil {
			label = strconv.FormatUint(value, 2)
		}
	}
	if memorySlots > len(label) {
		label = strings.Repeat("0", memorySlots-len(label)) + label
	}
	if memorySlots > 0 && len(cregSizes) > 0 {
		label = separateBitstring(label, cregSizes)
	}
	return label
}

// separateBitstring inserts a space between register groups. The leftmost
// bits belong to the last-declared register, so sizes are consumed in
// reverse declaration order.
func separateBitstring(bits string, cregSizes []CregSize) string {
	groups := make([]string, 0, len(cregSizes))
	index := 0
	for i := len(cregSizes) - 1; i >= 0; i-- {
		size := cregSizes[i].Size
		if index+size > len(bits) {
			size = len(bits) - index
		}
		if size <= 0 {
			break
		}
		groups = append(groups, bits[index:index+size])
		index += size
	}
	if index < len(bits) {
		groups = append(groups, bits[index:])
	}
	return strings.Join(groups, " ")
}
