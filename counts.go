package qresult

/*
GetCounts returns the measured counts of one or more experiments. Without
an argument every experiment is read in store order; otherwise only the
referenced ones. State keys are formatted against each experiment's
header when one decodes.

The return value is a Counts mapping when exactly one experiment was
resolved, and a []Counts in resolution order otherwise. An experiment
without a counts entry aborts the whole call.
*/
func (r *Result) GetCounts(experiment ...ExperimentRef) (any, error) {
	refs := r.expandRefs(experiment)

	list := make([]Counts, 0, len(refs))
	for _, ref := range refs {
		exp, _, err := r.Experiment(ref)
		if err != nil {
			return nil, err
		}
		header, err := exp.decodedHeader(r.cfg().StrictHeaders)
		if err != nil {
			return nil, err
		}

		raw, ok := exp.DataValue(keyCounts)
		if !ok {
			return nil, newBackendError(`No counts for experiment "%s"`, ref)
		}
		counts, ok := asCounts(raw)
		if !ok {
			return nil, newBackendError(`malformed counts for experiment "%s"`, ref)
		}
		list = append(list, FormatCounts(counts, header))
	}

	if len(list) == 1 {
		return list[0], nil
	}
	return list, nil
}

// asCounts normalizes the stored counts value: typed mappings come from
// direct construction, map[string]any from a decoded JSON payload.
func asCounts(v any) (Counts, bool) {
	switch t := v.(type) {
	case Counts:
		return t, true
	case map[string]int:
		return Counts(t), true
	case map[string]any:
		out := make(Counts, len(t))
		for key, raw := range t {
			f, ok := raw.(float64)
			if !ok {
				return nil, false
			}
			out[key] = int(f)
		}
		return out, true
	}
	return nil, false
}
