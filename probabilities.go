package qresult

/*
GetProbabilities returns the probability data the backend attached to one
or more experiments, following the count accessor's pattern. Without an
argument every experiment is read in store order; otherwise only the
referenced ones. State keys are formatted against each experiment's
header when one decodes; a header that fails to decode is treated as
absent, not as an error.

The return value is a Probabilities mapping when exactly one experiment
was resolved, and a []Probabilities in resolution order otherwise. An
experiment without a probabilities entry aborts the whole call; nothing
partial is returned.
*/
func (r *Result) GetProbabilities(experiment ...ExperimentRef) (any, error) {
	refs := r.expandRefs(experiment)

	list := make([]Probabilities, 0, len(refs))
	for _, ref := range refs {
		exp, _, err := r.Experiment(ref)
		if err != nil {
			return nil, err
		}
		header, err := exp.decodedHeader(r.cfg().StrictHeaders)
		if err != nil {
			return nil, err
		}

		raw, ok := exp.DataValue(keyProbabilities)
		if !ok {
			return nil, newBackendError(`No probabilities for experiment "%s"`, ref)
		}
		probabilities, ok := asProbabilities(raw)
		if !ok {
			return nil, newBackendError(`malformed probabilities for experiment "%s"`, ref)
		}
		list = append(list, FormatProbabilities(probabilities, header))
	}

	if len(list) == 1 {
		return list[0], nil
	}
	return list, nil
}

// asProbabilities normalizes the stored probability value: typed mappings
// come from direct construction, map[string]any from a decoded JSON
// payload.
func asProbabilities(v any) (Probabilities, bool) {
	switch t := v.(type) {
	case Probabilities:
		return t, true
	case map[string]float64:
		return Probabilities(t), true
	case map[string]any:
		out := make(Probabilities, len(t))
		for key, raw := range t {
			f, ok := raw.(float64)
			if !ok {
				return nil, false
			}
			out[key] = f
		}
		return out, true
	}
	return nil, false
}
