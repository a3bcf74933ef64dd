package qresult

/*
GetCalibration returns the calibration data the backend attached to one
or more experiments. The shape is backend-defined and handed back exactly
as stored, with no header formatting. Without an argument every
experiment is read in store order; otherwise only the referenced ones.

The return value is a Calibration mapping when exactly one experiment was
resolved, and a []Calibration in resolution order otherwise. An
experiment without a calibration entry aborts the whole call; nothing
partial is returned.
*/
func (r *Result) GetCalibration(experiment ...ExperimentRef) (any, error) {
	refs := r.expandRefs(experiment)

	list := make([]Calibration, 0, len(refs))
	for _, ref := range refs {
		exp, _, err := r.Experiment(ref)
		if err != nil {
			return nil, err
		}

		raw, ok := exp.DataValue(keyCalibration)
		if !ok {
			return nil, newBackendError(`No calibration data for experiment "%s"`, ref)
		}
		calibration, ok := asCalibration(raw)
		if !ok {
			return nil, newBackendError(`malformed calibration data for experiment "%s"`, ref)
		}
		list = append(list, calibration)
	}

	if len(list) == 1 {
		return list[0], nil
	}
	return list, nil
}

// asCalibration reinterprets the stored mapping without copying, so the
// caller sees exactly what the backend delivered.
func asCalibration(v any) (Calibration, bool) {
	switch t := v.(type) {
	case Calibration:
		return t, true
	case map[string]any:
		return Calibration(t), true
	}
	return nil, false
}
