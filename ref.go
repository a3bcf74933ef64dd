package qresult

import "strconv"

/*
ExperimentRef identifies one experiment within a result, either by its
position in the store or by its header name. The zero value refers to the
first experiment.
*/
type ExperimentRef struct {
	index  int
	name   string
	byName bool
}

// ByIndex references an experiment by its position in store order.
func ByIndex(index int) ExperimentRef {
	return ExperimentRef{index: index}
}

// ByName references an experiment by its header name.
func ByName(name string) ExperimentRef {
	return ExperimentRef{name: name, byName: true}
}

// String renders the identifier the way error messages report it.
func (ref ExperimentRef) String() string {
	if ref.byName {
		return ref.name
	}
	return strconv.Itoa(ref.index)
}

/*
Experiment resolves a reference against the store, returning the matching
record and its position. Index references must fall inside the store;
name references must match exactly one experiment header.
*/
func (r *Result) Experiment(ref ExperimentRef) (*ExperimentResult, int, error) {
	if !ref.byName {
		if ref.index < 0 || ref.index >= len(r.Results) {
			return nil, -1, newBackendError(`data for experiment "%s" could not be found`, ref)
		}
		return &r.Results[ref.index], ref.index, nil
	}

	found := -1
	for i := range r.Results {
		if r.Results[i].Name() != ref.name {
			continue
		}
		if found >= 0 {
			return nil, -1, newBackendError(`multiple experiments named "%s" in result`, ref)
		}
		found = i
	}
	if found < 0 {
		return nil, -1, newBackendError(`data for experiment "%s" could not be found`, ref)
	}
	return &r.Results[found], found, nil
}

// expandRefs turns the optional accessor argument into the concrete list
// of experiments to visit: every experiment in store order when absent,
// the given references otherwise.
func (r *Result) expandRefs(experiment []ExperimentRef) []ExperimentRef {
	if len(experiment) > 0 {
		return experiment
	}
	refs := make([]ExperimentRef, len(r.Results))
	for i := range refs {
		refs[i] = ByIndex(i)
	}
	return refs
}
