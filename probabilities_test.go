package qresult

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGetProbabilities(t *testing.T) {
	Convey("Given a result with a single experiment", t, func() {
		r := newTestResult(bellExperiment("bell"))

		Convey("The mapping is returned directly, not wrapped in a list", func() {
			got, err := r.GetProbabilities()
			So(err, ShouldBeNil)

			probabilities, ok := got.(Probabilities)
			So(ok, ShouldBeTrue)
			So(probabilities, ShouldResemble, Probabilities{"00": 0.5, "11": 0.5})
		})
	})

	Convey("Given a result with two experiments", t, func() {
		r := newTestResult(bellExperiment("bell"), bellExperiment("ghz"))

		Convey("An ordered list is returned, one entry per experiment", func() {
			got, err := r.GetProbabilities()
			So(err, ShouldBeNil)

			list, ok := got.([]Probabilities)
			So(ok, ShouldBeTrue)
			So(len(list), ShouldEqual, 2)
			So(list[0], ShouldResemble, Probabilities{"00": 0.5, "11": 0.5})
			So(list[1], ShouldResemble, Probabilities{"00": 0.5, "11": 0.5})
		})

		Convey("A single reference collapses to its mapping", func() {
			got, err := r.GetProbabilities(ByName("ghz"))
			So(err, ShouldBeNil)

			_, ok := got.(Probabilities)
			So(ok, ShouldBeTrue)
		})
	})

	Convey("Given an experiment without probability data", t, func() {
		bare := bellExperiment("bare")
		delete(bare.Data, keyProbabilities)

		Convey("A lone experiment fails with the missing-data error", func() {
			r := newTestResult(bare)

			_, err := r.GetProbabilities()
			var backendErr *BackendError
			So(errors.As(err, &backendErr), ShouldBeTrue)
			So(err.Error(), ShouldEqual, `No probabilities for experiment "0"`)
		})

		Convey("The first missing entry aborts the whole call", func() {
			r := newTestResult(bare, bellExperiment("bell"))

			got, err := r.GetProbabilities()
			So(err, ShouldNotBeNil)
			So(got, ShouldBeNil)
			So(err.Error(), ShouldContainSubstring, `experiment "0"`)
		})

		Convey("A name reference is reported by name", func() {
			r := newTestResult(bare)

			_, err := r.GetProbabilities(ByName("bare"))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, `No probabilities for experiment "bare"`)
		})
	})

	Convey("Given an unresolvable reference", t, func() {
		r := newTestResult(bellExperiment("bell"))

		Convey("The resolver's error surfaces unchanged", func() {
			_, err := r.GetProbabilities(ByIndex(3))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "could not be found")
		})
	})

	Convey("Given an experiment without a header", t, func() {
		headerless := bellExperiment("")
		headerless.Header = nil
		r := newTestResult(headerless)

		Convey("Keys are converted but not padded or spaced", func() {
			got, err := r.GetProbabilities()
			So(err, ShouldBeNil)
			So(got, ShouldResemble, Probabilities{"0": 0.5, "11": 0.5})
		})

		Convey("Strict header handling turns the absence into an error", func() {
			strict, err := NewResult("spin-2", "2.1.0", "qobj-1", "job-1", true,
				[]ExperimentResult{headerless}, &Config{StrictHeaders: true})
			So(err, ShouldBeNil)

			_, err = strict.GetProbabilities()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "no header")
		})
	})

	Convey("Given probability data of the wrong shape", t, func() {
		malformed := bellExperiment("bell")
		malformed.Data[keyProbabilities] = "0.5"
		r := newTestResult(malformed)

		Convey("The accessor rejects it", func() {
			_, err := r.GetProbabilities()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "malformed probabilities")
		})
	})
}
