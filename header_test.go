package qresult

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExperimentHeader(t *testing.T) {
	Convey("Given a header with extra backend fields", t, func() {
		var header ExperimentHeader
		err := json.Unmarshal([]byte(`{
			"name": "bell",
			"memory_slots": 2,
			"creg_sizes": [["c0", 1], ["c1", 1]],
			"n_qubits": 2,
			"compiled_circuit": "version 1.0\nqubits 2"
		}`), &header)
		So(err, ShouldBeNil)

		Convey("Known fields land in their slots", func() {
			So(header.Name, ShouldEqual, "bell")
			So(header.MemorySlots, ShouldEqual, 2)
			So(header.CregSizes, ShouldResemble, []CregSize{
				{Name: "c0", Size: 1},
				{Name: "c1", Size: 1},
			})
		})

		Convey("Unknown fields are preserved in Metadata", func() {
			So(header.Metadata["n_qubits"], ShouldEqual, 2.0)
			So(header.Metadata["compiled_circuit"], ShouldEqual, "version 1.0\nqubits 2")
		})

		Convey("ToMap flattens everything into one mapping", func() {
			m, err := header.ToMap()
			So(err, ShouldBeNil)
			So(m["name"], ShouldEqual, "bell")
			So(m["memory_slots"], ShouldEqual, 2)
			So(m["n_qubits"], ShouldEqual, 2.0)
		})
	})

	Convey("Given a malformed creg size entry", t, func() {
		var header ExperimentHeader
		err := json.Unmarshal([]byte(`{"creg_sizes": [["c0"]]}`), &header)

		Convey("Decoding fails", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "[name, size] pair")
		})
	})

	Convey("Given no header at all", t, func() {
		var header *ExperimentHeader

		Convey("ToMap reports the absence", func() {
			m, err := header.ToMap()
			So(m, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "no header")
		})
	})
}
