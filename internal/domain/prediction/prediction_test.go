package prediction_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/okian/footrisk/internal/domain/prediction"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRequestSerialization(t *testing.T) {
	Convey("Given a request with only pedoscan data", t, func() {
		req := prediction.Request{
			Pedoscan: &prediction.Pedoscan{PressureMatrix: [][]float64{{0, 120}, {210, 80}}},
		}

		Convey("When it is serialized", func() {
			b, err := json.Marshal(req)
			So(err, ShouldBeNil)

			var body map[string]any
			So(json.Unmarshal(b, &body), ShouldBeNil)

			Convey("Then only the present group is sent", func() {
				So(body, ShouldContainKey, "pedoscan")
				So(body, ShouldNotContainKey, "neurotouch")
				So(body, ShouldNotContainKey, "arterial")
				So(body, ShouldNotContainKey, "foot_images")
				So(body, ShouldNotContainKey, "patient_id")
				So(string(b), ShouldNotContainSubstring, "null")
			})
		})
	})

	Convey("Given a request with a partial neurotouch group", t, func() {
		req := prediction.Request{
			PatientID: "p-1",
			Neurotouch: &prediction.Neurotouch{
				Vibration: &prediction.Vibration{RiskScore: 0.4, Threshold: 25},
			},
		}

		Convey("Then the nested present fields are kept and the rest omitted", func() {
			b, err := json.Marshal(req)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual,
				`{"patient_id":"p-1","neurotouch":{"vibration":{"risk_score":0.4,"threshold":25,"affected_points":[]}}}`)
		})
	})

	Convey("Given a measured monofilament test with no affected points", t, func() {
		req := prediction.Request{
			Neurotouch: &prediction.Neurotouch{
				Monofilament: &prediction.Monofilament{RiskScore: 0.1, TactileSensation: 0.9, AffectedPoints: []string{}},
			},
		}

		Convey("Then the empty list is sent and survives a round trip", func() {
			b, err := json.Marshal(req)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual,
				`{"neurotouch":{"monofilament":{"risk_score":0.1,"tactile_sensation":0.9,"affected_points":[]}}}`)

			var back prediction.Request
			So(json.Unmarshal(b, &back), ShouldBeNil)
			So(back.Neurotouch.Monofilament.AffectedPoints, ShouldNotBeNil)
			So(back.Neurotouch.Monofilament.AffectedPoints, ShouldBeEmpty)
		})
	})

	Convey("Given a vibration test with affected points", t, func() {
		v := prediction.Vibration{RiskScore: 0.5, Threshold: 30, AffectedPoints: []string{"hallux", "heel"}}

		Convey("Then the points are kept in order", func() {
			b, err := json.Marshal(&v)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"risk_score":0.5,"threshold":30,"affected_points":["hallux","heel"]}`)
		})
	})
}

func TestHorizons(t *testing.T) {
	Convey("HorizonYears accepts both key forms", t, func() {
		y, ok := prediction.HorizonYears("year_5")
		So(ok, ShouldBeTrue)
		So(y, ShouldEqual, 5)

		y, ok = prediction.HorizonYears("10")
		So(ok, ShouldBeTrue)
		So(y, ShouldEqual, 10)

		_, ok = prediction.HorizonYears("decade")
		So(ok, ShouldBeFalse)

		So(prediction.HorizonKey(3), ShouldEqual, "year_3")
	})

	Convey("Given a response with unordered horizons", t, func() {
		resp := &prediction.Response{ProgressionPredictions: map[string]prediction.Projection{
			"year_10": {UlcerationRisk: 0.9},
			"year_2":  {UlcerationRisk: 0.3},
			"year_1":  {UlcerationRisk: 0.2},
			"later":   {},
			"year_5":  {UlcerationRisk: 0.6},
		}}

		Convey("SortedHorizons orders them by year", func() {
			So(resp.SortedHorizons(), ShouldResemble, []string{"year_1", "year_2", "year_5", "year_10", "later"})
		})

		Convey("Projection finds a horizon by year", func() {
			p, ok := resp.Projection(5)
			So(ok, ShouldBeTrue)
			So(p.UlcerationRisk, ShouldEqual, 0.6)

			_, ok = resp.Projection(3)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestDocument(t *testing.T) {
	Convey("Given a data-format document", t, func() {
		var doc prediction.Document
		err := json.Unmarshal([]byte(`{
			"pedoscan": {"description": "Pedoscan pressure mapping data", "format": {"units": "kPa"}},
			"arterial": {"description": "Arterial testing data"}
		}`), &doc)
		So(err, ShouldBeNil)

		Convey("Keys are sorted", func() {
			So(doc.Keys(), ShouldResemble, []string{"arterial", "pedoscan"})
			So(doc.Len(), ShouldEqual, 2)
		})

		Convey("Nested values can be looked up", func() {
			s, ok := doc.String("pedoscan", "format", "units")
			So(ok, ShouldBeTrue)
			So(s, ShouldEqual, "kPa")

			_, ok = doc.Lookup("pedoscan", "description", "deeper")
			So(ok, ShouldBeFalse)
		})

		Convey("Sections are documents", func() {
			sec, ok := doc.Section("arterial")
			So(ok, ShouldBeTrue)
			desc, _ := sec.String("description")
			So(desc, ShouldEqual, "Arterial testing data")

			_, ok = doc.Section("missing")
			So(ok, ShouldBeFalse)
		})

		Convey("It round-trips through JSON", func() {
			b, err := json.Marshal(doc)
			So(err, ShouldBeNil)
			var again prediction.Document
			So(json.Unmarshal(b, &again), ShouldBeNil)
			So(again.Map(), ShouldResemble, doc.Map())
		})
	})

	Convey("A non-object body is rejected", t, func() {
		var doc prediction.Document
		So(json.Unmarshal([]byte(`[1,2]`), &doc), ShouldNotBeNil)
	})
}

func TestValidate(t *testing.T) {
	Convey("Given prediction requests", t, func() {
		Convey("An empty request is valid", func() {
			So((&prediction.Request{}).Validate(), ShouldBeNil)
		})

		Convey("A well-formed request is valid", func() {
			req := &prediction.Request{
				Neurotouch: &prediction.Neurotouch{Monofilament: &prediction.Monofilament{RiskScore: 0.2, TactileSensation: 0.8}},
				Pedoscan:   &prediction.Pedoscan{PressureMatrix: [][]float64{{1, 2}, {3, 4}}},
				FootImages: []string{"data:image/png;base64,aGVsbG8="},
			}
			So(req.Validate(), ShouldBeNil)
		})

		Convey("Out of range risk scores are rejected", func() {
			req := &prediction.Request{Neurotouch: &prediction.Neurotouch{
				HotPerception: &prediction.Perception{RiskScore: 1.5},
			}}
			err := req.Validate()
			So(errors.Is(err, prediction.ErrInvalidRequest), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "hot_perception.risk_score")
		})

		Convey("Ragged pressure matrices are rejected", func() {
			req := &prediction.Request{Pedoscan: &prediction.Pedoscan{PressureMatrix: [][]float64{{1, 2}, {3}}}}
			So(errors.Is(req.Validate(), prediction.ErrInvalidRequest), ShouldBeTrue)
		})

		Convey("Negative pressures are rejected", func() {
			req := &prediction.Request{Pedoscan: &prediction.Pedoscan{PressureMatrix: [][]float64{{1, -2}}}}
			So(errors.Is(req.Validate(), prediction.ErrInvalidRequest), ShouldBeTrue)
		})

		Convey("Malformed images are rejected with their index", func() {
			req := &prediction.Request{FootImages: []string{"data:image/png;base64,aGVsbG8=", "not-a-uri"}}
			err := req.Validate()
			So(errors.Is(err, prediction.ErrInvalidRequest), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "foot_images[1]")
		})
	})
}
