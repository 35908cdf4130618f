package dashboard_test

import (
	"errors"
	"testing"

	"github.com/okian/footrisk/internal/domain/dashboard"
	. "github.com/smartystreets/goconvey/convey"
)

func TestColors(t *testing.T) {
	Convey("Urgency colors", t, func() {
		So(dashboard.UrgencyColor("Critical"), ShouldEqual, "bg-red-500")
		So(dashboard.UrgencyColor("High"), ShouldEqual, "bg-orange-500")
		So(dashboard.UrgencyColor("Medium"), ShouldEqual, "bg-yellow-500")
		So(dashboard.UrgencyColor("Low"), ShouldEqual, "bg-green-500")
		So(dashboard.UrgencyColor("critical"), ShouldEqual, "bg-green-500")
		So(dashboard.UrgencyColor(""), ShouldEqual, "bg-green-500")
	})

	Convey("Risk colors at the thresholds", t, func() {
		So(dashboard.RiskColor(0.15), ShouldEqual, "#22c55e")
		So(dashboard.RiskColor(0.2999), ShouldEqual, "#22c55e")
		So(dashboard.RiskColor(0.30), ShouldEqual, "#f59e0b")
		So(dashboard.RiskColor(0.45), ShouldEqual, "#f59e0b")
		So(dashboard.RiskColor(0.60), ShouldEqual, "#ef4444")
		So(dashboard.RiskColor(0.82), ShouldEqual, "#ef4444")
	})
}

func TestParsing(t *testing.T) {
	Convey("Tabs parse by identifier", t, func() {
		tab, err := dashboard.ParseTab("Pressure")
		So(err, ShouldBeNil)
		So(tab, ShouldEqual, dashboard.TabPressure)

		tab, err = dashboard.ParseTab("")
		So(err, ShouldBeNil)
		So(tab, ShouldEqual, dashboard.TabOverview)

		_, err = dashboard.ParseTab("billing")
		So(errors.Is(err, dashboard.ErrUnknownTab), ShouldBeTrue)
	})

	Convey("Timeframes parse from years", t, func() {
		y, err := dashboard.ParseTimeframe("10")
		So(err, ShouldBeNil)
		So(y, ShouldEqual, dashboard.Timeframe(10))

		y, err = dashboard.ParseTimeframe("")
		So(err, ShouldBeNil)
		So(y, ShouldEqual, dashboard.DefaultTimeframe)

		for _, bad := range []string{"4", "0", "-1", "five"} {
			_, err = dashboard.ParseTimeframe(bad)
			So(errors.Is(err, dashboard.ErrUnknownTimeframe), ShouldBeTrue)
		}
	})

	Convey("Tab strip and selector keep display order", t, func() {
		tabs := dashboard.Tabs()
		So(tabs, ShouldHaveLength, 6)
		So(tabs[0].Label, ShouldEqual, "Overview")
		So(tabs[3].Label, ShouldEqual, "Neuropathy Advancement")
		So(dashboard.Timeframes(), ShouldResemble, []dashboard.Timeframe{1, 2, 3, 5, 10})
		So(dashboard.Timeframe(1).Label(), ShouldEqual, "1 Year")
		So(dashboard.Timeframe(3).Label(), ShouldEqual, "3 Years")
	})
}

func TestState(t *testing.T) {
	Convey("Given the initial state", t, func() {
		s := dashboard.NewState()
		So(s.Tab, ShouldEqual, dashboard.TabOverview)
		So(s.Timeframe, ShouldEqual, dashboard.Timeframe(5))
		So(s.PatientData, ShouldBeNil)

		Convey("Selecting a valid tab switches it", func() {
			So(s.Select(dashboard.TabDeformity), ShouldBeNil)
			So(s.Tab, ShouldEqual, dashboard.TabDeformity)
		})

		Convey("Selecting an unknown tab leaves the state alone", func() {
			So(errors.Is(s.Select("billing"), dashboard.ErrUnknownTab), ShouldBeTrue)
			So(s.Tab, ShouldEqual, dashboard.TabOverview)
		})

		Convey("Setting an unknown timeframe leaves the state alone", func() {
			So(errors.Is(s.SetTimeframe(7), dashboard.ErrUnknownTimeframe), ShouldBeTrue)
			So(s.Timeframe, ShouldEqual, dashboard.Timeframe(5))
			So(s.SetTimeframe(10), ShouldBeNil)
			So(s.Timeframe, ShouldEqual, dashboard.Timeframe(10))
		})
	})
}

func TestDatasets(t *testing.T) {
	Convey("The fixed datasets", t, func() {
		risk := dashboard.UlcerationRisk()
		So(risk, ShouldHaveLength, 5)
		So(risk[3], ShouldResemble, dashboard.RiskPoint{Year: 5, Probability: 0.67, Confidence: 0.72})

		def := dashboard.DeformityProgression()
		So(def, ShouldHaveLength, 6)
		So(def[5], ShouldResemble, dashboard.DeformityPoint{Year: 10, ArchHeight: 8, ToeAngle: 35, HeelDeviation: 18})

		So(dashboard.NeuropathyProgression()[0].Year10, ShouldEqual, 25)
		So(dashboard.PressureHotspots()[0].Year10, ShouldEqual, 350)

		iv := dashboard.InterventionRecommendations()
		So(iv, ShouldHaveLength, 5)
		So(iv[2].Intervention, ShouldEqual, "Pressure Offloading")
		So(iv[2].Effectiveness, ShouldEqual, 90)

		Convey("Callers get copies", func() {
			risk[0].Probability = 1
			So(dashboard.UlcerationRisk()[0].Probability, ShouldEqual, 0.15)
		})
	})
}

func TestBuild(t *testing.T) {
	Convey("Given the default state", t, func() {
		v := dashboard.Build(dashboard.NewState())

		Convey("Then only the overview section is set", func() {
			So(v.Overview, ShouldNotBeNil)
			So(v.Overview.Summary.RiskLevel, ShouldEqual, "Moderate-High")
			So(v.Overview.Summary.FiveYearRisk, ShouldEqual, "67%")
			So(v.Overview.KeyPredictions, ShouldHaveLength, 3)
			So(v.Ulceration, ShouldBeNil)
			So(v.Interventions, ShouldBeNil)
		})

		Convey("Then the tab strip and selector flag the selection", func() {
			So(v.Tabs[0].Active, ShouldBeTrue)
			So(v.Tabs[1].Active, ShouldBeFalse)
			selected := 0
			for _, tf := range v.Timeframes {
				if tf.Selected {
					selected = tf.Years
				}
			}
			So(selected, ShouldEqual, 5)
		})
	})

	Convey("Given the ulceration tab", t, func() {
		v := dashboard.Build(dashboard.State{Tab: dashboard.TabUlceration, Timeframe: 2})

		Convey("Then each point carries its risk color", func() {
			So(v.Overview, ShouldBeNil)
			So(v.Ulceration.Timeline, ShouldHaveLength, 5)
			So(v.Ulceration.Timeline[0].Color, ShouldEqual, dashboard.RiskLow)
			So(v.Ulceration.Timeline[2].Color, ShouldEqual, dashboard.RiskModerate)
			So(v.Ulceration.Timeline[3].Percent, ShouldEqual, 67)
			So(v.Ulceration.Alert.Headline, ShouldContainSubstring, "67% probability")
			So(v.Timeframe, ShouldEqual, 2)
		})
	})

	Convey("Given the interventions tab", t, func() {
		v := dashboard.Build(dashboard.State{Tab: dashboard.TabInterventions, Timeframe: 5})

		Convey("Then urgency badges are resolved", func() {
			So(v.Interventions.Timeline[0].UrgencyClass, ShouldEqual, "bg-orange-500")
			So(v.Interventions.Timeline[1].UrgencyClass, ShouldEqual, "bg-red-500")
			So(v.Interventions.Timeline[3].UrgencyClass, ShouldEqual, "bg-yellow-500")
		})
	})

	Convey("Given the neuropathy and pressure tabs", t, func() {
		n := dashboard.Build(dashboard.State{Tab: dashboard.TabNeuropathy, Timeframe: 5})
		p := dashboard.Build(dashboard.State{Tab: dashboard.TabPressure, Timeframe: 5})

		So(n.Neuropathy.Regions, ShouldHaveLength, 4)
		So(n.Pressure, ShouldBeNil)
		So(p.Pressure.Unit, ShouldEqual, "kPa")
		So(p.Pressure.Alert.Detail, ShouldContainSubstring, "94%")
	})

	Convey("Given an invalid state", t, func() {
		v := dashboard.Build(dashboard.State{Tab: "nope", Timeframe: 4})

		Convey("Then the defaults are rendered", func() {
			So(v.ActiveTab, ShouldEqual, dashboard.TabOverview)
			So(v.Timeframe, ShouldEqual, 5)
		})
	})
}
