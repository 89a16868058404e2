package parser

import (
	"log/slog"
	"slices"

	"github.com/rmitchellscott/wxdecode/station"
	"github.com/rmitchellscott/wxdecode/value"
)

// MetarData is a decoded METAR. Optional groups are nil or empty when the
// report did not carry them.
type MetarData struct {
	Raw              string          `json:"raw" yaml:"raw"`
	Sanitized        string          `json:"sanitized" yaml:"sanitized"`
	Station          string          `json:"station" yaml:"station"`
	Time             value.Timestamp `json:"time" yaml:"time"`
	Remarks          string          `json:"remarks" yaml:"remarks"`
	Wind             Wind            `json:"wind" yaml:"wind"`
	Visibility       *value.Number   `json:"visibility" yaml:"visibility"`
	Altimeter        *value.Number   `json:"altimeter" yaml:"altimeter"`
	Temperature      *value.Number   `json:"temperature" yaml:"temperature"`
	Dewpoint         *value.Number   `json:"dewpoint" yaml:"dewpoint"`
	Clouds           []Cloud         `json:"clouds" yaml:"clouds"`
	Other            []string        `json:"other" yaml:"other"`
	RunwayVisibility []string        `json:"runway_visibility" yaml:"runway_visibility"`
	WindShear        string          `json:"wind_shear,omitempty" yaml:"wind_shear,omitempty"`
	FlightRules      FlightRules     `json:"flight_rules" yaml:"flight_rules"`
	RemarksInfo      RemarksData     `json:"remarks_info" yaml:"remarks_info"`
}

// ParseMetar decodes a METAR for the given station. The station decides the
// regional format and therefore the default units, which are returned
// alongside the report and updated with whatever units the report used.
func ParseMetar(stationID, txt string, opts ...Option) (*MetarData, *value.Units, error) {
	o := newOptions(opts)
	format, err := station.Resolve(stationID)
	if err != nil {
		return nil, nil, err
	}
	units := value.INUnits()
	if format == station.NorthAmerican {
		units = value.NAUnits()
	}

	clean := SanitizeReportString(txt)
	data := &MetarData{Raw: txt, Sanitized: clean}

	wxdata, remarks := SplitRemarks(clean)
	data.Remarks = remarks
	wxdata, data.RunwayVisibility, data.WindShear = SanitizeReportList(wxdata, true)
	var rtime string
	wxdata, data.Station, rtime = GetStationAndTime(wxdata)

	cavok := slices.Contains(wxdata, "CAVOK")
	if !cavok {
		wxdata, data.Clouds = GetClouds(wxdata)
	}
	wxdata, data.Wind = GetWind(wxdata, units)
	wxdata, data.Altimeter = GetAltimeter(wxdata, units, format)
	if cavok {
		data.Visibility = value.MakeNumber("CAVOK")
		wxdata = slices.DeleteFunc(wxdata, func(s string) bool { return s == "CAVOK" })
	} else {
		wxdata, data.Visibility = GetVisibility(wxdata, units)
	}
	data.Other, data.Temperature, data.Dewpoint = GetTempAndDew(wxdata)

	data.FlightRules = Classify(data.Visibility, GetCeiling(data.Clouds))
	data.RemarksInfo = ParseRemarks(remarks)
	data.Time = o.timestamp(rtime)
	if rtime != "" && !data.Time.Resolved() {
		slog.Debug("unresolved report time", "station", stationID, "time", rtime)
	}
	return data, units, nil
}
