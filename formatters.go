package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/rmitchellscott/wxdecode/parser"
	"github.com/rmitchellscott/wxdecode/value"
)

// Color definitions using fatih/color
var (
	labelColor      = color.New(color.FgCyan)
	dateColor       = color.New(color.FgGreen)
	sectionColor    = color.New(color.FgBlue)
	numberColor     = color.New(color.FgGreen)
	remarkCodeColor = color.New(color.FgGreen)
	functionColor   = color.New(color.FgMagenta)

	// Age-based colors
	freshColor   = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	expiredColor = color.New(color.FgRed)
)

var flightRulesColors = map[parser.FlightRules]*color.Color{
	parser.VFR:  color.New(color.FgGreen, color.Bold),
	parser.MVFR: color.New(color.FgBlue, color.Bold),
	parser.IFR:  color.New(color.FgRed, color.Bold),
	parser.LIFR: color.New(color.FgMagenta, color.Bold),
}

const timeLayout = "2006-01-02 15:04 UTC"

// Output formats accepted by -format
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// decodedMETAR and decodedTAF are the documents written for -format json|yaml.
type decodedMETAR struct {
	Site  SiteInfo          `json:"site" yaml:"site"`
	Units *value.Units      `json:"units" yaml:"units"`
	Data  *parser.MetarData `json:"metar" yaml:"metar"`
}

type decodedTAF struct {
	Site  SiteInfo        `json:"site" yaml:"site"`
	Units *value.Units    `json:"units" yaml:"units"`
	Data  *parser.TafData `json:"taf" yaml:"taf"`
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, v any, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q", format)
}

// numberText prints a Number's value without trailing zeros, or its report
// text when it has no value.
func numberText(n *value.Number) string {
	if v, ok := n.Float(); ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return n.String()
}

var windUnitLabels = map[string]string{
	value.UnitKt:  "knots",
	value.UnitMPS: "meters per second",
	value.UnitKMH: "kilometers per hour",
}

// formatWind converts a decoded wind to a human-readable string
func formatWind(wind parser.Wind, unit string) string {
	if wind.Direction == nil && wind.Speed == nil {
		return ""
	}
	speed, _ := wind.Speed.Float()
	dir, hasDir := wind.Direction.Float()
	if speed == 0 && wind.Speed != nil && (!hasDir || dir == 0) && wind.Gust == nil {
		return "Calm"
	}

	var sb strings.Builder
	switch {
	case wind.Direction.String() == "VRB":
		sb.WriteString("Variable")
	case hasDir:
		fmt.Fprintf(&sb, "From %s°", wind.Direction.Repr)
	}

	unitLabel := windUnitLabels[unit]
	if unitLabel == "" {
		unitLabel = unit
	}
	if wind.Speed != nil {
		fmt.Fprintf(&sb, " at %s %s", numberText(wind.Speed), unitLabel)
	}
	if wind.Gust != nil {
		fmt.Fprintf(&sb, ", gusting to %s %s", numberText(wind.Gust), unitLabel)
	}
	if len(wind.VariableDirection) == 2 {
		fmt.Fprintf(&sb, " (varying between %s° and %s°)",
			wind.VariableDirection[0].String(), wind.VariableDirection[1].String())
	}
	return strings.TrimSpace(sb.String())
}

// formatVisibility converts a decoded visibility to a human-readable string
func formatVisibility(vis *value.Number, unit string) string {
	if vis == nil {
		return ""
	}
	if vis.Repr == "CAVOK" {
		return "Greater than 10 km"
	}

	unitLabel := "meters"
	if unit == value.UnitSM {
		unitLabel = "statute miles"
	}
	amount := numberText(vis)
	if vis.Kind() == value.KindFraction {
		amount = vis.Fraction.Normalized
	} else if v, ok := vis.Float(); ok && unit == value.UnitM {
		if v >= 9999 {
			return "10 km or more"
		}
		amount = formatNumberWithCommas(int(v))
	}

	switch {
	case strings.HasPrefix(vis.Repr, "P"):
		return "Greater than " + amount + " " + unitLabel
	case strings.HasPrefix(vis.Repr, "M"):
		return "Less than " + amount + " " + unitLabel
	}
	return amount + " " + unitLabel
}

// formatClouds converts cloud layers to a human-readable string
func formatClouds(clouds []parser.Cloud, units *value.Units) string {
	var cloudStrs []string
	for _, cloud := range clouds {
		desc := cloud.Description()
		if cloud.Altitude != nil {
			if feet, err := units.CloudBaseFeet(*cloud.Altitude); err == nil {
				desc = fmt.Sprintf("%s at %s feet", desc, formatNumberWithCommas(int(math.Round(feet))))
			}
		}
		if cloud.Modifier != "" {
			desc = fmt.Sprintf("%s (%s)", desc, parser.Cloud{Type: cloud.Modifier}.Description())
		}
		cloudStrs = append(cloudStrs, desc)
	}
	return strings.Join(cloudStrs, ", ")
}

// formatWeather reads out the tokens no extractor claimed
func formatWeather(other []string) string {
	descs := make([]string, 0, len(other))
	for _, tok := range other {
		descs = append(descs, describeOther(tok))
	}
	return strings.Join(descs, ", ")
}

// formatTemperature prints a temperature in Celsius and Fahrenheit
func formatTemperature(n *value.Number) string {
	c, ok := n.Float()
	if !ok {
		return "Not available"
	}
	return fmt.Sprintf("%s°C | %.0f°F", numberText(n), CelsiusToFahrenheit(c))
}

// formatPressure prints an altimeter setting with its conversion to the
// opposite unit.
func formatPressure(n *value.Number, unit string) string {
	v, ok := n.Float()
	if !ok {
		return ""
	}
	if unit == value.UnitInHg {
		hpa, err := value.ConvertAltimeter(v, value.UnitInHg, value.UnitHPa)
		if err != nil {
			return fmt.Sprintf("%.2f inHg", v)
		}
		return fmt.Sprintf("%.2f inHg | %.0f hPa", v, hpa)
	}
	inhg, err := value.ConvertAltimeter(v, unit, value.UnitInHg)
	if err != nil {
		return fmt.Sprintf("%.0f %s", v, unit)
	}
	return fmt.Sprintf("%.0f %s | %.2f inHg", v, unit, inhg)
}

// getMetarAgeColor returns the appropriate color based on METAR age
func getMetarAgeColor(t, now time.Time) *color.Color {
	minutes := int(now.Sub(t).Minutes())
	if minutes > 60 {
		return expiredColor
	} else if minutes > 30 {
		return warningColor
	}
	return freshColor
}

// getTafAgeColor returns the appropriate color based on TAF age
func getTafAgeColor(t, now time.Time) *color.Color {
	hours := now.Sub(t).Hours()
	if hours > 6.0 {
		return expiredColor
	} else if hours > 5.5 {
		return warningColor
	}
	return freshColor
}

func writeLabel(sb *strings.Builder, indent, label, text string) {
	if text == "" {
		return
	}
	sb.WriteString(indent)
	labelColor.Fprint(sb, label+": ")
	sb.WriteString(text + "\n")
}

func writeStation(sb *strings.Builder, code string, site SiteInfo) {
	labelColor.Fprint(sb, "Station: ")
	sb.WriteString(code)
	if site.Name != "" && site.Name != code {
		sb.WriteString(" (" + site.String() + ")")
	}
	sb.WriteString("\n")
}

func writeFlightRules(sb *strings.Builder, indent string, rules parser.FlightRules) {
	sb.WriteString(indent)
	labelColor.Fprint(sb, "Flight Rules: ")
	flightRulesColors[rules].Fprint(sb, rules.String())
	sb.WriteString("\n")
}

// FormatMETAR formats a decoded METAR for display with colors
func FormatMETAR(m *parser.MetarData, units *value.Units, site SiteInfo, now time.Time) string {
	var sb strings.Builder

	writeStation(&sb, m.Station, site)

	if m.Time.Resolved() {
		t := *m.Time.Time
		labelColor.Fprint(&sb, "Time: ")
		dateColor.Fprint(&sb, t.Format(timeLayout))
		sb.WriteString(" ")
		getMetarAgeColor(t, now).Fprint(&sb, relativeTimeString(t, now))
		sb.WriteString("\n")
	}

	writeFlightRules(&sb, "", m.FlightRules)
	writeLabel(&sb, "", "Wind", formatWind(m.Wind, units.WindSpeed))
	writeLabel(&sb, "", "Wind Shear", m.WindShear)
	writeLabel(&sb, "", "Visibility", formatVisibility(m.Visibility, units.Visibility))
	writeLabel(&sb, "", "Weather", capitalizeFirst(formatWeather(m.Other)))
	writeLabel(&sb, "", "Clouds", capitalizeFirst(formatClouds(m.Clouds, units)))

	// Remarks carry tenths of a degree when the station reports them
	temp, dew := m.Temperature, m.Dewpoint
	if m.RemarksInfo.TemperatureDecimal != nil {
		temp = m.RemarksInfo.TemperatureDecimal
	}
	if m.RemarksInfo.DewpointDecimal != nil {
		dew = m.RemarksInfo.DewpointDecimal
	}
	writeLabel(&sb, "", "Temperature", formatTemperature(temp))
	writeLabel(&sb, "", "Dew Point", formatTemperature(dew))
	if tc, ok := temp.Float(); ok {
		if dc, ok := dew.Float(); ok {
			writeLabel(&sb, "", "Humidity", fmt.Sprintf("%.0f%%", RelativeHumidity(tc, dc)))
		}
	}
	writeLabel(&sb, "", "Pressure", formatPressure(m.Altimeter, units.Altimeter))

	if len(m.RunwayVisibility) > 0 {
		sb.WriteString("\n")
		sectionColor.Fprintln(&sb, "Runway Visual Range:")
		for _, rvr := range m.RunwayVisibility {
			sb.WriteString("  " + describeRVR(rvr) + "\n")
		}
	}

	if len(m.RemarksInfo.Codes) > 0 {
		sb.WriteString("\n")
		sectionColor.Fprintln(&sb, "Remarks:")
		for _, remark := range m.RemarksInfo.Codes {
			sb.WriteString("  ")
			remarkCodeColor.Fprint(&sb, remark.Raw+": ")
			sb.WriteString(capitalizeFirst(remark.Description) + "\n")
		}
	} else if m.Remarks != "" {
		sb.WriteString("\n")
		writeLabel(&sb, "", "Remarks", m.Remarks)
	}

	return sb.String()
}

// formatTafTemp reads out a TX/TN group such as TX20/1218Z.
func formatTafTemp(group string) string {
	if len(group) < 3 {
		return ""
	}
	deg, when, _ := strings.Cut(group[2:], "/")
	deg = strings.Replace(deg, "M", "-", 1)
	when = strings.TrimSuffix(when, "Z")
	if len(when) == 4 {
		return fmt.Sprintf("%s°C on day %s at %s:00 UTC", deg, when[:2], when[2:])
	}
	return deg + "°C"
}

// forecastLabel names a forecast line, e.g. "30% Probability Temporary".
func forecastLabel(line parser.TafLine, index int) string {
	label := forecastTypes[line.Type]
	if label == "" {
		label = line.Type
	}
	if index == 0 && line.Type == "FROM" {
		label = "Base Forecast"
	}
	if line.Probability != nil {
		prob := numberText(line.Probability) + "% Probability"
		if strings.HasPrefix(line.Type, "PROB") {
			return prob
		}
		return prob + " " + label
	}
	return label
}

// FormatTAF formats a decoded TAF for display with colors
func FormatTAF(t *parser.TafData, units *value.Units, site SiteInfo, now time.Time) string {
	var sb strings.Builder

	writeStation(&sb, t.Station, site)

	if t.Time.Resolved() {
		issued := *t.Time.Time
		labelColor.Fprint(&sb, "Issued: ")
		dateColor.Fprint(&sb, issued.Format(timeLayout))
		sb.WriteString(" ")
		getTafAgeColor(issued, now).Fprint(&sb, relativeTimeString(issued, now))
		sb.WriteString("\n")
	}

	if t.StartTime.Resolved() && t.EndTime.Resolved() {
		labelColor.Fprint(&sb, "Valid: ")
		dateColor.Fprint(&sb, t.StartTime.Time.Format(timeLayout))
		sb.WriteString(" to ")
		dateColor.Fprint(&sb, t.EndTime.Time.Format(timeLayout))
		sb.WriteString("\n")
	}
	writeLabel(&sb, "", "Max Temperature", formatTafTemp(t.MaxTemp))
	writeLabel(&sb, "", "Min Temperature", formatTafTemp(t.MinTemp))
	writeLabel(&sb, "", "Temperatures", strings.Join(t.Temps, ", "))
	writeLabel(&sb, "", "QNH", strings.Join(t.Alts, ", "))

	sb.WriteString("\n")
	sectionColor.Fprintln(&sb, "Forecast Periods:")

	for i, line := range t.Lines {
		sb.WriteString("\n")
		numberColor.Fprintf(&sb, "%d. ", i+1)
		sb.WriteString(forecastLabel(line, i))

		if line.StartTime.Resolved() {
			sb.WriteString(" ")
			dateColor.Fprint(&sb, line.StartTime.Time.Format(timeLayout))
			if line.EndTime.Resolved() {
				sb.WriteString(" to ")
				dateColor.Fprint(&sb, line.EndTime.Time.Format(timeLayout))
			} else {
				sb.WriteString(" until end of forecast")
			}
		}
		sb.WriteString("\n")

		writeFlightRules(&sb, "   ", line.FlightRules)
		writeLabel(&sb, "   ", "Wind", formatWind(line.Wind, units.WindSpeed))
		writeLabel(&sb, "   ", "Wind Shear", line.WindShear)
		writeLabel(&sb, "   ", "Visibility", formatVisibility(line.Visibility, units.Visibility))
		writeLabel(&sb, "   ", "Weather", capitalizeFirst(formatWeather(line.Other)))
		writeLabel(&sb, "   ", "Clouds", capitalizeFirst(formatClouds(line.Clouds, units)))
		writeLabel(&sb, "   ", "Pressure", formatPressure(line.Altimeter, units.Altimeter))
		writeLabel(&sb, "   ", "Icing", strings.Join(line.Icing, ", "))
		writeLabel(&sb, "   ", "Turbulence", strings.Join(line.Turbulence, ", "))
	}

	if t.Remarks != "" {
		sb.WriteString("\n")
		writeLabel(&sb, "", "Remarks", t.Remarks)
	}

	return sb.String()
}

// capitalizeFirst capitalizes the first letter of a string
func capitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatNumberWithCommas adds thousands separators to a number
func formatNumberWithCommas(n int) string {
	numStr := strconv.Itoa(n)

	var sb strings.Builder
	for i, c := range numStr {
		if i > 0 && (len(numStr)-i)%3 == 0 && numStr[i-1] != '-' {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
