package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rmitchellscott/wxdecode/value"
)

// Remark is one decoded remark group.
type Remark struct {
	Raw         string `json:"raw" yaml:"raw"`
	Description string `json:"description" yaml:"description"`
}

// RemarksData is what could be read out of the RMK section of a METAR.
type RemarksData struct {
	TemperatureDecimal *value.Number `json:"temperature_decimal" yaml:"temperature_decimal"`
	DewpointDecimal    *value.Number `json:"dewpoint_decimal" yaml:"dewpoint_decimal"`
	Codes              []Remark      `json:"codes" yaml:"codes"`
}

// Common remark codes and their descriptions
var remarkCodes = map[string]string{
	"AO1":    "automated station without precipitation sensor",
	"AO2":    "automated station with precipitation sensor",
	"AO1A":   "automated station without precipitation sensor",
	"AO2A":   "automated station with precipitation sensor",
	"RMK":    "remarks indicator",
	"PRESRR": "pressure rising rapidly",
	"PRESFR": "pressure falling rapidly",
	"NOSIG":  "no significant changes expected",
	"TEMPO":  "temporary",
	"BECMG":  "becoming",
	"VIRGA":  "precipitation not reaching ground",
	"FROPA":  "frontal passage",
	"SLPNO":  "sea level pressure not available",
	"PNO":    "precipitation amount not available",
	"TSNO":   "thunderstorm information not available",
	"$":      "weather observing equipment requires maintenance",
}

// Weather phenomena for begin/end remarks
var precipitationTypes = map[string]string{
	"RA":   "rain",
	"SN":   "snow",
	"DZ":   "drizzle",
	"GR":   "hail",
	"GS":   "small hail",
	"PE":   "ice pellets",
	"IC":   "ice crystals",
	"PL":   "ice pellets",
	"SG":   "snow grains",
	"TS":   "thunderstorm",
	"FG":   "fog",
	"FU":   "smoke",
	"VA":   "volcanic ash",
	"DU":   "dust",
	"SA":   "sand",
	"HZ":   "haze",
	"PY":   "spray",
	"BR":   "mist",
	"SHSN": "snow shower",
	"SHRA": "rain shower",
	"SHPE": "ice pellet shower",
	"SHPL": "ice pellet shower",
	"SHGR": "hail shower",
	"SHGS": "small hail shower",
}

var pressureTendencies = map[byte]string{
	'0': "increasing, then decreasing",
	'1': "increasing, then steady",
	'2': "increasing steadily",
	'3': "increasing, then increasing more rapidly",
	'4': "steady",
	'5': "decreasing, then increasing",
	'6': "decreasing, then steady",
	'7': "decreasing steadily",
	'8': "decreasing, then decreasing more rapidly",
}

var (
	peakWindRegex    = regexp.MustCompile(`^PK\s+WND\s+(\d{3})(\d{2,3})/(\d{2})?(\d{2})$`)
	precipBERegex    = regexp.MustCompile(`^(SHSN|SHRA|SHPE|SHPL|SHGR|SHGS|RA|SN|DZ|GR|GS|PE|IC|PL|SG|TS|FG|FU|VA|DU|SA|HZ|PY|BR)(B|E)(\d{2})$`)
	tempDecimalRegex = regexp.MustCompile(`^T([01])(\d{3})(?:([01])(\d{3}))?$`)
	hourlyPrecipRe   = regexp.MustCompile(`^P(\d{4})$`)
)

// ParseRemarks decodes the RMK section of a METAR. Groups it does not know
// are kept with a generic description.
func ParseRemarks(rmk string) RemarksData {
	var data RemarksData
	parts := strings.Fields(rmk)

	for i := 0; i < len(parts); {
		part := parts[i]

		// PK WND 28045/15
		if part == "PK" && i+2 < len(parts) {
			group := strings.Join(parts[i:i+3], " ")
			if m := peakWindRegex.FindStringSubmatch(group); m != nil {
				at := ":" + m[4]
				if m[3] != "" {
					at = m[3] + at
				}
				data.add(group, fmt.Sprintf("peak wind %s° at %s knots at %s", m[1], m[2], at))
				i += 3
				continue
			}
		}

		// SNINCR 2/10
		if part == "SNINCR" && i+1 < len(parts) {
			if inches, total, ok := strings.Cut(parts[i+1], "/"); ok {
				data.add(part+" "+parts[i+1], fmt.Sprintf("snow increasing rapidly: %s inch in the past hour, %s inches on ground", inches, total))
				i += 2
				continue
			}
		}

		// CIG 005V010
		if part == "CIG" && i+1 < len(parts) {
			if height, err := strconv.Atoi(parts[i+1]); err == nil {
				data.add(part+" "+parts[i+1], fmt.Sprintf("variable ceiling height: %d feet", height*100))
				i += 2
				continue
			}
		}

		data.decodeGroup(part)
		i++
	}
	return data
}

func (d *RemarksData) add(raw, description string) {
	d.Codes = append(d.Codes, Remark{Raw: raw, Description: description})
}

// decodeGroup decodes a single-token remark group.
func (d *RemarksData) decodeGroup(part string) {
	if desc, ok := remarkCodes[part]; ok {
		d.add(part, desc)
		return
	}

	// T01330122
	if m := tempDecimalRegex.FindStringSubmatch(part); m != nil {
		d.TemperatureDecimal = tenthsNumber(m[1], m[2])
		desc := fmt.Sprintf("temperature %s°C", d.TemperatureDecimal.Repr)
		if m[3] != "" {
			d.DewpointDecimal = tenthsNumber(m[3], m[4])
			desc += fmt.Sprintf(", dew point %s°C", d.DewpointDecimal.Repr)
		}
		d.add(part, desc)
		return
	}

	// RAB20, SNE15
	if m := precipBERegex.FindStringSubmatch(part); m != nil {
		action := "began"
		if m[2] == "E" {
			action = "ended"
		}
		minute, _ := strconv.Atoi(m[3])
		d.add(part, fmt.Sprintf("%s %s at %d minutes past the hour", precipitationTypes[m[1]], action, minute))
		return
	}

	// SLP093
	if strings.HasPrefix(part, "SLP") && len(part) == 6 {
		if slp, err := strconv.Atoi(part[3:]); err == nil {
			// tenths of hectopascals with an implied leading 10 or 9
			prefix := 1000.0
			if slp >= 500 {
				prefix = 900.0
			}
			d.add(part, fmt.Sprintf("sea level pressure %.1f hPa", prefix+float64(slp)/10))
			return
		}
	}

	if m := hourlyPrecipRe.FindStringSubmatch(part); m != nil {
		precip, _ := strconv.Atoi(m[1])
		d.add(part, fmt.Sprintf("precipitation of %.2f inches in the last hour", float64(precip)/100))
		return
	}

	if len(part) == 5 && isDigits(part) {
		if desc := numericGroup(part); desc != "" {
			d.add(part, desc)
			return
		}
	}

	// R06L/290050
	if len(part) > 4 && part[0] == 'R' && isDigits(part[1:3]) && strings.Contains(part, "/") {
		d.add(part, "runway visual range or state information")
		return
	}

	// 401001015
	if len(part) == 9 && part[0] == '4' && isDigits(part) {
		maxT := signedTenths(part[1], part[2:5])
		minT := signedTenths(part[5], part[6:9])
		d.add(part, fmt.Sprintf("24-hour temperature range: max %.1f°C, min %.1f°C", maxT, minT))
		return
	}

	d.add(part, "unknown remark code")
}

// numericGroup decodes the five-digit synoptic style groups.
func numericGroup(part string) string {
	switch part[0] {
	case '1':
		return fmt.Sprintf("6-hour maximum temperature %.1f°C", signedTenths(part[1], part[2:]))
	case '2':
		return fmt.Sprintf("6-hour minimum temperature %.1f°C", signedTenths(part[1], part[2:]))
	case '5':
		tendency, ok := pressureTendencies[part[1]]
		if !ok {
			tendency = "unknown"
		}
		change, _ := strconv.Atoi(part[2:])
		return fmt.Sprintf("pressure tendency: %s, %.1f hPa change", tendency, float64(change)/10)
	case '6':
		amount, _ := strconv.Atoi(part[1:])
		return fmt.Sprintf("3 or 6-hour precipitation: %.2f inches", float64(amount)/100)
	case '7':
		amount, _ := strconv.Atoi(part[1:])
		return fmt.Sprintf("24-hour precipitation: %.2f inches", float64(amount)/100)
	}
	return ""
}

func signedTenths(sign byte, digits string) float64 {
	v, _ := strconv.Atoi(digits)
	t := float64(v) / 10
	if sign == '1' {
		t = -t
	}
	return t
}

// tenthsNumber builds a Number such as "-1.5" from a sign digit and three
// digits of tenths.
func tenthsNumber(sign, digits string) *value.Number {
	v, _ := strconv.Atoi(digits[:2])
	s := strconv.Itoa(v) + "." + digits[2:]
	if sign == "1" {
		s = "-" + s
	}
	return value.MakeNumber(s)
}
