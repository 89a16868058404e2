package parser

import (
	"slices"
	"strconv"
	"strings"

	"github.com/rmitchellscott/wxdecode/station"
	"github.com/rmitchellscott/wxdecode/value"
)

// Wind is the surface wind group of a report or forecast line.
type Wind struct {
	Direction         *value.Number   `json:"direction" yaml:"direction"`
	Speed             *value.Number   `json:"speed" yaml:"speed"`
	Gust              *value.Number   `json:"gust" yaml:"gust"`
	VariableDirection []*value.Number `json:"variable_direction,omitempty" yaml:"variable_direction,omitempty"`
}

// GetStationAndTime pops the station and, when present, the report time.
// A bare six-digit time gets the missing Z appended.
func GetStationAndTime(wxdata []string) ([]string, string, string) {
	if len(wxdata) == 0 {
		return wxdata, "", ""
	}
	stationID, wxdata := wxdata[0], slices.Clone(wxdata[1:])
	var rtime string
	if len(wxdata) > 0 {
		q := wxdata[0]
		switch {
		case len(q) > 1 && strings.HasSuffix(q, "Z") && isDigits(q[:len(q)-1]):
			rtime = q
			wxdata = wxdata[1:]
		case len(q) == 6 && isDigits(q):
			rtime = q + "Z"
			wxdata = wxdata[1:]
		}
	}
	return wxdata, stationID, rtime
}

// GetWind pops the wind group, an optional detached gust and an optional
// variable direction range. The wind speed unit is recorded on units.
func GetWind(wxdata []string, units *value.Units) ([]string, Wind) {
	wxdata = slices.Clone(wxdata)
	var direction, speed, gust string
	if len(wxdata) > 0 {
		item := strings.ReplaceAll(wxdata[0], "(E)", "")
		item = strings.ReplaceAll(item, "O", "0")
		hasUnit := strings.HasSuffix(item, "KT") || strings.HasSuffix(item, "KTS") ||
			strings.HasSuffix(item, "MPS") || strings.HasSuffix(item, "KMH")
		shaped := len(item) == 5 || (len(item) >= 8 && strings.Contains(item, "G") && !strings.Contains(item, "/"))
		numeric := isDigits(substr(item, 0, 5)) ||
			(strings.HasPrefix(item, "VRB") && isDigits(substr(item, 3, 5)))
		if hasUnit || (shaped && numeric) {
			switch {
			case strings.HasSuffix(item, "KT"):
				item = strings.ReplaceAll(item, "KT", "")
			case strings.HasSuffix(item, "KTS"):
				item = strings.ReplaceAll(item, "KTS", "")
			case strings.HasSuffix(item, "MPS"):
				units.WindSpeed = value.UnitMPS
				item = strings.ReplaceAll(item, "MPS", "")
			case strings.HasSuffix(item, "KMH"):
				units.WindSpeed = value.UnitKMH
				item = strings.ReplaceAll(item, "KMH", "")
			}
			direction = substr(item, 0, 3)
			if g := strings.Index(item, "G"); g > -1 {
				speed, gust = substr(item, 3, g), item[g+1:]
			} else {
				speed = substr(item, 3, len(item))
			}
			wxdata = wxdata[1:]
		}
	}

	// G25
	if len(wxdata) > 0 {
		if item := wxdata[0]; len(item) > 1 && len(item) < 4 && item[0] == 'G' && isDigits(item[1:]) {
			gust = item[1:]
			wxdata = wxdata[1:]
		}
	}

	var variable []*value.Number
	// 350V040
	if len(wxdata) > 0 {
		if item := wxdata[0]; len(item) == 7 && item[3] == 'V' && isDigits(item[:3]) && isDigits(item[4:]) {
			for _, dir := range []string{item[:3], item[4:]} {
				variable = append(variable, value.MakeNumber(dir, value.WithSpoken(dir)))
			}
			wxdata = wxdata[1:]
		}
	}

	if deg, ok := cardinalDirections[direction]; ok {
		direction = deg
	}
	return wxdata, Wind{
		Direction:         value.MakeNumber(direction, value.WithSpoken(direction)),
		Speed:             value.MakeNumber(speed),
		Gust:              value.MakeNumber(gust),
		VariableDirection: variable,
	}
}

// GetVisibility pops the prevailing visibility. The visibility unit is
// recorded on units.
func GetVisibility(wxdata []string, units *value.Units) ([]string, *value.Number) {
	wxdata = slices.Clone(wxdata)
	if len(wxdata) == 0 {
		return wxdata, nil
	}
	var visibility string
	item := wxdata[0]
	switch {
	case strings.HasSuffix(item, "SM"):
		vis := item[:strings.Index(item, "SM")]
		switch {
		case item == "P6SM" || item == "M1/4SM" || strings.Contains(vis, "/"):
			visibility = vis
		default:
			if n, err := strconv.Atoi(vis); err == nil {
				visibility = strconv.Itoa(n)
			} else {
				visibility = vis
			}
		}
		units.Visibility = value.UnitSM
		wxdata = wxdata[1:]
	// 9999
	case len(item) == 4 && isDigits(item):
		visibility = item
		units.Visibility = value.UnitM
		wxdata = wxdata[1:]
	// 2000NE, 4000NDV
	case len(item) >= 5 && len(item) <= 7 && isDigits(item[:4]) &&
		(strings.ContainsRune("MNSEW", rune(item[4])) || item[4:] == "NDV"):
		visibility = item[:4]
		units.Visibility = value.UnitM
		wxdata = wxdata[1:]
	// P1000, M0050
	case len(item) == 5 && isDigits(item[1:]) && strings.ContainsRune("MPB", rune(item[0])):
		visibility = item[1:]
		units.Visibility = value.UnitM
		wxdata = wxdata[1:]
	// 10KM
	case strings.HasSuffix(item, "KM") && isDigits(strings.TrimSuffix(item, "KM")):
		visibility = strings.TrimSuffix(item, "KM") + "000"
		units.Visibility = value.UnitM
		wxdata = wxdata[1:]
	// 2 1/2SM
	case len(wxdata) > 1 && isDigits(item) && strings.HasSuffix(wxdata[1], "SM") && strings.Contains(wxdata[1], "/"):
		if frac := mixedFraction(item, strings.TrimSuffix(wxdata[1], "SM")); frac != "" {
			visibility = frac
			units.Visibility = value.UnitSM
			wxdata = wxdata[2:]
		}
	}
	return wxdata, value.MakeNumber(visibility)
}

// mixedFraction folds "2" and "1/2" into the improper fraction "5/2".
func mixedFraction(whole, frac string) string {
	w, err := strconv.Atoi(whole)
	if err != nil {
		return ""
	}
	num, den, ok := strings.Cut(frac, "/")
	if !ok {
		return ""
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return ""
	}
	d, err := strconv.Atoi(den)
	if err != nil || d == 0 {
		return ""
	}
	return strconv.Itoa(w*d+n) + "/" + den
}

// GetAltimeter pops the altimeter from the end of the token list. Which of
// an A or Q group wins when both are reported depends on the station format.
func GetAltimeter(wxdata []string, units *value.Units, format station.Format) ([]string, *value.Number) {
	wxdata = slices.Clone(wxdata)
	if len(wxdata) == 0 {
		return wxdata, nil
	}
	pop := func() string {
		last := wxdata[len(wxdata)-1]
		wxdata = wxdata[:len(wxdata)-1]
		return last
	}
	prevIs := func(c byte) bool {
		return len(wxdata) >= 2 && charAt(wxdata[len(wxdata)-2], 0) == c
	}

	var altimeter string
	target := wxdata[len(wxdata)-1]
	switch format {
	case station.NorthAmerican:
		switch {
		case charAt(target, 0) == 'A':
			altimeter = pop()[1:]
		case charAt(target, 0) == 'Q':
			if prevIs('A') {
				pop()
				altimeter = pop()[1:]
			} else {
				units.Altimeter = value.UnitHPa
				altimeter = strings.TrimLeft(pop()[1:], ".")
			}
		case len(target) == 4 && isDigits(target):
			altimeter = pop()
		}
	default:
		switch charAt(target, 0) {
		case 'Q':
			altimeter = strings.TrimLeft(pop()[1:], ".")
			if i := strings.Index(altimeter, "/"); i > -1 {
				altimeter = altimeter[:i]
			}
		case 'A':
			if prevIs('Q') {
				pop()
				altimeter = strings.TrimLeft(pop()[1:], ".")
			} else {
				units.Altimeter = value.UnitInHg
				altimeter = pop()[1:]
			}
		}
	}
	// Some stations report both, but only one is needed
	if len(wxdata) > 0 {
		if last := wxdata[len(wxdata)-1]; (charAt(last, 0) == 'A' || charAt(last, 0) == 'Q') && isDigit(charAt(last, 1)) {
			pop()
		}
	}

	if altimeter == "" || strings.Trim(altimeter, "M") == "" {
		return wxdata, nil
	}
	val := strings.TrimSuffix(altimeter, "INS")
	if units.Altimeter == value.UnitInHg && !strings.Contains(val, ".") {
		val = substr(val, 0, 2) + "." + substr(val, 2, len(val))
	}
	val = strings.TrimLeftFunc(val, func(r rune) bool { return r < '0' || r > '9' })
	return wxdata, value.MakeNumber(val, value.WithRepr(altimeter))
}

// GetTempAndDew removes the last temperature/dewpoint group and returns both
// halves. MM and XX halves are missing values.
func GetTempAndDew(wxdata []string) ([]string, *value.Number, *value.Number) {
	wxdata = slices.Clone(wxdata)
	for i := len(wxdata) - 1; i >= 0; i-- {
		item := wxdata[i]
		if !strings.Contains(item, "/") {
			continue
		}
		switch {
		case item[0] == '/':
			item = "/" + strings.TrimLeft(item, "/")
		case item[len(item)-1] == '/':
			item = strings.TrimRight(item, "/") + "/"
		}
		parts := strings.Split(item, "/")
		if len(parts) != 2 {
			continue
		}
		valid := true
		for j, p := range parts {
			if p == "MM" || p == "XX" {
				parts[j] = ""
			} else if !isPossibleTemp(p) {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}
		wxdata = slices.Delete(wxdata, i, i+1)
		return wxdata, value.MakeNumber(parts[0]), value.MakeNumber(parts[1])
	}
	return wxdata, nil, nil
}

// GetTafAltIceTurb pops the QNH altimeter plus the icing (6xxxxx) and
// turbulence (5xxxxx) groups of a forecast line.
func GetTafAltIceTurb(wxdata []string) ([]string, string, []string, []string) {
	wxdata = slices.Clone(wxdata)
	var (
		altimeter         string
		icing, turbulence []string
	)
	for i := len(wxdata) - 1; i >= 0; i-- {
		item := wxdata[i]
		switch {
		// QNH2992INS
		case len(item) > 6 && strings.HasPrefix(item, "QNH") && isDigits(item[3:7]):
			altimeter = item[3:7]
			wxdata = slices.Delete(wxdata, i, i+1)
		case isDigits(item) && item[0] == '6':
			icing = append(icing, item)
			wxdata = slices.Delete(wxdata, i, i+1)
		case isDigits(item) && item[0] == '5':
			turbulence = append(turbulence, item)
			wxdata = slices.Delete(wxdata, i, i+1)
		}
	}
	slices.Reverse(icing)
	slices.Reverse(turbulence)
	return wxdata, altimeter, icing, turbulence
}

// GetTempMinAndMax pops the TX and TN groups. Unlabelled T groups are sorted
// into max and min by value.
func GetTempMinAndMax(wxdata []string) ([]string, string, string) {
	wxdata = slices.Clone(wxdata)
	var tempMax, tempMin string
	for i := len(wxdata) - 1; i >= 0; i-- {
		item := wxdata[i]
		if len(item) <= 6 || item[0] != 'T' || !strings.Contains(item, "/") {
			continue
		}
		switch {
		case item[1] == 'X':
			tempMax = item
		case item[1] == 'N':
			tempMin = item
		case item[1] == 'M' || isDigit(item[1]):
			if tempMin == "" {
				tempMin = "TN" + item[1:]
				break
			}
			prev, err1 := tempValue(tempMin[2:])
			cur, err2 := tempValue(item[1:])
			if err1 == nil && err2 == nil && prev > cur {
				tempMax = "TX" + tempMin[2:]
				tempMin = "TN" + item[1:]
			} else {
				tempMax = "TX" + item[1:]
			}
		default:
			continue
		}
		wxdata = slices.Delete(wxdata, i, i+1)
	}
	return wxdata, tempMax, tempMin
}

// tempValue reads the signed degrees before the slash of "M05/1218Z".
func tempValue(group string) (int, error) {
	deg, _, _ := strings.Cut(group, "/")
	return strconv.Atoi(strings.Replace(deg, "M", "-", 1))
}

// GetOceaniaTempAndAlt pops the T and Q forecast lists used by Australian
// stations: the letter followed by a run of numeric tokens.
func GetOceaniaTempAndAlt(wxdata []string) ([]string, []string, []string) {
	wxdata = slices.Clone(wxdata)
	var temps, alts []string
	wxdata, temps = popDigitList(wxdata, "T")
	wxdata, alts = popDigitList(wxdata, "Q")
	return wxdata, temps, alts
}

// popDigitList pops a marker token and the run of numeric tokens after it.
// A marker glued to its first value ("Q1013 1012") is accepted too.
func popDigitList(wxdata []string, marker string) ([]string, []string) {
	var list []string
	idx := slices.Index(wxdata, marker)
	if idx < 0 {
		idx = slices.IndexFunc(wxdata, func(s string) bool {
			return strings.HasPrefix(s, marker) && isDigits(s[len(marker):])
		})
		if idx < 0 || idx+1 >= len(wxdata) || !isDigits(wxdata[idx+1]) {
			return wxdata, nil
		}
		list = append(list, wxdata[idx][len(marker):])
	}
	end := idx + 1
	for end < len(wxdata) && isDigits(wxdata[end]) {
		end++
	}
	list = append(list, wxdata[idx+1:end]...)
	return slices.Delete(wxdata, idx, end), list
}
