package parser

import (
	"slices"
	"strings"

	"github.com/rmitchellscott/wxdecode/value"
)

// SanitizeReportList repairs token-level damage in a report body. It returns
// the cleaned tokens, any runway visibility groups and the wind shear group.
// CLR and SKC are dropped only when removeClear is set.
func SanitizeReportList(wxdata []string, removeClear bool) ([]string, []string, string) {
	wxdata = slices.Clone(wxdata)
	var (
		shear     string
		runwayVis []string
	)
	for i := len(wxdata) - 1; i >= 0; i-- {
		item := wxdata[i]
		ilen := len(item)
		windLike := isDigits(substr(item, 0, 5)) || strings.HasPrefix(item, "VRB")
		last := charAt(item, ilen-1)

		switch {
		case value.IsUnknown(item):
			wxdata = slices.Delete(wxdata, i, i+1)
		// R24/1200FT
		case ilen > 4 && item[0] == 'R' && (item[3] == '/' || item[4] == '/') && isDigits(item[1:3]):
			runwayVis = append(runwayVis, item)
			wxdata = slices.Delete(wxdata, i, i+1)
		case (ilen == 4 || ilen == 6) && strings.HasPrefix(item, "RE"):
			wxdata[i] = item[2:]
		case i > 0 && extraSpaceExists(wxdata[i-1], item):
			wxdata[i-1] += item
			wxdata = slices.Delete(wxdata, i, i+1)
		case slices.Contains(itemRemove, item):
			wxdata = slices.Delete(wxdata, i, i+1)
		case removeClear && (item == "CLR" || item == "SKC"):
			wxdata = slices.Delete(wxdata, i, i+1)
		case itemReplace[item] != "":
			wxdata[i] = itemReplace[item]
		case ilen == 3 && strings.HasPrefix(item, "CC") && isAlpha(item[2]):
			wxdata = slices.Delete(wxdata, i, i+1)
		// WS020/07040KT
		case ilen > 6 && strings.HasPrefix(item, "WS") && item[5] == '/':
			shear = strings.ReplaceAll(item, "KT", "")
			wxdata = slices.Delete(wxdata, i, i+1)
		case ilen > 3 && visPermutations[item[ilen-4:]]:
			wxdata[i] = "P6SM"
		// 36010K, 36010G20T
		case windLike && (last == 'K' || last == 'T') &&
			(ilen == 6 || (ilen == 9 && item[5] == 'G')):
			wxdata[i] = item[:ilen-1] + "KT"
		// TX20/1318ZTN10/1406Z
		case ilen > 16 && len(strings.Split(item, "/")) == 3:
			if split := splitTempGroup(item); split > 0 {
				wxdata[i] = item[:split]
				wxdata = slices.Insert(wxdata, i+1, item[split:])
			}
		}
	}
	slices.Reverse(runwayVis)
	return wxdata, runwayVis, shear
}

// splitTempGroup returns where a glued TX/TN pair divides, or -1.
func splitTempGroup(item string) int {
	switch {
	case strings.HasPrefix(item, "TX"):
		return strings.Index(item, "TN")
	case strings.HasPrefix(item, "TN"):
		return strings.Index(item, "TX")
	}
	return -1
}

// extraSpaceExists reports whether two adjacent tokens are really one group
// split by a stray space.
func extraSpaceExists(str1, str2 string) bool {
	ls1, ls2 := len(str1), len(str2)
	if isDigits(str1) {
		// 10 SM
		if str2 == "SM" || str2 == "0SM" {
			return true
		}
		// 12 /10
		if ls2 > 2 && str2[0] == '/' && isDigits(str2[1:]) {
			return true
		}
	}
	if isDigits(str2) {
		// OVC 040
		if slices.Contains(cloudList, str1) {
			return true
		}
		// 12/ 10
		if ls1 > 2 && str1[ls1-1] == '/' && isDigits(str1[:ls1-1]) {
			return true
		}
		// 12/1 0
		if ls2 == 1 && ls1 > 3 && isDigits(str1[:2]) && strings.Contains(str1, "/") && isDigits(str1[3:]) {
			return true
		}
		// Q 1001
		if str1 == "Q" || str1 == "A" {
			return true
		}
	}
	windLike := isDigits(substr(str1, 0, 5)) ||
		(strings.HasPrefix(str1, "VRB") && isDigits(substr(str1, 3, 5)))
	switch {
	// 36010G20 KT
	case str2 == "KT" && ls1 > 0 && isDigit(str1[ls1-1]) && windLike:
		return true
	// 36010K T
	case str2 == "T" && ls1 >= 6 && windLike && str1[ls1-1] == 'K':
		return true
	// OVC022 CB
	case cloudTranslations[str2] != "" && !slices.Contains(cloudList, str2) &&
		ls1 >= 3 && slices.Contains(cloudList, str1[:3]):
		return true
	// FM 122400
	case (str1 == "FM" || str1 == "TL") &&
		(isDigits(str2) || (ls2 > 1 && str2[ls2-1] == 'Z' && isDigits(str2[:ls2-1]))):
		return true
	// TX 20/10
	case (str1 == "TX" || str1 == "TN") && strings.Contains(str2, "/"):
		return true
	}
	return false
}
