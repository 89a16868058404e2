package parser

import (
	"strings"
)

// SanitizeReportString repairs character-level damage in a raw report. The
// first four characters (the station) are never touched.
func SanitizeReportString(txt string) string {
	if len(txt) < 4 {
		return txt
	}
	txt = strings.Join(strings.Fields(txt), " ")
	stid, txt := txt[:4], txt[4:]
	for _, r := range stringReplacements {
		txt = strings.ReplaceAll(txt, r.old, r.new)
	}
	// Ex: TSFEW004SCT012FEW///CBBKN080
	for _, cloud := range cloudList {
		txt = spaceCloudLayers(txt, cloud)
	}
	return stid + txt
}

// spaceCloudLayers inserts a space before every cloud code that is glued to
// the previous token and followed by a height (or ///). Each occurrence is
// visited once, so the loop is bounded by the occurrence count.
func spaceCloudLayers(txt, cloud string) string {
	limit := strings.Count(txt, cloud)
	start := 0
	for n := 0; n < limit; n++ {
		idx := strings.Index(txt[start:], cloud)
		if idx < 0 {
			break
		}
		idx += start
		if idx > 0 && txt[idx-1] != ' ' {
			target := substr(txt, idx+len(cloud), idx+len(cloud)+3)
			if target == "" || isDigits(target) || strings.Trim(target, "/") == "" {
				txt = txt[:idx] + " " + txt[idx:]
				idx++
			}
		}
		start = idx + len(cloud)
	}
	return txt
}

// SanitizeLine fixes misspelled TAF line signifiers and separates BECMG and
// TEMPO from a glued following token.
func SanitizeLine(txt string) string {
	for _, fix := range lineFixes {
		txt = strings.ReplaceAll(txt, fix.old, fix.new)
	}
	for _, item := range []string{"BECMG", "TEMPO"} {
		limit := strings.Count(txt, item)
		start := 0
		for n := 0; n < limit; n++ {
			idx := strings.Index(txt[start:], item)
			if idx < 0 {
				break
			}
			end := start + idx + len(item)
			if end < len(txt) && txt[end] != ' ' {
				txt = txt[:end] + " " + txt[end:]
			}
			start = end
		}
	}
	return txt
}
