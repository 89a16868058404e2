package parser

import (
	"strings"
)

// SplitRemarks separates a sanitized METAR into its body tokens and the free
// text remarks. The body ends after the first altimeter group or at the first
// remark signifier, whichever comes first.
func SplitRemarks(txt string) ([]string, string) {
	txt = strings.TrimSpace(strings.ReplaceAll(txt, "?", ""))

	altIndex := -1
	for _, item := range altimeterSignifiers {
		for start := 0; start < len(txt); {
			idx := strings.Index(txt[start:], item)
			if idx < 0 {
				break
			}
			idx += start
			if len(txt)-6 > idx && isDigits(txt[idx+2:idx+6]) {
				if altIndex == -1 || idx < altIndex {
					altIndex = idx
				}
				break
			}
			start = idx + 1
		}
	}
	sigIndex := findFirstInList(txt, metarRemarks)

	var body, remarks string
	switch {
	case altIndex > -1 && (sigIndex == -1 || altIndex < sigIndex):
		body, remarks = txt[:altIndex+6], substr(txt, altIndex+7, len(txt))
	case sigIndex > -1:
		body, remarks = txt[:sigIndex], txt[sigIndex+1:]
	default:
		body = txt
	}
	return strings.Fields(body), strings.TrimSpace(remarks)
}

// SplitTafRemarks splits a TAF body from the free text that trails it.
func SplitTafRemarks(txt string) (string, string) {
	start := findFirstInList(txt, tafRemarks)
	if start == -1 {
		return txt, ""
	}
	return strings.TrimSpace(txt[:start]), strings.TrimSpace(txt[start:])
}
