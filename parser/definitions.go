package parser

import (
	"strings"
)

// Cloud cover codes that carry a layer altitude
var cloudList = []string{"FEW", "SCT", "BKN", "OVC"}

// Cloud type and cover codes with their descriptions
var cloudTranslations = map[string]string{
	"OVC": "overcast layer",
	"BKN": "broken layer",
	"SCT": "scattered clouds",
	"FEW": "few clouds",
	"VV":  "vertical visibility",
	"CLR": "sky clear",
	"SKC": "sky clear",
	"AC":  "altocumulus",
	"ACC": "altocumulus castellanus",
	"AS":  "altostratus",
	"CB":  "cumulonimbus",
	"CC":  "cirrocumulus",
	"CI":  "cirrus",
	"CS":  "cirrostratus",
	"CU":  "cumulus",
	"C":   "cumulus",
	"FC":  "fractocumulus",
	"FS":  "fractostratus",
	"NS":  "nimbostratus",
	"SC":  "stratocumulus",
	"ST":  "stratus",
	"TCU": "towering cumulus",
}

// Cloud types that form a ceiling
var ceilingTypes = []string{"OVC", "BKN", "VV"}

// Tokens that end the fixed-format body of a METAR
var metarRemarks = []string{
	" BLU", " BLU+", " WHT", " GRN", " YLO", " AMB", " RED",
	" BECMG", " TEMPO", " INTER", " NOSIG", " RMK", " WIND",
	" QFE", " QFF", " INFO", " RWY", " CHECK",
}

// Altimeter-like prefixes that may close the METAR body
var altimeterSignifiers = []string{" A2", " A3", " Q1", " Q0", " Q9"}

// Tokens that start the free text of a TAF
var tafRemarks = []string{
	"RMK ", "AUTOMATED ", "COR ", "AMD ", "LAST ", "FCST ",
	"CANCEL ", "CHECK ", "WND ", "MOD ", " BY", " QFE", " QFF",
}

// TAF forecast line signifiers
var (
	tafNewline           = []string{"INTER", "BECMG", "TEMPO"}
	tafNewlineStartsWith = []string{"FM", "PROB"}
)

// TAF report header tokens that precede the station
var tafHeaders = []string{"TAF", "AMD", "COR"}

var cardinalDirections = map[string]string{
	"N":  "360",
	"NE": "045",
	"E":  "090",
	"SE": "135",
	"S":  "180",
	"SW": "225",
	"W":  "270",
	"NW": "315",
}

// Character-level repairs applied to the report string after the station
type replacement struct{ old, new string }

var stringReplacements = []replacement{
	{" C A V O K ", " CAVOK "},
	{"?", " "},
}

// Misspelled TAF line signifiers, applied in order
var lineFixes = []replacement{
	{"TEMP0", "TEMPO"},
	{"TEMP O", "TEMPO"},
	{"TMPO", "TEMPO"},
	{"TE MPO", "TEMPO"},
	{"TEMP ", "TEMPO "},
	{"T EMPO", "TEMPO"},
	{" EMPO", " TEMPO"},
	{"TEMO", "TEMPO"},
	{"BECM G", "BECMG"},
	{"BEMCG", "BECMG"},
	{"BE CMG", "BECMG"},
	{"B ECMG", "BECMG"},
	{" BEC ", " BECMG "},
	{"BCEMG", "BECMG"},
	{"BEMG", "BECMG"},
}

// Spurious tokens dropped from the token list
var itemRemove = []string{"AUTO", "COR", "NSC", "NCD", "$", "KT", "M", ".", "RTD", "SPECI", "METAR", "CORR"}

// Literal token substitutions
var itemReplace = map[string]string{
	"CALM": "00000KT",
}

// visPermutations are the garbled spellings of P6SM ("6MPS" is a wind unit).
var visPermutations = func() map[string]bool {
	perms := map[string]bool{}
	var permute func(prefix, rest string)
	permute = func(prefix, rest string) {
		if rest == "" {
			perms[prefix] = true
			return
		}
		for i := range rest {
			permute(prefix+rest[i:i+1], rest[:i]+rest[i+1:])
		}
	}
	permute("", "P6SM")
	delete(perms, "6MPS")
	return perms
}()

func isTafNewline(item string) bool {
	for _, s := range tafNewline {
		if item == s {
			return true
		}
	}
	return false
}

// startsNewLine reports whether a token opens a new TAF forecast line.
func startsNewLine(item string) bool {
	if isTafNewline(item) {
		return true
	}
	for _, start := range tafNewlineStartsWith {
		if strings.HasPrefix(item, start) {
			return true
		}
	}
	return false
}

// isProb reports whether a token is a PROBnn group.
func isProb(item string) bool {
	return len(item) == 6 && strings.HasPrefix(item, "PROB")
}
