// Package value holds the value objects produced by report parsing: numbers
// with their spoken form, fractional visibilities, timestamps and units.
package value

import (
	"log/slog"
	"strconv"
	"strings"

	"k8s.io/utils/ptr"
)

// Kind tags which variant a Number is.
type Kind int

const (
	KindPlain Kind = iota
	KindFraction
)

// Number is a parsed numeric token. Repr is always the original text, Value
// is nil for symbolic tokens such as VRB.
type Number struct {
	Repr     string    `json:"repr" yaml:"repr"`
	Value    *float64  `json:"value" yaml:"value"`
	Spoken   string    `json:"spoken" yaml:"spoken"`
	Fraction *Fraction `json:"fraction,omitempty" yaml:"fraction,omitempty"`
}

// Fraction carries the parts of a fractional Number, e.g. 5/2 -> "2 1/2".
type Fraction struct {
	Numerator   int    `json:"numerator" yaml:"numerator"`
	Denominator int    `json:"denominator" yaml:"denominator"`
	Normalized  string `json:"normalized" yaml:"normalized"`
}

// Kind returns KindFraction for fractional numbers.
func (n *Number) Kind() Kind {
	if n != nil && n.Fraction != nil {
		return KindFraction
	}
	return KindPlain
}

// Float returns the numeric value and whether one is present.
func (n *Number) Float() (float64, bool) {
	if n == nil || n.Value == nil {
		return 0, false
	}
	return *n.Value, true
}

func (n *Number) String() string {
	if n == nil {
		return ""
	}
	return n.Repr
}

var numberWords = map[rune]string{
	'.': "point",
	'-': "minus",
	'0': "zero",
	'1': "one",
	'2': "two",
	'3': "three",
	'4': "four",
	'5': "five",
	'6': "six",
	'7': "seven",
	'8': "eight",
	'9': "niner",
}

var fractionWords = map[string]string{
	"1/4": "one quarter",
	"1/2": "one half",
	"3/4": "three quarters",
}

// Symbolic tokens that are numbers without a numeric value.
var specialNumbers = map[string]string{
	"VRB": "variable",
}

type numberOptions struct {
	repr   string
	spoken string
}

// NumberOption overrides part of what MakeNumber derives from the token.
type NumberOption func(*numberOptions)

// WithRepr keeps repr as the Number's text instead of the parsed token.
func WithRepr(repr string) NumberOption {
	return func(o *numberOptions) { o.repr = repr }
}

// WithSpoken speaks s instead of the parsed value, e.g. to keep leading zeros.
func WithSpoken(s string) NumberOption {
	return func(o *numberOptions) { o.spoken = s }
}

// MakeNumber builds a Number from a report token. It returns nil for empty,
// unknown (all "/" or "X"), NIL, all-dash and all-M tokens.
func MakeNumber(num string, opts ...NumberOption) *Number {
	if num == "" || IsUnknown(num) || num == "NIL" || repeats(num, '-') || repeats(num, 'M') {
		return nil
	}
	if num == "CAVOK" {
		return &Number{Repr: "CAVOK", Value: ptr.To(9999.0), Spoken: "ceiling and visibility ok"}
	}

	var o numberOptions
	for _, opt := range opts {
		opt(&o)
	}
	repr := num
	if o.repr != "" {
		repr = o.repr
	}

	if spoken, ok := specialNumbers[num]; ok {
		return &Number{Repr: repr, Spoken: spoken}
	}
	if strings.Contains(num, "/") {
		return makeFraction(num, repr)
	}

	val, text, ok := parseNumber(num)
	if !ok {
		slog.Debug("token is not numeric", "token", num)
		return &Number{Repr: repr}
	}
	if o.spoken != "" {
		text = o.spoken
	}
	return &Number{Repr: repr, Value: ptr.To(val), Spoken: SpokenNumber(text)}
}

func makeFraction(num, repr string) *Number {
	parts := strings.Split(strings.TrimLeft(num, "MP"), "/")
	if len(parts) != 2 {
		return &Number{Repr: repr}
	}
	nmr, err1 := strconv.Atoi(parts[0])
	dnm, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || dnm == 0 {
		slog.Debug("token is not a fraction", "token", num)
		return &Number{Repr: repr}
	}
	unpacked := UnpackFraction(parts[0] + "/" + parts[1])
	return &Number{
		Repr:   repr,
		Value:  ptr.To(float64(nmr) / float64(dnm)),
		Spoken: SpokenNumber(unpacked),
		Fraction: &Fraction{
			Numerator:   nmr,
			Denominator: dnm,
			Normalized:  unpacked,
		},
	}
}

// parseNumber reads an integer or decimal token where a leading M means minus
// and a leading P means "more than". text is the canonical digits to speak.
func parseNumber(num string) (float64, string, bool) {
	s := strings.ReplaceAll(num, "M", "-")
	s = strings.TrimPrefix(s, "P")
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, "", false
	}
	if val == 0 {
		val = 0 // drop the sign of M00
	}
	text := strconv.FormatFloat(val, 'f', -1, 64)
	if strings.Contains(num, ".") && !strings.Contains(text, ".") {
		text += ".0"
	}
	return val, text, true
}

// UnpackFraction turns an improper fraction into a mixed one: 5/2 -> 2 1/2.
// Anything else is returned unchanged.
func UnpackFraction(num string) string {
	var nums []int
	for _, part := range strings.Split(num, "/") {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return num
		}
		nums = append(nums, n)
	}
	if len(nums) == 2 && nums[1] != 0 && nums[0] > nums[1] {
		over := nums[0] / nums[1]
		rem := nums[0] % nums[1]
		return strconv.Itoa(over) + " " + strconv.Itoa(rem) + "/" + strconv.Itoa(nums[1])
	}
	return num
}

// SpokenNumber spells a number out digit by digit: 1.2 -> one point two,
// 1 1/2 -> one and one half.
func SpokenNumber(num string) string {
	var ret []string
	for _, part := range strings.Split(num, " ") {
		if words, ok := fractionWords[part]; ok {
			ret = append(ret, words)
			continue
		}
		var words []string
		for _, c := range part {
			if w, ok := numberWords[c]; ok {
				words = append(words, w)
			}
		}
		ret = append(ret, strings.Join(words, " "))
	}
	return strings.Join(ret, " and ")
}

// IsUnknown reports whether a token holds only "/" or only "X" characters
// (ignoring dots).
func IsUnknown(val string) bool {
	clean := strings.ReplaceAll(val, ".", "")
	return repeats(clean, '/') || repeats(clean, 'X') || clean == ""
}

func repeats(s string, c rune) bool {
	for _, r := range s {
		if r != c {
			return false
		}
	}
	return true
}
