package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeReportString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"whitespace", "KJFK  121053Z   10SM", "KJFK 121053Z 10SM"},
		{"cavok", "KABC 121053Z C A V O K 12/10", "KABC 121053Z CAVOK 12/10"},
		{"question mark", "KJFK 10SM?OVC050", "KJFK 10SM OVC050"},
		{"glued clouds", "KJFK 121053Z TSFEW004SCT012FEW///CBBKN080", "KJFK 121053Z TS FEW004 SCT012 FEW///CB BKN080"},
		{"station untouched", "OVCX 121053Z", "OVCX 121053Z"},
		{"short", "KJ", "KJ"},
		{"short with space", " ab", " ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeReportString(tt.in))
		})
	}
}

func TestSanitizeLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"TEMP0 2718/2724 -RA", "TEMPO 2718/2724 -RA"},
		{"TMPO 2718/2724", "TEMPO 2718/2724"},
		{"BECMG2718/2720 BKN010", "BECMG 2718/2720 BKN010"},
		{"FM271800 BEC 2718/2720", "FM271800 BECMG 2718/2720"},
		{"BKN010 TEMPO", "BKN010 TEMPO"},
		{"TEMPO 2718/2724", "TEMPO 2718/2724"},
		{"TMPO 2712/2714 -SHRA FM271800 22015KT TMPO 2718/2724 3SM", "TEMPO 2712/2714 -SHRA FM271800 22015KT TEMPO 2718/2724 3SM"},
		{"TEMP0 2712/2714 BECMG 2716/2718 BEMCG 2720/2722", "TEMPO 2712/2714 BECMG 2716/2718 BECMG 2720/2722"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeLine(tt.in), tt.in)
	}
}

func TestSanitizeLine_idempotent(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"TEMP0 2718/2724 -RA", "BECMG2718/2720", "FM271800 BEC 2718/2720"} {
		once := SanitizeLine(in)
		assert.Equal(t, once, SanitizeLine(once), in)
	}
}
