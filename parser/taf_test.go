package parser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmitchellscott/wxdecode/station"
	"github.com/rmitchellscott/wxdecode/value"
)

func at(day, hour int) time.Time {
	return time.Date(2024, 4, day, hour, 0, 0, 0, time.UTC)
}

func assertTime(t *testing.T, ts value.Timestamp, want time.Time) {
	t.Helper()
	require.True(t, ts.Resolved(), ts.Repr)
	assert.Equal(t, want, *ts.Time, ts.Repr)
}

func TestParseTaf(t *testing.T) {
	t.Parallel()
	raw := "TAF KJFK 121130Z 1212/1318 10010KT P6SM SCT250 " +
		"FM121800 15012KT P6SM BKN050 " +
		"TEMPO 1220/1224 4SM -SHRA OVC020 " +
		"PROB30 1302/1306 2SM TSRA BKN010CB " +
		"FM130600 20008KT 6SM BR OVC008"
	data, units, err := ParseTaf("KJFK", raw, fakeClock())
	require.NoError(t, err)

	assert.Equal(t, "KJFK", data.Station)
	assertTime(t, data.Time, time.Date(2024, 4, 12, 11, 30, 0, 0, time.UTC))
	assertTime(t, data.StartTime, at(12, 12))
	assertTime(t, data.EndTime, at(13, 18))
	assert.Equal(t, value.UnitSM, units.Visibility)

	require.Len(t, data.Lines, 5)
	wantTypes := []string{"FROM", "FROM", "TEMPO", "PROB30", "FROM"}
	wantRules := []FlightRules{VFR, VFR, MVFR, IFR, IFR}
	wantStart := []time.Time{at(12, 12), at(12, 18), at(12, 20), at(13, 2), at(13, 6)}
	wantEnd := []time.Time{at(12, 18), at(13, 6), at(13, 0), at(13, 6), at(13, 18)}
	for i, line := range data.Lines {
		assert.Equal(t, wantTypes[i], line.Type, line.Raw)
		assert.Equal(t, wantRules[i], line.FlightRules, line.Raw)
		assertTime(t, line.StartTime, wantStart[i])
		assertTime(t, line.EndTime, wantEnd[i])
	}

	first := data.Lines[0]
	assertNumber(t, first.Wind.Direction, "100", 100)
	assertNumber(t, first.Visibility, "P6", 6)
	require.Len(t, first.Clouds, 1)
	assert.Equal(t, "SCT250", first.Clouds[0].Repr)

	prob := data.Lines[3]
	assertNumber(t, prob.Probability, "30", 30)
	assert.Equal(t, []string{"TSRA"}, prob.Other)
	require.Len(t, prob.Clouds, 1)
	assert.Equal(t, "CB", prob.Clouds[0].Modifier)

	assert.Equal(t, []string{"-SHRA"}, data.Lines[2].Other)
	assert.Equal(t, []string{"BR"}, data.Lines[4].Other)
}

func TestParseTaf_probAfterTempo(t *testing.T) {
	t.Parallel()
	raw := "KJFK 271130Z 2712/2818 18010KT P6SM SCT050 TEMPO 2714/2718 BKN030 " +
		"PROB30 2718/2724 3SM TSRA BKN020CB FM280000 20005KT P6SM SKC"
	data, _, err := ParseTaf("KJFK", raw, fakeClock())
	require.NoError(t, err)

	require.Len(t, data.Lines, 4)
	assert.Equal(t, "TEMPO", data.Lines[1].Type)
	assert.Equal(t, "TEMPO 2714/2718 BKN030", data.Lines[1].Raw)

	prob := data.Lines[2]
	assert.Equal(t, "PROB30", prob.Type)
	assertNumber(t, prob.Probability, "30", 30)

	// TEMPO borrows visibility from the prevailing line
	assert.Equal(t, MVFR, data.Lines[1].FlightRules)
	assert.Equal(t, MVFR, prob.FlightRules)
	// SKC clears the sky instead of inheriting clouds
	assert.Equal(t, VFR, data.Lines[3].FlightRules)
}

func TestParseTaf_tempoProb(t *testing.T) {
	t.Parallel()
	raw := "EGLL 192253Z 2000/2106 28006KT 9999 BKN035 TEMPO PROB30 2004/2009 3000 BKN012 BECMG 2010/2012 BKN020"
	data, _, err := ParseTaf("EGLL", raw, fakeClock())
	require.NoError(t, err)

	require.Len(t, data.Lines, 3)
	tempo := data.Lines[1]
	assert.Equal(t, "TEMPO", tempo.Type)
	assertNumber(t, tempo.Probability, "30", 30)
	assertTime(t, tempo.StartTime, at(20, 4))
	assertTime(t, tempo.EndTime, at(20, 9))
	assertNumber(t, tempo.Visibility, "3000", 3000)
	assert.NotContains(t, tempo.Other, "PROB30")
	assert.Equal(t, "BECMG", data.Lines[2].Type)
}

func TestParseTaf_repeatedMisspelling(t *testing.T) {
	t.Parallel()
	raw := "CYBC 271138Z 2712/2724 24010KT P6SM BKN050 TMPO 2712/2716 4SM -SHRA " +
		"FM271800 22015KT P6SM OVC040 TMPO 2718/2724 3SM -SHRA"
	data, _, err := ParseTaf("CYBC", raw, fakeClock())
	require.NoError(t, err)

	require.Len(t, data.Lines, 4)
	var types []string
	for _, line := range data.Lines {
		types = append(types, line.Type)
	}
	assert.Equal(t, []string{"FROM", "TEMPO", "FROM", "TEMPO"}, types)
	assert.Equal(t, "FM271800 22015KT P6SM OVC040", data.Lines[2].Raw)
	assert.Equal(t, "TEMPO 2718/2724 3SM -SHRA", data.Lines[3].Raw)
}

func TestParseTaf_temperatures(t *testing.T) {
	t.Parallel()
	data, _, err := ParseTaf("KJFK", "TAF AMD KJFK 121130Z 1212/1318 10010KT P6SM SKC TX20/1218Z TN10/1310Z", fakeClock())
	require.NoError(t, err)

	assert.Equal(t, "TX20/1218Z", data.MaxTemp)
	assert.Equal(t, "TN10/1310Z", data.MinTemp)
	require.Len(t, data.Lines, 1)
	assert.Equal(t, []string{"SKC"}, data.Lines[0].Other)
	assert.Equal(t, VFR, data.Lines[0].FlightRules)
}

func TestParseTaf_qnhAndRemarks(t *testing.T) {
	t.Parallel()
	data, _, err := ParseTaf("KSKA", "KSKA 121130Z 1212/1318 10010KT P6SM BKN050 QNH2992INS FCST BY 1200Z", fakeClock())
	require.NoError(t, err)

	assert.Equal(t, "FCST BY 1200Z", data.Remarks)
	require.Len(t, data.Lines, 1)
	assertNumber(t, data.Lines[0].Altimeter, "2992", 29.92)
}

func TestParseTaf_oceania(t *testing.T) {
	t.Parallel()
	data, units, err := ParseTaf("AYPY", "TAF AYPY 121100Z 1212/1318 18010KT 9999 FEW030 T 20 22 24 Q 1013 1012 1011", fakeClock())
	require.NoError(t, err)

	assert.Equal(t, []string{"20", "22", "24"}, data.Temps)
	assert.Equal(t, []string{"1013", "1012", "1011"}, data.Alts)
	require.Len(t, data.Lines, 1)
	assert.Empty(t, data.Lines[0].Other)
	assertNumber(t, data.Lines[0].Visibility, "9999", 9999)
	assert.Equal(t, value.UnitM, units.Visibility)
}

func TestParseTaf_invalidStation(t *testing.T) {
	t.Parallel()
	_, _, err := ParseTaf("12", "TAF KJFK 121130Z 1212/1318 10010KT P6SM SKC")
	assert.True(t, errors.Is(err, station.ErrInvalidStation))
}

func TestSplitTaf(t *testing.T) {
	t.Parallel()
	body := "1212/1318 10010KT TEMPO PROB30 1220/1224 4SM PROB40 TEMPO 1302/1304 1SM FM130600 20008KT"

	assert.Equal(t, []string{
		"1212/1318 10010KT",
		"TEMPO PROB30 1220/1224 4SM",
		"PROB40 TEMPO 1302/1304 1SM",
		"FM130600 20008KT",
	}, SplitTaf(body, ProbAttach))

	assert.Equal(t, []string{
		"1212/1318 10010KT",
		"TEMPO",
		"PROB30 1220/1224 4SM",
		"PROB40 TEMPO 1302/1304 1SM",
		"FM130600 20008KT",
	}, SplitTaf(body, ProbStandalone))

	assert.Nil(t, SplitTaf("  ", ProbAttach))
}

func TestSplitTaf_joinRestoresInput(t *testing.T) {
	t.Parallel()
	for _, body := range []string{
		"1212/1318 10010KT P6SM SCT250 FM121800 15012KT P6SM BKN050",
		"2712/2818  18010KT TEMPO 2714/2718 BKN030   PROB30 2718/2724 3SM",
		"1212/1318 BECMG 1214/1216 INTER 1218/1220 FM130000 VRB03KT",
	} {
		for _, policy := range []ProbPolicy{ProbAttach, ProbStandalone} {
			lines := SplitTaf(body, policy)
			assert.Equal(t, strings.Join(strings.Fields(body), " "), strings.Join(lines, " "))
		}
	}
}

func TestGetTypeAndTimes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		in         []string
		typ        string
		prob       bool
		start, end string
		rest       []string
	}{
		{"range", []string{"1212/1318", "10010KT"}, "FROM", false, "1212", "1318", []string{"10010KT"}},
		{"tempo", []string{"TEMPO", "1220/1224", "4SM"}, "TEMPO", false, "1220", "1224", []string{"4SM"}},
		{"becmg", []string{"BECMG", "1220/1222"}, "BECMG", false, "1220", "1222", []string{}},
		{"prob", []string{"PROB30", "1302/1306"}, "PROB30", true, "1302", "1306", []string{}},
		{"tempo prob", []string{"TEMPO", "PROB30", "2004/2009", "3000"}, "TEMPO", true, "2004", "2009", []string{"3000"}},
		{"prob tempo", []string{"PROB40", "TEMPO", "1302/1306", "2SM"}, "TEMPO", true, "1302", "1306", []string{"2SM"}},
		{"from", []string{"FM121800", "15012KT"}, "FROM", false, "1218", "", []string{"15012KT"}},
		{"from range", []string{"FM1218/1306", "15012KT"}, "FROM", false, "1218", "1306", []string{"15012KT"}},
		{"from till", []string{"FM121800", "TL130600", "15012KT"}, "FROM", false, "1218", "1306", []string{"15012KT"}},
		{"no times", []string{"15012KT"}, "FROM", false, "", "", []string{"15012KT"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, typ, prob, start, end := GetTypeAndTimes(tt.in)
			assert.Equal(t, tt.typ, typ)
			assert.Equal(t, tt.prob, prob != nil)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestFindMissingTafTimes(t *testing.T) {
	t.Parallel()
	lines := []LineTimes{
		{Type: "FROM"},
		{Type: "FROM", Start: "0506"},
		{Type: "TEMPO", Start: "0508", End: "0512"},
		{Type: "FROM", Start: "0520"},
	}
	got := FindMissingTafTimes(lines, "0500", "0606")
	assert.Equal(t, []LineTimes{
		{Type: "FROM", Start: "0500", End: "0506"},
		{Type: "FROM", Start: "0506", End: "0520"},
		{Type: "TEMPO", Start: "0508", End: "0512"},
		{Type: "FROM", Start: "0520", End: "0606"},
	}, got)
	assert.Empty(t, lines[0].Start, "input is not modified")

	got = FindMissingTafTimes([]LineTimes{{Type: "FROM"}}, "0500", "0606")
	assert.Equal(t, []LineTimes{{Type: "FROM", Start: "0500", End: "0606"}}, got)

	got = FindMissingTafTimes([]LineTimes{{Type: "FROM"}, {Type: "BECMG", End: "0510"}, {Type: "FROM"}}, "0500", "0606")
	assert.Equal(t, "0510", got[2].Start)

	assert.Empty(t, FindMissingTafTimes(nil, "0500", "0606"))
}
