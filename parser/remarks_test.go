package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRemarks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		in      string
		body    []string
		remarks string
	}{
		{
			name:    "altimeter then remarks",
			in:      "KJFK 121053Z 10SM A2992 RMK AO2 SLP132",
			body:    []string{"KJFK", "121053Z", "10SM", "A2992"},
			remarks: "RMK AO2 SLP132",
		},
		{
			name:    "trend after Q group",
			in:      "EGLL 121050Z 24010KT 9999 FEW030 12/08 Q1013 NOSIG",
			body:    []string{"EGLL", "121050Z", "24010KT", "9999", "FEW030", "12/08", "Q1013"},
			remarks: "NOSIG",
		},
		{
			name: "altimeter is last",
			in:   "KLAW 121053Z AUTO 06006KT 10SM OVC050 13/12 Q1013",
			body: []string{"KLAW", "121053Z", "AUTO", "06006KT", "10SM", "OVC050", "13/12", "Q1013"},
		},
		{
			name:    "signifier before altimeter",
			in:      "KJFK 121053Z 10SM RMK A2992",
			body:    []string{"KJFK", "121053Z", "10SM"},
			remarks: "RMK A2992",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, remarks := SplitRemarks(tt.in)
			assert.Equal(t, tt.body, body)
			assert.Equal(t, tt.remarks, remarks)
		})
	}
}

func TestSplitTafRemarks(t *testing.T) {
	t.Parallel()
	body, remarks := SplitTafRemarks("1212/1318 10010KT P6SM SKC FCST BY 1200Z")
	assert.Equal(t, "1212/1318 10010KT P6SM SKC", body)
	assert.Equal(t, "FCST BY 1200Z", remarks)

	body, remarks = SplitTafRemarks("1212/1318 10010KT P6SM SKC")
	assert.Equal(t, "1212/1318 10010KT P6SM SKC", body)
	assert.Empty(t, remarks)
}
