package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeWeather(t *testing.T) {
	t.Parallel()
	tests := []struct {
		code string
		want string
	}{
		{"RA", "rain"},
		{"-RA", "light rain"},
		{"-SHRA", "light rain showers"},
		{"+TSRA", "heavy thunderstorm with rain"},
		{"VCSH", "showers in the vicinity"},
		{"FZFG", "freezing fog"},
		{"BCFG", "patches of fog"},
		{"+FC", "tornado/waterspout"},
		{"REBLSN", "recent blowing snow"},
	}
	for _, tt := range tests {
		got, ok := describeWeather(tt.code)
		assert.True(t, ok, tt.code)
		assert.Equal(t, tt.want, got, tt.code)
	}

	for _, code := range []string{"", "-", "XYZ", "RAX", "KJFK"} {
		_, ok := describeWeather(code)
		assert.False(t, ok, code)
	}
}

func TestDescribeOther(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "no significant changes expected", describeOther("NOSIG"))
	assert.Equal(t, "mist", describeOther("BR"))
	assert.Equal(t, "9999NDV", describeOther("9999NDV"))
}

func TestDescribeRVR(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Runway 04R: 2000 to 4000 feet (increasing)", describeRVR("R04R/2000V4000FT/U"))
	assert.Equal(t, "Runway 27: more than 1500 meters", describeRVR("R27/P1500"))
	assert.Equal(t, "Runway 09L: less than 50 meters (decreasing)", describeRVR("R09L/M0050D"))
	assert.Equal(t, "R06L/290050", describeRVR("R06L/290050"))
}
