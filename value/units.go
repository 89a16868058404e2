package value

import (
	"errors"
	"fmt"
)

// Unit names as they appear in Units.
const (
	UnitInHg = "inHg"
	UnitHPa  = "hPa"
	UnitMb   = "mb"
	UnitMmHg = "mmHg"
	UnitFeet = "ft"
	UnitM    = "m"
	UnitSM   = "sm"
	UnitKt   = "kt"
	UnitMPS  = "m/s"
	UnitKMH  = "km/h"
	UnitC    = "C"
)

// ErrUnresolvedAltimeterUnit is returned when a conversion is asked for a
// unit it does not know.
var ErrUnresolvedAltimeterUnit = errors.New("unresolved altimeter unit")

// Units are the measurement units in force for one parsed report. Extraction
// overrides the station defaults when a token names its own unit.
type Units struct {
	Altimeter   string `json:"altimeter" yaml:"altimeter"`
	Altitude    string `json:"altitude" yaml:"altitude"`
	Temperature string `json:"temperature" yaml:"temperature"`
	Visibility  string `json:"visibility" yaml:"visibility"`
	WindSpeed   string `json:"wind_speed" yaml:"wind_speed"`
}

// NAUnits are the defaults for North American stations.
func NAUnits() *Units {
	return &Units{Altimeter: UnitInHg, Altitude: UnitFeet, Temperature: UnitC, Visibility: UnitSM, WindSpeed: UnitKt}
}

// INUnits are the defaults for International stations.
func INUnits() *Units {
	return &Units{Altimeter: UnitHPa, Altitude: UnitFeet, Temperature: UnitC, Visibility: UnitM, WindSpeed: UnitKt}
}

var hPaPer = map[string]float64{
	UnitHPa:  1,
	UnitMb:   1,
	UnitInHg: 33.8639,
	UnitMmHg: 1.33322,
}

// ConvertAltimeter converts a pressure between altimeter units.
func ConvertAltimeter(v float64, from, to string) (float64, error) {
	f, ok := hPaPer[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnresolvedAltimeterUnit, from)
	}
	t, ok := hPaPer[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnresolvedAltimeterUnit, to)
	}
	return v * f / t, nil
}

var metersPer = map[string]float64{
	UnitFeet: 0.3048,
	UnitM:    1,
}

// ConvertAltitude converts a length between altitude units.
func ConvertAltitude(v float64, from, to string) (float64, error) {
	f, ok := metersPer[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnresolvedAltimeterUnit, from)
	}
	t, ok := metersPer[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnresolvedAltimeterUnit, to)
	}
	return v * f / t, nil
}

// CloudBaseFeet returns a cloud base given in hundreds of the altitude unit
// as a length in feet.
func (u *Units) CloudBaseFeet(hundreds int) (float64, error) {
	return ConvertAltitude(float64(hundreds*100), u.Altitude, UnitFeet)
}
