package main

import (
	"fmt"
	"math"
	"time"
)

// CelsiusToFahrenheit converts temperature from Celsius to Fahrenheit
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// RelativeHumidity estimates relative humidity in percent from temperature
// and dew point in Celsius (Magnus formula).
func RelativeHumidity(temp, dew float64) float64 {
	const b, c = 17.625, 243.04
	return 100 * math.Exp(b*dew/(c+dew)) / math.Exp(b*temp/(c+temp))
}

// relativeTimeString describes how long before now t was
func relativeTimeString(t, now time.Time) string {
	minutes := int(now.Sub(t).Minutes())

	switch {
	case minutes < 0:
		return "(in the future)"
	case minutes < 1:
		return "(just now)"
	case minutes < 60:
		return fmt.Sprintf("(%d minutes ago)", minutes)
	case minutes < 1440:
		hours, mins := minutes/60, minutes%60
		if mins == 0 {
			return fmt.Sprintf("(%d hours ago)", hours)
		}
		return fmt.Sprintf("(%d hours, %d minutes ago)", hours, mins)
	default:
		days, hours := minutes/1440, (minutes%1440)/60
		if hours == 0 {
			return fmt.Sprintf("(%d days ago)", days)
		}
		return fmt.Sprintf("(%d days, %d hours ago)", days, hours)
	}
}
