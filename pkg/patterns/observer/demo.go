package observer

import (
	"fmt"
	"io"
)

// Demo runs the weather station: three displays register with the subject,
// which pushes a series of measurement changes to them.
func Demo(w io.Writer) {
	weather := NewWeatherData()

	current := NewCurrentConditionsDisplay()
	stats := NewStatisticsDisplay()
	forecast := NewForecastDisplay()

	weather.Register(current)
	weather.Register(stats)
	weather.Register(forecast)

	readings := []Measurements{
		{Temperature: 80, Humidity: 65, Pressure: 30.4},
		{Temperature: 82, Humidity: 70, Pressure: 29.2},
		{Temperature: 78, Humidity: 90, Pressure: 29.2},
	}
	for _, r := range readings {
		weather.SetMeasurements(r.Temperature, r.Humidity, r.Pressure)
		fmt.Fprintln(w, current.Display())
		fmt.Fprintln(w, stats.Display())
		fmt.Fprintln(w, forecast.Display())
	}
}
