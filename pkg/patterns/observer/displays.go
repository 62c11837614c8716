package observer

import (
	"fmt"
	"math"
)

// Display renders an observer's view of the weather for the demo transcript.
type Display interface {
	Observer
	Display() string
}

// CurrentConditionsDisplay shows the latest temperature and humidity.
type CurrentConditionsDisplay struct {
	last Measurements
	seen bool
}

func NewCurrentConditionsDisplay() *CurrentConditionsDisplay {
	return &CurrentConditionsDisplay{}
}

func (d *CurrentConditionsDisplay) Update(m Measurements) {
	d.last = m
	d.seen = true
}

func (d *CurrentConditionsDisplay) Display() string {
	if !d.seen {
		return "Current conditions: no data yet"
	}
	return fmt.Sprintf("Current conditions: %.1fF degrees and %.1f%% humidity",
		d.last.Temperature, d.last.Humidity)
}

// StatisticsDisplay tracks min/max/average temperature across updates.
type StatisticsDisplay struct {
	min, max, sum float64
	count         int
}

func NewStatisticsDisplay() *StatisticsDisplay {
	return &StatisticsDisplay{min: math.Inf(1), max: math.Inf(-1)}
}

func (d *StatisticsDisplay) Update(m Measurements) {
	d.min = math.Min(d.min, m.Temperature)
	d.max = math.Max(d.max, m.Temperature)
	d.sum += m.Temperature
	d.count++
}

func (d *StatisticsDisplay) Display() string {
	if d.count == 0 {
		return "Avg/Max/Min temperature: no data yet"
	}
	return fmt.Sprintf("Avg/Max/Min temperature = %.1f/%.1f/%.1f",
		d.sum/float64(d.count), d.max, d.min)
}

// ForecastDisplay predicts based on the pressure trend between updates.
type ForecastDisplay struct {
	last, current float64
	seen          bool
}

func NewForecastDisplay() *ForecastDisplay {
	return &ForecastDisplay{}
}

func (d *ForecastDisplay) Update(m Measurements) {
	if !d.seen {
		d.current = m.Pressure
		d.seen = true
	}
	d.last = d.current
	d.current = m.Pressure
}

func (d *ForecastDisplay) Display() string {
	switch {
	case !d.seen:
		return "Forecast: no data yet"
	case d.current > d.last:
		return "Forecast: Improving weather on the way!"
	case d.current < d.last:
		return "Forecast: Watch out for cooler, rainy weather"
	default:
		return "Forecast: More of the same"
	}
}

// HeatIndexDisplay computes the perceived temperature from temperature and
// relative humidity.
type HeatIndexDisplay struct {
	index float64
	seen  bool
}

func NewHeatIndexDisplay() *HeatIndexDisplay {
	return &HeatIndexDisplay{}
}

func (d *HeatIndexDisplay) Update(m Measurements) {
	d.index = heatIndex(m.Temperature, m.Humidity)
	d.seen = true
}

func (d *HeatIndexDisplay) Display() string {
	if !d.seen {
		return "Heat index: no data yet"
	}
	return fmt.Sprintf("Heat index is %.5f", d.index)
}

// heatIndex is the NOAA polynomial approximation over temperature t (F)
// and relative humidity rh (percent).
func heatIndex(t, rh float64) float64 {
	return 16.923 +
		0.185212*t +
		5.37941*rh -
		0.100254*t*rh +
		0.00941695*t*t +
		0.00728898*rh*rh +
		0.000345372*t*t*rh -
		0.000814971*t*rh*rh +
		0.0000102102*t*t*rh*rh -
		0.000038646*t*t*t +
		0.0000291583*rh*rh*rh +
		0.00000142721*t*t*t*rh +
		0.000000197483*t*rh*rh*rh -
		0.0000000218429*t*t*t*rh*rh +
		0.000000000843296*t*t*rh*rh*rh -
		0.0000000000481975*t*t*t*rh*rh*rh
}
