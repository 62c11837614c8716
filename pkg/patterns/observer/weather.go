// Package observer implements the weather station: a WeatherData subject
// pushing measurement updates to registered display observers.
package observer

// Measurements is the state pushed to observers on every update.
type Measurements struct {
	Temperature float64
	Humidity    float64
	Pressure    float64
}

// Observer receives measurement updates from a Subject.
type Observer interface {
	Update(m Measurements)
}

// Subject manages a set of observers and notifies them on state change.
type Subject interface {
	Register(o Observer)
	Remove(o Observer)
	NotifyAll()
}

// WeatherData is the concrete subject. Observers are notified in
// registration order.
type WeatherData struct {
	observers []Observer
	current   Measurements
}

// NewWeatherData creates a weather station with no observers.
func NewWeatherData() *WeatherData {
	return &WeatherData{}
}

// Register adds an observer. Registering an observer that is already
// present is a no-op.
func (w *WeatherData) Register(o Observer) {
	if o == nil {
		return
	}
	for _, existing := range w.observers {
		if existing == o {
			return
		}
	}
	w.observers = append(w.observers, o)
}

// Remove detaches an observer. Removing an observer that was never
// registered is a no-op.
func (w *WeatherData) Remove(o Observer) {
	for i, existing := range w.observers {
		if existing == o {
			w.observers = append(w.observers[:i], w.observers[i+1:]...)
			return
		}
	}
}

// NotifyAll pushes the current measurements to every registered observer.
func (w *WeatherData) NotifyAll() {
	for _, o := range w.observers {
		o.Update(w.current)
	}
}

// SetMeasurements records new sensor readings and notifies all observers.
func (w *WeatherData) SetMeasurements(temperature, humidity, pressure float64) {
	w.current = Measurements{
		Temperature: temperature,
		Humidity:    humidity,
		Pressure:    pressure,
	}
	w.NotifyAll()
}

// Current returns the most recent measurements.
func (w *WeatherData) Current() Measurements {
	return w.current
}
