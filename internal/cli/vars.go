package cli

import (
	"fmt"
	"time"

	"github.com/hferraz/patternbook/internal/observability"
)

// Observability service instances, set during app initialization in app.go.
var (
	EventLog    observability.EventLog
	AlertEngine observability.ReviewAlertEngine
	MetricsCalc observability.MetricsCalculator
	Notifier    observability.Notifier
)

// newEvent builds an INFO event with the current time and a message derived
// from the event type.
func newEvent(eventType string, data map[string]any) observability.Event {
	return observability.Event{
		Time:    time.Now().UTC(),
		Level:   "INFO",
		Type:    eventType,
		Message: fmt.Sprintf("event: %s", eventType),
		Data:    data,
	}
}
