// Package domain holds the foster family enums shared across layers.
package domain

// Availability describes whether a family can currently take animals in.
type Availability string

const (
	AvailabilityAvailable   Availability = "AVAILABLE"
	AvailabilityUnavailable Availability = "UNAVAILABLE"
	AvailabilityPaused      Availability = "PAUSED"
)

func ParseAvailability(raw string) (Availability, bool) {
	switch Availability(raw) {
	case AvailabilityAvailable, AvailabilityUnavailable, AvailabilityPaused:
		return Availability(raw), true
	}
	return "", false
}
