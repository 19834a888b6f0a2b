// Package community holds the store's group-run calendar, the nearby trail
// list, and the outbound intent builders the UI hands to the OS. Intents are
// fire-and-forget: the core only builds the strings, nothing is awaited.
package community

import (
	"net/url"

	"secondsole/internal/types"
)

// StorePhone is the shop's front desk number.
const StorePhone = "3307255918"

// StoreAddress is the pickup and directions destination.
const StoreAddress = "122 Public Square, Medina, OH 44256"

// Events returns the weekly event calendar.
func Events() []types.Event {
	return []types.Event{
		{ID: "ev-tuesday-club", Title: "Tuesday Night Club Run", Day: "Tuesday", Time: "6:00 PM",
			Location: "Second Sole Medina", Type: "Club Run"},
		{ID: "ev-thursday-speed", Title: "Track Thursday", Day: "Thursday", Time: "5:30 AM",
			Location: "Medina HS Track", Type: "Speed Work"},
		{ID: "ev-saturday-long", Title: "Saturday Long Run", Day: "Saturday", Time: "7:00 AM",
			Location: "Chippewa Trailhead", Type: "Long Run"},
		{ID: "ev-sunday-trail", Title: "Sunday Trail Social", Day: "Sunday", Time: "8:00 AM",
			Location: "Hinckley Reservation", Type: "Trail Run"},
	}
}

// Trails returns the nearby route list.
func Trails() []types.Trail {
	return []types.Trail{
		{ID: "tr-square-loop", Name: "Public Square Loop", Type: "Paved", Distance: "3.1 mi"},
		{ID: "tr-chippewa", Name: "Chippewa Rail Trail", Type: "Paved", Distance: "8.0 mi"},
		{ID: "tr-hinckley", Name: "Hinckley Lake Loop", Type: "Trails", Distance: "5.5 mi"},
		{ID: "tr-reagan", Name: "Reagan Park Trails", Type: "Mixed", Distance: "4.2 mi"},
	}
}

// EventByID resolves an event id.
func EventByID(id string) (types.Event, bool) {
	for _, ev := range Events() {
		if ev.ID == id {
			return ev, true
		}
	}
	return types.Event{}, false
}

// DialIntent builds the telephone intent for a phone number.
func DialIntent(phone string) string {
	return "tel:" + phone
}

// DirectionsIntent builds the native-maps directions intent for a destination
// such as a trail or the store address.
func DirectionsIntent(destination string) string {
	return "maps://?daddr=" + url.QueryEscape(destination)
}
