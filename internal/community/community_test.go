package community

import (
	"strings"
	"testing"
)

func TestEventIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, ev := range Events() {
		if seen[ev.ID] {
			t.Errorf("Duplicate event id %q", ev.ID)
		}
		seen[ev.ID] = true
	}
}

func TestEventByID(t *testing.T) {
	ev, ok := EventByID("ev-saturday-long")
	if !ok || ev.Type != "Long Run" {
		t.Errorf("EventByID(ev-saturday-long) = (%+v, %v)", ev, ok)
	}
	if _, ok := EventByID("ev-404"); ok {
		t.Error("Unknown event id resolved")
	}
}

func TestDialIntent(t *testing.T) {
	if got := DialIntent(StorePhone); got != "tel:3307255918" {
		t.Errorf("DialIntent = %q", got)
	}
}

func TestDirectionsIntentEscapesDestination(t *testing.T) {
	got := DirectionsIntent(StoreAddress)
	if !strings.HasPrefix(got, "maps://?daddr=") {
		t.Errorf("DirectionsIntent = %q", got)
	}
	if strings.ContainsAny(strings.TrimPrefix(got, "maps://?daddr="), " ,") {
		t.Errorf("Destination not escaped: %q", got)
	}
}
