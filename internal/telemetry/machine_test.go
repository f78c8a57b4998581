package telemetry

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func connected(jobActive bool, distance float64) Snapshot {
	return Snapshot{Connected: true, JobActive: jobActive, TripDistance: distance}
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestTripFallingEdgeFiresOnce(t *testing.T) {
	m := NewMachine()

	// job_active = [false, true, false], one second apart
	seq := []bool{false, true, false}
	var fired int
	for i, active := range seq {
		events := m.Observe(connected(active, 50), t0.Add(time.Duration(i)*time.Second))
		for _, ev := range events {
			if ev.Kind == TripCompleted {
				fired++
				if ev.Snapshot.TripDistance != 50 {
					t.Errorf("event snapshot distance = %v, want 50", ev.Snapshot.TripDistance)
				}
			}
		}
	}
	if fired != 1 {
		t.Errorf("trip events = %d, want exactly 1", fired)
	}
}

func TestTripCooldownSuppressesSecondEdge(t *testing.T) {
	m := NewMachine()

	// Two full active->inactive cycles within 5 seconds: only the first
	// falling edge may record a trip.
	now := t0
	var fired int
	for _, active := range []bool{true, false, true, false} {
		now = now.Add(time.Second)
		for _, ev := range m.Observe(connected(active, 120), now) {
			if ev.Kind == TripCompleted {
				fired++
			}
		}
	}
	if fired != 1 {
		t.Errorf("trip events = %d, want 1 (second edge inside cooldown)", fired)
	}
}

func TestTripFiresAgainAfterCooldown(t *testing.T) {
	m := NewMachine()

	m.Observe(connected(true, 80), t0)
	if got := m.Observe(connected(false, 80), t0.Add(time.Second)); len(got) != 1 {
		t.Fatalf("first edge: %d events, want 1", len(got))
	}

	// Next cycle lands well past the cooldown window.
	m.Observe(connected(true, 90), t0.Add(10*time.Second))
	if got := m.Observe(connected(false, 90), t0.Add(11*time.Second)); len(got) != 1 {
		t.Errorf("second edge after cooldown: %d events, want 1", len(got))
	}
}

func TestTripShortDistanceIgnored(t *testing.T) {
	m := NewMachine()

	m.Observe(connected(true, 0.5), t0)
	if got := m.Observe(connected(false, 0.5), t0.Add(time.Second)); len(got) != 0 {
		t.Errorf("sub-1km trip recorded: %v", kinds(got))
	}
}

func TestFineRisingEdges(t *testing.T) {
	m := NewMachine()

	// fine_detected = [false, true, true, true, false, true]
	seq := []bool{false, true, true, true, false, true}
	var firedAt []int
	for i, detected := range seq {
		s := Snapshot{Connected: true, FineDetected: detected, FineType: "Speeding", FineAmount: 550}
		for _, ev := range m.Observe(s, t0.Add(time.Duration(i)*time.Second)) {
			if ev.Kind == FineIssued {
				firedAt = append(firedAt, i)
			}
		}
	}
	if len(firedAt) != 2 || firedAt[0] != 1 || firedAt[1] != 5 {
		t.Errorf("fine events fired at %v, want [1 5]", firedAt)
	}
}

func TestDisconnectedSkipsEventLogic(t *testing.T) {
	m := NewMachine()

	m.Observe(connected(true, 300), t0)
	// Game vanishes for a tick: no state advance, no fabricated edge.
	if got := m.Observe(Snapshot{}, t0.Add(time.Second)); len(got) != 0 {
		t.Fatalf("disconnected snapshot produced events: %v", kinds(got))
	}
	// On reconnect the falling edge is still observed.
	if got := m.Observe(connected(false, 300), t0.Add(2*time.Second)); len(got) != 1 {
		t.Errorf("edge after reconnect: %d events, want 1", len(got))
	}
}

func TestTripAndFineOnSameTick(t *testing.T) {
	m := NewMachine()

	m.Observe(connected(true, 200), t0)
	s := connected(false, 200)
	s.FineDetected = true
	got := m.Observe(s, t0.Add(time.Second))
	if len(got) != 2 {
		t.Fatalf("expected trip and fine on one tick, got %v", kinds(got))
	}
	if got[0].Kind != TripCompleted || got[1].Kind != FineIssued {
		t.Errorf("event order = %v", kinds(got))
	}
}

func TestOdometerKM(t *testing.T) {
	if got := (Snapshot{Odometer: 1234.9}).OdometerKM(); got != 1234 {
		t.Errorf("OdometerKM = %d, want 1234", got)
	}
	if got := (Snapshot{Odometer: -3}).OdometerKM(); got != 0 {
		t.Errorf("negative odometer = %d, want 0", got)
	}
}
