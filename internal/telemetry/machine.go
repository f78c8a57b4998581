package telemetry

import (
	"math"
	"time"
)

// EventKind discriminates the two domain events the poller can raise.
type EventKind int

const (
	TripCompleted EventKind = iota + 1
	FineIssued
)

// Event is one edge observed by the machine, together with the snapshot
// that triggered it.
type Event struct {
	Kind     EventKind
	Snapshot Snapshot
	Time     time.Time
}

const (
	// tripCooldown suppresses a second trip event fired too soon after the
	// first. Known limitation: two real deliveries completed within the
	// window collapse into one record. In practice the game cannot finish
	// two jobs that fast, and the window protects against the plugin
	// flapping job_active during the delivery screen.
	tripCooldown = 5 * time.Second

	// minTripDistance filters out cancelled or teleported jobs.
	minTripDistance = 1.0
)

// Machine is the edge-detection state machine over consecutive snapshots.
// It holds the trip side {idle, trip-active, cooldown} and the fine side
// {fine-clear, fine-active} and emits events on the transitions. It is not
// safe for concurrent use; the poller calls it from a single goroutine.
type Machine struct {
	lastJobActive bool
	lastFireAt    time.Time
	fineActive    bool
}

func NewMachine() *Machine {
	return &Machine{}
}

// Observe feeds one snapshot into the machine and returns the events it
// triggered. A disconnected snapshot is ignored entirely: state is neither
// advanced nor reset, so a mid-delivery game restart does not fabricate a
// falling edge.
func (m *Machine) Observe(s Snapshot, now time.Time) []Event {
	if !s.Connected {
		return nil
	}

	var events []Event

	// Trip side: a falling edge of job_active means a delivery ended.
	if m.lastJobActive && !s.JobActive {
		if now.Sub(m.lastFireAt) > tripCooldown {
			// The cooldown clock restarts even when the distance check
			// below rejects the edge, same as the original tracker.
			m.lastFireAt = now
			if s.TripDistance > minTripDistance {
				events = append(events, Event{Kind: TripCompleted, Snapshot: s, Time: now})
			}
		}
	}
	m.lastJobActive = s.JobActive

	// Fine side: fire on the rising edge only, then stay quiet until the
	// flag clears again.
	if s.FineDetected {
		if !m.fineActive {
			events = append(events, Event{Kind: FineIssued, Snapshot: s, Time: now})
		}
		m.fineActive = true
	} else {
		m.fineActive = false
	}

	return events
}

// RoundedDistance is the integer km recorded for a finished trip.
func (s Snapshot) RoundedDistance() int {
	return int(math.Round(s.TripDistance))
}

// OdometerKM is the career distance shown in the UI, floored to whole km.
// Zero when the plugin reports nothing useful.
func (s Snapshot) OdometerKM() int {
	if s.Odometer <= 0 {
		return 0
	}
	return int(math.Floor(s.Odometer))
}
