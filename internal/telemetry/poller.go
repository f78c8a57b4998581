package telemetry

import (
	"sync"
	"time"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"truck_companion/internal/models"
)

// Notifier receives the user-facing side of poller events. Implementations
// must never block the tick for long; sending is best-effort.
type Notifier interface {
	TripCompleted(trip models.Trip)
	FineIssued(fine models.Fine)
}

// Poller ties the snapshot reader and the edge machine to the database.
// Tick is scheduled at 1 Hz by the cron runner in main; everything the
// poller owns is only touched under mu because HTTP handlers read the
// latest snapshot and rebind the driver concurrently.
type Poller struct {
	db       *gorm.DB
	reader   *SnapshotReader
	machine  *Machine
	notifier Notifier

	// OnTick, when set, receives every snapshot (including disconnected
	// ones) after it has been stored. Used to feed the websocket stream.
	OnTick func(Snapshot)

	mu          sync.RWMutex
	driverEmail string
	latest      Snapshot
}

func NewPoller(db *gorm.DB, reader *SnapshotReader, notifier Notifier) *Poller {
	return &Poller{
		db:       db,
		reader:   reader,
		machine:  NewMachine(),
		notifier: notifier,
	}
}

// BindDriver points telemetry records at a driver. An empty email unbinds:
// the poller keeps observing (and streaming) but writes nothing.
func (p *Poller) BindDriver(email string) {
	p.mu.Lock()
	p.driverEmail = email
	p.mu.Unlock()
}

// Driver returns the currently bound driver email, empty when unbound.
func (p *Poller) Driver() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.driverEmail
}

// Latest returns the snapshot from the most recent tick.
func (p *Poller) Latest() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest
}

// Tick reads the snapshot file once and processes any edges. Scheduled
// every second; there is no stop path, the poller lives as long as the
// process.
func (p *Poller) Tick() {
	snap := p.reader.Read()

	p.mu.Lock()
	p.latest = snap
	driver := p.driverEmail
	p.mu.Unlock()

	if p.OnTick != nil {
		p.OnTick(snap)
	}

	events := p.machine.Observe(snap, time.Now())
	if len(events) == 0 || driver == "" {
		return
	}

	for _, ev := range events {
		switch ev.Kind {
		case TripCompleted:
			p.recordTrip(driver, ev)
		case FineIssued:
			p.recordFine(driver, ev)
		}
	}
}

func (p *Poller) recordTrip(driver string, ev Event) {
	trip := models.Trip{
		UserEmail:   driver,
		Source:      ev.Snapshot.Source,
		Destination: ev.Snapshot.Destination,
		DistanceKM:  ev.Snapshot.RoundedDistance(),
		Cargo:       ev.Snapshot.Cargo,
		Income:      ev.Snapshot.Income,
		Date:        ev.Time,
	}
	if err := p.db.Create(&trip).Error; err != nil {
		logrus.WithError(err).Error("telemetry: could not save finished trip")
		return
	}

	logrus.WithFields(logrus.Fields{
		"driver":      driver,
		"source":      trip.Source,
		"destination": trip.Destination,
		"distance":    trip.DistanceKM,
	}).Info("telemetry: trip completed")

	if p.notifier != nil {
		p.notifier.TripCompleted(trip)
	}
}

func (p *Poller) recordFine(driver string, ev Event) {
	fineType := ev.Snapshot.FineType
	if fineType == "" {
		fineType = "Unknown offence"
	}
	fine := models.Fine{
		UserEmail: driver,
		Type:      fineType,
		Amount:    ev.Snapshot.FineAmount,
		Date:      ev.Time,
	}
	if err := p.db.Create(&fine).Error; err != nil {
		logrus.WithError(err).Error("telemetry: could not save fine")
		return
	}

	logrus.WithFields(logrus.Fields{
		"driver": driver,
		"type":   fine.Type,
		"amount": fine.Amount,
	}).Info("telemetry: fine issued")

	if p.notifier != nil {
		p.notifier.FineIssued(fine)
	}
}
