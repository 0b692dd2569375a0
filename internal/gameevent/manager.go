// Package gameevent runs the global boost rotation: random rolls, trigger
// items and the admin chaos button.
package gameevent

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/event"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
)

// ActiveBoost is the boost currently live, if any.
type ActiveBoost struct {
	Name    string    `json:"name"`
	Boost   float64   `json:"boost"`
	Message string    `json:"message"`
	EndsAt  time.Time `json:"ends_at"`
}

// Manager owns the single active boost slot. One boost at a time; a running
// boost blocks new rolls until it expires.
type Manager struct {
	mu              sync.Mutex
	active          *ActiveBoost
	disabled        map[string]bool
	durationMinutes int
	serverMessage   string

	bus event.Bus
	rnd func() float64
	now func() time.Time
}

// NewManager wires a manager. Nil rnd and now fall back to the global PRNG
// and wall clock.
func NewManager(bus event.Bus, rnd func() float64, now func() time.Time) *Manager {
	if rnd == nil {
		rnd = rand.Float64
	}
	if now == nil {
		now = time.Now
	}
	return &Manager{
		disabled:        make(map[string]bool),
		durationMinutes: DefaultDurationMinutes,
		bus:             bus,
		rnd:             rnd,
		now:             now,
	}
}

func (m *Manager) publish(ctx context.Context, evt event.Event) {
	if m.bus == nil {
		return
	}
	if err := m.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("event publish failed", "type", evt.Type, "error", err)
	}
}

// expireLocked clears a lapsed boost. Must be called with the lock held.
// Returns the name of the ended boost, if one ended.
func (m *Manager) expireLocked() (string, bool) {
	if m.active == nil || m.now().Before(m.active.EndsAt) {
		return "", false
	}
	name := m.active.Name
	m.active = nil
	return name, true
}

// Roll gives the rotation one chance to start a random enabled event. Called
// on a fixed schedule.
func (m *Manager) Roll(ctx context.Context) {
	m.mu.Lock()
	if ended, ok := m.expireLocked(); ok {
		m.mu.Unlock()
		m.publish(ctx, event.NewBoostEndedEvent(ended))
		m.mu.Lock()
	}
	if m.active != nil || m.rnd() >= RollChance {
		m.mu.Unlock()
		return
	}

	var pool []BoostEvent
	for _, e := range Events {
		if !m.disabled[e.Name] {
			pool = append(pool, e)
		}
	}
	if len(pool) == 0 {
		m.mu.Unlock()
		return
	}
	idx := int(m.rnd() * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	chosen := pool[idx]
	boost := m.startLocked(chosen.Name, chosen.Boost, chosen.Message, time.Duration(m.durationMinutes)*time.Minute)
	m.mu.Unlock()

	m.publish(ctx, event.NewBoostStartedEvent(boost.Name, boost.Boost, boost.Message, boost.EndsAt))
}

// startLocked replaces the active boost. Must be called with the lock held.
func (m *Manager) startLocked(name string, boost float64, message string, d time.Duration) ActiveBoost {
	m.active = &ActiveBoost{
		Name:    name,
		Boost:   boost,
		Message: message,
		EndsAt:  m.now().Add(d),
	}
	return *m.active
}

// Activate force-starts a named event, replacing whatever is live.
func (m *Manager) Activate(ctx context.Context, name string) (ActiveBoost, error) {
	evt, ok := FindEvent(name)
	if !ok {
		return ActiveBoost{}, domain.ErrItemNotFound
	}

	m.mu.Lock()
	if m.disabled[evt.Name] {
		m.mu.Unlock()
		return ActiveBoost{}, domain.ErrEventDisabled
	}
	boost := m.startLocked(evt.Name, evt.Boost, evt.Message, time.Duration(m.durationMinutes)*time.Minute)
	m.mu.Unlock()

	m.publish(ctx, event.NewBoostStartedEvent(boost.Name, boost.Boost, boost.Message, boost.EndsAt))
	return boost, nil
}

// Chaos stacks every enabled boost into one short burst.
func (m *Manager) Chaos(ctx context.Context) ActiveBoost {
	m.mu.Lock()
	var total float64
	for _, e := range Events {
		if !m.disabled[e.Name] {
			total += e.Boost
		}
	}
	boost := m.startLocked(ChaosName, total, ChaosName, ChaosDurationSeconds*time.Second)
	m.mu.Unlock()

	m.publish(ctx, event.NewBoostStartedEvent(boost.Name, boost.Boost, boost.Message, boost.EndsAt))
	return boost
}

// OnItemAcquired fires the bound event when a trigger item lands.
func (m *Manager) OnItemAcquired(ctx context.Context, itemName string) {
	eventName, ok := acquisitionTriggers[itemName]
	if !ok {
		return
	}
	if _, err := m.Activate(ctx, eventName); err != nil {
		logger.FromContext(ctx).Debug("trigger event not started", "event", eventName, "error", err)
	}
}

// CurrentBoost returns the live additive income boost, expiring lazily.
func (m *Manager) CurrentBoost(ctx context.Context) float64 {
	m.mu.Lock()
	ended, expired := m.expireLocked()
	var boost float64
	if m.active != nil {
		boost = m.active.Boost
	}
	m.mu.Unlock()

	if expired {
		m.publish(ctx, event.NewBoostEndedEvent(ended))
	}
	return boost
}

// ActiveEvent returns a copy of the live boost.
func (m *Manager) ActiveEvent() (ActiveBoost, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expireLocked()
	if m.active == nil {
		return ActiveBoost{}, false
	}
	return *m.active, true
}

// IsFuseLuckActive reports whether fusion runs on the improved odds table.
func (m *Manager) IsFuseLuckActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expireLocked()
	return m.active != nil && m.active.Name == FuseLuckEventName
}

// SetDisabled removes an event from the rotation (or restores it).
func (m *Manager) SetDisabled(name string, disabled bool) error {
	if _, ok := FindEvent(name); !ok {
		return domain.ErrItemNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disabled[name] = disabled
	return nil
}

// DisabledEvents lists the events pulled from the rotation.
func (m *Manager) DisabledEvents() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range Events {
		if m.disabled[e.Name] {
			out = append(out, e.Name)
		}
	}
	return out
}

// SetDurationMinutes changes how long future boosts run.
func (m *Manager) SetDurationMinutes(minutes int) error {
	if minutes < 1 {
		return domain.ErrInvalidInput
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durationMinutes = minutes
	return nil
}

// SetServerMessage stores and broadcasts the banner line.
func (m *Manager) SetServerMessage(ctx context.Context, message string) {
	m.mu.Lock()
	m.serverMessage = message
	m.mu.Unlock()

	m.publish(ctx, event.NewServerMessageEvent(message))
}

// ServerMessage returns the current banner line.
func (m *Manager) ServerMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.serverMessage
}

// RollJob adapts the rotation roll to the worker pool.
type RollJob struct {
	Manager *Manager
}

// Process runs one rotation roll.
func (j *RollJob) Process(ctx context.Context) error {
	j.Manager.Roll(ctx)
	return nil
}
