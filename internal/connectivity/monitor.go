package connectivity

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pressmill/console/internal/draftstore"
	"github.com/pressmill/console/internal/model"
	"github.com/pressmill/console/internal/status"
)

// DefaultPollInterval is the fallback poll cadence for environments whose
// signal does not reliably fire transition events.
const DefaultPollInterval = 30 * time.Second

var monLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	monLogger = l
}

// Monitor observes a Signal, persists every observation through the draft
// store, and notifies listeners on actual transitions. It never initiates
// network requests of its own.
type Monitor struct {
	store    draftstore.Store
	signal   Signal
	interval time.Duration

	broadcaster *status.Broadcaster

	mu          sync.RWMutex
	online      bool
	lastChecked time.Time
	listeners   []func(model.ConnectivityStatus)

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewMonitor(store draftstore.Store, signal Signal, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Monitor{
		store:    store,
		signal:   signal,
		interval: interval,
	}
}

// SetBroadcaster wires an optional status broadcaster. Call before Start.
func (m *Monitor) SetBroadcaster(b *status.Broadcaster) {
	m.broadcaster = b
}

// OnChange registers a transition listener. Call before Start; listeners
// run on the monitor goroutine, sequentially, in registration order.
func (m *Monitor) OnChange(fn func(model.ConnectivityStatus)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Start seeds state from the signal's current view and begins watching for
// transition events, polling as a fallback.
func (m *Monitor) Start() {
	m.record(m.signal.Online(), false)

	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	go m.loop()
}

func (m *Monitor) loop() {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	events := m.signal.Events()
	for {
		select {
		case online, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			m.record(online, true)
		case <-ticker.C:
			// Re-persist on every poll regardless of change; the write is
			// an idempotent upsert of the single connectivity row.
			m.record(m.signal.Online(), false)
		case <-m.stop:
			return
		}
	}
}

func (m *Monitor) record(online bool, isTransition bool) {
	m.mu.Lock()
	changed := online != m.online
	m.online = online
	m.lastChecked = time.Now().UTC().Truncate(time.Millisecond)
	st := model.ConnectivityStatus{Online: m.online, LastChecked: m.lastChecked}
	listeners := m.listeners
	m.mu.Unlock()

	if err := m.store.SaveConnectivityStatus(st); err != nil {
		monLogger.Error().Err(err).Bool("online", online).Msg("Error persisting connectivity status")
	}

	if !isTransition || !changed {
		return
	}

	monLogger.Info().Bool("online", online).Msg("Connectivity changed")

	for _, fn := range listeners {
		fn(st)
	}
	if m.broadcaster != nil {
		m.broadcaster.Broadcast(status.Event{
			Kind:        status.KindConnectivity,
			Online:      st.Online,
			LastChecked: st.LastChecked,
		})
	}
}

// Status returns the current in-memory view.
func (m *Monitor) Status() model.ConnectivityStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return model.ConnectivityStatus{Online: m.online, LastChecked: m.lastChecked}
}

// Stop cancels the poll timer, drops all listeners and waits for the
// monitor goroutine to exit. Safe to call more than once.
func (m *Monitor) Stop() {
	if m.stop == nil {
		return
	}
	m.stopOnce.Do(func() {
		close(m.stop)
		<-m.done

		m.mu.Lock()
		m.listeners = nil
		m.mu.Unlock()
	})
}
