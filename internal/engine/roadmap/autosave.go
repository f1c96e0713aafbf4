package roadmap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/anatolykoptev/go_campus/internal/engine"
)

// SaveState is the autosaver's persistence state.
type SaveState int

const (
	StateClean SaveState = iota
	StateDirty
	StateSaving
)

func (s SaveState) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateDirty:
		return "dirty"
	case StateSaving:
		return "saving"
	}
	return "unknown"
}

// DefaultDebounce is the delay between the last edit and the write.
const DefaultDebounce = 2 * time.Second

// Autosaver debounces snapshot writes for one graph. Every edit restarts the
// debounce timer, so a burst of toggles produces a single write carrying the
// final state. A failed write returns to dirty and rearms the timer; the
// edit that triggered it is never blocked or surfaced as an error.
type Autosaver struct {
	store      Store
	graph      *Graph
	userID     string
	resourceID string
	debounce   time.Duration

	mu          sync.Mutex
	state       SaveState
	timer       *time.Timer
	lastSavedAt time.Time
}

// NewAutosaver creates an autosaver for the graph. A debounce of 0 uses
// DefaultDebounce.
func NewAutosaver(store Store, graph *Graph, userID, resourceID string, debounce time.Duration) *Autosaver {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Autosaver{
		store:      store,
		graph:      graph,
		userID:     userID,
		resourceID: resourceID,
		debounce:   debounce,
		state:      StateClean,
	}
}

// MarkDirty records an edit and (re)arms the debounce timer. An edit that
// lands while a write is in flight moves state back to dirty, so the
// post-write check leaves it pending for the rearmed timer.
func (a *Autosaver) MarkDirty() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state = StateDirty
	a.armTimerLocked()
}

// armTimerLocked cancels any pending timer and starts a fresh one.
func (a *Autosaver) armTimerLocked() {
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.debounce, a.flush)
}

// flush runs on timer expiry: snapshot the graph and write it out.
func (a *Autosaver) flush() {
	a.mu.Lock()
	if a.state == StateClean {
		a.mu.Unlock()
		return
	}
	a.state = StateSaving
	a.mu.Unlock()

	snap := a.graph.Snapshot(time.Now().UTC())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err := a.store.Put(ctx, a.userID, a.resourceID, snap)
	cancel()

	a.mu.Lock()
	defer a.mu.Unlock()

	if err != nil {
		engine.IncrProgressSaveErrors()
		slog.Warn("autosave: write failed, will retry",
			slog.String("user", a.userID),
			slog.String("resource", a.resourceID),
			slog.Any("error", err))
		a.state = StateDirty
		a.armTimerLocked()
		return
	}

	engine.IncrProgressSaves()
	a.lastSavedAt = snap.UpdatedAt

	// Edits that arrived during the write moved state back to dirty and
	// rearmed the timer; only an undisturbed save returns to clean.
	if a.state == StateSaving {
		a.state = StateClean
	}
}

// Flush forces an immediate write of any unsaved state, for shutdown.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if a.state == StateClean {
		a.mu.Unlock()
		return nil
	}
	a.state = StateSaving
	a.mu.Unlock()

	snap := a.graph.Snapshot(time.Now().UTC())
	err := a.store.Put(ctx, a.userID, a.resourceID, snap)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		engine.IncrProgressSaveErrors()
		a.state = StateDirty
		return err
	}
	engine.IncrProgressSaves()
	a.lastSavedAt = snap.UpdatedAt
	if a.state == StateSaving {
		a.state = StateClean
	}
	return nil
}

// State returns the current persistence state.
func (a *Autosaver) State() SaveState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// LastSavedAt returns the timestamp of the last successful write (zero if
// none yet).
func (a *Autosaver) LastSavedAt() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastSavedAt
}

// Stop cancels any pending write without flushing.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
