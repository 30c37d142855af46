// Package sync keeps the domain store's syncable snapshot mirrored to the
// per-user remote document: load on login, debounced merge-writes on change.
package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/identity"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
)

// Remote is the per-identity document store.
type Remote interface {
	Fetch(ctx context.Context, uid string) (*models.UserDocument, bool, error)
	Save(ctx context.Context, uid string, snap models.Snapshot) error
}

// StateStore is the slice of the domain store the controller needs.
type StateStore interface {
	ReplaceSnapshot(snap models.Snapshot)
	Snapshot() models.Snapshot
	SetUserID(uid string)
}

type State string

const (
	StateOffline State = "offline"
	StateSyncing State = "syncing"
	StateSynced  State = "synced"
	StateError   State = "error"
)

// Status is the displayed sync indicator.
type Status struct {
	State State  `json:"state"`
	Error string `json:"error,omitempty"`
}

// phase gates the save path: saves may only be scheduled once the load
// attempt for the current identity has completed, success or failure.
type phase int

const (
	phaseUninitialized phase = iota
	phaseLoading
	phaseReady
)

type saveResult struct {
	gen uint64
	err error
}

// Controller runs a single event loop over identity transitions, store
// change signals, the debounce timer, and save completions. All scheduling
// state lives in the loop; only the status indicator is shared.
type Controller struct {
	log      *slog.Logger
	remote   Remote
	store    StateStore
	events   <-chan identity.Event
	debounce time.Duration

	changes chan struct{}
	status  atomic.Pointer[Status]
}

func New(log *slog.Logger, remote Remote, store StateStore, events <-chan identity.Event, debounce time.Duration) *Controller {
	c := &Controller{
		log:      log,
		remote:   remote,
		store:    store,
		events:   events,
		debounce: debounce,
		changes:  make(chan struct{}, 1),
	}
	c.status.Store(&Status{State: StateOffline})
	return c
}

// NotifyChange signals that a syncable field changed. It never blocks;
// pending signals coalesce, and the loop restarts the quiescence window for
// each one it drains.
func (c *Controller) NotifyChange() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

func (c *Controller) Status() Status {
	return *c.status.Load()
}

func (c *Controller) setStatus(st Status) {
	c.status.Store(&st)
}

// Run consumes events until ctx is canceled. Call it once, in its own
// goroutine.
func (c *Controller) Run(ctx context.Context) {
	var (
		uid     string
		ph      = phaseUninitialized
		gen     uint64 // identity generation; stale save results are discarded
		timer   *time.Timer
		timerC  <-chan time.Time
		results = make(chan saveResult)
	)

	stopTimer := func() {
		if timer != nil && !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timerC = nil
	}

	for {
		select {
		case <-ctx.Done():
			stopTimer()
			return

		case ev := <-c.events:
			stopTimer()
			gen++
			if ev.UID == "" {
				uid = ""
				ph = phaseUninitialized
				c.store.SetUserID("")
				c.setStatus(Status{State: StateOffline})
				c.log.Info("signed out, sync offline")
				continue
			}
			uid = ev.UID
			c.store.SetUserID(uid)
			ph = phaseLoading
			c.setStatus(Status{State: StateSyncing})
			c.load(ctx, uid)
			// initialized for this identity whether the load succeeded
			// or not; the store keeps working locally either way
			ph = phaseReady

		case <-c.changes:
			if uid == "" || ph != phaseReady {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(c.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(c.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			c.setStatus(Status{State: StateSyncing})
			snap := c.store.Snapshot()
			g, u := gen, uid
			go func() {
				err := c.remote.Save(ctx, u, snap)
				select {
				case results <- saveResult{gen: g, err: err}:
				case <-ctx.Done():
				}
			}()

		case res := <-results:
			if res.gen != gen {
				// save issued under a previous identity; its outcome no
				// longer describes the current session
				continue
			}
			if res.err != nil {
				c.setStatus(Status{State: StateError, Error: statusMessage(res.err)})
				c.log.Warn("remote save failed", "error", res.err)
				continue
			}
			c.setStatus(Status{State: StateSynced})
			c.log.Debug("remote save complete")
		}
	}
}

// load fetches the identity's document and hydrates the store. An absent
// document (first-time user) leaves local state untouched. Errors only move
// the status indicator.
func (c *Controller) load(ctx context.Context, uid string) {
	doc, exists, err := c.remote.Fetch(ctx, uid)
	if err != nil {
		c.setStatus(Status{State: StateError, Error: statusMessage(err)})
		c.log.Warn("remote load failed", "error", err)
		return
	}
	if exists {
		c.store.ReplaceSnapshot(doc.Snapshot())
		c.log.Info("remote snapshot loaded")
	} else {
		c.log.Info("no remote snapshot, starting fresh")
	}
	c.setStatus(Status{State: StateSynced})
}

func statusMessage(err error) string {
	var se *errs.SyncError
	if errors.As(err, &se) {
		return se.Message
	}
	return "sync failed"
}
