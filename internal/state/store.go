package state

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
)

// Persister receives the serialized syncable snapshot after every mutation.
// Failures degrade durability until the next successful write; they are
// logged, never surfaced to the mutating caller.
type Persister interface {
	Save(data []byte) error
}

// Store is the single source of truth for the four entity collections plus
// the display currency and the current user id. Every mutation runs to
// completion under one lock, writes through to the local persister, and then
// notifies subscribers exactly once.
type Store struct {
	log  *slog.Logger
	blob Persister

	mu     sync.Mutex
	snap   models.Snapshot
	userID string
	subs   []func()
}

func New(log *slog.Logger, blob Persister, currency string) *Store {
	return &Store{
		log:  log,
		blob: blob,
		snap: models.Snapshot{Currency: currency},
	}
}

// Subscribe registers a change callback. Callbacks run after the mutation is
// committed and persisted, outside the store lock, in registration order.
// Register everything before the store is shared; there is no unsubscribe.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Hydrate restores a previously persisted snapshot at process start. A
// malformed blob is logged and ignored; the store keeps its defaults.
// It does not write back or notify.
func (s *Store) Hydrate(data []byte) {
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.Error("failed to restore local snapshot", "error", err)
		return
	}
	s.mu.Lock()
	if snap.Currency == "" {
		snap.Currency = s.snap.Currency
	}
	s.snap = snap
	s.mu.Unlock()
}

// mutate applies fn under the lock, writes the snapshot through to the local
// persister, and notifies subscribers. Readers can never observe a partial
// application of fn.
func (s *Store) mutate(fn func(*models.Snapshot)) {
	s.mu.Lock()
	fn(&s.snap)
	data, err := json.Marshal(s.snap)
	subs := s.subs
	s.mu.Unlock()

	if err != nil {
		s.log.Error("failed to serialize snapshot", "error", err)
	} else if s.blob != nil {
		if err := s.blob.Save(data); err != nil {
			s.log.Error("failed to persist snapshot locally", "error", err)
		}
	}

	for _, notify := range subs {
		notify()
	}
}

// ---- Transactions ----

func (s *Store) AddTransaction(t models.Transaction) models.Transaction {
	t.ID = uuid.New().String()
	s.mutate(func(snap *models.Snapshot) {
		snap.Transactions = append(snap.Transactions, t)
	})
	return t
}

// AddTransactions appends all records in one state update, so a logical
// batch costs a single persistence write and a single subscriber signal.
func (s *Store) AddTransactions(txs []models.Transaction) []models.Transaction {
	if len(txs) == 0 {
		return nil
	}
	added := make([]models.Transaction, len(txs))
	for i, t := range txs {
		t.ID = uuid.New().String()
		added[i] = t
	}
	s.mutate(func(snap *models.Snapshot) {
		snap.Transactions = append(snap.Transactions, added...)
	})
	return added
}

func (s *Store) RemoveTransaction(id string) {
	s.mutate(func(snap *models.Snapshot) {
		snap.Transactions = removeByID(snap.Transactions, id, func(t models.Transaction) string { return t.ID })
	})
}

// ---- Assets ----

func (s *Store) AddAsset(a models.Asset) models.Asset {
	a.ID = uuid.New().String()
	s.mutate(func(snap *models.Snapshot) {
		snap.Assets = append(snap.Assets, a)
	})
	return a
}

// UpdateAsset merges the provided fields into the matching asset. Missing
// ids are a no-op.
func (s *Store) UpdateAsset(id string, updates dto.AssetUpdates) {
	s.mutate(func(snap *models.Snapshot) {
		for i := range snap.Assets {
			if snap.Assets[i].ID != id {
				continue
			}
			a := &snap.Assets[i]
			if updates.Symbol != nil {
				a.Symbol = *updates.Symbol
			}
			if updates.Name != nil {
				a.Name = *updates.Name
			}
			if updates.Type != nil {
				a.Type = *updates.Type
			}
			if updates.Quantity != nil {
				a.Quantity = *updates.Quantity
			}
			if updates.AvgBuyPrice != nil {
				a.AvgBuyPrice = *updates.AvgBuyPrice
			}
			if updates.CurrentPrice != nil {
				a.CurrentPrice = *updates.CurrentPrice
			}
			return
		}
	})
}

func (s *Store) RemoveAsset(id string) {
	s.mutate(func(snap *models.Snapshot) {
		snap.Assets = removeByID(snap.Assets, id, func(a models.Asset) string { return a.ID })
	})
}

// ---- Goals ----

func (s *Store) AddGoal(g models.Goal) models.Goal {
	g.ID = uuid.New().String()
	s.mutate(func(snap *models.Snapshot) {
		snap.Goals = append(snap.Goals, g)
	})
	return g
}

// UpdateGoal merges the provided fields into the matching goal. It applies
// currentAmount as given, without clamping; AddGoalFunds is the clamping
// path. Imported and remotely hydrated goals may legitimately carry a
// currentAmount above target.
func (s *Store) UpdateGoal(id string, updates dto.GoalUpdates) {
	s.mutate(func(snap *models.Snapshot) {
		for i := range snap.Goals {
			if snap.Goals[i].ID != id {
				continue
			}
			g := &snap.Goals[i]
			if updates.Name != nil {
				g.Name = *updates.Name
			}
			if updates.TargetAmount != nil {
				g.TargetAmount = *updates.TargetAmount
			}
			if updates.CurrentAmount != nil {
				g.CurrentAmount = *updates.CurrentAmount
			}
			if updates.Deadline != nil {
				g.Deadline = *updates.Deadline
			}
			if updates.Color != nil {
				g.Color = *updates.Color
			}
			return
		}
	})
}

// AddGoalFunds adds amount to the goal's currentAmount, clamped to its
// targetAmount.
func (s *Store) AddGoalFunds(id string, amount float64) {
	s.mutate(func(snap *models.Snapshot) {
		for i := range snap.Goals {
			if snap.Goals[i].ID != id {
				continue
			}
			g := &snap.Goals[i]
			g.CurrentAmount = min(g.CurrentAmount+amount, g.TargetAmount)
			return
		}
	})
}

func (s *Store) RemoveGoal(id string) {
	s.mutate(func(snap *models.Snapshot) {
		snap.Goals = removeByID(snap.Goals, id, func(g models.Goal) string { return g.ID })
	})
}

// ---- Subscriptions ----

func (s *Store) AddSubscription(sub models.Subscription) models.Subscription {
	sub.ID = uuid.New().String()
	s.mutate(func(snap *models.Snapshot) {
		snap.Subscriptions = append(snap.Subscriptions, sub)
	})
	return sub
}

func (s *Store) RemoveSubscription(id string) {
	s.mutate(func(snap *models.Snapshot) {
		snap.Subscriptions = removeByID(snap.Subscriptions, id, func(sub models.Subscription) string { return sub.ID })
	})
}

// ---- Whole-state operations ----

// ResetData clears the four collections. Currency and user id are kept.
func (s *Store) ResetData() {
	s.mutate(func(snap *models.Snapshot) {
		snap.Transactions = nil
		snap.Assets = nil
		snap.Goals = nil
		snap.Subscriptions = nil
	})
}

type exportPayload struct {
	Transactions  []models.Transaction  `json:"transactions"`
	Assets        []models.Asset        `json:"assets"`
	Goals         []models.Goal         `json:"goals"`
	Subscriptions []models.Subscription `json:"subscriptions"`
}

type importPayload struct {
	Transactions  *[]models.Transaction `json:"transactions"`
	Assets        *[]models.Asset       `json:"assets"`
	Goals         []models.Goal         `json:"goals"`
	Subscriptions []models.Subscription `json:"subscriptions"`
}

// ExportData serializes the four collections for a user-initiated backup.
func (s *Store) ExportData() ([]byte, error) {
	s.mu.Lock()
	payload := exportPayload{
		Transactions:  emptyIfNil(s.snap.Transactions),
		Assets:        emptyIfNil(s.snap.Assets),
		Goals:         emptyIfNil(s.snap.Goals),
		Subscriptions: emptyIfNil(s.snap.Subscriptions),
	}
	s.mu.Unlock()
	return json.Marshal(payload)
}

// ImportData replaces the four collections wholesale when the payload
// minimally validates (transactions and assets must both be present).
// On malformed input the prior state is left untouched and the failure is
// logged; the returned error only feeds the API response.
func (s *Store) ImportData(data []byte) error {
	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		s.log.Error("failed to import data", "error", err)
		return errs.NewMalformedImportError("import payload is not valid JSON")
	}
	if payload.Transactions == nil || payload.Assets == nil {
		s.log.Error("failed to import data", "error", "missing transactions or assets")
		return errs.NewMalformedImportError("import payload must contain transactions and assets")
	}
	s.mutate(func(snap *models.Snapshot) {
		snap.Transactions = *payload.Transactions
		snap.Assets = *payload.Assets
		snap.Goals = payload.Goals
		snap.Subscriptions = payload.Subscriptions
	})
	return nil
}

// ReplaceSnapshot wholesale-replaces the four collections and the currency.
// This is the remote hydration path; an empty currency keeps the current one.
func (s *Store) ReplaceSnapshot(snap models.Snapshot) {
	s.mutate(func(cur *models.Snapshot) {
		cur.Transactions = snap.Transactions
		cur.Assets = snap.Assets
		cur.Goals = snap.Goals
		cur.Subscriptions = snap.Subscriptions
		if snap.Currency != "" {
			cur.Currency = snap.Currency
		}
	})
}

func (s *Store) SetCurrency(currency string) {
	s.mutate(func(snap *models.Snapshot) {
		snap.Currency = currency
	})
}

// SetUserID records the current identity. It is not part of the syncable
// snapshot and triggers neither persistence nor subscriber notification.
func (s *Store) SetUserID(uid string) {
	s.mu.Lock()
	s.userID = uid
	s.mu.Unlock()
}

// ---- Readers ----

func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Transaction(nil), s.snap.Transactions...)
}

func (s *Store) Assets() []models.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Asset(nil), s.snap.Assets...)
}

func (s *Store) Goals() []models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Goal(nil), s.snap.Goals...)
}

func (s *Store) Subscriptions() []models.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Subscription(nil), s.snap.Subscriptions...)
}

func (s *Store) Currency() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Currency
}

func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// ---- Helpers ----

func removeByID[T any](items []T, id string, key func(T) string) []T {
	for i, item := range items {
		if key(item) == id {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
