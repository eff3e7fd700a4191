// internal/domain/cart/store.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrAuthRequired is returned when a cart operation is attempted without
// an authenticated session. No gateway call is made in that case.
var ErrAuthRequired = errors.New("authentication required")

// Gateway is the remote cart API the store synchronizes against.
// Implementations make a single attempt per operation; the store never retries.
type Gateway interface {
	FetchCart(ctx context.Context, token string) ([]LineItem, error)
	AddItem(ctx context.Context, token string, productID uint, quantity int) error
	UpdateItem(ctx context.Context, token string, productID uint, quantity int) error
	RemoveItem(ctx context.Context, token string, productID uint) error
	ClearCart(ctx context.Context, token string) error
}

// Archiver persists cart snapshots across process restarts. The in-memory
// store stays the source of truth; the archive is a rehydration cache.
type Archiver interface {
	Save(ctx context.Context, userID uint, items []LineItem) error
	Load(ctx context.Context, userID uint) ([]LineItem, bool, error)
	Delete(ctx context.Context, userID uint) error
}

// Store holds the authoritative local cart for one authenticated user and
// keeps it synchronized with the remote gateway. Mutations are applied
// optimistically and rolled back when the remote call fails, so the local
// state is never left inconsistent with a failed remote mutation.
type Store struct {
	userID  uint
	gateway Gateway
	archive Archiver
	log     *logrus.Entry

	mu    sync.RWMutex
	token string
	items []LineItem

	// opsMu guards ops; each product gets its own mutex so that rapid
	// mutations of the same line item are serialized in user-intent order
	// while mutations of different products proceed independently.
	opsMu sync.Mutex
	ops   map[uint]*sync.Mutex
}

// NewStore creates a cart store for an authenticated user
func NewStore(userID uint, token string, gateway Gateway, archive Archiver, log *logrus.Entry) (*Store, error) {
	if userID == 0 || token == "" {
		return nil, ErrAuthRequired
	}

	return &Store{
		userID:  userID,
		token:   token,
		gateway: gateway,
		archive: archive,
		log:     log.WithField("user_id", userID),
		ops:     make(map[uint]*sync.Mutex),
	}, nil
}

// SetToken refreshes the bearer token forwarded to the gateway
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Items returns a copy of the current line items
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// Totals returns the computed totals for the current cart
func (s *Store) Totals() Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CalculateTotals(s.items)
}

// FetchCart replaces the local cart with the server snapshot. A gateway
// failure degrades silently to an empty cart so the storefront stays usable.
func (s *Store) FetchCart(ctx context.Context) error {
	items, err := s.gateway.FetchCart(ctx, s.bearer())
	if err != nil {
		s.log.WithError(err).Warn("Failed to fetch cart, resetting to empty")
		items = nil
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.persist(ctx)
	return nil
}

// AddToCart merges quantity into the existing line item for the product, or
// appends a new line item. The optimistic state is visible immediately; if
// the remote add fails the pre-mutation state is restored and the error is
// returned for user display.
func (s *Store) AddToCart(ctx context.Context, product Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}

	lock := s.productLock(product.ID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	prior := s.captureLine(product.ID)
	if i := findItem(s.items, product.ID); i >= 0 {
		s.items[i].Quantity += quantity
	} else {
		s.items = append(s.items, LineItem{Product: product, Quantity: quantity})
	}
	s.mu.Unlock()

	if err := s.gateway.AddItem(ctx, s.bearer(), product.ID, quantity); err != nil {
		s.restoreLine(product.ID, prior)
		return fmt.Errorf("failed to add item to cart: %w", err)
	}

	s.persist(ctx)
	return nil
}

// UpdateQuantity optimistically sets the quantity of a line item, removing
// it entirely when newQuantity <= 0, and rolls back on remote failure.
func (s *Store) UpdateQuantity(ctx context.Context, productID uint, newQuantity int) error {
	lock := s.productLock(productID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	prior := s.captureLine(productID)
	if i := findItem(s.items, productID); i >= 0 {
		if newQuantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = newQuantity
		}
	}
	s.mu.Unlock()

	if err := s.gateway.UpdateItem(ctx, s.bearer(), productID, newQuantity); err != nil {
		s.restoreLine(productID, prior)
		return fmt.Errorf("failed to update quantity: %w", err)
	}

	s.persist(ctx)
	return nil
}

// RemoveFromCart optimistically removes a line item and rolls back when the
// remote delete fails.
func (s *Store) RemoveFromCart(ctx context.Context, productID uint) error {
	lock := s.productLock(productID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	prior := s.captureLine(productID)
	if i := findItem(s.items, productID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	s.mu.Unlock()

	if err := s.gateway.RemoveItem(ctx, s.bearer(), productID); err != nil {
		s.restoreLine(productID, prior)
		return fmt.Errorf("failed to remove item from cart: %w", err)
	}

	s.persist(ctx)
	return nil
}

// ClearCart issues the remote clear and empties the local cart regardless of
// the remote outcome. This path runs after a confirmed order placement, so a
// transient backend failure must not leave the user with a stale cart.
func (s *Store) ClearCart(ctx context.Context) error {
	if err := s.gateway.ClearCart(ctx, s.bearer()); err != nil {
		s.log.WithError(err).Warn("Failed to clear remote cart")
	}

	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	if s.archive != nil {
		if err := s.archive.Delete(ctx, s.userID); err != nil {
			s.log.WithError(err).Debug("Failed to delete cart snapshot")
		}
	}

	return nil
}

// lineSnapshot captures the pre-mutation state of a single line item
type lineSnapshot struct {
	existed bool
	index   int
	item    LineItem
}

// captureLine must be called with s.mu held
func (s *Store) captureLine(productID uint) lineSnapshot {
	if i := findItem(s.items, productID); i >= 0 {
		return lineSnapshot{existed: true, index: i, item: s.items[i]}
	}
	return lineSnapshot{}
}

// restoreLine reverts the line item for productID to its captured state.
// Under per-product serialization, this is equivalent to restoring the whole
// pre-mutation snapshot without clobbering concurrent updates to other lines.
func (s *Store) restoreLine(productID uint, prior lineSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findItem(s.items, productID)
	switch {
	case prior.existed && i >= 0:
		s.items[i] = prior.item
	case prior.existed && i < 0:
		at := prior.index
		if at > len(s.items) {
			at = len(s.items)
		}
		s.items = append(s.items[:at], append([]LineItem{prior.item}, s.items[at:]...)...)
	case !prior.existed && i >= 0:
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
}

func (s *Store) productLock(productID uint) *sync.Mutex {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	lock, ok := s.ops[productID]
	if !ok {
		lock = &sync.Mutex{}
		s.ops[productID] = lock
	}
	return lock
}

func (s *Store) bearer() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// persist archives the current snapshot, best-effort
func (s *Store) persist(ctx context.Context) {
	if s.archive == nil {
		return
	}
	if err := s.archive.Save(ctx, s.userID, s.Items()); err != nil {
		s.log.WithError(err).Debug("Failed to archive cart snapshot")
	}
}

// Manager hands out per-user cart stores. Stores are kept in memory and
// rehydrated from the archive on first access after a restart.
type Manager struct {
	gateway Gateway
	archive Archiver
	log     *logrus.Entry

	mu     sync.Mutex
	stores map[uint]*Store
}

// NewManager creates a cart store manager
func NewManager(gateway Gateway, archive Archiver, log *logrus.Entry) *Manager {
	return &Manager{
		gateway: gateway,
		archive: archive,
		log:     log,
		stores:  make(map[uint]*Store),
	}
}

// ForUser returns the cart store for an authenticated user, creating and
// rehydrating it on first access. An absent session yields ErrAuthRequired.
func (m *Manager) ForUser(ctx context.Context, userID uint, token string) (*Store, error) {
	if userID == 0 || token == "" {
		return nil, ErrAuthRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[userID]; ok {
		store.SetToken(token)
		return store, nil
	}

	store, err := NewStore(userID, token, m.gateway, m.archive, m.log)
	if err != nil {
		return nil, err
	}

	if m.archive != nil {
		if items, ok, err := m.archive.Load(ctx, userID); err == nil && ok {
			store.mu.Lock()
			store.items = items
			store.mu.Unlock()
		} else if err != nil {
			m.log.WithError(err).Debug("Failed to load cart snapshot")
		}
	}

	m.stores[userID] = store
	return store, nil
}

// Drop discards the in-memory store for a user, e.g. on logout
func (m *Manager) Drop(userID uint) {
	m.mu.Lock()
	delete(m.stores, userID)
	m.mu.Unlock()
}
