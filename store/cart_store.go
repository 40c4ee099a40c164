package store

import (
	"sync"

	"github.com/undivisible/gizzmoelectronics.com/models"
)

// Subscriber receives the full cart state after every mutation. Subscribers
// must treat the snapshot as read-only.
type Subscriber func(models.CartState)

// CartStore is the single owner of one session's cart state. All reads go
// through snapshots and all writes go through its methods, so observers can
// never see a state that mixes two mutations.
type CartStore struct {
	mu     sync.Mutex
	state  models.CartState
	subs   map[int]Subscriber
	nextID int
}

func NewCartStore() *CartStore {
	return &CartStore{
		state: models.CartState{Items: []models.CartItem{}},
		subs:  make(map[int]Subscriber),
	}
}

// Subscribe registers an observer and returns a cancel function that removes
// it. Observers are notified synchronously, in the goroutine performing the
// mutation.
func (s *CartStore) Subscribe(fn Subscriber) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// State returns a snapshot of the current cart state.
func (s *CartStore) State() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// AddItem appends the product with quantity 1, or increments the quantity if
// the product is already in the cart. Either way the cart panel opens.
func (s *CartStore) AddItem(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.state.Items {
		if s.state.Items[i].ID == p.ID {
			s.state.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.state.Items = append(s.state.Items, models.CartItem{Product: p, Quantity: 1})
	}
	s.state.IsOpen = true
	s.notifyLocked()
}

// RemoveItem drops the matching item. Removing an absent product is a no-op,
// not an error.
func (s *CartStore) RemoveItem(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.state.Items[:0:0]
	for _, item := range s.state.Items {
		if item.ID != productID {
			items = append(items, item)
		}
	}
	s.state.Items = items
	s.notifyLocked()
}

// SetQuantity sets the item's quantity. A quantity of zero or less removes
// the item entirely; unknown product IDs are ignored.
func (s *CartStore) SetQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.state.Items[:0:0]
	for _, item := range s.state.Items {
		if item.ID == productID {
			item.Quantity = quantity
		}
		if item.Quantity > 0 {
			items = append(items, item)
		}
	}
	s.state.Items = items
	s.notifyLocked()
}

// Clear empties the cart. The visibility flag is left as is.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = []models.CartItem{}
	s.notifyLocked()
}

func (s *CartStore) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsOpen = true
	s.notifyLocked()
}

func (s *CartStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsOpen = false
	s.notifyLocked()
}

func (s *CartStore) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsOpen = !s.state.IsOpen
	s.notifyLocked()
}

func (s *CartStore) snapshotLocked() models.CartState {
	items := make([]models.CartItem, len(s.state.Items))
	copy(items, s.state.Items)
	return models.CartState{Items: items, IsOpen: s.state.IsOpen}
}

// notifyLocked delivers a fresh snapshot to every subscriber while the store
// lock is held, so a concurrent mutation cannot interleave with delivery.
func (s *CartStore) notifyLocked() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, fn := range s.subs {
		fn(snap)
	}
}
