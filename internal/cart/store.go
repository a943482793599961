// Package cart maintains per-session shopping carts: the authoritative
// in-memory representation of what a visitor intends to purchase,
// independent of server-side order state. Every mutation is synchronously
// persisted to an embedded key-value store so carts survive restarts, and
// sessions rehydrate from the store on first access.
package cart

import (
	"encoding/json"
	"fmt"
	"sync"

	"souq-store/internal/model"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"
)

// bucketName is the bbolt bucket holding cart snapshots.
var bucketName = []byte("carts")

// storageKey returns the namespaced persistence key for a session.
func storageKey(sessionID string) []byte {
	return []byte("cart:" + sessionID)
}

// Store holds all active carts, keyed by session ID.
type Store struct {
	db     *bolt.DB
	mu     sync.RWMutex
	carts  map[string]*model.Cart
	logger zerolog.Logger
}

// NewStore creates a cart store backed by the given bbolt database.
func NewStore(db *bolt.DB, logger zerolog.Logger) (*Store, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cart bucket: %w", err)
	}

	return &Store{
		db:     db,
		carts:  make(map[string]*model.Cart),
		logger: logger.With().Str("component", "cart-store").Logger(),
	}, nil
}

// Get returns a snapshot of the session's cart, rehydrating it from durable
// storage on first access. A session with no stored cart gets an empty one.
func (s *Store) Get(sessionID string) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartLocked(sessionID)
	if err != nil {
		return model.Cart{}, err
	}
	return snapshot(cart), nil
}

// AddItem merges the product into the session's cart and persists the result.
func (s *Store) AddItem(sessionID string, product model.Product, quantity int) (model.Cart, error) {
	return s.mutate(sessionID, func(c *model.Cart) {
		c.AddItem(product, quantity)
	})
}

// RemoveItem deletes the product's entry if present; removing an absent
// product is a no-op.
func (s *Store) RemoveItem(sessionID string, productID int64) (model.Cart, error) {
	return s.mutate(sessionID, func(c *model.Cart) {
		c.RemoveItem(productID)
	})
}

// UpdateQuantity sets the quantity for a product already in the cart,
// clamped to a minimum of 1. Updating an absent product is a no-op.
func (s *Store) UpdateQuantity(sessionID string, productID int64, quantity int) (model.Cart, error) {
	return s.mutate(sessionID, func(c *model.Cart) {
		c.UpdateQuantity(productID, quantity)
	})
}

// Clear empties the session's cart. Called explicitly after a successful
// checkout.
func (s *Store) Clear(sessionID string) (model.Cart, error) {
	return s.mutate(sessionID, func(c *model.Cart) {
		c.Clear()
	})
}

// mutate applies fn to the session's cart and synchronously persists the
// full cart state before returning.
func (s *Store) mutate(sessionID string, fn func(*model.Cart)) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartLocked(sessionID)
	if err != nil {
		return model.Cart{}, err
	}

	fn(cart)

	if err := s.persist(sessionID, cart); err != nil {
		return model.Cart{}, err
	}

	return snapshot(cart), nil
}

// cartLocked returns the live cart for a session, loading it from the
// durable store the first time the session is seen. Callers hold s.mu.
func (s *Store) cartLocked(sessionID string) (*model.Cart, error) {
	if cart, ok := s.carts[sessionID]; ok {
		return cart, nil
	}

	cart := &model.Cart{}
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketName).Get(storageKey(sessionID))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, cart); err != nil {
			return fmt.Errorf("failed to decode stored cart: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to load cart")
		return nil, err
	}

	s.carts[sessionID] = cart
	return cart, nil
}

// persist writes the full cart snapshot under the session's namespace key.
func (s *Store) persist(sessionID string, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(storageKey(sessionID), data)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to persist cart")
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Int("items", len(cart.Items)).
		Msg("cart persisted")

	return nil
}

// snapshot deep-copies a cart so callers cannot mutate store state.
func snapshot(cart *model.Cart) model.Cart {
	out := model.Cart{}
	if len(cart.Items) > 0 {
		out.Items = make([]model.CartItem, len(cart.Items))
		copy(out.Items, cart.Items)
	}
	return out
}
