package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ecowaste_back_end/internal/models"
	"ecowaste_back_end/internal/storage"
)

// Store owns the persisted entry list for each user's cart. Every mutation
// writes the full list back immediately; derived views are recomputed from
// the entry list on each read so they can never drift from it.
type Store struct {
	kv storage.KV
}

func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

// Entries returns the raw entry list, empty when nothing was ever saved.
func (s *Store) Entries(ctx context.Context, userID string) ([]models.CartEntry, error) {
	data, err := s.kv.Load(ctx, cartKey(userID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	var entries []models.CartEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return entries, nil
}

func (s *Store) persist(ctx context.Context, userID string, entries []models.CartEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.kv.Save(ctx, cartKey(userID), data); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Add appends one entry. Repeated adds of the same product are the way
// quantity accumulates.
func (s *Store) Add(ctx context.Context, userID string, item models.CartEntry) error {
	entries, err := s.Entries(ctx, userID)
	if err != nil {
		return err
	}
	entries = append(entries, item)
	return s.persist(ctx, userID, entries)
}

// Remove drops every entry for the product in one call.
func (s *Store) Remove(ctx context.Context, userID, productID string) error {
	entries, err := s.Entries(ctx, userID)
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.ProductID != productID {
			kept = append(kept, e)
		}
	}
	return s.persist(ctx, userID, kept)
}

// UpdateQuantity adjusts a product by exactly one unit per call; only the
// sign of delta is honored. A positive delta duplicates an existing entry and
// is a no-op when the product is not in the cart. A non-positive delta
// removes one entry, dropping the product entirely when it was the last one.
func (s *Store) UpdateQuantity(ctx context.Context, userID, productID string, delta int) error {
	entries, err := s.Entries(ctx, userID)
	if err != nil {
		return err
	}

	if delta > 0 {
		for _, e := range entries {
			if e.ProductID == productID {
				entries = append(entries, e)
				return s.persist(ctx, userID, entries)
			}
		}
		return nil
	}

	for i, e := range entries {
		if e.ProductID == productID {
			entries = append(entries[:i], entries[i+1:]...)
			return s.persist(ctx, userID, entries)
		}
	}
	return nil
}

// Clear persists an empty entry list.
func (s *Store) Clear(ctx context.Context, userID string) error {
	return s.persist(ctx, userID, []models.CartEntry{})
}

// ClearAfterCheckout removes the storage key entirely so a completed checkout
// leaves no residual cart artifact.
func (s *Store) ClearAfterCheckout(ctx context.Context, userID string) error {
	if err := s.kv.Remove(ctx, cartKey(userID)); err != nil {
		return fmt.Errorf("remove cart: %w", err)
	}
	return nil
}

// Summary returns the aggregated lines and grand total for the live cart.
func (s *Store) Summary(ctx context.Context, userID string) ([]models.CartLine, float64, error) {
	entries, err := s.Entries(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	lines, total := Summarize(entries)
	return lines, total, nil
}
