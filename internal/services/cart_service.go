package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"gleamgallery/internal/kv"
	"gleamgallery/internal/models"
)

// GuestSubject is the bucket used when no authenticated user is present.
const GuestSubject = "guest"

// CartService keeps one cart per subject (a user id or the guest
// bucket), persisted wholesale into a keyed slot on every change. Carts
// hold product snapshots: later catalog edits do not reach lines already
// in a cart. Guest and user carts are never merged; each request works
// against its own subject's slot only.
type CartService struct {
	mu     sync.Mutex
	slots  kv.Store
	logger zerolog.Logger
}

func NewCartService(slots kv.Store, logger zerolog.Logger) *CartService {
	return &CartService{slots: slots, logger: logger}
}

func cartKey(subject string) string {
	if subject == "" {
		subject = GuestSubject
	}
	return "cart_" + subject
}

func (s *CartService) Get(subject string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildCart(s.load(subject))
}

// AddItem merges by product id: an existing line has its quantity
// incremented, otherwise a new line is appended. The returned message is
// the caller-facing confirmation.
func (s *CartService) AddItem(subject string, product models.Product, quantity int) (models.Cart, string) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(subject)
	merged := false
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{Product: product, Quantity: quantity})
	}

	s.save(subject, items)
	return buildCart(items), fmt.Sprintf("%s has been added to your cart.", product.Name)
}

// UpdateQuantity sets a line's quantity exactly. Zero or less removes
// the line; an absent product id is a no-op.
func (s *CartService) UpdateQuantity(subject, productID string, quantity int) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(subject)
	if quantity <= 0 {
		items = removeLine(items, productID)
	} else {
		for i := range items {
			if items[i].ID == productID {
				items[i].Quantity = quantity
				break
			}
		}
	}

	s.save(subject, items)
	return buildCart(items)
}

// RemoveItem drops the line if present. Removing an absent line is not
// an error.
func (s *CartService) RemoveItem(subject, productID string) (models.Cart, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := removeLine(s.load(subject), productID)
	s.save(subject, items)
	return buildCart(items), "Item has been removed from your cart."
}

func (s *CartService) Clear(subject string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.save(subject, nil)
	return buildCart(nil)
}

// load reads the subject's slot. A corrupt slot is treated as an empty
// cart and discarded.
func (s *CartService) load(subject string) []models.CartItem {
	raw, ok := s.slots.Get(cartKey(subject))
	if !ok {
		return nil
	}

	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn().Err(err).Str("subject", subject).Msg("Discarding corrupt cart slot")
		s.slots.Delete(cartKey(subject))
		return nil
	}
	return items
}

// save writes the full line list. An empty cart removes the slot
// entirely, so a missing slot and an empty cart are the same state.
func (s *CartService) save(subject string, items []models.CartItem) {
	key := cartKey(subject)
	if len(items) == 0 {
		s.slots.Delete(key)
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		s.logger.Error().Err(err).Str("subject", subject).Msg("Failed to serialize cart")
		return
	}
	s.slots.Set(key, raw)
}

func removeLine(items []models.CartItem, productID string) []models.CartItem {
	out := items[:0]
	for _, item := range items {
		if item.ID != productID {
			out = append(out, item)
		}
	}
	return out
}

func buildCart(items []models.CartItem) models.Cart {
	cart := models.Cart{Items: items}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	for _, item := range cart.Items {
		cart.TotalItems += item.Quantity
		cart.TotalPrice += item.Price * float64(item.Quantity)
	}
	return cart
}
