// Package list owns the shopping list. The Service is the single mutator:
// every change goes through it, is validated at the boundary, and is written
// back to the store before the call returns.
package list

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/smartshop-app/smartshop/internal/ai"
	"github.com/smartshop-app/smartshop/internal/model"
)

// ErrNameRequired is returned when an add request carries a blank name.
var ErrNameRequired = errors.New("list: item name is required")

// Store persists the full item list. Implementations must treat Save as a
// complete overwrite of the previous value.
type Store interface {
	Load() ([]model.ShoppingItem, error)
	Save(items []model.ShoppingItem) error
}

// Assistant is the AI collaborator behind suggestions and categorization.
type Assistant interface {
	SuggestForgotten(ctx context.Context, names []string) ([]model.AISuggestion, error)
	CategorizeItems(ctx context.Context, refs []model.ItemRef) ([]model.Categorization, error)
}

type Service struct {
	mu          sync.Mutex
	store       Store
	assistant   Assistant
	logger      *slog.Logger
	items       []model.ShoppingItem
	suggestions []model.AISuggestion

	// fetchSeq orders suggestion fetches so that a slow, stale response can
	// never overwrite the result of a fetch started after it.
	fetchSeq uint64
}

// NewService builds the controller and restores the persisted list. A
// corrupt or unreadable persisted list degrades to an empty one; it is
// logged, never fatal.
func NewService(store Store, assistant Assistant, logger *slog.Logger) *Service {
	items, err := store.Load()
	if err != nil {
		logger.Warn("could not restore persisted list, starting empty", "error", err)
		items = nil
	}
	return &Service{
		store:     store,
		assistant: assistant,
		logger:    logger,
		items:     items,
	}
}

// persist writes the current list back. Called with the lock held.
func (s *Service) persist() {
	if err := s.store.Save(s.items); err != nil {
		s.logger.Error("persist list", "error", err)
	}
}

// Items returns a copy of the current list in insertion order.
func (s *Service) Items() []model.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ShoppingItem, len(s.items))
	copy(out, s.items)
	return out
}

// Suggestions returns a copy of the current transient suggestion list.
func (s *Service) Suggestions() []model.AISuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.AISuggestion, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// Add appends a new item with a fresh id and the creation defaults. A blank
// name (after trimming) is rejected and leaves the list unchanged; an
// invalid category falls back to Other.
func (s *Service) Add(name string, category model.Category) (*model.ShoppingItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !category.Valid() {
		category = model.CategoryOther
	}

	item := model.ShoppingItem{
		ID:       uuid.NewString(),
		Name:     name,
		Price:    0,
		Quantity: 1,
		Category: category,
		Checked:  false,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	s.persist()
	return &item, nil
}

// Toggle flips the checked state of the matching item. Returns nil if the id
// is unknown.
func (s *Service) Toggle(id string) *model.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Checked = !s.items[i].Checked
			s.persist()
			item := s.items[i]
			return &item
		}
	}
	return nil
}

// Update applies the provided fields to the matching item. Quantity is
// clamped to a minimum of 1 and a non-finite or negative price is coerced to
// 0, so invalid numeric input can never corrupt the list. Returns nil if the
// id is unknown.
func (s *Service) Update(id string, upd model.ItemUpdate) *model.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if upd.Name != nil {
			if name := strings.TrimSpace(*upd.Name); name != "" {
				s.items[i].Name = name
			}
		}
		if upd.Price != nil {
			price := *upd.Price
			if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
				price = 0
			}
			s.items[i].Price = price
		}
		if upd.Quantity != nil {
			qty := *upd.Quantity
			if qty < 1 {
				qty = 1
			}
			s.items[i].Quantity = qty
		}
		if upd.Category != nil && upd.Category.Valid() {
			s.items[i].Category = *upd.Category
		}
		if upd.Checked != nil {
			s.items[i].Checked = *upd.Checked
		}
		s.persist()
		item := s.items[i]
		return &item
	}
	return nil
}

// Remove deletes the matching item. Returns false if the id is unknown.
func (s *Service) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// Clear empties the list unconditionally.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// FetchSuggestions asks the assistant for forgotten items and replaces the
// transient suggestion list with the validated result. Generic failures
// degrade to an empty list; a credential rejection is returned so the caller
// can prompt for reconfiguration. Other mutations may run while the call is
// outstanding; if a newer fetch starts meanwhile, this result is discarded.
func (s *Service) FetchSuggestions(ctx context.Context) ([]model.AISuggestion, error) {
	s.mu.Lock()
	seq := s.fetchSeq + 1
	s.fetchSeq = seq
	names := make([]string, len(s.items))
	for i, item := range s.items {
		names[i] = item.Name
	}
	s.mu.Unlock()

	suggestions, err := s.assistant.SuggestForgotten(ctx, names)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq {
		// A newer fetch started while this one was in flight.
		out := make([]model.AISuggestion, len(s.suggestions))
		copy(out, s.suggestions)
		return out, nil
	}

	if err != nil {
		if errors.Is(err, ai.ErrInvalidCredential) {
			return nil, err
		}
		s.logger.Warn("suggestion fetch failed", "error", err)
		suggestions = nil
	}

	s.suggestions = suggestions
	out := make([]model.AISuggestion, len(s.suggestions))
	copy(out, s.suggestions)
	return out, nil
}

// AcceptSuggestion promotes the named suggestion to a real item and removes
// it from the suggestion list. Returns nil if no suggestion has that name.
func (s *Service) AcceptSuggestion(name string) *model.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, sug := range s.suggestions {
		if sug.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	item := model.ShoppingItem{
		ID:       uuid.NewString(),
		Name:     s.suggestions[idx].Name,
		Price:    0,
		Quantity: 1,
		Category: s.suggestions[idx].Category,
		Checked:  false,
	}
	s.items = append(s.items, item)
	s.suggestions = append(s.suggestions[:idx], s.suggestions[idx+1:]...)
	s.persist()
	return &item
}

// AutoCategorize asks the assistant to classify every current item and
// overwrites the category of each item matched by id. Unknown ids are
// dropped; on failure no category changes. Returns how many items changed.
func (s *Service) AutoCategorize(ctx context.Context) (int, error) {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return 0, nil
	}
	refs := make([]model.ItemRef, len(s.items))
	for i, item := range s.items {
		refs[i] = model.ItemRef{ID: item.ID, Name: item.Name}
	}
	s.mu.Unlock()

	results, err := s.assistant.CategorizeItems(ctx, refs)
	if err != nil {
		if errors.Is(err, ai.ErrInvalidCredential) {
			return 0, err
		}
		s.logger.Warn("auto-categorize failed", "error", err)
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]model.Category, len(results))
	for _, r := range results {
		byID[r.ID] = r.Category
	}

	changed := 0
	for i := range s.items {
		if cat, ok := byID[s.items[i].ID]; ok && s.items[i].Category != cat {
			s.items[i].Category = cat
			changed++
		}
	}
	if changed > 0 {
		s.persist()
	}
	return changed, nil
}
