package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"phonebook/internal/phonebook/models"
	"phonebook/pkg/platform/sentinel"
)

// InMemory stores phone book items in memory for tests/dev.
type InMemory struct {
	mu     sync.RWMutex
	items  map[int64]*models.Item
	nextID int64
}

// NewInMemory constructs an empty in-memory item store.
func NewInMemory() *InMemory {
	return &InMemory{items: make(map[int64]*models.Item), nextID: 1}
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if item, ok := s.items[id]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, fmt.Errorf("item %d: %w", id, sentinel.ErrNotFound)
}

func (s *InMemory) FindByNameAndPhone(_ context.Context, firstName, phoneNumber string) (*models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.FirstName == firstName && item.PhoneNumber == phoneNumber {
			copied := *item
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("item %s/%s: %w", firstName, phoneNumber, sentinel.ErrNotFound)
}

func (s *InMemory) List(_ context.Context, query ListQuery) ([]*models.Item, int, error) {
	query = query.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	phrase := strings.ToLower(query.SearchPhrase)
	var matched []*models.Item
	for _, item := range s.items {
		if phrase != "" &&
			!strings.Contains(strings.ToLower(item.FirstName), phrase) &&
			!strings.Contains(strings.ToLower(item.LastName), phrase) {
			continue
		}
		matched = append(matched, item)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	if query.Offset >= total {
		return nil, total, nil
	}
	end := query.Offset + query.Limit
	if end > total {
		end = total
	}

	page := make([]*models.Item, 0, end-query.Offset)
	for _, item := range matched[query.Offset:end] {
		copied := *item
		page = append(page, &copied)
	}
	return page, total, nil
}

func (s *InMemory) Create(_ context.Context, item *models.Item) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *item
	copied.ID = s.nextID
	s.nextID++
	s.items[copied.ID] = &copied

	result := copied
	return &result, nil
}

func (s *InMemory) Update(_ context.Context, item *models.Item) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; !ok {
		return nil, fmt.Errorf("item %d: %w", item.ID, sentinel.ErrNotFound)
	}

	copied := *item
	s.items[copied.ID] = &copied

	result := copied
	return &result, nil
}

func (s *InMemory) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("item %d: %w", id, sentinel.ErrNotFound)
	}
	delete(s.items, id)
	return nil
}
