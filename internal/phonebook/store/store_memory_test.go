package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"phonebook/internal/phonebook/models"
	"phonebook/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) newItem(firstName, lastName, phone string) *models.Item {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.Item{
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phone,
		CountryCode: "US",
		TimeZone:    "UTC",
		InsertedOn:  now,
		UpdatedOn:   now,
	}
}

func (s *InMemoryStoreSuite) TestCreateAndLookups() {
	s.Run("creates with generated id and finds by id", func() {
		created, err := s.store.Create(s.ctx, s.newItem("Alice", "Smith", "+12 223 444224455"))
		s.Require().NoError(err)
		s.Require().NotZero(created.ID)

		found, err := s.store.FindByID(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal("Alice", found.FirstName)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.FindByID(s.ctx, 9999)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("finds by first name and phone number", func() {
		created, err := s.store.Create(s.ctx, s.newItem("Bob", "Jones", "+12 111 222333444"))
		s.Require().NoError(err)

		found, err := s.store.FindByNameAndPhone(s.ctx, "Bob", "+12 111 222333444")
		s.Require().NoError(err)
		s.Equal(created.ID, found.ID)

		_, err = s.store.FindByNameAndPhone(s.ctx, "Bob", "+12 999 999999999")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestUpdate() {
	created, err := s.store.Create(s.ctx, s.newItem("Alice", "Smith", "+12 223 444224455"))
	s.Require().NoError(err)

	created.LastName = "Johnson"
	created.UpdatedOn = created.UpdatedOn.Add(time.Minute)
	updated, err := s.store.Update(s.ctx, created)
	s.Require().NoError(err)
	s.Equal("Johnson", updated.LastName)

	found, err := s.store.FindByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Johnson", found.LastName)

	missing := s.newItem("Ghost", "Entry", "+12 000 000000000")
	missing.ID = 4242
	_, err = s.store.Update(s.ctx, missing)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestDelete() {
	created, err := s.store.Create(s.ctx, s.newItem("Alice", "Smith", "+12 223 444224455"))
	s.Require().NoError(err)

	s.Require().NoError(s.store.Delete(s.ctx, created.ID))

	// Deleting twice is NotFound, not a crash.
	err = s.store.Delete(s.ctx, created.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.FindByID(s.ctx, created.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestListSearchAndPagination() {
	names := []struct{ first, last, phone string }{
		{"Alice", "Smith", "+12 100 000000001"},
		{"Bob", "Alison", "+12 100 000000002"},
		{"Carol", "Jones", "+12 100 000000003"},
		{"Dave", "Brown", "+12 100 000000004"},
	}
	for _, n := range names {
		_, err := s.store.Create(s.ctx, s.newItem(n.first, n.last, n.phone))
		s.Require().NoError(err)
	}

	s.Run("search matches first or last name, case-insensitive", func() {
		items, total, err := s.store.List(s.ctx, ListQuery{SearchPhrase: "ali"})
		s.Require().NoError(err)
		s.Equal(2, total)
		s.Require().Len(items, 2)
		s.Equal("Alice", items[0].FirstName)
		s.Equal("Alison", items[1].LastName)
	})

	s.Run("pagination slices ordered results", func() {
		items, total, err := s.store.List(s.ctx, ListQuery{Limit: 2, Offset: 1})
		s.Require().NoError(err)
		s.Equal(4, total)
		s.Require().Len(items, 2)
		s.Equal("Bob", items[0].FirstName)
		s.Equal("Carol", items[1].FirstName)
	})

	s.Run("offset beyond total yields empty page with true total", func() {
		items, total, err := s.store.List(s.ctx, ListQuery{Limit: 10, Offset: 100})
		s.Require().NoError(err)
		s.Equal(4, total)
		s.Empty(items)
	})

	s.Run("limit is capped", func() {
		query := ListQuery{Limit: 100000}.Normalize()
		s.Equal(MaxLimit, query.Limit)
	})

	s.Run("defaults applied", func() {
		query := ListQuery{Offset: -5}.Normalize()
		s.Equal(DefaultLimit, query.Limit)
		s.Equal(0, query.Offset)
	})
}

func (s *InMemoryStoreSuite) TestReturnedItemsAreCopies() {
	created, err := s.store.Create(s.ctx, s.newItem("Alice", "Smith", "+12 223 444224455"))
	s.Require().NoError(err)

	found, err := s.store.FindByID(s.ctx, created.ID)
	s.Require().NoError(err)
	found.FirstName = "Mutated"

	again, err := s.store.FindByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Alice", again.FirstName, "store contents must not alias returned items")
}
