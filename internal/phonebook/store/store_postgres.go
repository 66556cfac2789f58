package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"phonebook/internal/phonebook/models"
	"phonebook/pkg/platform/sentinel"
)

// Postgres persists phone book items in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed item store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS phone_book_items (
	id           BIGSERIAL PRIMARY KEY,
	first_name   TEXT NOT NULL,
	last_name    TEXT NOT NULL,
	phone_number TEXT NOT NULL,
	country_code TEXT NOT NULL,
	time_zone    TEXT NOT NULL,
	inserted_on  TIMESTAMPTZ NOT NULL,
	updated_on   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_phone_book_items_names
	ON phone_book_items (first_name, last_name);
`

// EnsureSchema creates the backing table when it does not exist yet.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure phone_book_items schema: %w", err)
	}
	return nil
}

const itemColumns = `id, first_name, last_name, phone_number, country_code, time_zone, inserted_on, updated_on`

func scanItem(row *sql.Row) (*models.Item, error) {
	var item models.Item
	err := row.Scan(
		&item.ID,
		&item.FirstName,
		&item.LastName,
		&item.PhoneNumber,
		&item.CountryCode,
		&item.TimeZone,
		&item.InsertedOn,
		&item.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM phone_book_items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("item %d: %w", id, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find item by id: %w", err)
	}
	return item, nil
}

func (s *Postgres) FindByNameAndPhone(ctx context.Context, firstName, phoneNumber string) (*models.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM phone_book_items
		 WHERE first_name = $1 AND phone_number = $2
		 ORDER BY id LIMIT 1`, firstName, phoneNumber)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("item %s/%s: %w", firstName, phoneNumber, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find item by name and phone: %w", err)
	}
	return item, nil
}

func (s *Postgres) List(ctx context.Context, query ListQuery) ([]*models.Item, int, error) {
	query = query.Normalize()
	pattern := "%" + query.SearchPhrase + "%"

	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM phone_book_items
		 WHERE $1 = '' OR first_name ILIKE $2 OR last_name ILIKE $2`,
		query.SearchPhrase, pattern).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM phone_book_items
		 WHERE $1 = '' OR first_name ILIKE $2 OR last_name ILIKE $2
		 ORDER BY id
		 LIMIT $3 OFFSET $4`,
		query.SearchPhrase, pattern, query.Limit, query.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID,
			&item.FirstName,
			&item.LastName,
			&item.PhoneNumber,
			&item.CountryCode,
			&item.TimeZone,
			&item.InsertedOn,
			&item.UpdatedOn,
		); err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate items: %w", err)
	}

	return items, total, nil
}

func (s *Postgres) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	created := *item
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO phone_book_items
			(first_name, last_name, phone_number, country_code, time_zone, inserted_on, updated_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		item.FirstName, item.LastName, item.PhoneNumber,
		item.CountryCode, item.TimeZone, item.InsertedOn, item.UpdatedOn,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &created, nil
}

func (s *Postgres) Update(ctx context.Context, item *models.Item) (*models.Item, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE phone_book_items
		 SET first_name = $1, last_name = $2, phone_number = $3,
		     country_code = $4, time_zone = $5, updated_on = $6
		 WHERE id = $7`,
		item.FirstName, item.LastName, item.PhoneNumber,
		item.CountryCode, item.TimeZone, item.UpdatedOn, item.ID)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update item rows affected: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("item %d: %w", item.ID, sentinel.ErrNotFound)
	}
	updated := *item
	return &updated, nil
}

func (s *Postgres) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM phone_book_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %d: %w", id, sentinel.ErrNotFound)
	}
	return nil
}
