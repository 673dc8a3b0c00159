package store

import (
	"database/sql"
	"fmt"

	"github.com/boy-who-codes/nodeflix/internal/model"
)

type ListingStore struct {
	db *sql.DB
}

func NewListingStore(db *sql.DB) *ListingStore {
	return &ListingStore{db: db}
}

func scanListing(scanner interface{ Scan(...any) error }) (*model.Listing, error) {
	var l model.Listing
	err := scanner.Scan(&l.ID, &l.Title, &l.Kind, &l.Year, &l.Synopsis, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const listingCols = `id, title, kind, year, synopsis, created_at`

func (s *ListingStore) List() ([]*model.Listing, error) {
	rows, err := s.db.Query(`SELECT ` + listingCols + ` FROM listings ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var listings []*model.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return listings, nil
}

func (s *ListingStore) GetByID(id int64) (*model.Listing, error) {
	row := s.db.QueryRow(`SELECT `+listingCols+` FROM listings WHERE id = ?`, id)
	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}
