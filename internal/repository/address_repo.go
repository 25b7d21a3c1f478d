package repository

import (
	"context"
	"errors"
	"fmt"

	"contact_book/internal/model"

	"github.com/jackc/pgx/v5"
)

// AddressRepository defines operations for address data
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) error
	FindByContactAndID(ctx context.Context, contactID, id string) (*model.Address, error)
	FindAllByContact(ctx context.Context, contactID string) ([]model.Address, error)
	Update(ctx context.Context, address *model.Address) error
	Delete(ctx context.Context, id string) error
}

type addressRepository struct {
	db DB
}

// NewAddressRepository creates a new AddressRepository
func NewAddressRepository(db DB) AddressRepository {
	return &addressRepository{db: db}
}

// Create inserts a new address into the database
func (r *addressRepository) Create(ctx context.Context, a *model.Address) error {
	sql := `INSERT INTO addresses (id, contact_id, street, city, province, country, postal_code)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, sql, a.ID, a.ContactID, a.Street, a.City, a.Province, a.Country, a.PostalCode)
	if err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// FindByContactAndID retrieves an address scoped to its parent contact
func (r *addressRepository) FindByContactAndID(ctx context.Context, contactID, id string) (*model.Address, error) {
	a := &model.Address{}
	sql := `SELECT id, contact_id, street, city, province, country, postal_code
            FROM addresses WHERE contact_id = $1 AND id = $2`
	err := r.db.QueryRow(ctx, sql, contactID, id).Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find address by contact and ID: %w", err)
	}
	return a, nil
}

// FindAllByContact retrieves every address of the given contact
func (r *addressRepository) FindAllByContact(ctx context.Context, contactID string) ([]model.Address, error) {
	sql := `SELECT id, contact_id, street, city, province, country, postal_code
            FROM addresses WHERE contact_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, sql, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to query addresses by contact: %w", err)
	}
	defer rows.Close()

	var addresses []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode); err != nil {
			return nil, fmt.Errorf("failed to scan address row: %w", err)
		}
		addresses = append(addresses, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating address rows: %w", err)
	}
	return addresses, nil
}

// Update modifies an existing address
func (r *addressRepository) Update(ctx context.Context, a *model.Address) error {
	sql := `UPDATE addresses SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
            WHERE id = $6`
	cmdTag, err := r.db.Exec(ctx, sql, a.Street, a.City, a.Province, a.Country, a.PostalCode, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("address not found for update")
	}
	return nil
}

// Delete removes an address from the database
func (r *addressRepository) Delete(ctx context.Context, id string) error {
	sql := `DELETE FROM addresses WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("address not found for deletion")
	}
	return nil
}
