package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contact_book/internal/model"

	"github.com/jackc/pgx/v5"
)

// ContactRepository defines operations for contact data
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindByID(ctx context.Context, id string) (*model.Contact, error)
	FindByUserAndID(ctx context.Context, username, id string) (*model.Contact, error)
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, username string, req model.SearchContactRequest) ([]model.Contact, int64, error)
}

type contactRepository struct {
	db DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new contact into the database
func (r *contactRepository) Create(ctx context.Context, c *model.Contact) error {
	sql := `INSERT INTO contacts (id, username, first_name, last_name, phone, email)
            VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, sql, c.ID, c.Username, c.FirstName, c.LastName, c.Phone, c.Email)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// FindByID retrieves a contact by its ID alone, without an owner filter
func (r *contactRepository) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	c := &model.Contact{}
	sql := `SELECT id, username, first_name, last_name, phone, email FROM contacts WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Phone, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find contact by ID: %w", err)
	}
	return c, nil
}

// FindByUserAndID retrieves a contact filtered by both owner and ID. A
// contact id alone never grants access through this lookup.
func (r *contactRepository) FindByUserAndID(ctx context.Context, username, id string) (*model.Contact, error) {
	c := &model.Contact{}
	sql := `SELECT id, username, first_name, last_name, phone, email FROM contacts WHERE username = $1 AND id = $2`
	err := r.db.QueryRow(ctx, sql, username, id).Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Phone, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found or not owned
		}
		return nil, fmt.Errorf("failed to find contact by user and ID: %w", err)
	}
	return c, nil
}

// Update modifies an existing contact
func (r *contactRepository) Update(ctx context.Context, c *model.Contact) error {
	sql := `UPDATE contacts SET first_name = $1, last_name = $2, phone = $3, email = $4
            WHERE id = $5`
	cmdTag, err := r.db.Exec(ctx, sql, c.FirstName, c.LastName, c.Phone, c.Email, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact not found for update")
	}
	return nil
}

// Delete removes a contact; its addresses go with it via ON DELETE CASCADE
func (r *contactRepository) Delete(ctx context.Context, id string) error {
	sql := `DELETE FROM contacts WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact not found for deletion")
	}
	return nil
}

// Search retrieves one page of the owner's contacts matching the optional
// criteria, plus the total match count for paging. Substring matches are
// case-sensitive.
func (r *contactRepository) Search(ctx context.Context, username string, req model.SearchContactRequest) ([]model.Contact, int64, error) {
	var whereBuilder strings.Builder
	whereBuilder.WriteString(` FROM contacts WHERE username = $1`)
	args := []any{username}
	argCount := 2 // Start after username

	if req.Name != nil && *req.Name != "" {
		whereBuilder.WriteString(fmt.Sprintf(" AND (first_name LIKE $%d OR last_name LIKE $%d)", argCount, argCount))
		args = append(args, "%"+*req.Name+"%")
		argCount++
	}
	if req.Email != nil && *req.Email != "" {
		whereBuilder.WriteString(fmt.Sprintf(" AND email LIKE $%d", argCount))
		args = append(args, "%"+*req.Email+"%")
		argCount++
	}
	if req.Phone != nil && *req.Phone != "" {
		whereBuilder.WriteString(fmt.Sprintf(" AND phone LIKE $%d", argCount))
		args = append(args, "%"+*req.Phone+"%")
		argCount++
	}

	var total int64
	countQuery := `SELECT COUNT(*)` + whereBuilder.String()
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	pageQuery := fmt.Sprintf(`SELECT id, username, first_name, last_name, phone, email%s ORDER BY first_name, last_name, id LIMIT $%d OFFSET $%d`,
		whereBuilder.String(), argCount, argCount+1)
	args = append(args, req.Size, req.Page*req.Size)

	rows, err := r.db.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search contacts: %w", err)
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Phone, &c.Email); err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating contact rows: %w", err)
	}
	return contacts, total, nil
}
