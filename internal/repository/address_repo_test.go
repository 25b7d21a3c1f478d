package repository

import (
	"context"
	"testing"

	"contact_book/internal/model"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepository(mock)

	street := "Main Street 1"
	address := &model.Address{
		ID:        "address-1",
		ContactID: "contact-1",
		Street:    &street,
		Country:   "Indonesia",
	}

	mock.ExpectExec("INSERT INTO addresses").
		WithArgs(address.ID, address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), address))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepository_FindByContactAndID_NotFoundIsNil(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepository(mock)

	mock.ExpectQuery("SELECT id, contact_id, street, city, province, country, postal_code").
		WithArgs("contact-1", "missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "contact_id", "street", "city", "province", "country", "postal_code"}))

	address, err := repo.FindByContactAndID(context.Background(), "contact-1", "missing")
	assert.NoError(t, err)
	assert.Nil(t, address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepository_FindAllByContact(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepository(mock)

	mock.ExpectQuery("SELECT id, contact_id, street, city, province, country, postal_code").
		WithArgs("contact-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "contact_id", "street", "city", "province", "country", "postal_code"}).
			AddRow("address-1", "contact-1", nil, nil, nil, "Indonesia", nil).
			AddRow("address-2", "contact-1", nil, nil, nil, "Malaysia", nil))

	addresses, err := repo.FindAllByContact(context.Background(), "contact-1")
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, "Indonesia", addresses[0].Country)
	assert.Equal(t, "Malaysia", addresses[1].Country)
	assert.NoError(t, mock.ExpectationsWereMet())
}
