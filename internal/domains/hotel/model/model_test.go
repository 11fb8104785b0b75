package model_test

import (
	"testing"

	"hotelos/internal/domains/hotel/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	addr, err := model.NewAddress(" 1 Harbour St ", "Lisbon", "Portugal", "1100")
	require.NoError(t, err)
	assert.Equal(t, "1 Harbour St", addr.Street)

	_, err = model.NewAddress("1 Harbour St", "", "Portugal", "1100")
	assert.Error(t, err)
}

func TestNewContact(t *testing.T) {
	_, err := model.NewContact("", "", "https://example.com")
	assert.Error(t, err)

	contact, err := model.NewContact("", "desk@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "desk@example.com", contact.Email)
}

func TestHotel_WithAddressReplacesAsUnit(t *testing.T) {
	oldAddr, _ := model.NewAddress("1 Harbour St", "Lisbon", "Portugal", "1100")
	newAddr, _ := model.NewAddress("", "Porto", "Portugal", "")

	hotel := model.Hotel{ID: "h-1", Address: oldAddr}
	moved := hotel.WithAddress(newAddr)

	assert.Equal(t, newAddr, moved.Address)
	assert.Equal(t, oldAddr, hotel.Address)
}
