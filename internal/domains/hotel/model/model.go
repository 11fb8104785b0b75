package model

import (
	"errors"
	"strings"

	"hotelos/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID        = "id"
	FieldName      = "name"
	FieldBasePrice = "base_price"
	FieldCity      = "city"
	FieldCountry   = "country"
)

var (
	errAddressIncomplete = errors.New("address requires city and country")
	errContactEmpty      = errors.New("contact requires a phone or an email")
)

// Address is replaced as a whole on update, never patched field by field.
type Address struct {
	Street     string `db:"street"`
	City       string `db:"city"`
	Country    string `db:"country"`
	PostalCode string `db:"postal_code"`
}

func NewAddress(street, city, country, postalCode string) (Address, error) {
	addr := Address{
		Street:     strings.TrimSpace(street),
		City:       strings.TrimSpace(city),
		Country:    strings.TrimSpace(country),
		PostalCode: strings.TrimSpace(postalCode),
	}

	if addr.City == "" || addr.Country == "" {
		return Address{}, errAddressIncomplete
	}

	return addr, nil
}

// Contact follows the same replace-as-unit rule as Address.
type Contact struct {
	Phone   string `db:"phone"`
	Email   string `db:"email"`
	Website string `db:"website"`
}

func NewContact(phone, email, website string) (Contact, error) {
	contact := Contact{
		Phone:   strings.TrimSpace(phone),
		Email:   strings.TrimSpace(email),
		Website: strings.TrimSpace(website),
	}

	if contact.Phone == "" && contact.Email == "" {
		return Contact{}, errContactEmpty
	}

	return contact, nil
}

type Hotel struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	BasePrice   decimal.Decimal `db:"base_price"`
	Address
	Contact
	model.Metadata
}

// WithAddress returns a copy of the hotel carrying addr.
func (h Hotel) WithAddress(addr Address) Hotel {
	h.Address = addr

	return h
}

// WithContact returns a copy of the hotel carrying contact.
func (h Hotel) WithContact(contact Contact) Hotel {
	h.Contact = contact

	return h
}
