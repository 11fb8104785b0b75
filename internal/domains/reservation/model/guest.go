package model

import (
	"time"

	"hotelos/shared/model"
)

const (
	GuestTableName  = "reservation_guests"
	GuestEntityName = "reservation_guest"

	GuestFieldReservationID = "reservation_id"
	GuestFieldIsPrimary     = "is_primary"
)

type Guest struct {
	ID                  string     `db:"id"`
	ReservationID       string     `db:"reservation_id"`
	FirstName           string     `db:"first_name"`
	LastName            string     `db:"last_name"`
	Email               string     `db:"email"`
	PhoneNumber         string     `db:"phone_number"`
	IDDocumentType      string     `db:"id_document_type"`
	IDDocumentNumber    string     `db:"id_document_number"`
	DateOfBirth         *time.Time `db:"date_of_birth"`
	Nationality         string     `db:"nationality"`
	IsPrimary           bool       `db:"is_primary"`
	SpecialRequirements string     `db:"special_requirements"`
	model.Metadata
}

func (g Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}

	return g.FirstName + " " + g.LastName
}

// DisplayName picks the primary guest, or the first one when none is marked primary.
func DisplayName(guests []Guest) string {
	for _, guest := range guests {
		if guest.IsPrimary {
			return guest.FullName()
		}
	}

	if len(guests) > 0 {
		return guests[0].FullName()
	}

	return ""
}
