package dto

import (
	"strings"

	"hotelos/internal/domains/reservation/model"
	"hotelos/shared"
	"hotelos/shared/constant"
	gDto "hotelos/shared/dto"
	gModel "hotelos/shared/model"
	"hotelos/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultAdults = 1

type GuestRequest struct {
	FirstName           string `json:"first_name"           validate:"required,max=100"`
	LastName            string `json:"last_name"            validate:"omitempty,max=100"`
	Email               string `json:"email"                validate:"omitempty,email,max=100"`
	PhoneNumber         string `json:"phone_number"         validate:"omitempty,max=30"`
	IDDocumentType      string `json:"id_document_type"     validate:"omitempty,max=30"`
	IDDocumentNumber    string `json:"id_document_number"   validate:"omitempty,max=50"`
	DateOfBirth         string `json:"date_of_birth"        validate:"omitempty,dateonly"`
	Nationality         string `json:"nationality"          validate:"omitempty,max=60"`
	IsPrimary           bool   `json:"is_primary"`
	SpecialRequirements string `json:"special_requirements" validate:"omitempty,max=500"`
}

func (g *GuestRequest) ToModel(reservationID string, meta gModel.Metadata) model.Guest {
	guest := model.Guest{
		ID:                  uuid.NewString(),
		ReservationID:       reservationID,
		FirstName:           strings.TrimSpace(g.FirstName),
		LastName:            strings.TrimSpace(g.LastName),
		Email:               g.Email,
		PhoneNumber:         g.PhoneNumber,
		IDDocumentType:      g.IDDocumentType,
		IDDocumentNumber:    g.IDDocumentNumber,
		Nationality:         g.Nationality,
		IsPrimary:           g.IsPrimary,
		SpecialRequirements: g.SpecialRequirements,
		Metadata:            meta,
	}

	if dob, err := timezone.ParseDate(g.DateOfBirth); err == nil {
		guest.DateOfBirth = &dob
	}

	return guest
}

func GuestsToModels(guests []GuestRequest, reservationID string, meta gModel.Metadata) []model.Guest {
	models := make([]model.Guest, len(guests))
	for i := range guests {
		models[i] = guests[i].ToModel(reservationID, meta)
	}

	return models
}

type CreateReservationRequest struct {
	RoomID          string         `json:"room_id"          validate:"required,max=36"`
	ReservationName string         `json:"reservation_name" validate:"omitempty,max=200"`
	CheckIn         string         `json:"check_in"         validate:"required,dateonly"`
	CheckOut        string         `json:"check_out"        validate:"required,dateonly"`
	Status          string         `json:"status"           validate:"omitempty,oneof=PENDING CONFIRMED"`
	TotalAmount     string         `json:"total_amount"     validate:"omitempty,decimal=gte0"`
	Adults          int            `json:"adults"           validate:"omitempty,gte=1,lte=20"`
	Children        int            `json:"children"         validate:"omitempty,gte=0,lte=20"`
	Guests          []GuestRequest `json:"guests"           validate:"omitempty,dive"`
}

// Range parses and checks the requested stay.
func (c *CreateReservationRequest) Range() (model.DateRange, error) {
	return parseRange(c.CheckIn, c.CheckOut)
}

// ToModel builds the reservation row. The total amount stays zero when none was given.
func (c *CreateReservationRequest) ToModel(user string, rng model.DateRange) (model.Reservation, []model.Guest) {
	status := model.StatusPending
	if parsed, ok := model.ParseStatus(c.Status); ok {
		status = parsed
	}

	adults := c.Adults
	if adults == 0 {
		adults = defaultAdults
	}

	meta := gModel.NewMetadata(user, timezone.Now())
	reservation := model.Reservation{
		ID:           uuid.NewString(),
		RoomID:       c.RoomID,
		CheckInDate:  rng.CheckIn,
		CheckOutDate: rng.CheckOut,
		Status:       status,
		Adults:       adults,
		Children:     c.Children,
		Metadata:     meta,
	}

	if user != "" && user != constant.ContextGuest {
		reservation.UserID = &user
	}

	if amount, err := decimal.NewFromString(c.TotalAmount); err == nil {
		reservation.TotalAmount = amount
	}

	guests := GuestsToModels(c.Guests, reservation.ID, meta)

	reservation.ReservationName = strings.TrimSpace(c.ReservationName)
	if reservation.ReservationName == "" {
		reservation.ReservationName = model.DisplayName(guests)
	}

	return reservation, guests
}

func (c *CreateReservationRequest) HasTotalAmount() bool {
	return c.TotalAmount != ""
}

type UpdateReservationRequest struct {
	RoomID          string          `json:"room_id"          validate:"omitempty,max=36"`
	ReservationName string          `json:"reservation_name" validate:"omitempty,max=200"`
	CheckIn         string          `json:"check_in"         validate:"omitempty,dateonly"`
	CheckOut        string          `json:"check_out"        validate:"omitempty,dateonly"`
	Status          string          `json:"status"           validate:"omitempty,oneof=PENDING CONFIRMED CHECKED_IN CHECKED_OUT CANCELLED EXPIRED"`
	TotalAmount     string          `json:"total_amount"     validate:"omitempty,decimal=gte0"`
	Adults          int             `json:"adults"           validate:"omitempty,gte=1,lte=20"`
	Children        *int            `json:"children"         validate:"omitempty,gte=0,lte=20"`
	Guests          *[]GuestRequest `json:"guests"           validate:"omitempty,dive"`
}

func (u *UpdateReservationRequest) IsEmpty() bool {
	return u.RoomID == "" && u.ReservationName == "" && u.CheckIn == "" && u.CheckOut == "" &&
		u.Status == "" && u.TotalAmount == "" && u.Adults == 0 && u.Children == nil && u.Guests == nil
}

// Range merges the requested dates over current and checks the result.
func (u *UpdateReservationRequest) Range(current model.DateRange) (model.DateRange, error) {
	checkIn := current.CheckIn.Format(constant.DateOnlyFormat)
	if u.CheckIn != "" {
		checkIn = u.CheckIn
	}

	checkOut := current.CheckOut.Format(constant.DateOnlyFormat)
	if u.CheckOut != "" {
		checkOut = u.CheckOut
	}

	return parseRange(checkIn, checkOut)
}

func (u *UpdateReservationRequest) ToPatch(rng model.DateRange) model.Patch {
	patch := model.Patch{
		RoomID:          u.RoomID,
		ReservationName: strings.TrimSpace(u.ReservationName),
		CheckInDate:     rng.CheckIn,
		CheckOutDate:    rng.CheckOut,
		Adults:          u.Adults,
		Children:        u.Children,
	}

	if status, ok := model.ParseStatus(u.Status); ok {
		patch.Status = status
	}

	if amount, err := decimal.NewFromString(u.TotalAmount); err == nil {
		patch.TotalAmount = &amount
	}

	return patch
}

func parseRange(checkIn, checkOut string) (model.DateRange, error) {
	in, err := timezone.ParseDate(checkIn)
	if err != nil {
		return model.DateRange{}, model.DateRange{}.Validate()
	}

	out, err := timezone.ParseDate(checkOut)
	if err != nil {
		return model.DateRange{}, model.DateRange{}.Validate()
	}

	return model.NewDateRange(in, out)
}

type GuestResponse struct {
	ID                  string  `json:"id"`
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	Email               string  `json:"email"`
	PhoneNumber         string  `json:"phone_number"`
	IDDocumentType      string  `json:"id_document_type"`
	IDDocumentNumber    string  `json:"id_document_number"`
	DateOfBirth         *string `json:"date_of_birth,omitempty"`
	Nationality         string  `json:"nationality"`
	IsPrimary           bool    `json:"is_primary"`
	SpecialRequirements string  `json:"special_requirements"`
}

func (g *GuestResponse) FromModel(model model.Guest) {
	g.ID = model.ID
	g.FirstName = model.FirstName
	g.LastName = model.LastName
	g.Email = model.Email
	g.PhoneNumber = model.PhoneNumber
	g.IDDocumentType = model.IDDocumentType
	g.IDDocumentNumber = model.IDDocumentNumber
	g.Nationality = model.Nationality
	g.IsPrimary = model.IsPrimary
	g.SpecialRequirements = model.SpecialRequirements

	if model.DateOfBirth != nil {
		dob := model.DateOfBirth.Format(constant.DateOnlyFormat)
		g.DateOfBirth = &dob
	}
}

type ReservationResponse struct {
	ID              string          `json:"id"`
	RoomID          string          `json:"room_id"`
	HotelID         string          `json:"hotel_id"`
	UserID          *string         `json:"user_id,omitempty"`
	ReservationName string          `json:"reservation_name"`
	CheckIn         string          `json:"check_in"`
	CheckOut        string          `json:"check_out"`
	Nights          int             `json:"nights"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Adults          int             `json:"adults"`
	Children        int             `json:"children"`
	Guests          []GuestResponse `json:"guests,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.HotelID = model.HotelID
	r.UserID = model.UserID
	r.ReservationName = model.ReservationName
	r.CheckIn = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Nights = model.Range().Nights()
	r.Status = model.Status.String()
	r.TotalAmount = model.TotalAmount
	r.Adults = model.Adults
	r.Children = model.Children
	r.Metadata.FromModel(model.Metadata)
}

func (r *ReservationResponse) WithGuests(guests []model.Guest) {
	r.Guests = make([]GuestResponse, len(guests))
	for i, guest := range guests {
		r.Guests[i].FromModel(guest)
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ReservationFilter carries the optional list filters.
type ReservationFilter struct {
	HotelID string
	Name    string
	RoomID  string
	Status  string
}

func (f ReservationFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if f.HotelID != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldHotelID,
			Operator: gDto.FilterOperatorEq,
			Value:    f.HotelID,
			Table:    "rooms",
		})
	}

	if f.Name != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldReservationName,
			Operator: gDto.FilterOperatorLike,
			Value:    f.Name,
			Table:    model.TableName,
		})
	}

	if f.RoomID != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    f.RoomID,
			Table:    model.TableName,
		})
	}

	if status, ok := model.ParseStatus(strings.ToUpper(f.Status)); ok {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status.String(),
			Table:    model.TableName,
		})
	}

	return group
}

// sortable maps the public sort_by values onto qualified columns.
var sortable = map[string]string{
	"check_in":         model.TableName + "." + model.FieldCheckInDate,
	"check_out":        model.TableName + "." + model.FieldCheckOutDate,
	"created_at":       model.TableName + "." + constant.FieldCreatedAt,
	"reservation_name": model.TableName + "." + model.FieldReservationName,
	"status":           model.TableName + "." + model.FieldStatus,
	"total_amount":     model.TableName + "." + model.FieldTotalAmount,
}

// NormalizeQueryParams replaces sort fields with qualified columns and falls back to newest first.
func NormalizeQueryParams(params gDto.QueryParams) gDto.QueryParams {
	column, ok := sortable[params.SortBy]
	if !ok {
		column = sortable[constant.DefaultValueSortBy]
	}

	params.SortBy = column

	if params.SortDir == "" {
		params.SortDir = constant.DefaultValueSortDir
	}

	return params
}
