package validator_test

import (
	"hotelos/shared/validator"
	"strings"
	"testing"
)

type stayRequest struct {
	GuestName string `json:"guest_name" validate:"required"`
	Email     string `json:"email"      validate:"omitempty,email"`
	Adults    int    `json:"adults"     validate:"gte=1,lte=10"`
	Status    string `json:"status"     validate:"omitempty,oneof=PENDING CONFIRMED"`
	CheckIn   string `json:"check_in"   validate:"required,dateonly"`
	Amount    string `json:"amount"     validate:"omitempty,decimal=gte0"`
}

func validStay() stayRequest {
	return stayRequest{
		GuestName: "Ana Lopez",
		Email:     "ana@example.com",
		Adults:    2,
		Status:    "PENDING",
		CheckIn:   "2024-06-01",
		Amount:    "240.00",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(req *stayRequest)
		expectError bool
	}{
		{
			name:        "valid struct",
			mutate:      func(_ *stayRequest) {},
			expectError: false,
		},
		{
			name:        "missing required field",
			mutate:      func(req *stayRequest) { req.GuestName = "" },
			expectError: true,
		},
		{
			name:        "invalid email",
			mutate:      func(req *stayRequest) { req.Email = "invalid-email" },
			expectError: true,
		},
		{
			name:        "adults out of range",
			mutate:      func(req *stayRequest) { req.Adults = 0 },
			expectError: true,
		},
		{
			name:        "free text status",
			mutate:      func(req *stayRequest) { req.Status = "pending-ish" },
			expectError: true,
		},
		{
			name:        "date with time component",
			mutate:      func(req *stayRequest) { req.CheckIn = "2024-06-01T10:00:00Z" },
			expectError: true,
		},
		{
			name:        "negative amount",
			mutate:      func(req *stayRequest) { req.Amount = "-1" },
			expectError: true,
		},
		{
			name:        "amount is not a number",
			mutate:      func(req *stayRequest) { req.Amount = "ten" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStay()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid date",
			field:       "2024-02-29",
			tag:         "dateonly",
			expectError: false,
		},
		{
			name:        "impossible date",
			field:       "2023-02-29",
			tag:         "dateonly",
			expectError: true,
		},
		{
			name:        "positive decimal",
			field:       "1.5",
			tag:         "decimal=gt0",
			expectError: false,
		},
		{
			name:        "zero is not positive",
			field:       "0.00",
			tag:         "decimal=gt0",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "CONFIRMED",
			tag:         "oneof=PENDING CONFIRMED",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"guest_name":"Ana","adults":1,"check_in":"2024-06-01"}`,
			expectError: false,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"guest_name":"Ana","adults":1,"check_in":"June 1st"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"guest_name":"Ana","adults":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data stayRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	req := validStay()
	req.CheckIn = "tomorrow"

	err := validator.ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	if !strings.Contains(err.Error(), "YYYY-MM-DD") {
		t.Errorf("expected date format hint in message, got: %s", err.Error())
	}
}
