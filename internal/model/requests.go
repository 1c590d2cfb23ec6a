package model

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type (
	AccountRequest struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
	}

	VehicleRequest struct {
		Make         string  `json:"make"`
		Model        string  `json:"model"`
		Year         int     `json:"year"`
		LicensePlate string  `json:"license_plate"`
		DailyRate    float64 `json:"daily_rate"`
		Location     string  `json:"location"`
		// Status is ignored on create; new vehicles start available.
		Status string `json:"status,omitempty"`
	}

	BookingRequest struct {
		AccountID      string    `json:"account_id"`
		VehicleID      string    `json:"vehicle_id"`
		StartDate      time.Time `json:"start_date"`
		EndDate        time.Time `json:"end_date"`
		PickupLocation string    `json:"pickup_location"`
		ReturnLocation string    `json:"return_location"`
	}

	BookingStatusRequest struct {
		Status string `json:"status"`
	}
)

func (r *AccountRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Phone, validation.Length(0, 20)),
	)
}

func (r *VehicleRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Make, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Model, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Year, validation.Required, validation.Min(1900), validation.Max(2030)),
		validation.Field(&r.LicensePlate, validation.Required, validation.Length(1, 20)),
		validation.Field(&r.DailyRate, validation.Required, validation.Min(0.01)),
		validation.Field(&r.Location, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Status, validation.In(VehicleAvailable, VehicleRented, VehicleMaintenance)),
	)
}

func (r *BookingRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.AccountID, validation.Required),
		validation.Field(&r.VehicleID, validation.Required),
		validation.Field(&r.StartDate, validation.Required),
		validation.Field(&r.EndDate, validation.Required, validation.Min(r.StartDate).Exclusive().
			Error("must be after start_date")),
		validation.Field(&r.PickupLocation, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.ReturnLocation, validation.Required, validation.Length(1, 255)),
	)
}

func (r *BookingStatusRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Status, validation.Required,
			validation.In(BookingPending, BookingActive, BookingCompleted, BookingCancelled)),
	)
}

// BookingDays returns the number of whole days billed for a booking, at least one.
func BookingDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// NormalizeStatus lower-cases and trims a status filter.
func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// ValidateVehicleStatus reports a validation error keyed "status" unless
// status is one of the vehicle statuses.
func ValidateVehicleStatus(status string) error {
	return validation.Errors{
		"status": validation.Validate(status, validation.Required,
			validation.In(VehicleAvailable, VehicleRented, VehicleMaintenance)),
	}.Filter()
}

// ValidateBookingStatus reports a validation error keyed "status" unless
// status is one of the booking statuses.
func ValidateBookingStatus(status string) error {
	return validation.Errors{
		"status": validation.Validate(status, validation.Required,
			validation.In(BookingPending, BookingActive, BookingCompleted, BookingCancelled)),
	}.Filter()
}

// ValidateEmailQuery checks an email search fragment.
func ValidateEmailQuery(query string) error {
	return validation.Errors{
		"email": validation.Validate(query, validation.Required, validation.Length(1, 254)),
	}.Filter()
}
