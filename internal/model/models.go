// Package model holds the rental domain entities shared by storage, service
// and transport layers.
package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	VehicleAvailable   = "available"
	VehicleRented      = "rented"
	VehicleMaintenance = "maintenance"
)

const (
	BookingPending   = "pending"
	BookingActive    = "active"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

type (
	Account struct {
		ID        string    `json:"account_id" gorm:"primaryKey"`
		Email     string    `json:"email" gorm:"uniqueIndex"`
		FirstName string    `json:"first_name"`
		LastName  string    `json:"last_name"`
		Phone     string    `json:"phone,omitempty"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	Vehicle struct {
		ID           string    `json:"vehicle_id" gorm:"primaryKey"`
		Make         string    `json:"make"`
		Model        string    `json:"model"`
		Year         int       `json:"year"`
		LicensePlate string    `json:"license_plate" gorm:"uniqueIndex"`
		Status       string    `json:"status" gorm:"index"`
		DailyRate    float64   `json:"daily_rate"`
		Location     string    `json:"location" gorm:"index"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}

	Booking struct {
		ID             string    `json:"booking_id" gorm:"primaryKey"`
		AccountID      string    `json:"account_id" gorm:"index"`
		VehicleID      string    `json:"vehicle_id" gorm:"index"`
		StartDate      time.Time `json:"start_date"`
		EndDate        time.Time `json:"end_date"`
		TotalAmount    float64   `json:"total_amount"`
		Status         string    `json:"status" gorm:"index"`
		PickupLocation string    `json:"pickup_location"`
		ReturnLocation string    `json:"return_location"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}

	// BookingMetrics is an aggregate over all bookings.
	BookingMetrics struct {
		TotalBookings     int64     `json:"total_bookings"`
		PendingBookings   int64     `json:"pending_bookings"`
		ActiveBookings    int64     `json:"active_bookings"`
		CompletedBookings int64     `json:"completed_bookings"`
		CancelledBookings int64     `json:"cancelled_bookings"`
		CompletedRevenue  float64   `json:"completed_revenue"`
		ActiveRevenue     float64   `json:"active_revenue"`
		AverageAmount     float64   `json:"average_amount"`
		GeneratedAt       time.Time `json:"generated_at"`
	}
)

// BookingDetails is a booking as served to clients, with the account name and
// a vehicle summary resolved from the other domains. Either is empty when the
// referenced record no longer exists.
type BookingDetails struct {
	Booking
	AccountName string `json:"account_name,omitempty"`
	VehicleInfo string `json:"vehicle_info,omitempty"`
}

func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Summary renders the vehicle as "Make Model (PLATE)".
func (v Vehicle) Summary() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s (%s)", v.Make, v.Model, v.LicensePlate))
}

// Quote prices a booking from start to end at the vehicle's daily rate.
func (v Vehicle) Quote(start, end time.Time) float64 {
	return float64(BookingDays(start, end)) * v.DailyRate
}
