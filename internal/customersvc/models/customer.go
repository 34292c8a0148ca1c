package models

import (
	"errors"
	"time"
)

var (
	// ErrDuplicateEmail is returned when a registration hits the unique
	// email constraint, or the pre-check finds the address already taken.
	ErrDuplicateEmail = errors.New("email address is already registered")

	// ErrEmptyUpdate is returned when an update carries no fields.
	ErrEmptyUpdate = errors.New("no fields to update")

	// ErrUnknownField is returned when an update names a field outside the
	// updatable column whitelist.
	ErrUnknownField = errors.New("unknown update field")
)

// Customer represents the customer table in the database. Card data is held
// in plaintext, a carried-over weakness of the system this replaces.
type Customer struct {
	CustomerId     int64     `json:"customerId"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Email          string    `json:"email"`
	DateOfBirth    string    `json:"dateOfBirth"`
	Gender         string    `json:"gender"`
	Age            int       `json:"age"`
	CardHolderName string    `json:"cardHolderName"`
	CardNumber     string    `json:"cardNumber"`
	ExpiryDate     string    `json:"expiryDate"`
	CVV            string    `json:"cvv"`
	TimeStamp      string    `json:"timeStamp"`
	CreatedAt      time.Time `json:"createdAt"`
}

// PublicCustomer is the by-id projection. Payment fields are never selected
// for this shape.
type PublicCustomer struct {
	CustomerId  int64  `json:"customerId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

// CustomerSummary is the listing projection.
type CustomerSummary struct {
	CustomerId int64  `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}
