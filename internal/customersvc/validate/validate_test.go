package validate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() *RegistrationPayload {
	return &RegistrationPayload{
		Name:           "Jordan Reyes",
		Address:        "12 High Street, Leeds",
		Email:          "jordan.reyes@example.com",
		DateOfBirth:    "1990-05-10",
		Gender:         "male",
		Age:            34,
		CardHolderName: "JORDAN REYES",
		CardNumber:     "123456789012",
		ExpiryDate:     "12/2099",
		CVV:            "123",
		TimeStamp:      "2025-01-15 10:30:00",
	}
}

func TestRegistration_Valid(t *testing.T) {
	assert.NoError(t, Registration(validPayload()))
}

func TestRegistration_MissingFields(t *testing.T) {
	t.Run("all fields missing, canonical order", func(t *testing.T) {
		err := Registration(&RegistrationPayload{})
		require.Error(t, err)
		assert.Equal(t,
			"Missing required fields: name, address, email, dateOfBirth, gender, age, cardHolderName, cardNumber, expiryDate, cvv, timeStamp",
			err.Error())
	})

	t.Run("single missing field", func(t *testing.T) {
		p := validPayload()
		p.CVV = ""
		err := Registration(p)
		require.Error(t, err)
		assert.Equal(t, "Missing required fields: cvv", err.Error())
	})

	t.Run("zero age counts as missing", func(t *testing.T) {
		p := validPayload()
		p.Age = 0
		err := Registration(p)
		require.Error(t, err)
		assert.Equal(t, "Missing required fields: age", err.Error())
	})

	t.Run("missing fields keep canonical order regardless of which", func(t *testing.T) {
		p := validPayload()
		p.TimeStamp = ""
		p.Name = ""
		p.Gender = ""
		err := Registration(p)
		require.Error(t, err)
		assert.Equal(t, "Missing required fields: name, gender, timeStamp", err.Error())
	})
}

func TestRegistration_FirstFailureWins(t *testing.T) {
	p := validPayload()
	p.Email = "not-an-email"
	p.CardNumber = "42"
	p.CVV = "x"

	err := Registration(p)
	require.Error(t, err)
	assert.Equal(t, "Invalid email format", err.Error())

	p.Email = "jordan.reyes@example.com"
	err = Registration(p)
	require.Error(t, err)
	assert.Equal(t, "Credit card number must be exactly 12 digits", err.Error())

	p.CardNumber = "123456789012"
	err = Registration(p)
	require.Error(t, err)
	assert.Equal(t, "CVV must be 3 or 4 digits", err.Error())
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain address", "a@b.co", true},
		{"subdomain", "user@mail.example.com", true},
		{"missing at", "userexample.com", false},
		{"missing dot after at", "user@example", false},
		{"space inside", "us er@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidCardNumber(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		want       bool
	}{
		{"exactly 12 digits", "123456789012", true},
		{"11 digits", "12345678901", false},
		{"13 digits", "1234567890123", false},
		{"contains letter", "12345678901a", false},
		{"contains space", "123456 89012", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCardNumber(tt.cardNumber))
		})
	}
}

func TestIsValidCVV(t *testing.T) {
	tests := []struct {
		name string
		cvv  string
		want bool
	}{
		{"3 digits", "123", true},
		{"4 digits", "1234", true},
		{"2 digits", "12", false},
		{"5 digits", "12345", false},
		{"non numeric", "12a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCVV(tt.cvv))
		})
	}
}

func TestIsValidExpiryDate(t *testing.T) {
	// anchor on the first of the current month so AddDate stays exact
	firstOfMonth := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.Local)
	nextMonth := firstOfMonth.AddDate(0, 1, 0)

	tests := []struct {
		name   string
		expiry string
		want   bool
	}{
		{"one month ahead", nextMonth.Format("01/2006"), true},
		{"one month ahead short year", nextMonth.Format("01/06"), true},
		{"current month", firstOfMonth.Format("01/2006"), false},
		{"past year", "01/2020", false},
		{"far future", "12/2099", true},
		{"short year far future", "12/99", true},
		{"month 13", "13/2099", false},
		{"month 00", "00/2099", false},
		{"single digit month", "1/2099", false},
		{"dash separator", "12-2099", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidExpiryDate(tt.expiry))
		})
	}
}

func TestIsValidDateOfBirth(t *testing.T) {
	currentYear := time.Now().Year()

	tests := []struct {
		name string
		dob  string
		want bool
	}{
		{"dash separator", "1990-05-10", true},
		{"dot separator", "1990.05.10", true},
		{"slash separator", "1990/05/10", true},
		{"mixed separators", "1990-05/10", false},
		{"month out of range", "1990-13-10", false},
		{"day out of range", "1990-05-32", false},
		{"two digit year", "90-05-10", false},
		{"empty", "", false},
		// age arithmetic is year subtraction only
		{"exactly 18 by year", fmt.Sprintf("%d-01-01", currentYear-18), true},
		{"exactly 18 even if born in december", fmt.Sprintf("%d-12-31", currentYear-18), true},
		{"17 by year", fmt.Sprintf("%d-01-01", currentYear-17), false},
		{"exactly 100 by year", fmt.Sprintf("%d-06-15", currentYear-100), true},
		{"101 by year", fmt.Sprintf("%d-06-15", currentYear-101), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDateOfBirth(tt.dob))
		})
	}
}

func TestIsValidGender(t *testing.T) {
	tests := []struct {
		name   string
		gender string
		want   bool
	}{
		{"male", "male", true},
		{"female", "female", true},
		{"other", "other", true},
		{"mixed case", "FeMaLe", true},
		{"upper case", "OTHER", true},
		{"unknown value", "unknown", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidGender(tt.gender))
		})
	}
}
