package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegistrationPayload is the raw registration request body. The struct field
// order is the canonical order used when reporting missing fields.
type RegistrationPayload struct {
	Name           string `json:"name" validate:"required"`
	Address        string `json:"address" validate:"required"`
	Email          string `json:"email" validate:"required"`
	DateOfBirth    string `json:"dateOfBirth" validate:"required"`
	Gender         string `json:"gender" validate:"required"`
	Age            int    `json:"age" validate:"required"`
	CardHolderName string `json:"cardHolderName" validate:"required"`
	CardNumber     string `json:"cardNumber" validate:"required"`
	ExpiryDate     string `json:"expiryDate" validate:"required"`
	CVV            string `json:"cvv" validate:"required"`
	TimeStamp      string `json:"timeStamp" validate:"required"`
}

var (
	// not full RFC822, just "something@something.something" with no spaces
	emailRegex  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	cardRegex   = regexp.MustCompile(`^[0-9]{12}$`)
	cvvRegex    = regexp.MustCompile(`^[0-9]{3,4}$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2}|[0-9]{4})$`)
	dobRegex    = regexp.MustCompile(`^[0-9]{4}([-./])(0[1-9]|1[0-2])([-./])(0[1-9]|[12][0-9]|3[01])$`)
)

var required = newRequiredValidator()

func newRequiredValidator() *validator.Validate {
	v := validator.New()

	// report fields under their json names, not Go names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Registration checks a registration payload. The required-field gate runs
// first and reports every missing field at once; the format rules then run in
// a fixed order and the first failure wins.
func Registration(p *RegistrationPayload) error {
	if err := required.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			return fmt.Errorf("Missing required fields: %s", strings.Join(missing, ", "))
		}
		return err
	}

	if !IsValidEmail(p.Email) {
		return errors.New("Invalid email format")
	}

	if !IsValidCardNumber(p.CardNumber) {
		return errors.New("Credit card number must be exactly 12 digits")
	}

	if !IsValidCVV(p.CVV) {
		return errors.New("CVV must be 3 or 4 digits")
	}

	if !IsValidExpiryDate(p.ExpiryDate) {
		return errors.New("Invalid or expired card expiry date. Use format MM/YYYY or MM/YY")
	}

	if !IsValidDateOfBirth(p.DateOfBirth) {
		return errors.New("Invalid date of birth or age must be between 18 and 100")
	}

	if !IsValidGender(p.Gender) {
		return errors.New("Gender must be one of: male, female, other")
	}

	return nil
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidCardNumber(cardNumber string) bool {
	return cardRegex.MatchString(cardNumber)
}

func IsValidCVV(cvv string) bool {
	return cvvRegex.MatchString(cvv)
}

// IsValidExpiryDate accepts MM/YY or MM/YYYY and requires the first day of
// the stated month to lie strictly in the future, so a card expiring in the
// current month is already rejected.
func IsValidExpiryDate(expiryDate string) bool {
	m := expiryRegex.FindStringSubmatch(expiryDate)
	if m == nil {
		return false
	}

	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	if len(m[2]) == 2 {
		year += 2000
	}

	expiry := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return expiry.After(time.Now())
}

// IsValidDateOfBirth accepts YYYY-MM-DD with '-', '.' or '/' as separator
// (the same one on both sides) and requires a year-subtraction age between
// 18 and 100. The age arithmetic ignores month and day on purpose.
func IsValidDateOfBirth(dateOfBirth string) bool {
	m := dobRegex.FindStringSubmatch(dateOfBirth)
	if m == nil {
		return false
	}
	if m[1] != m[3] {
		return false
	}

	birthYear, _ := strconv.Atoi(dateOfBirth[:4])
	age := time.Now().Year() - birthYear

	return age >= 18 && age <= 100
}

func IsValidGender(gender string) bool {
	switch strings.ToLower(gender) {
	case "male", "female", "other":
		return true
	}
	return false
}
