package customer

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/umalmyha/ordering/internal/errors"
)

var validate = validator.New()

// phone numbers look like 478-256-2504, documents like 255-08-0578;
// anonymized placeholders (000-000-0000) must stay valid as well
var (
	phoneRegexp    = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	documentRegexp = regexp.MustCompile(`^\d{3}-\d{2,3}-\d{4}$`)
)

// FullName is a first/last name pair compared structurally.
type FullName struct {
	firstName string
	lastName  string
}

func NewFullName(firstName, lastName string) (FullName, error) {
	if strings.TrimSpace(firstName) == "" {
		return FullName{}, apperrors.NewValidationErr("fullName", "first name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return FullName{}, apperrors.NewValidationErr("fullName", "last name is required")
	}
	return FullName{firstName: firstName, lastName: lastName}, nil
}

func (n FullName) FirstName() string {
	return n.firstName
}

func (n FullName) LastName() string {
	return n.lastName
}

func (n FullName) String() string {
	return n.firstName + " " + n.lastName
}

// Email is a validated e-mail address.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	if err := validate.Var(value, "required,email"); err != nil {
		return Email{}, apperrors.NewValidationErr("email", "malformed email "+value)
	}
	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}

type Phone struct {
	value string
}

func NewPhone(value string) (Phone, error) {
	if !phoneRegexp.MatchString(value) {
		return Phone{}, apperrors.NewValidationErr("phone", "malformed phone number "+value)
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string {
	return p.value
}

type Document struct {
	value string
}

func NewDocument(value string) (Document, error) {
	if !documentRegexp.MatchString(value) {
		return Document{}, apperrors.NewValidationErr("document", "malformed document "+value)
	}
	return Document{value: value}, nil
}

func (d Document) String() string {
	return d.value
}

// BirthDate must not lie in the future. Absence is expressed as a nil
// *BirthDate on the aggregate and is legal only for archived customers.
type BirthDate struct {
	value time.Time
}

func NewBirthDate(value time.Time) (BirthDate, error) {
	if value.IsZero() {
		return BirthDate{}, apperrors.NewValidationErr("birthDate", "birth date is required")
	}
	if value.After(time.Now()) {
		return BirthDate{}, apperrors.NewValidationErr("birthDate", "birth date must be in the past")
	}
	return BirthDate{value: value}, nil
}

func (b BirthDate) Value() time.Time {
	return b.value
}
