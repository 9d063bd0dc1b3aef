package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var (
	ErrInvalidEmail          = errs.NewValueIsInvalidError("email")
	ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("Email must be created via NewEmail")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Email is a lower-cased, trimmed e-mail address.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(normalized) {
		return Email{}, fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}

	return Email{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) String() string {
	return e.value
}

func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
