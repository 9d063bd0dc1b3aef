package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var (
	// ErrInvalidFormat is returned when a plate matches neither the legacy nor the Mercosul shape.
	ErrInvalidFormat                = errs.NewValueIsInvalidError("license plate")
	ErrLicensePlateIsNotConstructed = errs.NewValueIsRequiredError("LicensePlate must be created via NewLicensePlate")

	nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9]`)
	legacyPlate     = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlate   = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

// LicensePlate is an upper-case, separator-free Brazilian plate, either
// legacy (ABC1234) or Mercosul (ABC1D23).
type LicensePlate struct {
	value string
	guard guard.ConstructorGuard
}

func NewLicensePlate(raw string) (LicensePlate, error) {
	normalized := nonAlphanumeric.ReplaceAllString(strings.ToUpper(raw), "")
	if !legacyPlate.MatchString(normalized) && !mercosulPlate.MatchString(normalized) {
		return LicensePlate{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	return LicensePlate{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (p LicensePlate) Value() string {
	return p.value
}

// Formatted inserts a dash after the three letters: ABC-1234.
func (p LicensePlate) Formatted() string {
	if len(p.value) < 3 {
		return p.value
	}
	return p.value[:3] + "-" + p.value[3:]
}

// IsMercosul reports whether the plate uses the ABC1D23 shape.
func (p LicensePlate) IsMercosul() bool {
	return mercosulPlate.MatchString(p.value)
}

func (p LicensePlate) String() string {
	return p.value
}

func (p LicensePlate) IsEqual(other LicensePlate) bool {
	return p.value == other.value
}

func (p LicensePlate) Validate() error {
	return p.guard.Validate(ErrLicensePlateIsNotConstructed)
}
