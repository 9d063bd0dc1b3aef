package catalog

import (
	"fmt"
	"strings"

	"workshop/internal/pkg/errs"
)

// Category groups catalog services for reporting and filtering.
type Category int

const (
	UnknownCategory Category = iota
	Maintenance
	Repair
	Inspection
	Alignment
	Diagnostics
	Electrical
	Bodywork
	Other
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "UNKNOWN",
		Maintenance:     "MAINTENANCE",
		Repair:          "REPAIR",
		Inspection:      "INSPECTION",
		Alignment:       "ALIGNMENT",
		Diagnostics:     "DIAGNOSTICS",
		Electrical:      "ELECTRICAL",
		Bodywork:        "BODYWORK",
		Other:           "OTHER",
	}
}

func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "UNKNOWN"
}

func (c Category) Validate() error {
	if c <= UnknownCategory || c > Other {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// ParseCategory accepts the upper-case names used in the API and storage.
func ParseCategory(s string) (Category, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for c, str := range getCategoryStrings() {
		if c != UnknownCategory && str == name {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", s))
}
