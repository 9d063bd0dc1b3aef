package serviceorder

import (
	"fmt"
	"strings"

	"workshop/internal/pkg/errs"
)

type Priority int

const (
	UnknownPriority Priority = iota
	Low
	Normal
	High
	Urgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		UnknownPriority: "UNKNOWN",
		Low:             "LOW",
		Normal:          "NORMAL",
		High:            "HIGH",
		Urgent:          "URGENT",
	}
}

func (p Priority) String() string {
	if s, ok := getPriorityStrings()[p]; ok {
		return s
	}
	return "UNKNOWN"
}

func (p Priority) Validate() error {
	if p < Low || p > Urgent {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// ParsePriority converts a priority name. An empty string yields Normal.
func ParsePriority(s string) (Priority, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return Normal, nil
	}
	for p, str := range getPriorityStrings() {
		if p != UnknownPriority && str == name {
			return p, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}
