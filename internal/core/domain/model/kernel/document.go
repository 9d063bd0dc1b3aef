package kernel

import (
	"fmt"
	"strings"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var (
	// ErrInvalidLength is returned when the sanitized document has the wrong digit count.
	ErrInvalidLength = errs.NewValueIsInvalidError("document length")

	// ErrInvalidDocument is returned when a document fails the repeated-digit guard
	// or its check digits do not match.
	ErrInvalidDocument = errs.NewValueIsInvalidError("document")

	ErrDocumentIsNotConstructed = errs.NewValueIsRequiredError("Document must be created via NewDocument")
)

// DocumentKind distinguishes individual (CPF) from corporate (CNPJ) tax identifiers.
type DocumentKind int

const (
	UnknownDocumentKind DocumentKind = iota
	CPF
	CNPJ
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

func getDocumentKindStrings() map[DocumentKind]string {
	return map[DocumentKind]string{
		UnknownDocumentKind: "UNKNOWN",
		CPF:                 "CPF",
		CNPJ:                "CNPJ",
	}
}

func (k DocumentKind) String() string {
	if s, ok := getDocumentKindStrings()[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseDocumentKind converts "CPF" or "CNPJ" (case-insensitive) into a DocumentKind.
func ParseDocumentKind(s string) (DocumentKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CPF":
		return CPF, nil
	case "CNPJ":
		return CNPJ, nil
	default:
		return UnknownDocumentKind, errs.NewValueIsInvalidErrorWithCause(
			"document type",
			fmt.Errorf("%q is not one of CPF, CNPJ", s),
		)
	}
}

// Document is a validated CPF or CNPJ. Its value holds digits only.
//
//	doc, err := kernel.NewDocument("123.456.789-09", kernel.CPF)
//	doc.Value()     // "12345678909"
//	doc.Formatted() // "123.456.789-09"
type Document struct {
	value string
	kind  DocumentKind
	guard guard.ConstructorGuard
}

// NewDocument strips every non-digit from raw and validates the result as kind.
//
// Validation order:
//   - digit count (ErrInvalidLength)
//   - all digits identical (ErrInvalidDocument)
//   - mod-11 check digits (ErrInvalidDocument)
func NewDocument(raw string, kind DocumentKind) (Document, error) {
	digits := onlyDigits(raw)

	var err error
	switch kind {
	case CPF:
		err = validateCPF(digits)
	case CNPJ:
		err = validateCNPJ(digits)
	default:
		err = errs.NewValueIsInvalidErrorWithCause("document type", fmt.Errorf("%d is not a valid document type", kind))
	}
	if err != nil {
		return Document{}, err
	}

	return Document{
		value: digits,
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (d Document) Value() string {
	return d.value
}

func (d Document) Kind() DocumentKind {
	return d.kind
}

// Formatted renders the document with its conventional punctuation:
// 123.456.789-09 for CPF and 11.222.333/0001-81 for CNPJ.
func (d Document) Formatted() string {
	v := d.value
	switch d.kind {
	case CPF:
		return fmt.Sprintf("%s.%s.%s-%s", v[0:3], v[3:6], v[6:9], v[9:11])
	case CNPJ:
		return fmt.Sprintf("%s.%s.%s/%s-%s", v[0:2], v[2:5], v[5:8], v[8:12], v[12:14])
	default:
		return v
	}
}

func (d Document) IsEqual(other Document) bool {
	return d.kind == other.kind && d.value == other.value
}

func (d Document) Validate() error {
	return d.guard.Validate(ErrDocumentIsNotConstructed)
}

func (d Document) String() string {
	return d.value
}

func validateCPF(digits string) error {
	if len(digits) != cpfLength {
		return fmt.Errorf("%w: CPF must have %d digits", ErrInvalidLength, cpfLength)
	}
	if allSameDigit(digits) {
		return fmt.Errorf("%w: Invalid CPF", ErrInvalidDocument)
	}

	if cpfCheckDigit(digits[:9], 10) != int(digits[9]-'0') ||
		cpfCheckDigit(digits[:10], 11) != int(digits[10]-'0') {
		return fmt.Errorf("%w: Invalid CPF", ErrInvalidDocument)
	}
	return nil
}

// cpfCheckDigit weights base with firstWeight, firstWeight-1, ... 2.
func cpfCheckDigit(base string, firstWeight int) int {
	sum := 0
	for i, r := range base {
		sum += int(r-'0') * (firstWeight - i)
	}

	rest := (sum * 10) % 11
	if rest == 10 || rest == 11 {
		return 0
	}
	return rest
}

func validateCNPJ(digits string) error {
	if len(digits) != cnpjLength {
		return fmt.Errorf("%w: CNPJ must have %d digits", ErrInvalidLength, cnpjLength)
	}
	if allSameDigit(digits) {
		return fmt.Errorf("%w: Invalid CNPJ", ErrInvalidDocument)
	}

	if cnpjCheckDigit(digits[:12]) != int(digits[12]-'0') ||
		cnpjCheckDigit(digits[:13]) != int(digits[13]-'0') {
		return fmt.Errorf("%w: Invalid CNPJ", ErrInvalidDocument)
	}
	return nil
}

// cnpjCheckDigit applies the cyclic weights 2..9 from the rightmost digit of base.
func cnpjCheckDigit(base string) int {
	sum := 0
	weight := len(base) - 7
	for _, r := range base {
		sum += int(r-'0') * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}

	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(digits string) bool {
	return strings.Count(digits, digits[:1]) == len(digits)
}
