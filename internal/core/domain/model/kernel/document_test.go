package kernel_test

import (
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_CPF(t *testing.T) {
	t.Run("should sanitize and format a punctuated CPF", func(t *testing.T) {
		doc, err := kernel.NewDocument("123.456.789-09", kernel.CPF)

		require.NoError(t, err)
		require.NoError(t, doc.Validate())
		assert.Equal(t, "12345678909", doc.Value())
		assert.Equal(t, "123.456.789-09", doc.Formatted())
		assert.Equal(t, kernel.CPF, doc.Kind())
	})

	t.Run("should accept known valid CPFs", func(t *testing.T) {
		for _, raw := range []string{"52998224725", "111.444.777-35", "12345678909"} {
			_, err := kernel.NewDocument(raw, kernel.CPF)
			require.NoError(t, err, raw)
		}
	})

	t.Run("should reject wrong length", func(t *testing.T) {
		_, err := kernel.NewDocument("1234567890", kernel.CPF)

		require.ErrorIs(t, err, kernel.ErrInvalidLength)
		assert.Contains(t, err.Error(), "CPF must have 11 digits")
	})

	t.Run("should reject all same digits", func(t *testing.T) {
		_, err := kernel.NewDocument("11111111111", kernel.CPF)

		require.ErrorIs(t, err, kernel.ErrInvalidDocument)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject any mutation of the check digits", func(t *testing.T) {
		valid := "52998224725"
		for pos := 9; pos <= 10; pos++ {
			for d := byte('0'); d <= '9'; d++ {
				if valid[pos] == d {
					continue
				}
				mutated := []byte(valid)
				mutated[pos] = d

				_, err := kernel.NewDocument(string(mutated), kernel.CPF)
				require.ErrorIs(t, err, kernel.ErrInvalidDocument, string(mutated))
			}
		}
	})
}

func TestNewDocument_CNPJ(t *testing.T) {
	t.Run("should validate and format CNPJ", func(t *testing.T) {
		doc, err := kernel.NewDocument("11222333000181", kernel.CNPJ)

		require.NoError(t, err)
		assert.Equal(t, "11.222.333/0001-81", doc.Formatted())
	})

	t.Run("should accept punctuated input", func(t *testing.T) {
		doc, err := kernel.NewDocument("11.444.777/0001-61", kernel.CNPJ)

		require.NoError(t, err)
		assert.Equal(t, "11444777000161", doc.Value())
	})

	t.Run("should reject altered last digit", func(t *testing.T) {
		_, err := kernel.NewDocument("11222333000180", kernel.CNPJ)

		require.ErrorIs(t, err, kernel.ErrInvalidDocument)
		assert.Contains(t, err.Error(), "Invalid CNPJ")
	})

	t.Run("should reject wrong length", func(t *testing.T) {
		_, err := kernel.NewDocument("12345678909", kernel.CNPJ)

		require.ErrorIs(t, err, kernel.ErrInvalidLength)
		assert.Contains(t, err.Error(), "CNPJ must have 14 digits")
	})

	t.Run("should reject all same digits", func(t *testing.T) {
		_, err := kernel.NewDocument("00000000000000", kernel.CNPJ)

		require.ErrorIs(t, err, kernel.ErrInvalidDocument)
	})
}

func TestNewDocument_UnknownKind(t *testing.T) {
	_, err := kernel.NewDocument("12345678909", kernel.UnknownDocumentKind)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseDocumentKind(t *testing.T) {
	kind, err := kernel.ParseDocumentKind(" cnpj ")
	require.NoError(t, err)
	assert.Equal(t, kernel.CNPJ, kind)
	assert.Equal(t, "CNPJ", kind.String())

	_, err = kernel.ParseDocumentKind("RG")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDocument_ZeroValue(t *testing.T) {
	var doc kernel.Document

	assert.Equal(t, kernel.ErrDocumentIsNotConstructed, doc.Validate())
}
