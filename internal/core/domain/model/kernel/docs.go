// Package kernel provides the value objects shared by every aggregate of the
// workshop domain:
//   - UUID: entity identifiers
//   - Document: Brazilian CPF/CNPJ tax identifiers with mod-11 checksum validation
//   - Email: normalized e-mail addresses
//   - LicensePlate: legacy and Mercosul vehicle plates
//   - Money: non-negative monetary amounts with exact decimal arithmetic
//
// All value objects are immutable. Zero values are invalid and are rejected by
// their Validate method.
package kernel
