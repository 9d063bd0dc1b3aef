// Package customer models the shop's clients. A Customer is identified by a
// CPF or CNPJ document and owns vehicles and service orders by reference only.
//
// Customers are never deleted; Deactivate hides them from new work while
// keeping their history intact.
package customer
