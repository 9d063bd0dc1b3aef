// Package serviceorder implements the ServiceOrder aggregate: a repair job that
// moves from intake to delivery through a guarded status lifecycle.
//
// Status transitions are driven by a table (see Status.AllowedTransitions).
// Every transition appends a StatusChange to the order's History, which is an
// append-only sequence. Approval is a separate protocol that is only legal while
// the order awaits the customer's decision.
//
// The order number is assigned by persistence; a freshly built order has none.
package serviceorder
