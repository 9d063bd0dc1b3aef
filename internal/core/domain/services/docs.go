// Package services contains domain services that coordinate several aggregates
// without belonging to any of them.
//
// OrderAssembler turns resolved customers, vehicles, catalog services and parts
// into a priced ServiceOrder. It performs no lookups and holds no persistence
// handle; callers resolve each reference and feed it in request order.
package services
