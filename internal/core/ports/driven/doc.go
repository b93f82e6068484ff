// Package driven defines interfaces for components the core depends on:
// document readers and field extractors. These are the "driven" ports in
// hexagonal architecture terminology - the core drives them.
//
// Implementations live in internal/adapters/driven and internal/extract.
package driven
