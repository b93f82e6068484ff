// Package domain contains the core business entities for FNOL claim intake:
// the closed set of extractable fields, the extraction result, the routing
// decision, and domain errors. It has no dependencies on adapters.
package domain
