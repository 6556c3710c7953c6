// Package domain contains the core business entities for ideaflux:
// projects, proposals, similarity judgements, and the value types
// exchanged with completion providers. It has no dependencies on
// adapters or external services.
package domain
