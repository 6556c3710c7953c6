// Package mcp provides an MCP (Model Context Protocol) server adapter for ideaflux.
// It lets AI assistants grade proposal similarity, generate summaries, and
// suggest new proposals for a project.
package mcp

import "errors"

// ErrMissingSimilarityService is returned when the similarity service is not provided.
var ErrMissingSimilarityService = errors.New("mcp: similarity service is required")

// ErrMissingSummaryService is returned when the summary service is not provided.
var ErrMissingSummaryService = errors.New("mcp: summary service is required")

// ErrMissingSuggestionService is returned when the suggestion service is not provided.
var ErrMissingSuggestionService = errors.New("mcp: suggestion service is required")
