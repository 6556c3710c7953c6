// Package services implements the ideaflux core pipeline: the completion
// gateway with its provider fallback chain, the similarity engine with its
// lexical fallback, summary generation, suggestion generation, and
// submission of accepted suggestions.
//
// Services consume infrastructure through the driven ports and are wired by
// the driving adapters (CLI, MCP). Expected failure modes (missing
// credentials, throttled providers, malformed model output) resolve to
// fallback values, never to errors.
package services
