// Package file provides a TOML file-based configuration store.
//
// Configuration lives in ~/.ideaflux/config.toml and holds provider
// credentials (gemini.api_key, openai.api_key), model overrides, the
// output locale, and the storage path. Nested TOML tables are flattened
// to dot-notation keys on load.
package file
