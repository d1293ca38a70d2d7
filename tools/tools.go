//go:build tools

// Package tools documents development tool dependencies.
// They are installed with `go install` or run through `go run` and are not tracked in go.mod.
package tools

// Air reloads the gateway on Go changes; with DEV=true the frontend is also
// served from disk, so page edits need no rebuild.
//   Install: go install github.com/air-verse/air@v1.63.0
//   Docs: https://github.com/air-verse/air
//
// mockgen regenerates internal/mocks from internal/ports:
//   go generate ./internal/mocks
