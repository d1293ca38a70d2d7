// Package recruiter embeds the browser assets served by the gateway.
package recruiter

import "embed"

// In dev mode (IsDev=true), assets are loaded from disk for hot reloading.
// Otherwise they are served from these embedded filesystems.

// StaticFS holds public assets served under /static/.
//
//go:embed all:frontend/static
var StaticFS embed.FS

// PagesFS holds the login and dashboard pages. The dashboard is only served to Authenticated clients.
//
//go:embed all:frontend/pages
var PagesFS embed.FS
