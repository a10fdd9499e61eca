// Package evently provides embedded assets for production builds.
package evently

import "embed"

// TemplateFS holds the server-rendered view templates. In dev mode
// (IsDev=true) templates are loaded from disk for hot reloading; in
// production they are parsed from this embedded filesystem.
//
//go:embed all:frontend/templates
var TemplateFS embed.FS
