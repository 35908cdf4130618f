package api

import "embed"

//go:embed static/dashboard.html
var apiStaticFS embed.FS
