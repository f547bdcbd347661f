// Package configs provides embedded configuration templates.
//
// Templates are embedded at build time with go:embed so they ship with
// every distribution of the binary. `codecat init` writes
// ConfigTemplate to .codecat.yaml in the target directory.
package configs

import _ "embed"

// ConfigTemplate is the annotated template written by `codecat init`.
//
//go:embed config.example.yaml
var ConfigTemplate string
