// Package data embeds working excerpts of the demo's data files so the
// binary runs with no external setup: a six-root dhatupatha slice, the
// rule texts those roots' derivations cite, and the fixture engine's
// form tables.
package data

import _ "embed"

//go:embed dhatupatha.tsv
var Dhatupatha []byte

//go:embed sutrapatha.tsv
var Sutrapatha []byte

//go:embed forms.tsv
var Forms []byte
