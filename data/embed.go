// Package data provides the embedded level files shipped with the game.
package data

import "embed"

// levelFS embeds all level files from this directory at build time.
//
//go:embed *.txt
var levelFS embed.FS
