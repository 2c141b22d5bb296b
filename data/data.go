// Package data holds the seed catalog shipped with the binary.
package data

import _ "embed"

//go:embed menu.json
var MenuJSON []byte
