// Package seed embeds the demo dataset served when no external dataset is configured.
package seed

import (
	_ "embed"
)

//go:embed salon.json
var Data []byte

// Name identifies the embedded dataset in logs.
const Name = "embedded:salon.json"
