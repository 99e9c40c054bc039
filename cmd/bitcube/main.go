// bitcube - CLI and TUI for turning, inspecting and storing 3x3x3 cube states.
package main

import (
	"github.com/SeamusWaldron/bitcube/internal/cli"
)

func main() {
	cli.Execute()
}
