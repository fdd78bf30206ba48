// twisty - terminal and HTTP front ends for the N x N cube engine.
package main

import (
	"github.com/SeamusWaldron/twisty/internal/cli"
)

func main() {
	cli.Execute()
}
