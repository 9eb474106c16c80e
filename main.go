package main

import (
	"github.com/Johannes-Berggren/gco/cmd"
	"pkt.systems/psi"
)

func main() {
	psi.Run(cmd.Execute)
}
