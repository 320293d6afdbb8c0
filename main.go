// Package main is the entry point for thumbgrab.
package main

import (
	"github.com/samber/lo"
	"github.com/thumbgrab/thumbgrab/cmd"
	"github.com/thumbgrab/thumbgrab/config"
	"github.com/thumbgrab/thumbgrab/log"
	"github.com/thumbgrab/thumbgrab/network"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	network.Setup()

	cmd.Execute()
}
