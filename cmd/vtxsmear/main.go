package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/hazeltet845/cmssw/cli"
)

func main() {
	initLogger()
	cli.Launch()
}

// initLogger configures the standard logger used by libraries. Named loggers
// get their level from the --logging-level flag.
func initLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}
