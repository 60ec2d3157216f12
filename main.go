package main

import (
	// Stdlib
	"fmt"
	"os"
	"os/signal"

	// Internal
	releaseCmd "github.com/shahrokhDaijavad/data-prep-kit/commands/release"
	versionCmd "github.com/shahrokhDaijavad/data-prep-kit/commands/version"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

const version = "0.3.0"

func main() {
	// Initialise the application.
	dpkflow := gocli.NewApp("dpkflow")
	dpkflow.UsageLine = "dpkflow SUBCMD [SUBCMD_OPTION ...]"
	dpkflow.Short = "release cutting automation for DPK repositories"
	dpkflow.Version = version
	dpkflow.Long = `
  dpkflow is a git plugin that automates the release workflow for
  repositories keeping their version in a metadata file that is
  propagated into the project files by the build tool.

  See the list of subcommands.`

	// Register subcommands.
	dpkflow.MustRegisterSubcommand(releaseCmd.Command)
	dpkflow.MustRegisterSubcommand(versionCmd.Command)

	// Start processing signals.
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt)
	go catchSignals(signalCh)

	// Run the application.
	dpkflow.Run(os.Args[1:])
}

func catchSignals(ch chan os.Signal) {
	<-ch
	fmt.Print(`
+-----------------------------------------------------+
| Signal received, the child processes were notified. |
| Send the signal again to exit immediately.          |
+-----------------------------------------------------+
	`)
	signal.Stop(ch)
}
