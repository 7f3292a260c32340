// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	"github.com/ChainSafe/paras/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var app = newApp()

var (
	// initCommand defines the "init" subcommand (ie, `paras init`)
	initCommand = cli.Command{
		Action:    FixFlagOrder(initAction),
		Name:      "init",
		Usage:     "Initialise node databases with the genesis paras",
		ArgsUsage: "",
		Flags:     InitFlags,
		Category:  "INIT",
		Description: "The init command initialises the node databases and registers the genesis paras.\n" +
			"\tUsage: paras init --config config.toml",
	}
	// setCodeCommand defines the "set-code" subcommand (ie, `paras set-code`)
	setCodeCommand = cli.Command{
		Action:    FixFlagOrder(setCodeAction),
		Name:      "set-code",
		Usage:     "Overwrite the current validation code of a para",
		ArgsUsage: "",
		Flags:     SetCodeFlags,
		Category:  "PARAS",
		Description: "The set-code command replaces the current code of a para and discards its previous code.\n" +
			"\tUsage: paras set-code --para 100 --code 0x0061736d01000000",
	}
	// setHeadCommand defines the "set-head" subcommand (ie, `paras set-head`)
	setHeadCommand = cli.Command{
		Action:      FixFlagOrder(setHeadAction),
		Name:        "set-head",
		Usage:       "Overwrite the current head data of a para",
		ArgsUsage:   "",
		Flags:       SetHeadFlags,
		Category:    "PARAS",
		Description: "The set-head command replaces the current head of a para.\n\tUsage: paras set-head --para 100 --head 0x01",
	}
	// scheduleUpgradeCommand defines the "schedule-upgrade" subcommand (ie, `paras schedule-upgrade`)
	scheduleUpgradeCommand = cli.Command{
		Action:    FixFlagOrder(scheduleUpgradeAction),
		Name:      "schedule-upgrade",
		Usage:     "Schedule a validation code upgrade of a para",
		ArgsUsage: "",
		Flags:     ScheduleUpgradeFlags,
		Category:  "PARAS",
		Description: "The schedule-upgrade command schedules a code upgrade applied when a new head\n" +
			"\tis noted at or after the activation block.\n" +
			"\tUsage: paras schedule-upgrade --para 100 --code-file para.wasm --block 20",
	}
	// noteHeadCommand defines the "note-head" subcommand (ie, `paras note-head`)
	noteHeadCommand = cli.Command{
		Action:    FixFlagOrder(noteHeadAction),
		Name:      "note-head",
		Usage:     "Note a new head of a para at the current block",
		ArgsUsage: "",
		Flags:     SetHeadFlags,
		Category:  "PARAS",
		Description: "The note-head command records a new head and applies the scheduled code upgrade if it is due.\n" +
			"\tUsage: paras note-head --para 100 --head 0x02",
	}
	// queueActionCommand defines the "queue-action" subcommand (ie, `paras queue-action`)
	queueActionCommand = cli.Command{
		Action:    FixFlagOrder(queueActionAction),
		Name:      "queue-action",
		Usage:     "Queue a session action for a para",
		ArgsUsage: "",
		Flags:     QueueActionFlags,
		Category:  "PARAS",
		Description: "The queue-action command queues an onboard or offboard action applied at the next session.\n" +
			"\tUsage: paras queue-action --para 100 --action offboard",
	}
	// advanceCommand defines the "advance" subcommand (ie, `paras advance`)
	advanceCommand = cli.Command{
		Action:    FixFlagOrder(advanceAction),
		Name:      "advance",
		Usage:     "Advance the chain by a number of blocks",
		ArgsUsage: "",
		Flags:     AdvanceFlags,
		Category:  "CHAIN",
		Description: "The advance command runs the block hook for each block and starts a new session\n" +
			"\tat every session boundary.\n" +
			"\tUsage: paras advance --count 10",
	}
	// newSessionCommand defines the "new-session" subcommand (ie, `paras new-session`)
	newSessionCommand = cli.Command{
		Action:      FixFlagOrder(newSessionAction),
		Name:        "new-session",
		Usage:       "Start the next session",
		ArgsUsage:   "",
		Flags:       GlobalFlags,
		Category:    "CHAIN",
		Description: "The new-session command applies the session actions queued for the next session.\n\tUsage: paras new-session",
	}
	// showCommand defines the "show" subcommand (ie, `paras show`)
	showCommand = cli.Command{
		Action:    FixFlagOrder(showAction),
		Name:      "show",
		Usage:     "Show the chain or para state",
		ArgsUsage: "",
		Flags:     ShowFlags,
		Category:  "PARAS",
		Description: "The show command prints the chain state, or the state of a para if --para is given, as JSON.\n" +
			"\tUsage: paras show --para 100",
	}
	// exportCommand defines the "export" subcommand (ie, `paras export`)
	exportCommand = cli.Command{
		Action:    FixFlagOrder(exportAction),
		Name:      "export",
		Usage:     "Export configuration values to TOML configuration file",
		ArgsUsage: "",
		Flags:     ExportFlags,
		Category:  "EXPORT",
		Description: "The export command exports configuration values from the command flags to a TOML configuration file.\n" +
			"\tUsage: paras export --config chain/dev/config.toml --basepath ~/.paras/test --output test.toml",
	}
)

// newApp creates the paras command line application
func newApp() *cli.App {
	a := cli.NewApp()
	a.Action = parasAction
	a.Copyright = "Copyright 2023 ChainSafe Systems Authors"
	a.Name = "paras"
	a.Usage = "Parachain validation code and head data lifecycle node"
	a.Author = "ChainSafe Systems 2023"
	a.Version = "0.1.0"
	a.Commands = []cli.Command{
		initCommand,
		setCodeCommand,
		setHeadCommand,
		scheduleUpgradeCommand,
		noteHeadCommand,
		queueActionCommand,
		advanceCommand,
		newSessionCommand,
		showCommand,
		exportCommand,
	}
	a.Flags = RootFlags
	return a
}

// main runs the paras node and its subcommands
func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
