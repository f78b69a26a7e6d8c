// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"
)

// options defines the global configuration options shared by every
// subcommand.
type options struct {
	DebugLevel string `short:"d" long:"debuglevel" default:"info" description:"Logging level {trace, debug, info, warn, error, critical}"`
	LogFile    string `long:"logfile" description:"Also write logs to this file, rotated at 10 MB"`
}

var opts options

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		// Global options are only known once parsing reaches the
		// command, so logging is wired up here rather than in main.
		if opts.LogFile != "" {
			if err := initLogRotator(opts.LogFile); err != nil {
				return err
			}
		}
		if err := setLogLevels(opts.DebugLevel); err != nil {
			return err
		}
		return command.Execute(args)
	}

	addCommand(parser, "lock", "Derive a vault deposit address",
		"Validate the vault parameters and print the deposit address "+
			"along with the vault token needed for the later unvault "+
			"and spend steps.", &lockCommand{})
	addCommand(parser, "unvault", "Build the unvault transaction",
		"Given a vault token and the funding outpoint, print the "+
			"unvault transaction hex and the hot/cold templates "+
			"spendable from its output.", &unvaultCommand{})
	addCommand(parser, "spend", "Expand a template's spending chain",
		"Given a template token and the outpoint it spends, print the "+
			"full chain of transactions in hex, one per line.",
		&spendCommand{})

	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func addCommand(parser *flags.Parser, name, short, long string, cmd flags.Commander) {
	if _, err := parser.AddCommand(name, short, long, cmd); err != nil {
		panic(err)
	}
}
