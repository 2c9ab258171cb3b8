// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/algorand/go-deadlock"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/algorand/go-lists/config"
)

type options struct {
	dataDir  string
	logFile  string
	verbose  bool
	jsonLogs bool
	backward bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	var versionCheck bool

	rootCmd := &cobra.Command{
		Use:   "listsum",
		Short: "Build a list from integer arguments and sum it",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if versionCheck {
				fmt.Fprintln(stdout, config.FormatVersionAndLicense())
				return
			}
			// If no arguments passed, we should fallback to help
			cmd.HelpFunc()(cmd, args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().BoolVarP(&versionCheck, "version", "v", false, "Display and write current build version and exit")
	rootCmd.PersistentFlags().StringVarP(&opts.dataDir, "datadir", "d", "", "Data directory holding config.json")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "logfile", "", "Write logs to this size-bounded file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Log at debug level")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "Write logs as JSON")

	rootCmd.AddCommand(arrayCmd(&opts))
	rootCmd.AddCommand(singlyCmd(&opts))
	rootCmd.AddCommand(doublyCmd(&opts))
	return rootCmd
}

func main() {
	if config.DefaultDeadlock == "disable" {
		deadlock.Opts.Disable = true
	}

	rootCmd := newRootCmd(os.Stdout, os.Stderr)

	// Hidden command to generate docs in a given directory
	// listsum generate-docs [path]
	if len(os.Args) == 3 && os.Args[1] == "generate-docs" {
		err := doc.GenMarkdownTree(rootCmd, os.Args[2])
		if err != nil {
			reportError(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
