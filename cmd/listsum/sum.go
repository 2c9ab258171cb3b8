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
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/algorand/go-lists/config"
	"github.com/algorand/go-lists/dynamic"
	"github.com/algorand/go-lists/linked/doubly"
	"github.com/algorand/go-lists/linked/singly"
	"github.com/algorand/go-lists/logging"
	"github.com/algorand/go-lists/serr"
	"github.com/algorand/go-lists/util"
)

var errorColor = color.New(color.FgRed)

func reportError(w io.Writer, err error) {
	errorColor.Fprintf(w, "error: %v\n", err)
}

func parseValue(arg string) (int64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, serr.Wrap(err, "invalid integer", "arg", arg)
	}
	return v, nil
}

// session is the state shared by the sum commands: the loaded config and a
// logger writing where the flags ask.
type session struct {
	cfg    config.Local
	log    logging.Logger
	closer io.Closer
}

func openSession(opts *options, stderr io.Writer) (*session, error) {
	cfg, err := config.LoadConfigFromDisk(opts.dataDir)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, log: logging.NewLogger()}
	s.log.SetLevel(logging.Level(cfg.BaseLoggerDebugLevel))
	if opts.verbose {
		s.log.SetLevel(logging.Debug)
	}
	s.log.SetOutput(stderr)
	if opts.jsonLogs {
		s.log.SetJSONFormatter()
	}
	if opts.logFile != "" {
		archive := filepath.Join(filepath.Dir(opts.logFile), cfg.LogArchiveName)
		writer, err := logging.MakeCyclicFileWriter(opts.logFile, archive, cfg.LogSizeLimit)
		if err != nil {
			return nil, err
		}
		s.log.SetOutput(writer)
		s.closer = writer
	}
	s.log.WithFields(logging.Fields{
		"datadir":             opts.dataDir,
		"listInitialCapacity": cfg.ListInitialCapacity,
		"listGrowthFactor":    cfg.ListGrowthFactor,
	}).Debug("configuration loaded")
	return s, nil
}

func (s *session) Close() {
	if s.closer != nil {
		s.closer.Close()
	}
}

// sumArray pushes values into a growable array and drains it. A push that
// cannot allocate or grow the block is reported as an error.
func sumArray(values []int64, policy dynamic.Policy, log logging.Logger) (total int64, err error) {
	l, err := dynamic.NewWithPolicy[int64](policy)
	if err != nil {
		return 0, err
	}
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if !ok || !errors.Is(perr, dynamic.ErrCapacityOverflow) && !errors.Is(perr, dynamic.ErrAllocationFailed) {
				panic(r)
			}
			total, err = 0, serr.Extend(perr, "pushed", l.Len())
		}
	}()
	for _, v := range values {
		before := l.Cap()
		l.Push(v)
		if l.Cap() != before {
			log.Debugf("array grew from %d to %d slots", before, l.Cap())
		}
	}
	return util.Sum(l.Drain()), nil
}

func sumSingly(values []int64) int64 {
	l := singly.New[int64]()
	for _, v := range values {
		l.PushBack(v)
	}
	return util.Sum(l.Drain())
}

func sumDoubly(values []int64, backward bool) int64 {
	l := doubly.New[int64]()
	for _, v := range values {
		l.PushBack(v)
	}
	if backward {
		return util.Sum(l.DrainBackward())
	}
	return util.Sum(l.Drain())
}

// sumCmd builds a subcommand that parses its arguments and prints the result
// of sum.
func sumCmd(opts *options, use, short string, sum func(*session, []int64) (int64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <int>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := util.MapErr(args, parseValue)
			if err != nil {
				return err
			}
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			log := s.log.With("kind", use)
			log.Debugf("summing %d values", len(values))
			total, err := sum(s, values)
			if err != nil {
				err = serr.Extend(err, "kind", use, "count", len(values))
				log.Warnf("sum failed: %v", err)
				return err
			}
			log.Debugf("sum of %d values is %d", len(values), total)
			fmt.Fprintf(cmd.OutOrStdout(), "sum: %d\n", total)
			return nil
		},
	}
}

func arrayCmd(opts *options) *cobra.Command {
	return sumCmd(opts, "array", "Sum the values through a growable array",
		func(s *session, values []int64) (int64, error) {
			return sumArray(values, s.cfg.DynamicPolicy(), s.log.With("kind", "array"))
		})
}

func singlyCmd(opts *options) *cobra.Command {
	return sumCmd(opts, "singly", "Sum the values through a singly linked list",
		func(_ *session, values []int64) (int64, error) {
			return sumSingly(values), nil
		})
}

func doublyCmd(opts *options) *cobra.Command {
	cmd := sumCmd(opts, "doubly", "Sum the values through a doubly linked list",
		func(_ *session, values []int64) (int64, error) {
			return sumDoubly(values, opts.backward), nil
		})
	cmd.Flags().BoolVar(&opts.backward, "backward", false, "Drain the list from the back")
	return cmd
}
