/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// agecalc is the runnable demo the walkthrough builds in its final
// chapter: the tested age calculation wired into a small command line
// program.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/tddbyexample/age"
)

type arguments struct {
	birthYear int
	verbose   bool
}

func parseArgs(args []string) (*arguments, error) {
	app := kingpin.New("agecalc", "Computes a person's age from a birth year.")
	birthYear := app.Arg("birth-year", "The calendar year the person was born in.").Required().Int()
	verbose := app.Flag("verbose", "Enable debug output.").Default("false").Bool()

	_, err := app.Parse(args)
	if err != nil {
		return nil, err
	}

	return &arguments{
		birthYear: *birthYear,
		verbose:   *verbose,
	}, nil
}

func (a *arguments) execute(out io.Writer) error {
	logger.Debug().Int("birthYear", a.birthYear).Msg("Computing age.")

	result := age.CurrentAgeForBirthYear(a.birthYear)
	if result < 0 {
		logger.Warn().Int("birthYear", a.birthYear).Msg("Birth year is in the future.")
	}

	if _, err := fmt.Fprintln(out, result); err != nil {
		return errors.Wrapf(err, "could not write result")
	}
	return nil
}

func main() {
	kingpin.Version("0.0.1")
	args, err := parseArgs(os.Args[1:])
	if err != nil {
		kingpin.Fatalf("failed to parse arguments, %s, try --help", err)
	}

	// Configure logger
	level := zerolog.InfoLevel
	if args.verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger.Logger = logger.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    true,
		TimeFormat: "15:04:05.000"})

	err = args.execute(os.Stdout)
	if err != nil {
		kingpin.Fatalf("%s", err)
	}
}
