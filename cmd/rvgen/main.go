/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command rvgen generates congruential uniform streams and samples
// random variates from them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/pkg/profile"
)

const progName = "rvgen"

const (
	envLogLevel = "RVGEN_LOG_LEVEL"
	envOutDir   = "RVGEN_OUT_DIR"
)

var log = logging.MustGetLogger(progName)

const formatsDoc = `
REQUEST FORMAT
	A request file is a YAML document with the following schema:
		uniform:
			method:     mixed | multiplicative | external
			seed:       DECIMAL_STR    # X0
			multiplier: DECIMAL_STR    # a
			increment:  DECIMAL_STR    # c, mixed only
			modulus:    DECIMAL_STR    # m
			count:      INT            # N
			source:     math | salsa20 # external only, default: math
			sourceSeed: INT            # math source seed
			key:        HEX_STR        # salsa20 key, 64 hex digits
		distribution:
			kind:   normal | exponential | binomial | poisson | geometric
			mean:   FLOAT  # normal
			stddev: FLOAT  # normal
			rate:   FLOAT  # exponential, poisson
			trials: INT    # binomial
			prob:   FLOAT  # binomial, geometric
		samples: INT

	Integers of the recurrence are strings so that values wider than
	64 bits are kept exact. Flags given on the command line override
	the values of the file.

	Validity rules:
		mixed:          0 <= seed < m, 0 < a < m, 0 <= c < m
		multiplicative: 0 <= seed < m, 0 < a < m, seed and m odd,
		                m not a multiple of 5

	The sample command generates max(count, uniforms needed) uniforms:
	normal needs samples rounded up to even, binomial samples*trials,
	the others one per sample.

ENVIRONMENT
	RVGEN_LOG_LEVEL  log level (DEBUG, INFO, WARNING, ERROR), default INFO
	RVGEN_OUT_DIR    default directory of -format output, default .

	Both may be set in a .env file in the working directory.
`

type nopStop struct{}

func (nopStop) Stop() {}

type baseFlags struct {
	profPath string
	prof     string
}

func (f *baseFlags) setupProfiling() interface {
	Stop()
} {
	if f.profPath != "" {
		opts := []func(*profile.Profile){profile.ProfilePath(f.profPath), profile.Quiet}
		switch f.prof {
		case "cpu":
			opts = append(opts, profile.CPUProfile)
		case "mem":
			opts = append(opts, profile.MemProfile)
		default:
			// ignore
		}
		return profile.Start(opts...)
	}
	return nopStop{}
}

func (f *baseFlags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.profPath, "profiledir", "", "turn profiling on and write profiles to this directory")
	fs.StringVar(&f.prof, "profile", "cpu", "resource to profile (possible values: cpu, mem)")
}

type formatsCmd struct{}

func (formatsCmd) Name() string           { return "formats" }
func (formatsCmd) Synopsis() string       { return "describes the request file format" }
func (formatsCmd) Usage() string          { return "" }
func (formatsCmd) SetFlags(*flag.FlagSet) {}

func (formatsCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprint(os.Stderr, formatsDoc)
	return subcommands.ExitSuccess
}

func logLevel(verbose bool) logging.Level {
	if verbose {
		return logging.DEBUG
	}
	if s := os.Getenv(envLogLevel); s != "" {
		level, err := logging.LogLevel(strings.ToUpper(s))
		if err == nil {
			return level
		}
		fmt.Fprintf(os.Stderr, "%s: ignoring %s=%q\n", progName, envLogLevel, s)
	}
	return logging.INFO
}

func startLogging(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatter := logging.MustStringFormatter("%{level:-7s} %{module:-8s} | %{message}")
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

func main() {
	// a missing .env is not an error
	_ = godotenv.Load()

	verbose := flag.Bool("v", false, "log debug messages")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(formatsCmd{}, "")
	subcommands.Register(new(uniformCmd), "")
	subcommands.Register(new(stateCmd), "")
	subcommands.Register(new(sampleCmd), "")
	subcommands.Register(new(poissonTableCmd), "")

	flag.Parse()
	startLogging(logLevel(*verbose))
	os.Exit(int(subcommands.Execute(context.Background())))
}
