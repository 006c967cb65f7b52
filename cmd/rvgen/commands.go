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

package main

import (
	"context"
	"flag"
	"math/big"
	"os"

	"github.com/fentec-project/rvgen/report"
	"github.com/fentec-project/rvgen/summary"
	"github.com/fentec-project/rvgen/uniform"
	"github.com/fentec-project/rvgen/variate"
	"github.com/google/subcommands"
	"github.com/pkg/errors"
)

// requestFlags are the flags that describe a request. Flags set on
// the command line override the request file.
type requestFlags struct {
	configPath string
	scratch    requestConfig
}

func (f *requestFlags) setUniformFlags(fs *flag.FlagSet) {
	u := &f.scratch.Uniform
	fs.StringVar(&f.configPath, "config", "", "request file path (see formats)")
	fs.StringVar(&u.Method, "method", "", "mixed, multiplicative or external")
	fs.StringVar(&u.Seed, "seed", "", "seed X0")
	fs.StringVar(&u.Multiplier, "a", "", "multiplier a")
	fs.StringVar(&u.Increment, "c", "", "increment c (mixed only)")
	fs.StringVar(&u.Modulus, "m", "", "modulus m")
	fs.IntVar(&u.Count, "n", 0, "number of uniforms N")
	fs.StringVar(&u.Source, "source", "", "external source: math or salsa20")
	fs.Int64Var(&u.SourceSeed, "source-seed", 0, "seed of the math source")
	fs.StringVar(&u.Key, "key", "", "salsa20 key in hex")
}

func (f *requestFlags) setDistributionFlags(fs *flag.FlagSet) {
	d := &f.scratch.Distribution
	fs.StringVar(&d.Kind, "dist", "", "normal, exponential, binomial, poisson or geometric")
	fs.Float64Var(&d.Mean, "mean", 0, "normal mean")
	fs.Float64Var(&d.StdDev, "stddev", 0, "normal standard deviation")
	fs.Float64Var(&d.Rate, "rate", 0, "exponential or poisson rate")
	fs.IntVar(&d.Trials, "trials", 0, "binomial number of trials")
	fs.Float64Var(&d.Prob, "prob", 0, "binomial or geometric success probability")
	fs.IntVar(&f.scratch.Samples, "samples", 0, "number of samples")
}

// load reads the request file, if any, and applies the flags that
// were set on top of it.
func (f *requestFlags) load(fs *flag.FlagSet) (*requestConfig, error) {
	cfg := new(requestConfig)
	if f.configPath != "" {
		var err error
		if cfg, err = loadConfig(f.configPath); err != nil {
			return nil, err
		}
	}

	var err error
	fs.Visit(func(fl *flag.Flag) {
		if err == nil {
			err = cfg.set(fl.Name, fl.Value.String())
		}
	})
	return cfg, err
}

type uniformCmd struct {
	requestFlags
	outFlags
	baseFlags
	cycle int
}

func (*uniformCmd) Name() string     { return "uniform" }
func (*uniformCmd) Synopsis() string { return "generate a stream of uniforms" }
func (*uniformCmd) Usage() string    { return "uniform [-config file] [-method m -seed x -a a -c c -m m -n n]\n" }

func (c *uniformCmd) SetFlags(fs *flag.FlagSet) {
	c.setUniformFlags(fs)
	c.outFlags.SetFlags(fs)
	c.baseFlags.SetFlags(fs)
	fs.IntVar(&c.cycle, "cycle", 0, "also report the cycle length, looking at most this many steps ahead")
}

func (c *uniformCmd) Execute(_ context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	defer c.setupProfiling().Stop()

	cfg, err := c.load(fs)
	if err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}
	p, src, err := cfg.Uniform.params()
	if err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}

	s, err := uniform.Generate(p, src)
	if err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	log.Debugf("generated %d %v uniforms", s.Len(), s.Method())

	table := report.UniformTable(s)
	printTable(os.Stdout, table)
	if sum, err := summary.Uniforms(s); err == nil {
		printUniformSummary(os.Stdout, sum)
	}

	if c.cycle > 0 {
		length, found, err := uniform.CycleLength(p, c.cycle)
		if err != nil {
			log.Error(err)
			return subcommands.ExitFailure
		}
		printCycle(os.Stdout, length, found, c.cycle)
	}

	if err := c.write(table); err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type stateCmd struct {
	requestFlags
	step string
}

func (*stateCmd) Name() string     { return "state" }
func (*stateCmd) Synopsis() string { return "compute the state X_n without generating X_1..X_n-1" }
func (*stateCmd) Usage() string    { return "state [-config file] [-method m -seed x -a a -c c -m m] -step n\n" }

func (c *stateCmd) SetFlags(fs *flag.FlagSet) {
	c.setUniformFlags(fs)
	fs.StringVar(&c.step, "step", "", "step n, a non-negative decimal integer")
}

func (c *stateCmd) Execute(_ context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.load(fs)
	if err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}
	p, _, err := cfg.Uniform.params()
	if err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}
	n, ok := new(big.Int).SetString(c.step, 10)
	if !ok {
		log.Errorf("invalid step %q", c.step)
		return subcommands.ExitUsageError
	}

	x, err := uniform.StateAt(p, n)
	if err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	printState(os.Stdout, n, x, p.Modulus)
	return subcommands.ExitSuccess
}

type sampleCmd struct {
	requestFlags
	outFlags
	baseFlags
	showUniforms bool
}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "sample a distribution from a uniform stream" }
func (*sampleCmd) Usage() string {
	return "sample [-config file] [uniform flags] -dist d [distribution flags] -samples k\n"
}

func (c *sampleCmd) SetFlags(fs *flag.FlagSet) {
	c.setUniformFlags(fs)
	c.setDistributionFlags(fs)
	c.outFlags.SetFlags(fs)
	c.baseFlags.SetFlags(fs)
	fs.BoolVar(&c.showUniforms, "uniforms", false, "also print the uniform stream")
}

func (c *sampleCmd) Execute(_ context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	defer c.setupProfiling().Stop()

	cfg, err := c.load(fs)
	if err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}
	req, err := cfg.request()
	if err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	res, err := variate.Run(req)
	if short, ok := variate.AsInsufficientUniforms(err); ok {
		log.Warning(short)
		status = subcommands.ExitFailure
	} else if err != nil {
		log.Error(err)
		if errors.Cause(err) == variate.ErrInvalidParams {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	tables := []report.Table{report.UniformTable(res.Stream)}
	if c.showUniforms {
		printTable(os.Stdout, tables[0])
	}
	samples := report.SampleTable(req.Distribution, res.Records)
	tables = append(tables, samples)
	printTable(os.Stdout, samples)
	if sum, err := summary.Samples(res.Records, req.Distribution.Discrete()); err == nil {
		printSampleSummary(os.Stdout, sum)
	}
	log.Infof("%d samples used %d of %d uniforms", len(res.Records), res.Consumed, res.Stream.Len())

	if err := c.write(tables...); err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	return status
}

type poissonTableCmd struct {
	outFlags
	rate float64
}

func (*poissonTableCmd) Name() string     { return "poisson-table" }
func (*poissonTableCmd) Synopsis() string { return "print the probability table of a poisson distribution" }
func (*poissonTableCmd) Usage() string    { return "poisson-table -rate lambda\n" }

func (c *poissonTableCmd) SetFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.rate, "rate", 0, "rate lambda")
	c.outFlags.SetFlags(fs)
}

func (c *poissonTableCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := variate.Poisson{Rate: c.rate}
	if err := p.Validate(); err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}

	table := report.PoissonTable(p.Table())
	printTable(os.Stdout, table)
	if err := c.write(table); err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
