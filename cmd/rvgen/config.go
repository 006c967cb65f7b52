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
	"encoding/hex"
	"io/ioutil"
	"math/big"
	"strconv"
	"strings"

	"github.com/fentec-project/rvgen/uniform"
	"github.com/fentec-project/rvgen/variate"
	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"
)

// uniformConfig is the uniform: block of a request file. Integers
// of the recurrence are decimal strings so that they are exact at
// any size.
type uniformConfig struct {
	Method     string `yaml:"method"`
	Seed       string `yaml:"seed"`
	Multiplier string `yaml:"multiplier"`
	Increment  string `yaml:"increment"`
	Modulus    string `yaml:"modulus"`
	Count      int    `yaml:"count"`
	Source     string `yaml:"source"`
	SourceSeed int64  `yaml:"sourceSeed"`
	Key        string `yaml:"key"`
}

type distributionConfig struct {
	Kind   string  `yaml:"kind"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Rate   float64 `yaml:"rate"`
	Trials int     `yaml:"trials"`
	Prob   float64 `yaml:"prob"`
}

type requestConfig struct {
	Uniform      uniformConfig      `yaml:"uniform"`
	Distribution distributionConfig `yaml:"distribution"`
	Samples      int                `yaml:"samples"`
}

func loadConfig(path string) (*requestConfig, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read request file")
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

func parseConfig(data []byte) (*requestConfig, error) {
	var cfg requestConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode request")
	}
	return &cfg, nil
}

// set overrides a single value by its flag name. Unknown names
// are ignored.
func (c *requestConfig) set(name, value string) error {
	var err error
	switch name {
	case "method":
		c.Uniform.Method = value
	case "seed":
		c.Uniform.Seed = value
	case "a":
		c.Uniform.Multiplier = value
	case "c":
		c.Uniform.Increment = value
	case "m":
		c.Uniform.Modulus = value
	case "n":
		c.Uniform.Count, err = strconv.Atoi(value)
	case "source":
		c.Uniform.Source = value
	case "source-seed":
		c.Uniform.SourceSeed, err = strconv.ParseInt(value, 10, 64)
	case "key":
		c.Uniform.Key = value
	case "dist":
		c.Distribution.Kind = value
	case "mean":
		c.Distribution.Mean, err = strconv.ParseFloat(value, 64)
	case "stddev":
		c.Distribution.StdDev, err = strconv.ParseFloat(value, 64)
	case "rate":
		c.Distribution.Rate, err = strconv.ParseFloat(value, 64)
	case "trials":
		c.Distribution.Trials, err = strconv.Atoi(value)
	case "prob":
		c.Distribution.Prob, err = strconv.ParseFloat(value, 64)
	case "samples":
		c.Samples, err = strconv.Atoi(value)
	}
	return errors.Wrapf(err, "invalid value %q for %s", value, name)
}

func parseInt(name, s string) (*big.Int, error) {
	if s == "" {
		return nil, errors.Wrapf(uniform.ErrInvalidParams, "%s is required", name)
	}
	x, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, errors.Wrapf(uniform.ErrInvalidParams, "%s = %q is not an integer", name, s)
	}
	return x, nil
}

// params returns the uniform parameters and, for external streams,
// the source of uniforms.
func (c *uniformConfig) params() (uniform.Params, uniform.Source, error) {
	method, err := uniform.ParseMethod(c.Method)
	if err != nil {
		return uniform.Params{}, nil, err
	}

	if method == uniform.External {
		src, err := c.source()
		return uniform.NewExternal(c.Count), src, err
	}

	seed, err := parseInt("seed", c.Seed)
	if err != nil {
		return uniform.Params{}, nil, err
	}
	a, err := parseInt("multiplier", c.Multiplier)
	if err != nil {
		return uniform.Params{}, nil, err
	}
	m, err := parseInt("modulus", c.Modulus)
	if err != nil {
		return uniform.Params{}, nil, err
	}

	if method == uniform.Multiplicative {
		return uniform.NewMultiplicative(seed, a, m, c.Count), nil, nil
	}
	inc, err := parseInt("increment", c.Increment)
	if err != nil {
		return uniform.Params{}, nil, err
	}
	return uniform.NewMixed(seed, a, inc, m, c.Count), nil, nil
}

func (c *uniformConfig) source() (uniform.Source, error) {
	switch strings.ToLower(c.Source) {
	case "", "math":
		return uniform.NewMathSource(c.SourceSeed), nil
	case "salsa20":
		b, err := hex.DecodeString(c.Key)
		if err != nil || len(b) != 32 {
			return nil, errors.Wrap(uniform.ErrInvalidParams, "salsa20 key must be 64 hex digits")
		}
		var key [32]byte
		copy(key[:], b)
		return uniform.NewKeystream(&key), nil
	default:
		return nil, errors.Wrapf(uniform.ErrInvalidParams, "unknown source %q", c.Source)
	}
}

func (c *distributionConfig) distribution() (variate.Distribution, error) {
	switch strings.ToLower(c.Kind) {
	case "normal":
		return variate.Normal{Mean: c.Mean, StdDev: c.StdDev}, nil
	case "exponential":
		return variate.Exponential{Rate: c.Rate}, nil
	case "binomial":
		return variate.Binomial{Trials: c.Trials, Prob: c.Prob}, nil
	case "poisson":
		return variate.Poisson{Rate: c.Rate}, nil
	case "geometric":
		return variate.Geometric{Prob: c.Prob}, nil
	default:
		return nil, errors.Wrapf(variate.ErrInvalidParams, "unknown distribution %q", c.Kind)
	}
}

func (c *requestConfig) request() (variate.Request, error) {
	p, src, err := c.Uniform.params()
	if err != nil {
		return variate.Request{}, err
	}
	d, err := c.Distribution.distribution()
	if err != nil {
		return variate.Request{}, err
	}
	return variate.Request{
		Uniform:      p,
		Source:       src,
		Distribution: d,
		Samples:      c.Samples,
	}, nil
}
