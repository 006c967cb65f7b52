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
	"flag"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/fentec-project/rvgen/uniform"
	"github.com/fentec-project/rvgen/variate"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedRequest = `
uniform:
  method: mixed
  seed: "7"
  multiplier: "5"
  increment: "3"
  modulus: "16"
  count: 6
distribution:
  kind: binomial
  trials: 5
  prob: 0.5
samples: 2
`

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig([]byte(mixedRequest))
	require.NoError(t, err)

	req, err := cfg.request()
	require.NoError(t, err)
	assert.Equal(t, uniform.Mixed, req.Uniform.Method)
	assert.Equal(t, int64(7), req.Uniform.Seed.Int64())
	assert.Equal(t, int64(3), req.Uniform.Increment.Int64())
	assert.Equal(t, 6, req.Uniform.Count)
	assert.Equal(t, variate.Binomial{Trials: 5, Prob: 0.5}, req.Distribution)
	assert.Equal(t, 2, req.Samples)
	assert.Nil(t, req.Source)

	res, err := variate.Run(req)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Stream.Len())
}

func TestParseConfig_WideModulus(t *testing.T) {
	cfg, err := parseConfig([]byte(`
uniform:
  method: multiplicative
  seed: "12345678901234567891"
  multiplier: "6364136223846793005"
  modulus: "340282366920938463463374607431768211297"
  count: 3
`))
	require.NoError(t, err)

	p, src, err := cfg.Uniform.params()
	require.NoError(t, err)
	assert.Nil(t, src)
	assert.Equal(t, "340282366920938463463374607431768211297", p.Modulus.String())
	assert.Equal(t, "12345678901234567891", p.Seed.String())
}

func TestParseConfig_Errors(t *testing.T) {
	_, err := parseConfig([]byte("uniform: [1, 2"))
	assert.Error(t, err)

	var tests = []struct {
		name string
		cfg  uniformConfig
	}{
		{"unknown method", uniformConfig{Method: "quadratic"}},
		{"missing seed", uniformConfig{Method: "mixed", Multiplier: "5", Increment: "3", Modulus: "16"}},
		{"bad modulus", uniformConfig{Method: "mixed", Seed: "1", Multiplier: "5", Increment: "3", Modulus: "sixteen"}},
		{"missing increment", uniformConfig{Method: "mixed", Seed: "1", Multiplier: "5", Modulus: "16"}},
		{"unknown source", uniformConfig{Method: "external", Source: "dice"}},
		{"short key", uniformConfig{Method: "external", Source: "salsa20", Key: "abcd"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := test.cfg.params()
			assert.Equal(t, uniform.ErrInvalidParams, errors.Cause(err))
		})
	}

	_, err = (&distributionConfig{Kind: "cauchy"}).distribution()
	assert.Equal(t, variate.ErrInvalidParams, errors.Cause(err))
}

func TestUniformConfig_Sources(t *testing.T) {
	c := uniformConfig{Method: "External", SourceSeed: 9, Count: 4}
	p, src, err := c.params()
	require.NoError(t, err)
	assert.Equal(t, uniform.External, p.Method)
	assert.IsType(t, &uniform.MathSource{}, src)

	c = uniformConfig{
		Method: "external",
		Source: "salsa20",
		Key:    "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		Count:  4,
	}
	_, src, err = c.params()
	require.NoError(t, err)
	assert.IsType(t, &uniform.Keystream{}, src)
}

func TestDistributionConfig(t *testing.T) {
	var tests = []struct {
		cfg  distributionConfig
		want variate.Distribution
	}{
		{distributionConfig{Kind: "normal", Mean: 1, StdDev: 2}, variate.Normal{Mean: 1, StdDev: 2}},
		{distributionConfig{Kind: "Exponential", Rate: 3}, variate.Exponential{Rate: 3}},
		{distributionConfig{Kind: "binomial", Trials: 4, Prob: 0.2}, variate.Binomial{Trials: 4, Prob: 0.2}},
		{distributionConfig{Kind: "poisson", Rate: 2.5}, variate.Poisson{Rate: 2.5}},
		{distributionConfig{Kind: "geometric", Prob: 0.3}, variate.Geometric{Prob: 0.3}},
	}

	for _, test := range tests {
		t.Run(test.cfg.Kind, func(t *testing.T) {
			d, err := test.cfg.distribution()
			require.NoError(t, err)
			assert.Equal(t, test.want, d)
		})
	}
}

func TestRequestFlags_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yml")
	require.NoError(t, ioutil.WriteFile(path, []byte(mixedRequest), 0o644))

	var f requestFlags
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	f.setUniformFlags(fs)
	f.setDistributionFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-seed", "9", "-dist", "geometric", "-prob", "0.25", "-samples", "4"}))

	cfg, err := f.load(fs)
	require.NoError(t, err)
	assert.Equal(t, "9", cfg.Uniform.Seed)
	assert.Equal(t, "16", cfg.Uniform.Modulus, "kept from the file")
	assert.Equal(t, 6, cfg.Uniform.Count, "kept from the file")
	assert.Equal(t, "geometric", cfg.Distribution.Kind)
	assert.Equal(t, 0.25, cfg.Distribution.Prob)
	assert.Equal(t, 5, cfg.Distribution.Trials, "kept from the file")
	assert.Equal(t, 4, cfg.Samples)
}

func TestRequestFlags_NoFile(t *testing.T) {
	var f requestFlags
	fs := flag.NewFlagSet("uniform", flag.ContinueOnError)
	f.setUniformFlags(fs)
	require.NoError(t, fs.Parse([]string{"-method", "multiplicative", "-seed", "1", "-a", "3", "-m", "31", "-n", "5"}))

	cfg, err := f.load(fs)
	require.NoError(t, err)
	p, _, err := cfg.Uniform.params()
	require.NoError(t, err)
	s, err := uniform.Generate(p, nil)
	require.NoError(t, err)
	states, _ := s.States()
	require.Len(t, states, 5)
	for i, want := range []int64{3, 9, 27, 19, 26} {
		assert.Equal(t, want, states[i].Int64())
	}

	_, err = (&requestFlags{configPath: filepath.Join(t.TempDir(), "missing.yml")}).load(fs)
	assert.Error(t, err)
}

func TestRequestConfig_SetInvalid(t *testing.T) {
	cfg := new(requestConfig)
	assert.Error(t, cfg.set("n", "many"))
	assert.Error(t, cfg.set("rate", "fast"))
	assert.NoError(t, cfg.set("profiledir", "/tmp"))
}
