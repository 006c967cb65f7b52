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

// Package summary computes the descriptive statistics shown next to
// uniform and sample tables.
package summary

import (
	"math/big"

	"github.com/fentec-project/rvgen/uniform"
	"github.com/fentec-project/rvgen/variate"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// ErrEmpty is returned when there is nothing to summarize.
var ErrEmpty = errors.New("nothing to summarize")

// UniformSummary describes a uniform stream. The state fields
// are nil for external streams.
type UniformSummary struct {
	Count     int
	MeanR     float64
	MinR      float64
	MaxR      float64
	DistinctR int
	DistinctX int
	MinX      *big.Int
	MaxX      *big.Int
}

// Uniforms summarizes the stream s.
func Uniforms(s *uniform.Stream) (*UniformSummary, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmpty
	}
	r := stats.Float64Data(s.Uniforms())

	mean, err := stats.Mean(r)
	if err != nil {
		return nil, errors.Wrap(err, "mean of uniforms")
	}
	min, err := stats.Min(r)
	if err != nil {
		return nil, errors.Wrap(err, "min of uniforms")
	}
	max, err := stats.Max(r)
	if err != nil {
		return nil, errors.Wrap(err, "max of uniforms")
	}

	sum := &UniformSummary{
		Count:     len(r),
		MeanR:     mean,
		MinR:      min,
		MaxR:      max,
		DistinctR: distinct(r),
	}
	if states, ok := s.States(); ok {
		sum.DistinctX = states.Distinct()
		sum.MinX = states.Min()
		sum.MaxX = states.Max()
	}
	return sum, nil
}

// SampleSummary describes a batch of samples. StdDev is set for
// continuous distributions and Mode for discrete ones.
type SampleSummary struct {
	Count    int
	Discrete bool
	Mean     float64
	StdDev   float64
	Mode     float64
	Min      float64
	Max      float64
}

// Samples summarizes records. StdDev is the population standard
// deviation. Mode is the most frequent value, the smallest one on
// a tie.
func Samples(records []variate.Record, discrete bool) (*SampleSummary, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	x := make(stats.Float64Data, len(records))
	for i, r := range records {
		x[i] = r.Value
	}

	sum := &SampleSummary{Count: len(x), Discrete: discrete}
	var err error
	if sum.Mean, err = stats.Mean(x); err != nil {
		return nil, errors.Wrap(err, "mean of samples")
	}
	if sum.Min, err = stats.Min(x); err != nil {
		return nil, errors.Wrap(err, "min of samples")
	}
	if sum.Max, err = stats.Max(x); err != nil {
		return nil, errors.Wrap(err, "max of samples")
	}

	if !discrete {
		if sum.StdDev, err = stats.StandardDeviationPopulation(x); err != nil {
			return nil, errors.Wrap(err, "standard deviation of samples")
		}
		return sum, nil
	}

	modes, err := stats.Mode(x)
	if err != nil {
		return nil, errors.Wrap(err, "mode of samples")
	}
	// no single value is more frequent than the rest
	sum.Mode = sum.Min
	if len(modes) > 0 {
		sum.Mode = modes[0]
	}
	return sum, nil
}

func distinct(x []float64) int {
	seen := make(map[float64]struct{}, len(x))
	for _, v := range x {
		seen[v] = struct{}{}
	}
	return len(seen)
}
