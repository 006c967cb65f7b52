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

package variate

import (
	"math"

	"github.com/fentec-project/rvgen/uniform"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// minKMax is the smallest search ceiling of the inverse transform.
const minKMax = 10

// tableCutoff stops the probability table once the CDF exceeds it
// (and k is past the rate).
const tableCutoff = 0.99999

// MaxPoissonRate bounds the rate so that the cumulative table,
// which holds KMax()+1 entries, stays small.
const MaxPoissonRate = 1e6

// Poisson is the Poisson distribution with rate lambda, sampled
// by inverse transform over its cumulative distribution: the sample
// for u is the smallest k with CDF(k-1) <= u < CDF(k).
type Poisson struct {
	Rate float64
}

// TableRow is one line of the probability table of a
// Poisson distribution.
type TableRow struct {
	K   int64
	PMF float64 // P(X = k)
	CDF float64 // P(X <= k)
}

func (p Poisson) Name() string { return "poisson" }

func (p Poisson) Discrete() bool { return true }

func (p Poisson) Validate() error {
	if err := checkFinite(p.Name(), p.Rate); err != nil {
		return err
	}
	if p.Rate <= 0 {
		return errors.Wrapf(ErrInvalidParams, "rate %v must be positive", p.Rate)
	}
	if p.Rate > MaxPoissonRate {
		return errors.Wrapf(ErrInvalidParams, "rate %v exceeds %v", p.Rate, MaxPoissonRate)
	}
	return nil
}

func (p Poisson) UniformsNeeded(count int) int { return count }

// KMax returns the search ceiling max(10, ceil(rate + 5 sqrt(rate))).
// Uniforms beyond CDF(KMax) map to KMax.
func (p Poisson) KMax() int64 {
	k := int64(math.Ceil(p.Rate + 5*math.Sqrt(p.Rate)))
	if k < minKMax {
		return minKMax
	}
	return k
}

// CDF returns P(X <= k).
func (p Poisson) CDF(k int64) float64 {
	return distuv.Poisson{Lambda: p.Rate}.CDF(float64(k))
}

// PMF returns P(X = k).
func (p Poisson) PMF(k int64) float64 {
	return distuv.Poisson{Lambda: p.Rate}.Prob(float64(k))
}

// Quantile returns the sample for uniform u.
func (p Poisson) Quantile(u float64) int64 {
	k, _ := p.cumulative().search(u)
	return k
}

// Table returns the rows k = 0, 1, ... up to KMax()+1, stopping
// early once the CDF exceeds 0.99999 past the rate.
func (p Poisson) Table() []TableRow {
	d := distuv.Poisson{Lambda: p.Rate}
	last := p.KMax() + 1
	rows := make([]TableRow, 0, last+1)
	for k := int64(0); k <= last; k++ {
		row := TableRow{
			K:   k,
			PMF: d.Prob(float64(k)),
			CDF: d.CDF(float64(k)),
		}
		rows = append(rows, row)
		if row.CDF > tableCutoff && float64(k) > p.Rate {
			break
		}
	}
	return rows
}

// cumulative holds CDF(0..kMax), computed once per sampler.
type cumulative struct {
	kMax int64
	cdf  []float64
}

func (p Poisson) cumulative() cumulative {
	d := distuv.Poisson{Lambda: p.Rate}
	kMax := p.KMax()
	cdf := make([]float64, kMax+1)
	for k := range cdf {
		cdf[k] = d.CDF(float64(k))
	}
	return cumulative{kMax: kMax, cdf: cdf}
}

// search returns the k with CDF(k-1) <= u < CDF(k), or kMax and
// false if u lies beyond CDF(kMax).
func (c cumulative) search(u float64) (int64, bool) {
	lower := 0.0
	for k, upper := range c.cdf {
		if lower <= u && u < upper {
			return int64(k), true
		}
		lower = upper
	}
	return c.kMax, false
}

func (p Poisson) drawer() drawFunc {
	table := p.cumulative()
	return func(c *uniform.Cursor) ([]Record, bool) {
		u, ok := c.Next()
		if !ok {
			return nil, false
		}
		k, found := table.search(u)
		if !found {
			log.Debugf("poisson(%v): u = %v exceeds CDF(%d), using k_max", p.Rate, u, table.kMax)
		}
		return []Record{{U1: u, Value: float64(k)}}, true
	}
}
