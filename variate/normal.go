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

// Normal is the Normal (Gaussian) distribution with the given
// mean and standard deviation. It is sampled with the Box-Muller
// transform, which turns a pair of uniforms into a pair of
// independent samples.
type Normal struct {
	Mean   float64
	StdDev float64
}

// Name returns "normal".
func (n Normal) Name() string { return "normal" }

// Discrete returns false.
func (n Normal) Discrete() bool { return false }

// Validate requires a positive standard deviation.
func (n Normal) Validate() error {
	if err := checkFinite(n.Name(), n.Mean, n.StdDev); err != nil {
		return err
	}
	if n.StdDev <= 0 {
		return errors.Wrapf(ErrInvalidParams, "standard deviation %v must be positive", n.StdDev)
	}
	return nil
}

// UniformsNeeded returns count rounded up to an even number,
// since samples are produced two at a time.
func (n Normal) UniformsNeeded(count int) int {
	return count + count%2
}

// Pair maps the uniforms (u1, u2) to two samples:
//
//	r  = sqrt(-2 ln u1)
//	x0 = mean + stddev * r cos(2 pi u2)
//	x1 = mean + stddev * r sin(2 pi u2)
//
// A zero u1 is raised to a small positive value so that the
// logarithm stays finite.
func (n Normal) Pair(u1, u2 float64) (float64, float64) {
	if u1 == 0 {
		u1 = logFloor
	}
	r := math.Sqrt(-2 * math.Log(u1))
	z0 := r * math.Cos(2*math.Pi*u2)
	z1 := r * math.Sin(2*math.Pi*u2)
	return n.Mean + n.StdDev*z0, n.Mean + n.StdDev*z1
}

// PDF returns the density of the distribution at x.
func (n Normal) PDF(x float64) float64 {
	return distuv.Normal{Mu: n.Mean, Sigma: n.StdDev}.Prob(x)
}

func (n Normal) drawer() drawFunc {
	return func(c *uniform.Cursor) ([]Record, bool) {
		pair, ok := c.Take(2)
		if !ok {
			return nil, false
		}
		x0, x1 := n.Pair(pair[0], pair[1])
		return []Record{
			{U1: pair[0], U2: pair[1], Paired: true, Value: x0},
			{U1: pair[0], U2: pair[1], Paired: true, Value: x1},
		}, true
	}
}
