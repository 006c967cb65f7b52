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

	"github.com/pkg/errors"
)

// Geometric is the number of Bernoulli trials with success
// probability Prob up to and including the first success.
type Geometric struct {
	Prob float64
}

func (g Geometric) Name() string { return "geometric" }

func (g Geometric) Discrete() bool { return true }

// Validate requires 0 < Prob < 1. Prob = 1 is rejected since the
// inverse transform divides by ln(1 - Prob).
func (g Geometric) Validate() error {
	if err := checkFinite(g.Name(), g.Prob); err != nil {
		return err
	}
	if g.Prob <= 0 || g.Prob >= 1 {
		return errors.Wrapf(ErrInvalidParams, "probability %v must be in (0, 1)", g.Prob)
	}
	return nil
}

func (g Geometric) UniformsNeeded(count int) int { return count }

// Transform returns floor(ln(1-u) / ln(1-p)) + 1, saturating at
// the largest int64 when p is so small that the quotient does not
// fit.
func (g Geometric) Transform(u float64) int64 {
	u = clampBelowOne(u)
	q := math.Floor(math.Log1p(-u) / math.Log1p(-g.Prob))
	if q >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(q) + 1
}

// PMF returns P(X = k) = (1-p)^(k-1) p for k >= 1.
func (g Geometric) PMF(k int64) float64 {
	if k < 1 {
		return 0
	}
	return math.Pow(1-g.Prob, float64(k-1)) * g.Prob
}

func (g Geometric) drawer() drawFunc {
	return single(func(u float64) float64 {
		return float64(g.Transform(u))
	})
}
