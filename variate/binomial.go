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

// Binomial is the number of successes in Trials independent
// trials with success probability Prob. Each sample consumes a
// block of Trials uniforms; a uniform u <= Prob is a success.
type Binomial struct {
	Trials int
	Prob   float64
}

func (b Binomial) Name() string { return "binomial" }

func (b Binomial) Discrete() bool { return true }

func (b Binomial) Validate() error {
	if err := checkFinite(b.Name(), b.Prob); err != nil {
		return err
	}
	if b.Trials <= 0 {
		return errors.Wrapf(ErrInvalidParams, "number of trials %d must be positive", b.Trials)
	}
	if b.Prob < 0 || b.Prob > 1 {
		return errors.Wrapf(ErrInvalidParams, "probability %v must be in [0, 1]", b.Prob)
	}
	return nil
}

// UniformsNeeded returns count * Trials, saturating at the
// largest int.
func (b Binomial) UniformsNeeded(count int) int {
	if b.Trials > 0 && count > math.MaxInt/b.Trials {
		return math.MaxInt
	}
	return count * b.Trials
}

// Count returns the number of successes in a block of uniforms.
func (b Binomial) Count(block []float64) int64 {
	var successes int64
	for _, u := range block {
		if u <= b.Prob {
			successes++
		}
	}
	return successes
}

// PMF returns P(X = k).
func (b Binomial) PMF(k int64) float64 {
	return distuv.Binomial{N: float64(b.Trials), P: b.Prob}.Prob(float64(k))
}

// drawer records only the first uniform of each block.
func (b Binomial) drawer() drawFunc {
	return func(c *uniform.Cursor) ([]Record, bool) {
		block, ok := c.Take(b.Trials)
		if !ok {
			return nil, false
		}
		return []Record{{U1: block[0], Value: float64(b.Count(block))}}, true
	}
}
