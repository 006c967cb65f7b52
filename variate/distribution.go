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

	"github.com/fentec-project/rvgen/internal"
	"github.com/fentec-project/rvgen/uniform"
	"github.com/pkg/errors"
)

// ErrInvalidParams is the cause of all validation errors
// returned by this package.
var ErrInvalidParams = internal.ErrInvalidParams

const (
	// logFloor replaces a zero uniform before its logarithm is taken.
	logFloor = 1e-10
	// belowOne replaces a uniform equal to 1 before ln(1-u) is taken.
	belowOne = 1 - 1e-6
)

// Distribution is a probability distribution that can be sampled
// from a stream of uniforms. The set of implementations is closed:
// Normal, Exponential, Binomial, Poisson and Geometric.
type Distribution interface {
	// Name returns the lower-case name of the distribution.
	Name() string
	// Validate checks the parameters of the distribution.
	Validate() error
	// Discrete reports whether samples are integers.
	Discrete() bool
	// UniformsNeeded returns how many uniforms count samples consume.
	UniformsNeeded(count int) int

	drawer() drawFunc
}

// drawFunc consumes uniforms from the cursor and returns the records
// of one step. It returns false, without consuming anything, if the
// cursor does not hold enough uniforms for a whole step.
type drawFunc func(c *uniform.Cursor) ([]Record, bool)

// single builds the drawFunc of distributions that map one
// uniform to one sample.
func single(transform func(u float64) float64) drawFunc {
	return func(c *uniform.Cursor) ([]Record, bool) {
		u, ok := c.Next()
		if !ok {
			return nil, false
		}
		return []Record{{U1: u, Value: transform(u)}}, true
	}
}

func checkFinite(name string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidParams, "%s parameters must be finite", name)
		}
	}
	return nil
}

// clampBelowOne keeps ln(1-u) finite.
func clampBelowOne(u float64) float64 {
	if u >= 1 {
		return belowOne
	}
	return u
}
