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
	"gonum.org/v1/gonum/stat/distuv"
)

// Exponential is the exponential distribution with rate lambda,
// sampled by inverse transform.
type Exponential struct {
	Rate float64
}

func (e Exponential) Name() string { return "exponential" }

func (e Exponential) Discrete() bool { return false }

func (e Exponential) Validate() error {
	if err := checkFinite(e.Name(), e.Rate); err != nil {
		return err
	}
	if e.Rate <= 0 {
		return errors.Wrapf(ErrInvalidParams, "rate %v must be positive", e.Rate)
	}
	return nil
}

func (e Exponential) UniformsNeeded(count int) int { return count }

// Transform returns -(1/rate) ln(1-u).
func (e Exponential) Transform(u float64) float64 {
	u = clampBelowOne(u)
	return -(1 / e.Rate) * math.Log(1-u)
}

// PDF returns the density of the distribution at x.
func (e Exponential) PDF(x float64) float64 {
	return distuv.Exponential{Rate: e.Rate}.Prob(x)
}

func (e Exponential) drawer() drawFunc {
	return single(e.Transform)
}
