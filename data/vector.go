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

// Package data holds the integer containers shared by the generators.
package data

import (
	"fmt"
	"math"
	"math/big"
)

// Vector wraps a slice of *big.Int elements.
type Vector []*big.Int

// NewVector returns a new Vector instance.
func NewVector(coordinates []*big.Int) Vector {
	return Vector(coordinates)
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))

	for i, c := range v {
		newVec[i] = new(big.Int).Set(c)
	}

	return newVec
}

// CheckRange checks whether all vector elements lie in [0, bound).
// It returns error if at least one element is negative or >= bound.
func (v Vector) CheckRange(bound *big.Int) error {
	for i, c := range v {
		if c.Sign() < 0 || c.Cmp(bound) > -1 {
			return fmt.Errorf("coordinate %d (%s) is not in [0, %s)", i, c, bound)
		}
	}

	return nil
}

// Min returns the smallest element, or nil for an empty vector.
func (v Vector) Min() *big.Int {
	var min *big.Int
	for _, c := range v {
		if min == nil || c.Cmp(min) < 0 {
			min = c
		}
	}
	if min == nil {
		return nil
	}
	return new(big.Int).Set(min)
}

// Max returns the largest element, or nil for an empty vector.
func (v Vector) Max() *big.Int {
	var max *big.Int
	for _, c := range v {
		if max == nil || c.Cmp(max) > 0 {
			max = c
		}
	}
	if max == nil {
		return nil
	}
	return new(big.Int).Set(max)
}

// Distinct returns the number of different values in v.
func (v Vector) Distinct() int {
	seen := make(map[string]struct{}, len(v))
	for _, c := range v {
		seen[c.String()] = struct{}{}
	}
	return len(seen)
}

// Ratios divides every element by m in floating point.
// Elements are expected to lie in [0, m); the quotient is
// kept strictly below 1 even when it rounds up for moduli
// wider than the float64 mantissa.
func (v Vector) Ratios(m *big.Int) []float64 {
	res := make([]float64, len(v))
	mF := new(big.Float).SetInt(m)
	// a single rounding to the float64 mantissa, as in x / m on float64
	q := new(big.Float).SetPrec(53)
	below := math.Nextafter(1, 0)

	for i, c := range v {
		x := new(big.Float).SetInt(c)
		q.Quo(x, mF)
		r, _ := q.Float64()
		if r >= 1 {
			r = below
		}
		res[i] = r
	}

	return res
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	vStr := ""
	for _, yi := range v {
		vStr = vStr + " " + yi.String()
	}
	return vStr
}
