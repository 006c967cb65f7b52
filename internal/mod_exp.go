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

package internal

import "math/big"

// ModExp calculates g^x mod m for x >= 0.
// For m == 1 the result is 0.
func ModExp(g, x, m *big.Int) *big.Int {
	return new(big.Int).Exp(g, x, m)
}

// GeometricSum calculates (1 + g + g^2 + ... + g^(n-1)) mod m
// without a modular inverse, so it is valid for any g and m > 0.
// The sum equals (g^n - 1) / (g - 1), evaluated modulo m*(g-1)
// so that the division is exact.
func GeometricSum(g, n, m *big.Int) *big.Int {
	one := big.NewInt(1)
	gMinusOne := new(big.Int).Sub(g, one)
	if gMinusOne.Sign() == 0 {
		return new(big.Int).Mod(n, m)
	}
	wide := new(big.Int).Mul(m, gMinusOne)
	wide.Abs(wide)
	ret := ModExp(g, n, wide)
	ret.Sub(ret, one)
	if ret.Sign() < 0 {
		ret.Add(ret, wide)
	}
	ret.Quo(ret, gMinusOne)
	return ret.Mod(ret, m)
}
