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

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func naiveGeometricSum(g, n, m int64) int64 {
	sum, pow := int64(0), int64(1)
	for i := int64(0); i < n; i++ {
		sum = (sum + pow) % m
		pow = (pow * g) % m
	}
	return sum
}

func TestModExp(t *testing.T) {
	assert.Equal(t, int64(1), ModExp(big.NewInt(3), big.NewInt(0), big.NewInt(31)).Int64())
	assert.Equal(t, int64(26), ModExp(big.NewInt(3), big.NewInt(5), big.NewInt(31)).Int64())
	assert.Equal(t, int64(0), ModExp(big.NewInt(3), big.NewInt(5), big.NewInt(1)).Int64())
}

func TestGeometricSum(t *testing.T) {
	var tests = []struct {
		g, m int64
	}{
		{5, 16},
		{3, 31},
		{1, 17},
		{0, 9},
		{4, 12},
		{16807, 2147483647},
	}

	for _, test := range tests {
		for n := int64(0); n < 40; n++ {
			got := GeometricSum(big.NewInt(test.g), big.NewInt(n), big.NewInt(test.m))
			assert.Equal(t, naiveGeometricSum(test.g, n, test.m), got.Int64(),
				"g = %d, n = %d, m = %d", test.g, n, test.m)
		}
	}
}
