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

package uniform_test

import (
	"math/big"
	"testing"

	"github.com/fentec-project/rvgen/uniform"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleLength_FullPeriod(t *testing.T) {
	// 3 is a primitive root of 31, so the period is 30
	p := uniform.NewMultiplicative(big.NewInt(1), big.NewInt(3), big.NewInt(31), 60)

	n, repeated, err := uniform.CycleLength(p, 1000)
	require.NoError(t, err)
	assert.True(t, repeated)
	assert.Equal(t, 30, n)

	s, err := uniform.Generate(p, nil)
	require.NoError(t, err)
	states, _ := s.States()

	seen := make(map[int64]bool)
	distinct := 0
	for _, x := range states {
		if seen[x.Int64()] {
			break
		}
		seen[x.Int64()] = true
		distinct++
	}
	assert.Equal(t, 30, distinct)
	assert.Equal(t, states[:30].String(), states[30:].String(), "the trail should repeat with period 30")
}

func TestCycleLength_Mixed(t *testing.T) {
	// c odd, a-1 divisible by 4 and m a power of two: full period m
	p := uniform.NewMixed(big.NewInt(0), big.NewInt(5), big.NewInt(3), big.NewInt(64), 1)
	n, repeated, err := uniform.CycleLength(p, 1000)
	require.NoError(t, err)
	assert.True(t, repeated)
	assert.Equal(t, 64, n)

	n, repeated, err = uniform.CycleLength(p, 10)
	require.NoError(t, err)
	assert.False(t, repeated)
	assert.Equal(t, 10, n)
}

func TestStateAt(t *testing.T) {
	var tests = []struct {
		name   string
		params uniform.Params
	}{
		{"Mixed", uniform.NewMixed(big.NewInt(7), big.NewInt(5), big.NewInt(3), big.NewInt(16), 40)},
		{"Mixed, a=1", uniform.NewMixed(big.NewInt(2), big.NewInt(1), big.NewInt(5), big.NewInt(11), 40)},
		{"Multiplicative", uniform.NewMultiplicative(big.NewInt(1), big.NewInt(16807), big.NewInt(2147483647), 40)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := uniform.Generate(test.params, nil)
			require.NoError(t, err)
			states, _ := s.States()

			x0, err := uniform.StateAt(test.params, big.NewInt(0))
			require.NoError(t, err)
			assert.Equal(t, 0, x0.Cmp(test.params.Seed))

			for i := range states {
				x, err := uniform.StateAt(test.params, big.NewInt(int64(i+1)))
				require.NoError(t, err)
				assert.Equal(t, 0, x.Cmp(states[i]), "state %d: want %s have %s", i+1, states[i], x)
			}
		})
	}
}

func TestStateAt_Errors(t *testing.T) {
	_, err := uniform.StateAt(uniform.NewExternal(1), big.NewInt(3))
	assert.Equal(t, uniform.ErrInvalidParams, errors.Cause(err))

	p := uniform.NewMixed(big.NewInt(7), big.NewInt(5), big.NewInt(3), big.NewInt(16), 1)
	_, err = uniform.StateAt(p, big.NewInt(-1))
	assert.Equal(t, uniform.ErrInvalidParams, errors.Cause(err))

	_, _, err = uniform.CycleLength(uniform.NewExternal(1), 10)
	assert.Equal(t, uniform.ErrInvalidParams, errors.Cause(err))
}
