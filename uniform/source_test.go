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
	"testing"

	"github.com/fentec-project/rvgen/uniform"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constSource float64

func (c constSource) NextUniform() float64 {
	return float64(c)
}

type countingSource struct {
	calls int
}

func (c *countingSource) NextUniform() float64 {
	c.calls++
	return 0.5
}

func TestGenerate_External(t *testing.T) {
	src := &countingSource{}
	s, err := uniform.Generate(uniform.NewExternal(7), src)
	require.NoError(t, err)

	assert.Equal(t, 7, src.calls, "source should be called exactly N times")
	assert.Equal(t, uniform.External, s.Method())
	assert.Nil(t, s.Modulus())

	states, ok := s.States()
	assert.False(t, ok)
	assert.Nil(t, states)

	for _, row := range s.Rows() {
		assert.Nil(t, row.State)
		assert.Equal(t, 0.5, row.Uniform)
	}
}

func TestGenerate_ExternalErrors(t *testing.T) {
	_, err := uniform.Generate(uniform.NewExternal(3), nil)
	assert.Equal(t, uniform.ErrInvalidParams, errors.Cause(err))

	_, err = uniform.Generate(uniform.NewExternal(3), constSource(1))
	assert.Equal(t, uniform.ErrSourceRange, errors.Cause(err))

	_, err = uniform.Generate(uniform.NewExternal(3), constSource(-0.5))
	assert.Equal(t, uniform.ErrSourceRange, errors.Cause(err))
}

func TestFromValues(t *testing.T) {
	s, err := uniform.FromValues([]float64{0, 0.5, 0.999})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 0.999}, s.Uniforms())

	_, err = uniform.FromValues([]float64{0.5, 1})
	assert.Equal(t, uniform.ErrSourceRange, errors.Cause(err))

	_, err = uniform.FromValues(nil)
	assert.Equal(t, uniform.ErrInvalidParams, errors.Cause(err))
}

func TestSources(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i * 7)
	}

	var tests = []struct {
		name string
		make func() uniform.Source
	}{
		{"MathSource", func() uniform.Source { return uniform.NewMathSource(56) }},
		{"Keystream", func() uniform.Source { return uniform.NewKeystream(&key) }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			const n = 10000
			s1, err := uniform.Generate(uniform.NewExternal(n), test.make())
			require.NoError(t, err)
			s2, err := uniform.Generate(uniform.NewExternal(n), test.make())
			require.NoError(t, err)

			us := s1.Uniforms()
			assert.Equal(t, us, s2.Uniforms(), "equal seeds should give equal sequences")

			sum := 0.0
			for _, u := range us {
				assert.True(t, u >= 0 && u < 1)
				sum += u
			}
			mean := sum / n
			assert.True(t, mean > 0.48 && mean < 0.52, "mean of uniforms is %v", mean)
		})
	}
}

func TestKeystream_KeyChangesSequence(t *testing.T) {
	var k1, k2 [32]byte
	k2[0] = 1

	a := uniform.NewKeystream(&k1)
	b := uniform.NewKeystream(&k2)
	same := 0
	for i := 0; i < 16; i++ {
		if a.NextUniform() == b.NextUniform() {
			same++
		}
	}
	assert.Equal(t, 0, same)
}
