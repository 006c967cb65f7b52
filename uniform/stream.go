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

package uniform

import (
	"math/big"

	"github.com/fentec-project/rvgen/data"
	"github.com/pkg/errors"
)

// Stream is a generated sequence of uniforms in [0, 1) together
// with the integer states that produced them.
type Stream struct {
	method   Method
	modulus  *big.Int
	states   data.Vector
	uniforms []float64
}

// Row is one line of the uniform table: the 1-based index,
// the state X_i (nil for External) and R_i.
type Row struct {
	Index   int
	State   *big.Int
	Uniform float64
}

// Generate validates p and produces a new Stream of p.Count values.
// src is used only by the External method and may be nil otherwise.
// On a validation error nothing is generated.
func Generate(p Params, src Source) (*Stream, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if p.Method == External {
		if src == nil {
			return nil, errors.Wrap(ErrInvalidParams, "external method requires a uniform source")
		}
		return generateExternal(p.Count, src)
	}

	m := new(big.Int).Set(p.Modulus)
	c := p.increment()
	states := make(data.Vector, p.Count)
	x := p.Seed
	for i := range states {
		next := new(big.Int).Mul(p.Multiplier, x)
		next.Add(next, c)
		next.Mod(next, m)
		states[i] = next
		x = next
	}
	if err := states.CheckRange(m); err != nil {
		return nil, errors.Wrap(err, "state trail")
	}

	return &Stream{
		method:   p.Method,
		modulus:  m,
		states:   states,
		uniforms: states.Ratios(m),
	}, nil
}

func generateExternal(n int, src Source) (*Stream, error) {
	uniforms := make([]float64, n)
	for i := range uniforms {
		u := src.NextUniform()
		if !(u >= 0 && u < 1) {
			return nil, errors.Wrapf(ErrSourceRange, "value %d is %v", i+1, u)
		}
		uniforms[i] = u
	}
	return &Stream{method: External, uniforms: uniforms}, nil
}

// FromValues returns an External stream over fixed uniforms,
// for instance ones recorded from an earlier run.
// Every value must lie in [0, 1).
func FromValues(values []float64) (*Stream, error) {
	if len(values) == 0 {
		return nil, errors.Wrap(ErrInvalidParams, "at least one value is required")
	}
	return generateExternal(len(values), &replay{values: values})
}

// replay yields a fixed slice of values in order.
type replay struct {
	values []float64
	pos    int
}

func (r *replay) NextUniform() float64 {
	u := r.values[r.pos]
	r.pos++
	return u
}

// Method returns the method the stream was generated with.
func (s *Stream) Method() Method {
	return s.method
}

// Modulus returns m, or nil for External streams.
func (s *Stream) Modulus() *big.Int {
	if s.modulus == nil {
		return nil
	}
	return new(big.Int).Set(s.modulus)
}

// Len returns the number of uniforms in the stream.
func (s *Stream) Len() int {
	return len(s.uniforms)
}

// Uniforms returns a copy of the generated uniforms.
func (s *Stream) Uniforms() []float64 {
	return append([]float64(nil), s.uniforms...)
}

// States returns a copy of the state trail X_1..X_N.
// The second return value is false for External streams,
// whose states are not applicable.
func (s *Stream) States() (data.Vector, bool) {
	if s.states == nil {
		return nil, false
	}
	return s.states.Copy(), true
}

// Rows returns the uniform table of the stream.
func (s *Stream) Rows() []Row {
	rows := make([]Row, len(s.uniforms))
	for i, u := range s.uniforms {
		rows[i] = Row{Index: i + 1, Uniform: u}
		if s.states != nil {
			rows[i].State = new(big.Int).Set(s.states[i])
		}
	}
	return rows
}

// Cursor returns a new cursor positioned at the first uniform.
func (s *Stream) Cursor() *Cursor {
	return &Cursor{uniforms: s.uniforms}
}
