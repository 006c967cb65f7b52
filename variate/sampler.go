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
	"fmt"

	"github.com/fentec-project/rvgen/uniform"
	"github.com/pkg/errors"
)

// Record is one sample and the uniform(s) it was produced from.
// U2 is set only for Normal samples (Paired). Binomial samples
// keep the first uniform of their block in U1.
type Record struct {
	U1     float64
	U2     float64
	Paired bool
	Value  float64
}

// Int returns the value of a discrete sample.
func (r Record) Int() int64 {
	return int64(r.Value)
}

// Row is one line of the sample table.
type Row struct {
	Index int
	Record
}

// Rows numbers records from 1.
func Rows(records []Record) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{Index: i + 1, Record: r}
	}
	return rows
}

// InsufficientUniformsError reports that a stream ran out of
// uniforms before a batch was complete. The records produced
// before that point are returned alongside it.
type InsufficientUniformsError struct {
	Distribution string
	Requested    int // samples asked for
	Completed    int // samples produced
	Consumed     int // uniforms consumed in total
	Remaining    int // uniforms left, fewer than one step needs
}

func (e *InsufficientUniformsError) Error() string {
	return fmt.Sprintf("insufficient uniforms: %s produced %d of %d samples (%d uniforms consumed, %d left)",
		e.Distribution, e.Completed, e.Requested, e.Consumed, e.Remaining)
}

// AsInsufficientUniforms returns the *InsufficientUniformsError
// in err's chain, if any.
func AsInsufficientUniforms(err error) (*InsufficientUniformsError, bool) {
	var e *InsufficientUniformsError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Sampler draws samples of one distribution from one stream.
// Successive calls to Sample continue where the previous one
// stopped; no uniform is used twice.
type Sampler struct {
	dist   Distribution
	draw   drawFunc
	cursor *uniform.Cursor
}

// NewSampler returns an instance of Sampler. It validates the
// parameters of d.
func NewSampler(d Distribution, s *uniform.Stream) (*Sampler, error) {
	if d == nil {
		return nil, errors.Wrap(ErrInvalidParams, "distribution is required")
	}
	if s == nil {
		return nil, errors.Wrap(ErrInvalidParams, "uniform stream is required")
	}
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(err, d.Name())
	}

	return &Sampler{
		dist:   d,
		draw:   d.drawer(),
		cursor: s.Cursor(),
	}, nil
}

// Sample produces count samples. If the stream is exhausted first,
// it returns the samples produced so far and an
// *InsufficientUniformsError.
func (s *Sampler) Sample(count int) ([]Record, error) {
	if count <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams, "sample count %d must be positive", count)
	}

	records := make([]Record, 0, count)
	for len(records) < count {
		step, ok := s.draw(s.cursor)
		if !ok {
			break
		}
		records = append(records, step...)
	}

	// a Normal pair may overshoot an odd count by one
	if len(records) > count {
		records = records[:count]
	}

	if len(records) < count {
		err := &InsufficientUniformsError{
			Distribution: s.dist.Name(),
			Requested:    count,
			Completed:    len(records),
			Consumed:     s.cursor.Pos(),
			Remaining:    s.cursor.Remaining(),
		}
		log.Debugf("%v", err)
		return records, err
	}

	return records, nil
}

// Consumed returns the number of uniforms consumed so far.
func (s *Sampler) Consumed() int {
	return s.cursor.Pos()
}

// Sample is a shortcut for NewSampler followed by a single
// call to Sample.
func Sample(d Distribution, s *uniform.Stream, count int) ([]Record, error) {
	sampler, err := NewSampler(d, s)
	if err != nil {
		return nil, err
	}
	return sampler.Sample(count)
}
