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
	"github.com/fentec-project/rvgen/uniform"
	"github.com/pkg/errors"
)

// Request describes a complete generation: the uniform stream,
// the distribution and the number of samples.
type Request struct {
	Uniform      uniform.Params
	Source       uniform.Source // used by uniform.External only
	Distribution Distribution
	Samples      int
}

// Result holds everything a Request produced.
type Result struct {
	Stream   *uniform.Stream
	Records  []Record
	Consumed int
}

// Run sizes the uniform stream to max(Uniform.Count,
// Distribution.UniformsNeeded(Samples)), generates it and samples
// from it.
//
// Validation errors are returned before anything is generated.
// If the stream runs short, Run returns the partial Result together
// with an *InsufficientUniformsError.
func Run(req Request) (*Result, error) {
	if req.Distribution == nil {
		return nil, errors.Wrap(ErrInvalidParams, "distribution is required")
	}
	if err := req.Distribution.Validate(); err != nil {
		return nil, errors.Wrap(err, req.Distribution.Name())
	}
	if req.Samples <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams, "sample count %d must be positive", req.Samples)
	}

	n := req.Uniform.Count
	if need := req.Distribution.UniformsNeeded(req.Samples); need > n {
		n = need
	}
	log.Debugf("generating %d %v uniforms for %d %s samples", n, req.Uniform.Method, req.Samples, req.Distribution.Name())

	stream, err := uniform.Generate(req.Uniform.WithCount(n), req.Source)
	if err != nil {
		return nil, err
	}

	sampler, err := NewSampler(req.Distribution, stream)
	if err != nil {
		return nil, err
	}
	records, err := sampler.Sample(req.Samples)

	return &Result{
		Stream:   stream,
		Records:  records,
		Consumed: sampler.Consumed(),
	}, err
}
