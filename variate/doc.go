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

// Package variate transforms uniforms into samples from named
// probability distributions.
//
// Package variate provides the Distribution interface, implemented by
// Normal, Exponential, Binomial, Poisson and Geometric, and a Sampler
// that walks a uniform.Stream with a cursor. Every Record names the
// uniform(s) it was produced from, and the number of uniforms a batch
// needs can be computed up front with UniformsNeeded, so that the
// stream can be sized before sampling.
//
// Running out of uniforms is not fatal: Sample returns the records
// produced so far together with an *InsufficientUniformsError.
package variate
