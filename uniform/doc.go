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

// Package uniform produces finite, reproducible sequences of
// pseudorandom numbers in [0, 1).
//
// It provides congruential generators (mixed and
// multiplicative) whose integer state trail is kept alongside the
// uniforms, and an External method that draws from any Source.
// Arithmetic on the states is exact: all integers are *big.Int.
//
// A Stream is immutable once generated. Consumers walk it with
// a Cursor, which reports exhaustion explicitly instead of
// wrapping around or generating more values.
package uniform
