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
	"fmt"
	"math/big"
	"strings"

	"github.com/fentec-project/rvgen/internal"
	"github.com/pkg/errors"
)

// ErrInvalidParams is the cause of all validation errors
// returned by this package.
var ErrInvalidParams = internal.ErrInvalidParams

// ErrSourceRange is returned when a Source yields a value
// outside [0, 1).
var ErrSourceRange = internal.ErrSourceRange

// Method selects how a Stream is produced.
type Method int

const (
	// Mixed is the recurrence X = (a*X + c) mod m.
	Mixed Method = iota
	// Multiplicative is the recurrence X = (a*X) mod m.
	Multiplicative
	// External draws values from a Source and keeps no states.
	External
)

var methodNames = map[Method]string{
	Mixed:          "mixed",
	Multiplicative: "multiplicative",
	External:       "external",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod parses the lower-case method name.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidParams, "unknown method %q", s)
}

// Params configures a generation request.
type Params struct {
	Method     Method
	Seed       *big.Int // X0
	Multiplier *big.Int // a
	Increment  *big.Int // c, Mixed only
	Modulus    *big.Int // m
	Count      int      // N
}

// NewMixed returns the parameters of a mixed congruential stream.
func NewMixed(seed, a, c, m *big.Int, n int) Params {
	return Params{
		Method:     Mixed,
		Seed:       seed,
		Multiplier: a,
		Increment:  c,
		Modulus:    m,
		Count:      n,
	}
}

// NewMultiplicative returns the parameters of a multiplicative
// congruential stream.
func NewMultiplicative(seed, a, m *big.Int, n int) Params {
	return Params{
		Method:     Multiplicative,
		Seed:       seed,
		Multiplier: a,
		Modulus:    m,
		Count:      n,
	}
}

// NewExternal returns the parameters of a stream of n values
// drawn from a Source.
func NewExternal(n int) Params {
	return Params{Method: External, Count: n}
}

// WithCount returns a copy of p that produces n values.
func (p Params) WithCount(n int) Params {
	p.Count = n
	return p
}

// Validate checks p against the domain of its method.
//
// The multiplicative check (seed and m odd, m not a multiple of 5)
// is a necessary condition for a long period only; the multiplier
// is not verified to be a primitive root.
func (p Params) Validate() error {
	if p.Count <= 0 {
		return errors.Wrapf(ErrInvalidParams, "count N = %d must be positive", p.Count)
	}

	switch p.Method {
	case External:
		return nil
	case Mixed, Multiplicative:
	default:
		return errors.Wrapf(ErrInvalidParams, "unknown method %v", p.Method)
	}

	if p.Modulus == nil || p.Seed == nil || p.Multiplier == nil {
		return errors.Wrap(ErrInvalidParams, "seed, multiplier and modulus are required")
	}
	if p.Modulus.Sign() <= 0 {
		return errors.Wrapf(ErrInvalidParams, "modulus m = %s must be positive", p.Modulus)
	}
	if p.Seed.Sign() < 0 || p.Seed.Cmp(p.Modulus) >= 0 {
		return errors.Wrapf(ErrInvalidParams, "seed X0 = %s must be in [0, %s)", p.Seed, p.Modulus)
	}
	if p.Multiplier.Sign() <= 0 || p.Multiplier.Cmp(p.Modulus) >= 0 {
		return errors.Wrapf(ErrInvalidParams, "multiplier a = %s must be in (0, %s)", p.Multiplier, p.Modulus)
	}

	if p.Method == Mixed {
		if p.Increment == nil {
			return errors.Wrap(ErrInvalidParams, "increment is required for the mixed method")
		}
		if p.Increment.Sign() < 0 || p.Increment.Cmp(p.Modulus) >= 0 {
			return errors.Wrapf(ErrInvalidParams, "increment c = %s must be in [0, %s)", p.Increment, p.Modulus)
		}
		return nil
	}

	if p.Seed.Bit(0) == 0 || p.Modulus.Bit(0) == 0 {
		return errors.Wrapf(ErrInvalidParams,
			"seed X0 = %s and modulus m = %s must be odd for the multiplicative method", p.Seed, p.Modulus)
	}
	if new(big.Int).Mod(p.Modulus, big.NewInt(5)).Sign() == 0 {
		return errors.Wrapf(ErrInvalidParams,
			"modulus m = %s must not be a multiple of 5 for the multiplicative method", p.Modulus)
	}

	return nil
}

// increment returns c, or 0 for the multiplicative method.
func (p Params) increment() *big.Int {
	if p.Method == Mixed {
		return p.Increment
	}
	return big.NewInt(0)
}
