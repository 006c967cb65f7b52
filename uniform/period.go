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

	"github.com/fentec-project/rvgen/internal"
	"github.com/pkg/errors"
)

// CycleLength counts the distinct states X_1, X_2, ... the recurrence
// visits before any state repeats, looking at most limit steps ahead.
// The second return value is false if no repetition was seen within
// limit steps.
func CycleLength(p Params, limit int) (int, bool, error) {
	if p.Method == External {
		return 0, false, errors.Wrap(ErrInvalidParams, "external streams have no period")
	}
	if err := p.WithCount(1).Validate(); err != nil {
		return 0, false, err
	}

	c := p.increment()
	seen := make(map[string]struct{})
	x := new(big.Int).Set(p.Seed)
	for i := 0; i < limit; i++ {
		x.Mul(p.Multiplier, x)
		x.Add(x, c)
		x.Mod(x, p.Modulus)
		key := x.String()
		if _, ok := seen[key]; ok {
			return len(seen), true, nil
		}
		seen[key] = struct{}{}
	}
	return len(seen), false, nil
}

// StateAt computes X_n directly, without walking the recurrence:
//
//	X_n = a^n * X_0 + c * (1 + a + ... + a^(n-1)) mod m
//
// StateAt(p, 0) is the seed.
func StateAt(p Params, n *big.Int) (*big.Int, error) {
	if p.Method == External {
		return nil, errors.Wrap(ErrInvalidParams, "external streams have no states")
	}
	if err := p.WithCount(1).Validate(); err != nil {
		return nil, err
	}
	if n.Sign() < 0 {
		return nil, errors.Wrapf(ErrInvalidParams, "step n = %s must not be negative", n)
	}

	x := internal.ModExp(p.Multiplier, n, p.Modulus)
	x.Mul(x, p.Seed)

	c := p.increment()
	if c.Sign() != 0 {
		sum := internal.GeometricSum(p.Multiplier, n, p.Modulus)
		x.Add(x, sum.Mul(sum, c))
	}

	return x.Mod(x, p.Modulus), nil
}
