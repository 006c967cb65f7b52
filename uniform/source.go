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
	"encoding/binary"
	"math/rand"

	"golang.org/x/crypto/salsa20"
)

// Source is an opaque generator of uniforms in [0, 1),
// used by the External method.
type Source interface {
	NextUniform() float64
}

// MathSource draws uniforms from a seeded math/rand generator.
type MathSource struct {
	r *rand.Rand
}

// NewMathSource returns an instance of MathSource.
// Equal seeds yield equal sequences.
func NewMathSource(seed int64) *MathSource {
	return &MathSource{r: rand.New(rand.NewSource(seed))}
}

// NextUniform returns the next value of the generator.
func (s *MathSource) NextUniform() float64 {
	return s.r.Float64()
}

// Keystream draws (deterministic) uniforms from a salsa20
// keystream. The key determines the sequence.
type Keystream struct {
	key   *[32]byte
	block uint64
	buf   [64]byte
	off   int
}

// NewKeystream returns an instance of the Keystream source.
func NewKeystream(key *[32]byte) *Keystream {
	return &Keystream{
		key: key,
		off: 64,
	}
}

// NextUniform consumes 8 bytes of the keystream and returns
// the top 53 bits scaled to [0, 1).
func (k *Keystream) NextUniform() float64 {
	if k.off == len(k.buf) {
		k.refill()
	}
	v := binary.LittleEndian.Uint64(k.buf[k.off : k.off+8])
	k.off += 8
	return float64(v>>11) / (1 << 53)
}

// refill encrypts a zero block under a nonce holding the block
// counter, so every block of the keystream is distinct.
func (k *Keystream) refill() {
	in := make([]byte, len(k.buf)) // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, k.block)
	salsa20.XORKeyStream(k.buf[:], in, nonce, k.key)
	k.block++
	k.off = 0
}
