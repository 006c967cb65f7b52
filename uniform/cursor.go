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

// Cursor walks the uniforms of a Stream from left to right.
// Its position never decreases; a consumed uniform is never
// returned again. To start over, take a new cursor.
type Cursor struct {
	uniforms []float64
	pos      int
}

// Next returns the next uniform and advances by one.
// It returns false once the stream is exhausted.
func (c *Cursor) Next() (float64, bool) {
	if c.pos >= len(c.uniforms) {
		return 0, false
	}
	u := c.uniforms[c.pos]
	c.pos++
	return u, true
}

// Take returns the next n uniforms and advances by n.
// If fewer than n remain, it returns false and does not move.
func (c *Cursor) Take(n int) ([]float64, bool) {
	if n < 0 || c.Remaining() < n {
		return nil, false
	}
	block := append([]float64(nil), c.uniforms[c.pos:c.pos+n]...)
	c.pos += n
	return block, true
}

// Pos returns the number of uniforms consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of uniforms not yet consumed.
func (c *Cursor) Remaining() int {
	return len(c.uniforms) - c.pos
}
