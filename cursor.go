/*
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package quickjson

import "unicode/utf8"

// cursor tracks a position within an immutable UTF-8 input. Bytes already
// consumed are split into a committed region (definitively accepted) and a
// tentative region (read speculatively by the caller but not yet
// committed). Every offset the cursor exposes lies on a rune boundary.
type cursor struct {
	input     string
	committed int
	tentative int

	depth    int
	maxDepth int
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

// enterDepth accounts for opening one more nested composite; it fails once
// depth exceeds maxDepth (0 meaning unlimited). Unlike most diagnostics in
// this package, this one has no ErrorContext in scope yet — probeValue runs
// before a mapping function has a chance to push or pop a breadcrumb — so
// it is reported as FatalSyntax rather than a recoverable semantic
// diagnostic.
func (c *cursor) enterDepth() error {
	c.depth++
	if c.maxDepth > 0 && c.depth > c.maxDepth {
		c.depth--
		return ErrMaxDepthExceeded
	}
	return nil
}

// exitDepth accounts for a composite's closing bracket having been
// consumed.
func (c *cursor) exitDepth() {
	c.depth--
}

// peekChar decodes the next rune without advancing.
func (c *cursor) peekChar() (rune, bool) {
	rest := c.input[c.committed+c.tentative:]
	if len(rest) == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r, true
}

// nextChar decodes the next rune and advances the tentative offset past it.
func (c *cursor) nextChar() (rune, bool) {
	rest := c.input[c.committed+c.tentative:]
	if len(rest) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(rest)
	c.tentative += size
	return r, true
}

// nextNonWhitespaceChar advances past JSON whitespace (space, tab, LF, CR)
// and returns the first non-whitespace rune, or false at end of input.
func (c *cursor) nextNonWhitespaceChar() (rune, bool) {
	for {
		r, ok := c.nextChar()
		if !ok {
			return 0, false
		}
		if !isJSONWhitespace(r) {
			return r, true
		}
	}
}

func isJSONWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// nextStr borrows the next n bytes and advances past them. The caller must
// guarantee n lands on a rune boundary. Returns false without advancing if
// fewer than n bytes remain.
func (c *cursor) nextStr(n int) (string, bool) {
	start := c.committed + c.tentative
	if start+n > len(c.input) {
		return "", false
	}
	s := c.input[start : start+n]
	c.tentative += n
	return s, true
}

// back rewinds the tentative offset by n bytes. Only valid for bytes
// produced by a preceding advance within the same uncommitted window.
func (c *cursor) back(n int) {
	c.tentative -= n
}

// buffer borrows the currently tentative window, the bytes consumed since
// the last commit or reset.
func (c *cursor) buffer() string {
	return c.input[c.committed : c.committed+c.tentative]
}

// commit folds the tentative offset into the committed offset.
func (c *cursor) commit() {
	c.committed += c.tentative
	c.tentative = 0
}

// reset discards the tentative offset; a no-op on the committed offset.
func (c *cursor) reset() {
	c.tentative = 0
}

// consumed returns the absolute byte position, used for error reporting.
func (c *cursor) consumed() int {
	return c.committed + c.tentative
}

// atEnd reports whether every byte of the input has been consumed, counting
// both committed and tentative bytes.
func (c *cursor) atEnd() bool {
	return c.committed+c.tentative >= len(c.input)
}
