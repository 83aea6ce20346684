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

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel FatalSyntax errors that carry no further detail.
var (
	// ErrStringUnterminated is returned when end of input is reached
	// before a string's closing quote.
	ErrStringUnterminated = errors.New("quickjson: unterminated string")
	// ErrStringUnexpectedControlChar is returned when a raw control
	// character (U+0000..U+001F) appears inside a string literal.
	ErrStringUnexpectedControlChar = errors.New("quickjson: unexpected control character in string")
	// ErrNumberIncomplete is returned when input ends mid-number, where a
	// required part (sign, digit run, exponent digits) was expected.
	ErrNumberIncomplete = errors.New("quickjson: incomplete number")
	// ErrNumberExpectedDigit names the digit-required failure. The number
	// reader itself reports a non-digit where a digit was required as an
	// *UnexpectedError listing the digits, not as this sentinel.
	ErrNumberExpectedDigit = errors.New("quickjson: expected a digit")
	// ErrMaxDepthExceeded is returned when opening a composite value would
	// exceed the configured maximum nesting depth (see WithMaxDepth).
	ErrMaxDepthExceeded = errors.New("quickjson: max nesting depth exceeded")
)

// UnexpectedError is the FatalSyntax variant reported when the grammar
// requires one of a fixed set of characters (or end of input) and finds
// something else.
type UnexpectedError struct {
	HasUnexpected bool
	Unexpected    rune
	Expected      []rune
	EndExpected   bool
	Location      int
}

func (e *UnexpectedError) Error() string {
	var got string
	if e.HasUnexpected {
		got = strconv.QuoteRune(e.Unexpected)
	} else {
		got = "end of input"
	}
	return fmt.Sprintf("quickjson: unexpected %s at byte %d, expected %s",
		got, e.Location, expectedList(e.Expected, e.EndExpected))
}

func expectedList(expected []rune, endExpected bool) string {
	var b strings.Builder
	for i, r := range expected {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.QuoteRune(r))
	}
	if endExpected {
		if len(expected) > 0 {
			b.WriteString(" or ")
		}
		b.WriteString("end of input")
	}
	return b.String()
}

func newUnexpectedError(r rune, has bool, expected []rune, endExpected bool, location int) *UnexpectedError {
	return &UnexpectedError{
		HasUnexpected: has,
		Unexpected:    r,
		Expected:      expected,
		EndExpected:   endExpected,
		Location:      location,
	}
}

// StringUnexpectedEscapeError is the FatalSyntax variant reported when a
// backslash is followed by a character that is not a recognized escape.
type StringUnexpectedEscapeError struct {
	Escape rune
}

func (e *StringUnexpectedEscapeError) Error() string {
	return fmt.Sprintf("quickjson: unexpected escape character %s", strconv.QuoteRune(e.Escape))
}

// expect requires the next non-whitespace character to equal want, leaving
// the cursor positioned just past it on success (uncommitted) and reset on
// failure.
func expect(c *cursor, want rune) error {
	ch, ok := c.nextNonWhitespaceChar()
	if ok && ch == want {
		return nil
	}
	loc := c.consumed()
	c.reset()
	return newUnexpectedError(ch, ok, []rune{want}, false, loc)
}
