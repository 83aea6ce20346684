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

import "strings"

// BorrowedString is the two-arm "short/long reference" result of the
// string reader: either Text aliases the input buffer verbatim (Borrowed
// is true, no allocation occurred), or Text was freshly built while
// resolving escapes (Borrowed is false).
type BorrowedString struct {
	Text     string
	Borrowed bool
}

// unicodeEscapeUnsupported marks the one deliberately unimplemented path in
// this package: \u escapes. The source this package was modeled on leaves
// the same path undefined; resolving it (reading four hex digits and
// decoding a surrogate pair when needed) is an open question, not guessed
// at here.
const unicodeEscapeUnsupported = "quickjson: \\u escapes are not implemented"

// readString parses a JSON string literal starting at (after whitespace) a
// `"`. Once the opening quote is read, the cursor is committed on every
// return path, fatal or successful, so an enclosing handle's drain logic
// never re-scans consumed bytes.
func readString(c *cursor) (BorrowedString, error) {
	if err := expect(c, '"'); err != nil {
		return BorrowedString{}, err
	}
	c.commit()

	var owned *strings.Builder

	for {
		r, ok := c.nextChar()
		if !ok {
			c.commit()
			return BorrowedString{}, ErrStringUnterminated
		}
		switch {
		case r == '"':
			body := c.buffer()
			body = body[:len(body)-1] // drop the closing quote
			c.commit()
			if owned != nil {
				return BorrowedString{Text: owned.String()}, nil
			}
			return BorrowedString{Text: body, Borrowed: true}, nil

		case r == '\\':
			if owned == nil {
				seed := c.buffer()
				seed = seed[:len(seed)-1] // exclude the backslash itself
				owned = &strings.Builder{}
				owned.WriteString(seed)
			}
			esc, ok := c.nextChar()
			if !ok {
				c.commit()
				return BorrowedString{}, ErrStringUnterminated
			}
			switch esc {
			case '"', '\\', '/':
				owned.WriteRune(esc)
			case 'b':
				owned.WriteByte('\b')
			case 'f':
				owned.WriteByte('\f')
			case 'n':
				owned.WriteByte('\n')
			case 'r':
				owned.WriteByte('\r')
			case 't':
				owned.WriteByte('\t')
			case 'u':
				panic(unicodeEscapeUnsupported)
			default:
				c.commit()
				return BorrowedString{}, &StringUnexpectedEscapeError{Escape: esc}
			}

		case isJSONControl(r):
			c.commit()
			return BorrowedString{}, ErrStringUnexpectedControlChar

		default:
			if owned != nil {
				owned.WriteRune(r)
			}
		}
	}
}

func isJSONControl(r rune) bool {
	return r >= 0x0000 && r <= 0x001F
}
