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

// Kind tags which variant a Value holds.
type Kind int

// The six Value variants.
const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBoolean
	KindNull
)

var kindStrings = [...]string{"object", "array", "string", "number", "boolean", "null"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindStrings) {
		return "<unknown kind>"
	}
	return kindStrings[k]
}

// Value is a handle over exactly one JSON value. For Object, Array, String,
// and Number it holds a borrow of the cursor, still positioned before the
// value; the probe does not parse strings or numbers eagerly, so their text
// is read only when the caller asks for it (or closes the handle). For
// Boolean and Null the cursor has already absorbed the literal and Value
// carries only the decoded payload.
//
// At most one open composite handle (Object/Array) may exist per cursor at
// a time; composing one consumes the Value that produced it.
type Value struct {
	kind    Kind
	cur     *cursor
	boolean bool
}

// Kind reports which variant this handle holds.
func (v *Value) Kind() Kind { return v.kind }

// probeValue skips whitespace, classifies the next JSON value by one
// character of lookahead, and returns a handle of the matching variant.
// Composite and string variants are handed a cursor still positioned just
// before their opening character; Boolean and Null are returned already
// consumed and committed.
func probeValue(c *cursor) (*Value, error) {
	start := c.consumed()
	r, ok := c.nextNonWhitespaceChar()
	if !ok {
		c.reset()
		return nil, newUnexpectedError(0, false, probeExpected, false, start)
	}
	switch {
	case r == '{':
		c.back(len(string(r)))
		if err := c.enterDepth(); err != nil {
			return nil, err
		}
		return &Value{kind: KindObject, cur: c}, nil
	case r == '[':
		c.back(len(string(r)))
		if err := c.enterDepth(); err != nil {
			return nil, err
		}
		return &Value{kind: KindArray, cur: c}, nil
	case r == '"':
		c.back(len(string(r)))
		return &Value{kind: KindString, cur: c}, nil
	case r == '-' || (r >= '0' && r <= '9'):
		c.back(len(string(r)))
		return &Value{kind: KindNumber, cur: c}, nil
	case r == 'f':
		if err := expectLiteralTail(c, "alse"); err != nil {
			return nil, err
		}
		c.commit()
		return &Value{kind: KindBoolean, boolean: false}, nil
	case r == 't':
		if err := expectLiteralTail(c, "rue"); err != nil {
			return nil, err
		}
		c.commit()
		return &Value{kind: KindBoolean, boolean: true}, nil
	case r == 'n':
		if err := expectLiteralTail(c, "ull"); err != nil {
			return nil, err
		}
		c.commit()
		return &Value{kind: KindNull}, nil
	default:
		loc := c.consumed()
		c.reset()
		return nil, newUnexpectedError(r, true, probeExpected, false, loc)
	}
}

var probeExpected = []rune{'{', '[', '"', '0', 'f', 't', 'n'}

func expectLiteralTail(c *cursor, tail string) error {
	got, ok := c.nextStr(len(tail))
	if !ok || got != tail {
		loc := c.consumed()
		c.reset()
		return newUnexpectedError(0, false, nil, false, loc)
	}
	return nil
}

// Object asserts this handle is KindObject and returns the Object handle,
// transferring the cursor borrow to it. Calling it on any other kind is a
// programmer error and panics, matching the rest of this package's
// convention that Kind() must be checked (or known) before descending.
func (v *Value) Object() *Object {
	if v.kind != KindObject {
		panic("quickjson: Object called on a non-object Value")
	}
	return &Object{cur: v.cur}
}

// Array asserts this handle is KindArray and returns the Array handle.
func (v *Value) Array() *Array {
	if v.kind != KindArray {
		panic("quickjson: Array called on a non-array Value")
	}
	return &Array{cur: v.cur}
}

// StringValue asserts this handle is KindString, parses it via the string
// reader, and returns the resulting borrowed-or-owned text.
func (v *Value) StringValue() (BorrowedString, error) {
	if v.kind != KindString {
		panic("quickjson: StringValue called on a non-string Value")
	}
	return readString(v.cur)
}

// Number asserts this handle is KindNumber and parses it via the number
// reader.
func (v *Value) Number() (Number, error) {
	if v.kind != KindNumber {
		panic("quickjson: Number called on a non-number Value")
	}
	return readNumber(v.cur)
}

// Boolean asserts this handle is KindBoolean and returns its payload.
func (v *Value) Boolean() bool {
	if v.kind != KindBoolean {
		panic("quickjson: Boolean called on a non-boolean Value")
	}
	return v.boolean
}

// Close drains this handle without mapping it: composite kinds drain every
// remaining entry and consume their closing bracket; String and Number
// parse (and discard) their lexeme so the cursor still advances correctly;
// Boolean and Null are already fully consumed. This is the Go realization
// of spec.md's "drop drains the handle" discipline (see DESIGN.md).
func (v *Value) Close() error {
	switch v.kind {
	case KindObject:
		return v.Object().Close()
	case KindArray:
		return v.Array().Close()
	case KindString:
		_, err := v.StringValue()
		return err
	case KindNumber:
		_, err := v.Number()
		return err
	default:
		return nil
	}
}

// typeOf reports the JSONType diagnostic tag for this handle's kind.
func (v *Value) typeOf() JSONType { return kindToJSONType(v.kind) }
