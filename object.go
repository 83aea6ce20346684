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

var objectSeparators = []rune{'}', ','}

// Object yields successive Field entries until the closing brace, enforcing
// the `{ key:value , key:value }` grammar. Close (or draining NextEntry to
// its end) must be called before the enclosing handle resumes; abandoning
// an Object mid-traversal and calling Close still leaves the cursor
// positioned exactly past the closing `}`.
type Object struct {
	cur     *cursor
	started bool
	done    bool
	open    *Field
}

// NextEntry returns the next Field, or (nil, false, nil) once the object is
// exhausted. If the previously returned Field was never accepted, it is
// drained automatically before advancing.
func (o *Object) NextEntry() (*Field, bool, error) {
	if o.done {
		return nil, false, nil
	}
	if o.open != nil {
		f := o.open
		o.open = nil
		if err := f.Close(); err != nil {
			return nil, false, err
		}
	}
	if !o.started {
		o.started = true
		if err := expect(o.cur, '{'); err != nil {
			return nil, false, err
		}
		o.cur.commit()
		r, ok := o.cur.nextNonWhitespaceChar()
		if !ok {
			loc := o.cur.consumed()
			o.cur.reset()
			return nil, false, newUnexpectedError(0, false, []rune{'}', '"'}, false, loc)
		}
		if r == '}' {
			o.cur.commit()
			o.done = true
			o.cur.exitDepth()
			return nil, false, nil
		}
		o.cur.back(runeLen(r))
		f := &Field{cur: o.cur}
		o.open = f
		return f, true, nil
	}
	r, ok := o.cur.nextNonWhitespaceChar()
	if !ok {
		loc := o.cur.consumed()
		o.cur.reset()
		return nil, false, newUnexpectedError(0, false, objectSeparators, false, loc)
	}
	switch r {
	case '}':
		o.cur.commit()
		o.done = true
		o.cur.exitDepth()
		return nil, false, nil
	case ',':
		o.cur.commit()
		f := &Field{cur: o.cur}
		o.open = f
		return f, true, nil
	default:
		loc := o.cur.consumed()
		o.cur.reset()
		return nil, false, newUnexpectedError(r, true, objectSeparators, false, loc)
	}
}

// Close drains every remaining entry and consumes the closing `}`.
func (o *Object) Close() error {
	for {
		_, more, err := o.NextEntry()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Field is a one-shot token representing a key:value pair waiting to be
// read. Accept must be called at most once; calling Close without Accept
// drains the key, colon, and value so the cursor still lands correctly.
type Field struct {
	cur      *cursor
	accepted bool
}

// Accept parses the field's key and probes its value, transferring the
// cursor borrow to the returned Value. The caller must close the returned
// Value (directly or by mapping it) before requesting the object's next
// entry.
func (f *Field) Accept() (BorrowedString, *Value, error) {
	f.accepted = true
	key, err := readString(f.cur)
	if err != nil {
		return BorrowedString{}, nil, err
	}
	if err := expect(f.cur, ':'); err != nil {
		return BorrowedString{}, nil, err
	}
	f.cur.commit()
	val, err := probeValue(f.cur)
	if err != nil {
		return BorrowedString{}, nil, err
	}
	return key, val, nil
}

// Close drains the field if it was never accepted; it is a no-op otherwise,
// since an accepted field's value handle owns the cursor borrow from that
// point on and is responsible for its own draining.
func (f *Field) Close() error {
	if f.accepted {
		return nil
	}
	_, val, err := f.Accept()
	if err != nil {
		return err
	}
	return val.Close()
}

func runeLen(r rune) int {
	return len(string(r))
}
