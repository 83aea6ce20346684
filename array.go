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

var arraySeparators = []rune{']', ','}

// Array yields successive Value entries until the closing bracket,
// enforcing the `[ value , value ]` grammar. Symmetric with Object, minus
// the key step.
type Array struct {
	cur     *cursor
	started bool
	done    bool
	open    *Value
	openAt  int
}

// NextEntry returns the next Value, or (nil, false, nil) once the array is
// exhausted. If the caller left the previously returned Value untouched
// (never read, mapped or closed it, so the cursor has not moved), it is
// drained automatically before advancing; a composite the caller started
// reading must be finished by the caller.
func (a *Array) NextEntry() (*Value, bool, error) {
	if a.done {
		return nil, false, nil
	}
	if a.open != nil {
		v := a.open
		a.open = nil
		if a.cur.consumed() == a.openAt {
			if err := v.Close(); err != nil {
				return nil, false, err
			}
		}
	}
	if !a.started {
		a.started = true
		if err := expect(a.cur, '['); err != nil {
			return nil, false, err
		}
		a.cur.commit()
		r, ok := a.cur.nextNonWhitespaceChar()
		if !ok {
			loc := a.cur.consumed()
			a.cur.reset()
			return nil, false, newUnexpectedError(0, false, []rune{']'}, false, loc)
		}
		if r == ']' {
			a.cur.commit()
			a.done = true
			a.cur.exitDepth()
			return nil, false, nil
		}
		a.cur.back(runeLen(r))
		v, err := probeValue(a.cur)
		if err != nil {
			return nil, false, err
		}
		a.open = v
		a.openAt = a.cur.consumed()
		return v, true, nil
	}
	r, ok := a.cur.nextNonWhitespaceChar()
	if !ok {
		loc := a.cur.consumed()
		a.cur.reset()
		return nil, false, newUnexpectedError(0, false, arraySeparators, false, loc)
	}
	switch r {
	case ']':
		a.cur.commit()
		a.done = true
		a.cur.exitDepth()
		return nil, false, nil
	case ',':
		a.cur.commit()
		v, err := probeValue(a.cur)
		if err != nil {
			return nil, false, err
		}
		a.open = v
		a.openAt = a.cur.consumed()
		return v, true, nil
	default:
		loc := a.cur.consumed()
		a.cur.reset()
		return nil, false, newUnexpectedError(r, true, arraySeparators, false, loc)
	}
}

// Close drains every remaining entry and consumes the closing `]`.
func (a *Array) Close() error {
	for {
		_, more, err := a.NextEntry()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}
