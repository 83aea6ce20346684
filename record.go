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

// FieldState is the tri-state bookkeeping DeserializeRecord uses per
// declared field.
type FieldState int

// The three field states.
const (
	FieldNotSeen FieldState = iota
	FieldPresentNullOrError
	FieldPresentWithValue
)

// RecordBuilder is the contract a generated (or hand-written) named-field
// record mapping must satisfy. This core only relies on: each field having
// a stable name, each field having its own mapping, and a constructor
// taking all fields in declared order — it never constructs the record
// itself, leaving that to the caller's build function.
type RecordBuilder interface {
	// FieldNames returns the record's declared field names, in the order
	// the constructor expects them.
	FieldNames() []string
	// AcceptField maps the value for the field at index (as returned by
	// FieldNames) and records the outcome for a later FieldState query. A
	// non-nil error is FatalSyntax and aborts the whole record.
	AcceptField(index int, v *Value, ctx ErrorContext) error
	// FieldState reports the tri-state for the field at index, valid only
	// after every entry has been offered to AcceptField.
	FieldState(index int) FieldState
}

func indexOfField(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// DeserializeRecord walks an Object, routing each entry whose key matches a
// declared field name to RecordBuilder.AcceptField (unknown keys are
// drained and ignored), then decides the outcome from the resulting
// per-field tri-state: construct via build when every field is present
// with a value, recover silently when every field was at least seen but
// one failed semantic mapping, or report missing-fields when some field
// was never seen at all.
func DeserializeRecord[T any](v *Value, ctx ErrorContext, b RecordBuilder, build func() T) (T, bool, error) {
	var zero T
	ok, err := requireKind(v, ctx, KindObject, JSONObject)
	if err != nil || !ok {
		return zero, false, err
	}

	names := b.FieldNames()
	obj := v.Object()
	for {
		field, more, err := obj.NextEntry()
		if err != nil {
			return zero, false, err
		}
		if !more {
			break
		}
		key, val, err := field.Accept()
		if err != nil {
			return zero, false, err
		}
		idx := indexOfField(names, key.Text)
		if idx < 0 {
			if err := val.Close(); err != nil {
				return zero, false, err
			}
			continue
		}
		pushKey(ctx, ObjectKey(key.Text))
		err = b.AcceptField(idx, val, ctx)
		popKey(ctx)
		if err != nil {
			return zero, false, err
		}
	}

	allPresent := true
	anyMissing := false
	for i := range names {
		switch b.FieldState(i) {
		case FieldPresentWithValue:
		case FieldPresentNullOrError:
			allPresent = false
		default:
			allPresent = false
			anyMissing = true
		}
	}
	if allPresent {
		return build(), true, nil
	}
	if anyMissing {
		reportMissingFields(ctx)
	}
	return zero, false, nil
}
