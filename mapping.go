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

import "math"

// Mapper is the shape every built-in and hand-written mapping function
// has: given a Value handle and the active ErrorContext, produce either a
// mapped result (ok == true), a reported-but-recovered semantic failure
// (ok == false, err == nil, the Value has been drained), or a FatalSyntax
// error that aborts the whole parse. This stands in for the source's
// per-type trait implementations, since Go cannot attach methods to
// built-in types like int or string.
type Mapper[T any] func(*Value, ErrorContext) (T, bool, error)

func requireKind(v *Value, ctx ErrorContext, want Kind, wantType JSONType) (bool, error) {
	if v.Kind() == want {
		return true, nil
	}
	reportUnexpectedType(ctx, v.typeOf(), []JSONType{wantType})
	if err := v.Close(); err != nil {
		return false, err
	}
	return false, nil
}

// DeserializeBoolean accepts a Boolean value; any other kind reports
// unexpected-type.
func DeserializeBoolean(v *Value, ctx ErrorContext) (bool, bool, error) {
	ok, err := requireKind(v, ctx, KindBoolean, JSONBoolean)
	if err != nil || !ok {
		return false, false, err
	}
	return v.Boolean(), true, nil
}

// DeserializeOptional lifts Null to (zero, true, nil) meaning "present and
// absent"; any other kind delegates to inner. A semantic failure from inner
// propagates as a semantic failure of the optional itself.
func DeserializeOptional[T any](v *Value, ctx ErrorContext, inner Mapper[T]) (*T, bool, error) {
	if v.Kind() == KindNull {
		return nil, true, nil
	}
	val, ok, err := inner(v, ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	return &val, true, nil
}

// DeserializeFloat32 accepts a Number and converts it via Number.Float.
func DeserializeFloat32(v *Value, ctx ErrorContext) (float32, bool, error) {
	ok, err := requireKind(v, ctx, KindNumber, JSONNumber)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := v.Number()
	if err != nil {
		return 0, false, err
	}
	return float32(n.Float()), true, nil
}

// DeserializeFloat64 accepts a Number and converts it via Number.Float.
func DeserializeFloat64(v *Value, ctx ErrorContext) (float64, bool, error) {
	ok, err := requireKind(v, ctx, KindNumber, JSONNumber)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := v.Number()
	if err != nil {
		return 0, false, err
	}
	return n.Float(), true, nil
}

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// deserializeInteger accepts a Number, computes its float value, and
// truncates it into T after checking integrality and target bounds.
func deserializeInteger[T integer](v *Value, ctx ErrorContext, prim NumericPrimitive, min, max float64) (T, bool, error) {
	ok, err := requireKind(v, ctx, KindNumber, JSONNumber)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := v.Number()
	if err != nil {
		return 0, false, err
	}
	f := n.Float()
	if math.Round(f) != f {
		reportNumberFractional(ctx)
		return 0, false, nil
	}
	// f is integral here, so f >= max+1 catches values just past max even
	// where float64(max) rounds up (int64, uint64).
	if f >= max+1 {
		reportNumberOverflow(ctx, prim)
		return 0, false, nil
	}
	if f < min {
		reportNumberUnderflow(ctx, prim)
		return 0, false, nil
	}
	return T(f), true, nil
}

// DeserializeInt8 maps a Number into an int8, reporting overflow/underflow
// or a fractional-component diagnostic as appropriate.
func DeserializeInt8(v *Value, ctx ErrorContext) (int8, bool, error) {
	return deserializeInteger[int8](v, ctx, NumericI8, math.MinInt8, math.MaxInt8)
}

// DeserializeInt16 maps a Number into an int16.
func DeserializeInt16(v *Value, ctx ErrorContext) (int16, bool, error) {
	return deserializeInteger[int16](v, ctx, NumericI16, math.MinInt16, math.MaxInt16)
}

// DeserializeInt32 maps a Number into an int32.
func DeserializeInt32(v *Value, ctx ErrorContext) (int32, bool, error) {
	return deserializeInteger[int32](v, ctx, NumericI32, math.MinInt32, math.MaxInt32)
}

// DeserializeInt64 maps a Number into an int64.
func DeserializeInt64(v *Value, ctx ErrorContext) (int64, bool, error) {
	return deserializeInteger[int64](v, ctx, NumericI64, math.MinInt64, math.MaxInt64)
}

// DeserializeInt maps a Number into an int (the address-sized signed
// family).
func DeserializeInt(v *Value, ctx ErrorContext) (int, bool, error) {
	return deserializeInteger[int](v, ctx, NumericISize, math.MinInt64, math.MaxInt64)
}

// DeserializeUint8 maps a Number into a uint8.
func DeserializeUint8(v *Value, ctx ErrorContext) (uint8, bool, error) {
	return deserializeInteger[uint8](v, ctx, NumericU8, 0, math.MaxUint8)
}

// DeserializeUint16 maps a Number into a uint16.
func DeserializeUint16(v *Value, ctx ErrorContext) (uint16, bool, error) {
	return deserializeInteger[uint16](v, ctx, NumericU16, 0, math.MaxUint16)
}

// DeserializeUint32 maps a Number into a uint32.
func DeserializeUint32(v *Value, ctx ErrorContext) (uint32, bool, error) {
	return deserializeInteger[uint32](v, ctx, NumericU32, 0, math.MaxUint32)
}

// DeserializeUint64 maps a Number into a uint64.
func DeserializeUint64(v *Value, ctx ErrorContext) (uint64, bool, error) {
	return deserializeInteger[uint64](v, ctx, NumericU64, 0, math.MaxUint64)
}

// DeserializeUint maps a Number into a uint (the address-sized unsigned
// family).
func DeserializeUint(v *Value, ctx ErrorContext) (uint, bool, error) {
	return deserializeInteger[uint](v, ctx, NumericUSize, 0, math.MaxUint64)
}

// DeserializeString accepts a String and promotes it to an owned Go
// string regardless of whether the reader borrowed or allocated.
func DeserializeString(v *Value, ctx ErrorContext) (string, bool, error) {
	ok, err := requireKind(v, ctx, KindString, JSONString)
	if err != nil || !ok {
		return "", false, err
	}
	s, err := v.StringValue()
	if err != nil {
		return "", false, err
	}
	return s.Text, true, nil
}

// DeserializeBorrowedString accepts a String; if the reader had to
// allocate (an escape was present), it reports string-expected-borrowed
// and yields a recovered failure instead of silently copying.
func DeserializeBorrowedString(v *Value, ctx ErrorContext) (string, bool, error) {
	ok, err := requireKind(v, ctx, KindString, JSONString)
	if err != nil || !ok {
		return "", false, err
	}
	s, err := v.StringValue()
	if err != nil {
		return "", false, err
	}
	if !s.Borrowed {
		reportStringExpectedBorrowed(ctx)
		return "", false, nil
	}
	return s.Text, true, nil
}

// DeserializeBorrowedOrOwned accepts a String and returns whichever arm the
// reader produced, without forcing a copy or rejecting an allocated one.
func DeserializeBorrowedOrOwned(v *Value, ctx ErrorContext) (BorrowedString, bool, error) {
	ok, err := requireKind(v, ctx, KindString, JSONString)
	if err != nil || !ok {
		return BorrowedString{}, false, err
	}
	s, err := v.StringValue()
	if err != nil {
		return BorrowedString{}, false, err
	}
	return s, true, nil
}

// DeserializeSlice accepts an Array, maps each element with elem, and
// collects the successfully mapped elements. An element that fails
// semantic mapping is skipped, not an error; indices are not renumbered.
func DeserializeSlice[T any](v *Value, ctx ErrorContext, elem Mapper[T]) ([]T, bool, error) {
	ok, err := requireKind(v, ctx, KindArray, JSONArray)
	if err != nil || !ok {
		return nil, false, err
	}
	arr := v.Array()
	result := []T{}
	index := 0
	for {
		elemVal, more, err := arr.NextEntry()
		if err != nil {
			return nil, false, err
		}
		if !more {
			break
		}
		pushKey(ctx, ArrayIndex(index))
		mapped, ok, err := elem(elemVal, ctx)
		popKey(ctx)
		if err != nil {
			return nil, false, err
		}
		if ok {
			result = append(result, mapped)
		}
		index++
	}
	return result, true, nil
}

// DeserializeMap accepts an Object, maps each value with elem, and returns
// a map keyed by the (owned) field names. Duplicate keys overwrite in
// insertion order; a value that fails semantic mapping is skipped.
func DeserializeMap[V any](v *Value, ctx ErrorContext, elem Mapper[V]) (map[string]V, bool, error) {
	ok, err := requireKind(v, ctx, KindObject, JSONObject)
	if err != nil || !ok {
		return nil, false, err
	}
	obj := v.Object()
	result := map[string]V{}
	for {
		field, more, err := obj.NextEntry()
		if err != nil {
			return nil, false, err
		}
		if !more {
			break
		}
		key, val, err := field.Accept()
		if err != nil {
			return nil, false, err
		}
		pushKey(ctx, ObjectKey(key.Text))
		mapped, ok, err := elem(val, ctx)
		popKey(ctx)
		if err != nil {
			return nil, false, err
		}
		if ok {
			result[key.Text] = mapped
		}
	}
	return result, true, nil
}
