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
	"fmt"
	"strings"
)

// JSONType names the kind of a JSON value for diagnostic messages, distinct
// from Kind in that it carries no payload and is cheap to pass by value.
type JSONType int

// The six JSON value kinds.
const (
	JSONObject JSONType = iota
	JSONArray
	JSONString
	JSONNumber
	JSONBoolean
	JSONNull
	numJSONTypes
)

var jsonTypeNouns = [numJSONTypes]string{
	"object", "array", "string", "number", "boolean", "null",
}

var jsonTypeMentions = [numJSONTypes]string{
	"an object", "an array", "a string", "a number", "a boolean", "null",
}

// Noun returns a bare noun for the type ("object", "array", ...).
func (t JSONType) Noun() string {
	if t < 0 || t >= numJSONTypes {
		return "<unknown>"
	}
	return jsonTypeNouns[t]
}

// MentionByNoun returns the type mentioned with its article ("an object",
// "a string", "null", ...).
func (t JSONType) MentionByNoun() string {
	if t < 0 || t >= numJSONTypes {
		return "<unknown>"
	}
	return jsonTypeMentions[t]
}

// String implements fmt.Stringer.
func (t JSONType) String() string {
	return t.Noun()
}

func kindToJSONType(k Kind) JSONType {
	switch k {
	case KindObject:
		return JSONObject
	case KindArray:
		return JSONArray
	case KindString:
		return JSONString
	case KindNumber:
		return JSONNumber
	case KindBoolean:
		return JSONBoolean
	default:
		return JSONNull
	}
}

// NumericPrimitive names one of the integer families the mapping layer
// supports, for overflow/underflow/fractional diagnostics.
type NumericPrimitive int

// The integer families deserializeInteger is instantiated for.
const (
	NumericI8 NumericPrimitive = iota
	NumericI16
	NumericI32
	NumericI64
	NumericISize
	NumericU8
	NumericU16
	NumericU32
	NumericU64
	NumericUSize
)

var numericNouns = map[NumericPrimitive]string{
	NumericI8: "signed 8 bit integer", NumericI16: "signed 16 bit integer",
	NumericI32: "signed 32 bit integer", NumericI64: "signed 64 bit integer",
	NumericISize: "signed address-sized integer",
	NumericU8:    "unsigned 8 bit integer", NumericU16: "unsigned 16 bit integer",
	NumericU32: "unsigned 32 bit integer", NumericU64: "unsigned 64 bit integer",
	NumericUSize: "unsigned address-sized integer",
}

// Noun returns a bare noun for the numeric family.
func (n NumericPrimitive) Noun() string { return numericNouns[n] }

// MentionByNoun returns the numeric family mentioned with its article.
func (n NumericPrimitive) MentionByNoun() string {
	noun := n.Noun()
	if noun == "" {
		return "<unknown numeric type>"
	}
	return "a " + noun
}

// KeyKind is one segment of the breadcrumb path from the root of a
// deserialization to the value currently being mapped: either an object key
// or an array index.
type KeyKind struct {
	isArray bool
	key     string
	index   int
}

// ObjectKey builds a breadcrumb segment naming an object field.
func ObjectKey(name string) KeyKind { return KeyKind{key: name} }

// ArrayIndex builds a breadcrumb segment naming an array element.
func ArrayIndex(i int) KeyKind { return KeyKind{isArray: true, index: i} }

// IsArray reports whether this segment is an array index rather than an
// object key.
func (k KeyKind) IsArray() bool { return k.isArray }

// Key returns the object key this segment names; only meaningful when
// !IsArray().
func (k KeyKind) Key() string { return k.key }

// Index returns the array index this segment names; only meaningful when
// IsArray().
func (k KeyKind) Index() int { return k.index }

func (k KeyKind) String() string {
	if k.isArray {
		return fmt.Sprintf("[%d]", k.index)
	}
	return "." + k.key
}

// ErrorContext is the caller-supplied diagnostic sink threaded through the
// mapping layer. Implementations need only supply ReportUnknown; richer
// reporting and key-path tracking are optional and detected via type
// assertion (the Go analogue of Rust's default trait methods), the same
// optional-interface idiom the standard library uses for io.WriterTo or
// http.Flusher.
type ErrorContext interface {
	// ReportUnknown records an arbitrary diagnostic message.
	ReportUnknown(message string)
}

// unexpectedTypeReporter is an optional ErrorContext extension for callers
// that want to format type-mismatch diagnostics themselves.
type unexpectedTypeReporter interface {
	ReportUnexpectedType(unexpected JSONType, expected []JSONType)
}

// stringBorrowReporter is an optional ErrorContext extension for the
// owned-vs-borrowed string mismatch diagnostic.
type stringBorrowReporter interface {
	ReportStringExpectedBorrowed()
}

// numberOverflowReporter is an optional ErrorContext extension for integer
// overflow diagnostics.
type numberOverflowReporter interface {
	ReportNumberOverflow(t NumericPrimitive)
}

// numberUnderflowReporter is an optional ErrorContext extension for integer
// underflow diagnostics.
type numberUnderflowReporter interface {
	ReportNumberUnderflow(t NumericPrimitive)
}

// numberFractionalReporter is an optional ErrorContext extension for the
// has-fractional-component diagnostic.
type numberFractionalReporter interface {
	ReportNumberFractional()
}

// missingFieldsReporter is an optional ErrorContext extension for the
// missing-required-fields diagnostic.
type missingFieldsReporter interface {
	ReportMissingFields()
}

// keyPathContext is an optional ErrorContext extension for callers that
// want to track the breadcrumb path; the default (not implementing this
// interface) is to do nothing, which is valid for callers that only count
// errors.
type keyPathContext interface {
	PushKey(KeyKind)
	PopKey()
}

func reportUnexpectedType(ctx ErrorContext, unexpected JSONType, expected []JSONType) {
	if r, ok := ctx.(unexpectedTypeReporter); ok {
		r.ReportUnexpectedType(unexpected, expected)
		return
	}
	ctx.ReportUnknown(formatUnexpectedType(unexpected, expected))
}

func formatUnexpectedType(unexpected JSONType, expected []JSONType) string {
	switch len(expected) {
	case 0:
		panic("quickjson: reportUnexpectedType called with no expected kinds")
	case 1:
		return fmt.Sprintf("expected %s, found %s", expected[0].MentionByNoun(), unexpected.MentionByNoun())
	case 2:
		return fmt.Sprintf("expected %s or %s, found %s",
			expected[0].MentionByNoun(), expected[1].Noun(), unexpected.MentionByNoun())
	default:
		var b strings.Builder
		b.WriteString("expected ")
		for i, t := range expected {
			switch {
			case i == 0:
				b.WriteString(t.MentionByNoun())
			case i == len(expected)-1:
				b.WriteString("or " + t.Noun())
			default:
				b.WriteString(", " + t.Noun())
			}
		}
		b.WriteString(", found " + unexpected.MentionByNoun())
		return b.String()
	}
}

func reportStringExpectedBorrowed(ctx ErrorContext) {
	if r, ok := ctx.(stringBorrowReporter); ok {
		r.ReportStringExpectedBorrowed()
		return
	}
	ctx.ReportUnknown("expected a string borrowed from source, found an owned string")
}

func reportNumberOverflow(ctx ErrorContext, t NumericPrimitive) {
	if r, ok := ctx.(numberOverflowReporter); ok {
		r.ReportNumberOverflow(t)
		return
	}
	ctx.ReportUnknown(fmt.Sprintf("value causes an integer overflow in target (%s)", t.MentionByNoun()))
}

func reportNumberUnderflow(ctx ErrorContext, t NumericPrimitive) {
	if r, ok := ctx.(numberUnderflowReporter); ok {
		r.ReportNumberUnderflow(t)
		return
	}
	ctx.ReportUnknown(fmt.Sprintf("value causes an integer underflow in target (%s)", t.MentionByNoun()))
}

func reportNumberFractional(ctx ErrorContext) {
	if r, ok := ctx.(numberFractionalReporter); ok {
		r.ReportNumberFractional()
		return
	}
	ctx.ReportUnknown("number cannot fit in target value due to having a fractional component")
}

func reportMissingFields(ctx ErrorContext) {
	if r, ok := ctx.(missingFieldsReporter); ok {
		r.ReportMissingFields()
		return
	}
	ctx.ReportUnknown("missing fields")
}

func pushKey(ctx ErrorContext, k KeyKind) {
	if r, ok := ctx.(keyPathContext); ok {
		r.PushKey(k)
	}
}

func popKey(ctx ErrorContext) {
	if r, ok := ctx.(keyPathContext); ok {
		r.PopKey()
	}
}

// NopContext is the unit ErrorContext: it discards every diagnostic. It is
// a legal minimal ErrorContext for callers that only care whether parsing
// succeeded.
type NopContext struct{}

// ReportUnknown discards message.
func (NopContext) ReportUnknown(message string) {}

// CountingContext is a minimal ErrorContext that only counts diagnostics,
// useful for callers that want to know whether mapping failed without
// paying for key-path tracking.
type CountingContext struct {
	Count int
}

// ReportUnknown increments Count.
func (c *CountingContext) ReportUnknown(message string) {
	c.Count++
}

// CollectingContext is an ErrorContext that records every diagnostic
// together with the breadcrumb path active when it was reported.
type CollectingContext struct {
	path   []KeyKind
	Errors []CollectedError
}

// CollectedError is one diagnostic recorded by CollectingContext.
type CollectedError struct {
	Message string
	Path    []KeyKind
}

// ReportUnknown records message together with a snapshot of the current
// breadcrumb path.
func (c *CollectingContext) ReportUnknown(message string) {
	path := make([]KeyKind, len(c.path))
	copy(path, c.path)
	c.Errors = append(c.Errors, CollectedError{Message: message, Path: path})
}

// PushKey extends the breadcrumb path.
func (c *CollectingContext) PushKey(k KeyKind) {
	c.path = append(c.path, k)
}

// PopKey shortens the breadcrumb path.
func (c *CollectingContext) PopKey() {
	c.path = c.path[:len(c.path)-1]
}
