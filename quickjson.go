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

// Package quickjson is a pull-style, zero-copy JSON deserialization core.
// It walks a UTF-8 input once via a hand-written recursive-descent reader,
// exposing composite values as stateful handles the caller drives
// entry-by-entry, and maps the result into caller-defined shapes through a
// polymorphic dispatch layer that reports structured, recoverable
// diagnostics via a caller-supplied ErrorContext.
package quickjson

// FromString parses input and maps its root value via deserialize,
// returning (value, true, nil) on success, (zero, false, nil) if the root
// value's grammar was intact but semantic mapping failed (a diagnostic has
// already been reported to ctx), or (zero, false, err) if the input itself
// was not well-formed JSON.
func FromString[T any](input string, ctx ErrorContext, deserialize Mapper[T], opts ...Option) (T, bool, error) {
	var zero T
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := newCursor(input)
	c.maxDepth = cfg.maxDepth

	root, err := probeValue(c)
	if err != nil {
		return zero, false, err
	}
	value, ok, err := deserialize(root, ctx)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		return zero, false, nil
	}

	if _, ok := c.nextNonWhitespaceChar(); ok {
		loc := c.consumed()
		c.reset()
		return zero, false, newUnexpectedError(0, false, nil, true, loc)
	}
	c.commit()
	return value, true, nil
}
