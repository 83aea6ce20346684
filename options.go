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

// defaultMaxDepth bounds object/array nesting depth. Unlike the teacher's
// tape-based scanner, this package's recursive-descent reader recurses on
// the Go call stack, so unbounded nesting is turned into a fatal
// ErrMaxDepthExceeded rather than a stack overflow.
const defaultMaxDepth = 10000

type config struct {
	maxDepth int
}

func defaultConfig() config {
	return config{maxDepth: defaultMaxDepth}
}

// Option configures a FromString call.
type Option func(*config)

// WithMaxDepth overrides the maximum object/array nesting depth. Exceeding
// it aborts the parse with ErrMaxDepthExceeded; no ErrorContext is in scope
// at the point the check runs, so it cannot be reported as a recoverable
// diagnostic (see cursor.enterDepth).
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}
