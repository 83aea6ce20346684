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
	"math"
	"strconv"
)

// Range is a byte range within a Number's Source, with punctuation (the
// leading `.`, `e`/`E`, or sign) excluded from the range itself.
type Range struct {
	Start, End int
}

func (r Range) text(source string) string { return source[r.Start:r.End] }

// Number is the structured token produced by the number reader: the full
// source lexeme plus byte ranges for its base, optional fraction, and
// optional exponent. Immutable once returned.
type Number struct {
	Source       string
	Base         Range
	BasePositive bool

	HasFraction bool
	Fraction    Range

	HasExponent     bool
	Exponent        Range
	ExponentPositive bool
}

// Text returns the full, unparsed source lexeme.
func (n Number) Text() string { return n.Source }

// readNumber parses a JSON number per the grammar
// `-? (0 | [1-9][0-9]*) ( . [0-9]+ )? ( [eE] [+-]? [0-9]+ )?`, committing on
// success; a fatal failure leaves the cursor uncommitted.
func readNumber(c *cursor) (Number, error) {
	start := c.consumed()
	basePositive := true

	r, ok := c.peekChar()
	if ok && r == '-' {
		c.nextChar()
		basePositive = false
	}

	baseStart := c.consumed()
	r, ok = c.nextChar()
	if !ok {
		return numberIncomplete(c)
	}
	switch {
	case r == '0':
		// leading zero: no further base digits allowed.
		if r, ok = c.peekChar(); ok && r >= '0' && r <= '9' {
			c.nextChar()
			loc := c.consumed()
			c.reset()
			return Number{}, newUnexpectedError(r, true, []rune{'.', 'e', 'E'}, false, loc)
		}
	case r >= '1' && r <= '9':
		for {
			r, ok = c.peekChar()
			if !ok || r < '0' || r > '9' {
				break
			}
			c.nextChar()
		}
	default:
		loc := c.consumed()
		c.reset()
		return Number{}, newUnexpectedError(r, true, digitRunes, false, loc)
	}
	baseEnd := c.consumed()

	var hasFraction bool
	var fractionStart, fractionEnd int
	r, ok = c.peekChar()
	if ok && r == '.' {
		c.nextChar()
		hasFraction = true
		fractionStart = c.consumed()
		if err := consumeDigitRun(c); err != nil {
			return Number{}, err
		}
		fractionEnd = c.consumed()
	}

	var hasExponent bool
	var exponentStart, exponentEnd int
	exponentPositive := true
	r, ok = c.peekChar()
	if ok && (r == 'e' || r == 'E') {
		c.nextChar()
		hasExponent = true
		r, ok = c.peekChar()
		if ok && (r == '+' || r == '-') {
			c.nextChar()
			exponentPositive = r == '+'
		}
		exponentStart = c.consumed()
		if err := consumeDigitRun(c); err != nil {
			return Number{}, err
		}
		exponentEnd = c.consumed()
	}

	source := c.input[start:c.consumed()]
	offset := -start
	num := Number{
		Source:           source,
		Base:             Range{baseStart + offset, baseEnd + offset},
		BasePositive:     basePositive,
		HasFraction:      hasFraction,
		Fraction:         Range{fractionStart + offset, fractionEnd + offset},
		HasExponent:      hasExponent,
		Exponent:         Range{exponentStart + offset, exponentEnd + offset},
		ExponentPositive: exponentPositive,
	}
	c.commit()
	return num, nil
}

var digitRunes = []rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// consumeDigitRun requires at least one digit and consumes as many as
// follow.
func consumeDigitRun(c *cursor) error {
	r, ok := c.nextChar()
	if !ok {
		return ErrNumberIncomplete
	}
	if r < '0' || r > '9' {
		loc := c.consumed()
		c.reset()
		return newUnexpectedError(r, true, digitRunes, false, loc)
	}
	for {
		r, ok = c.peekChar()
		if !ok || r < '0' || r > '9' {
			return nil
		}
		c.nextChar()
	}
}

func numberIncomplete(c *cursor) (Number, error) {
	c.reset()
	return Number{}, ErrNumberIncomplete
}

// Float converts the token via the power-of-ten arithmetic model: parse the
// base and fraction as decimal floats, apply signs, then scale by 10 to the
// (signed) exponent power. Not IEEE-exact for every legitimate JSON number;
// callers needing a correctly-rounded conversion must substitute their own.
func (n Number) Float() float64 {
	result, err := strconv.ParseFloat(n.Base.text(n.Source), 64)
	if err != nil {
		panic("quickjson: number base was parsed incorrectly: " + err.Error())
	}

	var fraction float64
	if n.HasFraction {
		fraction, err = strconv.ParseFloat("0."+n.Fraction.text(n.Source), 64)
		if err != nil {
			panic("quickjson: number fraction was parsed incorrectly: " + err.Error())
		}
	}

	var exponent float64
	if n.HasExponent {
		exponent, err = strconv.ParseFloat(n.Exponent.text(n.Source), 64)
		if err != nil {
			panic("quickjson: number exponent was parsed incorrectly: " + err.Error())
		}
	}

	result += fraction
	if !n.BasePositive {
		result *= -1
	}
	if !n.ExponentPositive {
		exponent *= -1
	}

	result *= math.Pow(10, exponent)
	return result
}

// IsIntegral reports whether the number's mathematical value (per Float)
// has no fractional component, the same round-trip check the integer
// mappings use.
func (n Number) IsIntegral() bool {
	f := n.Float()
	return math.Round(f) == f
}
