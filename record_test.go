package quickjson

import "testing"

// A models the glossary's tagged union: a unit variant, a two-tuple variant
// (string, uint32), and a three-field variant. The record mapping protocol
// does not specify enum mappings (spec.md §9), so this is hand-written
// directly against the primitive/array mappings, exactly as a generated
// mapping would be.
type AKind int

const (
	AUnit AKind = iota
	APair
	AFields
)

type A struct {
	Kind   AKind
	Str    string
	Num    uint32
	Field1 string
	Field2 uint8
	Field3 string
}

func deserializeA(v *Value, ctx ErrorContext) (A, bool, error) {
	if v.Kind() == KindNull {
		return A{Kind: AUnit}, true, nil
	}
	if v.Kind() == KindArray {
		arr := v.Array()
		elem, more, err := arr.NextEntry()
		if err != nil {
			return A{}, false, err
		}
		if !more {
			return A{}, false, nil
		}
		s, err := elem.StringValue()
		if err != nil {
			return A{}, false, err
		}
		elem, more, err = arr.NextEntry()
		if err != nil {
			return A{}, false, err
		}
		if !more {
			return A{}, false, nil
		}
		n, err := elem.Number()
		if err != nil {
			return A{}, false, err
		}
		if err := arr.Close(); err != nil {
			return A{}, false, err
		}
		return A{Kind: APair, Str: s.Text, Num: uint32(n.Float())}, true, nil
	}
	// The three-field (object) variant is not mapped here.
	reportUnexpectedType(ctx, v.typeOf(), []JSONType{JSONNull, JSONArray})
	if err := v.Close(); err != nil {
		return A{}, false, err
	}
	return A{}, false, nil
}

// B models a tuple struct (string, uint8, string), mapped from a 3-element
// array.
type B struct {
	Field0 string
	Field1 uint8
	Field2 string
}

func deserializeB(v *Value, ctx ErrorContext) (B, bool, error) {
	ok, err := requireKind(v, ctx, KindArray, JSONArray)
	if err != nil || !ok {
		return B{}, false, err
	}
	arr := v.Array()
	var b B
	elem, _, err := arr.NextEntry()
	if err != nil {
		return B{}, false, err
	}
	s0, err := elem.StringValue()
	if err != nil {
		return B{}, false, err
	}
	b.Field0 = s0.Text

	elem, _, err = arr.NextEntry()
	if err != nil {
		return B{}, false, err
	}
	n1, err := elem.Number()
	if err != nil {
		return B{}, false, err
	}
	b.Field1 = uint8(n1.Float())

	elem, _, err = arr.NextEntry()
	if err != nil {
		return B{}, false, err
	}
	s2, err := elem.StringValue()
	if err != nil {
		return B{}, false, err
	}
	b.Field2 = s2.Text

	if err := arr.Close(); err != nil {
		return B{}, false, err
	}
	return b, true, nil
}

// C models a unit struct, mapped from null.
type C struct{}

func deserializeC(v *Value, ctx ErrorContext) (C, bool, error) {
	ok, err := requireKind(v, ctx, KindNull, JSONNull)
	if err != nil || !ok {
		return C{}, false, err
	}
	return C{}, true, nil
}

// Complex is the glossary's three-field record.
type Complex struct {
	WhatIf A
	WePut  B
	Our    C
}

type complexBuilder struct {
	states [3]FieldState
	whatIf A
	wePut  B
	our    C
}

func (b *complexBuilder) FieldNames() []string {
	return []string{"what_if", "we_put", "our"}
}

func (b *complexBuilder) AcceptField(index int, v *Value, ctx ErrorContext) error {
	switch index {
	case 0:
		val, ok, err := deserializeA(v, ctx)
		if err != nil {
			return err
		}
		if ok {
			b.whatIf = val
			b.states[0] = FieldPresentWithValue
		} else {
			b.states[0] = FieldPresentNullOrError
		}
	case 1:
		val, ok, err := deserializeB(v, ctx)
		if err != nil {
			return err
		}
		if ok {
			b.wePut = val
			b.states[1] = FieldPresentWithValue
		} else {
			b.states[1] = FieldPresentNullOrError
		}
	case 2:
		val, ok, err := deserializeC(v, ctx)
		if err != nil {
			return err
		}
		if ok {
			b.our = val
			b.states[2] = FieldPresentWithValue
		} else {
			b.states[2] = FieldPresentNullOrError
		}
	}
	return nil
}

func (b *complexBuilder) FieldState(index int) FieldState {
	return b.states[index]
}

func deserializeComplex(v *Value, ctx ErrorContext) (Complex, bool, error) {
	b := &complexBuilder{}
	return DeserializeRecord(v, ctx, b, func() Complex {
		return Complex{WhatIf: b.whatIf, WePut: b.wePut, Our: b.our}
	})
}

func TestScenarioComplexRecord(t *testing.T) {
	input := `{"what_if":null,"we_put":["this is data",7,"big data"],"our":null}`
	ctx := &CountingContext{}
	got, ok, err := FromString(input, ctx, deserializeComplex)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if ctx.Count != 0 {
		t.Fatalf("Count = %d, want 0", ctx.Count)
	}
	want := Complex{
		WhatIf: A{Kind: AUnit},
		WePut:  B{Field0: "this is data", Field1: 7, Field2: "big data"},
		Our:    C{},
	}
	if got != want {
		t.Fatalf("got = %+v, want %+v", got, want)
	}
}

func TestRecordMissingFieldReports(t *testing.T) {
	input := `{"what_if":null,"our":null}`
	ctx := &CountingContext{}
	_, ok, err := FromString(input, ctx, deserializeComplex)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if ok {
		t.Fatal("ok = true, want false (we_put never seen)")
	}
	if ctx.Count != 1 {
		t.Fatalf("Count = %d, want 1 (missing-fields report)", ctx.Count)
	}
}

func TestRecordUnknownKeysIgnored(t *testing.T) {
	input := `{"what_if":null,"we_put":["x",1,"y"],"our":null,"extra":{"a":[1,2,3]}}`
	ctx := &CountingContext{}
	_, ok, err := FromString(input, ctx, deserializeComplex)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true (unknown keys are drained, not errors)")
	}
	if ctx.Count != 0 {
		t.Fatalf("Count = %d, want 0", ctx.Count)
	}
}
