package quickjson

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScenarioFloat(t *testing.T) {
	ctx := &CountingContext{}
	got, ok, err := FromString("-69.0", ctx, DeserializeFloat64)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if got != -69.0 {
		t.Fatalf("got = %v, want -69.0", got)
	}
	if ctx.Count != 0 {
		t.Fatalf("Count = %d, want 0", ctx.Count)
	}
}

func TestScenarioMapOfStringToStringSkipsMismatch(t *testing.T) {
	ctx := &CollectingContext{}
	mapValue := func(v *Value, ctx ErrorContext) (map[string]string, bool, error) {
		return DeserializeMap(v, ctx, DeserializeString)
	}
	got, ok, err := FromString(`{"a":1,"b":"x"}`, ctx, mapValue)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	want := map[string]string{"b": "x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if len(ctx.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(ctx.Errors))
	}
	if len(ctx.Errors[0].Path) != 1 || ctx.Errors[0].Path[0].Key() != "a" {
		t.Fatalf("Path = %v, want [ObjectKey(a)]", ctx.Errors[0].Path)
	}
}

func TestScenarioOrderedSequenceOfOwnedString(t *testing.T) {
	ctx := NopContext{}
	sliceValue := func(v *Value, ctx ErrorContext) ([]string, bool, error) {
		return DeserializeSlice(v, ctx, DeserializeString)
	}
	got, ok, err := FromString(`["hello","there","how"]`, ctx, sliceValue)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	want := []string{"hello", "there", "how"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioEscapedStringBorrowVsOwned(t *testing.T) {
	input := `"much\nwow"`

	ctxOwned := &CountingContext{}
	owned, ok, err := FromString(input, ctxOwned, DeserializeString)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if !ok || owned != "much\nwow" {
		t.Fatalf("owned = %q, %v, want %q, true", owned, ok, "much\nwow")
	}
	if ctxOwned.Count != 0 {
		t.Fatalf("Count = %d, want 0", ctxOwned.Count)
	}

	ctxBorrowed := &CountingContext{}
	_, ok, err = FromString(input, ctxBorrowed, DeserializeBorrowedString)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if ok {
		t.Fatal("ok = true, want false (escape present, not borrowable)")
	}
	if ctxBorrowed.Count != 1 {
		t.Fatalf("Count = %d, want 1", ctxBorrowed.Count)
	}
}

func TestScenarioInt32Overflow(t *testing.T) {
	ctx := &CountingContext{}
	_, ok, err := FromString("12345678901234567890", ctx, DeserializeInt32)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if ok {
		t.Fatal("ok = true, want false")
	}
	if ctx.Count != 1 {
		t.Fatalf("Count = %d, want 1", ctx.Count)
	}
}

func TestOptionalLiftsNullWithoutReporting(t *testing.T) {
	ctx := &CountingContext{}
	optValue := func(v *Value, ctx ErrorContext) (*float64, bool, error) {
		return DeserializeOptional(v, ctx, DeserializeFloat64)
	}
	got, ok, err := FromString("null", ctx, optValue)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if got != nil {
		t.Fatalf("got = %v, want nil", got)
	}
	if ctx.Count != 0 {
		t.Fatalf("Count = %d, want 0", ctx.Count)
	}
}

func TestOptionalDelegatesNonNull(t *testing.T) {
	ctx := NopContext{}
	optValue := func(v *Value, ctx ErrorContext) (*float64, bool, error) {
		return DeserializeOptional(v, ctx, DeserializeFloat64)
	}
	got, ok, err := FromString("3.5", ctx, optValue)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if !ok || got == nil || *got != 3.5 {
		t.Fatalf("got = %v, %v, want &3.5, true", got, ok)
	}
}

func TestBooleanMapping(t *testing.T) {
	ctx := NopContext{}
	got, ok, err := FromString("true", ctx, DeserializeBoolean)
	if err != nil || !ok || !got {
		t.Fatalf("got = %v, %v, %v, want true, true, nil", got, ok, err)
	}
}

func TestBooleanMappingWrongKindReports(t *testing.T) {
	ctx := &CountingContext{}
	_, ok, err := FromString(`"x"`, ctx, DeserializeBoolean)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if ok {
		t.Fatal("ok = true, want false")
	}
	if ctx.Count != 1 {
		t.Fatalf("Count = %d, want 1", ctx.Count)
	}
}

func TestTrailingGarbageIsFatal(t *testing.T) {
	ctx := NopContext{}
	_, _, err := FromString(`1 2`, ctx, DeserializeFloat64)
	if err == nil {
		t.Fatal("expected an error for trailing content")
	}
}

func TestMaxDepthExceeded(t *testing.T) {
	input := `[[[[[1]]]]]`
	ctx := NopContext{}
	anyValue := func(v *Value, ctx ErrorContext) (int, bool, error) {
		return 0, true, v.Close()
	}
	_, _, err := FromString(input, ctx, anyValue, WithMaxDepth(2))
	if err != ErrMaxDepthExceeded {
		t.Fatalf("err = %v, want ErrMaxDepthExceeded", err)
	}
}
