package testresources

import (
	"context"
	"reflect"
	"testing"
)

type namedLines []string

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		typ       reflect.Type
		annotated bool
		want      Shape
	}{
		{"lines holder", reflect.TypeFor[ContentLines](), false, ShapeLinesHolder},
		{"string holder", reflect.TypeFor[ContentString](), false, ShapeStringHolder},
		{"file handle", reflect.TypeFor[*ResourceFile](), false, ShapeFile},
		{"path handle", reflect.TypeFor[*ResourcePath](), false, ShapePath},
		{"list of string", reflect.TypeFor[[]string](), false, ShapeLines},
		{"named list of string", reflect.TypeFor[namedLines](), false, ShapeLines},
		{"stream of string", reflect.TypeFor[*Stream[string]](), false, ShapeStream},
		{"annotated string", reflect.TypeFor[string](), true, ShapeString},

		{"string without parameter config", reflect.TypeFor[string](), false, ShapeUnsupported},
		{"list of int", reflect.TypeFor[[]int](), false, ShapeUnsupported},
		{"list of bytes", reflect.TypeFor[[]byte](), true, ShapeUnsupported},
		{"stream of int", reflect.TypeFor[*Stream[int]](), false, ShapeUnsupported},
		{"stream by value", reflect.TypeFor[Stream[string]](), false, ShapeUnsupported},
		{"two type arguments", reflect.TypeFor[map[string]string](), true, ShapeUnsupported},
		{"array of string", reflect.TypeFor[[2]string](), false, ShapeUnsupported},
		{"channel of string", reflect.TypeFor[chan string](), false, ShapeUnsupported},
		{"holder by pointer", reflect.TypeFor[*ContentLines](), false, ShapeUnsupported},
		{"file handle by value", reflect.TypeFor[ResourceFile](), false, ShapeUnsupported},
		{"testing.T", reflect.TypeFor[*testing.T](), false, ShapeUnsupported},
		{"context", reflect.TypeFor[context.Context](), true, ShapeUnsupported},
		{"nil", nil, false, ShapeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(Describe(tt.typ), tt.annotated)
			if got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.typ, tt.annotated, got, tt.want)
			}
		})
	}
}

func TestClassify_DistinctShapes(t *testing.T) {
	signatures := []struct {
		typ       reflect.Type
		annotated bool
	}{
		{reflect.TypeFor[ContentLines](), false},
		{reflect.TypeFor[ContentString](), false},
		{reflect.TypeFor[*ResourceFile](), false},
		{reflect.TypeFor[*ResourcePath](), false},
		{reflect.TypeFor[[]string](), false},
		{reflect.TypeFor[*Stream[string]](), false},
		{reflect.TypeFor[string](), true},
	}

	seen := make(map[Shape]reflect.Type)
	for _, s := range signatures {
		shape := Classify(Describe(s.typ), s.annotated)
		if shape == ShapeUnsupported {
			t.Fatalf("%v should be supported", s.typ)
		}
		if prev, dup := seen[shape]; dup {
			t.Fatalf("%v and %v both classify as %v", prev, s.typ, shape)
		}
		seen[shape] = s.typ
	}
}

func TestClassify_ParameterConfigOnlyMattersForString(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeFor[ContentLines](),
		reflect.TypeFor[ContentString](),
		reflect.TypeFor[*ResourceFile](),
		reflect.TypeFor[*ResourcePath](),
		reflect.TypeFor[[]string](),
		reflect.TypeFor[*Stream[string]](),
	} {
		d := Describe(typ)
		if Classify(d, true) != Classify(d, false) {
			t.Errorf("%v classification should not depend on parameter configuration", typ)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		typ   reflect.Type
		outer Outer
		args  int
	}{
		{"slice", reflect.TypeFor[[]string](), OuterList, 1},
		{"stream", reflect.TypeFor[*Stream[string]](), OuterStream, 1},
		{"map", reflect.TypeFor[map[string]int](), OuterOther, 2},
		{"chan", reflect.TypeFor[chan int](), OuterOther, 1},
		{"plain", reflect.TypeFor[ContentLines](), OuterNone, 0},
		{"pointer", reflect.TypeFor[*int](), OuterNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Describe(tt.typ)
			if d.Outer != tt.outer || len(d.Args) != tt.args {
				t.Errorf("Describe(%v) = outer %v with %d args, want %v with %d", tt.typ, d.Outer, len(d.Args), tt.outer, tt.args)
			}
			if d.Type != tt.typ {
				t.Errorf("Describe(%v).Type = %v", tt.typ, d.Type)
			}
		})
	}
}

func TestShape_String(t *testing.T) {
	if ShapeLinesHolder.String() != "lines-holder" || Shape(200).String() != "unknown" {
		t.Fatal("unexpected shape names")
	}
	if ShapeFile.NeedsResource() || ShapePath.NeedsResource() || !ShapeStream.NeedsResource() {
		t.Fatal("unexpected NeedsResource")
	}
}
