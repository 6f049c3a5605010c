// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ujson_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/ujson"
	"github.com/google/go-cmp/cmp"
)

func parseArr(t *testing.T, input string) *ujson.Array {
	t.Helper()
	a, err := mustParse(t, input).AsArray()
	if err != nil {
		t.Fatalf("AsArray %#q: %v", input, err)
	}
	return a
}

func parseObj(t *testing.T, input string) *ujson.Object {
	t.Helper()
	o, err := mustParse(t, input).AsObject()
	if err != nil {
		t.Fatalf("AsObject %#q: %v", input, err)
	}
	return o
}

// expect checks that an accessor returned the expected value and no error.
func expect[T comparable](t *testing.T, label string, got T, err error, want T) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: unexpected error: %v", label, err)
	} else if got != want {
		t.Errorf("%s: got %v, want %v", label, got, want)
	}
}

// fails checks that an accessor reported an error of the given kind.
func fails[T any](t *testing.T, label string, _ T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Errorf("%s: got error %v, want %v", label, err, kind)
	}
}

func TestNarrowing(t *testing.T) {
	tests := []struct {
		input string
		want  ujson.Type
	}{
		{"null", ujson.TypeNull},
		{"true", ujson.TypeBool},
		{"17", ujson.TypeInt},
		{"1.5", ujson.TypeFloat},
		{`"s"`, ujson.TypeString},
		{"[]", ujson.TypeArray},
		{"{}", ujson.TypeObject},
	}
	for _, tc := range tests {
		v := mustParse(t, tc.input)
		if got := v.Type(); got != tc.want {
			t.Errorf("Parse %#q: got type %v, want %v", tc.input, got, tc.want)
		}
		checks := map[ujson.Type]error{}
		_, checks[ujson.TypeBool] = v.AsBool()
		_, checks[ujson.TypeInt] = v.AsInt()
		_, checks[ujson.TypeFloat] = v.AsFloat()
		_, checks[ujson.TypeString] = v.AsString()
		_, checks[ujson.TypeArray] = v.AsArray()
		_, checks[ujson.TypeObject] = v.AsObject()
		for typ, err := range checks {
			ok := typ == tc.want || (typ == ujson.TypeFloat && tc.want == ujson.TypeInt)
			if ok && err != nil {
				t.Errorf("As %v of %#q: unexpected error: %v", typ, tc.input, err)
			} else if !ok {
				checkErr(t, err, ujson.ErrBadType, 1)
			}
		}
	}

	for typ, want := range map[ujson.Type]string{
		ujson.TypeNull: "null", ujson.TypeBool: "bool", ujson.TypeInt: "int",
		ujson.TypeFloat: "float", ujson.TypeString: "string",
		ujson.TypeArray: "array", ujson.TypeObject: "object",
	} {
		if got := typ.String(); got != want {
			t.Errorf("Type %d: got %q, want %q", typ, got, want)
		}
	}
}

func TestIntRange(t *testing.T) {
	z, err := mustParse(t, "42").AsInt()
	if err != nil {
		t.Fatalf("AsInt: %v", err)
	}
	v64, err := z.GetIn(0, 42)
	expect(t, "GetIn(0, 42)", v64, err, 42)
	v64, err = z.GetIn(43, 100)
	fails(t, "GetIn(43, 100)", v64, err, ujson.ErrBadIntRange)
	v32, err := z.I32In(-10, 10)
	fails(t, "I32In(-10, 10)", v32, err, ujson.ErrBadIntRange)
	u32, err := z.U32()
	expect(t, "U32", u32, err, 42)

	neg, err := mustParse(t, "-1").AsInt()
	if err != nil {
		t.Fatalf("AsInt: %v", err)
	}
	u32, err = neg.U32()
	fails(t, "U32(-1)", u32, err, ujson.ErrBadIntRange)
	v32, err = neg.I32()
	expect(t, "I32(-1)", v32, err, -1)

	big, err := mustParse(t, "\n4294967296").AsInt()
	if err != nil {
		t.Fatalf("AsInt: %v", err)
	}
	_, err = big.U32()
	checkErr(t, err, ujson.ErrBadIntRange, 2)
	_, err = big.I32()
	checkErr(t, err, ujson.ErrBadIntRange, 2)
}

func TestFloatRange(t *testing.T) {
	f, err := mustParse(t, "0.5").AsFloat()
	if err != nil {
		t.Fatalf("AsFloat: %v", err)
	}
	got, err := f.GetIn(0, 1)
	expect(t, "GetIn(0, 1)", got, err, 0.5)
	got, err = f.GetIn(0.6, 1)
	fails(t, "GetIn(0.6, 1)", got, err, ujson.ErrBadF64Range)

	if _, err := mustParse(t, "0.5").AsInt(); !errors.Is(err, ujson.ErrBadType) {
		t.Errorf("AsInt of float: got %v, want %v", err, ujson.ErrBadType)
	}
}

type color int

const (
	red color = iota
	green
	blue
)

var (
	colorNames  = []string{"red", "green", "blue"}
	colorValues = []color{red, green, blue}
)

func TestEnum(t *testing.T) {
	arr := parseArr(t, `["green", "yellow", "gren", 5]`)
	s0, _ := arr.Element(0).AsString()
	s1, _ := arr.Element(1).AsString()
	s2, _ := arr.Element(2).AsString()

	idx, err := s0.EnumIndex(colorNames)
	expect(t, "EnumIndex(green)", idx, err, 1)
	c, err := ujson.Enum(s0, colorNames, colorValues)
	expect(t, "Enum(green)", c, err, green)

	idx, err = s1.EnumIndex(colorNames)
	fails(t, "EnumIndex(yellow)", idx, err, ujson.ErrBadEnum)
	if err != nil && strings.Contains(err.Error(), "did you mean") {
		t.Errorf("EnumIndex(yellow): unexpected hint: %v", err)
	}
	c, err = ujson.Enum(s2, colorNames, colorValues)
	fails(t, "Enum(gren)", c, err, ujson.ErrBadEnum)
	if err != nil && !strings.Contains(err.Error(), `did you mean "green"?`) {
		t.Errorf("Enum(gren): missing hint: %v", err)
	}

	mtest.MustPanic(t, func() { ujson.Enum(s0, colorNames, colorValues[:2]) })
}

func TestRequireLen(t *testing.T) {
	arr := parseArr(t, "[1,2,3]")
	if err := arr.RequireLen(3); err != nil {
		t.Errorf("RequireLen(3): unexpected error: %v", err)
	}
	checkErr(t, arr.RequireLen(2), ujson.ErrBadArrLen, 1)
	if err := arr.RequireLenIn(1, 3); err != nil {
		t.Errorf("RequireLenIn(1, 3): unexpected error: %v", err)
	}
	checkErr(t, arr.RequireLenIn(4, 5), ujson.ErrBadArrLen, 1)
	checkErr(t, arr.RequireLenIn(0, 2), ujson.ErrBadArrLen, 1)
}

func TestElement(t *testing.T) {
	arr := parseArr(t, "[1,2,3]")
	for i := 0; i < arr.Len(); i++ {
		got, err := arr.GetI64(i)
		expect(t, "GetI64", got, err, int64(i+1))
	}
	mtest.MustPanic(t, func() { arr.Element(3) })
	mtest.MustPanic(t, func() { arr.Element(-1) })
	mtest.MustPanic(t, func() { arr.GetI32(100) })

	obj := parseObj(t, `{"foo":1, "bar":2}`)
	mtest.MustPanic(t, func() { obj.Element(2) })
	mtest.MustPanic(t, func() { obj.MemberName(100) })
}

func TestArrayGetters(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		arr := parseArr(t, "[false,true,null]")
		b, err := arr.GetBool(0)
		expect(t, "GetBool(0)", b, err, false)
		b, err = arr.GetBool(1)
		expect(t, "GetBool(1)", b, err, true)
		b, err = arr.GetBool(2)
		fails(t, "GetBool(2)", b, err, ujson.ErrBadType)
	})
	t.Run("I32", func(t *testing.T) {
		arr := parseArr(t, "[256, 21474836470, null]")
		v, err := arr.GetI32(0)
		expect(t, "GetI32(0)", v, err, 256)
		v, err = arr.GetI32In(0, 0, 255)
		fails(t, "GetI32In(0, 0, 255)", v, err, ujson.ErrBadIntRange)
		v, err = arr.GetI32(1)
		fails(t, "GetI32(1)", v, err, ujson.ErrBadIntRange)
		v, err = arr.GetI32(2)
		fails(t, "GetI32(2)", v, err, ujson.ErrBadType)
	})
	t.Run("U32", func(t *testing.T) {
		arr := parseArr(t, "[256, 21474836470, null]")
		v, err := arr.GetU32(0)
		expect(t, "GetU32(0)", v, err, 256)
		v, err = arr.GetU32In(0, 0, 255)
		fails(t, "GetU32In(0, 0, 255)", v, err, ujson.ErrBadIntRange)
		v, err = arr.GetU32(1)
		fails(t, "GetU32(1)", v, err, ujson.ErrBadIntRange)
		v, err = arr.GetU32(2)
		fails(t, "GetU32(2)", v, err, ujson.ErrBadType)
	})
	t.Run("I64", func(t *testing.T) {
		arr := parseArr(t, "[256, 21474836470, null]")
		v, err := arr.GetI64(0)
		expect(t, "GetI64(0)", v, err, 256)
		v, err = arr.GetI64In(0, 0, 255)
		fails(t, "GetI64In(0, 0, 255)", v, err, ujson.ErrBadIntRange)
		v, err = arr.GetI64(1)
		expect(t, "GetI64(1)", v, err, 21474836470)
		v, err = arr.GetI64(2)
		fails(t, "GetI64(2)", v, err, ujson.ErrBadType)
	})
	t.Run("F64", func(t *testing.T) {
		arr := parseArr(t, "[3.14, 42, null]")
		v, err := arr.GetF64(0)
		expect(t, "GetF64(0)", v, err, 3.14)
		v, err = arr.GetF64In(0, 10, 100)
		fails(t, "GetF64In(0, 10, 100)", v, err, ujson.ErrBadF64Range)
		v, err = arr.GetF64(1)
		expect(t, "GetF64(1)", v, err, 42)
		v, err = arr.GetF64(2)
		fails(t, "GetF64(2)", v, err, ujson.ErrBadType)
	})
	t.Run("Str", func(t *testing.T) {
		arr := parseArr(t, `["one","two",null]`)
		v, err := arr.GetStr(0)
		expect(t, "GetStr(0)", v, err, "one")
		v, err = arr.GetStr(1)
		expect(t, "GetStr(1)", v, err, "two")
		v, err = arr.GetStr(2)
		fails(t, "GetStr(2)", v, err, ujson.ErrBadType)
	})
	t.Run("Arr", func(t *testing.T) {
		arr := parseArr(t, "[[1, 2, 3], null]")
		v, err := arr.GetArr(0)
		if err != nil || v.Len() != 3 {
			t.Errorf("GetArr(0): got %v, %v; want length 3", v, err)
		}
		v, err = arr.GetArr(1)
		fails(t, "GetArr(1)", v, err, ujson.ErrBadType)
	})
	t.Run("Obj", func(t *testing.T) {
		arr := parseArr(t, "[{}, null]")
		v, err := arr.GetObj(0)
		if err != nil || v.Len() != 0 {
			t.Errorf("GetObj(0): got %v, %v; want length 0", v, err)
		}
		v, err = arr.GetObj(1)
		fails(t, "GetObj(1)", v, err, ujson.ErrBadType)
	})
}

func TestObjectLookup(t *testing.T) {
	obj := parseObj(t, `{"foo":1, "bar":null}`)

	idx, err := obj.MemberIndex("foo")
	expect(t, "MemberIndex(foo)", idx, err, 0)
	idx, err = obj.MemberIndex("bar")
	expect(t, "MemberIndex(bar)", idx, err, 1)
	idx, err = obj.MemberIndex("absent")
	fails(t, "MemberIndex(absent)", idx, err, ujson.ErrMemberNotFound)
	if got := obj.FindIndex("absent"); got != -1 {
		t.Errorf("FindIndex(absent): got %d, want -1", got)
	}

	if got := obj.MemberName(0); got != "foo" {
		t.Errorf("MemberName(0): got %q, want foo", got)
	}
	if got := obj.MemberName(1); got != "bar" {
		t.Errorf("MemberName(1): got %q, want bar", got)
	}

	if v, err := obj.Member("foo"); err != nil || v.Type() != ujson.TypeInt {
		t.Errorf("Member(foo): got %v, %v; want int", v, err)
	}
	if v, err := obj.Member("bar"); err != nil || v.Type() != ujson.TypeNull {
		t.Errorf("Member(bar): got %v, %v; want null", v, err)
	}
	if v := obj.FindMember("absent"); v != nil {
		t.Errorf("FindMember(absent): got %v, want nil", v)
	}
	v, err := obj.Member("absent")
	fails(t, "Member(absent)", v, err, ujson.ErrMemberNotFound)
}

func TestObjectGetters(t *testing.T) {
	const ints = `{"foo":42, "bar":21474836470, "baz":null}`

	t.Run("Bool", func(t *testing.T) {
		obj := parseObj(t, `{"foo":false, "bar":true, "baz":null}`)
		v, err := obj.GetBool("foo")
		expect(t, "GetBool(foo)", v, err, false)
		v, err = obj.GetBool("bar")
		expect(t, "GetBool(bar)", v, err, true)
		v, err = obj.GetBool("baz")
		fails(t, "GetBool(baz)", v, err, ujson.ErrBadType)
		v, err = obj.GetBoolOr("absent", false)
		expect(t, "GetBoolOr(absent, false)", v, err, false)
		v, err = obj.GetBoolOr("absent", true)
		expect(t, "GetBoolOr(absent, true)", v, err, true)
		v, err = obj.GetBool("absent")
		fails(t, "GetBool(absent)", v, err, ujson.ErrMemberNotFound)
	})
	t.Run("I32", func(t *testing.T) {
		obj := parseObj(t, ints)
		v, err := obj.GetI32("foo")
		expect(t, "GetI32(foo)", v, err, 42)
		v, err = obj.GetI32In("foo", 100, 200)
		fails(t, "GetI32In(foo)", v, err, ujson.ErrBadIntRange)
		v, err = obj.GetI32("bar")
		fails(t, "GetI32(bar)", v, err, ujson.ErrBadIntRange)
		v, err = obj.GetI32("baz")
		fails(t, "GetI32(baz)", v, err, ujson.ErrBadType)
		v, err = obj.GetI32InOr("absent", 0, -1, 123)
		expect(t, "GetI32InOr(absent)", v, err, 123)
		v, err = obj.GetI32Or("foo", 123)
		expect(t, "GetI32Or(foo)", v, err, 42)
		v, err = obj.GetI32Or("baz", 123)
		fails(t, "GetI32Or(baz)", v, err, ujson.ErrBadType)
		v, err = obj.GetI32("absent")
		fails(t, "GetI32(absent)", v, err, ujson.ErrMemberNotFound)
	})
	t.Run("U32", func(t *testing.T) {
		obj := parseObj(t, ints)
		v, err := obj.GetU32("foo")
		expect(t, "GetU32(foo)", v, err, 42)
		v, err = obj.GetU32In("foo", 100, 200)
		fails(t, "GetU32In(foo)", v, err, ujson.ErrBadIntRange)
		v, err = obj.GetU32("bar")
		fails(t, "GetU32(bar)", v, err, ujson.ErrBadIntRange)
		v, err = obj.GetU32("baz")
		fails(t, "GetU32(baz)", v, err, ujson.ErrBadType)
		v, err = obj.GetU32InOr("absent", 1, 0, 123)
		expect(t, "GetU32InOr(absent)", v, err, 123)
		v, err = obj.GetU32Or("absent", 7)
		expect(t, "GetU32Or(absent)", v, err, 7)
		v, err = obj.GetU32("absent")
		fails(t, "GetU32(absent)", v, err, ujson.ErrMemberNotFound)
	})
	t.Run("I64", func(t *testing.T) {
		obj := parseObj(t, ints)
		v, err := obj.GetI64("foo")
		expect(t, "GetI64(foo)", v, err, 42)
		v, err = obj.GetI64In("foo", 100, 200)
		fails(t, "GetI64In(foo)", v, err, ujson.ErrBadIntRange)
		v, err = obj.GetI64("bar")
		expect(t, "GetI64(bar)", v, err, 21474836470)
		v, err = obj.GetI64("baz")
		fails(t, "GetI64(baz)", v, err, ujson.ErrBadType)
		v, err = obj.GetI64InOr("absent", 0, -1, 123)
		expect(t, "GetI64InOr(absent)", v, err, 123)
		v, err = obj.GetI64Or("absent", -5)
		expect(t, "GetI64Or(absent)", v, err, -5)
		v, err = obj.GetI64("absent")
		fails(t, "GetI64(absent)", v, err, ujson.ErrMemberNotFound)
	})
	t.Run("F64", func(t *testing.T) {
		obj := parseObj(t, `{"foo":3.14, "bar":42, "baz":null}`)
		v, err := obj.GetF64("foo")
		expect(t, "GetF64(foo)", v, err, 3.14)
		v, err = obj.GetF64In("foo", 100, 200)
		fails(t, "GetF64In(foo)", v, err, ujson.ErrBadF64Range)
		v, err = obj.GetF64("bar")
		expect(t, "GetF64(bar)", v, err, 42)
		v, err = obj.GetF64("baz")
		fails(t, "GetF64(baz)", v, err, ujson.ErrBadType)
		v, err = obj.GetF64InOr("absent", 0, -1, 123)
		expect(t, "GetF64InOr(absent)", v, err, 123)
		v, err = obj.GetF64Or("absent", 0.25)
		expect(t, "GetF64Or(absent)", v, err, 0.25)
		v, err = obj.GetF64("absent")
		fails(t, "GetF64(absent)", v, err, ujson.ErrMemberNotFound)
	})
	t.Run("Str", func(t *testing.T) {
		obj := parseObj(t, `{"foo":"one", "bar":"two", "baz":null}`)
		v, err := obj.GetStr("foo")
		expect(t, "GetStr(foo)", v, err, "one")
		v, err = obj.GetStr("bar")
		expect(t, "GetStr(bar)", v, err, "two")
		v, err = obj.GetStr("baz")
		fails(t, "GetStr(baz)", v, err, ujson.ErrBadType)
		v, err = obj.GetStrOr("absent", "default")
		expect(t, "GetStrOr(absent)", v, err, "default")
		v, err = obj.GetStr("absent")
		fails(t, "GetStr(absent)", v, err, ujson.ErrMemberNotFound)
	})
	t.Run("StrEnum", func(t *testing.T) {
		obj := parseObj(t, `{"foo": "green", "bar": "yellow"}`)
		v, err := ujson.StrEnum(obj, "foo", colorNames, colorValues)
		expect(t, "StrEnum(foo)", v, err, green)
		v, err = ujson.StrEnumOr(obj, "baz", colorNames, colorValues, blue)
		expect(t, "StrEnumOr(baz)", v, err, blue)
		v, err = ujson.StrEnum(obj, "bar", colorNames, colorValues)
		fails(t, "StrEnum(bar)", v, err, ujson.ErrBadEnum)
		v, err = ujson.StrEnum(obj, "baz", colorNames, colorValues)
		fails(t, "StrEnum(baz)", v, err, ujson.ErrMemberNotFound)

		mtest.MustPanic(t, func() { ujson.StrEnum(obj, "foo", colorNames, colorValues[1:]) })
	})
	t.Run("Arr", func(t *testing.T) {
		obj := parseObj(t, `{"foo":[1,2,3], "baz":null}`)
		if v, err := obj.GetArr("foo"); err != nil || v.Len() != 3 {
			t.Errorf("GetArr(foo): got %v, %v; want length 3", v, err)
		}
		v, err := obj.GetArr("baz")
		fails(t, "GetArr(baz)", v, err, ujson.ErrBadType)
		v, err = obj.GetArr("absent")
		fails(t, "GetArr(absent)", v, err, ujson.ErrMemberNotFound)

		if v, err := obj.GetArrOpt("foo"); err != nil || v == nil || v.Len() != 3 {
			t.Errorf("GetArrOpt(foo): got %v, %v; want length 3", v, err)
		}
		if v, err := obj.GetArrOpt("absent"); err != nil || v != nil {
			t.Errorf("GetArrOpt(absent): got %v, %v; want nil, nil", v, err)
		}
		v, err = obj.GetArrOpt("baz")
		fails(t, "GetArrOpt(baz)", v, err, ujson.ErrBadType)
	})
	t.Run("Obj", func(t *testing.T) {
		obj := parseObj(t, `{"foo":{}, "baz":null}`)
		if v, err := obj.GetObj("foo"); err != nil || v.Len() != 0 {
			t.Errorf("GetObj(foo): got %v, %v; want length 0", v, err)
		}
		v, err := obj.GetObj("baz")
		fails(t, "GetObj(baz)", v, err, ujson.ErrBadType)
		v, err = obj.GetObj("absent")
		fails(t, "GetObj(absent)", v, err, ujson.ErrMemberNotFound)

		if v, err := obj.GetObjOpt("foo"); err != nil || v == nil || v.Len() != 0 {
			t.Errorf("GetObjOpt(foo): got %v, %v; want length 0", v, err)
		}
		if v, err := obj.GetObjOpt("absent"); err != nil || v != nil {
			t.Errorf("GetObjOpt(absent): got %v, %v; want nil, nil", v, err)
		}
		v, err = obj.GetObjOpt("baz")
		fails(t, "GetObjOpt(baz)", v, err, ujson.ErrBadType)
	})
}

func TestComposite(t *testing.T) {
	root := parseObj(t, testConfig)

	name, err := root.GetStr("name")
	expect(t, "name", name, err, "Main Window")
	width, err := root.GetI32In("width", 0, 16384)
	expect(t, "width", width, err, 640)
	onTop, err := root.GetBoolOr("on_top", true)
	expect(t, "on_top", onTop, err, false)
	opacity, err := root.GetF64InOr("opacity", 0, 1, 1)
	expect(t, "opacity", opacity, err, 0.9)

	menu, err := root.GetArr("menu")
	if err != nil {
		t.Fatalf("GetArr(menu): %v", err)
	}
	if err := menu.RequireLen(3); err != nil {
		t.Fatalf("menu: %v", err)
	}
	var items []string
	for i := 0; i < menu.Len(); i++ {
		s, err := menu.GetStr(i)
		if err != nil {
			t.Fatalf("GetStr(%d): %v", i, err)
		}
		items = append(items, s)
	}
	if diff := cmp.Diff([]string{"Open", "Save", "Exit"}, items); diff != "" {
		t.Errorf("Menu items (-want, +got):\n%s", diff)
	}

	widgets, err := root.GetArr("widgets")
	if err != nil {
		t.Fatalf("GetArr(widgets): %v", err)
	}
	type widget struct{ Type, Name string }
	var ws []widget
	for i := 0; i < widgets.Len(); i++ {
		item, err := widgets.GetObj(i)
		if err != nil {
			t.Fatalf("GetObj(%d): %v", i, err)
		}
		typ, err1 := item.GetStr("type")
		name, err2 := item.GetStr("name")
		if err := errors.Join(err1, err2); err != nil {
			t.Fatalf("Widget %d: %v", i, err)
		}
		ws = append(ws, widget{typ, name})
	}
	if diff := cmp.Diff([]widget{{"button", "OK"}, {"button", "Cancel"}}, ws); diff != "" {
		t.Errorf("Widgets (-want, +got):\n%s", diff)
	}

	rgb, err := root.GetArr("color_rgb")
	if err != nil {
		t.Fatalf("GetArr(color_rgb): %v", err)
	}
	for i, w := range []int32{0, 0, 255} {
		got, err := rgb.GetI32In(i, 0, 255)
		expect(t, "color_rgb", got, err, w)
	}
}

func TestRejectUnknownMembers(t *testing.T) {
	const input = `{
        "num" : 1,
        "arr" : [
            2,
            {"foo":42}
        ],
        "ignore": {"foo": 1},
    }`
	root := parseObj(t, input)

	ign, err := root.GetObj("ignore")
	if err != nil {
		t.Fatalf("GetObj(ignore): %v", err)
	}
	ign.IgnoreMembers()
	checkErr(t, root.RejectUnknownMembers(), ujson.ErrUnknownMember, 2)

	if _, err := root.GetI32("num"); err != nil {
		t.Fatalf("GetI32(num): %v", err)
	}
	checkErr(t, root.RejectUnknownMembers(), ujson.ErrUnknownMember, 3)

	arr, err := root.GetArr("arr")
	if err != nil {
		t.Fatalf("GetArr(arr): %v", err)
	}
	checkErr(t, root.RejectUnknownMembers(), ujson.ErrUnknownMember, 5)

	obj, err := arr.GetObj(1)
	if err != nil {
		t.Fatalf("GetObj(1): %v", err)
	}
	if _, err := obj.GetI32("foo"); err != nil {
		t.Fatalf("GetI32(foo): %v", err)
	}
	if err := root.RejectUnknownMembers(); err != nil {
		t.Errorf("RejectUnknownMembers: unexpected error: %v", err)
	}
}

func TestRejectUnknownMembersNested(t *testing.T) {
	// IgnoreMembers exempts only the direct members of an object.
	root := parseObj(t, `{"a": {"b": 1}}`)
	root.IgnoreMembers()
	err := root.RejectUnknownMembers()
	checkErr(t, err, ujson.ErrUnknownMember, 1)
	if err != nil && !strings.Contains(err.Error(), `"b"`) {
		t.Errorf("RejectUnknownMembers: got %v, want mention of b", err)
	}

	// Index lookups do not count as reads.
	root = parseObj(t, `{"a": 1}`)
	if i := root.FindIndex("a"); i != 0 {
		t.Fatalf("FindIndex(a): got %d, want 0", i)
	}
	checkErr(t, root.RejectUnknownMembers(), ujson.ErrUnknownMember, 1)
	root.Element(0)
	if err := root.RejectUnknownMembers(); err != nil {
		t.Errorf("RejectUnknownMembers: unexpected error: %v", err)
	}

	// A failed conversion does not count as a read.
	root = parseObj(t, `{"a": "x", "b": 500}`)
	if _, err := root.GetI32("a"); !errors.Is(err, ujson.ErrBadType) {
		t.Errorf("GetI32(a): got %v, want %v", err, ujson.ErrBadType)
	}
	if _, err := root.GetI32InOr("b", 0, 255, 1); !errors.Is(err, ujson.ErrBadIntRange) {
		t.Errorf("GetI32InOr(b): got %v, want %v", err, ujson.ErrBadIntRange)
	}
	err = root.RejectUnknownMembers()
	checkErr(t, err, ujson.ErrUnknownMember, 1)
	if err != nil && !strings.Contains(err.Error(), `"a"`) {
		t.Errorf("RejectUnknownMembers: got %v, want mention of a", err)
	}

	if got, err := root.GetStr("a"); err != nil || got != "x" {
		t.Errorf("GetStr(a): got %q, %v; want x, nil", got, err)
	}
	err = root.RejectUnknownMembers()
	if err != nil && !strings.Contains(err.Error(), `"b"`) {
		t.Errorf("RejectUnknownMembers: got %v, want mention of b", err)
	}
	checkErr(t, err, ujson.ErrUnknownMember, 1)

	if got, err := root.GetI32In("b", 0, 1000); err != nil || got != 500 {
		t.Errorf("GetI32In(b): got %v, %v; want 500, nil", got, err)
	}
	if err := root.RejectUnknownMembers(); err != nil {
		t.Errorf("RejectUnknownMembers: unexpected error: %v", err)
	}
}

func TestErrorMessages(t *testing.T) {
	root := parseObj(t, "{\n\"width\": 640,\n\"height\": 480}")

	_, err := root.GetI32("widht")
	checkErr(t, err, ujson.ErrMemberNotFound, 1)
	if err != nil && !strings.Contains(err.Error(), `did you mean "width"?`) {
		t.Errorf("GetI32(widht): missing hint: %v", err)
	}

	_, err = root.GetI32("depth")
	if err != nil && strings.Contains(err.Error(), "did you mean") {
		t.Errorf("GetI32(depth): unexpected hint: %v", err)
	}

	_, err = root.GetI32In("height", 0, 100)
	checkErr(t, err, ujson.ErrBadIntRange, 3)
	if err != nil {
		if got, want := err.Error(), "at line 3: integer out of range: 480 is not in [0, 100]"; got != want {
			t.Errorf("Error: got %q, want %q", got, want)
		}
	}
}

func TestEndToEnd(t *testing.T) {
	root := parseObj(t, `{"width":640,"height":480}`)
	w, err := root.GetI32In("width", 0, 16384)
	expect(t, "GetI32In(width)", w, err, 640)
	m, err := root.GetI32InOr("missing", 0, 100, 7)
	expect(t, "GetI32InOr(missing)", m, err, 7)
	_, err = root.GetI32("missing")
	checkErr(t, err, ujson.ErrMemberNotFound, 1)
}
