package hashset

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func assert(t *testing.T, b bool, msg string) {
	t.Helper()
	if !b {
		t.Fatal(msg)
	}
}

func TestSet(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("New(xs) contains every x", prop.ForAll(
		func(xs []int) bool {
			s := New(xs...)
			for _, x := range xs {
				if !s.Contains(x) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))
	properties.Property("Length counts distinct elements", prop.ForAll(
		func(xs []int) bool {
			uniq := make(map[int]struct{})
			for _, x := range xs {
				uniq[x] = struct{}{}
			}
			return New(xs...).Length() == len(uniq)
		},
		gen.SliceOf(gen.IntRange(0, 20)),
	))
	properties.Property("Add reports new elements only", prop.ForAll(
		func(x int) bool {
			s := Empty[int]()
			return s.Add(x) && !s.Add(x) && s.Length() == 1
		},
		gen.Int(),
	))
	properties.Property("Delete(x) removes x", prop.ForAll(
		func(xs []int, x int) bool {
			s := New(xs...)
			s.Add(x)
			return s.Delete(x) && !s.Contains(x) && !s.Delete(x)
		},
		gen.SliceOf(gen.Int()),
		gen.Int(),
	))
	properties.Property("From(s.Seq()) has the same elements", prop.ForAll(
		func(xs []string) bool {
			s := New(xs...)
			other := From[string](s.Seq())
			if other.Length() != s.Length() {
				return false
			}
			ok := true
			s.Range(func(x string) bool {
				ok = other.Contains(x)
				return ok
			})
			return ok
		},
		gen.SliceOf(gen.Identifier()),
	))
	properties.TestingRun(t)
}

func TestFromSet(t *testing.T) {
	s := New("a")
	other := From[string](s)
	assert(t, other != s, "From(*Set) builds a new set")
	assert(t, other.Length() == 1 && other.Contains("a"), "copy has the elements")
	other.Add("b")
	assert(t, !s.Contains("b"), "adding to the copy leaves the original alone")
	s.Delete("a")
	assert(t, other.Contains("a"), "deleting from the original leaves the copy alone")
}

func TestFromTypes(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  []string
	}{
		{name: "slice", value: []string{"c", "a", "c", "b"}, want: []string{"a", "b", "c"}},
		{name: "interfaces", value: []interface{}{"b", "a"}, want: []string{"a", "b"}},
		{name: "native set", value: map[string]struct{}{"x": {}, "y": {}}, want: []string{"x", "y"}},
		{name: "nil", value: nil, want: []string{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := []string{}
			From[string](test.value).Range(func(x string) bool {
				got = append(got, x)
				return true
			})
			sort.Strings(got)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Fatalf("elements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromWrongType(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  error
	}{
		{name: "sequence element", value: New("a").Seq(), want: errElemType},
		{name: "slice element", value: []interface{}{"a"}, want: errElemType},
		{name: "unsupported type", value: map[int]bool{1: true}, want: errFromType},
		{name: "scalar", value: 7, want: errFromType},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				assert(t, recover() == test.want, "From panics with "+test.want.Error())
			}()
			From[int](test.value)
		})
	}
}

func TestString(t *testing.T) {
	if s := Empty[int]().String(); s != "{ }" {
		t.Fatalf("String() = %q", s)
	}
	if s := New(1).String(); s != "{ 1 }" {
		t.Fatalf("String() = %q", s)
	}
}
