package linkedhashset

import (
	"testing"

	godsmap "github.com/emirpasic/gods/maps/linkedhashmap"
	godsset "github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"jsouthworth.net/go/linked/linkedhashmap"
)

func firstSeen(xs []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

func TestSet(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("New(xs) keeps first occurrences in order", prop.ForAll(
		func(xs []string) bool {
			s := New(xs...)
			return cmp.Equal(s.Elements(), firstSeen(xs)) &&
				s.Length() == len(firstSeen(xs))
		},
		gen.SliceOf(gen.OneConstOf("a", "b", "c", "d")),
	))
	properties.Property("Add reports absence and never reorders", prop.ForAll(
		func(xs []string, x string) bool {
			s := New(xs...)
			had := s.Contains(x)
			before := s.Elements()
			added := s.Add(x)
			if had {
				return !added && cmp.Equal(before, s.Elements())
			}
			return added && s.Elements()[s.Length()-1] == x
		},
		gen.SliceOf(gen.Identifier()),
		gen.Identifier(),
	))
	properties.Property("Delete removes only the element", prop.ForAll(
		func(xs []string) bool {
			uniq := firstSeen(xs)
			if len(uniq) == 0 {
				return true
			}
			s := New(uniq...)
			return s.Delete(uniq[0]) &&
				!s.Delete(uniq[0]) &&
				!s.Contains(uniq[0]) &&
				cmp.Equal(s.Elements(), uniq[1:])
		},
		gen.SliceOf(gen.Identifier()),
	))
	properties.Property("Copy is independent", prop.ForAll(
		func(xs []string, x string) bool {
			s := New(xs...)
			c := s.Copy()
			c.Add(x + "!")
			return c.Length() == s.Length()+1 &&
				!s.Contains(x+"!") &&
				From[string](s).Equal(s)
		},
		gen.SliceOf(gen.Identifier()),
		gen.Identifier(),
	))
	properties.TestingRun(t)
}

func TestClear(t *testing.T) {
	s := New(1, 2, 3)
	s.Clear()
	if !s.IsEmpty() || s.Contains(1) {
		t.Fatal("Clear left elements")
	}
}

func TestOptions(t *testing.T) {
	s := Empty[int](linkedhashmap.Hash(func(int) uintptr { return 0 }))
	for i := 0; i < 50; i++ {
		s.Add(i % 25)
	}
	if s.Length() != 25 {
		t.Fatalf("expected 25 elements, got %d", s.Length())
	}
}

func TestFrom(t *testing.T) {
	if diff := cmp.Diff([]int{3, 1, 2}, From[int]([]int{3, 1, 3, 2}).Elements()); diff != "" {
		t.Fatalf("From([]T) (-want +got):\n%s", diff)
	}
	s := New("x", "y")
	if !From[string](s.Walker()).Equal(s) {
		t.Fatal("From(Walker) lost elements")
	}
	g := godsset.New(3, 1, 3, 2)
	git := g.Iterator()
	if diff := cmp.Diff([]int{3, 1, 2}, From[int](&git).Elements()); diff != "" {
		t.Fatalf("From(gods set iterator) (-want +got):\n%s", diff)
	}
	gm := godsmap.New()
	gm.Put("k2", 1)
	gm.Put("k1", 2)
	gmit := gm.Iterator()
	if diff := cmp.Diff([]string{"k2", "k1"}, From[string](&gmit).Elements()); diff != "" {
		t.Fatalf("From(gods map iterator) (-want +got):\n%s", diff)
	}
	m := From[string](map[string]bool{"p": true, "q": false})
	if m.Length() != 2 || !m.Contains("p") || !m.Contains("q") {
		t.Fatal("From(map) lost keys")
	}
	if !From[string](7).IsEmpty() {
		t.Fatal("From of unsupported type is not empty")
	}
}

func TestRange(t *testing.T) {
	s := New(1, 2, 3, 4)
	var sum int
	s.Range(func(i int) {
		sum += i
	})
	if sum != 10 {
		t.Fatalf("Range func(T) sum %d", sum)
	}
	sum = 0
	s.Range(func(i int) bool {
		sum += i
		return i < 2
	})
	if sum != 3 {
		t.Fatalf("Range func(T) bool sum %d", sum)
	}
	var got []interface{}
	s.Range(func(v interface{}) {
		got = append(got, v)
	})
	if !cmp.Equal(got, []interface{}{1, 2, 3, 4}) {
		t.Fatalf("reflective Range got %v", got)
	}

	var all []int
	for v := range s.All() {
		all = append(all, v)
	}
	if !cmp.Equal(all, []int{1, 2, 3, 4}) {
		t.Fatalf("All got %v", all)
	}

	defer func() {
		if r := recover(); r != errRangeSig {
			t.Fatal("bad Range signature did not panic")
		}
	}()
	s.Range(func(a, b int) {})
}

func TestWalker(t *testing.T) {
	if Empty[int]().Walker().First() {
		t.Fatal("empty set has a first element")
	}
	s := New(10, 20, 30)
	w := s.Walker()
	var idx []int
	var vals []interface{}
	for w.Next() {
		idx = append(idx, w.Index())
		vals = append(vals, w.Value())
	}
	if !cmp.Equal(idx, []int{0, 1, 2}) || !cmp.Equal(vals, []interface{}{10, 20, 30}) {
		t.Fatalf("forward walk got %v %v", idx, vals)
	}
	if w.Index() != 3 || w.Next() {
		t.Fatal("walker did not stop past the end")
	}
	if !w.Prev() || w.Index() != 2 || w.Value() != 30 {
		t.Fatal("Prev from past the end is not the last element")
	}
	if !w.First() || w.Value() != 10 || w.Prev() || w.Index() != -1 {
		t.Fatal("Prev from the first element did not stop")
	}
	if !w.Last() || w.Value() != 30 {
		t.Fatal("Last is not the last element")
	}
	w.Begin()
	if !w.NextTo(func(_ int, v interface{}) bool { return v.(int) > 10 }) ||
		w.Index() != 1 {
		t.Fatal("NextTo stopped on the wrong element")
	}
	w.End()
	if !w.PrevTo(func(i int, _ interface{}) bool { return i == 0 }) ||
		w.Value() != 10 {
		t.Fatal("PrevTo stopped on the wrong element")
	}
}

func TestString(t *testing.T) {
	if got := New("b", "a", "b").String(); got != "{ b a }" {
		t.Fatalf("String() = %q", got)
	}
}
