package linkedhashmap

import (
	"testing"

	godsmap "github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestAgainstReference replays random insert and erase sequences on
// both the Map and gods' linked hash map and compares the results.
// Positive operands insert, negative operands erase.
func TestAgainstReference(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("matches gods linkedhashmap", prop.ForAll(
		func(ops []int) bool {
			m := Empty[int, int]()
			ref := godsmap.New()
			for i, op := range ops {
				if op < 0 {
					key := -op
					ref.Remove(key)
					if it := m.Find(key); !it.IsEnd() {
						if m.Erase(it) != nil {
							return false
						}
					}
					continue
				}
				// gods overwrites on Put; the Map keeps the first value.
				if _, found := ref.Get(op); !found {
					ref.Put(op, i)
				}
				m.Insert(op, i)
			}
			if m.Length() != ref.Size() {
				t.Logf("length %d, reference %d", m.Length(), ref.Size())
				return false
			}
			want := make([]int, 0, ref.Size())
			wantVals := make([]int, 0, ref.Size())
			it := ref.Iterator()
			for it.Next() {
				want = append(want, it.Key().(int))
				wantVals = append(wantVals, it.Value().(int))
			}
			if diff := cmp.Diff(want, m.Keys()); diff != "" {
				t.Logf("keys (-want +got):\n%s", diff)
				return false
			}
			return cmp.Equal(wantVals, m.Values())
		},
		gen.SliceOf(gen.IntRange(-40, 40)),
	))
	properties.TestingRun(t)
}
