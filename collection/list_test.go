package collection

import (
	"slices"
	"strconv"
	"testing"

	"martianoff/flist/std"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBasics(t *testing.T) {
	t.Run("Of copies its input", func(t *testing.T) {
		src := []int{1, 2, 3}
		l := Of(src...)
		src[0] = 9
		assert.Equal(t, []int{1, 2, 3}, l.Slice())
	})

	t.Run("Slice returns a copy", func(t *testing.T) {
		l := Of(1, 2)
		s := l.Slice()
		s[0] = 9
		assert.Equal(t, 1, l.At(0))
	})

	t.Run("zero List is empty", func(t *testing.T) {
		var l List[string]
		assert.True(t, l.IsEmpty())
		assert.Equal(t, 0, l.Len())
		assert.Equal(t, std.None[string](), l.Head())
		assert.Equal(t, "List()", l.String())
	})

	t.Run("Get and Head", func(t *testing.T) {
		l := Of("a", "b")
		assert.Equal(t, std.Some("a"), l.Head())
		assert.Equal(t, std.Some("b"), l.Get(1))
		assert.True(t, l.Get(2).IsEmpty())
		assert.True(t, l.Get(-1).IsEmpty())
		assert.Panics(t, func() { l.At(5) })
	})

	t.Run("Append and Concat leave the receiver alone", func(t *testing.T) {
		l := Of(1, 2)
		l2 := l.Append(3)
		l3 := l.Concat(Of(4, 5))
		assert.Equal(t, []int{1, 2}, l.Slice())
		assert.Equal(t, []int{1, 2, 3}, l2.Slice())
		assert.Equal(t, []int{1, 2, 4, 5}, l3.Slice())
	})

	t.Run("iteration", func(t *testing.T) {
		l := Of(3, 1, 2)
		assert.Equal(t, []int{3, 1, 2}, slices.Collect(l.Values()))
		assert.Equal(t, l, Collect(l.Values()))

		var idx []int
		for i := range l.All() {
			idx = append(idx, i)
		}
		assert.Equal(t, []int{0, 1, 2}, idx)

		sum := 0
		l.ForEach(func(v int) { sum += v })
		assert.Equal(t, 6, sum)
	})

	t.Run("Filter", func(t *testing.T) {
		even := Of(1, 2, 3, 4).Filter(func(v int) bool { return v%2 == 0 })
		assert.Equal(t, []int{2, 4}, even.Slice())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "List(1, 2)", Of(1, 2).String())
	})
}

func TestMapFamily(t *testing.T) {
	t.Run("Map", func(t *testing.T) {
		l := Map(Of(1, 2, 3), strconv.Itoa)
		assert.Equal(t, []string{"1", "2", "3"}, l.Slice())
	})

	t.Run("TryMap", func(t *testing.T) {
		ok, err := TryMap(Of("1", "2"), strconv.Atoi)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, ok.Slice())

		calls := 0
		_, err = TryMap(Of("1", "x", "3"), func(s string) (int, error) {
			calls++
			return strconv.Atoi(s)
		})
		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("Flatten", func(t *testing.T) {
		l := Flatten(Of(Of(1, 2), Empty[int](), Of(3)))
		assert.Equal(t, []int{1, 2, 3}, l.Slice())
	})

	t.Run("FlatMap", func(t *testing.T) {
		l := FlatMap(Of(1, 2, 3), func(v int) List[int] {
			if v == 2 {
				return Empty[int]()
			}
			return Of(v, v*10)
		})
		assert.Equal(t, []int{1, 10, 3, 30}, l.Slice())
	})

	t.Run("TryFlatMap", func(t *testing.T) {
		l, err := TryFlatMap(Of("1,2", "3"), func(s string) (List[int], error) {
			var out []int
			for _, part := range splitComma(s) {
				n, err := strconv.Atoi(part)
				if err != nil {
					return List[int]{}, err
				}
				out = append(out, n)
			}
			return Of(out...), nil
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, l.Slice())

		_, err = TryFlatMap(Of("x"), func(s string) (List[int], error) {
			_, err := strconv.Atoi(s)
			return List[int]{}, err
		})
		assert.Error(t, err)
	})
}

func splitComma(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
