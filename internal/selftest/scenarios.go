package selftest

import (
	"errors"
	"slices"

	"github.com/cwbudde/algo-vector/container/vector"
)

// Scenarios returns the full suite in execution order.
func Scenarios() []Scenario {
	return []Scenario{
		{"construct/default", constructDefault},
		{"construct/sized", constructSized},
		{"construct/filled", constructFilled},
		{"construct/literal", constructLiteral},
		{"construct/reserve-hint", constructReserveHint},
		{"access/checked", accessChecked},
		{"clear", clearKeepsCapacity},
		{"resize/grow", resizeGrow},
		{"resize/shrink", resizeShrink},
		{"resize/regrow-zeroes", resizeRegrowZeroes},
		{"iterate", iterate},
		{"copy", copyIndependent},
		{"swap", swap},
		{"assign", assign},
		{"push-back", pushBack},
		{"push-back/no-growth", pushBackNoGrowth},
		{"pop-back", popBack},
		{"erase", erase},
		{"insert", insert},
		{"compare", compare},
		{"reserve", reserve},
		{"move/assign", moveAssign},
		{"move/construct", moveConstruct},
	}
}

func constructDefault() error {
	v := vector.New[int]()
	return all(
		expect(v.Len() == 0, "len = %d, want 0", v.Len()),
		expect(v.IsEmpty(), "default vector not empty"),
		expect(v.Cap() == 0, "cap = %d, want 0", v.Cap()),
	)
}

func constructSized() error {
	v := vector.WithSize[int](5)
	return all(
		expect(v.Len() == 5 && v.Cap() == 5, "shape = %d/%d, want 5/5", v.Len(), v.Cap()),
		expect(!v.IsEmpty(), "sized vector empty"),
		expect(slices.Equal(v.Data(), make([]int, 5)), "elements = %v, want zeros", v),
	)
}

func constructFilled() error {
	v := vector.Filled(3, 42)
	return all(
		expect(v.Len() == 3 && v.Cap() == 3, "shape = %d/%d, want 3/3", v.Len(), v.Cap()),
		expect(slices.Equal(v.Data(), []int{42, 42, 42}), "elements = %v", v),
	)
}

func constructLiteral() error {
	v := vector.Of(1, 2, 3)
	return all(
		expect(v.Len() == 3 && v.Cap() == 3, "shape = %d/%d, want 3/3", v.Len(), v.Cap()),
		expect(v.Get(2) == 3, "v[2] = %d, want 3", v.Get(2)),
	)
}

func constructReserveHint() error {
	v := vector.FromHint[int](vector.Reserve(5))
	return all(
		expect(v.Cap() == 5, "cap = %d, want 5", v.Cap()),
		expect(v.IsEmpty(), "hinted vector not empty"),
	)
}

func accessChecked() error {
	v := vector.WithSize[int](3)
	ref, err := v.RefAt(2)
	if err != nil {
		return err
	}
	if ref != v.Ref(2) {
		return errors.New("RefAt and Ref disagree")
	}
	_, err = v.At(3)
	return expect(errors.Is(err, vector.ErrOutOfRange), "At(3) err = %v, want out of range", err)
}

func clearKeepsCapacity() error {
	v := vector.WithSize[int](10)
	before := v.Cap()
	v.Clear()
	return all(
		expect(v.Len() == 0, "len = %d after Clear", v.Len()),
		expect(v.Cap() == before, "cap = %d, want %d", v.Cap(), before),
	)
}

func resizeGrow() error {
	v := vector.WithSize[int](3)
	v.Set(2, 17)
	v.Resize(7)
	return all(
		expect(v.Len() == 7, "len = %d, want 7", v.Len()),
		expect(v.Cap() == 14, "cap = %d, want 14", v.Cap()),
		expect(v.Get(2) == 17 && v.Get(3) == 0, "elements = %v", v),
	)
}

func resizeShrink() error {
	v := vector.Of(42, 55, 0)
	before := v.Cap()
	v.Resize(2)
	return all(
		expect(v.Len() == 2, "len = %d, want 2", v.Len()),
		expect(v.Cap() == before, "cap = %d, want %d", v.Cap(), before),
		expect(slices.Equal(v.Data(), []int{42, 55}), "elements = %v", v),
	)
}

func resizeRegrowZeroes() error {
	v := vector.WithSize[int](3)
	v.Resize(8)
	v.Set(3, 42)
	v.Resize(3)
	v.Resize(5)
	return expect(v.Get(3) == 0, "v[3] = %d after regrow, want 0", v.Get(3))
}

func iterate() error {
	empty := vector.New[int]()
	if empty.Begin() != empty.End() {
		return errors.New("empty vector: begin != end")
	}
	v := vector.Filled(10, 42)
	n := 0
	for e := range v.Values() {
		if e != 42 {
			return expect(false, "element %d = %d, want 42", n, e)
		}
		n++
	}
	return all(
		expect(n == 10, "iterated %d elements, want 10", n),
		expect(v.End() == v.Begin()+vector.Iterator(v.Len()), "end - begin != len"),
	)
}

func copyIndependent() error {
	src := vector.Of(1, 2)
	c := src.Clone()
	if c.Ref(0) == src.Ref(0) {
		return errors.New("copy shares storage with source")
	}
	c.Set(0, 9)
	return all(
		expect(src.Get(0) == 1, "source changed through copy"),
		expect(c.Len() == src.Len() && c.Cap() == src.Cap(), "copy shape %d/%d", c.Len(), c.Cap()),
	)
}

func swap() error {
	v := vector.Of(1, 2, 3)
	other := vector.Of(4, 5, 6, 7)
	other.Swap(v)
	return all(
		expect(other.Len() == 3 && other.Cap() == 3 && other.Get(2) == 3, "other = %v", other),
		expect(v.Len() == 4 && v.Cap() == 4 && v.Get(2) == 6, "v = %v", v),
	)
}

func assign() error {
	src := vector.Of(1, 2, 3, 4)
	dst := vector.Of(1, 2, 3, 4, 5, 6)
	dst.Assign(src)
	return expect(vector.Equal(dst, src), "dst = %v, want %v", dst, src)
}

func pushBack() error {
	v := vector.WithSize[int](1)
	v.PushBack(42)
	return all(
		expect(v.Len() == 2 && v.Cap() >= 2, "shape = %d/%d", v.Len(), v.Cap()),
		expect(slices.Equal(v.Data(), []int{0, 42}), "elements = %v", v),
	)
}

func pushBackNoGrowth() error {
	v := vector.WithSize[int](2)
	v.Resize(1)
	before := v.Cap()
	v.PushBack(123)
	return expect(v.Len() == 2 && v.Cap() == before, "shape = %d/%d, want 2/%d", v.Len(), v.Cap(), before)
}

func popBack() error {
	v := vector.Of(0, 1, 2, 3)
	before, first := v.Cap(), v.Ref(0)
	v.PopBack()
	return all(
		expect(v.Cap() == before, "cap = %d, want %d", v.Cap(), before),
		expect(v.Ref(0) == first, "PopBack reallocated"),
		expect(vector.Equal(v, vector.Of(0, 1, 2)), "v = %v", v),
	)
}

func erase() error {
	v := vector.Of(1, 2, 3, 4)
	v.Erase(v.Begin() + 2)
	return expect(vector.Equal(v, vector.Of(1, 2, 4)), "v = %v, want [1 2 4]", v)
}

func insert() error {
	v := vector.Of(1, 2, 3, 5)
	it := v.Insert(v.Begin()+1, 4)
	return all(
		expect(vector.Equal(v, vector.Of(1, 4, 2, 3, 5)), "v = %v, want [1 4 2 3 5]", v),
		expect(v.Get(int(it)) == 4, "iterator does not address inserted value"),
		expect(v.Cap() >= 5, "cap = %d, want >= 5", v.Cap()),
	)
}

func compare() error {
	return all(
		expect(vector.Equal(vector.Of(1, 2, 3), vector.Of(1, 2, 3)), "== failed"),
		expect(vector.NotEqual(vector.Of(1, 2, 3), vector.Of(1, 2, 2)), "!= failed"),
		expect(vector.Less(vector.Of(1, 2, 3), vector.Of(1, 2, 3, 1)), "< failed"),
		expect(vector.Greater(vector.Of(1, 2, 3), vector.Of(1, 2, 2, 1)), "> failed"),
		expect(vector.GreaterOrEqual(vector.Of(1, 2, 3), vector.Of(1, 2, 3)), ">= on equal failed"),
		expect(vector.GreaterOrEqual(vector.Of(1, 2, 4), vector.Of(1, 2, 3)), ">= failed"),
		expect(vector.LessOrEqual(vector.Of(1, 2, 3), vector.Of(1, 2, 3)), "<= on equal failed"),
		expect(vector.LessOrEqual(vector.Of(1, 2, 3), vector.Of(1, 2, 4)), "<= failed"),
	)
}

func reserve() error {
	v := vector.New[int]()
	v.Reserve(5)
	if v.Cap() != 5 || !v.IsEmpty() {
		return expect(false, "after Reserve(5): shape = %d/%d", v.Len(), v.Cap())
	}
	v.Reserve(1)
	if v.Cap() != 5 {
		return expect(false, "Reserve(1) shrank capacity to %d", v.Cap())
	}
	for i := range 10 {
		v.PushBack(i)
	}
	v.Reserve(100)
	for i := range 10 {
		if v.Get(i) != i {
			return expect(false, "v[%d] = %d after Reserve(100)", i, v.Get(i))
		}
	}
	return expect(v.Len() == 10 && v.Cap() == 100, "shape = %d/%d, want 10/100", v.Len(), v.Cap())
}

func moveAssign() error {
	v := vector.Of(3, 42)
	dst := vector.New[int]()
	dst.MoveFrom(v)
	return all(
		expect(dst.Len() == 2 && dst.Get(0) == 3 && dst.Get(1) == 42, "dst = %v", dst),
		expect(v.Len() == 0 && v.Cap() == 0, "source shape = %d/%d after move", v.Len(), v.Cap()),
	)
}

func moveConstruct() error {
	v := vector.Of(3, 42)
	dst := v.Move()
	return all(
		expect(dst.Len() == 2 && dst.Get(0) == 3 && dst.Get(1) == 42, "dst = %v", dst),
		expect(v.IsEmpty(), "source not empty after move"),
	)
}
