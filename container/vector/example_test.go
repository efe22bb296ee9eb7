package vector_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vector/container/vector"
)

func ExampleVector() {
	v := vector.Of(1, 2, 3, 5)
	v.Insert(v.Begin()+3, 4)
	v.PushBack(6)

	fmt.Println(v)
	fmt.Println(v.Len(), v.Cap())

	// Output:
	// [1 2 3 4 5 6]
	// 6 10
}

func ExampleFromHint() {
	v := vector.FromHint[int](vector.Reserve(5))
	for i := range 10 {
		v.PushBack(i)
	}
	v.Reserve(100)

	fmt.Println(v.Len(), v.Cap())

	// Output:
	// 10 100
}

func ExampleVector_At() {
	v := vector.Of("a", "b")
	_, err := v.At(2)

	fmt.Println(errors.Is(err, vector.ErrOutOfRange))
	fmt.Println(err)

	// Output:
	// true
	// vector: At: index 2 out of range [0:2]
}
