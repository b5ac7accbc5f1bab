package demo

import (
	"fmt"
	"math"
)

// Default returns the walkthrough catalog in presentation order.
func Default() *Catalog {
	return New(
		NewEntry("concat()", "Merges two or more arrays into a new array without modifying the original arrays.", false, concatDemo),
		NewEntry("push()", "Adds one or more elements to the end of an array and returns the new length.", true, pushDemo),
		NewEntry("pop()", "Removes the last element from an array and returns that element.", true, popDemo),
		NewEntry("unshift()", "Adds one or more elements to the beginning of an array and returns the new length.", true, unshiftDemo),
		NewEntry("shift()", "Removes the first element from an array and returns that element.", true, shiftDemo),
		NewEntry("splice()", "Changes array contents by removing, replacing, or adding elements at a specific position.", true, spliceDemo),
		NewEntry("slice()", "Returns a shallow copy of a portion of an array without modifying the original.", false, sliceDemo),
		NewEntry("map()", "Creates a new array with the results of calling a function on every element.", false, mapDemo),
		NewEntry("filter()", "Creates a new array with all elements that pass a test function.", false, filterDemo),
		NewEntry("reduce()", "Executes a reducer function on each element, resulting in a single output value.", false, reduceDemo),
		NewEntry("find()", "Returns the first element in the array that satisfies the provided testing function.", false, findDemo),
		NewEntry("findIndex()", "Returns the index of the first element that satisfies the testing function.", false, findIndexDemo),
		NewEntry("indexOf()", "Returns the first index at which a given element can be found, or -1 if not present.", false, indexOfDemo),
		NewEntry("includes()", "Determines whether an array includes a certain element, returning true or false.", false, includesDemo),
		NewEntry("some()", "Tests whether at least one element passes the provided function test.", false, someDemo),
		NewEntry("every()", "Tests whether all elements pass the provided function test.", false, everyDemo),
		NewEntry("sort()", "Sorts the elements of an array in place and returns the sorted array.", true, sortDemo),
		NewEntry("reverse()", "Reverses the order of elements in an array in place.", true, reverseDemo),
		NewEntry("join()", "Joins all elements into a string, separated by a specified separator.", false, joinDemo),
		NewEntry("flat()", "Creates a new array with all sub-array elements concatenated into it.", false, flatDemo),
		NewEntry("flatMap()", "Maps each element using a function, then flattens the result into a new array.", false, flatMapDemo),
		NewEntry("fill()", "Fills all array elements with a static value from a start to an end index.", true, fillDemo),
		NewEntry("forEach()", "Executes a provided function once for each array element.", false, forEachDemo),
	)
}

func greaterThan(n float64) func(Value) bool {
	return func(v Value) bool { return v.Number() > n }
}

func isEven(v Value) bool { return math.Mod(v.Number(), 2) == 0 }

func concatDemo() Snapshot {
	arr1, arr2 := newArray(Ints(1, 2, 3)), newArray(Ints(4, 5, 6))
	result := arr1.concat(arr2)
	return Snapshot{
		Before:      []Field{field("arr1", arr1.value()), field("arr2", arr2.value())},
		After:       []Field{field("result", result.value())},
		Code:        "const result = arr1.concat(arr2);",
		Explanation: "Creates a new array containing all elements from arr1 followed by all elements from arr2.",
	}
}

func pushDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3))
	before := arr.clone()
	length := arr.push(Int(4), Int(5))
	return Snapshot{
		Before:      []Field{field("arr", before.value())},
		After:       []Field{field("arr", arr.value()), field("length", Int(length))},
		Code:        fmt.Sprintf("arr.push(4, 5); // Returns: %d", length),
		Explanation: "Adds elements to the end and returns the new array length.",
	}
}

func popDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3, 4, 5))
	before := arr.clone()
	removed, _ := arr.pop()
	return Snapshot{
		Before:      []Field{field("arr", before.value())},
		After:       []Field{field("arr", arr.value()), field("removed", removed)},
		Code:        "const removed = arr.pop(); // Returns: " + removed.Plain(),
		Explanation: "Removes and returns the last element from the array.",
	}
}

func unshiftDemo() Snapshot {
	arr := newArray(Ints(3, 4, 5))
	before := arr.clone()
	length := arr.unshift(Int(1), Int(2))
	return Snapshot{
		Before:      []Field{field("arr", before.value())},
		After:       []Field{field("arr", arr.value()), field("length", Int(length))},
		Code:        fmt.Sprintf("arr.unshift(1, 2); // Returns: %d", length),
		Explanation: "Adds elements to the beginning and returns the new length.",
	}
}

func shiftDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3, 4, 5))
	before := arr.clone()
	removed, _ := arr.shift()
	return Snapshot{
		Before:      []Field{field("arr", before.value())},
		After:       []Field{field("arr", arr.value()), field("removed", removed)},
		Code:        "const removed = arr.shift(); // Returns: " + removed.Plain(),
		Explanation: "Removes and returns the first element from the array.",
	}
}

func spliceDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3, 4, 5))
	before := arr.clone()
	removed := arr.splice(2, 1, Int(7), Int(8), Int(9))
	return Snapshot{
		Before:      []Field{field("arr", before.value())},
		After:       []Field{field("arr", arr.value()), field("removed", removed.value())},
		Code:        "arr.splice(2, 1, 7, 8, 9); // Removes: [" + removed.join(",") + "]",
		Explanation: "At index 2, removes 1 element and inserts 7, 8, 9.",
	}
}

func sliceDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3, 4, 5))
	result := arr.slice(1, 4)
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("result", result.value()), field("originalUnchanged", arr.value())},
		Code:        "const result = arr.slice(1, 4);",
		Explanation: "Extracts elements from index 1 to 4 (exclusive) into a new array.",
	}
}

func mapDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3, 4, 5))
	result := arr.mapped(func(v Value) Value { return Num(v.Number() * 2) })
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("result", result.value())},
		Code:        "const result = arr.map(x => x * 2);",
		Explanation: "Transforms each element by multiplying by 2.",
	}
}

func filterDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3, 4, 5, 6, 7, 8))
	result := arr.filter(isEven)
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("result", result.value())},
		Code:        "const result = arr.filter(x => x % 2 === 0);",
		Explanation: "Filters to keep only even numbers.",
	}
}

func reduceDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3, 4, 5))
	sum := arr.reduce(func(acc, v Value) Value { return Num(acc.Number() + v.Number()) }, Int(0))
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("sum", sum)},
		Code:        "const sum = arr.reduce((acc, val) => acc + val, 0);",
		Explanation: "Sums all array elements: 1 + 2 + 3 + 4 + 5 = " + sum.Plain(),
	}
}

func findDemo() Snapshot {
	arr := newArray(Ints(2, 6, 7, 8, 12))
	result, _ := arr.find(greaterThan(7))
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("result", result)},
		Code:        "const result = arr.find(x => x > 7);",
		Explanation: "Finds the first element greater than 7: " + result.Plain(),
	}
}

func findIndexDemo() Snapshot {
	arr := newArray(Ints(2, 6, 7, 8, 12))
	index := arr.findIndex(greaterThan(7))
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("index", Int(index))},
		Code:        "const index = arr.findIndex(x => x > 7);",
		Explanation: fmt.Sprintf("Index of first element greater than 7: %d", index),
	}
}

func indexOfDemo() Snapshot {
	arr := newArray(Strs("a", "b", "c", "d", "e"))
	index := arr.indexOf(Str("d"))
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("index", Int(index))},
		Code:        "const index = arr.indexOf('d');",
		Explanation: fmt.Sprintf("Index of 'd' in the array: %d", index),
	}
}

func includesDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3, 4, 5))
	found := arr.includes(Int(3))
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("includes3", Bool(found))},
		Code:        "const includes3 = arr.includes(3);",
		Explanation: fmt.Sprintf("Array includes 3: %t", found),
	}
}

func someDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3, 4, 5))
	any4 := arr.some(greaterThan(4))
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("hasGreaterThan4", Bool(any4))},
		Code:        "const hasGreaterThan4 = arr.some(x => x > 4);",
		Explanation: fmt.Sprintf("At least one element > 4: %t", any4),
	}
}

func everyDemo() Snapshot {
	arr := newArray(Ints(2, 4, 6, 8, 10))
	allEven := arr.every(isEven)
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("allEven", Bool(allEven))},
		Code:        "const allEven = arr.every(x => x % 2 === 0);",
		Explanation: fmt.Sprintf("All elements are even: %t", allEven),
	}
}

func sortDemo() Snapshot {
	arr := newArray(Strs("James", "Alicia", "Fatiha", "Maria", "Bert"))
	before := arr.clone()
	arr.sortDefault()
	return Snapshot{
		Before:      []Field{field("arr", before.value())},
		After:       []Field{field("arr", arr.value())},
		Code:        "arr.sort(); // Alphabetical order",
		Explanation: "Sorts array elements alphabetically in ascending order.",
	}
}

func reverseDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3, 4, 5))
	before := arr.clone()
	arr.reverse()
	return Snapshot{
		Before:      []Field{field("arr", before.value())},
		After:       []Field{field("arr", arr.value())},
		Code:        "arr.reverse();",
		Explanation: "Reverses the order of all elements in the array.",
	}
}

func joinDemo() Snapshot {
	arr := newArray(Strs("Hello", "World", "JavaScript"))
	result := arr.join(" ")
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("result", Str(result))},
		Code:        "const result = arr.join(' ');",
		Explanation: "Joins elements with space: '" + result + "'",
	}
}

func flatDemo() Snapshot {
	arr := newArray(List(Int(1), Int(2), Ints(3, 4), List(Int(5), Ints(6, 7))))
	result := arr.flat(2)
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("result", result.value())},
		Code:        "const result = arr.flat(2);",
		Explanation: "Flattens nested arrays up to 2 levels deep.",
	}
}

func flatMapDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3))
	result := arr.flatMap(func(v Value) Value { return List(v, Num(v.Number()*2)) })
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("result", result.value())},
		Code:        "const result = arr.flatMap(x => [x, x * 2]);",
		Explanation: "Each element produces [x, x*2], then all are flattened.",
	}
}

func fillDemo() Snapshot {
	arr := make(array, 6)
	arr.fill(Int(0), 0, len(arr))
	before := arr.clone()
	arr.fill(Int(7), 2, 5)
	return Snapshot{
		Before:      []Field{field("arr", before.value())},
		After:       []Field{field("arr", arr.value())},
		Code:        "arr.fill(7, 2, 5); // Fill with 7 from index 2 to 5",
		Explanation: "Fills elements from index 2 to 5 (exclusive) with value 7.",
	}
}

func forEachDemo() Snapshot {
	arr := newArray(Ints(1, 2, 3, 4, 5))
	sum := 0.0
	arr.forEach(func(v Value) { sum += v.Number() })
	return Snapshot{
		Before:      []Field{field("arr", arr.value())},
		After:       []Field{field("sumCalculated", Num(sum))},
		Code:        "arr.forEach(x => sum += x);",
		Explanation: "Iterates through each element and adds to sum: " + FormatNumber(sum),
	}
}
