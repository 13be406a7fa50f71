package bst_test

import (
	"fmt"
	"slices"
	"strings"

	"github.com/perchik/armory/bst"
)

// ExampleTree demonstrates keeping an inventory ordered by name.
func ExampleTree() {
	tree := bst.New[string, int]()

	// Stock some items keyed by name
	tree.Insert("sword", 3)
	tree.Insert("axe", 5)
	tree.Insert("potion", 12)

	// Walk the stock in name order
	for name, count := range tree.All() {
		fmt.Printf("%s: %d\n", name, count)
	}

	// Output:
	// axe: 5
	// potion: 12
	// sword: 3
}

// ExampleTree_duplicates demonstrates how equal keys behave.
func ExampleTree_duplicates() {
	tree := bst.New[string, string]()

	// Duplicate keys are kept, not merged
	tree.Insert("b", "first")
	tree.Insert("a", "only")
	tree.Insert("b", "second")

	keys := slices.Collect(tree.Keys())
	fmt.Println(strings.Join(keys, " "))

	// Search returns the earliest-inserted duplicate
	hit, _ := tree.Search("b")
	fmt.Println(hit)

	// Output:
	// a b b
	// first
}
