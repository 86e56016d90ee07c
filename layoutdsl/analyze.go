package layoutdsl

import "sort"

// Arity returns the number of arguments an expression requires: one more
// than the highest {n} placeholder, or zero if the expression has none.
func Arity(expr Expr) int {
	highest := -1
	walk(expr, func(e Expr) {
		if ix, ok := e.(*Index); ok && ix.N > highest {
			highest = ix.N
		}
	})
	return highest + 1
}

// Indices returns the distinct argument positions referenced by an
// expression, in ascending order.
func Indices(expr Expr) []int {
	seen := make(map[int]struct{})
	walk(expr, func(e Expr) {
		if ix, ok := e.(*Index); ok {
			seen[ix.N] = struct{}{}
		}
	})

	indices := make([]int, 0, len(seen))
	for n := range seen {
		indices = append(indices, n)
	}
	sort.Ints(indices)
	return indices
}

// walk visits every node of the tree in pre-order, left before right.
func walk(expr Expr, visit func(Expr)) {
	visit(expr)
	switch n := expr.(type) {
	case *Unary:
		walk(n.Child, visit)
	case *Binary:
		walk(n.Left, visit)
		walk(n.Right, visit)
	}
}
