// Package ledger keeps the distinct clues the detective has collected, sorted by text.
package ledger

import "iter"

type node struct {
	text  string
	left  *node
	right *node
}

// Ledger is a binary search tree of clue texts. It only grows; equal texts are stored once.
type Ledger struct {
	root  *node
	count int
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{root: nil, count: 0}
}

// Insert adds text to the ledger. It returns false, leaving the tree untouched, when text is already there.
func (l *Ledger) Insert(text string) bool {
	var inserted bool
	l.root, inserted = insert(l.root, text)
	if inserted {
		l.count++
	}
	return inserted
}

func insert(n *node, text string) (*node, bool) {
	if n == nil {
		return &node{text: text, left: nil, right: nil}, true
	}
	var inserted bool
	switch {
	case text < n.text:
		n.left, inserted = insert(n.left, text)
	case text > n.text:
		n.right, inserted = insert(n.right, text)
	}
	return n, inserted
}

// Contains reports whether text has been collected.
func (l *Ledger) Contains(text string) bool {
	n := l.root
	for n != nil {
		switch {
		case text < n.text:
			n = n.left
		case text > n.text:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Count returns the number of distinct clues.
func (l *Ledger) Count() int {
	return l.count
}

// InOrder yields the clues in ascending order. The sequence can be ranged over again and again.
func (l *Ledger) InOrder() iter.Seq[string] {
	return func(yield func(string) bool) {
		inOrder(l.root, yield)
	}
}

func inOrder(n *node, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.text) && inOrder(n.right, yield)
}

// Release tears the tree down children first and returns the number of released nodes.
func (l *Ledger) Release() int {
	released := release(l.root)
	l.root = nil
	l.count = 0
	return released
}

func release(n *node) int {
	if n == nil {
		return 0
	}
	released := release(n.left) + release(n.right)
	n.left, n.right = nil, nil
	return released + 1
}
