// Package huffman builds canonical Huffman prefix trees from codeword
// lengths.
//
// Vorbis codebooks do not transmit codewords, only their lengths; the
// code is reconstructed by assigning each symbol, in ascending symbol
// order, the first available codeword of its length (Vorbis I spec,
// section 3.2.1). Equal-length symbols therefore fill left to right,
// which the builder realizes by always trying the left subtree first.
package huffman

import "errors"

// ErrNoRoom is returned when a codeword length cannot be placed: every
// slot at that depth is already taken. The length list is not a
// consistent canonical Huffman code.
var ErrNoRoom = errors.New("huffman: no free slot for codeword length")

// MaxDepth is the largest legal codeword length in a Vorbis codebook.
const MaxDepth = 32

const none = int32(-1)

// node is one arena entry. Children are arena indexes rather than
// pointers so the tree is a single allocation-friendly slice and
// insertion needs no recursion.
type node struct {
	children [2]int32
	symbol   uint32
	leaf     bool
}

// Tree is a binary prefix tree under construction or fully built.
// The zero Tree is not usable; call New.
type Tree struct {
	nodes  []node
	leaves int
}

// New returns an empty tree holding only the root.
func New() *Tree {
	return &Tree{nodes: []node{{children: [2]int32{none, none}}}}
}

// Leaves returns the number of symbols inserted so far.
func (t *Tree) Leaves() int {
	return t.leaves
}

// Add inserts symbol as a leaf at depth length, taking the first
// unfilled slot at that depth (left subtree before right). Returns
// ErrNoRoom if the tree has no slot left at that depth.
func (t *Tree) Add(length uint8, symbol uint32) error {
	if length < 1 || length > MaxDepth {
		return errors.New("huffman: codeword length out of range [1, 32]")
	}

	// Depth-first search over internal nodes with an explicit stack.
	// stack[i].next is the child of stack[i].node to try when control
	// returns to that frame.
	type frame struct {
		node int32
		next int8
	}
	stack := make([]frame, 1, length)
	stack[0] = frame{node: 0}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next > 1 {
			stack = stack[:len(stack)-1]
			continue
		}
		c := f.next
		f.next++

		child := t.nodes[f.node].children[c]
		if len(stack) == int(length) {
			// The new leaf belongs at this level.
			if child == none {
				t.nodes = append(t.nodes, node{
					children: [2]int32{none, none},
					symbol:   symbol,
					leaf:     true,
				})
				t.nodes[f.node].children[c] = int32(len(t.nodes) - 1)
				t.leaves++
				return nil
			}
			continue
		}

		// Descend, materializing the branch on the way down.
		if child == none {
			t.nodes = append(t.nodes, node{children: [2]int32{none, none}})
			child = int32(len(t.nodes) - 1)
			t.nodes[f.node].children[c] = child
		}
		if t.nodes[child].leaf {
			continue
		}
		stack = append(stack, frame{node: child})
	}

	return ErrNoRoom
}

// Lookup walks the tree from the root, consuming one bit per level
// (false = left, true = right) until it reaches a leaf, and returns the
// leaf's symbol. A walk that falls off an unfilled branch reports
// ErrNoRoom; a nextBit failure is passed through unchanged.
func (t *Tree) Lookup(nextBit func() (bool, error)) (uint32, error) {
	cur := int32(0)
	for !t.nodes[cur].leaf {
		b, err := nextBit()
		if err != nil {
			return 0, err
		}
		c := int8(0)
		if b {
			c = 1
		}
		next := t.nodes[cur].children[c]
		if next == none {
			return 0, ErrNoRoom
		}
		cur = next
	}
	return t.nodes[cur].symbol, nil
}

// Codewords returns every symbol's codeword as a string of '0' and '1'
// runes, left branches first. Useful for verifying canonical assignment.
func (t *Tree) Codewords() map[uint32]string {
	out := make(map[uint32]string, t.leaves)
	t.collect(0, "", out)
	return out
}

func (t *Tree) collect(idx int32, path string, out map[uint32]string) {
	n := t.nodes[idx]
	if n.leaf {
		out[n.symbol] = path
		return
	}
	if n.children[0] != none {
		t.collect(n.children[0], path+"0", out)
	}
	if n.children[1] != none {
		t.collect(n.children[1], path+"1", out)
	}
}
