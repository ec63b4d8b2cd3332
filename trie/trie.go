// Package trie implements a prefix tree over strings.
package trie

import (
	"errors"
)

// ErrWordNotFound is returned when removing a word the trie does not hold.
var ErrWordNotFound = errors.New("trie: word not found")

// node is a single letter position. A node is terminal, if some inserted
// word ends at it. Longer words sharing the prefix continue in children.
type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie stores a set of words by their shared prefixes.
type Trie struct {
	root *node
	size int
}

// New creates / initializes a new Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds the word to the trie. Inserting a word that is already present
// leaves the trie unchanged. The empty word is a valid member.
func (t *Trie) Insert(word string) {
	if t.Contains(word) {
		return
	}
	t.size++
	cur := t.root
	for _, letter := range word {
		child, ok := cur.children[letter]
		if !ok {
			child = newNode()
			cur.children[letter] = child
		}
		cur = child
	}
	cur.terminal = true
}

// Contains returns true, if the word was inserted into the trie. Prefixes of
// inserted words don't count as members.
func (t *Trie) Contains(word string) bool {
	cur := t.root
	for _, letter := range word {
		child, ok := cur.children[letter]
		if !ok {
			return false
		}
		cur = child
	}
	return cur.terminal
}

// Size returns the number of words in the trie.
func (t *Trie) Size() int {
	return t.size
}

// Remove deletes the word from the trie and prunes branches that no longer
// lead to any word.
//
// Remove returns ErrWordNotFound, if the word is not in the trie.
func (t *Trie) Remove(word string) error {

	// walk down, remembering the nodes along the way
	letters := []rune(word)
	path := make([]*node, 0, len(letters)+1)
	path = append(path, t.root)
	cur := t.root
	for _, letter := range letters {
		child, ok := cur.children[letter]
		if !ok {
			return ErrWordNotFound
		}
		cur = child
		path = append(path, cur)
	}
	if !cur.terminal {
		return ErrWordNotFound
	}
	cur.terminal = false
	t.size--

	// prune nodes that neither end a word nor lead to one
	for i := len(letters) - 1; i >= 0; i-- {
		n := path[i+1]
		if n.terminal || len(n.children) > 0 {
			break
		}
		delete(path[i].children, letters[i])
	}
	return nil
}
