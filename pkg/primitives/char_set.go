package primitives

import "fmt"

// CharSet efficiently represents a set of characters.
type CharSet struct {
	available []bool
	min       rune
	count     int
}

func NewCharSet(min, max rune) *CharSet {
	return &CharSet{
		available: make([]bool, max-min+1),
		min:       min,
		count:     0,
	}
}

// Letters returns an empty set over the upper-case ASCII letters 'A' to 'Z',
// the only characters a grid cell may hold.
func Letters() *CharSet {
	return NewCharSet('A', 'Z')
}

// LettersOf returns the set of letters used by word. Characters outside
// 'A'..'Z' are ignored.
func LettersOf(word string) *CharSet {
	c := Letters()
	for _, r := range word {
		_ = c.Add(r)
	}
	return c
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if !c.inRange(r) {
		return fmt.Errorf("character %q is out of range", r)
	}

	if c.available[r-c.min] {
		return nil
	}

	c.count++
	c.available[r-c.min] = true
	return nil
}

// AddAll adds all characters from another set to this set.
func (c *CharSet) AddAll(other *CharSet) {
	if c.min != other.min {
		panic(fmt.Sprintf("cannot add all: char sets have different min, %c != %c", c.min, other.min))
	}
	if len(c.available) != len(other.available) {
		panic(fmt.Sprintf("cannot add all: char sets have different lengths, %d != %d", len(c.available), len(other.available)))
	}

	if c.IsFull() {
		return
	}

	for oi, oa := range other.available {
		if !oa || c.available[oi] {
			continue
		}
		c.available[oi] = true
		c.count++
	}
}

// Contains checks if a character is in the set. Characters outside the
// set's range are never contained.
func (c *CharSet) Contains(r rune) bool {
	return c.inRange(r) && c.available[r-c.min]
}

// Intersects reports whether the two sets share at least one character.
// Both sets must cover the same range.
func (c *CharSet) Intersects(other *CharSet) bool {
	if c.count == 0 || other.count == 0 {
		return false
	}
	for i, a := range c.available {
		if a && other.available[i] {
			return true
		}
	}
	return false
}

// IsFull checks if the set is full.
func (c *CharSet) IsFull() bool {
	return c.count == len(c.available)
}

// Capacity returns the number of characters that can be added to the set.
func (c *CharSet) Capacity() int {
	return len(c.available)
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return c.count
}

func (c *CharSet) inRange(r rune) bool {
	return r >= c.min && r <= c.min+rune(len(c.available)-1)
}
