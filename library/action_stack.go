package library

import "fmt"

// ActionStack is a linked LIFO of action log lines.
type ActionStack struct {
	top   *actionEntry
	size  int
	limit int
}

// NewActionStack returns an empty stack holding at most limit entries (0 for no limit).
func NewActionStack(limit int) *ActionStack {
	return &ActionStack{limit: limit}
}

// Push makes text the new top and takes ownership of it.
// On any error text is released and the stack is unchanged.
func (s *ActionStack) Push(text *Text) error {
	if s.limit > 0 && s.size >= s.limit {
		reject(text)
		return fmt.Errorf("action log full (%d entries): %w", s.limit, ErrAllocation)
	}
	if err := text.adopt(ownerStack); err != nil {
		reject(text)
		return fmt.Errorf("action log entry: %w", err)
	}
	s.top = &actionEntry{text: text, next: s.top}
	s.size++
	return nil
}

// pop detaches the top entry, or returns nil when empty.
func (s *ActionStack) pop() *actionEntry {
	e := s.top
	if e == nil {
		return nil
	}
	s.top = e.next
	e.next = nil
	s.size--
	return e
}

// PopMany removes up to k entries, most recent first, and returns their
// text. It stops early when the stack runs out; len of the result is the
// number actually popped. Popped buffers are released.
func (s *ActionStack) PopMany(k int) ([]string, error) {
	if k <= 0 {
		return nil, fmt.Errorf("pop %d actions: k must be > 0: %w", k, ErrInvalidInput)
	}
	popped := make([]string, 0, min(k, s.size))
	for i := 0; i < k; i++ {
		e := s.pop()
		if e == nil {
			break
		}
		popped = append(popped, e.text.String())
		e.text.Release()
	}
	return popped, nil
}

// Len returns the stack depth.
func (s *ActionStack) Len() int { return s.size }

// Entries returns the log lines top to bottom without popping.
func (s *ActionStack) Entries() []string {
	lines := make([]string, 0, s.size)
	for e := s.top; e != nil; e = e.next {
		lines = append(lines, e.text.String())
	}
	return lines
}
