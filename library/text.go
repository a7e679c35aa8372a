package library

// owner tags the container currently responsible for a Text.
type owner string

const (
	ownerNone    owner = ""
	ownerCatalog owner = "catalog"
	ownerQueue   owner = "request queue"
	ownerStack   owner = "action stack"
	ownerIssued  owner = "issued records"
)

// Text is a string buffer with exactly one owner at a time.
//
// A Text is created unowned by NewText. Handing it to a container (AddBook,
// RequestIssue, ...) transfers ownership: from then on the caller must not
// read, release or hand it elsewhere. Containers move a Text between each
// other by pointer, never by copying its contents, and release it when its
// life ends. Reading a released Text panics.
type Text struct {
	value    string
	owner    owner
	released bool
}

// NewText allocates an unowned buffer holding s.
func NewText(s string) *Text {
	return &Text{value: s}
}

// String returns the buffer contents, or "" for a nil Text. It panics if the
// buffer was released.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	if t.released {
		panic("library: use of released text")
	}
	return t.value
}

// Release ends the buffer's life. Releasing twice is a no-op.
func (t *Text) Release() {
	if t == nil || t.released {
		return
	}
	t.released = true
	t.value = ""
	t.owner = ownerNone
}

// Released reports whether the buffer has been released.
func (t *Text) Released() bool { return t != nil && t.released }

// owned reports whether a container currently holds the buffer.
func (t *Text) owned() bool { return t.owner != ownerNone }

// adopt records o as the new owner of an unowned, live buffer.
func (t *Text) adopt(o owner) error {
	switch {
	case t == nil:
		return ErrInvalidInput
	case t.released:
		return ErrTextReleased
	case t.owner != ownerNone:
		return ErrTextOwned
	}
	t.owner = o
	return nil
}

// handoff moves ownership from one container to another. The pointer stays
// the same; only the tag changes.
func (t *Text) handoff(from, to owner) error {
	if t == nil {
		return ErrInvalidInput
	}
	if t.released {
		return ErrTextReleased
	}
	if t.owner != from {
		return ErrTextOwned
	}
	t.owner = to
	return nil
}

// reject releases a buffer handed in on a rejected call, unless the caller
// gave us something that is not theirs to give.
func reject(t *Text) {
	if t == nil || t.released || t.owner != ownerNone {
		return
	}
	t.Release()
}

