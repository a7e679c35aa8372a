package library

import "fmt"

// Catalog is a singly linked list of books kept in insertion order.
type Catalog struct {
	head, tail *Book
	size       int
	limit      int
}

// NewCatalog returns an empty catalog holding at most limit books (0 for no limit).
func NewCatalog(limit int) *Catalog {
	return &Catalog{limit: limit}
}

// Insert appends a book at the tail and takes ownership of title.
// On any error title is released and the catalog is unchanged.
func (c *Catalog) Insert(id int, title *Text, copies int) error {
	if copies < 0 {
		reject(title)
		return fmt.Errorf("book %d: negative copies %d: %w", id, copies, ErrInvalidInput)
	}
	if c.limit > 0 && c.size >= c.limit {
		reject(title)
		return fmt.Errorf("book %d: catalog full (%d books): %w", id, c.limit, ErrAllocation)
	}
	if err := title.adopt(ownerCatalog); err != nil {
		reject(title)
		return fmt.Errorf("book %d title: %w", id, err)
	}

	b := &Book{ID: id, Title: title, AvailableCopies: copies}
	if c.head == nil {
		c.head = b
	} else {
		c.tail.next = b
	}
	c.tail = b
	c.size++
	return nil
}

// Find returns the first book with the given id, or nil.
func (c *Catalog) Find(id int) *Book {
	for b := c.head; b != nil; b = b.next {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Len returns the number of books.
func (c *Catalog) Len() int { return c.size }

// Views returns a snapshot of the catalog in insertion order.
func (c *Catalog) Views() []BookView {
	views := make([]BookView, 0, c.size)
	for b := c.head; b != nil; b = b.next {
		views = append(views, b.view())
	}
	return views
}
