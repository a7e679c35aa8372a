package library

import (
	"fmt"

	"github.com/google/uuid"
)

// IssuedRecords lists the students who received books, most recent first.
type IssuedRecords struct {
	head  *IssuedRecord
	size  int
	limit int
}

// NewIssuedRecords returns an empty list holding at most limit records (0 for no limit).
func NewIssuedRecords(limit int) *IssuedRecords {
	return &IssuedRecords{limit: limit}
}

// Add prepends a record. name must come straight from a dequeued request:
// the record takes the same buffer, it is never copied.
// The caller keeps name when Add fails.
func (ir *IssuedRecords) Add(requestID uuid.UUID, name *Text, bookID int) error {
	if ir.limit > 0 && ir.size >= ir.limit {
		return fmt.Errorf("issued record for book %d: list full (%d records): %w", bookID, ir.limit, ErrAllocation)
	}
	if err := name.handoff(ownerQueue, ownerIssued); err != nil {
		return fmt.Errorf("issued record for book %d: %w", bookID, err)
	}
	ir.head = &IssuedRecord{RequestID: requestID, StudentName: name, BookID: bookID, next: ir.head}
	ir.size++
	return nil
}

// Len returns the number of records.
func (ir *IssuedRecords) Len() int { return ir.size }

// Views returns the records most recent first.
func (ir *IssuedRecords) Views() []IssuedView {
	views := make([]IssuedView, 0, ir.size)
	for r := ir.head; r != nil; r = r.next {
		views = append(views, IssuedView{RequestID: r.RequestID, StudentName: r.StudentName.String(), BookID: r.BookID})
	}
	return views
}
