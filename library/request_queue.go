package library

import (
	"fmt"

	"github.com/google/uuid"
)

// RequestQueue is a linked FIFO of pending issue requests.
type RequestQueue struct {
	front, rear *IssueRequest
	size        int
	limit       int
}

// NewRequestQueue returns an empty queue holding at most limit requests (0 for no limit).
func NewRequestQueue(limit int) *RequestQueue {
	return &RequestQueue{limit: limit}
}

// Enqueue appends a request at the rear and takes ownership of name.
// On any error name is released and the queue is unchanged.
func (q *RequestQueue) Enqueue(name *Text, bookID int) (uuid.UUID, error) {
	if q.limit > 0 && q.size >= q.limit {
		reject(name)
		return uuid.Nil, fmt.Errorf("request for book %d: queue full (%d requests): %w", bookID, q.limit, ErrAllocation)
	}
	id, err := uuid.NewV7()
	if err != nil {
		reject(name)
		return uuid.Nil, fmt.Errorf("request for book %d: ticket id: %w", bookID, err)
	}
	if err := name.adopt(ownerQueue); err != nil {
		reject(name)
		return uuid.Nil, fmt.Errorf("request for book %d student name: %w", bookID, err)
	}

	r := &IssueRequest{ID: id, StudentName: name, BookID: bookID}
	if q.front == nil {
		q.front = r
	} else {
		q.rear.next = r
	}
	q.rear = r
	q.size++
	return id, nil
}

// Dequeue detaches and returns the front request, or nil when the queue is
// empty. The caller becomes responsible for the request's student name.
func (q *RequestQueue) Dequeue() *IssueRequest {
	r := q.front
	if r == nil {
		return nil
	}
	q.front = r.next
	if q.front == nil {
		q.rear = nil
	}
	r.next = nil
	q.size--
	return r
}

// Len returns the number of pending requests.
func (q *RequestQueue) Len() int { return q.size }

// Views returns the pending requests front to rear.
func (q *RequestQueue) Views() []RequestView {
	views := make([]RequestView, 0, q.size)
	for r := q.front; r != nil; r = r.next {
		views = append(views, RequestView{ID: r.ID, StudentName: r.StudentName.String(), BookID: r.BookID})
	}
	return views
}
