package library

import "github.com/google/uuid"

// Book is a catalog entry. IDs are not unique; lookups return the first match.
type Book struct {
	ID              int
	Title           *Text
	AvailableCopies int

	next *Book
}

// IssueRequest is a pending request to lend a book to a student.
type IssueRequest struct {
	ID          uuid.UUID
	StudentName *Text
	BookID      int

	next *IssueRequest
}

// IssuedRecord remembers a student who received a book.
type IssuedRecord struct {
	RequestID   uuid.UUID
	StudentName *Text
	BookID      int

	next *IssuedRecord
}

// actionEntry is one line of the action log.
type actionEntry struct {
	text *Text
	next *actionEntry
}

// BookView is a read-only copy of a Book.
type BookView struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	AvailableCopies int    `json:"available_copies"`
}

// RequestView is a read-only copy of a pending request.
type RequestView struct {
	ID          uuid.UUID `json:"id"`
	StudentName string    `json:"student_name"`
	BookID      int       `json:"book_id"`
}

// IssuedView is a read-only copy of an issued record.
type IssuedView struct {
	RequestID   uuid.UUID `json:"request_id"`
	StudentName string    `json:"student_name"`
	BookID      int       `json:"book_id"`
}

// Snapshot is the complete observable state, newest-first where the
// containers are newest-first.
type Snapshot struct {
	Books     []BookView    `json:"books"`
	Pending   []RequestView `json:"pending_requests"`
	ActionLog []string      `json:"action_log"`
	Issued    []IssuedView  `json:"issued_students"`
}

func (b *Book) view() BookView {
	return BookView{ID: b.ID, Title: b.Title.String(), AvailableCopies: b.AvailableCopies}
}

// Result reports a successful AddBook or RequestIssue.
type Result struct {
	// Action is the log line describing the mutation.
	Action string
	// RequestID is set by RequestIssue.
	RequestID uuid.UUID
	// Warning is non-nil when the mutation succeeded but could not be logged.
	Warning error
}

// OutcomeKind says which branch ProcessNextRequest took.
type OutcomeKind int

const (
	OutcomeNoPending OutcomeKind = iota
	OutcomeIssued
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoPending:
		return "no pending"
	case OutcomeIssued:
		return "issued"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// FailureReason explains an OutcomeFailed.
type FailureReason int

const (
	ReasonNone FailureReason = iota
	ReasonNotFound
	ReasonUnavailable
)

func (r FailureReason) String() string {
	switch r {
	case ReasonNotFound:
		return "not found"
	case ReasonUnavailable:
		return "no available copies"
	}
	return ""
}

// Outcome is the result of processing one request.
type Outcome struct {
	Kind        OutcomeKind
	RequestID   uuid.UUID
	BookID      int
	StudentName string
	Title       string
	Remaining   int
	Reason      FailureReason
	// Warning is non-nil when the outcome could not be fully recorded
	// (log entry or issued record).
	Warning error
}
