package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Action log operation names.
const (
	ActionAddBook      = "ADD_BOOK"
	ActionIssueRequest = "ISSUE_REQUEST"
	ActionIssueSuccess = "ISSUE_SUCCESS"
	ActionIssueFail    = "ISSUE_FAIL"
)

// LibraryState aggregates the four containers.
type LibraryState struct {
	Catalog  *Catalog
	Requests *RequestQueue
	Actions  *ActionStack
	Issued   *IssuedRecords
}

// LibraryManager is the façade the menu talks to. It owns one LibraryState
// and is not safe for concurrent use.
type LibraryManager struct {
	state  LibraryState
	limits Limits
	logger Logger
}

// NewLibraryManager returns a manager with empty containers.
func NewLibraryManager(opts ...Option) (*LibraryManager, error) {
	m := &LibraryManager{logger: discardLogger{}}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	m.state = LibraryState{
		Catalog:  NewCatalog(m.limits.Books),
		Requests: NewRequestQueue(m.limits.Requests),
		Actions:  NewActionStack(m.limits.Actions),
		Issued:   NewIssuedRecords(m.limits.Issued),
	}
	return m, nil
}

// logAction pushes "<op> <id>". The error is a warning for the caller: the
// mutation it describes has already happened and stays.
func (lm *LibraryManager) logAction(op string, id int) (string, error) {
	line := fmt.Sprintf("%s %d", op, id)
	if err := lm.state.Actions.Push(NewText(line)); err != nil {
		lm.logger.Warn("action not logged", "action", line, "error", err)
		return line, fmt.Errorf("cannot log %q: %w", line, err)
	}
	return line, nil
}

// ------------------ Book helpers ------------------

// AddBook appends a book to the catalog and logs ADD_BOOK. title is consumed
// either way.
func (lm *LibraryManager) AddBook(id int, title *Text, copies int) (Result, error) {
	if err := lm.state.Catalog.Insert(id, title, copies); err != nil {
		return Result{}, err
	}
	lm.logger.Info("book added", "book_id", id, "copies", copies)

	line, warn := lm.logAction(ActionAddBook, id)
	return Result{Action: line, Warning: warn}, nil
}

// SearchBook returns the first book with the given id.
func (lm *LibraryManager) SearchBook(id int) (BookView, bool) {
	b := lm.state.Catalog.Find(id)
	if b == nil {
		return BookView{}, false
	}
	return b.view(), true
}

func (lm *LibraryManager) ListBooks() []BookView { return lm.state.Catalog.Views() }

// ------------------ Circulation ------------------

// RequestIssue queues a request and logs ISSUE_REQUEST. name is consumed
// either way.
func (lm *LibraryManager) RequestIssue(name *Text, bookID int) (Result, error) {
	id, err := lm.state.Requests.Enqueue(name, bookID)
	if err != nil {
		return Result{}, err
	}
	lm.logger.Info("request enqueued", "request_id", id, "book_id", bookID)

	line, warn := lm.logAction(ActionIssueRequest, bookID)
	return Result{Action: line, RequestID: id, Warning: warn}, nil
}

func (lm *LibraryManager) ListPendingRequests() []RequestView { return lm.state.Requests.Views() }

// ProcessNextRequest serves the oldest pending request.
//
// On success one copy is taken, ISSUE_SUCCESS is logged and the request's
// name buffer moves into the issued records. On failure ISSUE_FAIL is logged
// and the name buffer is released. Either way the request is gone afterwards.
func (lm *LibraryManager) ProcessNextRequest() Outcome {
	req := lm.state.Requests.Dequeue()
	if req == nil {
		return Outcome{Kind: OutcomeNoPending}
	}

	out := Outcome{
		RequestID:   req.ID,
		BookID:      req.BookID,
		StudentName: req.StudentName.String(),
	}
	name := req.StudentName
	req.StudentName = nil

	book := lm.state.Catalog.Find(req.BookID)
	if book == nil || book.AvailableCopies <= 0 {
		out.Kind = OutcomeFailed
		out.Reason = ReasonNotFound
		if book != nil {
			out.Reason = ReasonUnavailable
		}
		_, out.Warning = lm.logAction(ActionIssueFail, req.BookID)
		name.Release()
		lm.logger.Info("issue failed", "request_id", req.ID, "book_id", req.BookID, "reason", out.Reason.String())
		return out
	}

	book.AvailableCopies--
	out.Kind = OutcomeIssued
	out.Title = book.Title.String()
	out.Remaining = book.AvailableCopies

	_, warn := lm.logAction(ActionIssueSuccess, req.BookID)
	if err := lm.state.Issued.Add(req.ID, name, req.BookID); err != nil {
		// The copy stays issued; only the record is lost.
		name.Release()
		lm.logger.Warn("issued record not kept", "request_id", req.ID, "book_id", req.BookID, "error", err)
		warn = errors.Join(warn, err)
	}
	out.Warning = warn
	lm.logger.Info("book issued", "request_id", req.ID, "book_id", req.BookID, "remaining", out.Remaining)
	return out
}

func (lm *LibraryManager) ListIssuedStudents() []IssuedView { return lm.state.Issued.Views() }

// ------------------ Action log ------------------

// ListActionLog returns the log most recent first.
func (lm *LibraryManager) ListActionLog() []string { return lm.state.Actions.Entries() }

// UndoActions pops up to k log entries and returns them most recent first.
// Only the log is affected; the mutations they describe are not reverted.
func (lm *LibraryManager) UndoActions(k int) ([]string, error) {
	popped, err := lm.state.Actions.PopMany(k)
	if err != nil {
		return nil, err
	}
	lm.logger.Info("actions popped", "requested", k, "popped", len(popped))
	return popped, nil
}

// ------------------ Utilities ------------------

// Snapshot copies every container for display or export.
func (lm *LibraryManager) Snapshot() Snapshot {
	return Snapshot{
		Books:     lm.ListBooks(),
		Pending:   lm.ListPendingRequests(),
		ActionLog: lm.ListActionLog(),
		Issued:    lm.ListIssuedStudents(),
	}
}

// ImportCatalogFile reads a seed catalog from path (relative paths resolve
// from cwd) and adds every valid line.
func (lm *LibraryManager) ImportCatalogFile(path string) (ImportReport, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return ImportReport{}, err
	}
	defer f.Close()
	return lm.ImportCatalog(f)
}
