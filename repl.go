package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"smart-library/library"

	jsoniter "github.com/json-iterator/go"
)

type repl struct {
	sc          *bufio.Scanner
	out         io.Writer
	mgr         *library.LibraryManager
	interactive bool
}

func newREPL(in io.Reader, out io.Writer, mgr *library.LibraryManager, interactive bool) *repl {
	return &repl{sc: bufio.NewScanner(in), out: out, mgr: mgr, interactive: interactive}
}

func (r *repl) printf(format string, args ...any) { fmt.Fprintf(r.out, format, args...) }
func (r *repl) print(s string)                     { fmt.Fprint(r.out, s) }

// prompt is only shown to a human at a terminal.
func (r *repl) prompt(s string) {
	if r.interactive {
		fmt.Fprint(r.out, s)
	}
}

// readLine returns the next trimmed line; ok is false at end of input.
func (r *repl) readLine(prompt string) (string, bool) {
	r.prompt(prompt)
	if !r.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.sc.Text()), true
}

// readInt reads one integer line. It prints "Invalid input." for anything else.
func (r *repl) readInt(prompt string) (int, bool) {
	s, ok := r.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.printf("Invalid input.\n")
		return 0, false
	}
	return n, true
}

func (r *repl) run() {
	r.printf("=== SmartLibrary ===\n")
	for {
		if r.interactive {
			r.printf("\n--- Menu ---\n")
			r.printf("1. Add Book\n")
			r.printf("2. Search Book\n")
			r.printf("3. Request Issue\n")
			r.printf("4. Process Next Request\n")
			r.printf("5. View All Data Structures\n")
			r.printf("6. Display Students Who Took Books\n")
			r.printf("7. Export State as JSON\n")
			r.printf("0. Exit\n")
		}
		s, ok := r.readLine("Enter choice: ")
		if !ok {
			return
		}
		choice, err := strconv.Atoi(s)
		if err != nil {
			r.printf("Invalid input. Exiting.\n")
			return
		}

		switch choice {
		case 1:
			r.handleAddBook()
		case 2:
			r.handleSearchBook()
		case 3:
			r.handleRequestIssue()
		case 4:
			r.handleProcessNext()
		case 5:
			r.handleViewAll()
		case 6:
			r.printIssued()
		case 7:
			r.handleExport()
		case 0:
			r.printf("Exiting SmartLibrary. Goodbye.\n")
			return
		default:
			r.printf("Invalid choice. Try again.\n")
		}
	}
}

func (r *repl) handleAddBook() {
	id, ok := r.readInt("Enter Book ID (integer): ")
	if !ok {
		return
	}
	title, ok := r.readLine("Enter Title: ")
	if !ok {
		return
	}
	copies, ok := r.readInt("Enter available copies (integer): ")
	if !ok {
		return
	}

	res, err := r.mgr.AddBook(id, library.NewText(title), copies)
	if err != nil {
		r.printf("Error adding book: %v\n", err)
		return
	}
	if res.Warning != nil {
		r.printf("Warning: %v\n", res.Warning)
	}
	r.printf("Book added: ID=%d Title=%s Copies=%d\n", id, orDefault(title, "(no title)"), copies)
}

func (r *repl) handleSearchBook() {
	id, ok := r.readInt("Enter Book ID to search: ")
	if !ok {
		return
	}
	b, found := r.mgr.SearchBook(id)
	if !found {
		r.printf("Book with ID %d not found.\n", id)
		return
	}
	r.printf("Book Found -> ID=%d Title=%s Copies=%d\n", b.ID, orDefault(b.Title, "(no title)"), b.AvailableCopies)
}

func (r *repl) handleRequestIssue() {
	name, ok := r.readLine("Enter Student Name: ")
	if !ok {
		return
	}
	id, ok := r.readInt("Enter Book ID to request: ")
	if !ok {
		return
	}

	res, err := r.mgr.RequestIssue(library.NewText(name), id)
	if err != nil {
		r.printf("Error requesting issue: %v\n", err)
		return
	}
	if res.Warning != nil {
		r.printf("Warning: %v\n", res.Warning)
	}
	r.printf("Request enqueued: Student=%s BookID=%d\n", orDefault(name, "(no name)"), id)
}

func (r *repl) handleProcessNext() {
	out := r.mgr.ProcessNextRequest()
	switch out.Kind {
	case library.OutcomeNoPending:
		r.printf("No pending requests to process.\n")
		return
	case library.OutcomeIssued:
		r.printf("Issued book '%s' (ID %d) to %s. Remaining copies: %d\n",
			orDefault(out.Title, "(no title)"), out.BookID, orDefault(out.StudentName, "(no name)"), out.Remaining)
	case library.OutcomeFailed:
		if out.Reason == library.ReasonNotFound {
			r.printf("Not Available: Book ID %d does not exist.\n", out.BookID)
		} else {
			r.printf("Not Available: Book ID %d has no available copies.\n", out.BookID)
		}
	}
	if out.Warning != nil {
		r.printf("Warning: %v\n", out.Warning)
	}
}

func (r *repl) handleViewAll() {
	snap := r.mgr.Snapshot()
	r.printBooks(snap.Books)
	r.printQueue(snap.Pending)
	r.printStack(snap.ActionLog)
	r.printIssued()

	answer, ok := r.readLine("\nDo you want to undo (pop) actions from the activity stack? (y/n): ")
	if !ok || !strings.HasPrefix(strings.ToLower(answer), "y") {
		return
	}
	k, ok := r.readInt("\nEnter K (number of actions to pop): ")
	if !ok {
		return
	}
	popped, err := r.mgr.UndoActions(k)
	if err != nil {
		r.printf("K must be > 0.\n")
		return
	}
	r.printf("\nPopping %d action(s):\n", k)
	for _, line := range popped {
		r.printf("Popped: %s\n", line)
	}
	if len(popped) < k {
		r.printf("No more actions to pop.\n")
	}
}

func (r *repl) handleExport() {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(r.mgr.Snapshot(), "", "  ")
	if err != nil {
		r.printf("Error exporting state: %v\n", err)
		return
	}
	r.printf("%s\n", data)
}

func (r *repl) printBooks(books []library.BookView) {
	r.printf("\n===================== BOOK CATALOG =====================\n")
	if len(books) == 0 {
		r.printf("No books available.\n")
		return
	}
	border := "+---------+-------------------------------+----------+\n"
	r.print(border)
	r.printf("| Book ID | Title                         | Copies   |\n")
	r.print(border)
	for _, b := range books {
		r.printf("| %-7d | %-29s | %-8d |\n", b.ID, truncateString(orDefault(b.Title, "(no title)"), 29), b.AvailableCopies)
	}
	r.print(border)
}

func (r *repl) printQueue(reqs []library.RequestView) {
	r.printf("\n================= ISSUE REQUEST QUEUE =================\n")
	if len(reqs) == 0 {
		r.printf("No pending requests.\n")
		return
	}
	border := "+--------+---------------------------+---------+\n"
	r.print(border)
	r.printf("|  No.   | Student Name              | Book ID |\n")
	r.print(border)
	for i, q := range reqs {
		r.printf("| %-6d | %-25s | %-7d |\n", i+1, truncateString(orDefault(q.StudentName, "(no name)"), 25), q.BookID)
	}
	r.print(border)
}

func (r *repl) printStack(lines []string) {
	r.printf("\n==================== ACTIVITY STACK ====================\n")
	if len(lines) == 0 {
		r.printf("No actions logged.\n")
		return
	}
	border := "+--------+-------------------------------+\n"
	r.print(border)
	r.printf("| Index  | Action                        |\n")
	r.print(border)
	for i, line := range lines {
		r.printf("| %-6d | %-29s |\n", i+1, line)
	}
	r.print(border)
}

func (r *repl) printIssued() {
	issued := r.mgr.ListIssuedStudents()
	r.printf("\n============= STUDENTS WHO TOOK BOOKS =============\n")
	if len(issued) == 0 {
		r.printf("No books issued yet.\n")
		return
	}
	border := "+--------+---------------------------+---------+\n"
	r.print(border)
	r.printf("|  No.   | Student Name              | Book ID |\n")
	r.print(border)
	for i, rec := range issued {
		r.printf("| %-6d | %-25s | %-7d |\n", i+1, truncateString(orDefault(rec.StudentName, "(no name)"), 25), rec.BookID)
	}
	r.print(border)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// truncateString cuts s to at most maxLength runes so table cells never
// split a multi-byte character.
func truncateString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength-3]) + "..."
}
