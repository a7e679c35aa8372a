package library

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ImportReport summarises an ImportCatalog run.
type ImportReport struct {
	Added    int
	Warnings []error // books added whose ADD_BOOK entry was not logged
	Errors   []error // lines skipped
}

// ImportCatalog reads "id|title|copies" lines from r and adds each one with
// AddBook, so every imported book is also logged. Blank lines and lines
// starting with '#' are ignored. Quotes have no special meaning. A bad line
// is recorded in the report and skipped; only a read failure aborts the
// import.
func (lm *LibraryManager) ImportCatalog(r io.Reader) (ImportReport, error) {
	var report ImportReport
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		id, title, copies, err := parseCatalogRecord(strings.Split(text, "|"))
		if err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		res, err := lm.AddBook(id, NewText(title), copies)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if res.Warning != nil {
			report.Warnings = append(report.Warnings, fmt.Errorf("line %d: %w", line, res.Warning))
		}
		report.Added++
	}
	if err := sc.Err(); err != nil {
		return report, fmt.Errorf("read catalog: %w", err)
	}
	return report, nil
}

func parseCatalogRecord(record []string) (id int, title string, copies int, err error) {
	if len(record) != 3 {
		return 0, "", 0, fmt.Errorf("want 3 fields (id|title|copies), got %d: %w", len(record), ErrInvalidInput)
	}
	id, err = strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return 0, "", 0, fmt.Errorf("book id %q: %w", record[0], ErrInvalidInput)
	}
	copies, err = strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return 0, "", 0, fmt.Errorf("copies %q: %w", record[2], ErrInvalidInput)
	}
	return id, strings.TrimSpace(record[1]), copies, nil
}
