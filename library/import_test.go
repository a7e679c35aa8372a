package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedCatalog = `# id|title|copies
101|Intro to Algorithms|3
102 | Clean Code | 1

only one field
103|Bad Copies|x
104|Negative|-1
`

func TestImportCatalog(t *testing.T) {
	mgr := newManager(t)

	report, err := mgr.ImportCatalog(strings.NewReader(seedCatalog))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Added)
	assert.Len(t, report.Errors, 3)
	for _, e := range report.Errors {
		assert.ErrorIs(t, e, ErrInvalidInput)
	}
	assert.Empty(t, report.Warnings)

	assert.Equal(t, []BookView{
		{ID: 101, Title: "Intro to Algorithms", AvailableCopies: 3},
		{ID: 102, Title: "Clean Code", AvailableCopies: 1},
	}, mgr.ListBooks())
	assert.Equal(t, []string{"ADD_BOOK 102", "ADD_BOOK 101"}, mgr.ListActionLog())
}

func TestImportCatalogReportsLineNumbers(t *testing.T) {
	mgr := newManager(t)

	report, err := mgr.ImportCatalog(strings.NewReader("1|A|1\n2|B|oops\n"))
	require.NoError(t, err)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Error(), "line 2")
}

func TestImportCatalogFullCatalog(t *testing.T) {
	mgr := newManager(t, WithLimits(Limits{Books: 1, Actions: 0}))

	report, err := mgr.ImportCatalog(strings.NewReader("1|A|1\n2|B|1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Added)
	require.Len(t, report.Errors, 1)
	assert.ErrorIs(t, report.Errors[0], ErrAllocation)
}

func TestImportCatalogFile(t *testing.T) {
	mgr := newManager(t)
	path := filepath.Join(t.TempDir(), "catalog.txt")
	require.NoError(t, os.WriteFile(path, []byte("7|Seven|2\n"), 0o644))

	report, err := mgr.ImportCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Added)

	book, ok := mgr.SearchBook(7)
	require.True(t, ok)
	assert.Equal(t, "Seven", book.Title)

	_, err = mgr.ImportCatalogFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImportCatalogQuotesAreLiteral(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantAdded int
		wantBooks []BookView
	}{
		{
			name:      "quoted title followed by valid lines",
			input:     "1|\"Hitchhiker\" Guide|2\n2|Dune|1\n3|Emma|4\n",
			wantAdded: 3,
			wantBooks: []BookView{
				{ID: 1, Title: `"Hitchhiker" Guide`, AvailableCopies: 2},
				{ID: 2, Title: "Dune", AvailableCopies: 1},
				{ID: 3, Title: "Emma", AvailableCopies: 4},
			},
		},
		{
			name:      "unterminated quote costs only its line",
			input:     "1|\"Open|\n2|Dune|1\n",
			wantAdded: 1,
			wantBooks: []BookView{{ID: 2, Title: "Dune", AvailableCopies: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := newManager(t)

			report, err := mgr.ImportCatalog(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, report.Added)
			assert.Len(t, report.Errors, len(strings.Split(strings.TrimSpace(tt.input), "\n"))-tt.wantAdded)
			assert.Equal(t, tt.wantBooks, mgr.ListBooks())
		})
	}
}
