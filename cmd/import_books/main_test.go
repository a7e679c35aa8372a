package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{name: "fits", in: "Dune", maxLen: 50, want: "Dune"},
		{name: "ascii", in: "abcdefghij", maxLen: 6, want: "abc..."},
		{name: "tiny width", in: "abcdef", maxLen: 2, want: "ab"},
		{name: "multi-byte", in: "a" + strings.Repeat("å", 20), maxLen: 25, want: "a" + strings.Repeat("å", 20)},
		{name: "multi-byte cut", in: "Ä" + strings.Repeat("ö", 10), maxLen: 5, want: "Äö..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateString(tt.in, tt.maxLen)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
