package scope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(t *testing.T, src string) []string {
	t.Helper()
	tz := NewTokenizer(strings.NewReader(src))
	col := NewCollector(tz)
	var out []string
	for col.HasMore() {
		out = append(out, col.Next().Text())
	}
	return out
}

func TestCollector(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []string
	}{
		{
			name:     "simple statement",
			source:   "int x ;",
			expected: []string{"int x ;"},
		},
		{
			name:     "scope open and close",
			source:   "class A { } ;",
			expected: []string{"class A {", "}", ";"},
		},
		{
			name:     "for loop does not split on internal semicolons",
			source:   "for ( i = 0 ; i < 10 ; i ++ ) { }",
			expected: []string{"for ( i = 0 ; i < 10 ; i ++ ) {", "}"},
		},
		{
			name:     "trailing close after semicolon is standalone",
			source:   "void f ( ) { x ; }",
			expected: []string{"void f ( ) {", "x ;", "}"},
		},
		{
			name:     "directive is its own unit",
			source:   "int x ;\n#include \"A.h\"\nint y ;",
			expected: []string{"int x ;", `#include "A.h"`, "int y ;"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, collect(t, tc.source))
		})
	}
}
