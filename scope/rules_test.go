package scope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func semiExprFor(t *testing.T, src string) SemiExpression {
	t.Helper()
	tz := NewTokenizer(strings.NewReader(src))
	col := NewCollector(tz)
	require := col.HasMore()
	if !require {
		t.Fatalf("no semi-expression produced for %q", src)
	}
	return col.Next()
}

func TestQualifiedNameParts(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []string
	}{
		{"unqualified", "void f ( ) {", nil},
		{"single qualifier", "void A :: f ( ) {", []string{"A"}},
		{"nested qualifier", "void A :: B :: f ( ) {", []string{"A", "B"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			se := semiExprFor(t, tc.source)
			got := qualifiedNameParts(se)
			if tc.expected == nil {
				assert.Nil(t, got)
			} else {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestClassifyDeclType(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected DeclType
	}{
		{"typedef", "typedef int MyInt ;", DataDecl},
		{"using alias", "using MyInt = int ;", DataDecl},
		{"enum", "enum Color { Red } ;", DataDecl},
		{"prototype", "void f ( int x ) ;", FunctionDecl},
		{"data member", "int count ;", DataDecl},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			se := semiExprFor(t, tc.source)
			assert.Equal(t, tc.expected, classifyDeclType(se))
		})
	}
}

func TestIsLambdaOpener(t *testing.T) {
	se := semiExprFor(t, "[ x ] ( int y ) {")
	assert.True(t, isLambdaOpener(se))

	se2 := semiExprFor(t, "if ( x ) {")
	assert.False(t, isLambdaOpener(se2))
}
