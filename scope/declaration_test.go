package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclaration_IntroducedTypeName(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []Token
		expected string
	}{
		{"typedef", []Token{{Lexeme: "typedef"}, {Lexeme: "int"}, {Lexeme: "MyInt"}, {Lexeme: ";"}}, "MyInt"},
		{"using alias", []Token{{Lexeme: "using"}, {Lexeme: "MyInt"}, {Lexeme: "="}, {Lexeme: "int"}, {Lexeme: ";"}}, "MyInt"},
		{"forward enum", []Token{{Lexeme: "enum"}, {Lexeme: "Color"}, {Lexeme: ";"}}, "Color"},
		{"plain statement", []Token{{Lexeme: "int"}, {Lexeme: "x"}, {Lexeme: ";"}}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Declaration{Tokens: tc.tokens}
			assert.Equal(t, tc.expected, d.IntroducedTypeName())
		})
	}
}

func TestDeclaration_Raw(t *testing.T) {
	d := Declaration{Tokens: []Token{{Lexeme: "int"}, {Lexeme: "x"}, {Lexeme: ";"}}}
	assert.Equal(t, "int x ;", d.Raw())
}

func TestDefaultAccess(t *testing.T) {
	assert.Equal(t, Private, DefaultAccess(KindClass))
	assert.Equal(t, Public, DefaultAccess(KindStruct))
	assert.Equal(t, Public, DefaultAccess(KindNamespace))
}
