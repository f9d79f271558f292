package scope

// Declaration is a non-scope-opening statement recorded inside an ASTNode,
// such as a field, a typedef, or a using-alias (spec.md "Declaration").
type Declaration struct {
	Package  string
	Line     int
	Access   Access
	DeclType DeclType
	Tokens   []Token
}

// Raw renders the declaration's token sequence back to source-ish text.
func (d Declaration) Raw() string {
	out := ""
	for i, t := range d.Tokens {
		if i > 0 {
			out += " "
		}
		out += t.Lexeme
	}
	return out
}

// IntroducedTypeName returns the type name introduced by a typedef/using/enum
// declaration, or "" if this declaration does not introduce one. Used by the
// type table builder (component G).
func (d Declaration) IntroducedTypeName() string {
	toks := d.Tokens
	if len(toks) == 0 {
		return ""
	}
	switch toks[0].Lexeme {
	case "typedef":
		// typedef <...> Name ;  -> last identifier before the trailing ';'/end
		for i := len(toks) - 1; i >= 0; i-- {
			if toks[i].IsIdent() {
				return toks[i].Lexeme
			}
		}
	case "using":
		// using Name = ... ;  (C++ alias) or using Name ; (C# using-alias)
		if len(toks) >= 2 && toks[1].IsIdent() {
			return toks[1].Lexeme
		}
	case "enum":
		for i := 1; i < len(toks); i++ {
			if toks[i].IsIdent() && toks[i].Lexeme != "class" && toks[i].Lexeme != "struct" {
				return toks[i].Lexeme
			}
		}
	}
	return ""
}
