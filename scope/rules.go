package scope

var controlKeywords = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true,
	"do": true, "try": true, "catch": true, "else": true,
}

// Apply pattern-matches a single SemiExpression against the fixed rule
// table of spec.md 4.C and fires the first matching action, mutating repo.
// Rules are evaluated in the listed order; the scope-closer '}' always wins
// over everything else.
func Apply(repo *Repository, se SemiExpression) {
	if len(se.Tokens) == 0 {
		return
	}

	if se.IsDirective() {
		// Preprocessor directives are opaque to scope tracking (spec.md 1, 4.A).
		return
	}

	if se.EndsWith("}") && len(se.Tokens) == 1 {
		closeScope(repo, se)
		return
	}

	if containsAccessSpecifier(se) {
		applyAccessSpecifier(repo, se)
		rest := se.Tokens[2:]
		if len(rest) == 0 {
			return
		}
		se = SemiExpression{Tokens: rest, StartLine: rest[0].Line}
	}

	body := stripTemplatePrefix(se)

	if body.EndsWith("{") {
		switch {
		case containsKeyword(body, "namespace"):
			pushScope(repo, body, KindNamespace, identAfter(body, "namespace"))
			return
		case containsKeyword(body, "class"):
			pushScope(repo, body, KindClass, identAfter(body, "class"))
			return
		case containsKeyword(body, "struct"):
			pushScope(repo, body, KindStruct, identAfter(body, "struct"))
			return
		case repo.Language == CSharp && containsKeyword(body, "interface"):
			pushScope(repo, body, KindInterface, identAfter(body, "interface"))
			return
		case isLambdaOpener(body):
			pushScope(repo, body, KindLambda, "")
			return
		case startsWithControlKeyword(body):
			pushScope(repo, body, KindControl, body.First().Lexeme)
			return
		case hasCallSignature(body):
			pushFunctionScope(repo, body)
			return
		default:
			pushScope(repo, body, KindAnonymous, "")
			return
		}
	}

	recordDeclarationIfDataShape(repo, se)
}

// stripTemplatePrefix consumes a leading "template < ... >" (nested angle
// brackets counted) per spec.md 4.C's template-handling policy, returning a
// SemiExpression positioned at the tokens that follow it. The template
// clause itself carries no further meaning for scope tracking.
func stripTemplatePrefix(se SemiExpression) SemiExpression {
	if len(se.Tokens) == 0 || se.Tokens[0].Lexeme != "template" {
		return se
	}
	if len(se.Tokens) < 2 || se.Tokens[1].Lexeme != "<" {
		return se
	}
	depth := 0
	for i := 1; i < len(se.Tokens); i++ {
		switch se.Tokens[i].Lexeme {
		case "<":
			depth++
		case ">":
			depth--
			if depth == 0 {
				return SemiExpression{Tokens: se.Tokens[i+1:], StartLine: se.StartLine}
			}
		}
	}
	return se
}

func containsKeyword(se SemiExpression, kw string) bool {
	idx := se.IndexOf(kw)
	if idx < 0 {
		return false
	}
	// "using Foo = SomeClass;" style aliasing or "class" appearing inside a
	// template argument list still counts per spec.md's loose identifier
	// scan ("contains <id>"); no extra disambiguation is specified.
	return true
}

// identAfter returns the identifier token immediately following the given
// keyword, or "" (anonymous) if none is present before the opening brace.
func identAfter(se SemiExpression, kw string) string {
	idx := se.IndexOf(kw)
	if idx < 0 || idx+1 >= len(se.Tokens) {
		return ""
	}
	next := se.Tokens[idx+1]
	if next.IsIdent() {
		return next.Lexeme
	}
	return ""
}

// isLambdaOpener matches the C++ lambda introducer: "[" ... "]" ... "(" ...
// ")" ... "{" (spec.md 4.C).
func isLambdaOpener(se SemiExpression) bool {
	toks := se.Tokens
	if len(toks) == 0 || toks[0].Lexeme != "[" {
		return false
	}
	i := 1
	depth := 1
	for i < len(toks) && depth > 0 {
		switch toks[i].Lexeme {
		case "[":
			depth++
		case "]":
			depth--
		}
		i++
	}
	if depth != 0 {
		return false
	}
	// optional "(" ... ")" parameter list
	if i < len(toks) && toks[i].Lexeme == "(" {
		pdepth := 1
		i++
		for i < len(toks) && pdepth > 0 {
			switch toks[i].Lexeme {
			case "(":
				pdepth++
			case ")":
				pdepth--
			}
			i++
		}
	}
	return true
}

func startsWithControlKeyword(se SemiExpression) bool {
	if len(se.Tokens) == 0 {
		return false
	}
	return controlKeywords[se.Tokens[0].Lexeme]
}

// hasCallSignature reports whether the semi-expression contains a
// "(" ... ")" pair before the terminating "{", the shape shared by function
// and method declarations (spec.md 4.C).
func hasCallSignature(se SemiExpression) bool {
	open := se.IndexOf("(")
	if open < 0 {
		return false
	}
	depth := 0
	for i := open; i < len(se.Tokens); i++ {
		switch se.Tokens[i].Lexeme {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return i < len(se.Tokens)-1
			}
		}
	}
	return false
}

// functionNameBeforeParen returns the identifier (or operator/destructor
// token) immediately preceding the first top-level "(".
func functionNameBeforeParen(se SemiExpression) string {
	open := se.IndexOf("(")
	if open <= 0 {
		return ""
	}
	return se.Tokens[open-1].Lexeme
}

// qualifiedNameParts walks backward from the function name token through a
// "A :: B :: name" qualifier chain and returns the qualifier parts in
// declaration order ("A", "B"), or nil if the name is unqualified. Used by
// the out-of-line member relocation rule (spec.md 4.C) to find the existing
// class/namespace node the method body belongs to.
func qualifiedNameParts(se SemiExpression) []string {
	open := se.IndexOf("(")
	if open <= 1 {
		return nil
	}
	i := open - 1 // the function name token itself
	var parts []string
	for i-2 >= 0 && se.Tokens[i-1].Lexeme == "::" && se.Tokens[i-2].IsIdent() {
		parts = append([]string{se.Tokens[i-2].Lexeme}, parts...)
		i -= 2
	}
	return parts
}

func containsAccessSpecifier(se SemiExpression) bool {
	if len(se.Tokens) < 2 || se.Tokens[1].Lexeme != ":" {
		return false
	}
	switch se.Tokens[0].Lexeme {
	case "public", "private", "protected":
		return true
	}
	return false
}

func applyAccessSpecifier(repo *Repository, se SemiExpression) {
	switch se.Tokens[0].Lexeme {
	case "public":
		repo.SetAccess(Public)
	case "private":
		repo.SetAccess(Private)
	case "protected":
		repo.SetAccess(Protected)
	}
}

// recordDeclarationIfDataShape records a Declaration for semi-expressions
// that look like a data member / variable / typedef / using / enum
// declaration, attached to the currently open scope (spec.md 4.C's final
// rule). Function and lambda bodies are scope-openers and never reach this
// rule (a bodiless prototype does, classified FunctionDecl); standalone statements inside a function body that happen not
// to open a scope are recorded too (declType "other"), matching the loose
// best-effort nature of the parser.
func recordDeclarationIfDataShape(repo *Repository, se SemiExpression) {
	current := repo.Current()
	decl := Declaration{
		Package:  repo.CurrentFile,
		Line:     se.StartLine,
		Access:   repo.CurrentAccess(),
		DeclType: classifyDeclType(se),
		Tokens:   se.Tokens,
	}
	current.AddDeclaration(decl)
}

func classifyDeclType(se SemiExpression) DeclType {
	if len(se.Tokens) == 0 {
		return OtherDecl
	}
	first := se.Tokens[0].Lexeme
	switch first {
	case "typedef", "using", "enum":
		return DataDecl
	}
	if se.Contains("(") {
		// e.g. a function prototype without a body: "void f();"
		return FunctionDecl
	}
	// heuristic: "<type> <name> [= ...] ;" shape — at least two tokens and
	// the first token looks like an identifier.
	if len(se.Tokens) >= 2 && se.Tokens[0].IsIdent() {
		return DataDecl
	}
	return OtherDecl
}

func pushScope(repo *Repository, se SemiExpression, kind NodeKind, name string) {
	parentKind := repo.Current().Type
	node := NewNode(name, kind, parentKind, repo.CurrentFile, repo.CurrentPath, se.StartLine)
	repo.Push(node)
}

// pushFunctionScope opens a function scope, applying the C++ out-of-line
// member relocation rule (spec.md 4.C): a qualified name "A::B::f" attaches
// the node to the existing AST node named B under A (left-to-right
// path-match) instead of the current lexical scope. Unqualified names, and
// qualified names with no matching existing scope, fall back to the
// ordinary lexical Push.
func pushFunctionScope(repo *Repository, se SemiExpression) {
	name := functionNameBeforeParen(se)
	parts := qualifiedNameParts(se)
	if len(parts) > 0 {
		if target := ResolveQualifiedScope(repo.Root, parts); target != nil {
			node := NewNode(name, KindFunction, target.Type, repo.CurrentFile, repo.CurrentPath, se.StartLine)
			repo.PushRelocated(node, target)
			return
		}
	}
	pushScope(repo, se, KindFunction, name)
}

func closeScope(repo *Repository, se SemiExpression) {
	if !repo.CanPop() {
		repo.Diagnose(&InternalError{
			Path: repo.CurrentFile,
			Line: se.StartLine,
			What: "unmatched '}'",
		})
		return
	}
	repo.Pop(se.StartLine)
}
