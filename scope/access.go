package scope

// Access is the visibility of a Declaration within its enclosing scope.
type Access int

const (
	Public Access = iota
	Protected
	Private
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Protected:
		return "protected"
	default:
		return "private"
	}
}

// DeclType classifies a Declaration's shape.
type DeclType int

const (
	OtherDecl DeclType = iota
	DataDecl
	FunctionDecl
	LambdaDecl
)

func (d DeclType) String() string {
	switch d {
	case DataDecl:
		return "data"
	case FunctionDecl:
		return "function"
	case LambdaDecl:
		return "lambda"
	default:
		return "other"
	}
}

// NodeKind is the kind of scope an ASTNode represents.
type NodeKind string

const (
	KindNamespace NodeKind = "namespace"
	KindClass     NodeKind = "class"
	KindStruct    NodeKind = "struct"
	KindInterface NodeKind = "interface"
	KindFunction  NodeKind = "function"
	KindLambda    NodeKind = "lambda"
	KindControl   NodeKind = "control"
	KindAnonymous NodeKind = "anonymous"
)

// Language identifies the front-end dialect in effect while parsing a file.
type Language int

const (
	CPP Language = iota
	CSharp
)

func (l Language) String() string {
	if l == CSharp {
		return "C#"
	}
	return "C++"
}

// LanguageFor derives the Language from a file extension (including the
// leading dot), per SPEC_FULL.md's per-file front-end selection.
func LanguageFor(ext string) Language {
	if ext == ".cs" {
		return CSharp
	}
	return CPP
}

// DefaultAccess returns the implicit access level for a newly opened scope
// of the given kind (spec.md "Access" data model: private for class bodies,
// public for struct/namespace).
func DefaultAccess(kind NodeKind) Access {
	if kind == KindClass {
		return Private
	}
	return Public
}
