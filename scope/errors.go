package scope

import "github.com/viant/xdepend/internal/xerrors"

// The scope package's diagnostics are the shared xerrors taxonomy
// (spec.md 7); aliased here so rule-engine code can write &IoError{...}
// without an extra import.
type (
	UsageError    = xerrors.UsageError
	PathError     = xerrors.PathError
	IoError       = xerrors.IoError
	ParseWarning  = xerrors.ParseWarning
	InternalError = xerrors.InternalError
)
