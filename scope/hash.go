package scope

import "github.com/minio/highwayhash"

var diagnosticHashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// hashDiagnostic produces a stable key for a diagnostic's location and
// message, used to deduplicate repeated ParseWarning/InternalError
// occurrences across re-runs of the same corpus (spec.md 8's
// idempotence property: identical input produces identical diagnostics).
func hashDiagnostic(path string, line int, what string) uint64 {
	h, err := highwayhash.New64(diagnosticHashKey)
	if err != nil {
		return 0
	}
	h.Write([]byte(path))
	h.Write([]byte{byte(line), byte(line >> 8), byte(line >> 16), byte(line >> 24)})
	h.Write([]byte(what))
	return h.Sum64()
}
