package gen

import (
	"os"
	"strings"
)

// writeDebugUnformatted writes code that failed gofmt to a sidecar file so
// the offending output can be inspected. Best-effort: it never makes
// generation fail harder.
func writeDebugUnformatted(filename string, content []byte) error {
	if filename == "" {
		return nil
	}

	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(debugName, content, 0o644)
}
