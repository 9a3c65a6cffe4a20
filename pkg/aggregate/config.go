// File: pkg/aggregate/config.go
package aggregate

import (
	"os"
	"strconv"
	"strings"
)

// DefaultOutput is the document written when no output path is configured.
const DefaultOutput = "prompt.md"

// DefaultExtensions is the allow-list of file suffixes eligible for
// aggregation. Matching is a case-sensitive suffix check, dot included.
var DefaultExtensions = []string{".jsx", ".js", ".ts", ".tsx", ".json", ".html", ".css", ".scss"}

// DefaultExcludes are the path substrings that disqualify a file regardless
// of its extension. Matching is case-sensitive, so README excludes README.md
// but not readme-notes.json.
var DefaultExcludes = []string{"node_modules", "package-lock", "README"}

// Arguments holds the configuration options for one aggregation run.
type Arguments struct {
	Root        string   // Directory tree to aggregate.
	Output      string   // Destination path for the aggregated document.
	Extensions  []string // File suffixes eligible for inclusion (leading dot included).
	Excludes    []string // Path substrings that disqualify a file.
	SkipInvalid bool     // Skip files that are not valid UTF-8 instead of aborting.
}

// FileRecord is one selected file: its path exactly as encountered during
// traversal and its full text content.
type FileRecord struct {
	Path    string // The file path, root prefix included.
	Content string // The file's text content.
}

// Defaults returns the fixed configuration of the tool. The slices are fresh
// copies; callers may modify them freely.
func Defaults() Arguments {
	return Arguments{
		Output:     DefaultOutput,
		Extensions: append([]string(nil), DefaultExtensions...),
		Excludes:   append([]string(nil), DefaultExcludes...),
	}
}

// FromEnv returns Defaults overlaid with PROMPTPACK_* environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over .env entries.
func FromEnv() Arguments {
	args := Defaults()
	args.Output = getEnv("PROMPTPACK_OUTPUT", args.Output)
	args.Extensions = getEnvList("PROMPTPACK_EXTENSIONS", args.Extensions)
	args.Excludes = getEnvList("PROMPTPACK_EXCLUDE", args.Excludes)
	args.SkipInvalid = getEnvBool("PROMPTPACK_SKIP_INVALID", args.SkipInvalid)
	return args
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

// getEnvList splits a comma-separated variable, dropping empty elements.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
