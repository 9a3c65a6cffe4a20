package aggregate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Render produces the aggregated document for records, in order. Each record
// renders as
//
//	filename: `<path>`
//	```<ext>
//	<content>```
//
// with the closing fence directly adjacent to the content and no separator
// between records. Consumers depend on the exact byte layout: the same record
// sequence always yields an identical string.
func Render(records []FileRecord) string {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "filename: `%s`\n```%s\n%s```\n", r.Path, fenceLabel(r.Path), r.Content)
	}
	return b.String()
}

// fenceLabel is the fence language label for path: the final extension of the
// base name without its leading dot. A name with no extension yields the
// empty label; a dotfile such as ".env" counts as having no extension.
func fenceLabel(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	// A bare run of leading dots does not start an extension.
	if strings.Trim(base[:i], ".") == "" {
		return ""
	}
	return base[i+1:]
}
