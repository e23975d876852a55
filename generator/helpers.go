package generator

import (
	"bytes"
	"encoding/json"
	"mime"
	"strconv"
	"strings"
)

// jsonMediaType is the media type whose responses render as JsonResponse.
const jsonMediaType = "application/json"

// tsString quotes s as a JSON string, which is also a valid TypeScript
// string literal. HTML characters are left as they are.
func tsString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// Encoding a string cannot fail.
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// isJSONMediaType reports whether mediaType is application/json, ignoring
// parameters such as charset and letter case.
func isJSONMediaType(mediaType string) bool {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	return mt == jsonMediaType
}

// statusType renders a response key as a TypeScript status type: the
// numeral itself for a concrete status, number for "default" and ranges
// such as "2XX".
func statusType(status string) string {
	if status == "" {
		return "number"
	}
	for _, r := range status {
		if r < '0' || r > '9' {
			return "number"
		}
	}
	return status
}

// jsDoc renders a JSDoc block for a declaration, or nil when there is
// nothing to say.
func jsDoc(description string, deprecated bool) []string {
	text := strings.TrimSpace(description)
	if text == "" && !deprecated {
		return nil
	}
	lines := []string{"/**"}
	if text != "" {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimRight(strings.ReplaceAll(line, "*/", `*\/`), " \t\r")
			if line == "" {
				lines = append(lines, " *")
				continue
			}
			lines = append(lines, " * "+line)
		}
	}
	if deprecated {
		lines = append(lines, " * @deprecated")
	}
	return append(lines, " */")
}

// headerLines turns a free-form banner into line comments.
func headerLines(header string) []string {
	header = strings.TrimRight(header, "\n")
	if header == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(header, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			lines = append(lines, "//")
			continue
		}
		lines = append(lines, "// "+line)
	}
	return lines
}

// joinDistinct joins the non-duplicate entries of parts with sep, keeping
// the first occurrence of each.
func joinDistinct(parts []string, sep string) string {
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return strings.Join(out, sep)
}
