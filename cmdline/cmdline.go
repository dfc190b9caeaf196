// Package cmdline recovers an executable path and named argument values from a raw,
// loosely quoted process command line.
package cmdline

import (
	"strings"
	"unicode"
)

// UnknownComponent is returned by LastPathComponent when there is nothing to name.
const UnknownComponent = "Unknown"

// ExtractExecutablePath returns the executable at the start of commandLine.
//
// A quoted path is returned as-is. An unquoted path ends at the first space and is
// only accepted when it ends with targetFileName (case-insensitive). An empty string
// means no path could be recovered.
func ExtractExecutablePath(commandLine, targetFileName string) string {
	line := strings.TrimLeftFunc(commandLine, unicode.IsSpace)
	if line == "" {
		return ""
	}

	if line[0] == '"' {
		end := strings.IndexByte(line[1:], '"')
		if end < 0 {
			return ""
		}
		return line[1 : 1+end]
	}

	path := line
	if space := strings.IndexByte(line, ' '); space >= 0 {
		path = line[:space]
	}

	if !hasSuffixFold(path, targetFileName) {
		return ""
	}
	return path
}

// ExtractNamedArgument returns the value of the first flag in candidateFlags that occurs
// in commandLine. Both "--flag value" and "--flag=value" forms are accepted, and a
// quoted value may contain spaces. An empty string means no value was found.
func ExtractNamedArgument(commandLine string, candidateFlags []string) string {
	if commandLine == "" {
		return ""
	}

	for _, flag := range candidateFlags {
		if flag == "" {
			continue
		}

		idx := indexFold(commandLine, flag)
		if idx < 0 {
			continue
		}

		// first matching spelling wins, even if the value turns out empty
		return valueAfter(commandLine[idx+len(flag):])
	}

	return ""
}

func valueAfter(rest string) string {
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if strings.HasPrefix(rest, "=") {
		rest = strings.TrimLeftFunc(rest[1:], unicode.IsSpace)
	}

	if strings.HasPrefix(rest, `"`) {
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			return ""
		}
		return rest[1 : 1+end]
	}

	if space := strings.IndexByte(rest, ' '); space >= 0 {
		return rest[:space]
	}
	return rest
}

// LastPathComponent returns the final element of a Windows or Unix style path,
// ignoring trailing separators. It returns UnknownComponent for an empty path.
func LastPathComponent(path string) string {
	path = strings.TrimRight(path, `\/`)
	if path == "" {
		return UnknownComponent
	}

	if sep := strings.LastIndexAny(path, `\/`); sep >= 0 {
		return path[sep+1:]
	}
	return path
}

// QuoteArg wraps s in double quotes when it is empty or contains whitespace.
// For a flag=value argument only the value is quoted.
func QuoteArg(s string) string {
	if s == "" {
		return `""`
	}
	if strings.IndexFunc(s, unicode.IsSpace) < 0 {
		return s
	}
	if eq := strings.IndexByte(s, '='); eq > 0 && isFlag(s[:eq]) {
		return s[:eq+1] + `"` + s[eq+1:] + `"`
	}
	return `"` + s + `"`
}

// isFlag reports whether s looks like "-x", "--name" or "/name".
func isFlag(s string) bool {
	if len(s) < 2 || (s[0] != '-' && s[0] != '/') {
		return false
	}
	return !strings.ContainsAny(s[1:], "/\\") && strings.IndexFunc(s, unicode.IsSpace) < 0
}

// JoinArgs rebuilds a single command line from an argument vector.
func JoinArgs(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		quoted[i] = QuoteArg(arg)
	}
	return strings.Join(quoted, " ")
}

func indexFold(s, substr string) int {
	for i := range s {
		if hasPrefixFold(s[i:], substr) {
			return i
		}
	}
	return -1
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
