// Package ignore implements gitignore-style exclusion rules: parsing
// pattern lines, composing rule sets across directory levels, and
// matching candidate paths with last-match-wins precedence.
//
// The supported syntax is the common subset of the gitignore format:
// literal segments, '*', '?', and '**'; a leading '/' anchors a pattern
// to its defining directory, a trailing '/' restricts it to directories,
// and a leading '!' negates it. Character classes and backslash escapes
// are not interpreted; such characters match literally.
package ignore

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultIgnoreFile is the per-directory ignore file name used when no
// other name is configured.
const DefaultIgnoreFile = ".gitignore"

// Rule is a single parsed line of an ignore file. Rules are immutable
// after parsing.
type Rule struct {
	// Pattern is the original pattern text with the '!', trailing '/',
	// and leading '/' markers stripped.
	Pattern string

	// Negate reports that the line began with '!' (re-include).
	Negate bool

	// DirOnly reports that the line ended with '/': the rule matches
	// directories only, never plain files.
	DirOnly bool

	// Anchored reports that the line began with '/': the pattern must
	// match starting at the defining directory, not at any deeper offset.
	Anchored bool

	// base is the directory, slash-separated and relative to the scan
	// root, whose ignore file defined this rule. Empty for rules defined
	// at or above the scan root. Candidate paths are made relative to
	// base before matching, so nested ignore files only govern their own
	// subtree and their anchored patterns anchor at their own directory.
	base string

	// segments is Pattern split on '/'. A segment equal to "**" matches
	// zero or more whole path components.
	segments []string
}

// ParseLine parses one line of an ignore file. The second return value
// is false for lines that produce no rule: blank lines, comments, and
// patterns left empty once their markers are stripped.
func ParseLine(line string) (Rule, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Rule{}, false
	}

	var r Rule
	if strings.HasPrefix(trimmed, "!") {
		r.Negate = true
		trimmed = strings.TrimSpace(trimmed[1:])
	}
	if strings.HasSuffix(trimmed, "/") {
		r.DirOnly = true
		trimmed = trimmed[:len(trimmed)-1]
	}
	if strings.HasPrefix(trimmed, "/") {
		r.Anchored = true
		trimmed = trimmed[1:]
	}
	r.Pattern = trimmed

	// Empty segments from consecutive or trailing slashes carry no
	// meaning; drop them so "foo//bar" behaves like "foo/bar".
	for _, seg := range strings.Split(trimmed, "/") {
		if seg != "" {
			r.segments = append(r.segments, seg)
		}
	}
	if len(r.segments) == 0 {
		return Rule{}, false
	}
	return r, true
}

// ParseFile parses an ignore file and returns its rules in file order.
// base is the directory, slash-separated and relative to the scan root,
// that the file's rules apply under; pass "" for the scan root's own
// ignore file and for ignore files found above the root.
func ParseFile(path, base string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ignore file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var rules []Rule
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		r, ok := ParseLine(sc.Text())
		if !ok {
			continue
		}
		r.base = base
		rules = append(rules, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ignore file: %w", err)
	}
	return rules, nil
}
