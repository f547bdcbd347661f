package ignore

import "strings"

// Match reports whether the rule matches path, a slash-separated path
// relative to the scan root. Matching happens relative to the rule's
// defining directory: a rule from sub/.gitignore never matches entries
// outside sub/, and its anchored patterns anchor at sub/, not at the
// scan root. A directory's own ignore file governs its contents, not
// the directory itself.
func (r Rule) Match(path string, isDir bool) bool {
	if r.DirOnly && !isDir {
		return false
	}
	if r.base != "" {
		if !strings.HasPrefix(path, r.base+"/") {
			return false
		}
		path = strings.TrimPrefix(path, r.base+"/")
	}
	comps := strings.Split(path, "/")
	if r.Anchored {
		return r.matchFrom(comps, 0, 0)
	}
	// Unanchored patterns may begin at any component, as if prefixed
	// with an implicit "**/".
	for start := range comps {
		if r.matchFrom(comps, 0, start) {
			return true
		}
	}
	return false
}

// matchFrom matches the rule's segment sequence beginning at segment
// cursor i against comps beginning at path cursor j. A "**" segment
// recurses over every number of components it could absorb; greedy
// consumption would miss matches when "**" sits mid-pattern.
func (r Rule) matchFrom(comps []string, i, j int) bool {
	for i < len(r.segments) && j < len(comps) {
		seg := r.segments[i]
		if seg == "**" {
			// A trailing "**" absorbs everything that remains.
			if i == len(r.segments)-1 {
				return true
			}
			for skip := 0; j+skip <= len(comps); skip++ {
				if r.matchFrom(comps, i+1, j+skip) {
					return true
				}
			}
			return false
		}
		if !matchSegment(seg, comps[j]) {
			return false
		}
		i++
		j++
	}
	// Leftover segments must all be "**", each matching zero components.
	if i < len(r.segments) {
		for ; i < len(r.segments); i++ {
			if r.segments[i] != "**" {
				return false
			}
		}
		return true
	}
	return j == len(comps)
}

// matchSegment matches one pattern segment against one path component
// using shell-style wildcards: '*' matches any run of characters, '?'
// matches exactly one, everything else matches literally. Backtracking
// resumes from the last '*' seen; worst case is quadratic in the
// segment length, which path components keep small.
func matchSegment(pattern, comp string) bool {
	var p, c int
	star := -1
	backtrack := 0
	for c < len(comp) {
		switch {
		case p < len(pattern) && (pattern[p] == comp[c] || pattern[p] == '?'):
			p++
			c++
		case p < len(pattern) && pattern[p] == '*':
			star = p
			backtrack = c
			p++
		case star >= 0:
			p = star + 1
			backtrack++
			c = backtrack
		default:
			return false
		}
	}
	// Trailing stars match the empty string.
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
