package ignore

import (
	"os"
	"path/filepath"
)

// RuleSet is the ordered list of rules in effect for one directory,
// accumulated root-to-leaf. Order is significant: when several rules
// match the same path, the last one decides the verdict.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet builds a rule set from rules in the given order.
func NewRuleSet(rules ...Rule) RuleSet {
	return RuleSet{rules: rules}
}

// Len returns the number of rules in the set.
func (rs RuleSet) Len() int {
	return len(rs.rules)
}

// Extend returns a new rule set with rules appended after the
// receiver's. The receiver is never modified, so sibling directories
// derived from the same parent set cannot observe each other's local
// rules.
func (rs RuleSet) Extend(rules []Rule) RuleSet {
	if len(rules) == 0 {
		return rs
	}
	merged := make([]Rule, 0, len(rs.rules)+len(rules))
	merged = append(merged, rs.rules...)
	merged = append(merged, rules...)
	return RuleSet{rules: merged}
}

// Ignored reports whether path (slash-separated, relative to the scan
// root) is excluded by the set. Every rule is evaluated in order and
// the last matching one wins; a matching negated rule flips the verdict
// back to not-ignored. There is no short-circuit, since any later rule
// can override any earlier one.
func (rs RuleSet) Ignored(path string, isDir bool) bool {
	ignored := false
	for _, r := range rs.rules {
		if r.Match(path, isDir) {
			ignored = !r.Negate
		}
	}
	return ignored
}

// ForRoot seeds the rule set for a scan rooted at root. It collects the
// named ignore file from every directory on the filesystem path from
// the top down to and including root, so rules defined above the scan
// root still apply. Missing or unreadable ignore files contribute no
// rules.
func ForRoot(root, ignoreName string) RuleSet {
	abs, err := filepath.Abs(root)
	if err != nil {
		return RuleSet{}
	}

	var dirs []string
	dir := abs
	for {
		dirs = append(dirs, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// dirs is leaf-to-root; read it backwards so deeper ignore files
	// land later in the set and take precedence.
	var rules []Rule
	for i := len(dirs) - 1; i >= 0; i-- {
		path := filepath.Join(dirs[i], ignoreName)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		parsed, err := ParseFile(path, "")
		if err != nil {
			continue
		}
		rules = append(rules, parsed...)
	}
	return RuleSet{rules: rules}
}
