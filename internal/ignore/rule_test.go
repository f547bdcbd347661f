package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_Markers(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		pattern  string
		negate   bool
		dirOnly  bool
		anchored bool
	}{
		{name: "plain pattern", line: "foo.txt", pattern: "foo.txt"},
		{name: "surrounding whitespace trimmed", line: "  foo.txt \t", pattern: "foo.txt"},
		{name: "negation", line: "!important.log", pattern: "important.log", negate: true},
		{name: "negation with space", line: "! important.log", pattern: "important.log", negate: true},
		{name: "directory only", line: "build/", pattern: "build", dirOnly: true},
		{name: "anchored", line: "/dist", pattern: "dist", anchored: true},
		{name: "anchored directory", line: "/dist/", pattern: "dist", dirOnly: true, anchored: true},
		{name: "negated anchored directory", line: "!/dist/", pattern: "dist", negate: true, dirOnly: true, anchored: true},
		{name: "multi segment", line: "src/**/test", pattern: "src/**/test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := ParseLine(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.pattern, r.Pattern)
			assert.Equal(t, tt.negate, r.Negate)
			assert.Equal(t, tt.dirOnly, r.DirOnly)
			assert.Equal(t, tt.anchored, r.Anchored)
		})
	}
}

func TestParseLine_Dropped(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "empty line", line: ""},
		{name: "whitespace only", line: "   \t  "},
		{name: "comment", line: "# build artifacts"},
		{name: "indented comment", line: "   # build artifacts"},
		{name: "bare slash", line: "/"},
		{name: "bare directory slash", line: "//"},
		{name: "negated nothing", line: "!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseLine(tt.line)
			assert.False(t, ok)
		})
	}
}

func TestParseLine_SegmentNormalization(t *testing.T) {
	r, ok := ParseLine("foo//bar")
	require.True(t, ok)
	assert.Equal(t, []string{"foo", "bar"}, r.segments)

	r, ok = ParseLine("src/**/test/*.go")
	require.True(t, ok)
	assert.Equal(t, []string{"src", "**", "test", "*.go"}, r.segments)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	content := "# comment\n\n*.log\n!important.log\nbuild/\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := ParseFile(path, "sub")
	require.NoError(t, err)
	require.Len(t, rules, 3)

	assert.Equal(t, "*.log", rules[0].Pattern)
	assert.True(t, rules[1].Negate)
	assert.True(t, rules[2].DirOnly)
	for _, r := range rules {
		assert.Equal(t, "sub", r.base)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope"), "")
	assert.Error(t, err)
}
