// Package ignore loads .keyhoundignore files: one gitignore-like glob per
// line, comments with #, matched against root-relative paths.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher matches root-relative paths against loaded glob patterns.
type Matcher struct {
	globs []string
}

// Load reads the ignore file at path. A missing file yields an empty
// matcher and no error; ignore files are optional.
func Load(path string) (Matcher, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Matcher{}, nil
		}
		return Matcher{}, err
	}
	defer f.Close()

	var m Matcher
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// "dir/" means everything under dir
		if strings.HasSuffix(line, "/") {
			line += "**"
		}
		m.globs = append(m.globs, line)
	}
	return m, sc.Err()
}

// Match reports whether rel matches any loaded pattern. Bare patterns like
// "*.pem" match against any path segment, mirroring gitignore behavior.
func (m Matcher) Match(rel string) bool {
	rp := strings.ReplaceAll(rel, "\\", "/")
	for _, g := range m.globs {
		if ok, _ := doublestar.Match(g, rp); ok {
			return true
		}
		if !strings.Contains(g, "/") {
			if ok, _ := doublestar.Match(g, filepath.Base(rp)); ok {
				return true
			}
		}
	}
	return false
}

// Empty reports whether the matcher has no patterns.
func (m Matcher) Empty() bool { return len(m.globs) == 0 }
