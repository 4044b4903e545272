// Package classify decides whether a filesystem path should be scanned at
// all: ignore fragments, fixed skip directories, an extension allow-list
// and a streaming binary-content check.
package classify

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SkipFragments are directory names excluded from traversal and scanning.
// A path is skipped when any fragment is a substring of it.
var SkipFragments = []string{
	"node_modules", ".git", "vendor", "dist", "build",
	"__pycache__", ".idea", ".vscode", "tmp", "log",
}

// ScanExtensions is the allow-list of file suffixes worth scanning.
var ScanExtensions = []string{
	".yml", ".yaml", ".json", ".js", ".py", ".rb", ".php", ".java",
	".go", ".sh", ".env", ".config", ".pem", ".ppk", ".key", ".sql",
	".xml", ".conf",
}

// ShouldScan reports whether path is a scan candidate. ignoreFragments are
// user-supplied substrings matched against the path's final component;
// SkipFragments are matched against the full path; finally the name must
// end with an allowed extension.
func ShouldScan(path string, ignoreFragments []string) bool {
	base := filepath.Base(path)
	for _, frag := range ignoreFragments {
		if frag != "" && strings.Contains(base, frag) {
			return false
		}
	}
	for _, frag := range SkipFragments {
		if strings.Contains(path, frag) {
			return false
		}
	}
	for _, ext := range ScanExtensions {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	return false
}

// SkipDir reports whether a directory name matches the fixed skip list.
// The walker uses it to prune subtrees before descending.
func SkipDir(name string) bool {
	for _, frag := range SkipFragments {
		if strings.Contains(name, frag) {
			return true
		}
	}
	return false
}

// IsText streams the file and reports whether it looks like text. The
// first byte below 0x20 that is not tab, LF or CR classifies the file as
// binary and stops reading. Any read error classifies the file as
// non-text so an unreadable file is skipped, never fatal.
func IsText(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return true
		}
		if err != nil {
			return false
		}
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			return false
		}
	}
}
