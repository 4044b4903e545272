// Package audit keeps an append-only JSONL journal of scans so teams can
// see what was scanned and what turned up without re-leaking the secrets
// themselves.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/keyhound/keyhound/internal/types"
)

// ScanRecord is one journal entry. Findings are stored as fingerprints
// only; the matched text never reaches disk.
type ScanRecord struct {
	Timestamp    time.Time     `json:"timestamp"`
	ScanID       string        `json:"scan_id"`
	Root         string        `json:"root"`
	Findings     int           `json:"findings"`
	FilesScanned int           `json:"files_scanned"`
	Duration     string        `json:"duration"`
	Fingerprints []Fingerprint `json:"fingerprints,omitempty"`
}

// Fingerprint locates a finding and carries a stable hash of its matched
// text, usable for cross-run comparison without storing the secret.
type Fingerprint struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Type string `json:"type"`
	Hash string `json:"hash"`
}

// Log appends scans to a JSONL file next to the scan root.
type Log struct {
	path string
}

// New places the journal inside .git when root is a repository, otherwise
// alongside the tree.
func New(root string) *Log {
	path := filepath.Join(root, ".keyhound_audit.jsonl")
	if st, err := os.Stat(filepath.Join(root, ".git")); err == nil && st.IsDir() {
		path = filepath.Join(root, ".git", "keyhound_audit.jsonl")
	}
	return &Log{path: path}
}

// NewGlobal places the journal in the user config directory. Used for
// scans of transient trees such as temporary clones, where a journal next
// to the tree would be deleted with it.
func NewGlobal() *Log {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return &Log{path: filepath.Join(os.TempDir(), ".keyhound_audit.jsonl")}
	}
	dir := filepath.Join(base, "keyhound")
	_ = os.MkdirAll(dir, 0700)
	return &Log{path: filepath.Join(dir, "audit.jsonl")}
}

// Record builds a journal entry for a completed scan.
func Record(root string, findings []types.Finding, filesScanned int, duration time.Duration) ScanRecord {
	fps := make([]Fingerprint, 0, len(findings))
	for _, f := range findings {
		fps = append(fps, Fingerprint{
			File: f.File,
			Line: f.Line,
			Type: f.Type,
			Hash: HashFinding(f),
		})
	}
	return ScanRecord{
		Timestamp:    time.Now(),
		ScanID:       fmt.Sprintf("scan_%d", time.Now().Unix()),
		Root:         root,
		Findings:     len(findings),
		FilesScanned: filesScanned,
		Duration:     duration.String(),
		Fingerprints: fps,
	}
}

// HashFinding returns a stable hex fingerprint of a finding's identity.
func HashFinding(f types.Finding) string {
	sum := xxhash.Sum64String(f.File + "|" + f.Type + "|" + f.Match)
	return fmt.Sprintf("%016x", sum)
}

// Append writes one record. Owner-only permissions; the journal names
// files that contain secrets.
func (l *Log) Append(rec ScanRecord) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// History returns recorded scans, newest first. Truncated or malformed
// lines are skipped.
func (l *Log) History() ([]ScanRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec ScanRecord
		if err := dec.Decode(&rec); err != nil {
			break
		}
		records = append(records, rec)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}
