package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/keyhound/keyhound/internal/types"
)

var finding = types.Finding{
	File: "app.env", Line: 3, Type: "password",
	Match: "abc123supersecret", Context: `password = "abc123supersecret"`,
}

func TestHashFindingStable(t *testing.T) {
	h1 := HashFinding(finding)
	h2 := HashFinding(finding)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 16)

	other := finding
	other.Match = "differentsecret"
	assert.NotEqual(t, h1, HashFinding(other))
}

func TestRecordOmitsSecrets(t *testing.T) {
	rec := Record("/repo", []types.Finding{finding}, 12, 250*time.Millisecond)
	assert.Equal(t, 1, rec.Findings)
	assert.Equal(t, 12, rec.FilesScanned)
	assert.Len(t, rec.Fingerprints, 1)

	fp := rec.Fingerprints[0]
	assert.Equal(t, "app.env", fp.File)
	assert.Equal(t, 3, fp.Line)
	assert.Equal(t, "password", fp.Type)
	assert.NotContains(t, fp.Hash, "supersecret")
}

func TestAppendHistoryRoundtrip(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)

	first := Record(dir, []types.Finding{finding}, 1, time.Second)
	first.ScanID = "scan_1"
	second := Record(dir, nil, 4, time.Second)
	second.ScanID = "scan_2"

	if err := l.Append(first); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(second); err != nil {
		t.Fatal(err)
	}

	records, err := l.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// newest first
	assert.Equal(t, "scan_2", records[0].ScanID)
	assert.Equal(t, "scan_1", records[1].ScanID)
	assert.Len(t, records[1].Fingerprints, 1)

	info, err := os.Stat(filepath.Join(dir, ".keyhound_audit.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestNewPrefersGitDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	l := New(dir)
	if err := l.Append(Record(dir, nil, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git", "keyhound_audit.jsonl")); err != nil {
		t.Fatalf("journal not placed in .git: %v", err)
	}
}

func TestNewGlobalUsesConfigDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	l := NewGlobal()
	if err := l.Append(Record("/tmp/clone", nil, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(base, "keyhound", "audit.jsonl")); err != nil {
		t.Fatalf("journal not in config dir: %v", err)
	}
}

func TestHistoryMissingFile(t *testing.T) {
	l := New(t.TempDir())
	_, err := l.History()
	assert.Error(t, err)
}
