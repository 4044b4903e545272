package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keyhound/keyhound/internal/types"
)

var sample = []types.Finding{
	{File: "app.env", Line: 3, Type: "password", Match: "abc123supersecret", Context: `password = "abc123supersecret"`},
	{File: "id_rsa", Line: 1, Type: "private_key", Match: "PRIVATE KEY BLOCK", Context: "Contains private key material"},
}

func TestWriteJSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample); err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(decoded))
	}
	for _, key := range []string{"file", "line", "type", "match", "context"} {
		assert.Contains(t, decoded[0], key)
	}
	assert.Equal(t, "app.env", decoded[0]["file"])
	assert.Equal(t, float64(3), decoded[0]["line"])
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestWriteFileFallback(t *testing.T) {
	var fallback bytes.Buffer
	bad := filepath.Join(t.TempDir(), "missing-dir", "out.json")
	if err := WriteFile(bad, sample, WriteJSON, &fallback); err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, fallback.String(), `"app.env"`)
}

func TestWriteFileSuccess(t *testing.T) {
	var fallback bytes.Buffer
	out := filepath.Join(t.TempDir(), "out.json")
	if err := WriteFile(out, sample, WriteJSON, &fallback); err != nil {
		t.Fatal(err)
	}
	assert.Zero(t, fallback.Len())

	var decoded []types.Finding
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, sample, decoded)
}

func TestPrintText(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sample, PrintOptions{NoColor: true, FilesScanned: 5})
	out := buf.String()

	assert.Contains(t, out, "[password] app.env:3")
	assert.Contains(t, out, "match:   abc123supersecret")
	assert.Contains(t, out, `context: password = "abc123supersecret"`)
	assert.Contains(t, out, "Findings: 2")
	assert.Contains(t, out, "Files scanned: 5")
	assert.NotContains(t, out, "\x1b[31m")
}

func TestPrintTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, nil, PrintOptions{NoColor: true})
	assert.Contains(t, buf.String(), "No secrets found")
	assert.Contains(t, buf.String(), "Findings: 0")
}

func TestPrintTextColor(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sample[:1], PrintOptions{})
	assert.Contains(t, buf.String(), "\x1b[31mpassword\x1b[0m")
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "********", MaskValue("short"))
	assert.Equal(t, "********", MaskValue("12345678"))
	assert.Equal(t, "abc1…cret", MaskValue("abc123supersecret"))
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintTable(&buf, sample, PrintOptions{NoColor: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	assert.Contains(t, out, "app.env:3")
	assert.Contains(t, out, "abc1…cret")
	assert.NotContains(t, out, "abc123supersecret")
}

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSARIFVersion(&buf, sample, "1.2.3"); err != nil {
		t.Fatal(err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "2.1.0", doc["version"])

	runs := doc["runs"].([]any)
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	run := runs[0].(map[string]any)
	driver := run["tool"].(map[string]any)["driver"].(map[string]any)
	assert.Equal(t, "keyhound", driver["name"])
	assert.Equal(t, "1.2.3", driver["version"])

	results := run["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	first := results[0].(map[string]any)
	assert.Equal(t, "password", first["ruleId"])
	loc := first["locations"].([]any)[0].(map[string]any)["physicalLocation"].(map[string]any)
	assert.Equal(t, "app.env", loc["artifactLocation"].(map[string]any)["uri"])
	assert.Equal(t, float64(3), loc["region"].(map[string]any)["startLine"])
}

func TestWriteSARIFEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSARIF(&buf, nil); err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, buf.String(), `"results": []`)
}
