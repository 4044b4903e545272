package types

// Finding describes one potential secret detected at a path and line.
// Match is the extracted secret text and is never empty; Context is the
// full source line with ASCII control characters stripped.
type Finding struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Type    string `json:"type"`
	Match   string `json:"match"`
	Context string `json:"context"`
}

// Pattern is a named regex-based detection rule. Entropy marks the single
// generic rule whose matches must additionally clear the entropy threshold.
type Pattern struct {
	Name    string
	Regex   string
	Entropy bool
}
