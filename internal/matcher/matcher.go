// Package matcher applies the pattern registry to one file's content and
// extracts structured findings. Detection is pure; skips and read
// failures are logged at the boundary and a failed file contributes zero
// findings without affecting the run.
package matcher

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/keyhound/keyhound/internal/classify"
	"github.com/keyhound/keyhound/internal/config"
	"github.com/keyhound/keyhound/internal/entropy"
	"github.com/keyhound/keyhound/internal/patterns"
	"github.com/keyhound/keyhound/internal/types"
)

var rePrivateKey = regexp.MustCompile(patterns.PrivateKeyHeader)

// ScanFile scans the file at root/rel with every rule in the registry and
// returns findings in rule-iteration order, with the synthetic whole-file
// private-key finding last. Non-text and unreadable files return nil.
func ScanFile(root, rel string, cfg config.ScanConfig) []types.Finding {
	abs := filepath.Join(root, rel)
	if !classify.IsText(abs) {
		log.Debug().Str("path", rel).Msg("skipped non-text file")
		return nil
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		log.Warn().Err(err).Str("path", rel).Msg("unreadable file skipped")
		return nil
	}
	return Scan(rel, string(data), cfg)
}

// Scan runs the rules against in-memory content. Split out from ScanFile
// so detection can be tested without touching the filesystem.
func Scan(rel, content string, cfg config.ScanConfig) []types.Finding {
	var out []types.Finding
	for _, rule := range cfg.Patterns.Rules() {
		out = append(out, applyRule(rel, content, rule, cfg.EntropyThreshold)...)
	}
	// Whole-file private-key check, independent of the per-rule loop.
	// A file with key material anywhere gets exactly one coarse marker in
	// addition to any structural matches above.
	if rePrivateKey.MatchString(content) {
		out = append(out, types.Finding{
			File:    rel,
			Line:    1,
			Type:    patterns.PrivateKeyName,
			Match:   "PRIVATE KEY BLOCK",
			Context: "Contains private key material",
		})
	}
	return out
}

func applyRule(rel, content string, rule patterns.Rule, threshold float64) []types.Finding {
	var out []types.Finding
	for _, idx := range rule.Re.FindAllStringSubmatchIndex(content, -1) {
		extracted := extract(content, idx)
		if extracted == "" {
			continue
		}
		if rule.Entropy && entropy.Shannon(extracted) < threshold {
			continue
		}
		start := idx[0]
		out = append(out, types.Finding{
			File:    rel,
			Line:    lineAt(content, start),
			Type:    rule.Name,
			Match:   extracted,
			Context: stripControl(lineText(content, start)),
		})
	}
	return out
}

// extract returns the rule's last capture group if it has one, else the
// whole match. idx is the pair slice from FindAllStringSubmatchIndex.
func extract(content string, idx []int) string {
	if len(idx) > 2 {
		lo, hi := idx[len(idx)-2], idx[len(idx)-1]
		if lo < 0 || hi < 0 {
			return ""
		}
		return content[lo:hi]
	}
	return content[idx[0]:idx[1]]
}

// lineAt returns the 1-based number of the line containing offset.
func lineAt(content string, offset int) int {
	return 1 + strings.Count(content[:offset], "\n")
}

// lineText returns the full line of text containing offset, without its
// terminator.
func lineText(content string, offset int) string {
	start := strings.LastIndexByte(content[:offset], '\n') + 1
	end := strings.IndexByte(content[offset:], '\n')
	if end < 0 {
		return content[start:]
	}
	return content[start : offset+end]
}

// stripControl drops ASCII control characters (0x00-0x1F) from a context
// line before it is reported.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 {
			return -1
		}
		return r
	}, s)
}
