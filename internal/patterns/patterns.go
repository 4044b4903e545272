// Package patterns holds the registry of named detection rules: the
// built-in defaults plus optional user-supplied overrides loaded from a
// YAML file.
package patterns

import (
	"regexp"

	"github.com/keyhound/keyhound/internal/types"
)

// GenericEntropyName is the one built-in rule whose matches are gated by
// the entropy threshold instead of being accepted on shape alone.
const GenericEntropyName = "high_entropy"

// PrivateKeyName identifies the private-key header rule. The matcher also
// runs a whole-file check against it in addition to the regular loop.
const PrivateKeyName = "private_key"

// PrivateKeyHeader matches PEM private-key headers anywhere in a file.
const PrivateKeyHeader = `-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY(?: BLOCK)?-----`

// Rule is a compiled, ready-to-apply detection rule. Extracted text is the
// last capture group when the regex has one, otherwise the whole match.
type Rule struct {
	Name    string
	Re      *regexp.Regexp
	Entropy bool
}

// Registry is an immutable ordered set of rules. Rules keep a stable
// iteration order: built-ins first in declared order (a custom rule that
// overrides a built-in keeps the built-in's slot), then custom-only rules
// in load order. Findings are emitted in this order.
type Registry struct {
	rules  []Rule
	byName map[string]int
}

// Defaults returns the nine built-in rules.
func Defaults() []types.Pattern {
	return []types.Pattern{
		{
			Name:  "api_key",
			Regex: `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{16,64})`,
		},
		{
			Name:  "password",
			Regex: `(?i)(?:password|passwd|pwd)\s*[:=]\s*["']([^"'\n]{6,})["']`,
		},
		{
			Name:  PrivateKeyName,
			Regex: PrivateKeyHeader,
		},
		{
			Name:  "oauth_token",
			Regex: `(?i)(?:oauth[_-]?token|access[_-]?token)["']?\s*[:=]\s*["']?([A-Za-z0-9\-._~+/]{16,})`,
		},
		{
			Name:  "slack_token",
			Regex: `xox[baprs]-[0-9A-Za-z\-]{10,48}`,
		},
		{
			Name:  "aws_access_key",
			Regex: `\b(?:A3T[A-Z0-9]|AKIA|AGPA|AIDA|AROA|AIPA|ANPA|ANVA|ASIA)[A-Z0-9]{16}\b`,
		},
		{
			Name:    GenericEntropyName,
			Regex:   `["']([A-Za-z0-9+/=_\-]{20,})["']`,
			Entropy: true,
		},
		{
			Name:  "database_url",
			Regex: `(?i)\b(?:postgres|postgresql|mysql|mongodb(?:\+srv)?|redis|amqp|mssql)://[^\s"'@]+:([^\s"'@]+)@[^\s"']+`,
		},
		{
			Name:  "authorization",
			Regex: `(?i)\bauthorization["']?\s*[:=]\s*["']?((?:bearer|basic)\s+[A-Za-z0-9\-._~+/=]{8,})`,
		},
	}
}

// New compiles the given patterns into a registry, overlaying later
// entries onto earlier ones by name. Compilation failure of any regex
// fails the whole build.
func New(ps ...[]types.Pattern) (Registry, error) {
	reg := Registry{byName: map[string]int{}}
	for _, group := range ps {
		for _, p := range group {
			re, err := regexp.Compile(p.Regex)
			if err != nil {
				return Registry{}, err
			}
			r := Rule{Name: p.Name, Re: re, Entropy: p.Entropy}
			if i, ok := reg.byName[p.Name]; ok {
				reg.rules[i] = r
				continue
			}
			reg.byName[p.Name] = len(reg.rules)
			reg.rules = append(reg.rules, r)
		}
	}
	return reg, nil
}

// Rules returns the rules in iteration order. Callers must not mutate the
// returned slice.
func (r Registry) Rules() []Rule {
	return r.rules
}

// Lookup returns the rule with the given name.
func (r Registry) Lookup(name string) (Rule, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Rule{}, false
	}
	return r.rules[i], true
}

// Len returns the number of registered rules.
func (r Registry) Len() int { return len(r.rules) }
