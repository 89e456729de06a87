package university

import (
	"strings"

	"github.com/zarlcorp/zcampus/internal/fold"
	"github.com/zarlcorp/zcampus/internal/random"
)

// fallbackDomain is returned when nothing usable survives cleaning.
const fallbackDomain = "university.edu"

// noise is deleted from folded names in this order. Later deletions see
// the result of earlier ones.
var noise = []string{
	"university of ",
	"the ",
	" university",
	" college",
	" state",
	"-",
	" at ",
	" campus",
}

// Rule maps cleaned university names to a known domain.
type Rule struct {
	Match  func(name string) bool
	Domain string
}

// Contains matches names containing any of the given substrings.
func Contains(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range subs {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
}

// ContainsAll matches names containing every given substring.
func ContainsAll(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range subs {
			if !strings.Contains(name, s) {
				return false
			}
		}
		return true
	}
}

// Either matches when any of fns matches.
func Either(fns ...func(string) bool) func(string) bool {
	return func(name string) bool {
		for _, fn := range fns {
			if fn(name) {
				return true
			}
		}
		return false
	}
}

// DefaultRules are the well-known institutions, checked in order.
var DefaultRules = []Rule{
	{Either(Contains("ucla"), ContainsAll("los angeles", "california")), "ucla.edu"},
	{Either(Contains("uc berkeley"), ContainsAll("california", "berkeley")), "berkeley.edu"},
	{Contains("mit", "massachusetts institute"), "mit.edu"},
	{Contains("stanford"), "stanford.edu"},
	{Contains("harvard"), "harvard.edu"},
	{Contains("nyu", "new york university"), "nyu.edu"},
	{Contains("columbia"), "columbia.edu"},
}

// Resolver turns free-text university names into plausible .edu domains.
type Resolver struct {
	rules []Rule
	rng   random.Source
}

// NewResolver creates a resolver. With no rules, DefaultRules apply.
func NewResolver(rng random.Source, rules ...Rule) *Resolver {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Resolver{rules: rules, rng: rng}
}

// Resolve returns a domain ending in .edu. It never fails.
func (r *Resolver) Resolve(name string) string {
	cleaned := Clean(name)

	for _, rule := range r.rules {
		if rule.Match(cleaned) {
			return rule.Domain
		}
	}

	words := strings.Fields(fold.Alnum(cleaned))
	switch {
	case len(words) >= 2:
		var b strings.Builder
		for _, w := range words[:min(3, len(words))] {
			b.WriteByte(w[0])
		}
		return b.String() + ".edu"
	case len(words) == 1:
		n := min(random.Between(r.rng, 4, 6), len(words[0]))
		return words[0][:n] + ".edu"
	}

	return fallbackDomain
}

// Clean folds name and deletes the noise words. Exported for callers that
// want to show what the rules matched against.
func Clean(name string) string {
	s := fold.Lower(name)
	for _, n := range noise {
		s = strings.ReplaceAll(s, n, "")
	}
	return s
}
