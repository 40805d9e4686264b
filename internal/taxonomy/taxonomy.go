// Package taxonomy holds the read-only skill taxonomy, weight profiles and
// tunable thresholds that drive scoring.
package taxonomy

import (
	"regexp"
	"sort"
	"strings"

	"github.com/spigell/hh-scorer/internal/model"
)

// DefaultProfile is the weight profile used when the job level cannot be inferred.
const DefaultProfile = "default"

// profileOrder is the order in which level keywords are tried against a job title.
var profileOrder = []string{"executive", "senior", "entry", "mid"}

// specialChars keeps letters and digits of any script.
var specialChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)

// Taxonomy is the immutable in-memory form of Config. It is safe for concurrent use.
type Taxonomy struct {
	cfg Config

	synonymToCanonical   map[string]string
	skillToCategory      map[string]string
	skillToRelationships map[string][]string
	exclusions           [][2]string
	profiles             map[string]Profile
}

// Profile maps sections to weights summing to 1.0.
type Profile struct {
	Name    string
	Weights map[model.Section]float64
}

// New builds lookup maps from a validated configuration.
func New(cfg *Config) *Taxonomy {
	t := &Taxonomy{
		cfg:                  *cfg,
		synonymToCanonical:   make(map[string]string),
		skillToCategory:      make(map[string]string),
		skillToRelationships: make(map[string][]string),
		profiles:             make(map[string]Profile, len(cfg.WeightProfiles)),
	}

	for _, g := range cfg.Synonyms {
		canonical := t.Normalize(g.Canonical)
		t.synonymToCanonical[canonical] = canonical
		for _, alias := range g.Aliases {
			t.synonymToCanonical[t.Normalize(alias)] = canonical
		}
	}

	for _, g := range cfg.Categories {
		for _, s := range g.Skills {
			t.skillToCategory[t.Canonical(s)] = g.Name
		}
	}

	for _, g := range cfg.Relationships {
		for _, s := range g.Skills {
			key := t.Canonical(s)
			t.skillToRelationships[key] = append(t.skillToRelationships[key], g.Name)
		}
	}

	for _, pair := range cfg.Exclusions.DoNotMatch {
		if len(pair) == 2 {
			t.exclusions = append(t.exclusions, [2]string{t.Canonical(pair[0]), t.Canonical(pair[1])})
		}
	}

	for name, weights := range cfg.WeightProfiles {
		p := Profile{Name: name, Weights: make(map[model.Section]float64, len(weights))}
		for section, w := range weights {
			p.Weights[model.Section(section)] = w
		}
		t.profiles[name] = p
	}

	return t
}

// Version returns the configuration version string.
func (t *Taxonomy) Version() string { return t.cfg.Version }

// Matching returns the matching strategy configuration.
func (t *Taxonomy) Matching() Matching { return t.cfg.Matching }

// Weights returns the per match-type weights.
func (t *Taxonomy) Weights() MatchTypeWeights { return t.cfg.MatchTypeWeights }

// Thresholds returns the tunable thresholds.
func (t *Taxonomy) Thresholds() Thresholds { return t.cfg.Thresholds }

// Intervals returns the confidence interval table.
func (t *Taxonomy) Intervals() IntervalTable { return t.cfg.Intervals }

// Normalize lower-cases, strips configured punctuation and collapses whitespace.
func (t *Taxonomy) Normalize(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	if s == "" {
		return ""
	}
	if t.cfg.Matching.StripSpecialChars {
		s = specialChars.ReplaceAllString(s, "")
	}
	return strings.Join(strings.Fields(s), " ")
}

// Canonical resolves a skill to its canonical name through the synonym table.
func (t *Taxonomy) Canonical(skill string) string {
	n := t.Normalize(skill)
	if c, ok := t.synonymToCanonical[n]; ok {
		return c
	}
	return n
}

// Category returns the category of a canonical skill, if any.
func (t *Taxonomy) Category(canonical string) (string, bool) {
	c, ok := t.skillToCategory[canonical]
	return c, ok
}

// SharedRelationships returns relationship groups common to both canonical skills.
func (t *Taxonomy) SharedRelationships(a, b string) []string {
	left := t.skillToRelationships[a]
	if len(left) == 0 {
		return nil
	}
	right := make(map[string]struct{}, len(t.skillToRelationships[b]))
	for _, g := range t.skillToRelationships[b] {
		right[g] = struct{}{}
	}
	var shared []string
	for _, g := range left {
		if _, ok := right[g]; ok {
			shared = append(shared, g)
		}
	}
	return shared
}

// Excluded reports whether two skills are an explicit do-not-match pair.
func (t *Taxonomy) Excluded(a, b string) bool {
	ca, cb := t.Canonical(a), t.Canonical(b)
	for _, pair := range t.exclusions {
		if (pair[0] == ca || pair[1] == ca) && (pair[0] == cb || pair[1] == cb) {
			return true
		}
	}
	return false
}

// Profile returns a weight profile by name.
func (t *Taxonomy) Profile(name string) (Profile, bool) {
	p, ok := t.profiles[name]
	return p, ok
}

// ProfileNames returns the configured profile names in sorted order.
func (t *Taxonomy) ProfileNames() []string {
	names := make([]string, 0, len(t.profiles))
	for name := range t.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SelectProfile infers the job level from designation and title keywords,
// falling back to the experience band and finally to the default profile.
func (t *Taxonomy) SelectProfile(job *model.Job) Profile {
	text := strings.ToLower(job.Designation + " " + job.Title)
	for _, name := range profileOrder {
		p, ok := t.profiles[name]
		if !ok {
			continue
		}
		for _, kw := range t.cfg.ProfileKeywords[name] {
			if containsWord(text, strings.ToLower(kw)) {
				return p
			}
		}
	}

	if job.MinExperienceYears > 0 || job.MaxExperienceYears > 0 {
		var name string
		switch years := job.MinExperienceYears; {
		case years < 2:
			name = "entry"
		case years < 5:
			name = "mid"
		case years < 10:
			name = "senior"
		default:
			name = "executive"
		}
		if p, ok := t.profiles[name]; ok {
			return p
		}
	}

	return t.profiles[DefaultProfile]
}

func containsWord(text, kw string) bool {
	if kw == "" {
		return false
	}
	for i := 0; ; {
		idx := strings.Index(text[i:], kw)
		if idx < 0 {
			return false
		}
		start := i + idx
		end := start + len(kw)
		if (start == 0 || !isWordByte(text[start-1])) && (end == len(text) || !isWordByte(text[end])) {
			return true
		}
		i = start + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
