package guidelines

import (
	"fmt"
	"slices"
)

// Store exposes filtered, read-only projections over a loaded catalog.
// A Store is never mutated after construction and is safe for concurrent use.
type Store struct {
	catalog Catalog
}

// Load parses the embedded catalog. A failure here means the binary was built with a broken catalog.
func Load() (*Store, error) {
	return NewStore(catalogJSON)
}

// MustLoad loads the embedded catalog, panicking if it is malformed.
// Use this at process startup only.
func MustLoad() *Store {
	store, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load guidelines: %v", err))
	}
	return store
}

// NewStore builds a Store from raw catalog JSON.
func NewStore(data []byte) (*Store, error) {
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	return &Store{catalog: *catalog}, nil
}

// Catalog returns a copy of the full catalog.
func (s *Store) Catalog() Catalog {
	return Catalog{
		Version:         s.catalog.Version,
		Name:            s.catalog.Name,
		VoicePrinciples: slices.Clone(s.catalog.VoicePrinciples),
		TonePatterns:    slices.Clone(s.catalog.TonePatterns),
		Rules:           slices.Clone(s.catalog.Rules),
	}
}

// RelevantVoicePrinciples returns the core principles in catalog order.
// The result does not depend on intent or audience.
func (s *Store) RelevantVoicePrinciples() []VoicePrinciple {
	principles := make([]VoicePrinciple, 0, len(coreVoicePrincipleIDs))
	for _, p := range s.catalog.VoicePrinciples {
		if slices.Contains(coreVoicePrincipleIDs, p.ID) {
			principles = append(principles, p)
		}
	}
	return principles
}

// TonePattern returns the tone pattern for an audience.
// Unmapped audiences use the DefaultAudience mapping. The bool is false when the
// catalog has no pattern with the mapped id.
func (s *Store) TonePattern(audience string) (TonePattern, bool) {
	toneID := lookupTone(audience)
	for _, t := range s.catalog.TonePatterns {
		if t.ID == toneID {
			return t, true
		}
	}
	return TonePattern{}, false
}

// RelevantRules returns the rules mapped to an intent, in catalog order.
//
// After filtering, the second-person rule is appended when the catalog has it and
// the intent did not already select it. Unknown intents select no mapped rules, so
// the result holds at most the second-person rule. Rule ids are never duplicated.
func (s *Store) RelevantRules(intent string) []Rule {
	mapping := lookupIntent(intent)

	rules := make([]Rule, 0, len(mapping.RuleIDs)+1)
	seen := make(map[string]bool, len(mapping.RuleIDs)+1)
	for _, r := range s.catalog.Rules {
		if slices.Contains(mapping.RuleIDs, r.ID) && !seen[r.ID] {
			rules = append(rules, r)
			seen[r.ID] = true
		}
	}

	return s.appendSecondPerson(rules, seen)
}

// appendSecondPerson is the post-filter step of RelevantRules.
func (s *Store) appendSecondPerson(rules []Rule, seen map[string]bool) []Rule {
	if seen[SecondPersonRuleID] {
		return rules
	}
	for _, r := range s.catalog.Rules {
		if r.ID == SecondPersonRuleID {
			return append(rules, r)
		}
	}
	return rules
}

// IntentTags returns the guideline tags associated with an intent.
func (s *Store) IntentTags(intent string) []string {
	return slices.Clone(lookupIntent(intent).Tags)
}
