package guidelines

// DefaultAudience is used when an audience has no tone mapping
const DefaultAudience = "general"

// SecondPersonRuleID is appended to every rule selection when the catalog has it
const SecondPersonRuleID = "rule-second_person_end_user"

// coreVoicePrincipleIDs are the principles included in every prompt
var coreVoicePrincipleIDs = []string{
	"voice-plain_human",
	"voice-action_oriented",
	"voice-benefit_led",
}

// IntentMapping lists the guideline tags and rule ids relevant to a UI intent
type IntentMapping struct {
	Tags    []string
	RuleIDs []string
}

// intentMap maps UI intents to guideline tags and rules
var intentMap = map[string]IntentMapping{
	"cta": {
		Tags:    []string{"cta_primary", "cta_secondary"},
		RuleIDs: []string{"rule-short_ctas", "rule-imperative_steps", "rule-benefit_first_headlines"},
	},
	"tooltip": {
		Tags:    []string{"tooltip"},
		RuleIDs: []string{"rule-benefit_first_headlines", "rule-feature_plus_outcome"},
	},
	"label": {
		Tags:    []string{"headline_product"},
		RuleIDs: []string{"rule-sentence_case_headings"},
	},
	"helper": {
		Tags:    []string{"helper_text", "quick_start_step"},
		RuleIDs: []string{"rule-feature_plus_outcome", "rule-imperative_steps"},
	},
	"dialog-title": {
		Tags:    []string{"headline_product"},
		RuleIDs: []string{"rule-sentence_case_headings", "rule-benefit_first_headlines"},
	},
	"error": {
		Tags:    []string{"error_message"},
		RuleIDs: []string{"rule-calm_error_tone", "rule-imperative_steps"},
	},
	"success": {
		Tags:    []string{"success_message"},
		RuleIDs: []string{"rule-confident_reassuring"},
	},
	"placeholder": {
		Tags:    []string{},
		RuleIDs: []string{},
	},
}

// audienceToneMap maps audiences to tone pattern ids
var audienceToneMap = map[string]string{
	"general":   "tone-in_product_help",
	"end-user":  "tone-end_user_everyday",
	"it-admins": "tone-admin_it_guides",
}

// Intents returns the supported intent keys in a stable order.
func Intents() []string {
	return []string{"cta", "tooltip", "label", "helper", "dialog-title", "error", "success", "placeholder"}
}

// Audiences returns the supported audience keys in a stable order.
func Audiences() []string {
	return []string{"general", "end-user", "it-admins"}
}

// lookupIntent returns the mapping for an intent. Unknown intents map to empty sets.
func lookupIntent(intent string) IntentMapping {
	if mapping, ok := intentMap[intent]; ok {
		return mapping
	}
	return IntentMapping{}
}

// lookupTone returns the tone pattern id for an audience, falling back to DefaultAudience.
func lookupTone(audience string) string {
	if toneID, ok := audienceToneMap[audience]; ok {
		return toneID
	}
	return audienceToneMap[DefaultAudience]
}
