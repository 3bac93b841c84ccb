package domain

// FlagCategory is the closed set of policy issue categories.
type FlagCategory string

// Policy flag categories.
const (
	CategoryProfanity      FlagCategory = "profanity"
	CategoryViolence       FlagCategory = "violence"
	CategoryHarassment     FlagCategory = "harassment"
	CategoryHateSpeech     FlagCategory = "hate_speech"
	CategorySponsor        FlagCategory = "sponsor"
	CategoryPromotional    FlagCategory = "promotional"
	CategoryMisinformation FlagCategory = "misinformation"
	CategorySpam           FlagCategory = "spam"
	CategoryCopyright      FlagCategory = "copyright"
	CategoryOther          FlagCategory = "other"
)

// Severity is the ordered severity scale for policy flags.
type Severity string

// Flag severities, from least to most severe.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Compliance is the overall policy verdict for a filtering pass.
type Compliance string

// Compliance verdicts.
const (
	ComplianceCompliant Compliance = "compliant"
	ComplianceWarning   Compliance = "warning"
	ComplianceFlagged   Compliance = "flagged"
	ComplianceBlocked   Compliance = "blocked"
)

// PolicyFlag is one detected policy issue instance. Flags are created
// once per rule match and never merged; the same text may produce
// multiple flags from different rules.
type PolicyFlag struct {
	Category FlagCategory `json:"category"`
	Severity Severity     `json:"severity"`
	Text     string       `json:"text"`
	Position string       `json:"position,omitempty"`
	Message  string       `json:"message"`
	// Confidence is fixed per detection rule, in [0,1].
	Confidence float64 `json:"confidence"`
}

// ContentFilterResult aggregates one filtering pass over one transcript.
// OverallCompliance is derived purely from Flags; it is never set
// independently.
type ContentFilterResult struct {
	Flags             []PolicyFlag `json:"flags"`
	HasCriticalIssues bool         `json:"has_critical_issues"`
	OverallCompliance Compliance   `json:"overall_compliance"`
	Summary           string       `json:"summary"`
	IsSponsorContent  bool         `json:"is_sponsor_content"`
	SponsorMentions   []string     `json:"sponsor_mentions"`
	PromotionalScore  float64      `json:"promotional_score"`
	QualityIssues     []string     `json:"quality_issues"`
}

// ComplianceFor derives the verdict for a set of flags. Precedence:
// any critical flag blocks, any high flag gets flagged, any flag at all
// warns, otherwise compliant.
func ComplianceFor(flags []PolicyFlag) Compliance {
	hasHigh := false
	for _, f := range flags {
		switch f.Severity {
		case SeverityCritical:
			return ComplianceBlocked
		case SeverityHigh:
			hasHigh = true
		}
	}
	if hasHigh {
		return ComplianceFlagged
	}
	if len(flags) > 0 {
		return ComplianceWarning
	}
	return ComplianceCompliant
}
