package domain

// SocialPosts holds per-platform social media post variants.
type SocialPosts struct {
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
	Facebook string `json:"facebook,omitempty"`
}

// SEOPackage is the SEO metadata bundle produced by the SEO agent.
// SchemaMarkup, OpenGraph, and TwitterCard are explicit maps; the scoring
// functions check for known keys only.
type SEOPackage struct {
	MetaTitle               string            `json:"meta_title"`
	MetaDescription         string            `json:"meta_description"`
	Slug                    string            `json:"slug"`
	PrimaryKeyword          string            `json:"primary_keyword"`
	SecondaryKeywords       []string          `json:"secondary_keywords"`
	SchemaMarkup            map[string]string `json:"schema_markup"`
	OpenGraph               map[string]string `json:"open_graph"`
	TwitterCard             map[string]string `json:"twitter_card"`
	SocialPosts             SocialPosts       `json:"social_posts"`
	InternalLinkSuggestions []string          `json:"internal_link_suggestions"`
}

// Validate checks that the SEO package value is present.
func (s *SEOPackage) Validate() error {
	if s == nil {
		return ErrNilSEOPackage
	}
	return nil
}
