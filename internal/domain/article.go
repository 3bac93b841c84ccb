package domain

import "strings"

// Quote is an important quote extracted from the video.
type Quote struct {
	Text      string  `json:"text"`
	Timestamp float64 `json:"timestamp"`
	Context   string  `json:"context,omitempty"`
}

// SectionOutline is a suggested article section from the analysis stage.
type SectionOutline struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StartTime   *float64 `json:"start_time,omitempty"`
	EndTime     *float64 `json:"end_time,omitempty"`
}

// ContentAnalysis is the analyzed content structure produced by the
// analysis agent. ContentFlags feeds the policy-compliance sub-checks.
type ContentAnalysis struct {
	MainTopic            string           `json:"main_topic"`
	Subtopics            []string         `json:"subtopics"`
	KeyQuotes            []Quote          `json:"key_quotes"`
	DataPoints           []string         `json:"data_points"`
	SuggestedSections    []SectionOutline `json:"suggested_sections"`
	TargetAudience       string           `json:"target_audience"`
	Tone                 string           `json:"tone"`
	EstimatedReadingTime int              `json:"estimated_reading_time"`
	ContentFlags         []string         `json:"content_flags"`
}

// Validate checks required analysis fields.
func (a *ContentAnalysis) Validate() error {
	if a == nil {
		return ErrNilAnalysis
	}
	return nil
}

// ArticleSection is an individual article body section.
type ArticleSection struct {
	Heading   string `json:"heading"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
}

// Article is a generated article produced by the writer agent.
type Article struct {
	Headline     string           `json:"headline"`
	Introduction string           `json:"introduction"`
	Sections     []ArticleSection `json:"sections"`
	Conclusion   string           `json:"conclusion"`
	Markdown     string           `json:"markdown"`
	WordCount    int              `json:"word_count"`
}

// Validate checks that the article value is present. Structural
// shortcomings (empty headline, no sections) are scoring concerns, not
// validation errors.
func (a *Article) Validate() error {
	if a == nil {
		return ErrNilArticle
	}
	return nil
}

// BodyText returns introduction, section contents, and conclusion joined
// by single spaces. The coherence check operates on this text.
func (a *Article) BodyText() string {
	return joinArticleText(a.Introduction, a.sectionText(), a.Conclusion)
}

// FullText returns headline, introduction, section contents, and
// conclusion joined by single spaces. Relevance, uniqueness, and policy
// scoring operate on this text.
func (a *Article) FullText() string {
	return joinArticleText(a.Headline, a.Introduction, a.sectionText(), a.Conclusion)
}

// LeadText returns headline, introduction, and section contents joined by
// single spaces, without the conclusion. Keyword optimization scoring
// operates on this text.
func (a *Article) LeadText() string {
	return joinArticleText(a.Headline, a.Introduction, a.sectionText())
}

func joinArticleText(parts ...string) string {
	return strings.Join(parts, " ")
}

func (a *Article) sectionText() string {
	contents := make([]string, len(a.Sections))
	for i, s := range a.Sections {
		contents[i] = s.Content
	}
	return strings.Join(contents, " ")
}
