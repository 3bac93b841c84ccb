package quality

import (
	"testing"

	"github.com/jonesrussell/content-qa/internal/domain"
)

func TestCompletenessScore_Sectionless(t *testing.T) {
	article := &domain.Article{
		Headline:  "Bare",
		WordCount: 10,
	}

	// 10 word count + 10 sections + 5 intro + 5 conclusion + 10 bonus:
	// the substantial-sections bonus holds vacuously with no sections.
	if got := completenessScore(article); got != 40 {
		t.Errorf("expected completeness 40 for sectionless article, got %v", got)
	}
}

func TestCompletenessScore_ThinSectionWithholdsBonus(t *testing.T) {
	article := &domain.Article{
		Headline:  "Thin",
		WordCount: 10,
		Sections: []domain.ArticleSection{
			{Heading: "One", Content: "too short"},
		},
	}

	if got := completenessScore(article); got != 30 {
		t.Errorf("expected completeness 30 with a thin section, got %v", got)
	}
}
