package quality

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonesrussell/content-qa/internal/domain"
)

// Meta tag length bands. The tight bands are the rendering sweet spots
// in search results; the loose bands are still acceptable.
const (
	metaTitleTightMin = 50
	metaTitleTightMax = 60
	metaTitleLooseMin = 40
	metaTitleLooseMax = 70

	metaDescTightMin = 150
	metaDescTightMax = 160
	metaDescLooseMin = 130
	metaDescLooseMax = 170
)

// slugBadChars are characters a URL slug should not carry.
var slugBadChars = regexp.MustCompile(`[_@#$%]`)

var (
	requiredSchemaKeys = []string{"headline", "description", "author", "datePublished"}
	optionalSchemaKeys = []string{"image", "articleBody", "keywords"}
	openGraphKeys      = []string{"og:title", "og:description", "og:type"}
	twitterCardKeys    = []string{"twitter:card", "twitter:title", "twitter:description"}
)

// scoreSEO computes the five SEO sub-scores and their mean.
func scoreSEO(article *domain.Article, seo *domain.SEOPackage) domain.SEOQualityScore {
	score := domain.SEOQualityScore{
		KeywordOptimization:     keywordOptimization(article, seo),
		MetaTagQuality:          metaTagQuality(seo),
		SlugQuality:             slugQuality(seo.Slug),
		SchemaMarkupQuality:     schemaMarkupQuality(seo.SchemaMarkup),
		SocialMediaOptimization: socialMediaOptimization(seo),
	}
	score.AverageScore = (score.KeywordOptimization + score.MetaTagQuality +
		score.SlugQuality + score.SchemaMarkupQuality + score.SocialMediaOptimization) / 5
	return score
}

// keywordOptimization rewards the primary keyword appearing in the
// article's lead text plus the fraction of secondary keywords that do.
func keywordOptimization(article *domain.Article, seo *domain.SEOPackage) float64 {
	text := strings.ToLower(article.LeadText())

	score := 0.0
	if strings.Contains(text, strings.ToLower(seo.PrimaryKeyword)) {
		score += 50
	}

	if len(seo.SecondaryKeywords) > 0 {
		matches := 0
		for _, keyword := range seo.SecondaryKeywords {
			if strings.Contains(text, strings.ToLower(keyword)) {
				matches++
			}
		}
		score += float64(matches) / float64(len(seo.SecondaryKeywords)) * 50
	}

	return math.Min(100, score)
}

// metaTagQuality grades the meta title and description by length band.
func metaTagQuality(seo *domain.SEOPackage) float64 {
	score := 0.0

	titleLen := len(seo.MetaTitle)
	switch {
	case titleLen >= metaTitleTightMin && titleLen <= metaTitleTightMax:
		score += 50
	case titleLen >= metaTitleLooseMin && titleLen <= metaTitleLooseMax:
		score += 40
	default:
		score += 20
	}

	descLen := len(seo.MetaDescription)
	switch {
	case descLen >= metaDescTightMin && descLen <= metaDescTightMax:
		score += 50
	case descLen >= metaDescLooseMin && descLen <= metaDescLooseMax:
		score += 40
	default:
		score += 20
	}

	return score
}

// slugQuality grades a URL slug on hyphenation, length, and absence of
// unsafe characters.
func slugQuality(slug string) float64 {
	slug = strings.ToLower(slug)
	score := 50.0
	if strings.Contains(slug, "-") {
		score += 20
	}
	if len(slug) >= 5 && len(slug) <= 75 {
		score += 20
	}
	if !slugBadChars.MatchString(slug) {
		score += 10
	}
	return math.Min(100, score)
}

// schemaMarkupQuality weights required schema.org Article keys at 70%
// and optional keys at 30%.
func schemaMarkupQuality(schema map[string]string) float64 {
	return keyFraction(schema, requiredSchemaKeys)*70 + keyFraction(schema, optionalSchemaKeys)*30
}

// socialMediaOptimization splits the score evenly between Open Graph and
// Twitter Card key coverage.
func socialMediaOptimization(seo *domain.SEOPackage) float64 {
	return keyFraction(seo.OpenGraph, openGraphKeys)*50 + keyFraction(seo.TwitterCard, twitterCardKeys)*50
}

func keyFraction(m map[string]string, keys []string) float64 {
	present := 0
	for _, key := range keys {
		if _, ok := m[key]; ok {
			present++
		}
	}
	return float64(present) / float64(len(keys))
}
