// Package alttext produces ranked image alt-text candidates for a
// keyword/context pair by combining template variation with
// LSI-derived terms, scored and length-filtered.
package alttext

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cranemast/seo/pkg/seo/lsi"
)

// ImageType selects the template family.
type ImageType string

const (
	ImageCrane        ImageType = "crane"
	ImageConstruction ImageType = "construction"
	ImageService      ImageType = "service"
	ImageGeneral      ImageType = "general"
)

// DefaultMaxLength is the alt attribute length ceiling.
const DefaultMaxLength = 125

// Options configures one generation call.
type Options struct {
	PrimaryKeyword string
	Context        string
	ImageType      ImageType
	IncludeBrand   bool
	Location       string
	Locale         string
	MaxLength      int
}

// DefaultOptions returns Options for the keyword with brand inclusion
// enabled and the default length limit.
func DefaultOptions(primaryKeyword string) Options {
	return Options{
		PrimaryKeyword: primaryKeyword,
		ImageType:      ImageGeneral,
		IncludeBrand:   true,
		MaxLength:      DefaultMaxLength,
	}
}

// Per-type template tables. {kw} is replaced by the primary keyword.
var templates = map[ImageType][]string{
	ImageCrane: {
		"{kw} at a construction site",
		"{kw} lifting heavy loads",
		"{kw} ready for operation",
		"close-up of {kw}",
	},
	ImageConstruction: {
		"{kw} on an active construction project",
		"construction work with {kw}",
		"{kw} during building construction",
	},
	ImageService: {
		"{kw} maintenance and inspection",
		"professional {kw} service",
		"{kw} being serviced by technicians",
	},
	ImageGeneral: {
		"{kw}",
		"{kw} equipment",
		"{kw} in use",
	},
}

// fallbackSuffix is appended to the primary keyword when no candidate
// survives the length filter.
var fallbackSuffix = map[ImageType]string{
	ImageCrane:        "on site",
	ImageConstruction: "construction work",
	ImageService:      "professional service",
	ImageGeneral:      "photo",
}

// Generator builds alt-text candidates for one site.
type Generator struct {
	mapper *lsi.Mapper
	brand  string
}

// NewGenerator creates a generator. mapper may be nil to disable
// LSI-derived candidates; brand is the site's brand suffix.
func NewGenerator(mapper *lsi.Mapper, brand string) *Generator {
	return &Generator{mapper: mapper, brand: brand}
}

// Generate returns the highest-scoring candidate within the length
// limit, or the fixed fallback when none survives.
func (g *Generator) Generate(opts Options) string {
	ranked := g.ranked(opts)
	if len(ranked) == 0 {
		return g.fallback(opts)
	}
	return ranked[0]
}

// Variations returns up to count distinct candidates, best first.
func (g *Generator) Variations(opts Options, count int) []string {
	if count <= 0 {
		return nil
	}
	ranked := g.ranked(opts)
	if len(ranked) == 0 {
		ranked = []string{g.fallback(opts)}
	}
	if len(ranked) > count {
		ranked = ranked[:count]
	}
	return ranked
}

type scoredCandidate struct {
	text  string
	score float64
}

func (g *Generator) ranked(opts Options) []string {
	if opts.MaxLength <= 0 {
		opts.MaxLength = DefaultMaxLength
	}
	if opts.ImageType == "" {
		opts.ImageType = ImageGeneral
	}

	caser := cases.Title(localeTag(opts.Locale))

	var topLSI []lsi.Keyword
	if g.mapper != nil && opts.PrimaryKeyword != "" {
		mapping := g.mapper.Map(opts.PrimaryKeyword, opts.Context)
		for _, kw := range mapping.Keywords {
			if kw.Similarity > 0.6 {
				topLSI = append(topLSI, kw)
			}
			if len(topLSI) == 3 {
				break
			}
		}
	}

	candidates := make(map[string]struct{})
	for _, tmpl := range templates[opts.ImageType] {
		text := strings.ReplaceAll(tmpl, "{kw}", opts.PrimaryKeyword)
		if opts.IncludeBrand && g.brand != "" {
			text += " by " + caser.String(g.brand)
		}
		if opts.Location != "" {
			text += " in " + caser.String(opts.Location)
		}
		candidates[text] = struct{}{}
	}
	for _, kw := range topLSI {
		candidates[kw.Keyword+" - "+opts.PrimaryKeyword] = struct{}{}
	}

	var survivors []scoredCandidate
	for text := range candidates {
		if len([]rune(text)) > opts.MaxLength {
			continue
		}
		survivors = append(survivors, scoredCandidate{
			text:  text,
			score: score(text, opts.PrimaryKeyword, topLSI),
		})
	}

	sort.Slice(survivors, func(i, j int) bool {
		if survivors[i].score != survivors[j].score {
			return survivors[i].score > survivors[j].score
		}
		return survivors[i].text < survivors[j].text
	})

	out := make([]string, len(survivors))
	for i, s := range survivors {
		out[i] = s.text
	}
	return out
}

// score applies the additive candidate scoring: primary keyword
// presence, contained LSI terms weighted by similarity, length band,
// and word-count band.
func score(text, primary string, topLSI []lsi.Keyword) float64 {
	lower := strings.ToLower(text)
	s := 0.0

	if primary != "" && strings.Contains(lower, strings.ToLower(primary)) {
		s += 10
	}

	for _, kw := range topLSI {
		if strings.Contains(lower, strings.ToLower(kw.Keyword)) {
			s += kw.Similarity * 5
		}
	}

	switch n := len([]rune(text)); {
	case n >= 80 && n <= 125:
		s += 5
	case n < 80:
		s += 2
	}

	if wc := len(strings.Fields(text)); wc >= 4 && wc <= 8 {
		s += 3
	}

	return s
}

func (g *Generator) fallback(opts Options) string {
	suffix, ok := fallbackSuffix[opts.ImageType]
	if !ok {
		suffix = fallbackSuffix[ImageGeneral]
	}
	return strings.TrimSpace(opts.PrimaryKeyword + " " + suffix)
}

func localeTag(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}
