package editorial

import "regexp"

// Lexicon holds the closed vocabularies driving the audit and revision
// heuristics. All matching is done on lower-cased text, so entries must be
// lower case. The zero value is unusable; start from DefaultLexicon.
type Lexicon struct {
	// CommercialWords and NavigationalWords classify search intent by
	// simple occurrence counting.
	CommercialWords   []string
	NavigationalWords []string

	// DomainTerms is the gazetteer scanned for body keywords.
	DomainTerms []string

	// FluffPatterns are removed outright from body text.
	FluffPatterns []*regexp.Regexp

	// Superlatives maps hype adjectives to neutral replacements.
	Superlatives map[string]string

	// LinkTargets drive contextual internal linking.
	LinkTargets []LinkTarget

	// FallbackKeyword is used when an article yields no keywords at all.
	FallbackKeyword string
}

// LinkTarget maps a body keyword to an internal landing page.
type LinkTarget struct {
	Keyword string
	Anchor  string
	URL     string
}

// DefaultLexicon returns the built-in Turkish real-estate vocabulary.
func DefaultLexicon() Lexicon {
	return Lexicon{
		CommercialWords: []string{
			"satın", "fiyat", "kampanya", "indirim", "hemen", "şimdi",
		},
		NavigationalWords: []string{
			"nasıl", "nerede", "rehber", "adres", "iletişim",
		},
		DomainTerms: []string{
			"karasu", "sakarya", "satılık daire", "satılık ev", "yazlık",
			"denize sıfır", "emlak", "tapu", "imar", "arsa", "site içinde",
			"kredi",
		},
		// Note: Go's \b is ASCII-only, so token tails after Turkish
		// letters are eaten with an explicit character class instead.
		FluffPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bhemen\b ?`),
			regexp.MustCompile(`(?i)\bkampanya[^\s.,!?]* ?`),
			regexp.MustCompile(`(?i)\bkaçırmayın\b ?`),
			regexp.MustCompile(`(?i)\binanılmaz\b ?`),
			regexp.MustCompile(`(?i)%\s?\d+\s?(indirim|fırsat)[^\s.,!?]* ?`),
		},
		Superlatives: map[string]string{
			"muhteşem":   "güzel",
			"mükemmel":   "iyi",
			"efsanevi":   "bilinen",
			"eşsiz":      "özel",
			"olağanüstü": "dikkat çekici",
		},
		LinkTargets: []LinkTarget{
			{Keyword: "karasu", Anchor: "Karasu Satılık Ev", URL: "/karasu-satilik-ev"},
			{Keyword: "sakarya", Anchor: "Sakarya Emlak İlanları", URL: "/sakarya-emlak"},
			{Keyword: "yazlık", Anchor: "Yazlık Ev Rehberi", URL: "/blog/yazlik-ev-rehberi"},
		},
		FallbackKeyword: "emlak",
	}
}

// Merge returns a copy of the lexicon with non-empty override fields applied.
// Word lists are appended; link targets replace the defaults entirely.
func (l Lexicon) Merge(commercial, navigational, domainTerms []string, targets []LinkTarget) Lexicon {
	out := l
	out.CommercialWords = append(append([]string{}, l.CommercialWords...), commercial...)
	out.NavigationalWords = append(append([]string{}, l.NavigationalWords...), navigational...)
	out.DomainTerms = append(append([]string{}, l.DomainTerms...), domainTerms...)
	if len(targets) > 0 {
		out.LinkTargets = targets
	}
	return out
}
