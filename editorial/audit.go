package editorial

import (
	"regexp"
	"strings"
	"unicode"
)

// Intent is the coarse search-intent class of an article.
type Intent string

const (
	IntentInformational Intent = "informational"
	IntentCommercial    Intent = "commercial"
	IntentNavigational  Intent = "navigational"
)

// ThinSection flags an under-developed paragraph by its 1-based index.
type ThinSection struct {
	Index     int `bson:"index" json:"index"`
	WordCount int `bson:"word_count" json:"word_count"`
}

// ContentAudit is the read-only assessment of an article's text.
type ContentAudit struct {
	PrimaryIntent     Intent        `bson:"primary_intent" json:"primary_intent"`
	TargetKeywords    []string      `bson:"target_keywords" json:"target_keywords"`
	ThinSections      []ThinSection `bson:"thin_sections" json:"thin_sections"`
	RedundantSections []string      `bson:"redundant_sections" json:"redundant_sections"`
	QualityScore      int           `bson:"quality_score" json:"quality_score"`
}

// Auditor computes ContentAudits against an injected lexicon.
type Auditor struct {
	lex Lexicon
}

func NewAuditor(lex Lexicon) *Auditor {
	return &Auditor{lex: lex}
}

const (
	maxKeywords        = 10
	maxTitleKeywords   = 5
	minTitleTokenRunes = 4 // tokens longer than 3 characters
	thinSectionWords   = 50
	redundantPrefixLen = 30
	minSentenceRunes   = 21 // sentences longer than 20 characters
)

var (
	blankLineRe    = regexp.MustCompile(`\n\s*\n`)
	markdownLinkRe = regexp.MustCompile(`\[[^\]]+\]\([^)]+\)`)
)

// Audit assesses content quality and intent. It is a pure function: any
// input, including empty text, yields a valid (if low) audit.
func (a *Auditor) Audit(content, title string, existingKeywords []string) ContentAudit {
	lower := strings.ToLower(content)

	audit := ContentAudit{
		PrimaryIntent:     a.classifyIntent(lower),
		TargetKeywords:    a.extractKeywords(lower, title, existingKeywords),
		ThinSections:      findThinSections(content),
		RedundantSections: findRedundantSections(content),
	}
	audit.QualityScore = scoreQuality(content, len(audit.ThinSections), len(audit.RedundantSections))
	return audit
}

// classifyIntent counts indicator words; commercial wins only when it beats
// navigational and exceeds two hits, otherwise informational is the default.
func (a *Auditor) classifyIntent(lowerContent string) Intent {
	commercial := 0
	for _, w := range a.lex.CommercialWords {
		commercial += countWord(lowerContent, w)
	}
	navigational := 0
	for _, w := range a.lex.NavigationalWords {
		navigational += countWord(lowerContent, w)
	}

	switch {
	case commercial > navigational && commercial > 2:
		return IntentCommercial
	case navigational > 2:
		return IntentNavigational
	default:
		return IntentInformational
	}
}

// extractKeywords takes title tokens longer than 3 characters (first 5),
// then gazetteer terms found in the body, deduplicated and capped at 10.
// Pre-existing keywords keep their position at the front of the list.
func (a *Auditor) extractKeywords(lowerContent, title string, existing []string) []string {
	seen := make(map[string]bool)
	var keywords []string
	add := func(kw string) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] || len(keywords) >= maxKeywords {
			return
		}
		seen[kw] = true
		keywords = append(keywords, kw)
	}

	for _, kw := range existing {
		add(kw)
	}

	titleTokens := tokenizeWords(title)
	taken := 0
	for _, tok := range titleTokens {
		if taken >= maxTitleKeywords {
			break
		}
		if len([]rune(tok)) >= minTitleTokenRunes {
			add(tok)
			taken++
		}
	}

	for _, term := range a.lex.DomainTerms {
		if strings.Contains(lowerContent, term) {
			add(term)
		}
	}

	return keywords
}

func findThinSections(content string) []ThinSection {
	var thin []ThinSection
	for i, block := range splitParagraphs(content) {
		wc := WordCount(block)
		if wc < thinSectionWords {
			thin = append(thin, ThinSection{Index: i + 1, WordCount: wc})
		}
	}
	return thin
}

// findRedundantSections fingerprints sentences by their lower-cased 30-char
// prefix and flags fingerprints recurring more than twice.
func findRedundantSections(content string) []string {
	counts := make(map[string]int)
	var order []string
	for _, s := range SplitSentences(content) {
		runes := []rune(s)
		if len(runes) < minSentenceRunes {
			continue
		}
		prefix := strings.ToLower(string(runes[:min(len(runes), redundantPrefixLen)]))
		counts[prefix]++
		if counts[prefix] == 1 {
			order = append(order, prefix)
		}
	}

	var redundant []string
	for _, prefix := range order {
		if counts[prefix] > 2 {
			redundant = append(redundant, prefix)
		}
	}
	return redundant
}

// scoreQuality is purely additive over independent thresholds, capped at 100.
func scoreQuality(content string, thinCount, redundantCount int) int {
	score := 0

	switch wc := WordCount(content); {
	case wc >= 800:
		score += 30
	case wc >= 500:
		score += 20
	case wc >= 300:
		score += 10
	}

	headings := 0
	for _, line := range strings.Split(content, "\n") {
		if headingRe.MatchString(strings.TrimRight(line, " \t")) {
			headings++
		}
	}
	switch {
	case headings >= 3:
		score += 20
	case headings >= 2:
		score += 10
	}

	switch links := len(markdownLinkRe.FindAllString(content, -1)); {
	case links >= 3:
		score += 20
	case links >= 1:
		score += 10
	}

	if thinCount == 0 {
		score += 15
	}
	if redundantCount == 0 {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}

// splitParagraphs splits on blank-line boundaries, dropping empty chunks.
func splitParagraphs(content string) []string {
	var out []string
	for _, chunk := range blankLineRe.Split(strings.ReplaceAll(content, "\r\n", "\n"), -1) {
		if strings.TrimSpace(chunk) != "" {
			out = append(out, chunk)
		}
	}
	return out
}

// tokenizeWords splits on any non-letter, non-digit rune.
func tokenizeWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// countWord counts occurrences of word in text that are not embedded inside
// a longer run of letters. Go's \b is ASCII-only, which misfires on Turkish
// characters, so the boundary check is done on runes instead.
func countWord(text, word string) int {
	if word == "" {
		return 0
	}
	count := 0
	offset := 0
	for {
		idx := strings.Index(text[offset:], word)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(word)
		if !letterAdjacent(text, start, end) {
			count++
		}
		offset = end
	}
	return count
}

func letterAdjacent(text string, start, end int) bool {
	if start > 0 {
		prev, _ := lastRune(text[:start])
		if unicode.IsLetter(prev) {
			return true
		}
	}
	if end < len(text) {
		next := firstRune(text[end:])
		if unicode.IsLetter(next) {
			return true
		}
	}
	return false
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) (rune, int) {
	var r rune
	var size int
	for i, c := range s {
		r = c
		size = len(s) - i
	}
	return r, size
}
