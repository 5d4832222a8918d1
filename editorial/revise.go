package editorial

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Snapshot captures the revisable fields of an article at one moment.
type Snapshot struct {
	Title           string `bson:"title" json:"title"`
	Content         string `bson:"content" json:"content"`
	Excerpt         string `bson:"excerpt" json:"excerpt"`
	MetaDescription string `bson:"meta_description" json:"meta_description"`
}

// Changes enumerates which transforms fired during a revision.
type Changes struct {
	IntroRewritten        bool     `bson:"intro_rewritten" json:"intro_rewritten"`
	HeadingsImproved      bool     `bson:"headings_improved" json:"headings_improved"`
	SectionsAdded         []string `bson:"sections_added" json:"sections_added"`
	SectionsRemoved       []string `bson:"sections_removed" json:"sections_removed"`
	InternalLinksAdded    int      `bson:"internal_links_added" json:"internal_links_added"`
	AIFriendlyBlocksAdded int      `bson:"ai_friendly_blocks_added" json:"ai_friendly_blocks_added"`
	FluffRemoved          bool     `bson:"fluff_removed" json:"fluff_removed"`
}

// ContentRevision is the before/after record of one revision run.
type ContentRevision struct {
	Before       Snapshot `bson:"before" json:"before"`
	After        Snapshot `bson:"after" json:"after"`
	Improvements []string `bson:"improvements" json:"improvements"`
	Changes      Changes  `bson:"changes" json:"changes"`
}

// ReviseConfig holds the thresholds for the revision transforms.
type ReviseConfig struct {
	IntroMinChars          int
	IntroMaxChars          int
	SplitWordThreshold     int
	SplitSentenceThreshold int
	SummarySourceMinWords  int
	SummaryInsertAfterChar int
	ExcerptMinChars        int
	ExcerptTargetChars     int
	MetaMinChars           int
	MetaMaxChars           int
	MetaTruncateChars      int
}

// DefaultReviseConfig returns the stock thresholds.
func DefaultReviseConfig() ReviseConfig {
	return ReviseConfig{
		IntroMinChars:          100,
		IntroMaxChars:          200,
		SplitWordThreshold:     150,
		SplitSentenceThreshold: 3,
		SummarySourceMinWords:  50,
		SummaryInsertAfterChar: 200,
		ExcerptMinChars:        100,
		ExcerptTargetChars:     155,
		MetaMinChars:           120,
		MetaMaxChars:           160,
		MetaTruncateChars:      157,
	}
}

const summaryHeading = "Kısa Özet"

// summaryHeadingMarkers mark an existing short-answer or summary heading;
// the AI-friendly block is only inserted when none of these are present.
var summaryHeadingMarkers = []string{"kısa cevap", "özet", "short answer", "summary"}

var exclamationRunRe = regexp.MustCompile(`!{2,}`)

// Reviser applies the fixed transform sequence against an injected lexicon.
type Reviser struct {
	lex Lexicon
	cfg ReviseConfig
	// superlative patterns are compiled once, in sorted key order, so the
	// output stays deterministic however the lexicon map was built.
	superlatives []superlativeRule
}

type superlativeRule struct {
	pat     *regexp.Regexp
	neutral string
}

func NewReviser(lex Lexicon, cfg ReviseConfig) *Reviser {
	words := make([]string, 0, len(lex.Superlatives))
	for w := range lex.Superlatives {
		words = append(words, w)
	}
	sort.Strings(words)

	rules := make([]superlativeRule, 0, len(words))
	for _, w := range words {
		rules = append(rules, superlativeRule{
			pat:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(w)),
			neutral: lex.Superlatives[w],
		})
	}
	return &Reviser{lex: lex, cfg: cfg, superlatives: rules}
}

// Revise applies the transform sequence in a fixed order: intro rewrite,
// heading renormalization, paragraph splitting, AI-summary block insertion,
// internal linking, fluff removal, then excerpt and meta-description
// regeneration. Pure function, deterministic, never fails.
func (r *Reviser) Revise(audit ContentAudit, title, content, excerpt, meta string) ContentRevision {
	rev := ContentRevision{
		Before: Snapshot{Title: title, Content: content, Excerpt: excerpt, MetaDescription: meta},
	}

	keyword := r.primaryKeyword(audit)
	blocks := ParseBlocks(content)

	blocks = r.rewriteIntro(blocks, keyword, &rev)
	blocks = r.normalizeHeadings(blocks, &rev)
	blocks = r.splitLongParagraphs(blocks, &rev)
	blocks = r.insertSummaryBlock(blocks, keyword, &rev)
	blocks = r.injectInternalLinks(blocks, &rev)
	blocks = r.removeFluff(blocks, &rev)

	newContent := RenderBlocks(blocks)
	newExcerpt := r.regenerateExcerpt(blocks, excerpt, audit, &rev)
	newMeta := r.regenerateMeta(blocks, meta, keyword, &rev)

	for _, prefix := range audit.RedundantSections {
		rev.Improvements = append(rev.Improvements, fmt.Sprintf("redundant content detected: %q", prefix))
	}

	rev.After = Snapshot{Title: title, Content: newContent, Excerpt: newExcerpt, MetaDescription: newMeta}
	return rev
}

func (r *Reviser) primaryKeyword(audit ContentAudit) string {
	if len(audit.TargetKeywords) > 0 {
		return audit.TargetKeywords[0]
	}
	return r.lex.FallbackKeyword
}

// rewriteIntro pads a too-short leading paragraph with a keyword sentence or
// truncates a too-long one to its first two sentences.
func (r *Reviser) rewriteIntro(blocks []Block, keyword string, rev *ContentRevision) []Block {
	intro := ""
	hasIntro := len(blocks) > 0 && blocks[0].Kind == BlockParagraph
	if hasIntro {
		intro = blocks[0].Text
	}

	length := len([]rune(intro))
	switch {
	case length < r.cfg.IntroMinChars:
		pad := introSentence(keyword)
		// a pad that is already there would only pile up on re-runs
		if strings.Contains(intro, pad) {
			return blocks
		}
		padded := strings.TrimSpace(intro + " " + pad)
		if hasIntro {
			blocks[0].Text = padded
		} else {
			blocks = append([]Block{{Kind: BlockParagraph, Text: padded}}, blocks...)
		}
	case length > r.cfg.IntroMaxChars:
		sentences := SplitSentences(intro)
		if len(sentences) <= 2 {
			return blocks
		}
		blocks[0].Text = strings.Join(sentences[:2], " ")
	default:
		return blocks
	}

	rev.Changes.IntroRewritten = true
	rev.Improvements = append(rev.Improvements, "intro rewritten to target length")
	return blocks
}

func introSentence(keyword string) string {
	return fmt.Sprintf("Bu yazıda %s hakkında bilmeniz gereken güncel bilgileri derledik.", keyword)
}

// normalizeHeadings demotes body-level H1s (the title owns level one) and
// closes hierarchy gaps so no heading skips more than one level down.
// Reapplying to an already clean body changes nothing.
func (r *Reviser) normalizeHeadings(blocks []Block, rev *ContentRevision) []Block {
	changed := false
	prev := 1
	for i := range blocks {
		if blocks[i].Kind != BlockHeading {
			continue
		}
		level := blocks[i].Level
		if level == 1 {
			level = 2
		}
		if level > prev+1 {
			level = prev + 1
		}
		if level != blocks[i].Level {
			blocks[i].Level = level
			changed = true
		}
		prev = level
	}

	if changed {
		rev.Changes.HeadingsImproved = true
		rev.Improvements = append(rev.Improvements, "heading hierarchy normalized")
	}
	return blocks
}

// splitLongParagraphs halves paragraphs over the word threshold with more
// than three sentences at their midpoint sentence.
func (r *Reviser) splitLongParagraphs(blocks []Block, rev *ContentRevision) []Block {
	var out []Block
	split := 0
	for _, b := range blocks {
		if b.Kind != BlockParagraph || WordCount(b.Text) <= r.cfg.SplitWordThreshold {
			out = append(out, b)
			continue
		}
		sentences := SplitSentences(b.Text)
		if len(sentences) <= r.cfg.SplitSentenceThreshold {
			out = append(out, b)
			continue
		}
		mid := len(sentences) / 2
		out = append(out,
			Block{Kind: BlockParagraph, Text: strings.Join(sentences[:mid], " ")},
			Block{Kind: BlockParagraph, Text: strings.Join(sentences[mid:], " ")},
		)
		split++
	}

	if split > 0 {
		rev.Improvements = append(rev.Improvements, fmt.Sprintf("split %d overlong paragraph(s)", split))
	}
	return out
}

// insertSummaryBlock adds a "Kısa Özet" H2 block synthesized from the first
// substantial paragraph, unless a summary-style heading already exists.
func (r *Reviser) insertSummaryBlock(blocks []Block, keyword string, rev *ContentRevision) []Block {
	for _, b := range blocks {
		if b.Kind != BlockHeading {
			continue
		}
		lower := strings.ToLower(b.Text)
		for _, marker := range summaryHeadingMarkers {
			if strings.Contains(lower, marker) {
				return blocks
			}
		}
	}

	var source string
	for _, b := range blocks {
		if b.Kind == BlockParagraph && WordCount(b.Text) > r.cfg.SummarySourceMinWords {
			source = b.Text
			break
		}
	}
	if source == "" {
		return blocks
	}

	var lead []string
	for _, s := range SplitSentences(source) {
		if len([]rune(s)) > 20 {
			lead = append(lead, s)
		}
		if len(lead) == 2 {
			break
		}
	}
	if len(lead) == 0 {
		return blocks
	}
	summary := strings.Join(lead, " ") + " " +
		fmt.Sprintf("Kısa cevap: %s konusunda öne çıkan noktalar bu yazıda özetlenmiştir.", keyword)

	// insert after roughly the first 200 characters of body
	insertAt := len(blocks)
	chars := 0
	for i, b := range blocks {
		chars += len([]rune(b.Text))
		if chars >= r.cfg.SummaryInsertAfterChar {
			insertAt = i + 1
			break
		}
	}

	inserted := []Block{
		{Kind: BlockHeading, Level: 2, Text: summaryHeading},
		{Kind: BlockParagraph, Text: summary},
	}
	blocks = append(blocks[:insertAt], append(inserted, blocks[insertAt:]...)...)

	rev.Changes.AIFriendlyBlocksAdded = 1
	rev.Changes.SectionsAdded = append(rev.Changes.SectionsAdded, summaryHeading)
	rev.Improvements = append(rev.Improvements, "AI-friendly summary block added")
	return blocks
}

// injectInternalLinks links the first occurrence of each target keyword in a
// paragraph, at most one link per target, skipping text inside existing
// links and targets whose anchor is already present.
func (r *Reviser) injectInternalLinks(blocks []Block, rev *ContentRevision) []Block {
	body := RenderBlocks(blocks)
	added := 0

	for _, target := range r.lex.LinkTargets {
		if strings.Contains(body, "["+target.Anchor+"]") {
			continue
		}
		link := fmt.Sprintf("[%s](%s)", target.Anchor, target.URL)
		for i := range blocks {
			if blocks[i].Kind != BlockParagraph {
				continue
			}
			replaced, ok := replaceOutsideLinks(blocks[i].Text, target.Keyword, link)
			if !ok {
				continue
			}
			blocks[i].Text = replaced
			added++
			rev.Improvements = append(rev.Improvements, fmt.Sprintf("internal link added: %s", target.Anchor))
			break
		}
	}

	rev.Changes.InternalLinksAdded = added
	return blocks
}

// replaceOutsideLinks replaces the first case-insensitive occurrence of
// keyword that does not fall inside an existing markdown link. Matching is
// done with a regex on the original text: lowering a copy first would shift
// byte offsets on characters like İ whose lower form has a different width.
func replaceOutsideLinks(text, keyword, replacement string) (string, bool) {
	pat := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))
	spans := markdownLinkRe.FindAllStringIndex(text, -1)
	for _, m := range pat.FindAllStringIndex(text, -1) {
		if insideSpan(spans, m[0]) || letterAdjacent(text, m[0], m[1]) {
			continue
		}
		return text[:m[0]] + replacement + text[m[1]:], true
	}
	return text, false
}

func insideSpan(spans [][]int, pos int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}

// removeFluff strips hype phrases, collapses exclamation runs to periods and
// neutralizes superlatives, on paragraph blocks only.
func (r *Reviser) removeFluff(blocks []Block, rev *ContentRevision) []Block {
	removed := 0
	for i := range blocks {
		if blocks[i].Kind != BlockParagraph {
			continue
		}
		text := blocks[i].Text

		for _, pat := range r.lex.FluffPatterns {
			if n := len(pat.FindAllString(text, -1)); n > 0 {
				text = pat.ReplaceAllString(text, "")
				removed += n
			}
		}

		if n := len(exclamationRunRe.FindAllString(text, -1)); n > 0 {
			text = exclamationRunRe.ReplaceAllString(text, ".")
			removed += n
		}

		for _, rule := range r.superlatives {
			if n := len(rule.pat.FindAllString(text, -1)); n > 0 {
				text = rule.pat.ReplaceAllString(text, rule.neutral)
				removed += n
			}
		}

		blocks[i].Text = tidyWhitespace(text)
	}

	if removed > 0 {
		rev.Changes.FluffRemoved = true
		rev.Improvements = append(rev.Improvements, fmt.Sprintf("removed %d promotional phrase(s)", removed))
	}
	return blocks
}

var (
	spaceBeforePunctRe = regexp.MustCompile(` +([.,!?;:])`)
	multiSpaceRe       = regexp.MustCompile(`  +`)
)

func tidyWhitespace(text string) string {
	text = spaceBeforePunctRe.ReplaceAllString(text, "$1")
	text = multiSpaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// regenerateExcerpt derives a fresh excerpt when the current one is missing
// or under the minimum length.
func (r *Reviser) regenerateExcerpt(blocks []Block, excerpt string, audit ContentAudit, rev *ContentRevision) string {
	if len([]rune(excerpt)) >= r.cfg.ExcerptMinChars {
		return excerpt
	}

	out := ""
	if source := firstSubstantialParagraph(blocks, r.cfg.SummarySourceMinWords); source != "" {
		out = truncateRunes(flatten(source), r.cfg.ExcerptTargetChars)
	} else if len(audit.TargetKeywords) > 0 {
		n := min(len(audit.TargetKeywords), 3)
		out = truncateRunes(strings.Join(audit.TargetKeywords[:n], ", ")+" hakkında güncel bilgiler ve öneriler.", r.cfg.ExcerptTargetChars)
	} else {
		out = truncateRunes(r.lex.FallbackKeyword+" hakkında güncel bilgiler ve öneriler.", r.cfg.ExcerptTargetChars)
	}

	if out != excerpt {
		rev.Improvements = append(rev.Improvements, "excerpt regenerated")
	}
	return out
}

// regenerateMeta derives a fresh meta description when the current one is
// missing or outside the 120-160 character window.
func (r *Reviser) regenerateMeta(blocks []Block, meta, keyword string, rev *ContentRevision) string {
	length := len([]rune(meta))
	if length >= r.cfg.MetaMinChars && length <= r.cfg.MetaMaxChars {
		return meta
	}

	candidate := ""
	if source := firstSubstantialParagraph(blocks, r.cfg.SummarySourceMinWords); source != "" {
		candidate = flatten(source)
	} else {
		candidate = fmt.Sprintf("%s hakkında güncel rehber: fiyatlar, bölge bilgisi ve uzman değerlendirmeleri için yazının devamını okuyun.", keyword)
	}
	if len([]rune(candidate)) < r.cfg.MetaMinChars {
		candidate += " Detaylı bilgi ve güncel ilanlar için yazının devamına göz atın."
	}
	candidate = truncateRunes(candidate, r.cfg.MetaTruncateChars)

	if candidate != meta {
		rev.Improvements = append(rev.Improvements, "meta description regenerated")
	}
	return candidate
}

func firstSubstantialParagraph(blocks []Block, minWords int) string {
	for _, b := range blocks {
		if b.Kind == BlockParagraph && WordCount(b.Text) > minWords {
			return b.Text
		}
	}
	return ""
}

func flatten(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// truncateRunes cuts at limit runes and appends an ellipsis only when the
// text was actually truncated.
func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
