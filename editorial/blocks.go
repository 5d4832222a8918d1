package editorial

import (
	"regexp"
	"strings"
)

// The revision transforms operate on a typed block representation of the
// body instead of raw string splicing, so a later pass cannot re-match text
// inside a heading or an already-inserted link.

// BlockKind tags a parsed body block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
)

// Block is one unit of body text: a heading line or a paragraph.
type Block struct {
	Kind  BlockKind
	Level int // heading level, 0 for paragraphs
	Text  string
}

var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

// ParseBlocks splits a markdown-ish body into heading and paragraph blocks.
// Paragraphs are separated by blank lines; a heading line always starts a
// block of its own.
func ParseBlocks(body string) []Block {
	var blocks []Block
	var para []string

	flush := func() {
		if len(para) == 0 {
			return
		}
		blocks = append(blocks, Block{Kind: BlockParagraph, Text: strings.Join(para, "\n")})
		para = nil
	}

	for _, line := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimRight(line, " \t")
		if strings.TrimSpace(trimmed) == "" {
			flush()
			continue
		}
		if m := headingRe.FindStringSubmatch(trimmed); m != nil {
			flush()
			blocks = append(blocks, Block{Kind: BlockHeading, Level: len(m[1]), Text: m[2]})
			continue
		}
		para = append(para, trimmed)
	}
	flush()
	return blocks
}

// RenderBlocks joins blocks back into body text with blank-line separators.
func RenderBlocks(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Kind == BlockHeading {
			parts = append(parts, strings.Repeat("#", b.Level)+" "+b.Text)
			continue
		}
		parts = append(parts, b.Text)
	}
	return strings.Join(parts, "\n\n")
}

// SplitSentences splits text into trimmed sentences on ., ! and ?. The
// terminators stay attached to their sentence: a run like "!!!" belongs to
// one sentence, never becomes sentences of its own.
func SplitSentences(text string) []string {
	var out []string
	var sb strings.Builder
	runes := []rune(text)
	for i, r := range runes {
		sb.WriteRune(r)
		if !isSentenceTerminator(r) {
			continue
		}
		if i+1 < len(runes) && isSentenceTerminator(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(sb.String()); s != "" {
			out = append(out, s)
		}
		sb.Reset()
	}
	if s := strings.TrimSpace(sb.String()); s != "" {
		out = append(out, s)
	}
	return out
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// WordCount counts whitespace-separated tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
