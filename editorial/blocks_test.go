package editorial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"emlak-press/editorial"
)

func TestParseBlocks(t *testing.T) {
	body := "# Başlık\n\nilk paragraf satır bir\nilk paragraf satır iki\n\n## Alt Başlık\nikinci paragraf"

	blocks := editorial.ParseBlocks(body)

	assert.Len(t, blocks, 4)
	assert.Equal(t, editorial.BlockHeading, blocks[0].Kind)
	assert.Equal(t, 1, blocks[0].Level)
	assert.Equal(t, "Başlık", blocks[0].Text)
	assert.Equal(t, editorial.BlockParagraph, blocks[1].Kind)
	assert.Equal(t, "ilk paragraf satır bir\nilk paragraf satır iki", blocks[1].Text)
	assert.Equal(t, 2, blocks[2].Level)
	assert.Equal(t, "ikinci paragraf", blocks[3].Text)
}

func TestParseBlocksHandlesWindowsLineEndings(t *testing.T) {
	blocks := editorial.ParseBlocks("paragraf bir\r\n\r\nparagraf iki")

	assert.Len(t, blocks, 2)
	assert.Equal(t, "paragraf bir", blocks[0].Text)
	assert.Equal(t, "paragraf iki", blocks[1].Text)
}

func TestRenderBlocksRoundTrip(t *testing.T) {
	body := "## Bölge Rehberi\n\nbirinci paragraf\n\n### Ayrıntılar\n\nikinci paragraf"

	rendered := editorial.RenderBlocks(editorial.ParseBlocks(body))

	assert.Equal(t, body, rendered)
}

func TestSplitSentences(t *testing.T) {
	sentences := editorial.SplitSentences("Merhaba dünya. Bölge nasıl gelişiyor? Talep çok yüksek! Son cümle noktasız")

	assert.Equal(t, []string{
		"Merhaba dünya.",
		"Bölge nasıl gelişiyor?",
		"Talep çok yüksek!",
		"Son cümle noktasız",
	}, sentences)
}

func TestSplitSentencesKeepsTerminatorRuns(t *testing.T) {
	sentences := editorial.SplitSentences("Koşullar açıklandı!!! Başvurular başladı... Peki şimdi ne olacak?!")

	assert.Equal(t, []string{
		"Koşullar açıklandı!!!",
		"Başvurular başladı...",
		"Peki şimdi ne olacak?!",
	}, sentences)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, editorial.WordCount("   "))
	assert.Equal(t, 4, editorial.WordCount("denize yakın satılık daire"))
}
