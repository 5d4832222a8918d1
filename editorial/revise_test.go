package editorial_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"emlak-press/editorial"
)

func newReviser() *editorial.Reviser {
	return editorial.NewReviser(editorial.DefaultLexicon(), editorial.DefaultReviseConfig())
}

func auditOf(keywords ...string) editorial.ContentAudit {
	return editorial.ContentAudit{
		PrimaryIntent:  editorial.IntentInformational,
		TargetKeywords: keywords,
	}
}

func TestRewriteShortIntro(t *testing.T) {
	body := "Karasu konut piyasası hareketli.\n\nBölgedeki projeler ve ulaşım yatırımları ilçenin gelişimini hızlandırıyor."

	rev := newReviser().Revise(auditOf("karasu"), "Başlık", body, "", "")

	assert.True(t, rev.Changes.IntroRewritten)
	assert.Contains(t, rev.After.Content, "Bu yazıda karasu hakkında bilmeniz gereken güncel bilgileri derledik.")
	assert.Contains(t, rev.Improvements, "intro rewritten to target length")
}

func TestShortIntroPaddedOnlyOnce(t *testing.T) {
	// the padded intro can still be under the minimum length; a re-run
	// must not stack a second copy of the generic sentence
	pad := "Bu yazıda emlak hakkında bilmeniz gereken güncel bilgileri derledik."
	r := newReviser()

	first := r.Revise(auditOf("emlak"), "Başlık", "Kısa not.", "", "")
	second := r.Revise(auditOf("emlak"), "Başlık", first.After.Content, first.After.Excerpt, first.After.MetaDescription)

	assert.Equal(t, 1, strings.Count(first.After.Content, pad))
	assert.Equal(t, 1, strings.Count(second.After.Content, pad))
	assert.False(t, second.Changes.IntroRewritten)
}

func TestTruncateLongIntro(t *testing.T) {
	sentence := "Bölgedeki konut projeleri ulaşım ve altyapı yatırımlarıyla birlikte değer kazanmaya devam ediyor."
	intro := strings.TrimSpace(strings.Repeat(sentence+" ", 4))

	rev := newReviser().Revise(auditOf("emlak"), "Başlık", intro, "", "")

	firstBlock := editorial.ParseBlocks(rev.After.Content)[0]
	assert.True(t, rev.Changes.IntroRewritten)
	assert.Len(t, editorial.SplitSentences(firstBlock.Text), 2)
}

func TestNormalizeHeadings(t *testing.T) {
	body := "Giriş paragrafı bölgenin genel görünümünü ve konut piyasasındaki son gelişmeleri kısaca özetleyerek okuyucuyu yazının ayrıntılarına hazırlıyor.\n\n# Ana Başlık\n\nbir paragraf\n\n#### Derin Başlık\n\nbaşka paragraf"

	rev := newReviser().Revise(auditOf("emlak"), "Başlık", body, "", "")

	assert.True(t, rev.Changes.HeadingsImproved)
	assert.Contains(t, rev.After.Content, "## Ana Başlık")
	assert.Contains(t, rev.After.Content, "### Derin Başlık")
	assert.NotContains(t, rev.After.Content, "#### ")
}

const testIntro = "Karasu sahilinde tatil evi arayanlar için bölgenin öne çıkan mahallelerini ve güncel konut seçeneklerini inceledik."

func TestSplitLongParagraphs(t *testing.T) {
	sentence := "Mahalledeki siteler denize yürüme mesafesindeki konumlarıyla her sezon daha fazla alıcının ilgisini çekmeye devam ediyor. "
	long := strings.TrimSpace(strings.Repeat(sentence, 12)) // ~180 words, 12 sentences
	body := testIntro + "\n\n" + long

	rev := newReviser().Revise(auditOf("emlak"), "Başlık", body, "", "")

	blocks := editorial.ParseBlocks(rev.After.Content)
	paragraphs := 0
	for _, b := range blocks {
		if b.Kind == editorial.BlockParagraph && strings.Contains(b.Text, "Mahalledeki") {
			paragraphs++
		}
	}
	assert.GreaterOrEqual(t, paragraphs, 2)
	assert.Contains(t, rev.Improvements, "split 1 overlong paragraph(s)")
}

func TestInsertSummaryBlock(t *testing.T) {
	para := strings.TrimSpace(strings.Repeat("Bölgedeki konut stoku ulaşım olanakları ve sosyal donatılar yönünden her yıl biraz daha çeşitleniyor. ", 7))
	body := testIntro + "\n\n" + para

	rev := newReviser().Revise(auditOf("karasu"), "Başlık", body, "", "")

	assert.Equal(t, 1, rev.Changes.AIFriendlyBlocksAdded)
	assert.Contains(t, rev.After.Content, "## Kısa Özet")
	assert.Contains(t, rev.After.Content, "Kısa cevap: karasu konusunda öne çıkan noktalar bu yazıda özetlenmiştir.")
}

func TestSummaryBlockSkippedWhenMarkerExists(t *testing.T) {
	para := strings.TrimSpace(strings.Repeat("Bölgedeki konut stoku ulaşım olanakları ve sosyal donatılar yönünden her yıl biraz daha çeşitleniyor. ", 7))
	body := testIntro + "\n\n## Özet\n\n" + para

	rev := newReviser().Revise(auditOf("karasu"), "Başlık", body, "", "")

	assert.Equal(t, 0, rev.Changes.AIFriendlyBlocksAdded)
	assert.NotContains(t, rev.After.Content, "Kısa Özet")
}

func TestInternalLinkInjectedOncePerTarget(t *testing.T) {
	body := "Karasu sahilinde konut arayanlar için seçenekler çeşitleniyor ve Karasu merkezdeki projeler dikkat çekiyor. Bölgeye olan ilgi her geçen sezon belirgin şekilde artıyor."

	rev := newReviser().Revise(auditOf("karasu"), "Başlık", body, "", "")

	assert.Equal(t, 1, rev.Changes.InternalLinksAdded)
	assert.Equal(t, 1, strings.Count(rev.After.Content, "[Karasu Satılık Ev](/karasu-satilik-ev)"))
}

func TestInternalLinkSkippedWhenAnchorPresent(t *testing.T) {
	body := "Karasu bölgesindeki fırsatlar için [Karasu Satılık Ev](/karasu-satilik-ev) sayfasına bakın. İlçedeki konut stoğu her geçen yıl biraz daha çeşitlenerek alıcıya seçenek sunuyor."

	rev := newReviser().Revise(auditOf("karasu"), "Başlık", body, "", "")

	assert.Equal(t, 0, rev.Changes.InternalLinksAdded)
	assert.Equal(t, 1, strings.Count(rev.After.Content, "[Karasu Satılık Ev]"))
}

func TestRemoveFluff(t *testing.T) {
	body := "Bu muhteşem projede daireler hemen satışa çıktı!!! Yeni kampanyalı liste için ofisimizi arayabilirsiniz. Sezon bitmeden kaçırmayın."

	rev := newReviser().Revise(auditOf("emlak"), "Başlık", body, "", "")

	assert.True(t, rev.Changes.FluffRemoved)
	assert.NotContains(t, rev.After.Content, "hemen")
	assert.NotContains(t, rev.After.Content, "kampanya")
	assert.NotContains(t, rev.After.Content, "kaçırmayın")
	assert.NotContains(t, rev.After.Content, "muhteşem")
	assert.NotContains(t, rev.After.Content, "!!")
	assert.Contains(t, rev.After.Content, "güzel")
	assert.Contains(t, rev.After.Content, "satışa çıktı.")
}

func TestExclamationRunsCollapsedInLongIntro(t *testing.T) {
	// terminator runs must survive sentence splitting intact so the
	// collapse pass still sees them after intro truncation
	intro := "Sitede yer alan dairelerin tamamı deniz manzaralı olup kampanya koşulları bugün itibarıyla açıklandı!!! " +
		"Bölgedeki konut projeleri ulaşım ve altyapı yatırımlarıyla birlikte değer kazanmaya devam ediyor. " +
		"Yeni dönem teslimleri için başvurular önümüzdeki hafta başlıyor."

	rev := newReviser().Revise(auditOf("emlak"), "Başlık", intro, "", "")

	assert.True(t, rev.Changes.IntroRewritten)
	assert.True(t, rev.Changes.FluffRemoved)
	assert.NotContains(t, rev.After.Content, "!!")
	assert.Contains(t, rev.After.Content, "açıklandı.")
}

func TestExclamationRunsCollapsedInSplitParagraph(t *testing.T) {
	sentence := "Mahalledeki siteler denize yürüme mesafesindeki konumlarıyla her sezon daha fazla alıcının ilgisini çekmeye devam ediyor!!! "
	body := testIntro + "\n\n" + strings.TrimSpace(strings.Repeat(sentence, 12))

	rev := newReviser().Revise(auditOf("emlak"), "Başlık", body, "", "")

	assert.Contains(t, rev.Improvements, "split 1 overlong paragraph(s)")
	assert.NotContains(t, rev.After.Content, "!!")
}

func TestFluffRemovalIsExhaustive(t *testing.T) {
	lex := editorial.DefaultLexicon()
	body := strings.TrimSpace(strings.Repeat("Fırsatları kaçırmayın çünkü kampanyalı daireler hemen tükeniyor!!! ", 5))

	rev := newReviser().Revise(auditOf("emlak"), "Başlık", body, "", "")

	for _, pat := range lex.FluffPatterns {
		assert.Empty(t, pat.FindAllString(rev.After.Content, -1), "pattern %s still matches", pat)
	}
}

func TestSuperlativeReplacementIsDeterministic(t *testing.T) {
	// with a replacement value that is itself another key, the outcome
	// depends on pass order; sorted key order pins it
	lex := editorial.DefaultLexicon()
	lex.Superlatives = map[string]string{
		"muhteşem": "eşsiz",
		"eşsiz":    "sıradışı",
	}
	body := "Bu muhteşem konum alıcı bulmakta zorlanmıyor ve bölgedeki diğer projelere kıyasla belirgin şekilde öne çıkıyor."

	r := editorial.NewReviser(lex, editorial.DefaultReviseConfig())
	want := r.Revise(auditOf("emlak"), "Başlık", body, "", "").After.Content
	assert.Contains(t, want, "eşsiz konum")
	for i := 0; i < 10; i++ {
		got := editorial.NewReviser(lex, editorial.DefaultReviseConfig()).
			Revise(auditOf("emlak"), "Başlık", body, "", "").After.Content
		assert.Equal(t, want, got)
	}
}

func TestRegenerateExcerptBounds(t *testing.T) {
	para := strings.TrimSpace(strings.Repeat("Bölgedeki konut stoku ulaşım olanakları ve sosyal donatılar yönünden her yıl biraz daha çeşitleniyor. ", 7))
	body := testIntro + "\n\n" + para

	rev := newReviser().Revise(auditOf("karasu"), "Başlık", body, "kısa", "")

	length := len([]rune(rev.After.Excerpt))
	assert.GreaterOrEqual(t, length, 100)
	assert.LessOrEqual(t, length, 160)
	assert.Contains(t, rev.Improvements, "excerpt regenerated")
}

func TestExcerptKeptWhenLongEnough(t *testing.T) {
	excerpt := strings.TrimSpace(strings.Repeat("Bölge özeti. ", 10))

	rev := newReviser().Revise(auditOf("karasu"), "Başlık", "kısa gövde metni.", excerpt, "")

	assert.Equal(t, excerpt, rev.After.Excerpt)
}

func TestRegenerateMetaBounds(t *testing.T) {
	para := strings.TrimSpace(strings.Repeat("Bölgedeki konut stoku ulaşım olanakları ve sosyal donatılar yönünden her yıl biraz daha çeşitleniyor. ", 7))
	body := testIntro + "\n\n" + para

	rev := newReviser().Revise(auditOf("karasu"), "Başlık", body, "", "çok kısa meta")

	length := len([]rune(rev.After.MetaDescription))
	assert.GreaterOrEqual(t, length, 120)
	assert.LessOrEqual(t, length, 160)
	assert.Contains(t, rev.Improvements, "meta description regenerated")
}

func TestMetaKeptWhenInsideWindow(t *testing.T) {
	meta := strings.TrimSpace(strings.Repeat("Karasu bölgesi konut rehberi. ", 5)) // 149 chars

	rev := newReviser().Revise(auditOf("karasu"), "Başlık", "kısa gövde metni.", "", meta)

	assert.Equal(t, meta, rev.After.MetaDescription)
}

func TestReviseScenarioKarasuGuide(t *testing.T) {
	body := "İlçenin sahil kesiminde yer alan Karasu, son dönemde konut arayan ailelerin dikkatini çeken bölgelerden biri olarak öne çıkıyor. Denize yakın konumu, gelişen altyapısı ve yıl boyunca canlı kalan sosyal yaşamı bölgeye olan ilgiyi her geçen yıl artırıyor."
	title := "Karasu Satılık Ev Rehberi"

	auditor := newAuditor()
	audit := auditor.Audit(body, title, nil)

	assert.Equal(t, editorial.IntentInformational, audit.PrimaryIntent)
	assert.Len(t, audit.ThinSections, 1)
	assert.Equal(t, "karasu", audit.TargetKeywords[0])

	rev := newReviser().Revise(audit, title, body, "", "")

	assert.Equal(t, 1, rev.Changes.InternalLinksAdded)
	assert.Equal(t, 1, strings.Count(rev.After.Content, "[Karasu Satılık Ev](/karasu-satilik-ev)"))
}

func TestReviseIsIdempotentOnRevisedContent(t *testing.T) {
	body := strings.Join([]string{
		"Karasu sahilinde tatil evi arayanlar için bölgenin öne çıkan mahallelerini ve güncel konut seçeneklerini inceledik.",
		"# Bölgeye Genel Bakış",
		"Karasu merkezde ve sahil şeridinde yer alan siteler, denize yürüme mesafesindeki konumlarıyla yaz aylarında yoğun ilgi görüyor. Bölgede iki artı bir ve üç artı bir daire seçenekleri ağırlıkta olup müstakil yazlık evler de satışa sunuluyor. Sakarya geneline kıyasla Karasu tarafındaki konutlar daha uygun bütçelerle alıcı bulabiliyor. Ulaşım olanaklarının gelişmesiyle birlikte bölgeye olan talep her sezon biraz daha artıyor. Altyapı yatırımları ve yeni imar düzenlemeleri ilçenin konut stokunu çeşitlendiriyor. Deniz turizmine ek olarak doğa yürüyüşü rotaları da bölgeyi cazip kılıyor.",
		"#### Değerlendirme Notları",
		"Alım kararı öncesinde tapu durumunu, imar planını ve site aidatlarını ayrıntılı şekilde incelemek uzun vadede yaşanabilecek sorunların önüne geçiyor. Bölgeyi mevsim dışında da ziyaret ederek günlük yaşamı gözlemlemek sağlıklı bir karar için önem taşıyor.",
	}, "\n\n")

	r := newReviser()
	audit := auditOf("karasu")

	first := r.Revise(audit, "Karasu Konut Piyasası", body, "", "")
	second := r.Revise(audit, "Karasu Konut Piyasası", first.After.Content, first.After.Excerpt, first.After.MetaDescription)

	assert.True(t, first.Changes.HeadingsImproved)
	assert.Equal(t, 1, first.Changes.AIFriendlyBlocksAdded)
	assert.Equal(t, 3, first.Changes.InternalLinksAdded)

	assert.Equal(t, first.After, second.After)
	assert.Empty(t, second.Improvements)
}
