package editorial_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"emlak-press/editorial"
)

func newAuditor() *editorial.Auditor {
	return editorial.NewAuditor(editorial.DefaultLexicon())
}

// richBody builds a long, well-structured article: 14 sections with a heading
// attached to a 90-word paragraph, plus three internal links.
func richBody() string {
	var sb strings.Builder
	for i := 0; i < 14; i++ {
		fmt.Fprintf(&sb, "## Bölüm %d Değerlendirmesi\n", i+1)
		for j := 0; j < 6; j++ {
			fmt.Fprintf(&sb, "Mahalle %d-%d hattında konut stoku, ulaşım olanakları ve sosyal donatılar yönünden ayrıntılı biçimde ele alınmıştır. ", i, j)
		}
		if i == 0 {
			sb.WriteString("Ayrıntılar için [Karasu Satılık Ev](/karasu-satilik-ev), [Sakarya Emlak İlanları](/sakarya-emlak) ve [Yazlık Ev Rehberi](/blog/yazlik-ev-rehberi) sayfalarına bakabilirsiniz. ")
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func TestClassifyIntentCommercial(t *testing.T) {
	body := "Daireyi satın almak isteyenler için fiyat listesi yayınlandı. Kampanya kapsamında indirim uygulanıyor, fiyat bilgisi ofisten alınabilir."

	audit := newAuditor().Audit(body, "Proje Tanıtımı", nil)

	assert.Equal(t, editorial.IntentCommercial, audit.PrimaryIntent)
}

func TestClassifyIntentNavigational(t *testing.T) {
	body := "Ofise nasıl ulaşılır, satış noktası nerede ve iletişim bilgileri neler? Ziyaret öncesi adres bilgisini kontrol edin."

	audit := newAuditor().Audit(body, "Ulaşım Bilgileri", nil)

	assert.Equal(t, editorial.IntentNavigational, audit.PrimaryIntent)
}

func TestClassifyIntentDefaultsToInformational(t *testing.T) {
	body := "Bölgenin konut stoku her yıl çeşitleniyor ve yeni projeler planlanıyor."

	audit := newAuditor().Audit(body, "Bölge Analizi", nil)

	assert.Equal(t, editorial.IntentInformational, audit.PrimaryIntent)
}

func TestIntentIgnoresEmbeddedMatches(t *testing.T) {
	// "satın" occurs only inside longer words, so no commercial hit counts.
	body := "Satınalma süreçleri ve satınalmaya dair satınalmacı notları derlendi."

	audit := newAuditor().Audit(body, "Süreç Notları", nil)

	assert.Equal(t, editorial.IntentInformational, audit.PrimaryIntent)
}

func TestExtractKeywordsOrderAndCap(t *testing.T) {
	body := strings.ToLower("Karasu sahilinde yazlık ve satılık ev seçenekleri ile emlak piyasası her sezon hareketleniyor. Sakarya genelinde tapu ve imar süreçleri hızlandı. Arsa yatırımı ve kredi kullanımı arttı. Denize sıfır siteler ve site içinde daireler öne çıkıyor.")

	audit := newAuditor().Audit(body, "Karasu Satılık Ev Rehberi", []string{"konut piyasası"})

	// existing keywords come first, then title tokens, then gazetteer hits
	assert.Equal(t, "konut piyasası", audit.TargetKeywords[0])
	assert.Equal(t, "karasu", audit.TargetKeywords[1])
	assert.Contains(t, audit.TargetKeywords, "satılık")
	assert.Contains(t, audit.TargetKeywords, "rehberi")
	assert.LessOrEqual(t, len(audit.TargetKeywords), 10)

	// no duplicates
	seen := map[string]bool{}
	for _, kw := range audit.TargetKeywords {
		assert.False(t, seen[kw], "duplicate keyword %q", kw)
		seen[kw] = true
	}
}

func TestFindThinSections(t *testing.T) {
	thinPara := "Kısa bir bölüm."
	fatPara := strings.TrimSpace(strings.Repeat("Bölgedeki konut projeleri ulaşım ve altyapı yatırımlarıyla birlikte değerlenmeye devam ediyor. ", 7))

	audit := newAuditor().Audit(fatPara+"\n\n"+thinPara, "Başlık", nil)

	assert.Len(t, audit.ThinSections, 1)
	assert.Equal(t, 2, audit.ThinSections[0].Index)
	assert.Equal(t, 3, audit.ThinSections[0].WordCount)
}

func TestFindRedundantSections(t *testing.T) {
	sentence := "Bu cümle tekrar eden bir pazarlama mesajıdır."
	body := sentence + " " + sentence + " Araya giren farklı bir değerlendirme cümlesi. " + sentence

	audit := newAuditor().Audit(body, "Başlık", nil)

	assert.Len(t, audit.RedundantSections, 1)
}

func TestQualityScoreOfRichBody(t *testing.T) {
	audit := newAuditor().Audit(richBody(), "Bölge Rehberi", nil)

	assert.Empty(t, audit.ThinSections)
	assert.Empty(t, audit.RedundantSections)
	assert.Equal(t, 100, audit.QualityScore)
}

func TestQualityScoreOfEmptyBody(t *testing.T) {
	audit := newAuditor().Audit("", "", nil)

	// no paragraphs means no thin or redundant findings, nothing else scores
	assert.Equal(t, 30, audit.QualityScore)
}

func TestQualityScoreBounds(t *testing.T) {
	bodies := []string{
		"",
		"tek cümle.",
		richBody(),
		strings.Repeat("aynı cümle tekrar ediyor burada. ", 40),
	}
	for _, body := range bodies {
		audit := newAuditor().Audit(body, "Başlık", nil)
		assert.GreaterOrEqual(t, audit.QualityScore, 0)
		assert.LessOrEqual(t, audit.QualityScore, 100)
	}
}

func TestAuditIsDeterministic(t *testing.T) {
	body := richBody()

	first := newAuditor().Audit(body, "Bölge Rehberi", nil)
	second := newAuditor().Audit(body, "Bölge Rehberi", nil)

	assert.Equal(t, first, second)
}
