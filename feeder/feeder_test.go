package feeder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"emlak-press/feeder"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Emlak Haberleri</title>
    <link>https://example.com</link>
    <item>
      <title>Karasu konut piyasası hareketlendi</title>
      <link>https://example.com/karasu-konut</link>
      <description>Sahil bölgesinde talep artıyor.</description>
      <pubDate>Mon, 02 Jun 2025 09:00:00 +0300</pubDate>
    </item>
    <item>
      <title>Sakarya imar düzenlemeleri açıklandı</title>
      <link>https://example.com/sakarya-imar</link>
      <description>Yeni plan yürürlükte.</description>
      <pubDate>Tue, 03 Jun 2025 10:30:00 +0300</pubDate>
    </item>
    <item>
      <title>Yazlık ev fiyatlarında sezon etkisi</title>
      <link>https://example.com/yazlik-sezon</link>
      <description>Sezon öncesi görünüm.</description>
    </item>
  </channel>
</rss>`

func TestParseFeed(t *testing.T) {
	items, err := feeder.ParseFeed(sampleRSS, 0)

	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "Karasu konut piyasası hareketlendi", items[0].Title)
	assert.Equal(t, "https://example.com/karasu-konut", items[0].Link)
	assert.Equal(t, "Sahil bölgesinde talep artıyor.", items[0].Description)
	assert.False(t, items[0].PublishedAt.IsZero())
	assert.True(t, items[2].PublishedAt.IsZero())
}

func TestParseFeedLimit(t *testing.T) {
	items, err := feeder.ParseFeed(sampleRSS, 2)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Sakarya imar düzenlemeleri açıklandı", items[1].Title)
}

func TestParseFeedRejectsInvalidXML(t *testing.T) {
	_, err := feeder.ParseFeed("bu bir feed değil", 0)

	assert.Error(t, err)
}
