package parser

import (
	"errors"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ParsedArticle holds the extraction result of a rendered source page.
type ParsedArticle struct {
	Title            string
	PlainTextContent string
	Excerpt          string
	TopImage         string
}

func ParseHtmlWithReadability(htmlStr string) (*ParsedArticle, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		Title:            article.Title,
		PlainTextContent: article.TextContent,
		Excerpt:          article.Excerpt,
		TopImage:         article.Image,
	}, nil
}

func ParseHtmlWithTrafilatura(htmlStr string) (*ParsedArticle, error) {
	opts := trafilatura.Options{
		IncludeImages: true,
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return nil, err
	}

	return &ParsedArticle{
		Title:            article.Metadata.Title,
		PlainTextContent: article.ContentText,
		Excerpt:          article.Metadata.Description,
		TopImage:         article.Metadata.Image,
	}, nil
}

func ParseHtmlWithGoose(htmlStr string) (*ParsedArticle, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		Title:            article.Title,
		PlainTextContent: article.CleanedText,
		Excerpt:          article.MetaDescription,
		TopImage:         article.TopImage,
	}, nil
}

// ParseHtml tries the extractors in order of reliability for Turkish
// portal markup and returns the first non-empty result.
func ParseHtml(htmlStr string) (*ParsedArticle, error) {
	if article, err := ParseHtmlWithReadability(htmlStr); err == nil && article.PlainTextContent != "" {
		return article, nil
	}
	if article, err := ParseHtmlWithTrafilatura(htmlStr); err == nil && article.PlainTextContent != "" {
		return article, nil
	}
	if article, err := ParseHtmlWithGoose(htmlStr); err == nil && article.PlainTextContent != "" {
		return article, nil
	}
	return nil, errors.New("parser: no extractor produced content")
}
