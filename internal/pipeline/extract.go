package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"deckcheck/internal"
	"deckcheck/internal/config"
)

// ErrContentNotFound means the page was retrieved but holds no deck list
// element.
var ErrContentNotFound = errors.New("deck list content not found")

var pathSegmentPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)(?:\[(\d+)\])?$`)

// Extractor locates the deck list text block in a retrieved page.
type Extractor struct {
	Strategy       internal.ExtractionStrategy
	Selector       string
	StructuralPath string
	// Fallback lets the tag selector strategy retry with the structural path
	// when the selector matches nothing.
	Fallback bool
}

func NewExtractor(cfg config.Config) *Extractor {
	return &Extractor{
		Strategy:       cfg.Extraction,
		Selector:       cfg.CodeSelector,
		StructuralPath: cfg.StructuralPath,
		Fallback:       cfg.StructuralFallback,
	}
}

// Extract returns the text of the deck list element and the strategy that
// found it.
func (e *Extractor) Extract(page []byte) (string, internal.ExtractionStrategy, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", "", fmt.Errorf("parse page: %w", err)
	}

	if e.Strategy == internal.ExtractStructuralPath {
		text, err := extractByPath(doc, e.StructuralPath)
		return text, internal.ExtractStructuralPath, err
	}

	text, err := extractBySelector(doc, e.Selector)
	if errors.Is(err, ErrContentNotFound) && e.Fallback && strings.TrimSpace(e.StructuralPath) != "" {
		text, err = extractByPath(doc, e.StructuralPath)
		return text, internal.ExtractStructuralPath, err
	}
	return text, internal.ExtractTagSelector, err
}

func extractBySelector(doc *goquery.Document, selector string) (string, error) {
	if strings.TrimSpace(selector) == "" {
		selector = "code"
	}
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", ErrContentNotFound
	}
	return strings.TrimSpace(sel.Text()), nil
}

// extractByPath evaluates an absolute element path such as
// /html/body/div[1]/main/code/text(). A trailing text() selects the direct
// text nodes of the matched elements, joined by single spaces.
func extractByPath(doc *goquery.Document, path string) (string, error) {
	css, textNodes, err := StructuralSelector(path)
	if err != nil {
		return "", err
	}
	sel := doc.Find(css)
	if sel.Length() == 0 {
		return "", ErrContentNotFound
	}

	if !textNodes {
		return strings.TrimSpace(sel.Text()), nil
	}

	parts := []string{}
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		if len(node.Nodes) > 0 && node.Nodes[0].Type == html.TextNode {
			parts = append(parts, node.Nodes[0].Data)
		}
	})
	if len(parts) == 0 {
		return "", ErrContentNotFound
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

// StructuralSelector converts an absolute element path into a CSS selector
// built from child combinators and :nth-of-type, which is what each
// positional step means. Only plain /tag and /tag[n] steps are accepted.
func StructuralSelector(path string) (css string, textNodes bool, err error) {
	p := strings.TrimSpace(path)
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return "", false, fmt.Errorf("structural path must be absolute: %q", path)
	}
	if strings.HasSuffix(p, "/text()") {
		textNodes = true
		p = strings.TrimSuffix(p, "/text()")
	}

	segments := strings.Split(strings.TrimPrefix(p, "/"), "/")
	steps := make([]string, 0, len(segments))
	for _, seg := range segments {
		m := pathSegmentPattern.FindStringSubmatch(seg)
		if m == nil {
			return "", false, fmt.Errorf("unsupported structural path step %q in %q", seg, path)
		}
		step := strings.ToLower(m[1])
		if m[2] != "" {
			step += ":nth-of-type(" + m[2] + ")"
		}
		steps = append(steps, step)
	}
	return strings.Join(steps, " > "), textNodes, nil
}
