package view

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"github.com/thenoetrevino/trackview/internal/i18n"
)

// testLocalizer returns keys unchanged and formats plurals with fmt
type testLocalizer struct{}

func (testLocalizer) T(key string) string { return key }

func (testLocalizer) N(singular, plural string, count int) string {
	if count == 1 {
		return fmt.Sprintf(singular, count)
	}
	return fmt.Sprintf(plural, count)
}

func (testLocalizer) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func localizer(t *testing.T, tag language.Tag) *i18n.Localizer {
	t.Helper()
	cat, err := i18n.Load()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	return cat.Localizer(tag)
}

func parseHTML(t *testing.T, page []byte) *html.Node {
	t.Helper()
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		t.Fatalf("parse rendered page: %v", err)
	}
	return doc
}

func findByTestID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "data-testid" && attr.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByTestID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func testIDText(t *testing.T, doc *html.Node, id string) string {
	t.Helper()
	n := findByTestID(doc, id)
	if n == nil {
		t.Fatalf("element with data-testid=%q not found", id)
	}
	return textContent(n)
}
