// Package extract pulls readable puzzle text out of downloaded HTML pages.
// Puzzle descriptions live in <article class="day-desc"> elements; the rest
// of the page is navigation and stats chrome.
package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// ArticleText returns the text of every day-desc article on the page,
// articles separated by a blank line. An unparsable or article-free page
// yields the empty string.
func ArticleText(page []byte) string {
	node, err := html.Parse(bytes.NewReader(page))
	if err != nil || node == nil {
		return ""
	}
	var parts []string
	for _, article := range findArticles(node) {
		var b strings.Builder
		collectText(&b, article, false)
		if text := normalizeWhitespace(b.String()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func findArticles(n *html.Node) []*html.Node {
	var res []*html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, "article") && hasClass(cur, "day-desc") {
			res = append(res, cur)
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return res
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, "class") {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func collectText(b *strings.Builder, n *html.Node, inPre bool) {
	if n.Type == html.ElementNode {
		name := strings.ToLower(n.Data)
		switch name {
		case "script", "style", "noscript":
			return
		case "pre", "code":
			inPre = true
		case "br":
			b.WriteString("\n")
		case "p", "h1", "h2", "h3", "li", "ul":
			b.WriteString("\n")
		}
	}

	if n.Type == html.TextNode {
		data := n.Data
		if !inPre {
			data = strings.ReplaceAll(data, "\t", " ")
			data = strings.ReplaceAll(data, "\r", " ")
		}
		b.WriteString(data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c, inPre)
	}

	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "pre":
			b.WriteString("\n\n")
		case "li":
			b.WriteString("\n")
		}
	}
}

// normalizeWhitespace collapses runs of blank lines and trims trailing
// spaces without disturbing intra-line spacing of example blocks.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := 0
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " ")
		if strings.TrimSpace(trimmed) == "" {
			blank++
			if blank > 1 {
				continue
			}
			out = append(out, "")
			continue
		}
		blank = 0
		out = append(out, trimmed)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
