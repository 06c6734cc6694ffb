// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// containerOpener matches admonition (`???`, `???+`, `!!!`) and content tab (`===`) openers.
var containerOpener = regexp.MustCompile(`^ *(?:\?\?\?\+?|!!!|===) +\S`)

// LinkKind classifies destinations found in rendered markdown.
type LinkKind string

const (
	LinkKindInline LinkKind = "inline"
	LinkKindImage  LinkKind = "image"
)

// Link is one link or image destination found in rendered markdown.
type Link struct {
	Kind        LinkKind
	Label       string
	Destination string
}

// IsSiteRelative reports whether the destination points inside the generated site.
func (link Link) IsSiteRelative() bool {
	destination := strings.TrimSpace(link.Destination)
	if destination == "" || strings.HasPrefix(destination, "#") {
		return false
	}

	return !strings.Contains(destination, "://") && !strings.HasPrefix(destination, "mailto:")
}

// newMarkdown returns the goldmark converter used for previews, with GFM tables enabled.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.GFM))
}

// RenderHTML converts rendered markdown into an HTML fragment for local previews.
// Admonitions are not a CommonMark construct and render as plain paragraphs.
func RenderHTML(markdown string) (string, error) {
	var out bytes.Buffer
	if err := newMarkdown().Convert([]byte(markdown), &out); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderHTML, err)
	}

	return out.String(), nil
}

// PageLinks parses markdown and returns link and image destinations in document order.
// Admonition and content tab bodies are parsed as markdown; other indented and fenced code is not.
func PageLinks(markdown string) []Link {
	source := []byte(unwrapContainers(normalizeLineEndings(markdown)))
	root := newMarkdown().Parser().Parse(text.NewReader(source))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.Image:
			links = append(links, Link{
				Kind:        LinkKindImage,
				Label:       nodeText(node, source),
				Destination: string(node.Destination),
			})
		case *gmast.Link:
			links = append(links, Link{
				Kind:        LinkKindInline,
				Label:       nodeText(node, source),
				Destination: string(node.Destination),
			})
		}

		return gmast.WalkContinue, nil
	})

	return links
}

// nodeText concatenates text segments of inline children.
func nodeText(node gmast.Node, source []byte) string {
	var out strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*gmast.Text); ok {
			out.Write(textNode.Segment.Value(source))
		}
	}

	return out.String()
}

// unwrapContainers removes the body indentation of admonitions and content tabs,
// so their content parses as regular markdown instead of an indented code block.
func unwrapContainers(markdown string) string {
	return strings.Join(unwrapContainerLines(strings.Split(markdown, "\n")), "\n")
}

func unwrapContainerLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		out = append(out, line)
		if !containerOpener.MatchString(line) {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " "))
		bodyPrefix := strings.Repeat(" ", indent+4)

		body := make([]string, 0)
		next := i + 1
		for ; next < len(lines); next++ {
			bodyLine := lines[next]
			if strings.TrimSpace(bodyLine) == "" {
				body = append(body, "")
				continue
			}

			if !strings.HasPrefix(bodyLine, bodyPrefix) {
				break
			}

			body = append(body, line[:indent]+bodyLine[len(bodyPrefix):])
		}

		// Blank line keeps the opener out of the first body paragraph.
		out = append(out, "")
		out = append(out, unwrapContainerLines(body)...)
		i = next - 1
	}

	return out
}
