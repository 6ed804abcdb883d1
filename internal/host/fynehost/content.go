package fynehost

import (
	"bytes"
	"net/http"
	"path"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type contentKind int

const (
	kindText contentKind = iota
	kindMarkdown
	kindHTML
	kindImage
)

// classify picks a renderer from the URI's mime type, falling back to
// sniffing when the URI has no useful extension.
func classify(res resource) contentKind {
	mime := res.mime
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(res.data)
	}
	mime, _, _ = strings.Cut(mime, ";")

	switch ext := strings.ToLower(path.Ext(res.name)); {
	case ext == ".md" || ext == ".markdown" || mime == "text/markdown":
		return kindMarkdown
	case strings.HasPrefix(mime, "image/"):
		return kindImage
	case mime == "text/html" || ext == ".html" || ext == ".htm":
		return kindHTML
	default:
		return kindText
	}
}

func render(res resource) fyne.CanvasObject {
	switch classify(res) {
	case kindImage:
		img := canvas.NewImageFromResource(fyne.NewStaticResource(res.name, res.data))
		img.FillMode = canvas.ImageFillContain
		return img
	case kindMarkdown:
		return scrollText(widget.NewRichTextFromMarkdown(string(res.data)))
	case kindHTML:
		return scrollText(widget.NewRichTextWithText(htmlText(res.data)))
	default:
		return scrollText(widget.NewRichTextWithText(string(res.data)))
	}
}

func scrollText(rt *widget.RichText) fyne.CanvasObject {
	rt.Wrapping = fyne.TextWrapWord
	return container.NewScroll(rt)
}

// htmlText extracts the visible text of an HTML document, one block per
// line. Fyne has no HTML engine.
func htmlText(data []byte) string {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return string(data)
	}

	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Head:
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
				lines = append(lines, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(lines, "\n")
}
