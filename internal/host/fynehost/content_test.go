package fynehost

import (
	"testing"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		res  resource
		want contentKind
	}{
		{name: "markdown_ext", res: resource{name: "splash.md", data: []byte("# Loading")}, want: kindMarkdown},
		{name: "markdown_mime", res: resource{name: "splash", mime: "text/markdown", data: []byte("# Loading")}, want: kindMarkdown},
		{name: "html_ext", res: resource{name: "splash.html", mime: "text/html", data: []byte("<p>hi</p>")}, want: kindHTML},
		{name: "html_sniffed", res: resource{name: "example.com", data: []byte("<!DOCTYPE html><html><body>hi</body></html>")}, want: kindHTML},
		{name: "png_sniffed", res: resource{name: "logo", mime: "application/octet-stream", data: pngHeader}, want: kindImage},
		{name: "png_mime", res: resource{name: "logo.png", mime: "image/png", data: pngHeader}, want: kindImage},
		{name: "plain", res: resource{name: "notes.txt", mime: "text/plain", data: []byte("hello")}, want: kindText},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := classify(test.res); got != test.want {
				t.Errorf("unexpected kind: got:%d want:%d", got, test.want)
			}
		})
	}
}

func TestHTMLText(t *testing.T) {
	const doc = `<!DOCTYPE html>
<html>
<head><title>Splash</title><style>body { color: red; }</style></head>
<body>
  <h1>Loading</h1>
  <script>console.log("ignored")</script>
  <p>Please   wait
  a moment.</p>
</body>
</html>`

	got := htmlText([]byte(doc))
	want := "Loading\nPlease wait a moment."
	if got != want {
		t.Errorf("unexpected text:\ngot: %q\nwant:%q", got, want)
	}
}
