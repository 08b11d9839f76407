package controllerImp

import (
	"strings"
	"testing"
)

const samplePage = `<!doctype html>
<html>
<head><title>Growing Pea Shoots Indoors</title></head>
<body>
<nav><a href="/">Home</a><a href="/shop">Shop</a></nav>
<main>
  <h1>Growing Pea Shoots</h1>
  <p>Soak the seeds for 24 hours before sowing.</p>
  <ul><li>Keep trays in blackout for three days.</li></ul>
  <script>trackPageView();</script>
</main>
<footer><p>Newsletter signup</p></footer>
</body>
</html>`

func TestExtractMainText(t *testing.T) {
	text, title, err := ExtractMainText(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("ExtractMainText: %v", err)
	}
	if title != "Growing Pea Shoots Indoors" {
		t.Errorf("title = %q", title)
	}
	for _, want := range []string{
		"Growing Pea Shoots",
		"Soak the seeds for 24 hours before sowing.",
		"Keep trays in blackout for three days.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q\ngot:\n%s", want, text)
		}
	}
	// nav and footer are outside main and must not leak in
	for _, reject := range []string{"Newsletter signup", "trackPageView"} {
		if strings.Contains(text, reject) {
			t.Errorf("text contains %q", reject)
		}
	}
}

func TestExtractMainTextNoMainFallsBack(t *testing.T) {
	page := `<html><head><title>Plain</title></head><body><p>Just a paragraph.</p></body></html>`
	text, title, err := ExtractMainText(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ExtractMainText: %v", err)
	}
	if title != "Plain" || !strings.Contains(text, "Just a paragraph.") {
		t.Errorf("title=%q text=%q", title, text)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("  A Guide\nsecond line"); got != "A Guide" {
		t.Errorf("firstLine = %q", got)
	}
	long := strings.Repeat("x", 200)
	if got := firstLine(long); len(got) != 120 {
		t.Errorf("truncated len = %d", len(got))
	}
}
