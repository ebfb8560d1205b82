package richtext

import (
	"strings"
	"testing"
)

func TestSanitize_KeepsSubsetAndStripsAttributes(t *testing.T) {
	input := `<p class="lead" onclick="x()">Hi <strong style="color:red">there</strong></p><ul><li>A</li></ul>`
	got := Sanitize(input)
	want := `<p>Hi <strong>there</strong></p><ul><li>A</li></ul>`
	if got != want {
		t.Fatalf("sanitize mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestSanitize_RemovesScriptsAndUnwrapsUnknownTags(t *testing.T) {
	got := Sanitize(`<script>alert('x')</script><em>keep</em><a href="javascript:x">link</a>`)
	if strings.Contains(got, "script") || strings.Contains(got, "alert") {
		t.Fatalf("expected script removed, got %q", got)
	}
	if got != "keeplink" {
		t.Fatalf("expected unwrapped text, got %q", got)
	}
}

func TestSanitize_Empty(t *testing.T) {
	if got := Sanitize("   "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
