package richtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseStyle(t *testing.T) {
	got := ParseStyle(" Color: #333; font-size:12px ;broken; :x; margin: ")
	want := Style{"color": "#333", "font-size": "12px"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("style mismatch (-want +got):\n%s", diff)
	}
	if ParseStyle("") != nil {
		t.Fatal("expected nil style for empty input")
	}
}

func TestStyleRoundTrip(t *testing.T) {
	style := Style{"font-size": "12px", "color": "#333"}
	if diff := cmp.Diff(style, ParseStyle(style.String())); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
