package pdftext

import (
	"reflect"
	"testing"

	"github.com/tmcgee/glossdex/internal/fragment"
	pdflib "github.com/ledongthuc/pdf"
)

func run(s, font string, size float64) pdflib.Text {
	return pdflib.Text{S: s, Font: font, FontSize: size}
}

func TestMergeRuns_CoalescesSameStyle(t *testing.T) {
	texts := []pdflib.Text{
		run("GLO", "Banner", 28),
		run("SSA", "Banner", 28),
		run("RY", "Banner", 28),
	}
	got := mergeRuns(texts)
	want := []fragment.TextFragment{{Text: "GLOSSARY", FontID: "Banner", Height: 28}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMergeRuns_SplitsOnFontChange(t *testing.T) {
	texts := []pdflib.Text{
		run("ABILITIES", "Title", 20),
		run("A power ", "Body", 10),
		run("a character may use.", "Body", 10),
	}
	got := mergeRuns(texts)
	want := []fragment.TextFragment{
		{Text: "ABILITIES", FontID: "Title", Height: 20},
		{Text: "A power a character may use.", FontID: "Body", Height: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMergeRuns_SplitsOnSizeChange(t *testing.T) {
	// Same font at a different size is a different run: the height feeds the
	// title threshold, so it must survive merging.
	texts := []pdflib.Text{
		run("HEADING", "Serif", 20),
		run("body in the same face", "Serif", 10),
	}
	got := mergeRuns(texts)
	if len(got) != 2 {
		t.Fatalf("expected 2 fragments, got %d: %v", len(got), got)
	}
	if got[0].Height != 20 || got[1].Height != 10 {
		t.Errorf("expected heights preserved per run, got %v", got)
	}
}

func TestMergeRuns_Empty(t *testing.T) {
	if got := mergeRuns(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
