package diag

import (
	"testing"

	"glassful/internal/source"
)

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(0)
	r := BagReporter{Bag: bag}

	r.Report(GlsInfo, SevWarning, source.Span{}, "just a warning", nil)
	if bag.HasErrors() {
		t.Fatal("warning must not count as error")
	}
	if !bag.HasWarnings() {
		t.Fatal("expected warning")
	}

	ReportError(r, GlsVisibility, source.Span{Start: 1, End: 4}, "`pub` visibility has no meaning")
	if !bag.HasErrors() {
		t.Fatal("expected error after ReportError")
	}
	if got := bag.Messages(); len(got) != 2 || got[1] != "`pub` visibility has no meaning" {
		t.Fatalf("unexpected messages: %v", got)
	}
}

func TestBagLimitKeepsErrorState(t *testing.T) {
	bag := NewBag(1)
	bag.Add(New(SevWarning, GlsInfo, source.Span{}, "w"))
	if bag.Add(NewError(GlsUnsupportedExpr, source.Span{}, "e")) {
		t.Fatal("bag over limit must reject")
	}
	if bag.Len() != 1 || bag.Dropped() != 1 {
		t.Fatalf("len=%d dropped=%d", bag.Len(), bag.Dropped())
	}
	if !bag.HasErrors() {
		t.Fatal("dropped error must still abort the call")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(0)
	bag.Add(NewError(GlsUnsupportedType, source.Span{Start: 10, End: 12}, "b"))
	bag.Add(New(SevWarning, GlsInfo, source.Span{Start: 2, End: 3}, "w"))
	bag.Add(NewError(GlsVisibility, source.Span{Start: 2, End: 3}, "a"))
	bag.Sort()
	got := bag.Messages()
	want := []string{"a", "w", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexBadNumber:       "LEX1004",
		SynUnexpectedToken: "SYN2001",
		MacUndefined:       "MAC2501",
		GlsVisibility:      "GLS3001",
		IOLoadFileError:    "IO4001",
		BugMacroSurvived:   "BUG9001",
		Code(42):           "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}
