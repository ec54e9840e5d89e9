package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var numbered = regexp.MustCompile(`(?m)^(\d+)\. (.+)$`)

func previewItems(t *testing.T, doc string) []string {
	t.Helper()
	var titles []string
	for i, m := range numbered.FindAllStringSubmatch(doc, -1) {
		n, _ := strconv.Atoi(m[1])
		if n != i+1 {
			t.Fatalf("item %q numbered %d, want %d", m[2], n, i+1)
		}
		titles = append(titles, m[2])
	}
	return titles
}

func TestGeneratePreview_DefaultSeed(t *testing.T) {
	doc := GeneratePreview(DefaultDeal(), DefaultClauses())
	prefix := "LETTER OF INTENT\n\nTenant: Acme Retail LLC\nLocation: 123 Main Street, Orlando FL\n\n1. Base Rent\n\n"
	if !strings.HasPrefix(doc, prefix) {
		t.Fatalf("unexpected prefix:\n%s", doc)
	}
	if strings.Contains(doc, "Assignment/Subletting") {
		t.Fatal("excluded clause leaked into preview")
	}
	if !strings.Contains(doc, "7. Signage\n\n") {
		t.Fatalf("signage should be item 7:\n%s", doc)
	}
	if !strings.HasSuffix(doc, "\n\nSincerely,\nLOIDraft by Intenra") {
		t.Fatalf("unexpected closing:\n%s", doc)
	}
	if got := len(previewItems(t, doc)); got != 8 {
		t.Fatalf("expected 8 items, got %d", got)
	}
}

func TestGeneratePreview_ReorderCommissionFirst(t *testing.T) {
	doc := GeneratePreview(DefaultDeal(), DefaultClauses().Reorder("commission", "rent"))
	items := previewItems(t, doc)
	if items[0] != "Commission" || items[1] != "Base Rent" {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestGeneratePreview_ExcludeRentShiftsNumbers(t *testing.T) {
	l, _ := DefaultClauses().SetIncluded("rent", false)
	doc := GeneratePreview(DefaultDeal(), l)
	if strings.Contains(doc, "Base Rent") {
		t.Fatal("Base Rent should be absent")
	}
	if !strings.Contains(doc, "1. Term\n") {
		t.Fatalf("Term should shift to 1:\n%s", doc)
	}
	if !strings.Contains(doc, "6. Signage\n") {
		t.Fatalf("Signage should shift to 6:\n%s", doc)
	}
}

func TestGeneratePreview_RenumbersIncludedOnly(t *testing.T) {
	l := ClauseList{
		{ID: "a", Title: "A", Body: "a", Included: false},
		{ID: "b", Title: "B", Body: "b", Included: true},
		{ID: "c", Title: "C", Body: "c", Included: false},
		{ID: "d", Title: "D", Body: "d", Included: true},
		{ID: "e", Title: "E", Body: "e", Included: true},
	}
	items := previewItems(t, GeneratePreview(DealContext{}, l))
	if fmt.Sprint(items) != "[B D E]" {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestGeneratePreview_IdempotentAndPure(t *testing.T) {
	deal := DefaultDeal()
	l := DefaultClauses()
	snapshot := ids(l)
	a := GeneratePreview(deal, l)
	b := GeneratePreview(deal, l)
	if a != b {
		t.Fatal("preview is not idempotent")
	}
	if ids(l) != snapshot || deal != DefaultDeal() {
		t.Fatal("preview mutated its inputs")
	}
}

func TestGeneratePreview_EmptyFieldsAndNoClauses(t *testing.T) {
	doc := GeneratePreview(DealContext{}, ClauseList{{ID: "x", Title: "X", Included: false}})
	want := "LETTER OF INTENT\n\nTenant: \nLocation: \n\n\n\nSincerely,\n"
	if doc != want {
		t.Fatalf("got %q want %q", doc, want)
	}
}
