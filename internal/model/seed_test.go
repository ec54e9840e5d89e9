package model

import (
	"strings"
	"testing"
)

func TestDefaultClausesSeed(t *testing.T) {
	l := DefaultClauses()
	if got := ids(l); got != "rent,term,ti,nnn,options,dd,assignment,signage,commission" {
		t.Fatalf("unexpected seed order %s", got)
	}
	for _, c := range l {
		if c.Included != (c.ID != "assignment") {
			t.Fatalf("%s: unexpected included=%t", c.ID, c.Included)
		}
	}
	// U+2011 non-breaking hyphen, kept verbatim
	opts, _, _ := l.Find("options")
	if !strings.Contains(opts.Body, "then‑market") {
		t.Fatalf("options body changed: %q", opts.Body)
	}
	l[0].Body = "mutated"
	if DefaultClauses()[0].Body == "mutated" {
		t.Fatal("DefaultClauses must return a fresh copy")
	}
}
