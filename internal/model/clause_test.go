package model

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"
)

func ids(l ClauseList) string { return strings.Join(l.IDs(), ",") }

func TestReorder_MovingUpLandsBeforeTarget(t *testing.T) {
	got := DefaultClauses().Reorder("commission", "rent")
	if got[0].ID != "commission" || got[1].ID != "rent" {
		t.Fatalf("unexpected order: %s", ids(got))
	}
}

func TestReorder_MovingDownLandsAfterTarget(t *testing.T) {
	got := DefaultClauses().Reorder("rent", "ti")
	want := "term,ti,rent,nnn,options,dd,assignment,signage,commission"
	if ids(got) != want {
		t.Fatalf("got %s want %s", ids(got), want)
	}
}

func TestReorder_AdjacentBothDirections(t *testing.T) {
	l := ClauseList{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	cases := []struct {
		moving, target, want string
	}{
		{"a", "b", "b,a,c"},
		{"b", "a", "b,a,c"},
		{"b", "c", "a,c,b"},
		{"c", "b", "a,c,b"},
		{"a", "c", "b,c,a"},
		{"c", "a", "c,a,b"},
	}
	for _, tc := range cases {
		if got := ids(l.Reorder(tc.moving, tc.target)); got != tc.want {
			t.Errorf("Reorder(%s,%s) = %s, want %s", tc.moving, tc.target, got, tc.want)
		}
	}
}

func TestReorder_ThenReverseRestoresAdjacentSwap(t *testing.T) {
	l := DefaultClauses()
	once := l.Reorder("term", "ti")
	if ids(once) != "rent,ti,term,nnn,options,dd,assignment,signage,commission" {
		t.Fatalf("unexpected: %s", ids(once))
	}
	if back := once.Reorder("ti", "term"); ids(back) != ids(l) {
		t.Fatalf("moving ti back down: got %s", ids(back))
	}
	if back := once.Reorder("term", "ti"); ids(back) != ids(l) {
		t.Fatalf("moving term back up: got %s", ids(back))
	}
}

func TestReorder_PreservesMembership(t *testing.T) {
	l := DefaultClauses()
	for _, a := range l.IDs() {
		for _, b := range l.IDs() {
			got := l.Reorder(a, b)
			if len(got) != len(l) {
				t.Fatalf("Reorder(%s,%s) changed length: %d", a, b, len(got))
			}
			want := append([]Clause(nil), l...)
			have := append([]Clause(nil), got...)
			sort.Slice(want, func(i, j int) bool { return want[i].ID < want[j].ID })
			sort.Slice(have, func(i, j int) bool { return have[i].ID < have[j].ID })
			if !reflect.DeepEqual(want, have) {
				t.Fatalf("Reorder(%s,%s) is not a permutation", a, b)
			}
		}
	}
}

func TestReorder_NoOps(t *testing.T) {
	l := DefaultClauses()
	for _, tc := range [][2]string{{"rent", "rent"}, {"nope", "rent"}, {"rent", "nope"}, {"", ""}} {
		if got := l.Reorder(tc[0], tc[1]); !reflect.DeepEqual(got, l) {
			t.Fatalf("Reorder(%q,%q) should be a no-op, got %s", tc[0], tc[1], ids(got))
		}
	}
}

func TestReorder_DoesNotMutateReceiver(t *testing.T) {
	l := DefaultClauses()
	before := ids(l)
	_ = l.Reorder("commission", "rent")
	if ids(l) != before {
		t.Fatalf("receiver mutated: %s", ids(l))
	}
}

func TestSetIncluded_KeepsOrder(t *testing.T) {
	l := DefaultClauses()
	for _, id := range l.IDs() {
		for _, v := range []bool{true, false} {
			got, ok := l.SetIncluded(id, v)
			if !ok {
				t.Fatalf("expected %s to be found", id)
			}
			if ids(got) != ids(l) {
				t.Fatalf("SetIncluded(%s,%v) reordered: %s", id, v, ids(got))
			}
			c, _, _ := got.Find(id)
			if c.Included != v {
				t.Fatalf("SetIncluded(%s,%v) not applied", id, v)
			}
		}
	}
}

func TestUnknownID_LeavesListUnchanged(t *testing.T) {
	l := DefaultClauses()
	got, ok := l.SetIncluded("nonexistent", true)
	if ok || !reflect.DeepEqual(got, l) {
		t.Fatalf("SetIncluded on unknown id changed list (ok=%v)", ok)
	}
	got, ok = l.SetBody("nonexistent", "x")
	if ok || !reflect.DeepEqual(got, l) {
		t.Fatalf("SetBody on unknown id changed list (ok=%v)", ok)
	}
}

func TestSetBody_OnlyBodyChanges(t *testing.T) {
	l := DefaultClauses()
	got, ok := l.SetBody("ti", "Allowance of $40 per RSF.")
	if !ok {
		t.Fatal("expected ti to be found")
	}
	c, i, _ := got.Find("ti")
	orig := l[i]
	if c.Body != "Allowance of $40 per RSF." || c.Title != orig.Title || c.Included != orig.Included || c.ID != orig.ID {
		t.Fatalf("unexpected clause: %+v", c)
	}
	if l[i].Body == c.Body {
		t.Fatal("receiver mutated")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultClauses().Validate(); err != nil {
		t.Fatalf("seed should validate: %v", err)
	}
	if err := (ClauseList{{ID: "a"}, {ID: "a"}}).Validate(); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if err := (ClauseList{{ID: " "}}).Validate(); !errors.Is(err, ErrEmptyID) {
		t.Fatalf("expected ErrEmptyID, got %v", err)
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("short", 80); got != "short" {
		t.Fatalf("got %q", got)
	}
	long := strings.Repeat("x", 100)
	got := Excerpt(long, 80)
	if got != strings.Repeat("x", 80)+"…" {
		t.Fatalf("got %q", got)
	}
}

func TestDefaultClauses_Seed(t *testing.T) {
	l := DefaultClauses()
	if len(l) != 9 {
		t.Fatalf("expected 9 clauses, got %d", len(l))
	}
	if a, _, _ := l.Find("assignment"); a.Included {
		t.Fatal("assignment should be excluded by default")
	}
	if n := len(l.Included()); n != 8 {
		t.Fatalf("expected 8 included clauses, got %d", n)
	}
	l[0].Title = "changed"
	if DefaultClauses()[0].Title != "Base Rent" {
		t.Fatal("DefaultClauses must return a fresh copy")
	}
}
