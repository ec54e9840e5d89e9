package jsonstore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Makepad-fr/loidraft/internal/model"
)

func TestEncodeThenLoadKeepsOrder(t *testing.T) {
	seed := model.DefaultClauses().Reorder("commission", "rent")
	var buf bytes.Buffer
	if err := Encode(&buf, seed); err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "clauses.json")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, seed) {
		t.Fatalf("round trip mismatch: %v", got.IDs())
	}
}

func TestDecodeRejectsBadSets(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"duplicate", `[{"id":"a","title":"A"},{"id":"a","title":"B"}]`, model.ErrDuplicateID},
		{"empty id", `[{"id":"","title":"A"}]`, model.ErrEmptyID},
		{"empty", `[]`, ErrEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tc.in)); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if _, err := Decode(strings.NewReader(`[{"id":"a","colour":"red"}]`)); err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
