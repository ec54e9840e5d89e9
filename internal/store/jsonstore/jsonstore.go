package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Makepad-fr/loidraft/internal/model"
)

// JSON clause sets. Read-only input for the non-interactive preview; the
// drafting session itself is never written back.

var ErrEmpty = errors.New("clause set is empty")

// Load reads an ordered clause list from path and checks it is well formed.
func Load(path string) (model.ClauseList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clause set: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a JSON array of clauses.
func Decode(r io.Reader) (model.ClauseList, error) {
	var clauses model.ClauseList
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&clauses); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	if len(clauses) == 0 {
		return nil, ErrEmpty
	}
	if err := clauses.Validate(); err != nil {
		return nil, err
	}
	return clauses, nil
}

// Encode writes clauses as indented JSON, in list order.
func Encode(w io.Writer, clauses model.ClauseList) error {
	b, err := json.MarshalIndent(clauses, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(b)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
