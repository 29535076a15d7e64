package puzzle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/puzzlecut/puzzlecut/pkg/errors"
)

// Marshal converts a puzzle to pretty-printed JSON bytes.
func Marshal(p *Puzzle) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes JSON bytes to a Puzzle and validates its structure.
func Unmarshal(data []byte) (*Puzzle, error) {
	return readFrom(bytes.NewReader(data))
}

// WriteFile writes a puzzle to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(p *Puzzle, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(p, f)
}

// Write writes a puzzle as JSON to an io.Writer.
func Write(p *Puzzle, w io.Writer) error {
	return writeTo(p, w)
}

// ReadFile reads a JSON file and returns the decoded puzzle.
func ReadFile(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

// Read decodes a JSON puzzle from an io.Reader.
func Read(r io.Reader) (*Puzzle, error) {
	return readFrom(r)
}

func writeTo(p *Puzzle, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (*Puzzle, error) {
	var p Puzzle
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPuzzle, err, "decode puzzle")
	}
	if err := validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// validate checks the decoded document's structural integrity.
func validate(p *Puzzle) error {
	if err := errors.ValidateGridDimensions(p.Rows, p.Cols); err != nil {
		return err
	}
	if err := errors.ValidateImageDimensions(p.ImageWidth, p.ImageHeight); err != nil {
		return err
	}
	if want := p.Rows * p.Cols; len(p.Pieces) != want {
		return errors.New(errors.ErrCodeInvalidPuzzle,
			"piece count %d does not match %dx%d grid", len(p.Pieces), p.Rows, p.Cols)
	}
	// PieceAt indexes pieces row-major, so each must sit at its own slot.
	for i := range p.Pieces {
		if row, col := i/p.Cols, i%p.Cols; p.Pieces[i].Row != row || p.Pieces[i].Col != col {
			return errors.New(errors.ErrCodeInvalidPuzzle,
				"piece %d is (%d,%d), want (%d,%d)", i, p.Pieces[i].Row, p.Pieces[i].Col, row, col)
		}
	}
	return nil
}
