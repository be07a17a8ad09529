// Package wordlist loads practice words from JSON word list files.
package wordlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/verte-zerg/kanatype/internal/model"
)

// Delimiter separates the word from its reading in a combined record string.
const Delimiter = "◴"

// ErrEmptyWordList is returned when no record is enabled.
var ErrEmptyWordList = errors.New("word list is empty")

// Record is a raw word list entry: the combined string and its status flag.
type Record struct {
	Combined string
	Status   float64
}

// UnmarshalJSON decodes a two element array ["word◴reading", status].
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("expected [text, status], got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &r.Combined); err != nil {
		return fmt.Errorf("text: %w", err)
	}
	if err := json.Unmarshal(raw[1], &r.Status); err != nil {
		return fmt.Errorf("status: %w", err)
	}
	return nil
}

// Split separates the combined string into word and reading, both in NFC form.
func (r Record) Split() (model.WordEntry, error) {
	parts := strings.Split(norm.NFC.String(r.Combined), Delimiter)
	if len(parts) != 2 {
		return model.WordEntry{}, fmt.Errorf("%q must contain exactly one %q", r.Combined, Delimiter)
	}
	if parts[0] == "" {
		return model.WordEntry{}, fmt.Errorf("%q has an empty word", r.Combined)
	}
	if parts[1] == "" {
		return model.WordEntry{}, fmt.Errorf("%q has an empty reading", r.Combined)
	}
	return model.WordEntry{Word: parts[0], Reading: parts[1]}, nil
}

// ParseRecords decodes every record without filtering on status.
func ParseRecords(r io.Reader) ([]Record, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode word list: %w", err)
	}
	records := make([]Record, len(raw))
	for i, item := range raw {
		if err := json.Unmarshal(item, &records[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, err := records[i].Split(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return records, nil
}

// Parse decodes a word list and keeps the records whose status is positive.
func Parse(r io.Reader) ([]model.WordEntry, error) {
	records, err := ParseRecords(r)
	if err != nil {
		return nil, err
	}
	var entries []model.WordEntry
	for _, rec := range records {
		if rec.Status <= 0 {
			continue
		}
		entry, err := rec.Split()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyWordList
	}
	return entries, nil
}

// LoadWords reads the word list at path.
func LoadWords(path string) ([]model.WordEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return Parse(file)
}

// LoadRecords reads all records at path, including disabled ones.
func LoadRecords(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return ParseRecords(file)
}
