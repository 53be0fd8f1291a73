package words

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
)

// Required source columns. Column order in the file does not matter;
// the header row decides.
const (
	colWord     = "word"
	colPOS      = "pos_title"
	colOptional = "optional_category"
)

// SourceError reports a missing or malformed word-list source. It is
// fatal at session start: without a word set there is nothing to review.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("word source %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// LoadOptions configures a Load call.
type LoadOptions struct {
	// KeepOptional retains entries flagged as optional_category.
	// Default is to drop them.
	KeepOptional bool

	// Seed fixes the shuffle permutation when non-zero. Zero means a
	// fresh random order per load, which is the normal session behavior.
	Seed int64
}

// Load reads every entry from the CSV file at path, filters optional
// categories unless opts.KeepOptional is set, and returns the entries
// in a uniform random order. The resulting Set is fixed for the session;
// a new order requires a new Load.
func Load(path string, opts LoadOptions) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()

	entries, err := parse(f, opts.KeepOptional)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}

	shuffle(entries, opts.Seed)
	return NewSet(entries), nil
}

// parse reads CSV rows into entries, applying the optional-category
// filter. The first row must be a header naming the required columns.
func parse(r io.Reader, keepOptional bool) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{colWord, colPOS, colOptional} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var entries []Entry
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		optional, err := parseBoolCell(record[idx[colOptional]])
		if err != nil {
			return nil, fmt.Errorf("line %d: column %s: %w", line, colOptional, err)
		}
		if optional && !keepOptional {
			continue
		}

		entries = append(entries, Entry{
			Word:         strings.TrimSpace(record[idx[colWord]]),
			PartOfSpeech: strings.TrimSpace(record[idx[colPOS]]),
			Optional:     optional,
		})
	}

	return entries, nil
}

// parseBoolCell accepts the usual boolean spellings plus an empty cell,
// which dictionary exports use for "not optional".
func parseBoolCell(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(strings.ToLower(s))
}

// shuffle applies a uniform random permutation in place. A non-zero
// seed makes the permutation reproducible for tests.
func shuffle(entries []Entry, seed int64) {
	if seed != 0 {
		rng := rand.New(rand.NewPCG(uint64(seed), 0))
		rng.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
		return
	}
	rand.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
}
