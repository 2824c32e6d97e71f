// Package source reads share records and turns them into shamir shares.
//
// A record is a JSON object with a "keys" entry holding the share count n
// and threshold k, plus one entry per share keyed by its 1-based index:
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2", "value": "111"}
//	}
//
// "base" may be a JSON string or number. Shares may be missing; malformed
// shares are reported individually and never abort decoding.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/izouxv/hashira/radix"
	"github.com/izouxv/hashira/shamir"
	"github.com/izouxv/hashira/utils"
)

var (
	// ErrInvalidRecord is returned when the input is not a JSON object.
	ErrInvalidRecord = errors.New("invalid share record")
	// ErrInvalidKeys is returned when "keys" is missing or n and k are inconsistent.
	ErrInvalidKeys = errors.New("invalid keys: need 1 <= k <= n")
	// ErrMissingField is returned for a share without a base or value.
	ErrMissingField = errors.New("missing field")
	// ErrNegativeValue is returned when encoding a share with a negative Y.
	ErrNegativeValue = errors.New("share values must be non-negative")
)

const keysField = "keys"

// Entry is one raw share as it appears in a record.
type Entry struct {
	Index int
	Base  string
	Value string
	// Err is set when the entry is structurally malformed.
	Err error
}

// Record is a parsed share record. Entries are sorted by index.
type Record struct {
	N       int
	K       int
	Entries []Entry
}

type keys struct {
	N *int `json:"n"`
	K *int `json:"k"`
}

type rawShare struct {
	Base  json.RawMessage `json:"base"`
	Value *string         `json:"value"`
}

// Load reads a record from path, or from stdin when path is "" or "-".
func Load(path string) (*Record, error) {
	if path == "" || path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a record from r.
func Parse(r io.Reader) (*Record, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	rawKeys, ok := fields[keysField]
	if !ok {
		return nil, fmt.Errorf("%w: no %q object", ErrInvalidKeys, keysField)
	}
	var k keys
	if err := json.Unmarshal(rawKeys, &k); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeys, err)
	}
	if k.N == nil || k.K == nil || *k.K < 1 || *k.N < *k.K {
		return nil, ErrInvalidKeys
	}

	rec := &Record{N: *k.N, K: *k.K}
	for name, raw := range fields {
		index, err := strconv.Atoi(name)
		if err != nil || index < 1 || index > rec.N || strconv.Itoa(index) != name {
			continue
		}
		rec.Entries = append(rec.Entries, parseEntry(index, raw))
	}
	sort.Slice(rec.Entries, func(i, j int) bool {
		return rec.Entries[i].Index < rec.Entries[j].Index
	})
	return rec, nil
}

func parseEntry(index int, raw json.RawMessage) Entry {
	e := Entry{Index: index}
	var rs rawShare
	if err := json.Unmarshal(raw, &rs); err != nil {
		e.Err = fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		return e
	}
	if rs.Value == nil {
		e.Err = fmt.Errorf("%w: value", ErrMissingField)
		return e
	}
	e.Value = *rs.Value

	base := bytes.TrimSpace(rs.Base)
	switch {
	case len(base) == 0 || bytes.Equal(base, []byte("null")):
		e.Err = fmt.Errorf("%w: base", ErrMissingField)
	case base[0] == '"':
		if err := json.Unmarshal(base, &e.Base); err != nil {
			e.Err = fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
	default:
		var n json.Number
		if err := json.Unmarshal(base, &n); err != nil {
			e.Err = fmt.Errorf("%w: base: %v", ErrInvalidRecord, err)
		}
		e.Base = n.String()
	}
	return e
}

// ShareError reports why one share was dropped.
type ShareError struct {
	Index int
	Err   error
}

func (e *ShareError) Error() string {
	return fmt.Sprintf("share %d: %v", e.Index, e.Err)
}

func (e *ShareError) Unwrap() error {
	return e.Err
}

// Decode converts every well-formed entry of rec into a share. Entries that
// are malformed or fail radix decoding are skipped and returned as
// ShareErrors.
func Decode(rec *Record, logger zerolog.Logger) ([]shamir.Share, []*ShareError) {
	logger = utils.Layer(logger, utils.LayerSource)

	shares := make([]shamir.Share, 0, len(rec.Entries))
	var failures []*ShareError
	for _, e := range rec.Entries {
		share, err := decodeEntry(e)
		if err != nil {
			logger.Warn().Int("index", e.Index).Err(err).Msg("Skipping share")
			failures = append(failures, &ShareError{Index: e.Index, Err: err})
			continue
		}
		shares = append(shares, share)
	}

	logger.Info().
		Int("n", rec.N).
		Int("k", rec.K).
		Int("valid", len(shares)).
		Int("skipped", len(failures)).
		Msg("Decoded shares")
	return shares, failures
}

func decodeEntry(e Entry) (shamir.Share, error) {
	if e.Err != nil {
		return shamir.Share{}, e.Err
	}
	base, err := radix.ParseBase(e.Base)
	if err != nil {
		return shamir.Share{}, err
	}
	y, err := radix.Decode(e.Value, base)
	if err != nil {
		return shamir.Share{}, err
	}
	return shamir.NewShare(e.Index, y), nil
}

// Encode writes shares as a record with the given n and k, every value in
// the given base. Share X values must be positive machine-sized integers
// and Y values non-negative.
func Encode(n, k int, shares []shamir.Share, base int) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	fmt.Fprintf(&buf, "  %q: {\"n\": %d, \"k\": %d}", keysField, n, k)
	for _, s := range shares {
		index, err := strconv.Atoi(s.X.String())
		if err != nil || index < 1 {
			return nil, fmt.Errorf("share index %s is not a positive integer", s.X)
		}
		if s.Y.Sign() < 0 {
			return nil, fmt.Errorf("%w: share %d", ErrNegativeValue, index)
		}
		value, err := radix.Encode(s.Y, base)
		if err != nil {
			return nil, err
		}
		entry, err := json.Marshal(struct {
			Base  string `json:"base"`
			Value string `json:"value"`
		}{strconv.Itoa(base), value})
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, ",\n  \"%d\": %s", index, entry)
	}
	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}
