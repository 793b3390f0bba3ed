package baseline

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/tidwall/gjson"
)

// ErrMalformedDocument is returned when the baseline bytes are not a menu document.
var ErrMalformedDocument = errors.New("malformed menu document")

// TimestampLayout matches the ISO-8601 form with millisecond precision used by the document.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Document is the baseline menu document.
type Document struct {
	Menu        []string
	LastUpdated time.Time
}

type wireDocument struct {
	Menu        []string `json:"menu"`
	LastUpdated string   `json:"lastUpdated"`
}

// NewDocument builds a document for dishes stamped with now.
func NewDocument(dishes []string, now time.Time) *Document {
	return &Document{
		Menu:        slices.Clone(dishes),
		LastUpdated: now.UTC(),
	}
}

// MarshalJSON encodes the document in its wire format.
func (d Document) MarshalJSON() ([]byte, error) {
	w := wireDocument{Menu: d.Menu, LastUpdated: d.LastUpdated.UTC().Format(TimestampLayout)}
	if w.Menu == nil {
		w.Menu = []string{}
	}
	return json.Marshal(w)
}

// Encode returns the document indented with two spaces, ready to be saved as the new baseline.
func (d *Document) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode menu document: %w", err)
	}
	return data, nil
}

// ParseDocument decodes a baseline document.
// A missing "menu" field yields an empty menu; non-string entries are skipped.
// An unparsable "lastUpdated" leaves LastUpdated zero.
func ParseDocument(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformedDocument
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformedDocument)
	}

	doc := &Document{Menu: []string{}}

	menuField := root.Get("menu")
	if menuField.Exists() && menuField.Type != gjson.Null {
		if !menuField.IsArray() {
			return nil, fmt.Errorf("%w: menu is not an array", ErrMalformedDocument)
		}
		menuField.ForEach(func(_, v gjson.Result) bool {
			if v.Type == gjson.String {
				doc.Menu = append(doc.Menu, v.String())
			}
			return true
		})
	}

	if ts := root.Get("lastUpdated"); ts.Type == gjson.String {
		if t, err := time.Parse(time.RFC3339Nano, ts.String()); err == nil {
			doc.LastUpdated = t.UTC()
		}
	}

	return doc, nil
}
