package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Layouts accepted for timestamps sent as strings: ISO 8601 from
// Date.toISOString, RFC 1123 from Date.toUTCString, a bare date, and the
// Date.toString form once its zone name is cut off.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
}

// ParseTimestamp reads a stored or posted timestamp. Numbers are epoch
// milliseconds.
func ParseTimestamp(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), true
	case primitive.DateTime:
		return t.Time().UTC(), true
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC(), true
	case string:
		return parseTimeString(t)
	case json.Number:
		if ms, err := t.Int64(); err == nil {
			return time.UnixMilli(ms).UTC(), true
		}
		if f, err := t.Float64(); err == nil {
			return time.UnixMilli(int64(f)).UTC(), true
		}
	case float64:
		return time.UnixMilli(int64(t)).UTC(), true
	case int64:
		return time.UnixMilli(t).UTC(), true
	case int32:
		return time.UnixMilli(int64(t)).UTC(), true
	}
	return time.Time{}, false
}

func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, " ("); i > 0 {
		s = s[:i]
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Quantity is an item count. Clients and older documents send it as a
// number or as a string holding one.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	v, err := decodeJSON(data)
	if err != nil {
		return err
	}
	n, ok := wholeNumber(v)
	if !ok {
		return fmt.Errorf("quantity %s is not a whole number", data)
	}
	*q = Quantity(n)
	return nil
}

// UnmarshalBSONValue never fails; stored values that are not whole numbers
// read as 0 so one odd order does not break a listing.
func (q *Quantity) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	var v interface{}
	switch t {
	case bsontype.Int32:
		v = int64(raw.Int32())
	case bsontype.Int64:
		v = raw.Int64()
	case bsontype.Double:
		v = raw.Double()
	case bsontype.String:
		v = raw.StringValue()
	}

	n, _ := wholeNumber(v)
	*q = Quantity(n)
	return nil
}

func wholeNumber(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case float64:
		if n == math.Trunc(n) {
			return int64(n), true
		}
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

// decodeJSON decodes a JSON value keeping integers integral, so that posted
// documents are stored with the number types a client driver would use.
func decodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeJSON(v), nil
}

func normalizeJSON(v interface{}) interface{} {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			if i >= math.MinInt32 && i <= math.MaxInt32 {
				return int32(i)
			}
			return i
		}
		f, _ := t.Float64()
		return f
	case map[string]interface{}:
		doc := make(bson.M, len(t))
		for k, val := range t {
			doc[k] = normalizeJSON(val)
		}
		return doc
	case []interface{}:
		for i, val := range t {
			t[i] = normalizeJSON(val)
		}
		return bson.A(t)
	}
	return v
}
