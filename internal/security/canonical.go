package security

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// bodyMethods are the HTTP methods whose payload participates in the
// canonical string.
var bodyMethods = map[string]bool{
	"POST":   true,
	"PUT":    true,
	"PATCH":  true,
	"DELETE": true,
}

// SortKeysDeep normalizes a decoded JSON value so that two payloads that
// differ only in object key order serialize to the same bytes. Object keys
// are sorted lexicographically at every nesting level; array element order
// is preserved; scalars pass through unchanged.
func SortKeysDeep(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = SortKeysDeep(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = SortKeysDeep(val)
		}
		return out
	default:
		return v
	}
}

// encodeCanonicalJSON writes v with object keys in sorted order. Numbers
// decoded via json.Number keep the literal the sender produced, so both
// sides serialize the same logical payload to identical bytes.
func encodeCanonicalJSON(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := encodeCanonicalJSON(buf, t[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeCanonicalJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case json.Number:
		buf.WriteString(t.String())
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	return nil
}

// CanonicalJSON returns the sorted-key serialization of a raw JSON payload.
func CanonicalJSON(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("canonical json: %w", err)
	}
	var buf bytes.Buffer
	if err := encodeCanonicalJSON(&buf, SortKeysDeep(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BodyDigest computes the body field of the canonical string. A body exists
// only when the method carries one AND the raw payload is non-empty; every
// other case yields the empty string. The emptiness check runs on the raw
// bytes, before any parsing, so an empty POST never digests as "{}".
func BodyDigest(raw []byte, method string) (string, error) {
	if !bodyMethods[strings.ToUpper(method)] || len(raw) == 0 {
		return "", nil
	}
	cj, err := CanonicalJSON(raw)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(cj)
	return hex.EncodeToString(sum[:]), nil
}

// CanonicalQuery percent-decodes a raw query string and re-encodes it as
// key=value pairs joined with '&', sorted by key. Values for a repeated key
// keep their original order.
func CanonicalQuery(rawQuery string) (string, error) {
	if rawQuery == "" {
		return "", nil
	}
	vals, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", fmt.Errorf("canonical query: %w", err)
	}
	// url.Values.Encode sorts by key and percent-encodes consistently.
	return vals.Encode(), nil
}

// CanonicalRequest joins the five canonical fields with newline separators.
// The timestamp is the literal header string, never a re-formatted value.
func CanonicalRequest(method, path, sortedQuery, timestamp, bodyDigest string) string {
	return strings.ToUpper(method) + "\n" +
		path + "\n" +
		sortedQuery + "\n" +
		timestamp + "\n" +
		bodyDigest
}
