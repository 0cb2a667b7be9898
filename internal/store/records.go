package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// records is a list collection with every record kept as the JSON it was
// stored as. Mutations rewrite only the record they target, so fields this
// package does not model survive and untouched records stay byte-identical.
type records []json.RawMessage

var errNotObject = errors.New("record is not a JSON object")

// field is one top-level member to set on a record.
type field struct {
	name  string
	value any
}

func recordID(r json.RawMessage) string {
	var k struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(r, &k)
	return k.ID
}

func toRecords[T any](list []T) (records, error) {
	out := make(records, 0, len(list))
	for _, v := range list {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (rs records) index(id string) int {
	for i, r := range rs {
		if recordID(r) == id {
			return i
		}
	}
	return -1
}

// newID draws from gen until the id is unused in rs.
func (rs records) newID(gen func() string) string {
	for {
		id := gen()
		if rs.index(id) < 0 {
			return id
		}
	}
}

// prepend returns a new list with v encoded first.
func (rs records) prepend(v any) (records, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make(records, 0, len(rs)+1)
	out = append(out, b)
	return append(out, rs...), nil
}

// update sets fields on the record with the given id. It reports false when
// no record has that id.
func (rs records) update(id string, fields []field) (records, bool, error) {
	i := rs.index(id)
	if i < 0 {
		return rs, false, nil
	}
	rec, err := setFields(rs[i], fields)
	if err != nil {
		return rs, false, fmt.Errorf("record %s: %w", id, err)
	}
	out := append(records(nil), rs...)
	out[i] = rec
	return out, true, nil
}

// remove drops the first record with the given id.
func (rs records) remove(id string) (records, bool) {
	i := rs.index(id)
	if i < 0 {
		return rs, false
	}
	out := make(records, 0, len(rs)-1)
	out = append(out, rs[:i]...)
	return append(out, rs[i+1:]...), true
}

func (rs records) encode() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range rs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(r)
	}
	buf.WriteByte(']')
	return buf.String()
}

// setFields replaces the named top-level members of obj and keeps every other
// member, in stored order, with its value bytes unchanged. Names obj lacks are
// appended.
func setFields(obj json.RawMessage, fields []field) (json.RawMessage, error) {
	if len(fields) == 0 {
		return obj, nil
	}
	vals := make([][]byte, len(fields))
	for i, f := range fields {
		b, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		vals[i] = b
	}

	dec := json.NewDecoder(bytes.NewReader(obj))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	var buf bytes.Buffer
	n := 0
	member := func(name string, val []byte) {
		if n > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(name)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		n++
	}

	buf.WriteByte('{')
	seen := make([]bool, len(fields))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, err
		}
		out := []byte(val)
		for i, f := range fields {
			if f.name == name {
				out = vals[i]
				seen[i] = true
			}
		}
		member(name, out)
	}
	for i, f := range fields {
		if !seen[i] {
			member(f.name, vals[i])
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
