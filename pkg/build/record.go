package build

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is a named value of a Record.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered mapping from field name to value.
type Record []Field

// R builds a Record from alternating names and values. A trailing name
// without a value gets a nil value.
func R(kv ...any) Record {
	r := make(Record, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			name = fmt.Sprint(kv[i])
		}
		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		r = append(r, Field{Name: name, Value: value})
	}
	return r
}

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the field names in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Name
	}
	return keys
}

// MarshalJSON encodes the record as a JSON object, keeping field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Frame is columnar table data: header names and row vectors.
type Frame struct {
	Cols []string
	Vals [][]any
}
