package docparse

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// orderedMap is a string-keyed mapping that encodes in insertion order.
type orderedMap struct {
	keys   []string
	values []any
}

func (m *orderedMap) add(key string, value any) {
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

func (m orderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(m.values[i])
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (m orderedMap) MarshalYAML() (any, error) {
	ms := make(yaml.MapSlice, 0, len(m.keys))
	for i, key := range m.keys {
		ms = append(ms, yaml.MapItem{Key: key, Value: m.values[i]})
	}

	return ms, nil
}
