// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// Map is a string-keyed map that remembers insertion order.
type Map struct {
	items []MapItem
}

type MapItem struct {
	Key   string
	Value interface{}
}

func NewMap() *Map {
	return &Map{}
}

func NewMapWithItems(items []MapItem) *Map {
	return &Map{items}
}

// Set replaces the value of an existing key in place or appends a new item.
func (m *Map) Set(key string, value interface{}) {
	for i, item := range m.items {
		if item.Key == key {
			m.items[i].Value = value
			return
		}
	}
	m.items = append(m.items, MapItem{key, value})
}

func (m *Map) Get(key string) (interface{}, bool) {
	for _, item := range m.items {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

func (m *Map) Keys() (keys []string) {
	m.Iterate(func(k string, _ interface{}) {
		keys = append(keys, k)
	})
	return
}

func (m *Map) Iterate(iterFunc func(k string, v interface{})) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map) Len() int { return len(m.items) }

var _ json.Marshaler = &Map{}
var _ yaml.InterfaceMarshaler = &Map{}

// MarshalYAML keeps key order when encoding with goccy/go-yaml.
func (m *Map) MarshalYAML() (interface{}, error) {
	slice := make(yaml.MapSlice, 0, len(m.items))
	for _, item := range m.items {
		slice = append(slice, yaml.MapItem{Key: item.Key, Value: item.Value})
	}
	return slice, nil
}

// MarshalJSON keeps key order when encoding with encoding/json.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range m.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBs, err := json.Marshal(item.Key)
		if err != nil {
			return nil, err
		}
		valBs, err := json.Marshal(item.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBs)
		buf.WriteByte(':')
		buf.Write(valBs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
