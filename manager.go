// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package charset

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/golang/glog"
)

// Manager manages the codecs of multiple character sets
type Manager interface {
	Registry
	Get(name string) (*Codec, error)
	Names() []string
	Decode(name string, src []byte) (string, error)
	Encode(name string, text string) ([]byte, error)
}

// NewManager returns a new, empty codec manager
func NewManager() Manager {
	return &manager{
		codecs: make(map[string]*Codec),
	}
}

type manager struct {
	lock   sync.RWMutex
	names  []string
	codecs map[string]*Codec
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (m *manager) Register(t *Table) error {
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrInvalidTable)
	}

	keys := []string{key(t.info.Name)}
	if web := key(t.info.WebName); web != "" && web != keys[0] {
		keys = append(keys, web)
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	for _, k := range keys {
		if _, exists := m.codecs[k]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateEncoding, k)
		}
	}
	c := New(t)
	for _, k := range keys {
		m.codecs[k] = c
	}
	m.names = append(m.names, t.info.Name)
	sort.Strings(m.names)

	glog.V(1).Infof("charset: registered %s (%s)", t.info.Name, t.info.Description)
	return nil
}

func (m *manager) Get(name string) (*Codec, error) {
	m.lock.RLock()
	c, exists := m.codecs[key(name)]
	m.lock.RUnlock()
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return c, nil
}

func (m *manager) Names() []string {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return append([]string(nil), m.names...)
}

func (m *manager) Decode(name string, src []byte) (string, error) {
	c, err := m.Get(name)
	if err != nil {
		return "", err
	}
	return c.DecodeString(src), nil
}

func (m *manager) Encode(name string, text string) ([]byte, error) {
	c, err := m.Get(name)
	if err != nil {
		return nil, err
	}
	return c.EncodeString(text), nil
}
