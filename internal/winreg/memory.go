package winreg

import (
	"fmt"
	"strings"
	"sync"
)

// Memory is an in-process Registry. Key paths and value names are matched
// case-insensitively and enumeration follows insertion order, like the real one.
type Memory struct {
	mu   sync.RWMutex
	keys map[string]*memKey
}

type memKey struct {
	name    string
	values  []Value
	subkeys []string
	denied  bool
}

// NewMemory returns an empty registry with the three roots present.
func NewMemory() *Memory {
	m := &Memory{keys: make(map[string]*memKey)}
	for _, r := range []Root{LocalMachine, CurrentUser, Users} {
		m.keys[m.id(r, "")] = &memKey{}
	}
	return m
}

func (m *Memory) id(root Root, path string) string {
	return root.String() + `\` + strings.ToLower(strings.Trim(path, `\`))
}

// ensure creates every missing key along path. Callers hold the write lock.
func (m *Memory) ensure(root Root, path string) *memKey {
	path = strings.Trim(path, `\`)
	parent := m.keys[m.id(root, "")]
	cur := ""
	for _, part := range strings.Split(path, `\`) {
		if part == "" {
			continue
		}
		cur = Join(cur, part)
		k, ok := m.keys[m.id(root, cur)]
		if !ok {
			k = &memKey{name: part}
			m.keys[m.id(root, cur)] = k
			parent.subkeys = append(parent.subkeys, part)
		}
		parent = k
	}
	return parent
}

// CreateKey makes sure the key exists.
func (m *Memory) CreateKey(root Root, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(root, path)
}

// Set stores a value, creating the key if needed.
func (m *Memory) Set(root Root, path, name, data string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(root, path).set(name, data)
}

// Deny makes every access to the key fail with ErrAccessDenied.
func (m *Memory) Deny(root Root, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(root, path).denied = true
}

func (k *memKey) set(name, data string) {
	for i, v := range k.values {
		if strings.EqualFold(v.Name, name) {
			k.values[i].Data = data
			return
		}
	}
	k.values = append(k.values, Value{Name: name, Data: data})
}

func (m *Memory) lookup(root Root, path string) (*memKey, error) {
	k, ok := m.keys[m.id(root, path)]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", Display(root, path), ErrNotExist)
	}
	if k.denied {
		return nil, fmt.Errorf("open %s: %w", Display(root, path), ErrAccessDenied)
	}
	return k, nil
}

func (m *Memory) Values(root Root, path string) ([]Value, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	k, err := m.lookup(root, path)
	if err != nil {
		return nil, err
	}
	return append([]Value(nil), k.values...), nil
}

func (m *Memory) SubKeyNames(root Root, path string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	k, err := m.lookup(root, path)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), k.subkeys...), nil
}

func (m *Memory) StringValue(root Root, path, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	k, err := m.lookup(root, path)
	if err != nil {
		return "", err
	}
	for _, v := range k.values {
		if strings.EqualFold(v.Name, name) {
			return v.Data, nil
		}
	}
	return "", fmt.Errorf("read %s\\%s: %w", Display(root, path), name, ErrNotExist)
}

func (m *Memory) SetExpandString(root Root, path, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, err := m.lookup(root, path)
	if err != nil {
		return err
	}
	k.set(name, value)
	return nil
}
