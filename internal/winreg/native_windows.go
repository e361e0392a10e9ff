//go:build windows

package winreg

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// Native reads and writes the live Windows registry.
type Native struct{}

func hive(root Root) (registry.Key, error) {
	switch root {
	case LocalMachine:
		return registry.LOCAL_MACHINE, nil
	case CurrentUser:
		return registry.CURRENT_USER, nil
	case Users:
		return registry.USERS, nil
	}
	return 0, fmt.Errorf("unknown registry root %v", root)
}

// wrap attaches the package sentinels to native errors so callers can use errors.Is.
func wrap(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, registry.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrNotExist, err)
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	}
	return err
}

func open(root Root, path string, access uint32) (registry.Key, error) {
	base, err := hive(root)
	if err != nil {
		return 0, err
	}
	k, err := registry.OpenKey(base, path, access)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", Display(root, path), wrap(err))
	}
	return k, nil
}

func (Native) Values(root Root, path string) ([]Value, error) {
	k, err := open(root, path, registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	names, err := k.ReadValueNames(-1)
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", Display(root, path), wrap(err))
	}
	values := make([]Value, 0, len(names))
	for _, name := range names {
		data, err := readAsText(k, name)
		if err != nil {
			// Value vanished or changed type between enumeration and read.
			continue
		}
		values = append(values, Value{Name: name, Data: data})
	}
	return values, nil
}

// readAsText renders any value type as a string.
func readAsText(k registry.Key, name string) (string, error) {
	_, typ, err := k.GetValue(name, nil)
	if err != nil {
		return "", err
	}
	switch typ {
	case registry.SZ, registry.EXPAND_SZ:
		s, _, err := k.GetStringValue(name)
		return s, err
	case registry.DWORD, registry.QWORD:
		n, _, err := k.GetIntegerValue(name)
		return strconv.FormatUint(n, 10), err
	case registry.MULTI_SZ:
		ss, _, err := k.GetStringsValue(name)
		return strings.Join(ss, ";"), err
	default:
		b, _, err := k.GetBinaryValue(name)
		return hex.EncodeToString(b), err
	}
}

func (Native) SubKeyNames(root Root, path string) ([]string, error) {
	k, err := open(root, path, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", Display(root, path), wrap(err))
	}
	return names, nil
}

func (Native) StringValue(root Root, path, name string) (string, error) {
	k, err := open(root, path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	s, _, err := k.GetStringValue(name)
	if err != nil {
		return "", fmt.Errorf("read %s\\%s: %w", Display(root, path), name, wrap(err))
	}
	return s, nil
}

func (Native) SetExpandString(root Root, path, name, value string) error {
	k, err := open(root, path, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	if err := k.SetExpandStringValue(name, value); err != nil {
		return fmt.Errorf("write %s\\%s: %w", Display(root, path), name, wrap(err))
	}
	return nil
}
