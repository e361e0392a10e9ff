//go:build !windows

package winreg

// Native reports ErrUnsupported for every call outside Windows.
type Native struct{}

func (Native) Values(Root, string) ([]Value, error) { return nil, ErrUnsupported }

func (Native) SubKeyNames(Root, string) ([]string, error) { return nil, ErrUnsupported }

func (Native) StringValue(Root, string, string) (string, error) { return "", ErrUnsupported }

func (Native) SetExpandString(Root, string, string, string) error { return ErrUnsupported }
