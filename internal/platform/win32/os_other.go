//go:build !windows

package win32

// NewNativeOS is only available on Windows.
func NewNativeOS() (OS, error) {
	return nil, ErrUnsupported
}
