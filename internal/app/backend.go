package app

import (
	"errors"
	"fmt"

	"zzz/internal/platform"
	"zzz/internal/platform/ebitenbackend"
	"zzz/internal/platform/win32"
	"zzz/pkg/zzz"
)

// OpenPlatform returns the backend named by Config.Backend. Auto prefers the
// native Win32 binding and falls back to ebiten where it is unavailable.
func OpenPlatform(name string) (platform.Platform, error) {
	switch name {
	case BackendWin32:
		b, err := win32.NewNative()
		if err != nil {
			return nil, fmt.Errorf("app: open win32 backend: %w", err)
		}
		return b, nil
	case BackendEbiten:
		return ebitenbackend.New(), nil
	case BackendAuto, "":
		b, err := win32.NewNative()
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, win32.ErrUnsupported) {
			zzz.Logger().Warn("zzz: win32 backend unavailable", "error", err)
		}
		return ebitenbackend.New(), nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, name)
}
