//go:build !windows && !linux

package desktop

import "github.com/rs/zerolog"

// macOS 上托盘和 Wails 都需要占用主线程，不启用托盘
const trayAvailable = false

// TrayManager stub for platforms without a tray
type TrayManager struct{}

// NewTrayManager creates a no-op tray manager
func NewTrayManager(dispatcher *MenuDispatcher, log zerolog.Logger) *TrayManager {
	return &TrayManager{}
}

// Start is a no-op on this platform
func (t *TrayManager) Start() {}

// Stop is a no-op on this platform
func (t *TrayManager) Stop() {}
