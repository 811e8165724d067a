//go:build windows || linux

package desktop

import (
	"sync/atomic"

	"github.com/awsl-project/localnotes/internal/domain"
	"github.com/awsl-project/localnotes/internal/logging"
	"github.com/energye/systray"
	"github.com/rs/zerolog"
)

// trayAvailable 当前平台是否有托盘，决定关闭窗口时是否隐藏到托盘
const trayAvailable = true

// TrayManager 管理系统托盘
type TrayManager struct {
	dispatcher *MenuDispatcher
	log        zerolog.Logger
	running    atomic.Bool
}

// NewTrayManager 创建托盘管理器
func NewTrayManager(dispatcher *MenuDispatcher, log zerolog.Logger) *TrayManager {
	return &TrayManager{
		dispatcher: dispatcher,
		log:        logging.Component(log, "tray"),
	}
}

// Start 启动托盘，阻塞直到托盘退出
func (t *TrayManager) Start() {
	if !t.running.CompareAndSwap(false, true) {
		return
	}
	systray.Run(t.onReady, t.onExit)
}

// Stop 退出托盘
func (t *TrayManager) Stop() {
	if t.running.Load() {
		systray.Quit()
	}
}

// onReady 托盘就绪回调
func (t *TrayManager) onReady() {
	t.log.Info().Msg("Initializing system tray...")

	systray.SetIcon(iconData)
	systray.SetTitle(domain.TrayTooltip)
	systray.SetTooltip(domain.TrayTooltip)

	// 左键切换主窗口，右键弹出菜单
	systray.SetOnClick(func(menu systray.IMenu) {
		t.dispatcher.HandleIconClick()
	})
	systray.SetOnRClick(func(menu systray.IMenu) {
		if err := menu.ShowMenu(); err != nil {
			t.log.Warn().Err(err).Msg("Failed to show tray menu")
		}
	})

	for _, item := range TrayMenu() {
		if item.Separator {
			systray.AddSeparator()
			continue
		}
		id := item.ID
		systray.AddMenuItem(item.Label, item.Tooltip).Click(func() {
			t.dispatcher.HandleMenuEvent(id)
		})
	}
}

// onExit 托盘退出回调
func (t *TrayManager) onExit() {
	t.running.Store(false)
	t.log.Info().Msg("System tray exited")
}
