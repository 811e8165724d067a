package desktop

import (
	"github.com/awsl-project/localnotes/internal/logging"
	"github.com/rs/zerolog"
)

// MenuAction 托盘菜单动作
type MenuAction int

const (
	MenuActionUnknown MenuAction = iota
	MenuActionShow
	MenuActionHide
	MenuActionQuit
)

// Menu item IDs, stable across releases.
const (
	MenuIDShow = "show"
	MenuIDHide = "hide"
	MenuIDQuit = "quit"
)

// ParseMenuAction 将菜单项 ID 映射为动作，未知 ID 返回 MenuActionUnknown
func ParseMenuAction(id string) MenuAction {
	switch id {
	case MenuIDShow:
		return MenuActionShow
	case MenuIDHide:
		return MenuActionHide
	case MenuIDQuit:
		return MenuActionQuit
	default:
		return MenuActionUnknown
	}
}

func (a MenuAction) String() string {
	switch a {
	case MenuActionShow:
		return MenuIDShow
	case MenuActionHide:
		return MenuIDHide
	case MenuActionQuit:
		return MenuIDQuit
	default:
		return "unknown"
	}
}

// MenuItem 托盘菜单项，Separator 为 true 时只是分隔线
type MenuItem struct {
	ID        string
	Label     string
	Tooltip   string
	Separator bool
}

// TrayMenu 托盘菜单，顺序固定
func TrayMenu() []MenuItem {
	return []MenuItem{
		{ID: MenuIDShow, Label: "显示窗口", Tooltip: "显示主窗口"},
		{ID: MenuIDHide, Label: "隐藏窗口", Tooltip: "隐藏主窗口"},
		{Separator: true},
		{ID: MenuIDQuit, Label: "退出", Tooltip: "退出应用"},
	}
}

// WindowController 托盘需要的窗口操作
type WindowController interface {
	ShowMain()
	HideMain()
	ToggleMain()
	Quit()
}

// MenuDispatcher 处理托盘图标和菜单事件
type MenuDispatcher struct {
	windows WindowController
	log     zerolog.Logger
}

// NewMenuDispatcher 创建托盘事件分发器
func NewMenuDispatcher(windows WindowController, log zerolog.Logger) *MenuDispatcher {
	return &MenuDispatcher{
		windows: windows,
		log:     logging.Component(log, "tray"),
	}
}

// HandleMenuEvent 处理菜单项点击
func (d *MenuDispatcher) HandleMenuEvent(id string) {
	action := ParseMenuAction(id)
	d.log.Debug().Str("id", id).Stringer("action", action).Msg("Menu item clicked")

	switch action {
	case MenuActionShow:
		d.windows.ShowMain()
	case MenuActionHide:
		d.windows.HideMain()
	case MenuActionQuit:
		d.windows.Quit()
	case MenuActionUnknown:
		d.log.Debug().Str("id", id).Msg("Ignoring unknown menu item")
	}
}

// HandleIconClick 处理托盘图标点击：切换主窗口显示
func (d *MenuDispatcher) HandleIconClick() {
	d.windows.ToggleMain()
}
