// Package window drives the visibility of the single main window.
//
// Every platform call made here is best-effort: a failing show, hide, focus,
// unminimize or visibility query is logged and dropped, never returned. The
// window manager may refuse any of these at any time and none of the callers
// (tray clicks, menu items, UI commands) can act on such a failure.
package window

import (
	"github.com/awsl-project/localnotes/internal/domain"
	"github.com/rs/zerolog"
)

// Window 单个窗口的平台能力
type Window interface {
	Show() error
	Hide() error
	SetFocus() error
	Unminimize() error
	IsVisible() (bool, error)
}

// Host 应用句柄：按名称查找窗口、退出进程
type Host interface {
	// Window 返回指定名称的窗口，窗口尚未创建时返回 false
	Window(name string) (Window, bool)
	// Exit 立即以指定退出码结束进程
	Exit(code int)
}

// Controller 主窗口显示/隐藏控制器
type Controller struct {
	host Host
	log  zerolog.Logger
}

// NewController 创建控制器
func NewController(host Host, log zerolog.Logger) *Controller {
	return &Controller{
		host: host,
		log:  log.With().Str("component", "window").Logger(),
	}
}

// ShowMain 显示主窗口并聚焦、取消最小化
func (c *Controller) ShowMain() {
	w, ok := c.main()
	if !ok {
		return
	}
	c.show(w)
}

// HideMain 隐藏主窗口
func (c *Controller) HideMain() {
	w, ok := c.main()
	if !ok {
		return
	}
	c.ignore("hide", w.Hide())
}

// ToggleMain 托盘图标点击：可见则隐藏，否则显示
func (c *Controller) ToggleMain() {
	w, ok := c.main()
	if !ok {
		return
	}
	c.Toggle(w)
}

// Toggle 根据当前可见性切换窗口
// 查询失败视为不可见，宁可显示也不要让窗口卡在隐藏状态
func (c *Controller) Toggle(w Window) {
	visible, err := w.IsVisible()
	if err != nil {
		c.ignore("is_visible", err)
		visible = false
	}
	if visible {
		c.ignore("hide", w.Hide())
		return
	}
	c.show(w)
}

// Quit 退出进程，退出码 0
func (c *Controller) Quit() {
	c.log.Info().Msg("Quitting application")
	c.host.Exit(0)
}

func (c *Controller) show(w Window) {
	c.ignore("show", w.Show())
	c.ignore("set_focus", w.SetFocus())
	c.ignore("unminimize", w.Unminimize())
}

func (c *Controller) main() (Window, bool) {
	w, ok := c.host.Window(domain.MainWindowName)
	if !ok {
		c.log.Debug().Str("window", domain.MainWindowName).Msg("Window not available, skipping")
	}
	return w, ok
}

func (c *Controller) ignore(op string, err error) {
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("Window operation failed, ignored")
	}
}
