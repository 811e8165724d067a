package desktop

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/awsl-project/localnotes/internal/domain"
	"github.com/awsl-project/localnotes/internal/window"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// wailsHost 基于 Wails 运行时的应用句柄
// Wails v2 只有一个窗口，且没有可见性查询，这里自己记录显示/隐藏状态
type wailsHost struct {
	mu      sync.RWMutex
	ctx     context.Context
	visible atomic.Bool
	exit    func(code int)
}

func newWailsHost(exit func(code int)) *wailsHost {
	return &wailsHost{exit: exit}
}

// attach 在 OnStartup 中调用，之前窗口视为不存在
func (h *wailsHost) attach(ctx context.Context, visible bool) {
	h.mu.Lock()
	h.ctx = ctx
	h.mu.Unlock()
	h.visible.Store(visible)
}

func (h *wailsHost) context() context.Context {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ctx
}

func (h *wailsHost) Window(name string) (window.Window, bool) {
	if name != domain.MainWindowName {
		return nil, false
	}
	ctx := h.context()
	if ctx == nil {
		return nil, false
	}
	return &wailsWindow{ctx: ctx, visible: &h.visible}, true
}

func (h *wailsHost) Exit(code int) {
	h.exit(code)
}

// wailsWindow 主窗口
// Wails v2 的窗口操作没有返回值，这里的错误始终为 nil
type wailsWindow struct {
	ctx     context.Context
	visible *atomic.Bool
}

func (w *wailsWindow) Show() error {
	runtime.WindowShow(w.ctx)
	w.visible.Store(true)
	return nil
}

func (w *wailsWindow) Hide() error {
	runtime.WindowHide(w.ctx)
	w.visible.Store(false)
	return nil
}

// SetFocus 置顶再取消置顶，把窗口带到最前
func (w *wailsWindow) SetFocus() error {
	runtime.WindowSetAlwaysOnTop(w.ctx, true)
	runtime.WindowSetAlwaysOnTop(w.ctx, false)
	return nil
}

func (w *wailsWindow) Unminimize() error {
	if runtime.WindowIsMinimised(w.ctx) {
		runtime.WindowUnminimise(w.ctx)
	}
	return nil
}

func (w *wailsWindow) IsVisible() (bool, error) {
	return w.visible.Load(), nil
}
