package logging

import "github.com/rs/zerolog"

// WailsLogger 将 Wails 运行时日志转发到 zerolog
// 实现 github.com/wailsapp/wails/v2/pkg/logger.Logger
type WailsLogger struct {
	log zerolog.Logger
}

// NewWailsLogger 创建 Wails 日志适配器
func NewWailsLogger(log zerolog.Logger) *WailsLogger {
	return &WailsLogger{log: Component(log, "wails")}
}

func (w *WailsLogger) Print(message string)   { w.log.Info().Msg(message) }
func (w *WailsLogger) Trace(message string)   { w.log.Trace().Msg(message) }
func (w *WailsLogger) Debug(message string)   { w.log.Debug().Msg(message) }
func (w *WailsLogger) Info(message string)    { w.log.Info().Msg(message) }
func (w *WailsLogger) Warning(message string) { w.log.Warn().Msg(message) }
func (w *WailsLogger) Error(message string)   { w.log.Error().Msg(message) }

// Fatal 只记录，不让 Wails 直接退出进程
func (w *WailsLogger) Fatal(message string) {
	w.log.Error().Bool("fatal", true).Msg(message)
}
