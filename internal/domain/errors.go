package domain

import "errors"

// Error kinds reported by the file transfer commands.
var (
	ErrParse    = errors.New("parse error")
	ErrNotFound = errors.New("not found")
	ErrCopy     = errors.New("copy error")
	ErrExport   = errors.New("export error")
	ErrDataDir  = errors.New("data directory unavailable")
)

// TransferError 文件传输命令的错误
// Error() 返回给前端展示的消息；errors.Is 可同时匹配错误类型和底层 I/O 错误
type TransferError struct {
	Kind error
	Msg  string
	Err  error
}

func (e *TransferError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *TransferError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewParseError 解析笔记数据失败
func NewParseError(err error) error {
	return &TransferError{Kind: ErrParse, Msg: "解析笔记数据失败", Err: err}
}

// NewExportError 写入导出文件失败
func NewExportError(err error) error {
	return &TransferError{Kind: ErrExport, Msg: "导出失败", Err: err}
}

// NewNotFoundError 预期存在的源文件缺失
func NewNotFoundError(msg string) error {
	return &TransferError{Kind: ErrNotFound, Msg: msg}
}

// NewCopyError 复制文件失败
func NewCopyError(msg string, err error) error {
	return &TransferError{Kind: ErrCopy, Msg: msg, Err: err}
}

// NewDataDirError 无法解析应用数据目录
func NewDataDirError(err error) error {
	return &TransferError{Kind: ErrDataDir, Msg: "无法获取应用数据目录", Err: err}
}
