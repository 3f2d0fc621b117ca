package pdutext

import "errors"

var (
	// 输入格式错误：奇数长度、非十六进制字符、非法方向或编码类型
	ErrInvalidInput = errors.New("invalid input")

	// 输出容量不足（容量包含结尾的 NUL）
	ErrBufferTooSmall = errors.New("buffer too small")

	// 字符集名称无法识别
	ErrUnsupportedCharset = errors.New("unsupported charset")

	// 输入在源字符集中不是合法序列
	ErrInvalidSequence = errors.New("invalid sequence")

	// 其他字符集转换失败
	ErrConversionFailure = errors.New("charset conversion failure")
)
