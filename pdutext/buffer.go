package pdutext

import "fmt"

// Buffer 带显式长度与容量的输出缓冲区
// 容量包含结尾的 NUL，因此最多可写入 Cap()-1 字节
type Buffer struct {
	data     []byte
	capacity int
}

// NewBuffer 创建指定容量的缓冲区
func NewBuffer(capacity int) (*Buffer, error) {
	return newBuffer(capacity, capacity-1)
}

// newBuffer 按已校验的预计长度分配底层存储，避免按调用方容量直接分配
func newBuffer(capacity, expected int) (*Buffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("capacity %d: %w", capacity, ErrBufferTooSmall)
	}
	if expected < 0 {
		expected = 0
	}
	if expected > capacity-1 {
		expected = capacity - 1
	}
	return &Buffer{data: make([]byte, 0, expected), capacity: capacity}, nil
}

// Len 已写入的字节数
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap 缓冲区容量（含 NUL）
func (b *Buffer) Cap() int {
	return b.capacity
}

// Free 剩余可写入字节数
func (b *Buffer) Free() int {
	return b.capacity - 1 - len(b.data)
}

// Append 追加字节，超出容量时不写入任何内容
func (b *Buffer) Append(p ...byte) error {
	if len(p) > b.Free() {
		return fmt.Errorf("need %d bytes, %d free: %w", len(p), b.Free(), ErrBufferTooSmall)
	}
	b.data = append(b.data, p...)
	return nil
}

// AppendByte 追加单个字节
func (b *Buffer) AppendByte(c byte) error {
	if b.Free() < 1 {
		return fmt.Errorf("need 1 byte, 0 free: %w", ErrBufferTooSmall)
	}
	b.data = append(b.data, c)
	return nil
}

// AppendString 追加字符串
func (b *Buffer) AppendString(s string) error {
	if len(s) > b.Free() {
		return fmt.Errorf("need %d bytes, %d free: %w", len(s), b.Free(), ErrBufferTooSmall)
	}
	b.data = append(b.data, s...)
	return nil
}

// Bytes 返回已写入内容
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String 返回已写入内容的字符串形式
func (b *Buffer) String() string {
	return string(b.data)
}

// Terminated 返回以 NUL 结尾的副本，长度不超过容量
func (b *Buffer) Terminated() []byte {
	out := make([]byte, len(b.data)+1)
	copy(out, b.data)
	return out
}
