package pdutext

import "fmt"

// Copy 原样复制，用于已是目标表示的文本
func Copy(in []byte, capacity int) (*Buffer, error) {
	if capacity-1 < len(in) {
		return nil, fmt.Errorf("copy needs %d bytes: %w", len(in)+1, ErrBufferTooSmall)
	}
	out, err := newBuffer(capacity, len(in))
	if err != nil {
		return nil, err
	}
	if err := out.Append(in...); err != nil {
		return nil, err
	}
	return out, nil
}
