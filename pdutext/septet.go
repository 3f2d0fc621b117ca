package pdutext

import (
	"fmt"
	"strings"
)

// PackSeptets 将 7bit 码打包为十六进制八位组
// offset 为前置头部已占用的位数，首个码的低 offset 位视为已在头部中
func PackSeptets(codes []byte, offset uint8, capacity int) (*Buffer, error) {
	if offset > MaxOffset {
		return nil, fmt.Errorf("offset %d out of range: %w", offset, ErrInvalidInput)
	}

	n := len(codes)
	need := (n - n/8) * 2
	if capacity-1 < need {
		return nil, fmt.Errorf("packed septets need %d bytes: %w", need+1, ErrBufferTooSmall)
	}

	out, err := newBuffer(capacity, need+2)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return out, nil
	}

	emit := func(c byte) error {
		return out.Append(hexTable[c>>4], hexTable[c&0x0F])
	}

	s := offset
	i := 0
	for ; i < n-1; i++ {
		if s == 7 {
			s = 0
			continue
		}
		cur, next := codes[i]&0x7F, codes[i+1]&0x7F
		if err := emit(cur>>s | next<<(7-s)); err != nil {
			return nil, err
		}
		s++
	}
	if err := emit((codes[i] & 0x7F) >> s); err != nil {
		return nil, err
	}
	return out, nil
}

// UnpackSeptets 解包十六进制八位组并按默认字母表输出 UTF-8
// 扩展表转义码按普通字符查表
func UnpackSeptets(in []byte, offset uint8, capacity int) (*Buffer, error) {
	if offset > MaxOffset {
		return nil, fmt.Errorf("offset %d out of range: %w", offset, ErrInvalidInput)
	}
	if len(in)&1 != 0 {
		return nil, fmt.Errorf("odd hex length %d: %w", len(in), ErrInvalidInput)
	}

	n := len(in) / 2
	need := n + n/7
	if capacity-1 < need {
		return nil, fmt.Errorf("unpacked text needs %d bytes: %w", need+1, ErrBufferTooSmall)
	}

	out, err := newBuffer(capacity, need)
	if err != nil {
		return nil, err
	}

	s := (1 + offset) & 7
	var b byte
	for i := 0; i < n; i++ {
		o, err := decodeOctet(in, i*2)
		if err != nil {
			return nil, err
		}

		c := (o<<s)>>1 | b
		b = o >> (8 - s)
		if err := out.AppendString(SevenBitTable[c&0x7F]); err != nil {
			return nil, err
		}

		s++
		if s == 8 {
			if err := out.AppendString(SevenBitTable[b&0x7F]); err != nil {
				return nil, err
			}
			s, b = 1, 0
		}
	}
	return out, nil
}

// Septets 将 UTF-8 文本映射为默认字母表码
func Septets(text string) ([]byte, error) {
	codes := make([]byte, 0, len(text))
	for i, r := range text {
		c, ok := septetIndex[r]
		if !ok {
			return nil, fmt.Errorf("rune %U at %d not in GSM alphabet: %w", r, i, ErrInvalidSequence)
		}
		codes = append(codes, c)
	}
	return codes, nil
}

// SeptetCount 文本所需的septet数量，不可表示时返回 -1
func SeptetCount(text string) int {
	n := 0
	for _, r := range text {
		if _, ok := septetIndex[r]; !ok {
			return -1
		}
		n++
	}
	return n
}

// Render 按默认字母表渲染 7bit 码
func Render(codes []byte) string {
	var sb strings.Builder
	for _, c := range codes {
		sb.WriteString(SevenBitTable[c&0x7F])
	}
	return sb.String()
}
