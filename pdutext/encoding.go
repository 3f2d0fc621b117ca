package pdutext

import (
	"fmt"
	"strings"
)

// Kind PDU 文本编码类型，数值即线上标签值
type Kind uint8

const (
	SevenBitPacked Kind = iota // 7bit 打包后的十六进制
	EightBitHex                // 8bit 原始字节的十六进制
	Ucs2Hex                    // UCS-2 大端的十六进制
	SevenBitRaw                // 无需转换的 7bit 文本
	Unknown
)

const (
	kindMask    = 0x0F
	offsetShift = 4
	offsetMask  = 0x70

	// MaxOffset 7bit 对齐偏移的最大值
	MaxOffset = 7
)

var kindNames = map[Kind]string{
	SevenBitPacked: "7bit",
	EightBitHex:    "8bit",
	Ucs2Hex:        "ucs2",
	SevenBitRaw:    "raw",
	Unknown:        "unknown",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid 是否为可分发的编码类型
func (k Kind) Valid() bool {
	return k < Unknown
}

// ParseKind 按名称解析编码类型
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, v := range kindNames {
		if v == name {
			return k, nil
		}
	}
	switch name {
	case "gsm7", "7bit-packed":
		return SevenBitPacked, nil
	case "hex", "8bit-hex":
		return EightBitHex, nil
	case "ucs-2", "ucs2-hex":
		return Ucs2Hex, nil
	case "7bit-raw", "copy":
		return SevenBitRaw, nil
	}
	return Unknown, fmt.Errorf("kind %q: %w", name, ErrInvalidInput)
}

// Direction 转换方向
type Direction uint8

const (
	Decode Direction = iota // PDU 文本 -> UTF-8
	Encode                  // UTF-8 -> PDU 文本
)

func (d Direction) String() string {
	switch d {
	case Decode:
		return "decode"
	case Encode:
		return "encode"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection 按名称解析转换方向
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "decode":
		return Decode, nil
	case "encode":
		return Encode, nil
	}
	return 0, fmt.Errorf("direction %q: %w", name, ErrInvalidInput)
}

// Encoding 编码类型及 7bit 对齐偏移
// Offset 表示前置头部已占用的位数，仅对 SevenBitPacked 有意义
type Encoding struct {
	Kind   Kind
	Offset uint8
}

// NewEncoding 创建并校验编码描述
func NewEncoding(kind Kind, offset uint8) (Encoding, error) {
	if offset > MaxOffset {
		return Encoding{}, fmt.Errorf("offset %d out of range: %w", offset, ErrInvalidInput)
	}
	if offset != 0 && kind != SevenBitPacked {
		return Encoding{}, fmt.Errorf("offset on %s: %w", kind, ErrInvalidInput)
	}
	return Encoding{Kind: kind, Offset: offset}, nil
}

// Tag 折叠为线上标签：低 4 位为类型，4-6 位为偏移
func (e Encoding) Tag() byte {
	return byte(e.Kind)&kindMask | (e.Offset<<offsetShift)&offsetMask
}

// ParseTag 从线上标签还原编码描述
func ParseTag(tag byte) Encoding {
	return Encoding{
		Kind:   Kind(tag & kindMask),
		Offset: (tag & offsetMask) >> offsetShift,
	}
}

func (e Encoding) String() string {
	if e.Kind == SevenBitPacked && e.Offset != 0 {
		return fmt.Sprintf("%s+%d", e.Kind, e.Offset)
	}
	return e.Kind.String()
}
