package pdutext

import "fmt"

// coder 单一方向的转换函数
type coder func(in []byte, enc Encoding, capacity int) (*Buffer, error)

// recoders 按 [编码类型][方向] 索引，方向顺序为 Decode、Encode
var recoders = [Unknown][2]coder{
	SevenBitPacked: {
		func(in []byte, enc Encoding, capacity int) (*Buffer, error) {
			return UnpackSeptets(in, enc.Offset, capacity)
		},
		func(in []byte, enc Encoding, capacity int) (*Buffer, error) {
			return PackSeptets(in, enc.Offset, capacity)
		},
	},
	EightBitHex: {
		func(in []byte, _ Encoding, capacity int) (*Buffer, error) {
			return HexToBytes(in, capacity)
		},
		func(in []byte, _ Encoding, capacity int) (*Buffer, error) {
			return BytesToHex(in, capacity)
		},
	},
	Ucs2Hex: {
		func(in []byte, _ Encoding, capacity int) (*Buffer, error) {
			return Ucs2HexToUTF8(in, capacity)
		},
		func(in []byte, _ Encoding, capacity int) (*Buffer, error) {
			return UTF8ToUcs2Hex(in, capacity)
		},
	},
	SevenBitRaw: {
		func(in []byte, _ Encoding, capacity int) (*Buffer, error) {
			return Copy(in, capacity)
		},
		func(in []byte, _ Encoding, capacity int) (*Buffer, error) {
			return Copy(in, capacity)
		},
	},
}

// Recode 按方向和编码选择转换函数
func Recode(dir Direction, enc Encoding, in []byte, capacity int) (*Buffer, error) {
	if dir != Decode && dir != Encode {
		return nil, fmt.Errorf("%s: %w", dir, ErrInvalidInput)
	}
	if !enc.Kind.Valid() {
		return nil, fmt.Errorf("%s: %w", enc.Kind, ErrInvalidInput)
	}
	return recoders[enc.Kind][dir](in, enc, capacity)
}

// RecodeTag 以线上标签指定编码调用 Recode
func RecodeTag(dir Direction, tag byte, in []byte, capacity int) (*Buffer, error) {
	return Recode(dir, ParseTag(tag), in, capacity)
}
