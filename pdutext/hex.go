package pdutext

import "fmt"

const hexTable = "0123456789ABCDEF"

// parseHexDigit 单个十六进制字符转数值，非法时返回 -1
func parseHexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// isHexString 是否全部为十六进制字符
func isHexString(in []byte) bool {
	for _, c := range in {
		if parseHexDigit(c) < 0 {
			return false
		}
	}
	return true
}

// decodeOctet 解析 in[i:i+2] 为一个字节
func decodeOctet(in []byte, i int) (byte, error) {
	hi, lo := parseHexDigit(in[i]), parseHexDigit(in[i+1])
	if hi < 0 || lo < 0 {
		return 0, fmt.Errorf("bad hex digit near position %d: %w", i, ErrInvalidInput)
	}
	return byte(hi<<4 | lo), nil
}

// BytesToHex 字节转大写十六进制，高半字节在前
func BytesToHex(in []byte, capacity int) (*Buffer, error) {
	need := len(in) * 2
	if capacity-1 < need {
		return nil, fmt.Errorf("hex needs %d bytes: %w", need+1, ErrBufferTooSmall)
	}

	out, err := newBuffer(capacity, need)
	if err != nil {
		return nil, err
	}
	for _, c := range in {
		if err := out.Append(hexTable[c>>4], hexTable[c&0x0F]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// HexToBytes 十六进制转字节，大小写均可
func HexToBytes(in []byte, capacity int) (*Buffer, error) {
	if len(in)&1 != 0 {
		return nil, fmt.Errorf("odd hex length %d: %w", len(in), ErrInvalidInput)
	}

	need := len(in) / 2
	if capacity-1 < need {
		return nil, fmt.Errorf("bytes need %d bytes: %w", need+1, ErrBufferTooSmall)
	}

	out, err := newBuffer(capacity, need)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(in); i += 2 {
		c, err := decodeOctet(in, i)
		if err != nil {
			return nil, err
		}
		if err := out.AppendByte(c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// EncodeHex 按所需容量转换为十六进制字符串
func EncodeHex(in []byte) string {
	out, err := BytesToHex(in, len(in)*2+1)
	if err != nil {
		return ""
	}
	return out.String()
}

// DecodeHex 按所需容量解析十六进制字符串
func DecodeHex(in string) ([]byte, error) {
	out, err := HexToBytes([]byte(in), len(in)/2+1)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
