package pdutext

// Detect 在调用方未指定编码时推断编码类型
// 解码方向下合法十六进制无法区分 7bit、8bit 与 UCS-2，返回 Unknown
func Detect(dir Direction, in []byte) Kind {
	switch dir {
	case Encode:
		for _, c := range in {
			if c&0x80 != 0 {
				return Ucs2Hex
			}
		}
		return SevenBitPacked
	case Decode:
		if !isHexString(in) {
			return SevenBitRaw
		}
	}
	return Unknown
}
