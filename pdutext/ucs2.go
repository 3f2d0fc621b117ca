package pdutext

// Ucs2HexToUTF8 十六进制 UCS-2 大端转 UTF-8
func Ucs2HexToUTF8(in []byte, capacity int) (*Buffer, error) {
	raw, err := HexToBytes(in, len(in)/2+1)
	if err != nil {
		return nil, err
	}
	return Transcode(raw.Bytes(), CharsetUCS2BE, CharsetUTF8, capacity)
}

// UTF8ToUcs2Hex UTF-8 转十六进制 UCS-2 大端
func UTF8ToUcs2Hex(in []byte, capacity int) (*Buffer, error) {
	// 中间结果按输出容量可容纳的字节数限定
	raw, err := Transcode(in, CharsetUTF8, CharsetUCS2BE, max(capacity-1, 0)/2+1)
	if err != nil {
		return nil, err
	}
	return BytesToHex(raw.Bytes(), capacity)
}
