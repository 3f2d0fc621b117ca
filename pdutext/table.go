package pdutext

// SevenBitTable GSM 03.38 默认字母表到 UTF-8 的映射
// 0x1B 为扩展表转义位，此处按普通字符查表
var SevenBitTable = [128]string{
	"@", "\xc2\xa3", "$", "\xc2\xa5", "\xc3\xa8", "\xc3\xa9", "\xc3\xb9", "\xc3\xac",
	"\xc3\xb2", "\xc3\x87", "\x0d", "\xc3\x98", "\xc3\xb8", "\x0a", "\xc3\x85", "\xc3\xa5",
	"\xce\x94", "_", "\xce\xa6", "\xce\x93", "\xce\x9b", "\xce\xa9", "\xce\xa0", "\xce\xa8",
	"\xce\xa3", "\xce\x98", "\xce\x9e", " ", "\xc3\x86", "\xc3\xa6", "\xc3\x9f", "\xc3\x89",
	" ", "!", "\"", "#", "\xc2\xa4", "%", "&", "'",
	"(", ")", "*", "+", ",", "-", ".", "/",
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", ":", ";", "<", "=", ">", "?",
	"\xc2\xa1", "A", "B", "C", "D", "E", "F", "G",
	"H", "I", "J", "K", "L", "M", "N", "O",
	"P", "Q", "R", "S", "T", "U", "V", "W",
	"X", "Y", "Z", "\xc3\x84", "\xc3\x96", "\xc3\x91", "\xc3\x9c", "\xc2\xa7",
	"\xc2\xbf", "a", "b", "c", "d", "e", "f", "g",
	"h", "i", "j", "k", "l", "m", "n", "o",
	"p", "q", "r", "s", "t", "u", "v", "w",
	"x", "y", "z", "\xc3\xa4", "\xc3\xb6", "\xc3\xb1", "\xc3\xbc", "\xc3\xa0",
}

const escapeSeptet = 0x1B

// septetIndex UTF-8 字符到默认字母表码位的反向映射
var septetIndex = func() map[rune]byte {
	m := make(map[rune]byte, len(SevenBitTable))
	for i := len(SevenBitTable) - 1; i >= 0; i-- {
		if i == escapeSeptet {
			continue
		}
		for _, r := range SevenBitTable[i] {
			m[r] = byte(i)
		}
	}
	return m
}()
