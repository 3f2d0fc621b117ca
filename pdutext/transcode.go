package pdutext

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	CharsetUTF8   = "UTF-8"
	CharsetUCS2BE = "UCS-2BE"
)

// charset 字符集描述
type charset struct {
	name string
	enc  encoding.Encoding
	utf8 bool // 与内部表示相同，无需转换
	ucs2 bool // 仅基本多文种平面，无代理对
}

var charsets = map[string]charset{
	"UTF-8":    {name: "UTF-8", enc: unicode.UTF8, utf8: true},
	"UTF8":     {name: "UTF-8", enc: unicode.UTF8, utf8: true},
	"UCS-2BE":  {name: "UCS-2BE", enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), ucs2: true},
	"UCS-2LE":  {name: "UCS-2LE", enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), ucs2: true},
	"UCS-2":    {name: "UCS-2BE", enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), ucs2: true},
	"UTF-16BE": {name: "UTF-16BE", enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	"UTF-16LE": {name: "UTF-16LE", enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
}

// lookupCharset 按名称查找字符集，未登记时回退到 IANA 索引
func lookupCharset(name string) (charset, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if cs, ok := charsets[key]; ok {
		return cs, nil
	}
	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil || enc == nil {
		return charset{}, fmt.Errorf("charset %q: %w", name, ErrUnsupportedCharset)
	}
	return charset{name: key, enc: enc}, nil
}

// converter 单次调用内有效的转换句柄
type converter struct {
	from, to charset
	dec      *encoding.Decoder
	enc      *encoding.Encoder
}

// openConverter 打开转换句柄，调用方负责 Close
func openConverter(from, to string) (*converter, error) {
	src, err := lookupCharset(from)
	if err != nil {
		return nil, err
	}
	dst, err := lookupCharset(to)
	if err != nil {
		return nil, err
	}
	return &converter{
		from: src,
		to:   dst,
		dec:  src.enc.NewDecoder(),
		enc:  dst.enc.NewEncoder(),
	}, nil
}

// Close 释放句柄状态
func (c *converter) Close() {
	c.dec.Reset()
	c.enc.Reset()
}

// convert 整体转换，不接受部分结果
func (c *converter) convert(in []byte) ([]byte, error) {
	text, err := c.toUTF8(in)
	if err != nil {
		return nil, err
	}
	return c.fromUTF8(text)
}

func (c *converter) toUTF8(in []byte) ([]byte, error) {
	if c.from.utf8 {
		if !utf8.Valid(in) {
			return nil, fmt.Errorf("not valid %s: %w", c.from.name, ErrInvalidSequence)
		}
		return in, nil
	}
	if c.from.ucs2 {
		if err := checkUCS2(in, c.from.name); err != nil {
			return nil, err
		}
	}
	out, _, err := transform.Bytes(c.dec, in)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %v: %w", c.from.name, err, ErrConversionFailure)
	}
	if bytes.ContainsRune(out, utf8.RuneError) && !c.roundTrips(in, out) {
		return nil, fmt.Errorf("not valid %s: %w", c.from.name, ErrInvalidSequence)
	}
	return out, nil
}

// roundTrips 解码器以 U+FFFD 替换非法输入，回编码不一致即为非法序列
func (c *converter) roundTrips(in, text []byte) bool {
	back, _, err := transform.Bytes(c.from.enc.NewEncoder(), text)
	return err == nil && bytes.Equal(back, in)
}

func (c *converter) fromUTF8(text []byte) ([]byte, error) {
	if c.to.utf8 {
		return text, nil
	}
	if c.to.ucs2 {
		for i, r := range string(text) {
			if r > 0xFFFF {
				return nil, fmt.Errorf("rune %U at %d outside %s: %w", r, i, c.to.name, ErrInvalidSequence)
			}
		}
	}
	out, _, err := transform.Bytes(c.enc, text)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %v: %w", c.to.name, err, ErrInvalidSequence)
	}
	return out, nil
}

// checkUCS2 校验偶数长度且不含代理码元
func checkUCS2(in []byte, name string) error {
	if len(in)&1 != 0 {
		return fmt.Errorf("odd %s length %d: %w", name, len(in), ErrInvalidSequence)
	}
	bigEndian := name != "UCS-2LE"
	for i := 0; i < len(in); i += 2 {
		u := uint16(in[i])<<8 | uint16(in[i+1])
		if !bigEndian {
			u = uint16(in[i+1])<<8 | uint16(in[i])
		}
		if u >= 0xD800 && u <= 0xDFFF {
			return fmt.Errorf("surrogate %04X at %d in %s: %w", u, i, name, ErrInvalidSequence)
		}
	}
	return nil
}

// Transcode 在两个字符集之间转换
// 结果超过 capacity-1 时返回 ErrBufferTooSmall，不截断
func Transcode(in []byte, from, to string, capacity int) (*Buffer, error) {
	conv, err := openConverter(from, to)
	if err != nil {
		return nil, err
	}
	defer conv.Close()

	res, err := conv.convert(in)
	if err != nil {
		return nil, err
	}
	if capacity-1 < len(res) {
		return nil, fmt.Errorf("%s result needs %d bytes: %w", conv.to.name, len(res)+1, ErrBufferTooSmall)
	}

	out, err := newBuffer(capacity, len(res))
	if err != nil {
		return nil, err
	}
	if err := out.Append(res...); err != nil {
		return nil, err
	}
	return out, nil
}
