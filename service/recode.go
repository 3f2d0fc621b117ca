package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/rehiy/sms-text/database"
	"github.com/rehiy/sms-text/models"
	"github.com/rehiy/sms-text/pdutext"
)

// ErrEncodingRequired 解码时无法推断编码
var ErrEncodingRequired = fmt.Errorf("encoding must be given for hex input: %w", pdutext.ErrInvalidInput)

// RecodeRequest 转换请求
type RecodeRequest struct {
	Text     string `json:"text"`
	Kind     string `json:"kind,omitempty"`
	Offset   *uint8 `json:"offset,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
	Source   string `json:"-"`
}

// RecodeResult 转换结果
type RecodeResult struct {
	Direction string `json:"direction"`
	Kind      string `json:"kind"`
	Offset    uint8  `json:"offset"`
	Tag       uint8  `json:"tag"`
	Detected  bool   `json:"detected"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	Length    int    `json:"length"`
}

// RecodeOptions 转换服务参数
type RecodeOptions struct {
	MaxCapacity int            // 单次调用的最大输出容量
	Persist     bool           // 是否使用数据库（转换记录与默认偏移）
	Metrics     *Metrics       // 可为空
	Events      *EventListener // 可为空
}

// RecodeService 转换服务
type RecodeService struct {
	opts RecodeOptions
}

// NewRecodeService 创建转换服务
func NewRecodeService(opts RecodeOptions) *RecodeService {
	if opts.MaxCapacity < 1 {
		opts.MaxCapacity = 4096
	}
	return &RecodeService{opts: opts}
}

// MaxCapacity 最大输出容量
func (s *RecodeService) MaxCapacity() int {
	return s.opts.MaxCapacity
}

// Encode UTF-8 文本转 PDU 文本
// 7bit 编码时输入字节直接作为默认字母表码（取低 7 位），不做字符映射；
// 需要按字母表映射的文本使用 EncodeAuto
func (s *RecodeService) Encode(req *RecodeRequest) (*RecodeResult, error) {
	return s.recode(pdutext.Encode, req)
}

// Decode PDU 文本转 UTF-8 文本
func (s *RecodeService) Decode(req *RecodeRequest) (*RecodeResult, error) {
	return s.recode(pdutext.Decode, req)
}

// Detect 推断编码类型
func (s *RecodeService) Detect(dir pdutext.Direction, text string) pdutext.Kind {
	kind := pdutext.Detect(dir, []byte(text))
	s.opts.Metrics.observeDetect(dir.String(), kind.String())
	log.WithFields(log.Fields{
		"direction": dir.String(),
		"kind":      kind.String(),
		"bytes":     len(text),
	}).Debug("[Recode] Detected encoding")
	return kind
}

// EncodeAuto 自动选择编码：可用默认字母表表示时打包为 7bit，否则使用 UCS-2
func (s *RecodeService) EncodeAuto(req *RecodeRequest) (*RecodeResult, error) {
	capacity := s.capacity(req.Capacity)
	offset := s.offset(req.Offset)

	kind := s.Detect(pdutext.Encode, req.Text)
	var codes []byte
	if kind == pdutext.SevenBitPacked {
		var err error
		if codes, err = pdutext.Septets(req.Text); err != nil {
			log.Debugf("[Recode] Text not in GSM alphabet, using UCS-2: %v", err)
			kind = pdutext.Ucs2Hex
		}
	}

	var (
		enc pdutext.Encoding
		out *pdutext.Buffer
		err error
	)
	if kind == pdutext.SevenBitPacked {
		enc = pdutext.Encoding{Kind: kind, Offset: offset}
		out, err = pdutext.PackSeptets(codes, offset, capacity)
	} else {
		enc = pdutext.Encoding{Kind: kind}
		out, err = pdutext.Recode(pdutext.Encode, enc, []byte(req.Text), capacity)
	}

	return s.finish(pdutext.Encode, enc, true, req, out, err)
}

// recode 解析请求并调用转换
func (s *RecodeService) recode(dir pdutext.Direction, req *RecodeRequest) (*RecodeResult, error) {
	enc, detected, err := s.encoding(dir, req)
	if err != nil {
		s.opts.Metrics.observeRecode(dir.String(), "unknown", 0, err)
		return nil, err
	}

	out, err := pdutext.Recode(dir, enc, []byte(req.Text), s.capacity(req.Capacity))
	return s.finish(dir, enc, detected, req, out, err)
}

// encoding 解析编码，未指定时按内容推断
func (s *RecodeService) encoding(dir pdutext.Direction, req *RecodeRequest) (pdutext.Encoding, bool, error) {
	var (
		kind     pdutext.Kind
		detected bool
	)
	if req.Kind != "" {
		k, err := pdutext.ParseKind(req.Kind)
		if err != nil {
			return pdutext.Encoding{}, false, err
		}
		kind = k
	} else {
		kind = s.Detect(dir, req.Text)
		detected = true
	}
	if kind == pdutext.Unknown {
		return pdutext.Encoding{}, detected, ErrEncodingRequired
	}

	var offset uint8
	if kind == pdutext.SevenBitPacked {
		offset = s.offset(req.Offset)
	}
	enc, err := pdutext.NewEncoding(kind, offset)
	return enc, detected, err
}

func (s *RecodeService) capacity(requested int) int {
	if requested <= 0 || requested > s.opts.MaxCapacity {
		return s.opts.MaxCapacity
	}
	return requested
}

func (s *RecodeService) offset(requested *uint8) uint8 {
	if requested != nil {
		return *requested
	}
	if s.opts.Persist {
		return database.GetDefaultOffset()
	}
	return 0
}

// finish 记录日志、指标、转换记录并广播事件
func (s *RecodeService) finish(dir pdutext.Direction, enc pdutext.Encoding, detected bool, req *RecodeRequest, out *pdutext.Buffer, err error) (*RecodeResult, error) {
	fields := log.Fields{
		"direction": dir.String(),
		"kind":      enc.Kind.String(),
		"offset":    enc.Offset,
		"bytes":     len(req.Text),
	}
	s.opts.Metrics.observeRecode(dir.String(), enc.Kind.String(), len(req.Text), err)

	record := &models.Conversion{
		Direction: dir.String(),
		Kind:      enc.Kind.String(),
		Offset:    enc.Offset,
		Tag:       enc.Tag(),
		Input:     req.Text,
		Source:    req.Source,
		CreatedAt: time.Now(),
	}

	if err != nil {
		log.WithFields(fields).WithError(err).Warn("[Recode] Conversion failed")
		record.Error = err.Error()
		s.save(record)
		return nil, err
	}

	res := &RecodeResult{
		Direction: dir.String(),
		Kind:      enc.Kind.String(),
		Offset:    enc.Offset,
		Tag:       enc.Tag(),
		Detected:  detected,
		Input:     req.Text,
		Output:    out.String(),
		Length:    out.Len(),
	}
	log.WithFields(fields).Debugf("[Recode] Converted to %d bytes", out.Len())

	record.Output = res.Output
	s.save(record)
	s.broadcast(res)
	return res, nil
}

// save 写入转换记录，失败只记录日志
func (s *RecodeService) save(record *models.Conversion) {
	if !s.opts.Persist || !database.IsHistoryEnabled() {
		return
	}
	if err := database.CreateConversion(record); err != nil {
		log.Errorf("[Recode] Failed to save conversion: %v", err)
	}
}

func (s *RecodeService) broadcast(res *RecodeResult) {
	if s.opts.Events == nil {
		return
	}
	msg, err := json.Marshal(res)
	if err != nil {
		log.Errorf("[Recode] Failed to marshal event: %v", err)
		return
	}
	s.opts.Events.Broadcast(string(msg))
}

// ErrorClass 错误分类，用于指标标签与 HTTP 状态
func ErrorClass(err error) string {
	switch {
	case errors.Is(err, pdutext.ErrBufferTooSmall):
		return "buffer_too_small"
	case errors.Is(err, pdutext.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, pdutext.ErrInvalidSequence):
		return "invalid_sequence"
	case errors.Is(err, pdutext.ErrUnsupportedCharset):
		return "unsupported_charset"
	case errors.Is(err, pdutext.ErrConversionFailure):
		return "conversion_failure"
	}
	return "error"
}
