package cli

import (
	"github.com/spf13/cobra"

	"github.com/rehiy/sms-text/pdutext"
	"github.com/rehiy/sms-text/service"
)

var recoder = service.NewRecodeService(service.RecodeOptions{})

// recodeFlags 转换命令参数
type recodeFlags struct {
	kind     string
	offset   uint8
	capacity int
}

func (f *recodeFlags) request(cmd *cobra.Command, text string) *service.RecodeRequest {
	req := &service.RecodeRequest{
		Text:     text,
		Kind:     f.kind,
		Capacity: f.capacity,
		Source:   "cli",
	}
	if cmd.Flags().Changed("offset") {
		offset := f.offset
		req.Offset = &offset
	}
	return req
}

type recodeFunc func(*service.RecodeRequest) (*service.RecodeResult, error)

func recodeRun(f *recodeFlags, fn recodeFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return logUsageCmd(*cmd, cmd.Use)
		}

		res, err := fn(f.request(cmd, args[0]))
		if err != nil {
			return logErrorCmd(*cmd, err)
		}

		if RawOutput {
			logRawCmd(*cmd, res.Output)
			return nil
		}
		return logJSONCmd(*cmd, res)
	}
}

func addRecodeFlags(cmd *cobra.Command, f *recodeFlags, withKind bool) {
	if withKind {
		cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "encoding kind: 7bit, 8bit, ucs2, raw (detected when empty)")
	}
	cmd.Flags().Uint8VarP(&f.offset, "offset", "o", 0, "bits already used by a preceding header (7bit only)")
	cmd.Flags().IntVarP(&f.capacity, "capacity", "c", 0, "output capacity in bytes, terminator included")
}

// NewEncodeCmd UTF-8 文本转 PDU 文本
func NewEncodeCmd() *cobra.Command {
	f := &recodeFlags{}
	cmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode UTF-8 text into PDU text",
		Long: "Encode UTF-8 text into PDU text\n" +
			"With --kind 7bit the input bytes are taken as alphabet codes as-is;\n" +
			"use auto to map text onto the GSM alphabet first\n" +
			"usage:\n" +
			"\tpductl encode --kind 7bit hello",
		RunE: recodeRun(f, recoder.Encode),
	}
	addRecodeFlags(cmd, f, true)
	return cmd
}

// NewDecodeCmd PDU 文本转 UTF-8 文本
func NewDecodeCmd() *cobra.Command {
	f := &recodeFlags{}
	cmd := &cobra.Command{
		Use:   "decode <pdu text>",
		Short: "Decode PDU text into UTF-8 text",
		Long: "Decode PDU text into UTF-8 text\n" +
			"usage:\n" +
			"\tpductl decode --kind 7bit E8329BFD06",
		RunE: recodeRun(f, recoder.Decode),
	}
	addRecodeFlags(cmd, f, true)
	return cmd
}

// NewAutoCmd 自动选择 7bit 或 UCS-2 编码
func NewAutoCmd() *cobra.Command {
	f := &recodeFlags{}
	cmd := &cobra.Command{
		Use:   "auto <text>",
		Short: "Encode text with the smallest fitting alphabet",
		Long: "Encode text as packed 7bit when every character is in the GSM\n" +
			"alphabet, UCS-2 otherwise\n" +
			"usage:\n" +
			"\tpductl auto 你好",
		RunE: recodeRun(f, recoder.EncodeAuto),
	}
	addRecodeFlags(cmd, f, false)
	return cmd
}

// NewDetectCmd 推断编码类型
func NewDetectCmd() *cobra.Command {
	var direction string
	cmd := &cobra.Command{
		Use:   "detect <text>",
		Short: "Detect the encoding of a text",
		Long: "Detect the encoding of a text for the given direction\n" +
			"usage:\n" +
			"\tpductl detect --direction decode 'plain text'",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return logUsageCmd(*cmd, cmd.Use)
			}

			dir, err := pdutext.ParseDirection(direction)
			if err != nil {
				return logErrorCmd(*cmd, err)
			}

			kind := recoder.Detect(dir, args[0])
			if RawOutput {
				logRawCmd(*cmd, kind.String())
				return nil
			}
			return logJSONCmd(*cmd, map[string]any{
				"direction": dir.String(),
				"kind":      kind.String(),
				"tag":       byte(kind),
			})
		},
	}
	cmd.Flags().StringVarP(&direction, "direction", "d", "encode", "direction: encode or decode")
	return cmd
}
