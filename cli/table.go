package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rehiy/sms-text/pdutext"
)

// NewTagCmd 计算编码标签字节
func NewTagCmd() *cobra.Command {
	var (
		kind   string
		offset uint8
		parse  string
	)
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Print the wire tag of an encoding",
		Long: "Print the wire tag of an encoding, or parse one with --parse\n" +
			"usage:\n" +
			"\tpductl tag --kind 7bit --offset 3\n" +
			"\tpductl tag --parse 0x30",
		RunE: func(cmd *cobra.Command, args []string) error {
			var enc pdutext.Encoding
			if parse != "" {
				v, err := strconv.ParseUint(parse, 0, 8)
				if err != nil {
					return logErrorCmd(*cmd, err)
				}
				enc = pdutext.ParseTag(byte(v))
			} else {
				k, err := pdutext.ParseKind(kind)
				if err != nil {
					return logErrorCmd(*cmd, err)
				}
				if enc, err = pdutext.NewEncoding(k, offset); err != nil {
					return logErrorCmd(*cmd, err)
				}
			}

			if RawOutput {
				logRawCmd(*cmd, fmt.Sprintf("0x%02X", enc.Tag()))
				return nil
			}
			return logJSONCmd(*cmd, map[string]any{
				"kind":   enc.Kind.String(),
				"offset": enc.Offset,
				"tag":    fmt.Sprintf("0x%02X", enc.Tag()),
			})
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "7bit", "encoding kind: 7bit, 8bit, ucs2, raw")
	cmd.Flags().Uint8VarP(&offset, "offset", "o", 0, "bits already used by a preceding header (7bit only)")
	cmd.Flags().StringVar(&parse, "parse", "", "tag byte to parse, e.g. 0x30")
	return cmd
}

// NewTableCmd 打印 7bit 字符表
func NewTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the 7-bit septet table",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, s := range pdutext.SevenBitTable {
				logRawCmd(*cmd, fmt.Sprintf("%02X %q", i, s))
			}
			return nil
		},
	}
}
