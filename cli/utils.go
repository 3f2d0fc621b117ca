package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
)

// RawOutput 只输出结果文本
var RawOutput bool = false

// errUsage 参数个数不符
var errUsage = errors.New("invalid usage")

func logJSONCmd(cmd cobra.Command, iList ...any) error {
	for _, i := range iList {
		m, err := json.Marshal(i)
		if err != nil {
			return logErrorCmd(cmd, err)
		}

		pj, err := prettyjson.Format(m)
		if err != nil {
			return logErrorCmd(cmd, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", string(pj))
	}
	return nil
}

func logRawCmd(cmd cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}

func logUsageCmd(cmd cobra.Command, u string) error {
	fmt.Fprint(cmd.OutOrStdout(), color.YellowString("\nusage: %s\n\n", u))
	return errUsage
}

// logErrorCmd 打印错误并原样返回，由 main 设置退出码
func logErrorCmd(cmd cobra.Command, err error) error {
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprintf(cmd.ErrOrStderr(), "\nerror: ")

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n", color.RedString(err.Error()))
	return err
}
