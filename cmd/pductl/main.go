package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rehiy/sms-text/cli"
)

func main() {
	// Root
	var rootCmd = &cobra.Command{
		Use:   "pductl",
		Short: "SMS PDU text recoder",
		// 子命令已自行打印错误
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Root Commands
	rootCmd.AddCommand(cli.NewEncodeCmd())
	rootCmd.AddCommand(cli.NewDecodeCmd())
	rootCmd.AddCommand(cli.NewAutoCmd())
	rootCmd.AddCommand(cli.NewDetectCmd())
	rootCmd.AddCommand(cli.NewTagCmd())
	rootCmd.AddCommand(cli.NewTableCmd())

	// Root Flags
	rootCmd.PersistentFlags().BoolVar(
		&cli.RawOutput,
		"raw",
		false,
		"Enables raw output mode for easier parsing of output",
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
