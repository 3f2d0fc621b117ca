package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehiy/sms-text/pdutext"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{Use: "pductl", SilenceErrors: true, SilenceUsage: true}
	root.AddCommand(NewEncodeCmd(), NewDecodeCmd(), NewAutoCmd(), NewDetectCmd(), NewTagCmd(), NewTableCmd())
	root.PersistentFlags().BoolVar(&RawOutput, "raw", false, "raw output")
	return root
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	RawOutput = false
	return stdout.String(), stderr.String(), err
}

func TestRecodeCommands(t *testing.T) {
	cases := []struct {
		desc string
		args []string
		out  string
	}{
		{"encode 7bit", []string{"encode", "--raw", "-k", "7bit", "hello"}, "E8329BFD06\n"},
		{"decode 7bit", []string{"decode", "--raw", "-k", "7bit", "E8329BFD06"}, "hello\n"},
		{"decode 8bit", []string{"decode", "--raw", "-k", "8bit", "414243"}, "ABC\n"},
		{"encode ucs2", []string{"encode", "--raw", "-k", "ucs2", "你好"}, "4F60597D\n"},
		{"encode offset", []string{"encode", "--raw", "-k", "7bit", "-o", "3", "\x08e"}, "5106\n"},
		{"auto gsm", []string{"auto", "--raw", "hello"}, "E8329BFD06\n"},
		{"auto ucs2", []string{"auto", "--raw", "a{"}, "0061007B\n"},
		{"detect encode", []string{"detect", "--raw", "-d", "encode", "é"}, "ucs2\n"},
		{"detect decode", []string{"detect", "--raw", "-d", "decode", "plain text"}, "raw\n"},
		{"tag", []string{"tag", "--raw", "-k", "7bit", "-o", "3"}, "0x30\n"},
		{"tag ucs2", []string{"tag", "--raw", "-k", "ucs2"}, "0x02\n"},
		{"parse tag", []string{"tag", "--raw", "--parse", "0x30"}, "0x30\n"},
	}

	for _, tc := range cases {
		out, errOut, err := execute(t, tc.args...)
		assert.NoError(t, err, tc.desc)
		assert.Equal(t, tc.out, out, tc.desc)
		assert.Empty(t, errOut, tc.desc)
	}
}

func TestRecodeCommandErrors(t *testing.T) {
	cases := []struct {
		desc     string
		args     []string
		err      string
		sentinel error
	}{
		{"odd hex", []string{"decode", "-k", "8bit", "ABC"}, "invalid input", pdutext.ErrInvalidInput},
		{"unknown kind", []string{"encode", "-k", "utf32", "hi"}, "invalid input", pdutext.ErrInvalidInput},
		{"offset on ucs2", []string{"tag", "-k", "ucs2", "-o", "2"}, "invalid input", pdutext.ErrInvalidInput},
		{"bad direction", []string{"detect", "-d", "sideways", "x"}, "invalid input", pdutext.ErrInvalidInput},
		{"capacity", []string{"encode", "-k", "ucs2", "-c", "8", "hello"}, "buffer too small", pdutext.ErrBufferTooSmall},
	}

	for _, tc := range cases {
		_, errOut, err := execute(t, tc.args...)
		assert.ErrorIs(t, err, tc.sentinel, tc.desc)
		assert.Contains(t, errOut, tc.err, tc.desc)
	}
}

func TestJSONOutput(t *testing.T) {
	out, _, err := execute(t, "encode", "-k", "7bit", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "E8329BFD06")
	assert.Contains(t, out, "\"kind\"")

	out, _, err = execute(t, "encode", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "E8329BFD06")
}

func TestUsage(t *testing.T) {
	out, _, err := execute(t, "encode")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, out, "usage: encode <text>")
}

func TestTableCommand(t *testing.T) {
	out, _, err := execute(t, "table")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 128)
	assert.Equal(t, `00 "@"`, lines[0])
	assert.Equal(t, `41 "A"`, lines[0x41])
}
