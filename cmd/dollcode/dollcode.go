package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/Isolyth/dollcode/pkg/config"
	"github.com/Isolyth/dollcode/pkg/dollcode"
)

var cfgFile string

var (
	outWriter io.Writer = os.Stdout
	errWriter io.Writer = os.Stderr
	inReader  io.Reader = os.Stdin

	colorableOut io.Writer = colorable.NewColorableStdout()
)

var rootCmd = &cobra.Command{
	Use:   "dollcode",
	Short: "Encode and decode dollcode, a bijective base-3 text encoding",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		outWriter = cmd.OutOrStdout()
		errWriter = cmd.ErrOrStderr()
		inReader = cmd.InOrStdin()

		if outWriter != os.Stdout {
			colorableOut = outWriter
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var cfg config.Config

var (
	charsetOverride string
	char1Flag       string
	char2Flag       string
	char3Flag       string
	separatorFlag   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dollcode/config)")
	rootCmd.PersistentFlags().StringVarP(&charsetOverride, "charset", "c", "", "set a temporary current charset")
	rootCmd.PersistentFlags().StringVar(&char1Flag, "char1", "", "Override the digit-1 symbol of the active charset")
	rootCmd.PersistentFlags().StringVar(&char2Flag, "char2", "", "Override the digit-2 symbol of the active charset")
	rootCmd.PersistentFlags().StringVar(&char3Flag, "char3", "", "Override the digit-3 symbol of the active charset")
	rootCmd.PersistentFlags().StringVar(&separatorFlag, "separator", "", "Override the separator symbol of the active charset")
	cobra.OnInitialize(onInit)
}

func onInit() {
	var err error
	cfg, err = config.ReadConfig(cfgFile)
	if err != nil {
		errorExit("Invalid config: %v", err)
	}

	cfg.CharsetOverride = charsetOverride

	if charsetOverride != "" && !cfg.HasCharset(charsetOverride) {
		errorExit("Charset %v not found in config", charsetOverride)
	}
}

// resolveCharSet builds the character set in effect: the active config
// entry (or the built-in default) with any symbol flags applied on top.
// No validity check happens here.
func resolveCharSet() dollcode.CharSet {
	cs := cfg.ActiveCharset().CharSet()
	if char1Flag != "" {
		cs.Char1 = char1Flag
	}
	if char2Flag != "" {
		cs.Char2 = char2Flag
	}
	if char3Flag != "" {
		cs.Char3 = char3Flag
	}
	if separatorFlag != "" {
		cs.Separator = separatorFlag
	}
	return cs
}

// getCharSet is resolveCharSet plus the validity gate. The codec itself
// never validates its charset, so the CLI refuses invalid sets up front.
func getCharSet() dollcode.CharSet {
	cs := resolveCharSet()
	if !cs.Valid() {
		errorExit("Invalid charset: all four symbols must be non-empty and pairwise distinct")
	}
	return cs
}

// readInput returns the arguments joined by spaces, or everything from
// stdin (minus one trailing newline) when no argument is given.
func readInput(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	data, err := io.ReadAll(inReader)
	if err != nil {
		errorExit("Unable to read from stdin: %v", err)
	}
	return strings.TrimSuffix(string(data), "\n")
}

func errorExit(format string, a ...interface{}) {
	fmt.Fprintf(errWriter, format+"\n", a...)
	os.Exit(1)
}
