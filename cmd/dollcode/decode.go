package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/Isolyth/dollcode/pkg/dollcode"
)

var outputFlag string

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringVarP(&outputFlag, "output", "o", "default", "Output format. Possible values: default, raw, json")
	_ = decodeCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"default", "raw", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
}

var decodeCmd = &cobra.Command{
	Use:   "decode [DOLLCODE]",
	Short: "Decode dollcode to text",
	Long: "Decode dollcode to text. Decoding never fails outright: groups that do not parse " +
		"become U+FFFD replacement characters and are tallied, and the exit status stays zero.",
	Run: func(cmd *cobra.Command, args []string) {
		var in string
		if len(args) > 0 {
			// Separators are part of the code, so args concatenate
			// without a joiner.
			in = strings.Join(args, "")
		} else {
			in = readInput(nil)
		}

		res := dollcode.Decode(in, getCharSet())

		switch outputFlag {
		case "raw":
			fmt.Fprintln(outWriter, res.Text)
		case "json":
			b, err := prettyjson.Marshal(res)
			if err != nil {
				errorExit("Unable to format result: %v", err)
			}
			fmt.Fprintln(colorableOut, string(b))
		case "default":
			fmt.Fprintln(outWriter, res.Text)
			if res.HasErrors {
				w := tabwriter.NewWriter(errWriter, tabwriterMinWidth, tabwriterWidth, tabwriterPadding, tabwriterPadChar, tabwriterFlags)
				fmt.Fprintf(w, "Undecodable groups:\t%v\n", res.ErrorCount)
				w.Flush()
			}
		default:
			errorExit("Invalid output format: %v. Possible values: default, raw, json", outputFlag)
		}
	},
}
