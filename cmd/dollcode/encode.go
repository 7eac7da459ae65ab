package main

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/cobra"

	"github.com/Isolyth/dollcode/pkg/dollcode"
)

var templateFlag bool

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().BoolVar(&templateFlag, "template", false, "Render the input as a Go template with sprig functions before encoding")
}

var encodeCmd = &cobra.Command{
	Use:   "encode [TEXT]",
	Short: "Encode text to dollcode",
	Long:  "Encode text to dollcode. Encodes the arguments joined by spaces, or stdin when no argument is given.",
	Run: func(cmd *cobra.Command, args []string) {
		text := readInput(args)

		if templateFlag {
			tpl, err := template.New("dollcode").Funcs(sprig.HermeticTxtFuncMap()).Parse(text)
			if err != nil {
				errorExit("Failed to parse go template: %v", err)
			}

			buf := bytes.NewBuffer(nil)
			if err := tpl.Execute(buf, nil); err != nil {
				errorExit("Failed to execute go template: %v", err)
			}
			text = buf.String()
		}

		fmt.Fprintln(outWriter, dollcode.Encode(text, getCharSet()))
	},
}
