package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Isolyth/dollcode/pkg/config"
)

const (
	tabwriterMinWidth = 6
	tabwriterWidth    = 4
	tabwriterPadding  = 3
	tabwriterPadChar  = ' '
	tabwriterFlags    = 0
)

func init() {
	charsetCmd.AddCommand(charsetLsCmd)
	charsetCmd.AddCommand(charsetAddCmd)
	charsetCmd.AddCommand(charsetSelectCmd)
	charsetCmd.AddCommand(charsetRmCmd)
	charsetCmd.AddCommand(charsetCheckCmd)
	rootCmd.AddCommand(charsetCmd)
}

var charsetCmd = &cobra.Command{
	Use:   "charset",
	Short: "Manage named character sets",
}

var charsetLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List configured charsets",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(outWriter, tabwriterMinWidth, tabwriterWidth, tabwriterPadding, tabwriterPadChar, tabwriterFlags)
		fmt.Fprintf(w, "NAME\tCHAR1\tCHAR2\tCHAR3\tSEPARATOR\tVALID\t\n")
		for _, entry := range cfg.Charsets {
			name := entry.Name
			if name == cfg.CurrentCharset {
				name += "*"
			}
			cs := entry.CharSet()
			fmt.Fprintf(w, "%v\t%q\t%q\t%q\t%q\t%v\t\n", name, cs.Char1, cs.Char2, cs.Char3, cs.Separator, cs.Valid())
		}
		w.Flush()
	},
}

var charsetAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a charset to the config",
	Long: "Add a charset to the config. Symbols come from the --char1, --char2, --char3 and " +
		"--separator flags; omitted symbols fall back to the built-in default set.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entry := &config.Charset{
			Name:      args[0],
			Char1:     char1Flag,
			Char2:     char2Flag,
			Char3:     char3Flag,
			Separator: separatorFlag,
		}
		if !entry.CharSet().Valid() {
			errorExit("Invalid charset: all four symbols must be non-empty and pairwise distinct")
		}
		if err := cfg.AddCharset(entry); err != nil {
			errorExit("Unable to write config: %v", err)
		}
		fmt.Fprintf(outWriter, "Added charset %v.\n", args[0])
	},
}

var charsetSelectCmd = &cobra.Command{
	Use:               "select [NAME]",
	Short:             "Set the current charset",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: validCharsetArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			names := make([]string, 0, len(cfg.Charsets))
			pos := 0
			for i, entry := range cfg.Charsets {
				names = append(names, entry.Name)
				if entry.Name == cfg.CurrentCharset {
					pos = i
				}
			}

			searcher := func(input string, index int) bool {
				return strings.Contains(names[index], input)
			}

			p := promptui.Select{
				Label:     "Select charset",
				Items:     names,
				Searcher:  searcher,
				Size:      10,
				CursorPos: pos,
			}

			_, selected, err := p.Run()
			if err != nil {
				// User cancelled (e.g. Ctrl-C). Not an error.
				return
			}
			name = selected
		}

		if err := cfg.SetCurrentCharset(name); err != nil {
			errorExit("Unable to select charset: %v", err)
		}
		fmt.Fprintf(outWriter, "Switched to charset %v.\n", name)
	},
}

var charsetRmCmd = &cobra.Command{
	Use:               "rm NAME",
	Short:             "Remove a charset from the config",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: validCharsetArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cfg.RemoveCharset(args[0]); err != nil {
			errorExit("Unable to remove charset: %v", err)
		}
		fmt.Fprintf(outWriter, "Removed charset %v.\n", args[0])
	},
}

var charsetCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the active charset",
	Long: "Validate the active charset, including any --char1/--char2/--char3/--separator " +
		"overrides. Exits non-zero when the set is unusable.",
	Run: func(cmd *cobra.Command, args []string) {
		cs := resolveCharSet()
		if !cs.Valid() {
			errorExit("Charset invalid: all four symbols must be non-empty and pairwise distinct")
		}
		fmt.Fprintf(outWriter, "Charset OK: char1=%q char2=%q char3=%q separator=%q\n", cs.Char1, cs.Char2, cs.Char3, cs.Separator)
	},
}

func validCharsetArgs(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(cfg.Charsets))
	for _, entry := range cfg.Charsets {
		names = append(names, entry.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
