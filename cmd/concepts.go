package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/propertyloop/leadmatch/internal/concepts"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "List the built-in concept vocabulary",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tALIASES\tCOMMON VALUES")
		for _, c := range concepts.Builtin().All() {
			aliases := strings.Join(c.Aliases, ", ")
			if len(aliases) > 50 {
				aliases = aliases[:47] + "..."
			}
			values := strings.Join(c.CommonValues, ", ")
			if len(values) > 50 {
				values = values[:47] + "..."
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.ValueType, aliases, values)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(conceptsCmd)
}
