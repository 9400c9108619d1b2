package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/fieldcatalog"
	"github.com/propertyloop/leadmatch/internal/flows"
)

var catalogTenant string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the field catalog derived from a tenant's flows",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		flowStore := flows.NewStore(database)
		tenantFlows, err := flowStore.ListByTenant(context.Background(), catalogTenant)
		if err != nil {
			return fmt.Errorf("listing flows: %w", err)
		}
		if len(tenantFlows) == 0 {
			fmt.Printf("No flows found for tenant %s\n", catalogTenant)
			return nil
		}

		catalog := fieldcatalog.Build(concepts.Builtin(), tenantFlows)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FIELD\tKIND\tCONCEPT\tVALUES")
		for _, f := range catalog {
			conceptID := "-"
			if f.Concept != nil {
				conceptID = f.Concept.ID
			}
			values := strings.Join(f.NormalizedValues, ", ")
			if len(values) > 60 {
				values = values[:57] + "..."
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.ID, f.Kind, conceptID, values)
		}
		w.Flush()

		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogTenant, "tenant", "", "Tenant id (required)")
	catalogCmd.MarkFlagRequired("tenant")
	rootCmd.AddCommand(catalogCmd)
}
