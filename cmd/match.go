package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/propertyloop/leadmatch/internal/advice"
	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/flows"
	"github.com/propertyloop/leadmatch/internal/leads"
	"github.com/propertyloop/leadmatch/internal/progress"
	"github.com/propertyloop/leadmatch/internal/recommend"
)

var (
	matchLeadsFile string
	matchTenant    string
	matchFlow      string
)

// bulkLead is one entry in a --leads-file batch: answers keyed by field id.
type bulkLead struct {
	TenantID string            `json:"tenant_id,omitempty"`
	FlowID   string            `json:"flow_id,omitempty"`
	Answers  map[string]string `json:"answers"`
}

// bulkResult pairs a batch entry's index with its recommendations.
type bulkResult struct {
	Index           int                        `json:"index"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Error           string                     `json:"error,omitempty"`
}

var matchCmd = &cobra.Command{
	Use:   "match [lead-id]",
	Short: "Evaluate advice rules for a stored lead or a batch file",
	Long: `With a lead id, prints the ranked recommendations for that lead.
With --leads-file, evaluates every entry in a JSON array of
{"tenant_id","flow_id","answers"} objects and prints one result per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && matchLeadsFile == "" {
			return fmt.Errorf("provide a lead id or --leads-file")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		rec := recommend.NewRecommender(
			leads.NewStore(database),
			flows.NewStore(database),
			advice.NewStore(database),
			concepts.Builtin(),
			recommend.Options{MaxResults: cfg.MaxRecommendations, MinScore: cfg.MinScore},
		)

		ctx := context.Background()
		if len(args) == 1 {
			return matchOne(ctx, rec, args[0])
		}
		return matchBulk(ctx, rec, matchLeadsFile)
	},
}

func matchOne(ctx context.Context, rec *recommend.Recommender, leadID string) error {
	recs, err := rec.ForLead(ctx, leadID)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("No advice matched this lead.")
		return nil
	}
	for i, r := range recs {
		fmt.Printf("%d. %s (score %.1f, %s)\n", i+1, r.Advice.Title, r.Score, r.Advice.Category)
	}
	return nil
}

func matchBulk(ctx context.Context, rec *recommend.Recommender, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading leads file: %w", err)
	}
	var batch []bulkLead
	if err := json.Unmarshal(data, &batch); err != nil {
		return fmt.Errorf("parsing leads file: %w", err)
	}

	reporter := progress.NewReporter()
	reporter.Start(len(batch))

	enc := json.NewEncoder(os.Stdout)
	for i, entry := range batch {
		tenantID := entry.TenantID
		if tenantID == "" {
			tenantID = matchTenant
		}
		flowID := entry.FlowID
		if flowID == "" {
			flowID = matchFlow
		}

		result := bulkResult{Index: i}
		recs, err := rec.ForAnswers(ctx, tenantID, flowID, entry.Answers)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Recommendations = recs
		}
		if result.Recommendations == nil {
			result.Recommendations = []recommend.Recommendation{}
		}
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		reporter.Update(i+1, fmt.Sprintf("lead %d/%d", i+1, len(batch)))
	}
	reporter.Finish()
	return nil
}

func init() {
	matchCmd.Flags().StringVar(&matchLeadsFile, "leads-file", "", "JSON file with a batch of leads to evaluate")
	matchCmd.Flags().StringVar(&matchTenant, "tenant", "", "Default tenant id for batch entries that omit one")
	matchCmd.Flags().StringVar(&matchFlow, "flow", "", "Default flow id for batch entries that omit one")
	rootCmd.AddCommand(matchCmd)
}
