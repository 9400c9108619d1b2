// Package recommend matches stored advice against a lead's answers and ranks
// what applies.
package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/propertyloop/leadmatch/internal/advice"
	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/fieldcatalog"
	"github.com/propertyloop/leadmatch/internal/flows"
	"github.com/propertyloop/leadmatch/internal/leads"
	"github.com/propertyloop/leadmatch/internal/rules"
)

// Recommendation is one piece of advice that matched a lead, with the score
// its rule accumulated.
type Recommendation struct {
	Advice advice.Advice `json:"advice"`
	Score  float64       `json:"score"`
}

// Options tune how many recommendations come back and the minimum score a
// rule match needs to be included. Rule-less advice is always applicable
// and is exempt from the floor. Zero values mean no limit and no floor.
type Options struct {
	MaxResults int
	MinScore   float64
}

// Recommender evaluates every advice rule for a tenant against one lead's
// answers. Advice without a rule is treated as always applicable with a
// score of zero.
type Recommender struct {
	leadStore   *leads.Store
	flowStore   *flows.Store
	adviceStore *advice.Store
	registry    *concepts.Registry
	opts        Options
}

// NewRecommender wires a recommender over the three stores.
func NewRecommender(leadStore *leads.Store, flowStore *flows.Store, adviceStore *advice.Store, registry *concepts.Registry, opts Options) *Recommender {
	return &Recommender{
		leadStore:   leadStore,
		flowStore:   flowStore,
		adviceStore: adviceStore,
		registry:    registry,
		opts:        opts,
	}
}

// ForLead loads the lead and hands its answers to ForAnswers.
func (r *Recommender) ForLead(ctx context.Context, leadID string) ([]Recommendation, error) {
	lead, err := r.leadStore.Get(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("loading lead: %w", err)
	}
	return r.ForAnswers(ctx, lead.TenantID, lead.FlowID, lead.Answers)
}

// ForAnswers rebuilds the tenant's field catalog from its live flows and
// evaluates every advice rule in scope against the given answers. Matches
// come back sorted by score, highest first; equal scores keep the store's
// ordering.
func (r *Recommender) ForAnswers(ctx context.Context, tenantID, flowID string, answers map[string]string) ([]Recommendation, error) {
	tenantFlows, err := r.flowStore.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("loading flows: %w", err)
	}
	catalog := fieldcatalog.Build(r.registry, tenantFlows)

	entries, err := r.adviceStore.ListByTenant(ctx, tenantID, flowID)
	if err != nil {
		return nil, fmt.Errorf("loading advice: %w", err)
	}

	var recs []Recommendation
	for _, a := range entries {
		if a.Rule == nil {
			recs = append(recs, Recommendation{Advice: a})
			continue
		}
		result := rules.EvaluateGroup(*a.Rule, answers, catalog)
		if !result.Matched {
			continue
		}
		if result.Score < r.opts.MinScore {
			continue
		}
		recs = append(recs, Recommendation{Advice: a, Score: result.Score})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if r.opts.MaxResults > 0 && len(recs) > r.opts.MaxResults {
		recs = recs[:r.opts.MaxResults]
	}
	return recs, nil
}
