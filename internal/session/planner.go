package session

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// ErrEmptyPlan is returned when no kinds are given.
var ErrEmptyPlan = errors.New("plan needs at least one kind")

// AccuracySource reports historical accuracy for a kind.
// store.EventRepo satisfies it.
type AccuracySource interface {
	KindAccuracy(ctx context.Context, kind string) (float64, error)
}

// NewPlan builds a plan with one slot per distinct kind, in the order
// given, all at level.
func NewPlan(kinds []problemgen.Kind, level int) (*Plan, error) {
	if len(kinds) == 0 {
		return nil, ErrEmptyPlan
	}
	seen := make(map[problemgen.Kind]bool, len(kinds))
	plan := &Plan{}
	for _, k := range kinds {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: %q", problemgen.ErrUnknownKind, k)
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		plan.Slots = append(plan.Slots, PlanSlot{Kind: k, Level: level})
	}
	return plan, nil
}

// ParsePlan resolves kind names and builds a plan. An unknown name fails
// before any exercise is generated.
func ParsePlan(names []string, level int) (*Plan, error) {
	kinds := make([]problemgen.Kind, 0, len(names))
	for _, n := range names {
		k, err := problemgen.ParseKind(n)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return NewPlan(kinds, level)
}

// StrandPlan builds a plan covering every kind in a strand.
func StrandPlan(s problemgen.Strand, level int) (*Plan, error) {
	infos := problemgen.ByStrand(s)
	kinds := make([]problemgen.Kind, len(infos))
	for i, info := range infos {
		kinds[i] = info.Kind
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("strand %q: %w", s, ErrEmptyPlan)
	}
	return NewPlan(kinds, level)
}

// WeakestFirst reorders the plan so the kinds with the lowest historical
// accuracy come first. Kinds never attempted count as 0. Ties keep their
// original order.
func WeakestFirst(ctx context.Context, plan *Plan, src AccuracySource) error {
	acc := make(map[problemgen.Kind]float64, len(plan.Slots))
	for _, s := range plan.Slots {
		a, err := src.KindAccuracy(ctx, string(s.Kind))
		if err != nil {
			return fmt.Errorf("accuracy for %s: %w", s.Kind, err)
		}
		acc[s.Kind] = a
	}
	sort.SliceStable(plan.Slots, func(i, j int) bool {
		return acc[plan.Slots[i].Kind] < acc[plan.Slots[j].Kind]
	})
	return nil
}
