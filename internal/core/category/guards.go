package category

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// GenerateContext provides the context needed to evaluate a print run request.
type GenerateContext struct {
	CategoryName   string
	RequestedCount int
	MaxBatch       int // Host-enforced upper bound; 0 disables the bound
}

// CanGenerate evaluates whether a batch of the requested size may be printed.
// Rule: a batch holds at least one label and at most MaxBatch labels.
func CanGenerate(ctx GenerateContext) GuardResult {
	if ctx.RequestedCount < 1 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Cannot generate %d labels for %s - request at least 1", ctx.RequestedCount, ctx.CategoryName),
		}
	}
	if ctx.MaxBatch > 0 && ctx.RequestedCount > ctx.MaxBatch {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Cannot generate %d labels for %s - at most %d per batch", ctx.RequestedCount, ctx.CategoryName, ctx.MaxBatch),
		}
	}
	return GuardResult{Allowed: true}
}

// ResetContext provides the context for a manual counter reset.
type ResetContext struct {
	CategoryName string
	IssuedTotal  int
	Force        bool
}

// CanResetCounter evaluates whether a category counter may be zeroed by hand.
// Rule: a counter that has issued labels needs --force, since reprinting from 1
// duplicates labels already on the floor.
func CanResetCounter(ctx ResetContext) GuardResult {
	if ctx.IssuedTotal > 0 && !ctx.Force {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Category %s has issued %d labels. Use --force to reset anyway", ctx.CategoryName, ctx.IssuedTotal),
		}
	}
	return GuardResult{Allowed: true}
}
