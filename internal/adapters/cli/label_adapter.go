package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/example/yms/internal/ports/primary"
)

// LabelAdapter is a thin adapter that translates CLI operations to LabelService calls.
// It depends only on the LabelService interface, enabling easy testing with mocks.
type LabelAdapter struct {
	service primary.LabelService
	out     io.Writer
}

// NewLabelAdapter creates a new LabelAdapter with the given service.
func NewLabelAdapter(service primary.LabelService, out io.Writer) *LabelAdapter {
	return &LabelAdapter{
		service: service,
		out:     out,
	}
}

// Generate issues a batch and prints it. Plain output is one label per line
// for piping into a printer.
func (a *LabelAdapter) Generate(ctx context.Context, req primary.GenerateLabelsRequest, plain bool) (*primary.GenerateLabelsResponse, error) {
	resp, err := a.service.GenerateLabels(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate labels: %w", err)
	}

	if plain {
		for _, l := range resp.Labels {
			fmt.Fprintln(a.out, l.Text)
		}
		return resp, nil
	}

	if resp.Reset {
		fmt.Fprintf(a.out, "%s Prefix changed to %q: %s counter restarted at 1\n", warnMark, resp.Prefix, resp.Category)
	}
	verb := "Issued"
	if resp.Continuation {
		verb = "Continued run with"
	}
	fmt.Fprintf(a.out, "%s %s %d %s labels (%s)\n", okMark, verb, len(resp.Labels), resp.Category, resp.BatchID)
	fmt.Fprintln(a.out)

	tbl := a.newTable("LABEL", "COUNT", "CAPTION")
	for _, l := range resp.Labels {
		tbl.AddRow(l.Text, l.Count, l.Caption)
	}
	tbl.Print()

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, dimStyle.Render(fmt.Sprintf("Run %s, counts %d-%d", resp.RunID, resp.RunStart, resp.EndCount)))
	fmt.Fprintln(a.out, dimStyle.Render(fmt.Sprintf("Need more? yms more %s -n <count>", resp.Category)))

	return resp, nil
}

// ListCounters prints every category counter.
func (a *LabelAdapter) ListCounters(ctx context.Context) ([]*primary.Counter, error) {
	counters, err := a.service.ListCounters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list counters: %w", err)
	}

	tbl := a.newTable("CATEGORY", "ISSUED", "LAST PREFIX", "NEXT", "CAPACITY")
	for _, c := range counters {
		tbl.AddRow(c.Category, c.IssuedTotal, orDash(c.LastPrefix), orDash(c.NextLabel), capacityText(c.Capacity))
	}
	tbl.Print()

	return counters, nil
}

// ShowCounter displays details for a single counter.
func (a *LabelAdapter) ShowCounter(ctx context.Context, categoryName string) (*primary.Counter, error) {
	c, err := a.service.GetCounter(ctx, categoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to get counter: %w", err)
	}

	fmt.Fprintf(a.out, "\nCounter: %s\n", boldStyle.Render(c.Category))
	fmt.Fprintf(a.out, "Issued:      %d\n", c.IssuedTotal)
	fmt.Fprintf(a.out, "Last prefix: %s\n", orDash(c.LastPrefix))
	fmt.Fprintf(a.out, "Next label:  %s\n", orDash(c.NextLabel))
	fmt.Fprintf(a.out, "Capacity:    %s\n", capacityText(c.Capacity))
	if c.Capacity > 0 && c.IssuedTotal >= c.Capacity {
		fmt.Fprintf(a.out, "%s\n", color.New(color.FgRed).Sprint("EXHAUSTED: reset the counter or widen digit_width"))
	}
	fmt.Fprintln(a.out)

	return c, nil
}

// ResetCounter zeroes a counter and reports the previous total.
func (a *LabelAdapter) ResetCounter(ctx context.Context, categoryName string, force bool) (*primary.Counter, error) {
	before, err := a.service.GetCounter(ctx, categoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to get counter: %w", err)
	}

	c, err := a.service.ResetCounter(ctx, primary.ResetCounterRequest{
		Category: categoryName,
		Force:    force,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "%s Counter %s reset\n", okMark, c.Category)
	fmt.Fprintf(a.out, "  %d → 0\n", before.IssuedTotal)

	return c, nil
}

// ListCategories prints the configured categories.
func (a *LabelAdapter) ListCategories(ctx context.Context) ([]*primary.Category, error) {
	cats, err := a.service.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	tbl := a.newTable("NAME", "PREFIX", "WIDTH", "POLICY", "DESCRIPTION")
	for _, c := range cats {
		prefix := c.Prefix
		if c.PrefixMutable {
			prefix = "(user-set)"
		}
		tbl.AddRow(c.Name, prefix, c.DigitWidth, c.Policy, c.Description)
	}
	tbl.Print()

	return cats, nil
}

// Decode prints the count behind a label.
func (a *LabelAdapter) Decode(ctx context.Context, req primary.DecodeLabelRequest) (*primary.DecodedLabel, error) {
	d, err := a.service.DecodeLabel(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to decode label: %w", err)
	}

	status := color.New(color.FgYellow).Sprint("not issued yet")
	if d.Issued {
		status = color.New(color.FgGreen).Sprint("issued")
	}
	fmt.Fprintf(a.out, "%s → %s #%d (%s)\n", d.Label, d.Category, d.Count, status)

	return d, nil
}

// History prints issued batches, newest first.
func (a *LabelAdapter) History(ctx context.Context, filters primary.BatchFilters) ([]*primary.Batch, error) {
	batches, err := a.service.ListBatches(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	if len(batches) == 0 {
		fmt.Fprintln(a.out, "No batches issued yet.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Issue your first batch:")
		fmt.Fprintln(a.out, "  yms generate Cartons -n 5")
		return batches, nil
	}

	tbl := a.newTable("ID", "CATEGORY", "PREFIX", "RANGE", "RUN", "BY", "CREATED")
	for _, b := range batches {
		rng := fmt.Sprintf("%d-%d", b.StartCount, b.EndCount)
		if b.Continuation {
			rng += " (more)"
		}
		tbl.AddRow(b.ID, b.Category, b.Prefix, rng, shortRun(b.RunID), orDash(b.ActorID), b.CreatedAt)
	}
	tbl.Print()

	return batches, nil
}

func capacityText(capacity int) string {
	if capacity == 0 {
		return "unbounded"
	}
	return strconv.Itoa(capacity)
}

func shortRun(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
