package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tessera/internal/pagination"
	pkgerrors "github.com/alexisbeaulieu97/tessera/pkg/errors"
)

type rangeOptions struct {
	total    int
	page     int
	siblings int
	boundary int
}

func newRangeCmd(flags *rootFlags) *cobra.Command {
	opts := rangeOptions{total: 10, page: 1, siblings: 1, boundary: 1}

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the labels a pager shows",
		Long: `Print the pagination range for the given total and active page.
The active page is shown in brackets and collapsed gaps as "…".`,
		Example: "  tessera range --total 20 --page 7",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			params := pagination.Params{
				Total:    max(opts.total, 0),
				Active:   pagination.Clamp(opts.page, opts.total),
				Siblings: opts.siblings,
				Boundary: opts.boundary,
			}
			flags.logger().WithFields(map[string]any{
				"total":    params.Total,
				"active":   params.Active,
				"siblings": params.Siblings,
				"boundary": params.Boundary,
			}).Debug("computing range")

			fmt.Fprintln(cmd.OutOrStdout(), formatRange(params.Range(), params.Active))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.total, "total", opts.total, "Number of pages, negative counts as zero")
	cmd.Flags().IntVar(&opts.page, "page", opts.page, "Active page, clamped into range")
	cmd.Flags().IntVar(&opts.siblings, "siblings", opts.siblings, "Pages shown on each side of the active page")
	cmd.Flags().IntVar(&opts.boundary, "boundary", opts.boundary, "Pages shown at each end")

	return cmd
}

// validate rejects negative widths. Totals and pages are never rejected:
// a negative total is zero and the page is clamped into range.
func (o rangeOptions) validate() error {
	switch {
	case o.siblings < 0:
		return pkgerrors.NewFlagError("siblings", o.siblings, "must not be negative")
	case o.boundary < 0:
		return pkgerrors.NewFlagError("boundary", o.boundary, "must not be negative")
	}
	return nil
}

func formatRange(items []pagination.Item, active int) string {
	if len(items) == 0 {
		return "(no pages)"
	}
	labels := make([]string, len(items))
	for i, item := range items {
		label := item.String()
		if !item.IsDots() && item.Page == active {
			label = "[" + label + "]"
		}
		labels[i] = label
	}
	return strings.Join(labels, " ")
}
