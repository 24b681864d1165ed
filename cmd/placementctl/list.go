package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/justsurfingit/placement-portal/internal/listquery"
	"github.com/justsurfingit/placement-portal/internal/remote"
	"github.com/justsurfingit/placement-portal/internal/views"
	"github.com/spf13/cobra"
)

func newListCmd(newClient func() *remote.Client) *cobra.Command {
	var (
		search   string
		filters  []string
		sortKey  string
		page     int
		pageSize int
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List records with search, filters and paging",
		Long: `List fetches every record of a resource and shows one page of it.

Filters are key=value pairs and are ANDed together. minSalary and
maxSalary bound the salary of job openings and offers.

Example:
  placementctl list company --search acme
  placementctl list job-openings --filter status=OPEN --sort -salaryLPA
  placementctl list job-applications --filter job=3 --page 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource := args[0]
			if err := checkResource(resource); err != nil {
				return err
			}

			q := listquery.NewQuery()
			q.Search = search
			q.Sort = sortKey
			q.Page = page
			q.PageSize = pageSize
			for _, f := range filters {
				key, value, ok := strings.Cut(f, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid filter %q (expected key=value)", f)
				}
				if !views.AcceptsFilter(resource, key) {
					return fmt.Errorf("unknown filter %q for %s (valid: %s)", key, resource, strings.Join(views.FilterKeys(resource), ", "))
				}
				q.Filters[key] = value
			}
			if err := q.Validate(); err != nil {
				return err
			}

			view := remote.NewView(newClient(), resource)
			if _, err := view.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("fetch %s: %w", resource, err)
			}
			res := view.Page(views.Engine(resource), q)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printPage(cmd.OutOrStdout(), resource, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive text search")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as key=value (repeatable)")
	cmd.Flags().StringVar(&sortKey, "sort", "", "field to sort by, prefix with - for descending")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", listquery.DefaultPageSize, "records per page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the page as JSON")
	return cmd
}
