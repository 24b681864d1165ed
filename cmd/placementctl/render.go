package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/justsurfingit/placement-portal/internal/listquery"
	"github.com/justsurfingit/placement-portal/internal/views"
)

type column struct {
	header string
	field  string
}

type layout struct {
	noun    string // plural, for empty states
	columns []column
}

var layouts = map[string]layout{
	views.Companies: {"companies", []column{
		{"ID", "id"}, {"NAME", "name"}, {"INDUSTRY", "industry"}, {"LOCATION", "location"},
	}},
	views.JobOpenings: {"job openings", []column{
		{"ID", "id"}, {"TITLE", "title"}, {"COMPANY", "company.name"}, {"LPA", "salaryLPA"}, {"STATUS", "status"},
	}},
	views.JobApplications: {"applications", []column{
		{"ID", "id"}, {"STUDENT", "student.name"}, {"JOB", "jobOpening.title"}, {"COMPANY", "jobOpening.company.name"}, {"STATUS", "status"},
	}},
	views.InterviewSchedules: {"interview schedules", []column{
		{"ID", "id"}, {"STUDENT", "jobApplication.student.name"}, {"JOB", "jobApplication.jobOpening.title"}, {"WHEN", "interviewDateTime"}, {"STATUS", "status"},
	}},
	views.JobOffers: {"job offers", []column{
		{"ID", "id"}, {"STUDENT", "jobApplication.student.name"}, {"COMPANY", "jobApplication.jobOpening.company.name"}, {"SALARY", "salary"}, {"STATUS", "status"},
	}},
	views.Users: {"users", []column{
		{"ID", "id"}, {"NAME", "name"}, {"EMAIL", "email"}, {"ROLE", "role"},
	}},
	views.Notifications: {"notifications", []column{
		{"ID", "id"}, {"TITLE", "title"}, {"READ", "readStatus"}, {"SENT", "createdAt"},
	}},
}

const maxCell = 40

func printPage(out io.Writer, resource string, res listquery.PageResult[listquery.Record]) {
	l := layouts[resource]

	switch res.Empty {
	case listquery.EmptyNoRecords:
		fmt.Fprintf(out, "No %s found.\nNo %s have been added yet.\n", l.noun, l.noun)
		return
	case listquery.EmptyNoMatches:
		fmt.Fprintf(out, "No %s found.\nTry adjusting your search or filter criteria.\n", l.noun)
		printClearHint(out, res)
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	headers := make([]string, len(l.columns))
	for i, c := range l.columns {
		headers[i] = c.header
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, rec := range res.Items {
		cells := make([]string, len(l.columns))
		for i, c := range l.columns {
			cells[i] = cell(listquery.Field(rec, c.field))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()

	fmt.Fprintf(out, "\nShowing %d to %d of %d\n", res.From, res.To, res.TotalItems)
	if pages := res.Window(listquery.DefaultWindow); pages != nil {
		fmt.Fprintln(out, "Pages: "+pager(pages, res.Page))
	}
	printClearHint(out, res)
}

func printClearHint(out io.Writer, res listquery.PageResult[listquery.Record]) {
	if res.ClearFilters {
		fmt.Fprintf(out, "%d active filter(s). Drop --search and --filter to clear.\n", res.ActiveFilters)
	}
}

// pager renders a page window with the current page bracketed, e.g.
// "1 2 [3] 4 5".
func pager(pages []int, current int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(p)
		if p == current {
			parts[i] = "[" + parts[i] + "]"
		}
	}
	return strings.Join(parts, " ")
}

func cell(v any) string {
	var s string
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		s = x
		if t, err := time.Parse(time.RFC3339, x); err == nil {
			s = t.Format("2006-01-02 15:04")
		}
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	default:
		s = fmt.Sprint(x)
	}
	if len(s) > maxCell {
		s = s[:maxCell-3] + "..."
	}
	return s
}
