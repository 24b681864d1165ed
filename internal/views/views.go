// Package views declares, per REST resource, which fields the list screens
// search, filter and range over. The API server and the CLI share these so a
// query means the same thing on both sides.
package views

import (
	"slices"
	"sort"

	"github.com/justsurfingit/placement-portal/internal/listquery"
)

// Resource paths under /api.
const (
	Companies          = "company"
	JobOpenings        = "job-openings"
	JobApplications    = "job-applications"
	InterviewSchedules = "interview-schedules"
	JobOffers          = "job-offers"
	Users              = "auth/users"
	Notifications      = "notifications"
)

var salaryRange = []listquery.Range{{Field: "salaryLPA", Min: "minSalary", Max: "maxSalary"}}

var configs = map[string]listquery.Config[listquery.Record]{
	Companies: {
		SearchFields: []string{"name", "industry", "location", "hrName"},
	},
	JobOpenings: {
		SearchFields: []string{"title", "description", "location", "company.name"},
		FilterFields: map[string]string{"company": "company.id"},
		Ranges:       salaryRange,
	},
	JobApplications: {
		SearchFields: []string{"student.name", "student.email", "jobOpening.title", "jobOpening.company.name"},
		FilterFields: map[string]string{
			"job":     "jobOpening.id",
			"company": "jobOpening.company.id",
			"student": "student.id",
		},
	},
	InterviewSchedules: {
		SearchFields: []string{"interviewerName", "location", "jobApplication.student.name", "jobApplication.jobOpening.title"},
		FilterFields: map[string]string{"company": "jobApplication.jobOpening.company.id"},
	},
	JobOffers: {
		SearchFields: []string{"jobApplication.student.name", "jobApplication.jobOpening.title", "jobApplication.jobOpening.company.name"},
		FilterFields: map[string]string{"company": "jobApplication.jobOpening.company.id"},
		Ranges:       []listquery.Range{{Field: "salary", Min: "minSalary", Max: "maxSalary"}},
	},
	Users: {
		SearchFields: []string{"name", "email", "department"},
	},
	Notifications: {
		SearchFields: []string{"title", "message"},
		FilterFields: map[string]string{"read": "readStatus"},
	},
}

// plainFilters are record fields a list may be filtered on by their own name.
var plainFilters = map[string][]string{
	Companies:          {"industry", "location", "companyType"},
	JobOpenings:        {"status", "location"},
	JobApplications:    {"status"},
	InterviewSchedules: {"status"},
	JobOffers:          {"status"},
	Users:              {"role", "department"},
}

// FilterKeys lists the query keys resource accepts as filters, range bounds
// included, in name order.
func FilterKeys(resource string) []string {
	cfg := configs[resource]
	keys := slices.Clone(plainFilters[resource])
	for k := range cfg.FilterFields {
		keys = append(keys, k)
	}
	for _, r := range cfg.Ranges {
		keys = append(keys, r.Min, r.Max)
	}
	sort.Strings(keys)
	return keys
}

// AcceptsFilter reports whether key is a declared filter of resource.
func AcceptsFilter(resource, key string) bool {
	return slices.Contains(FilterKeys(resource), key)
}

// Config returns the list configuration of resource. Unknown resources get
// a configuration that searches nothing and filters on raw field names.
func Config(resource string) listquery.Config[listquery.Record] {
	return configs[resource]
}

// Engine builds a record engine for resource.
func Engine(resource string) *listquery.Engine[listquery.Record] {
	return listquery.NewRecordEngine(Config(resource))
}

// Known reports whether resource has a declared view.
func Known(resource string) bool {
	_, ok := configs[resource]
	return ok
}

// Resources lists the declared resources in name order.
func Resources() []string {
	out := make([]string, 0, len(configs))
	for r := range configs {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
