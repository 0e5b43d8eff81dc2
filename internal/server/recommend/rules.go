// Package recommend implements the questionnaire-driven upsell
// recommendations: a flat, deterministic rule table with no persistence and
// no learning.
package recommend

import (
	"sort"
	"strings"
)

// MaxRecommendations caps the result size.
const MaxRecommendations = 3

// Answers holds one visitor's questionnaire responses. Yes/no fields expect
// "yes" or "no"; unanswered fields are empty and simply match no rule.
type Answers struct {
	Department       string `json:"department"`
	RemoteWork       string `json:"remote_work"`
	NeedsTraining    string `json:"needs_training"`
	ExpenseHandling  string `json:"expense_handling"`
	DocumentHandling string `json:"document_handling"`
	SecurityConcern  string `json:"security_concern"`
	TeamSize         string `json:"team_size"`
}

// Questions lists the questionnaire in presentation order, keyed by the
// Answers field each response lands in.
var Questions = []struct {
	Key  string
	Text string
}{
	{"department", "Which department do you work in? (e.g. HR, IT, Sales, Finance, Admin)"},
	{"remote_work", "Does your team work remotely? (yes/no)"},
	{"needs_training", "Does your team need training? (yes/no)"},
	{"expense_handling", "Do you manage travel expenses? (yes/no)"},
	{"document_handling", "Do you work with many documents? (yes/no)"},
	{"security_concern", "Is IT security especially important? (yes/no)"},
	{"team_size", "How large is your team? (small/medium/large)"},
}

// departmentRules is an ordered rule list: the first matching entry wins,
// so a free-text answer like "IT administration" resolves the same way
// every time.
var departmentRules = []struct {
	keyword string
	names   []string
}{
	{"hr", []string{"HR Management", "Payroll", "Onboarding Tool"}},
	{"it", []string{"Network Security", "VPN Solution", "Access Management"}},
	{"sales", []string{"CRM System", "Marketing Automation", "Customer Support Platform"}},
	{"finance", []string{"Financial Accounting", "Expense Management", "Travel Expense Reporting"}},
	{"project", []string{"Project Management", "Cloud Storage", "Task Management"}},
	{"pm", []string{"Project Management", "Cloud Storage", "Task Management"}},
	{"admin", []string{"Document Management System", "Inventory Management", "Digital Signature"}},
}

var fallback = []string{"Project Management", "Team Collaboration", "CRM System"}

// Recommend maps the answers through the rule table and returns up to
// MaxRecommendations distinct product names, alphabetically sorted. Equal
// inputs always yield equal outputs.
func Recommend(a Answers) []string {
	picked := make(map[string]struct{})
	add := func(names ...string) {
		for _, n := range names {
			picked[n] = struct{}{}
		}
	}

	department := lower(a.Department)
	if department != "" {
		for _, rule := range departmentRules {
			if strings.Contains(department, rule.keyword) {
				add(rule.names...)
				break
			}
		}
	}

	if lower(a.RemoteWork) == "yes" {
		add("Mobile Workplace", "Video Conferencing", "Team Collaboration")
	}
	if lower(a.NeedsTraining) == "yes" {
		add("E-Learning Platform")
	}
	if lower(a.ExpenseHandling) == "yes" {
		add("Travel Expense Reporting", "Expense Management")
	}
	if lower(a.DocumentHandling) == "yes" {
		add("Document Management System", "Digital Signature")
	}
	if lower(a.SecurityConcern) == "yes" {
		add("Network Security", "Email Archiving", "Access Management")
	}
	if lower(a.TeamSize) == "large" {
		add("Time Tracking", "Helpdesk System", "Enterprise Search")
	}

	if len(picked) == 0 {
		add(fallback...)
	}

	names := make([]string, 0, len(picked))
	for n := range picked {
		names = append(names, n)
	}
	sort.Strings(names)

	if len(names) > MaxRecommendations {
		names = names[:MaxRecommendations]
	}
	return names
}

func lower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
