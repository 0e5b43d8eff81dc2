package services

import "context"

type seedProduct struct {
	name        string
	description string
	price       float64
}

// demoCatalog is the demo product set inserted on first start.
var demoCatalog = []seedProduct{
	{"CRM System", "Customer relationship management for companies", 49.99},
	{"Cloud Storage", "Secure cloud file storage", 19.99},
	{"Project Management", "Planning and task tracking", 29.99},
	{"Marketing Automation", "Automated marketing workflows", 59.99},
	{"Helpdesk System", "Support ticket system", 39.99},
	{"Email Archiving", "Compliant email retention", 9.99},
	{"Analytics Dashboard", "Real-time reports and analytics", 24.99},
	{"Team Collaboration", "Communication tools for teams", 14.99},
	{"Task Management", "Shared to-do lists and boards", 12.99},
	{"Customer Support Platform", "Omnichannel customer support", 44.99},
	{"Financial Accounting", "Bookkeeping and financial management", 69.99},
	{"HR Management", "Employee administration and planning", 49.99},
	{"Payroll", "Automated salary processing", 34.99},
	{"Onboarding Tool", "Structured new-hire onboarding", 24.99},
	{"Travel Expense Reporting", "Automated travel expense claims", 29.99},
	{"Expense Management", "Company spend tracking", 27.99},
	{"Time Tracking", "Working time capture and reporting", 19.99},
	{"Document Management System", "Document storage and workflows", 39.99},
	{"Digital Signature", "Legally binding e-signatures", 17.99},
	{"Inventory Management", "Asset and stock tracking", 32.99},
	{"Network Security", "Network security solutions", 59.99},
	{"VPN Solution", "Secure remote network access", 21.99},
	{"Access Management", "Identity and access control", 54.99},
	{"E-Learning Platform", "Online training and courses", 25.99},
	{"Video Conferencing", "Meetings and screen sharing", 15.99},
	{"Mobile Workplace", "Work from anywhere toolkit", 18.99},
	{"Enterprise Search", "Search across company data", 42.99},
}

// Seed inserts the demo catalog once: when any product already exists, it
// does nothing and reports zero inserts.
func (s *ProductService) Seed(ctx context.Context) (int, error) {
	count, err := s.rm.Products(s.db).Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, sp := range demoCatalog {
		if _, err := s.Create(ctx, sp.name, sp.description, sp.price); err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}
