package model

import "strings"

// Role is the approval authority role carried on every output row.
type Role string

const (
	RoleReviewer Role = "REVIEWER"
	RoleApprover Role = "APPROVER"
)

// EmployeeType is the fixed Type column value on every import row.
const EmployeeType = "Employee"

// ClassifyRole maps a free-text role cell onto a Role. Anything containing
// "reviewer" (case-insensitive) is a reviewer; everything else, including an
// empty cell, is an approver.
func ClassifyRole(raw string) Role {
	if strings.Contains(strings.ToLower(raw), "reviewer") {
		return RoleReviewer
	}
	return RoleApprover
}
