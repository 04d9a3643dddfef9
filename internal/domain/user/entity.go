package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin   Role = "admin"   // Console administrator - full access, excluded from payroll
	RoleManager Role = "manager" // Store manager
	RoleCashier Role = "cashier" // Till staff
	RoleSales   Role = "sales"   // Floor staff
)

// StaffRoles are the roles that appear in attendance and payroll.
var StaffRoles = []Role{RoleManager, RoleCashier, RoleSales}

// User is a console account. Staff accounts double as the employee
// directory: the day-rate on the account drives salary reconciliation.
type User struct {
	ID           string
	Email        string
	PasswordHash *string
	FullName     string
	Role         Role
	Phone        *string
	Salary       decimal.Decimal // monthly reference salary, informational
	SalaryPerDay decimal.Decimal // pay per present day, zero when unset
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the account is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsStaff checks if the account belongs to payroll-eligible staff
func (u *User) IsStaff() bool {
	return u.Role != RoleAdmin
}

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleManager, RoleCashier, RoleSales:
		return true
	}
	return false
}
