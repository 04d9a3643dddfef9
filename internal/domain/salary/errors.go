package salary

import "errors"

var (
	ErrSalaryRecordNotFound = errors.New("salary record not found")
	ErrSalaryAlreadyPaid    = errors.New("salary record already paid")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
)
