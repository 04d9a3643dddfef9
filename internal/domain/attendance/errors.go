package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
