package campaign

import "time"

type Type string

const (
	TypeEmail  Type = "email"
	TypeSMS    Type = "sms"
	TypeSocial Type = "social"
	TypePrint  Type = "print"
)

func IsValidType(t string) bool {
	switch Type(t) {
	case TypeEmail, TypeSMS, TypeSocial, TypePrint:
		return true
	}
	return false
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusDraft, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Campaign struct {
	ID            string
	Name          string
	Description   *string
	CampaignType  Type
	StartDate     *time.Time
	EndDate       *time.Time
	TargetSegment *string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
