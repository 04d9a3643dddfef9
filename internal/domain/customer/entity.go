package customer

import "time"

type Segment string

const (
	SegmentRegular   Segment = "regular"
	SegmentVIP       Segment = "vip"
	SegmentWholesale Segment = "wholesale"
)

func IsValidSegment(s string) bool {
	switch Segment(s) {
	case SegmentRegular, SegmentVIP, SegmentWholesale:
		return true
	}
	return false
}

type Customer struct {
	ID        string
	FullName  string
	Email     *string
	Phone     *string
	Address   *string
	Segment   Segment
	CreatedAt time.Time
	UpdatedAt time.Time
}
