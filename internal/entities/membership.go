package entities

import "time"

// Membership is one row of the team/user relation.
type Membership struct {
	ID       int64
	TeamID   int64
	UserID   int64
	JoinedAt time.Time
}
