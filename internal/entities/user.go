// Package entities contains core business entities.
package entities

// User is a team member identified by an externally supplied hash.
type User struct {
	ID    int64
	Hash  string
	Teams []TeamRef
}

// TeamRef points at a team without embedding its member list.
type TeamRef struct {
	ID   int64
	Hash string
}

// NewUser builds an unsaved user.
func NewUser(hash string) User {
	return User{Hash: hash, Teams: make([]TeamRef, 0)}
}

// AddTeam appends t to the user's teams. Duplicates are kept.
func (u *User) AddTeam(t Team) {
	u.Teams = append(u.Teams, t.Ref())
}
