package user

// User is an editor account. Accounts exist to attribute level
// revisions and to guard the mutating level routes.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"password,omitempty"`
}

type ProfileResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
