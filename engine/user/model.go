package user

import "time"

// Collection is the user collection name in the document store.
const Collection = "users"

// Type partitions users into company members and personal accounts.
type Type string

const (
	TypeCompany  Type = "company"
	TypePersonal Type = "personal"
)

// User is the persisted profile. UID is the identity-provider subject set
// after account creation; the password only exists transiently during
// registration and is never persisted here.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	UID       string    `json:"uid"`
	UserType  Type      `json:"user_type"`
	CompanyID string    `json:"company_id,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
