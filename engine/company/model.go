package company

import "time"

// Collection is the company collection name in the document store.
const Collection = "companies"

// Company owns users of type "company" and projects.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
