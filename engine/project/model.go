package project

import "time"

// Collection names in the document store.
const (
	Collection    = "projects"
	RagCollection = "rag_documents"
)

// Project is an ordered manual composed of blocks. BlockOrderIDs is a
// derived index over the project's blocks: blocks are the source of truth
// for their own existence, the order list only fixes their display order
// and must be kept in sync by the block mutations.
type Project struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CompanyID     string    `json:"company_id,omitempty"`
	BlockOrderIDs []string  `json:"block_order_ids"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RagDocument associates a project with an uploaded reference document,
// used for retrieval-augmented generation outside this system.
type RagDocument struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"projectId"`
	StorageURL string    `json:"storage_url"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
