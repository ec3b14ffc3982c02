package block

import "time"

// Collection is the block collection name in the document store.
const Collection = "blocks"

// Block is a single step in a manual. Checkpoint states the goal,
// Achievement the acceptance criterion the image-recognition workflow
// scores against. Blocks belong to exactly one project and do not store
// their own rank; ordering lives on the project's block_order_ids.
type Block struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"projectId"`
	Checkpoint    string    `json:"checkpoint"`
	Achievement   string    `json:"achievement"`
	Color         string    `json:"color,omitempty"`
	ReferenceURLs []string  `json:"reference_urls,omitempty"`
	ImgURL        string    `json:"img_url,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
