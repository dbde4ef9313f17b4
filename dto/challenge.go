package dto

// ChallengeItemResp is the catalog list entry: id, title, points and
// nothing else. Lower-value challenges are listed first.
type ChallengeItemResp struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Points uint   `json:"points"`
}

// ChallengeDetailResp deliberately has no field for the flag hash, so
// the secret cannot leak through serialization no matter what the
// underlying query selected.
type ChallengeDetailResp struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Points        uint    `json:"points"`
	AttachmentURL *string `json:"attachment_url"`
	LinkURL       *string `json:"link_url"`
}
