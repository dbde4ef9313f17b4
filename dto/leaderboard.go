package dto

type MemberResp struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type LeaderboardEntryResp struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Score   uint         `json:"score"`
	Members []MemberResp `json:"members"`
}
