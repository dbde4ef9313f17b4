package dto

type CreateTeamReq struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

type JoinTeamReq struct {
	JoinCode string `json:"joinCode"`
	UserID   string `json:"userId"`
}

type TeamResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
