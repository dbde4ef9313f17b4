package dto

type SubmitFlagReq struct {
	UserID      string `json:"userId"`
	ChallengeID string `json:"challengeId"`
	Flag        string `json:"flag"`
}

// SubmitFlagResp: ok=false means the request itself failed; ok=true
// carries a verdict. "Already solved" is a successful outcome with
// AlreadySolved set, never an error.
type SubmitFlagResp struct {
	OK            bool   `json:"ok"`
	Correct       bool   `json:"correct"`
	AlreadySolved bool   `json:"alreadySolved,omitempty"`
	Points        *uint  `json:"points,omitempty"`
	Message       string `json:"message,omitempty"`
}
