package dto

type SignURLReq struct {
	Path string `json:"path"`
}

type SignURLResp struct {
	URL string `json:"url"`
}
