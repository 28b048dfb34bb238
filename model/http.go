package model

type EncodeResponse struct {
	RunId string          `json:"run_id"`
	Track CompressedTrack `json:"track"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
