package dto

// MessageResponse is the short acknowledgement payload used by the
// write endpoints. The "msg" key is part of the frontend contract.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// LivenessResponse is returned by the root endpoint
type LivenessResponse struct {
	Message string `json:"message"`
}
