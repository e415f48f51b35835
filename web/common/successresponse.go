package common

// SuccessResponse is the envelope every campus API handler returns on
// the happy path; the payload always sits under "data".
type SuccessResponse struct {
	Data any `json:"data"`
}

func NewSuccessResponse(data any) *SuccessResponse {
	return &SuccessResponse{
		Data: data,
	}
}
