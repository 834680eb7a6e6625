package request

// BoardPostRequest represents a create/update board post request
type BoardPostRequest struct {
	Title  string `json:"title" binding:"required,max=255"`
	Body   string `json:"body" binding:"required"`
	Pinned bool   `json:"pinned"`
}

// DraftPostRequest asks for an AI-drafted notice
type DraftPostRequest struct {
	Prompt string `json:"prompt" binding:"required,max=2000"`
}
