package types

type AskRequest struct {
	Question string `json:"question"`
}

type PolicyCheckRequest struct {
	DocumentText string `json:"document_text"`
}

type IngestRequest struct {
	Source  string `json:"source"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

type SeedRequest struct {
	Documents []DocumentInput `json:"documents"`
}

type LoginRequest struct {
	Password string `json:"password"`
}
