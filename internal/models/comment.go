package models

// Comment is a visitor comment on a project. Visibility of unapproved
// comments is enforced server-side; the client never filters.
type Comment struct {
	ID         int    `json:"id"`
	ProjectID  int    `json:"project_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Content    string `json:"content"`
	IsApproved bool   `json:"is_approved"`
	CreatedAt  string `json:"created_at"`
}

// CommentReceipt is the server's acknowledgement of a created comment. Only
// ID is guaranteed; the remaining fields are filled when the server echoes
// the stored comment back.
type CommentReceipt struct {
	ID         int    `json:"id"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Content    string `json:"content,omitempty"`
	IsApproved bool   `json:"is_approved,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// ContactReceipt is the server's acknowledgement of a stored contact
// message.
type ContactReceipt struct {
	ID        int    `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
