package form

// CommentForm carries only the content; author, article and date are set
// by the server.
type CommentForm struct {
	Content string `form:"content" json:"content" binding:"notblank,min=5"`
}

func (CommentForm) FieldMessages() map[string]string {
	return map[string]string{
		"content.notblank": "The comment cannot be empty",
		"content.min":      "Your comment must be at least {limit} characters long",
	}
}
