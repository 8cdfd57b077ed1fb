package templates

import (
	"strconv"
	"strings"
	"time"

	"github.com/oksasatya/go-ddd-blog/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithArticle(title, url string) Option {
	return func(d *EmailData) {
		d.ArticleTitle = title
		d.ArticleURL = url
	}
}

func WithComment(author, excerpt string) Option {
	return func(d *EmailData) {
		d.CommentAuthor = author
		d.CommentExcerpt = excerpt
	}
}

// NewBaseEmailData fills the common fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:    name,
		Email:   email,
		Type:    typ,
		AppName: cfg.AppName,
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
	d.LoginURL = d.BaseURL + "/connexion"
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(cfg *config.Config, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, Welcome, name, email, opts...))
}

// NewCommentNotificationData builds the mail sent to an article author when
// somebody else comments. Long comments are cut to a short excerpt.
func NewCommentNotificationData(cfg *config.Config, name, email, articleTitle string, articleID int64, commenter, content string, opts ...Option) map[string]any {
	url := strings.TrimRight(cfg.BaseURL, "/") + "/blog/" + strconv.FormatInt(articleID, 10)
	opts = append([]Option{WithArticle(articleTitle, url), WithComment(commenter, Excerpt(content, 140))}, opts...)
	return ToMap(NewBaseEmailData(cfg, CommentNotification, name, email, opts...))
}

// Excerpt shortens s to at most n runes, marking the cut with an ellipsis.
func Excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}
