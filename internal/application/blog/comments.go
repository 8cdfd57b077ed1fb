package blog

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/pkg/mailer"
	"github.com/oksasatya/go-ddd-blog/pkg/mailer/templates"
	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

// AddComment stores a comment by actor on the article. The creation time is
// always the server clock.
func (s *Service) AddComment(ctx context.Context, actor *entity.User, articleID int64, content string) (*entity.Comment, validation.Errors, error) {
	a, err := s.Articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, nil, err
	}
	c := entity.NewComment(a.ID, actor.ID, content, s.now())
	if errs := c.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, nil, err
	}
	if a.AuthorID != actor.ID {
		s.notifyAuthor(ctx, a, actor, c)
	}
	return c, nil, nil
}

func (s *Service) notifyAuthor(ctx context.Context, a *entity.Article, commenter *entity.User, c *entity.Comment) {
	if s.Mail == nil || s.Config == nil {
		return
	}
	author, err := s.Users.GetByID(ctx, a.AuthorID)
	if err != nil {
		s.warn(err, "comment notification: author lookup failed", logrus.Fields{"article_id": a.ID})
		return
	}
	job := mailer.EmailJob{
		To:       author.Email,
		Template: templates.CommentNotification,
		Data: templates.NewCommentNotificationData(s.Config, author.Username, author.Email,
			a.Title, a.ID, commenter.Username, c.Content, templates.WithTime(c.CreatedAt)),
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil {
		s.warn(err, "comment notification: publish failed", logrus.Fields{"article_id": a.ID})
	}
}
