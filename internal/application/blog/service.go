package blog

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/config"
	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

var (
	// ErrForbidden is returned when the acting user may not touch the article.
	ErrForbidden = errors.New("not allowed")
	// ErrCategoryInUse is returned when deleting a category that still has articles.
	ErrCategoryInUse = errors.New("category still has articles")
)

// ImageStore persists uploaded article images and returns their public URL.
type ImageStore interface {
	Put(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// ArticleIndex is the full-text index kept next to the database.
type ArticleIndex interface {
	Index(ctx context.Context, a *entity.Article, category string) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, q string, size int) ([]int64, error)
}

// Publisher queues outgoing mail.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type Service struct {
	Users      repo.UserRepository
	Categories repo.CategoryRepository
	Articles   repo.ArticleRepository
	Comments   repo.CommentRepository

	// Optional collaborators; nil disables the feature.
	Images ImageStore
	Index  ArticleIndex
	Mail   Publisher

	Config *config.Config
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewService(repos repo.Repositories, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		Users:      repos.Users,
		Categories: repos.Categories,
		Articles:   repos.Articles,
		Comments:   repos.Comments,
		Config:     cfg,
		Logger:     logger,
		Now:        time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) warn(err error, msg string, fields logrus.Fields) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithError(err).WithFields(fields).Warn(msg)
}
