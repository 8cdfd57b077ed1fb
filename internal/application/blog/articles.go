package blog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

const (
	MsgTitleInUse      = "This title is already in use"
	MsgUnknownCategory = "Please select a category"
	MsgUnknownAuthor   = "Please select an author"
	MsgUploadsDisabled = "Image uploads are not available."
)

// Upload is an image file sent with the article form.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ArticleInput carries the submitted article fields.
type ArticleInput struct {
	Title      string
	Content    string
	CategoryID int64
	Genre      string
	Image      string
	// AuthorID is only honored for admins creating an article.
	AuthorID int64
	Upload   *Upload
}

func (s *Service) ListArticles(ctx context.Context) ([]ArticleView, error) {
	list, err := s.Articles.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.viewArticles(ctx, list)
}

func (s *Service) LatestArticles(ctx context.Context, limit int) ([]ArticleView, error) {
	list, err := s.Articles.Latest(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.viewArticles(ctx, list)
}

// GetArticle returns repo.ErrNotFound for unknown ids.
func (s *Service) GetArticle(ctx context.Context, id int64) (*entity.Article, error) {
	return s.Articles.GetByID(ctx, id)
}

// ShowArticle loads an article with its comments, oldest first.
func (s *Service) ShowArticle(ctx context.Context, id int64) (*ArticleDetail, error) {
	a, err := s.Articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := s.viewArticles(ctx, []*entity.Article{a})
	if err != nil {
		return nil, err
	}
	comments, err := s.Comments.ListByArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
	}
	authors, err := s.Users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	detail := &ArticleDetail{Article: views[0], Comments: make([]CommentView, 0, len(comments))}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, CommentView{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			Author:    userRef(authors[c.AuthorID], c.AuthorID),
		})
	}
	return detail, nil
}

// SaveArticle creates an article when existing is nil, otherwise edits it.
// Field problems come back as validation.Errors with a nil error; the
// returned error is reserved for storage failures.
func (s *Service) SaveArticle(ctx context.Context, actor *entity.User, existing *entity.Article, in ArticleInput) (*entity.Article, validation.Errors, error) {
	a := existing
	if a == nil {
		a = entity.NewArticle(actor.ID)
	}
	var errs validation.Errors
	if a.IsNew() && in.AuthorID != 0 && in.AuthorID != actor.ID && actor.IsAdmin() {
		if _, err := s.Users.GetByID(ctx, in.AuthorID); err != nil {
			if !errors.Is(err, repo.ErrNotFound) {
				return nil, nil, err
			}
			errs.Add("author_id", MsgUnknownAuthor)
		} else {
			a.AuthorID = in.AuthorID
		}
	}

	a.Title = strings.TrimSpace(in.Title)
	a.Content = in.Content
	a.Genre = strings.TrimSpace(in.Genre)
	a.CategoryID = in.CategoryID
	if img := strings.TrimSpace(in.Image); img != "" {
		a.Image = &img
	} else if in.Upload == nil {
		a.Image = nil
	}

	errs = append(errs, a.Validate()...)
	if a.CategoryID != 0 && !errs.Has("category_id") {
		if _, err := s.Categories.GetByID(ctx, a.CategoryID); err != nil {
			if !errors.Is(err, repo.ErrNotFound) {
				return nil, nil, err
			}
			errs.Add("category_id", MsgUnknownCategory)
		}
	}
	if a.Title != "" && !errs.Has("title") {
		taken, err := s.Articles.ExistsByTitle(ctx, a.Title, a.ID)
		if err != nil {
			return nil, nil, err
		}
		if taken {
			errs.Add("title", MsgTitleInUse)
		}
	}
	if in.Upload != nil && s.Images == nil {
		errs.Add("imageFile", MsgUploadsDisabled)
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	now := s.now()
	a.StampCreated(now)
	if in.Upload != nil {
		url, err := s.Images.Put(ctx, in.Upload.Filename, in.Upload.ContentType, in.Upload.Body)
		if err != nil {
			return nil, nil, fmt.Errorf("store article image: %w", err)
		}
		a.SetImageUpload(url, now)
	}

	var err error
	if a.IsNew() {
		err = s.Articles.Create(ctx, a)
	} else {
		err = s.Articles.Update(ctx, a)
	}
	if err != nil {
		errs, err := persistErrors(err)
		return nil, errs, err
	}

	s.index(ctx, a)
	return a, nil, nil
}

// persistErrors turns storage collisions back into field errors.
func persistErrors(err error) (validation.Errors, error) {
	if field, ok := repo.DuplicateField(err); ok && field == "title" {
		return validation.Errors{{Field: "title", Message: MsgTitleInUse}}, nil
	}
	if errors.Is(err, repo.ErrMissingReference) {
		return validation.Errors{{Field: "category_id", Message: MsgUnknownCategory}}, nil
	}
	return nil, err
}

// DeleteArticle removes an article and its comments. Only the author or an
// admin may do it.
func (s *Service) DeleteArticle(ctx context.Context, actor *entity.User, id int64) error {
	a, err := s.Articles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actor == nil || (a.AuthorID != actor.ID && !actor.IsAdmin()) {
		return ErrForbidden
	}
	if err := s.Articles.Delete(ctx, id); err != nil {
		return err
	}
	if s.Index != nil {
		if err := s.Index.Delete(ctx, id); err != nil {
			s.warn(err, "es delete failed", logrus.Fields{"article_id": id})
		}
	}
	return nil
}

// SearchArticles returns the index hits that still exist in storage. Without
// an index, or for a blank query, the result is empty.
func (s *Service) SearchArticles(ctx context.Context, q string) ([]ArticleView, error) {
	q = strings.TrimSpace(q)
	if s.Index == nil || q == "" {
		return []ArticleView{}, nil
	}
	ids, err := s.Index.Search(ctx, q, 20)
	if err != nil {
		return nil, err
	}
	list, err := s.Articles.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.viewArticles(ctx, list)
}

func (s *Service) index(ctx context.Context, a *entity.Article) {
	if s.Index == nil {
		return
	}
	title := ""
	if c, err := s.Categories.GetByID(ctx, a.CategoryID); err == nil {
		title = c.Title
	}
	if err := s.Index.Index(ctx, a, title); err != nil {
		s.warn(err, "es index failed", logrus.Fields{"article_id": a.ID})
	}
}
