package blog

import (
	"context"
	"errors"
	"strings"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

const MsgCategoryTitleInUse = "This category title is already used"

type CategoryInput struct {
	Title       string
	Description string
}

// ListCategories returns every category with its article count.
func (s *Service) ListCategories(ctx context.Context) ([]CategoryView, error) {
	cats, err := s.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.Articles.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryView, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryView{ID: c.ID, Title: c.Title, Description: c.Description, ArticleCount: counts[c.ID]})
	}
	return out, nil
}

// CategoryChoices lists the categories an article can be filed under.
func (s *Service) CategoryChoices(ctx context.Context) ([]CategoryRef, error) {
	cats, err := s.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryRef, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryRef{ID: c.ID, Title: c.Title})
	}
	return out, nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	return s.Categories.GetByID(ctx, id)
}

// SaveCategory creates a category when existing is nil, otherwise edits it.
func (s *Service) SaveCategory(ctx context.Context, existing *entity.Category, in CategoryInput) (*entity.Category, validation.Errors, error) {
	c := existing
	if c == nil {
		c = &entity.Category{}
	}
	c.Title = strings.TrimSpace(in.Title)
	if d := strings.TrimSpace(in.Description); d != "" {
		c.Description = &d
	} else {
		c.Description = nil
	}

	errs := c.Validate()
	if !errs.Has("title") {
		taken, err := s.Categories.ExistsByTitle(ctx, c.Title, c.ID)
		if err != nil {
			return nil, nil, err
		}
		if taken {
			errs.Add("title", MsgCategoryTitleInUse)
		}
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	var err error
	if c.ID == 0 {
		err = s.Categories.Create(ctx, c)
	} else {
		err = s.Categories.Update(ctx, c)
	}
	if field, ok := repo.DuplicateField(err); ok && field == "title" {
		return nil, validation.Errors{{Field: "title", Message: MsgCategoryTitleInUse}}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return c, nil, nil
}

// DeleteCategory refuses to remove a category that still has articles.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	err := s.Categories.Delete(ctx, id)
	if errors.Is(err, repo.ErrReferenced) {
		return ErrCategoryInUse
	}
	return err
}
