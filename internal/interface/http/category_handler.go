package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/internal/application/blog"
	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog/internal/interface/form"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
	"github.com/oksasatya/go-ddd-blog/pkg/response"
	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

const (
	categoriesPath = "/admin/categories"

	msgCategorySaved   = "The category has been saved."
	msgCategoryDeleted = "The category has been deleted."
	msgCategoryInUse   = "This category still has articles and cannot be deleted."
)

// CategoryHandler serves the admin pages for categories.
type CategoryHandler struct {
	Svc    *blog.Service
	Pages  *Pages
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *blog.Service, pages *Pages, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Pages: pages, Logger: logger}
}

func (h *CategoryHandler) Index(c *gin.Context) {
	list, err := h.Svc.ListCategories(c.Request.Context())
	if err != nil {
		h.Pages.Fail(c, "list categories failed", err)
		return
	}
	response.Render(c, h.Pages.Page(c, "admin/category/index").Set("categories", list))
}

func (h *CategoryHandler) New(c *gin.Context) {
	h.renderForm(c, h.Pages.Page(c, "admin/category/form"), form.CategoryForm{}, 0)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	h.save(c, nil)
}

func (h *CategoryHandler) Edit(c *gin.Context) {
	cat, ok := h.load(c)
	if !ok {
		return
	}
	h.renderForm(c, h.Pages.Page(c, "admin/category/form"), form.CategoryFormFrom(cat), cat.ID)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	cat, ok := h.load(c)
	if !ok {
		return
	}
	h.save(c, cat)
}

// Delete refuses categories that still hold articles.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.Pages.NotFound(c)
		return
	}
	err := h.Svc.DeleteCategory(c.Request.Context(), id)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		h.Pages.NotFound(c)
		return
	case errors.Is(err, blog.ErrCategoryInUse):
		h.Pages.Flash(c, response.FlashDanger, msgCategoryInUse)
	case err != nil:
		helpers.LogError(h.Logger, "delete category failed", err, helpers.RequestFields(c))
		h.Pages.Flash(c, response.FlashDanger, msgSaveFailed)
	default:
		h.Pages.Flash(c, response.FlashSuccess, msgCategoryDeleted)
	}
	redirect(c, categoriesPath)
}

func (h *CategoryHandler) load(c *gin.Context) (*entity.Category, bool) {
	id, ok := paramID(c)
	if !ok {
		h.Pages.NotFound(c)
		return nil, false
	}
	cat, err := h.Svc.GetCategory(c.Request.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		h.Pages.NotFound(c)
		return nil, false
	}
	if err != nil {
		h.Pages.Fail(c, "load category failed", err)
		return nil, false
	}
	return cat, true
}

func (h *CategoryHandler) renderForm(c *gin.Context, page *response.Page, f form.CategoryForm, id int64) {
	page.Form = f
	page.Set("editMode", id != 0)
	if id != 0 {
		page.Set("category_id", id)
	}
	response.Render(c, page)
}

func (h *CategoryHandler) save(c *gin.Context, existing *entity.Category) {
	var id int64
	if existing != nil {
		id = existing.ID
	}

	var f form.CategoryForm
	reject := func(errs validation.Errors, danger string) {
		h.renderForm(c, h.Pages.Rejected(c, "admin/category/form", errs, danger), f, id)
	}
	if errs := validation.FromBinding(c.ShouldBind(&f), f); len(errs) > 0 {
		reject(errs, "")
		return
	}
	_, errs, err := h.Svc.SaveCategory(c.Request.Context(), existing, f.Input())
	if err != nil {
		helpers.LogError(h.Logger, "save category failed", err, helpers.RequestFields(c))
		reject(nil, msgSaveFailed)
		return
	}
	if len(errs) > 0 {
		reject(errs, "")
		return
	}
	h.Pages.Flash(c, response.FlashSuccess, msgCategorySaved)
	redirect(c, categoriesPath)
}
