package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/internal/application/blog"
	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog/internal/interface/form"
	"github.com/oksasatya/go-ddd-blog/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
	"github.com/oksasatya/go-ddd-blog/pkg/response"
	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

const (
	homeLatest = 5

	msgArticleDeleted   = "The article has been deleted."
	msgArticleNotDelete = "The article could not be deleted. Please try again."
	msgUploadFailed     = "The file could not be uploaded."
)

type BlogHandler struct {
	Svc    *blog.Service
	Pages  *Pages
	Logger *logrus.Logger
}

func NewBlogHandler(svc *blog.Service, pages *Pages, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Svc: svc, Pages: pages, Logger: logger}
}

func articlePath(id int64) string { return "/blog/" + strconv.FormatInt(id, 10) }

func (h *BlogHandler) Home(c *gin.Context) {
	list, err := h.Svc.LatestArticles(c.Request.Context(), homeLatest)
	if err != nil {
		h.Pages.Fail(c, "list latest articles failed", err)
		return
	}
	response.Render(c, h.Pages.Page(c, "blog/home").Set("articles", list))
}

func (h *BlogHandler) List(c *gin.Context) {
	list, err := h.Svc.ListArticles(c.Request.Context())
	if err != nil {
		h.Pages.Fail(c, "list articles failed", err)
		return
	}
	response.Render(c, h.Pages.Page(c, "blog/index").Set("articles", list))
}

func (h *BlogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	list, err := h.Svc.SearchArticles(c.Request.Context(), q)
	if err != nil {
		h.Pages.Fail(c, "search articles failed", err)
		return
	}
	response.Render(c, h.Pages.Page(c, "blog/search").Set("q", q).Set("articles", list))
}

func (h *BlogHandler) New(c *gin.Context) {
	h.renderForm(c, h.Pages.Page(c, "blog/create"), form.ArticleForm{}, 0)
}

func (h *BlogHandler) Create(c *gin.Context) {
	h.save(c, nil)
}

func (h *BlogHandler) Edit(c *gin.Context) {
	a, ok := h.load(c)
	if !ok {
		return
	}
	h.renderForm(c, h.Pages.Page(c, "blog/create"), form.ArticleFormFrom(a), a.ID)
}

func (h *BlogHandler) Update(c *gin.Context) {
	a, ok := h.load(c)
	if !ok {
		return
	}
	h.save(c, a)
}

// load fetches the article named by :id and answers 404 when there is none.
func (h *BlogHandler) load(c *gin.Context) (*entity.Article, bool) {
	id, ok := paramID(c)
	if !ok {
		h.Pages.NotFound(c)
		return nil, false
	}
	a, err := h.Svc.GetArticle(c.Request.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		h.Pages.NotFound(c)
		return nil, false
	}
	if err != nil {
		h.Pages.Fail(c, "load article failed", err)
		return nil, false
	}
	return a, true
}

func (h *BlogHandler) renderForm(c *gin.Context, page *response.Page, f form.ArticleForm, id int64) {
	cats, err := h.Svc.CategoryChoices(c.Request.Context())
	if err != nil {
		h.Pages.Fail(c, "list categories failed", err)
		return
	}
	page.Form = f
	page.Set("categories", cats).Set("editMode", id != 0)
	if id != 0 {
		page.Set("article_id", id)
	}
	response.Render(c, page)
}

func (h *BlogHandler) save(c *gin.Context, existing *entity.Article) {
	var id int64
	if existing != nil {
		id = existing.ID
	}

	var f form.ArticleForm
	reject := func(errs validation.Errors, danger string) {
		h.renderForm(c, h.Pages.Rejected(c, "blog/create", errs, danger), f, id)
	}
	if errs := validation.FromBinding(c.ShouldBind(&f), f); len(errs) > 0 {
		reject(errs, "")
		return
	}

	in := f.Input()
	if fh, err := c.FormFile("imageFile"); err == nil {
		file, err := fh.Open()
		if err != nil {
			reject(validation.Errors{{Field: "imageFile", Message: msgUploadFailed}}, "")
			return
		}
		defer func() { _ = file.Close() }()
		in.Upload = &blog.Upload{Filename: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Body: file}
	}

	a, errs, err := h.Svc.SaveArticle(c.Request.Context(), middleware.CurrentUser(c), existing, in)
	if err != nil {
		fields := helpers.RequestFields(c)
		fields["article_id"] = id
		helpers.LogError(h.Logger, "save article failed", err, fields)
		reject(nil, msgSaveFailed)
		return
	}
	if len(errs) > 0 {
		reject(errs, "")
		return
	}
	articlesSaved.Add(1)
	redirect(c, articlePath(a.ID))
}

// Show renders an article with its comments. The comment form is only
// offered to signed-in visitors.
func (h *BlogHandler) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.Pages.NotFound(c)
		return
	}
	h.renderShow(c, h.Pages.Page(c, "blog/show"), id, nil)
}

func (h *BlogHandler) renderShow(c *gin.Context, page *response.Page, id int64, f *form.CommentForm) {
	detail, err := h.Svc.ShowArticle(c.Request.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		h.Pages.NotFound(c)
		return
	}
	if err != nil {
		h.Pages.Fail(c, "show article failed", err)
		return
	}
	page.Set("article", detail.Article).Set("comments", detail.Comments)
	if middleware.CurrentUser(c) != nil {
		if f == nil {
			f = &form.CommentForm{}
		}
		page.Set("comment_form", f)
	}
	response.Render(c, page)
}

// Comment posts a comment on the article. Anonymous submissions are
// ignored and the plain article page is shown.
func (h *BlogHandler) Comment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.Pages.NotFound(c)
		return
	}
	u := middleware.CurrentUser(c)
	if u == nil {
		h.renderShow(c, h.Pages.Page(c, "blog/show"), id, nil)
		return
	}

	var f form.CommentForm
	if errs := validation.FromBinding(c.ShouldBind(&f), f); len(errs) > 0 {
		h.renderShow(c, h.Pages.Rejected(c, "blog/show", errs, ""), id, &f)
		return
	}

	_, errs, err := h.Svc.AddComment(c.Request.Context(), u, id, f.Content)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		h.Pages.NotFound(c)
	case err != nil:
		fields := helpers.RequestFields(c)
		fields["article_id"] = id
		helpers.LogError(h.Logger, "add comment failed", err, fields)
		h.renderShow(c, h.Pages.Rejected(c, "blog/show", nil, msgSaveFailed), id, &f)
	case len(errs) > 0:
		h.renderShow(c, h.Pages.Rejected(c, "blog/show", errs, ""), id, &f)
	default:
		commentsPosted.Add(1)
		redirect(c, articlePath(id))
	}
}

// Delete removes the article and its comments; only its author or an admin may.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.Pages.NotFound(c)
		return
	}
	err := h.Svc.DeleteArticle(c.Request.Context(), middleware.CurrentUser(c), id)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		h.Pages.NotFound(c)
	case errors.Is(err, blog.ErrForbidden):
		h.Pages.Forbidden(c)
	case err != nil:
		helpers.LogError(h.Logger, "delete article failed", err, helpers.RequestFields(c))
		h.Pages.Flash(c, response.FlashDanger, msgArticleNotDelete)
		redirect(c, articlePath(id))
	default:
		articlesDeleted.Add(1)
		h.Pages.Flash(c, response.FlashSuccess, msgArticleDeleted)
		redirect(c, "/blog")
	}
}
