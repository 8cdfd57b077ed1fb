package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

// Flash levels.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashDanger  = "danger"
)

// Flash is a one-time notice shown on the next rendered page.
type Flash struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Page is the view model a template layer renders. Errors holds field-level
// validation messages in declaration order.
type Page struct {
	View      string            `json:"view"`
	Data      gin.H             `json:"data,omitempty"`
	Form      any               `json:"form,omitempty"`
	Errors    validation.Errors `json:"errors,omitempty"`
	Flashes   []Flash           `json:"flashes,omitempty"`
	CSRFToken string            `json:"csrf_token,omitempty"`
	User      any               `json:"user,omitempty"`
}

// NewPage starts a view model for the named view.
func NewPage(view string) *Page {
	return &Page{View: view, Data: gin.H{}}
}

// Set stores a value under key in the page data.
func (p *Page) Set(key string, value any) *Page {
	p.Data[key] = value
	return p
}

// Flash appends a notice rendered with this page.
func (p *Page) Flash(typ, message string) *Page {
	p.Flashes = append(p.Flashes, Flash{Type: typ, Message: message})
	return p
}

// Render writes the page inside the success envelope. Re-rendered forms use
// 200 like a first render; validation problems are not request failures.
func Render(ctx *gin.Context, page *Page) {
	Write(ctx, Success(ctx, http.StatusOK, page, page.View, nil))
}
