package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/internal/application/security"
	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
	"github.com/oksasatya/go-ddd-blog/pkg/response"
	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

const (
	msgSaveFailed = "An error occurred while saving. Please try again."
	msgUnexpected = "An unexpected error occurred. Please try again."

	ctxNonceKey = "csrf_nonce"
)

// Principal is the signed-in user as shown on every page.
type Principal struct {
	ID             int64    `json:"id"`
	Email          string   `json:"email"`
	Username       string   `json:"username"`
	Roles          []string `json:"roles"`
	ProfilePicture *string  `json:"profile_picture,omitempty"`
}

func principalOf(u *entity.User) *Principal {
	return &Principal{ID: u.ID, Email: u.Email, Username: u.Username, Roles: u.Roles(), ProfilePicture: u.ProfilePicture}
}

// Pages builds the view model parts every handler shares: principal,
// pending flashes and CSRF tokens.
type Pages struct {
	Security *security.Service
	Cookies  *helpers.Manager
	Logger   *logrus.Logger
}

func NewPages(sec *security.Service, cookies *helpers.Manager, logger *logrus.Logger) *Pages {
	return &Pages{Security: sec, Cookies: cookies, Logger: logger}
}

// nonce returns the browser nonce, issuing the cookie on first use.
func (p *Pages) nonce(c *gin.Context) string {
	if n := c.GetString(ctxNonceKey); n != "" {
		return n
	}
	n, err := c.Cookie(helpers.CSRFNonceCookie)
	if err != nil || n == "" {
		n = uuid.NewString()
		p.Cookies.SetCSRFNonce(c, n, time.Now().Add(p.Security.JWT.SessionTTL))
	}
	c.Set(ctxNonceKey, n)
	return n
}

// bucket is where flashes of this visitor are queued.
func (p *Pages) bucket(c *gin.Context) string {
	if sid := middleware.SessionID(c); sid != "" {
		return sid
	}
	return p.nonce(c)
}

// Page starts the view model of view and drains the visitor's flashes into it.
func (p *Pages) Page(c *gin.Context, view string) *response.Page {
	page := response.NewPage(view)
	if u := middleware.CurrentUser(c); u != nil {
		page.User = principalOf(u)
	}
	flashes, err := p.Security.PopFlashes(c.Request.Context(), p.bucket(c))
	if err != nil {
		helpers.LogError(p.Logger, "pop flashes failed", err, helpers.RequestFields(c))
	}
	page.Flashes = append(page.Flashes, flashes...)
	return page
}

// Rejected builds the page of a submission that is shown again with errs and
// an optional danger notice. POST handlers build their page only here, so a
// successful redirect leaves queued flashes for the next page.
func (p *Pages) Rejected(c *gin.Context, view string, errs validation.Errors, danger string) *response.Page {
	page := p.Page(c, view)
	page.Errors = errs
	if danger != "" {
		page.Flash(response.FlashDanger, danger)
	}
	return page
}

// Flash queues a notice for the next page the visitor sees.
func (p *Pages) Flash(c *gin.Context, typ, message string) {
	err := p.Security.PushFlash(c.Request.Context(), p.bucket(c), response.Flash{Type: typ, Message: message})
	if err != nil {
		helpers.LogError(p.Logger, "push flash failed", err, helpers.RequestFields(c))
	}
}

// CSRF puts a token for intention on the page.
func (p *Pages) CSRF(c *gin.Context, page *response.Page, intention string) {
	tok, err := p.Security.IssueCSRF(intention, p.nonce(c))
	if err != nil {
		helpers.LogError(p.Logger, "issue csrf token failed", err, helpers.RequestFields(c))
		return
	}
	page.CSRFToken = tok
}

func (p *Pages) NotFound(c *gin.Context) {
	response.Write(c, response.Error[any](c, http.StatusNotFound, "not found", nil))
}

func (p *Pages) Forbidden(c *gin.Context) {
	response.Write(c, response.Error[any](c, http.StatusForbidden, "access denied", nil))
}

// Fail logs err and answers 500 without exposing it.
func (p *Pages) Fail(c *gin.Context, msg string, err error) {
	helpers.LogError(p.Logger, msg, err, helpers.RequestFields(c))
	response.Write(c, response.Error[any](c, http.StatusInternalServerError, "internal error", nil))
}

func redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusSeeOther, path)
}

// paramID parses the :id route parameter; anything but a positive integer
// is rejected.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}
