package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/internal/application/security"
	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/interface/form"
	"github.com/oksasatya/go-ddd-blog/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
	"github.com/oksasatya/go-ddd-blog/pkg/response"
	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

// ErrLogoutNotIntercepted means the logout route was dispatched to its
// handler, so middleware.Logout is missing from the chain.
var ErrLogoutNotIntercepted = errors.New("logout route reached its handler: logout middleware is not installed")

const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgInvalidCSRF        = "Invalid CSRF token."
	MsgAlreadyLoggedIn    = "You are already logged in."

	msgLoginAfterSignup = "Your account has been created. Please log in."
)

type SecurityHandler struct {
	Svc     *security.Service
	Pages   *Pages
	Cookies *helpers.Manager
	Logger  *logrus.Logger
}

func NewSecurityHandler(svc *security.Service, pages *Pages, cookies *helpers.Manager, logger *logrus.Logger) *SecurityHandler {
	return &SecurityHandler{Svc: svc, Pages: pages, Cookies: cookies, Logger: logger}
}

// alreadyIn sends signed-in visitors back to the blog.
func (h *SecurityHandler) alreadyIn(c *gin.Context) bool {
	if middleware.CurrentUser(c) == nil {
		return false
	}
	h.Pages.Flash(c, response.FlashInfo, MsgAlreadyLoggedIn)
	redirect(c, "/blog")
	return true
}

func (h *SecurityHandler) startSession(c *gin.Context, u *entity.User) error {
	tok, exp, err := h.Svc.StartSession(c.Request.Context(), u)
	if err != nil {
		return err
	}
	h.Cookies.SetSession(c, tok, exp)
	return nil
}

func (h *SecurityHandler) RegisterForm(c *gin.Context) {
	if h.alreadyIn(c) {
		return
	}
	page := h.Pages.Page(c, "security/registration")
	page.Form = form.RegistrationForm{}
	response.Render(c, page)
}

// Register creates the account and signs the new user in.
func (h *SecurityHandler) Register(c *gin.Context) {
	if h.alreadyIn(c) {
		return
	}

	var f form.RegistrationForm
	errs := validation.FromBinding(c.ShouldBind(&f), f)
	if len(errs) == 0 {
		u, fieldErrs, err := h.Svc.Register(c.Request.Context(), f.Input())
		if err != nil {
			helpers.LogError(h.Logger, "registration failed", err, helpers.RequestFields(c))
			page := h.Pages.Rejected(c, "security/registration", nil, msgSaveFailed)
			page.Form = f
			response.Render(c, page)
			return
		}
		if len(fieldErrs) == 0 {
			registrations.Add(1)
			if err := h.startSession(c, u); err != nil {
				helpers.LogError(h.Logger, "session after registration failed", err, helpers.RequestFields(c))
				h.Pages.Flash(c, response.FlashInfo, msgLoginAfterSignup)
				redirect(c, middleware.LoginPath)
				return
			}
			redirect(c, "/blog")
			return
		}
		errs = fieldErrs
	}
	page := h.Pages.Rejected(c, "security/registration", errs, "")
	page.Form = f
	response.Render(c, page)
}

func (h *SecurityHandler) LoginForm(c *gin.Context) {
	if h.alreadyIn(c) {
		return
	}
	h.renderLogin(c, h.Pages.Page(c, "security/sign"), "", "")
}

// renderLogin redisplays the last username, never the password.
func (h *SecurityHandler) renderLogin(c *gin.Context, page *response.Page, lastUsername, errMsg string) {
	page.Set("last_username", lastUsername)
	if errMsg != "" {
		page.Set("error", errMsg)
	}
	h.Pages.CSRF(c, page, security.IntentionAuthenticate)
	response.Render(c, page)
}

// Login checks the CSRF token first, then the credentials. On success the
// visitor goes to the page they were bounced from, or the blog.
func (h *SecurityHandler) Login(c *gin.Context) {
	if h.alreadyIn(c) {
		return
	}
	const view = "security/sign"

	var f form.LoginForm
	if err := c.ShouldBind(&f); err != nil {
		loginsFailed.Add(1)
		h.renderLogin(c, h.Pages.Page(c, view), "", MsgInvalidCredentials)
		return
	}
	nonce, _ := c.Cookie(helpers.CSRFNonceCookie)
	if err := h.Svc.CheckCSRF(security.IntentionAuthenticate, nonce, f.CSRFToken); err != nil {
		loginsFailed.Add(1)
		h.renderLogin(c, h.Pages.Page(c, view), f.Username, MsgInvalidCSRF)
		return
	}

	u, err := h.Svc.Authenticate(c.Request.Context(), f.Username, f.Password)
	switch {
	case errors.Is(err, security.ErrInvalidCredentials), errors.Is(err, security.ErrInactiveUser):
		loginsFailed.Add(1)
		h.renderLogin(c, h.Pages.Page(c, view), f.Username, MsgInvalidCredentials)
		return
	case err != nil:
		helpers.LogError(h.Logger, "authentication failed", err, helpers.RequestFields(c))
		h.renderLogin(c, h.Pages.Rejected(c, view, nil, msgUnexpected), f.Username, "")
		return
	}

	if err := h.startSession(c, u); err != nil {
		helpers.LogError(h.Logger, "start session failed", err, helpers.RequestFields(c))
		h.renderLogin(c, h.Pages.Rejected(c, view, nil, msgUnexpected), f.Username, "")
		return
	}
	loginsSucceeded.Add(1)
	helpers.LogInfo(h.Logger, "user logged in", logrus.Fields{"user_id": u.ID, "request_id": c.GetString("request_id")})

	target := "/blog"
	if p, ok := h.Cookies.PopTargetPath(c); ok {
		target = p
	}
	redirect(c, target)
}

// Logout is unreachable when middleware.Logout is installed.
func (h *SecurityHandler) Logout(c *gin.Context) {
	panic(ErrLogoutNotIntercepted)
}
