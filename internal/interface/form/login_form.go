package form

// LoginForm uses the field names of the classic form-login firewall.
type LoginForm struct {
	Username  string `form:"_username" json:"_username"`
	Password  string `form:"_password" json:"-"`
	CSRFToken string `form:"_csrf_token" json:"-"`
}
