package security

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/config"
	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
	"github.com/oksasatya/go-ddd-blog/pkg/mailer"
	"github.com/oksasatya/go-ddd-blog/pkg/mailer/templates"
	"github.com/oksasatya/go-ddd-blog/pkg/response"
	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrInvalidCSRF        = errors.New("invalid csrf token")
	ErrSessionNotFound    = errors.New("session not found")
)

const (
	MsgEmailInUse    = "This email is already in use"
	MsgUsernameInUse = "This username is already in use"

	// IntentionAuthenticate is the CSRF intention of the login form.
	IntentionAuthenticate = "authenticate"
)

// PasswordHasher is the hashing capability; digests are opaque to callers.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// Publisher queues outgoing mail.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type Service struct {
	Users  repo.UserRepository
	Hasher PasswordHasher
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Mail   Publisher

	Config *config.Config
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewService(users repo.UserRepository, hasher PasswordHasher, jwt *helpers.JWTManager, rdb *redis.Client, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		Users:  users,
		Hasher: hasher,
		JWT:    jwt,
		Redis:  rdb,
		Config: cfg,
		Logger: logger,
		Now:    time.Now,
	}
}

// Session is the server side of a login, stored in Redis by id.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func sessionKey(sid string) string { return "blog:session:" + sid }

func flashKey(bucket string) string { return "blog:flash:" + bucket }

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

type RegistrationInput struct {
	Email    string
	Username string
	Password string
}

// Register creates a ROLE_USER account. Taken emails or usernames come back
// as field errors, including collisions detected by storage.
func (s *Service) Register(ctx context.Context, in RegistrationInput) (*entity.User, validation.Errors, error) {
	u := entity.NewUser(in.Email, in.Username, s.now())
	if errs := u.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}
	email, username := u.Email, u.Username

	var errs validation.Errors
	taken, err := s.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		errs.Add("email", MsgEmailInUse)
	}
	taken, err = s.Users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		errs.Add("username", MsgUsernameInUse)
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	digest, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, nil, err
	}
	u.Password = digest
	u.SetRoles(entity.DefaultRoles)

	if err := s.Users.Create(ctx, u); err != nil {
		if field, ok := repo.DuplicateField(err); ok {
			msg := MsgUsernameInUse
			if field == "email" {
				msg = MsgEmailInUse
			}
			return nil, validation.Errors{{Field: field, Message: msg}}, nil
		}
		return nil, nil, err
	}

	s.sendWelcome(ctx, u)
	return u, nil, nil
}

func (s *Service) sendWelcome(ctx context.Context, u *entity.User) {
	if s.Mail == nil || s.Config == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: templates.Welcome,
		Data:     templates.NewWelcomeData(s.Config, u.Username, u.Email),
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email publish failed")
	}
}

// Authenticate checks an email or username against the stored digest and
// records the login. Nothing is written when the check fails.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (*entity.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.lookup(ctx, identifier)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.Hasher.Verify(password, u.Password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInactiveUser
	}
	u.RecordLogin(s.now())
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) lookup(ctx context.Context, identifier string) (*entity.User, error) {
	if strings.Contains(identifier, "@") {
		u, err := s.Users.GetByEmail(ctx, identifier)
		if !errors.Is(err, repo.ErrNotFound) {
			return u, err
		}
	}
	return s.Users.GetByUsername(ctx, identifier)
}

// StartSession stores a new session for u and returns the signed cookie value.
func (s *Service) StartSession(ctx context.Context, u *entity.User) (string, time.Time, error) {
	sess := Session{ID: uuid.NewString(), UserID: u.ID, CreatedAt: s.now()}
	if err := helpers.RedisSetJSON(ctx, s.Redis, sessionKey(sess.ID), sess, s.JWT.SessionTTL); err != nil {
		return "", time.Time{}, err
	}
	return s.JWT.GenerateSessionToken(u.ID, sess.ID)
}

// ResolveSession maps a cookie value back to its active user and session id.
func (s *Service) ResolveSession(ctx context.Context, token string) (*entity.User, string, error) {
	claims, err := s.JWT.ParseSessionToken(token)
	if err != nil {
		return nil, "", ErrSessionNotFound
	}
	var sess Session
	found, err := helpers.RedisGetJSON(ctx, s.Redis, sessionKey(claims.SessionID), &sess)
	if err != nil {
		return nil, "", err
	}
	if !found || sess.UserID != claims.UserID {
		return nil, "", ErrSessionNotFound
	}
	u, err := s.Users.GetByID(ctx, sess.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, "", ErrSessionNotFound
	}
	if err != nil {
		return nil, "", err
	}
	if !u.IsActive {
		return nil, "", ErrInactiveUser
	}
	return u, sess.ID, nil
}

// EndSession forgets the session and its pending flashes.
func (s *Service) EndSession(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.Redis.Del(ctx, sessionKey(sid), flashKey(sid)).Err()
}

// IssueCSRF signs a token for intention bound to the browser nonce.
func (s *Service) IssueCSRF(intention, nonce string) (string, error) {
	return s.JWT.GenerateCSRFToken(intention, nonce)
}

func (s *Service) CheckCSRF(intention, nonce, token string) error {
	if token == "" || nonce == "" {
		return ErrInvalidCSRF
	}
	claims, err := s.JWT.ParseCSRFToken(token)
	if err != nil || claims.Intention != intention || claims.Nonce != nonce {
		return ErrInvalidCSRF
	}
	return nil
}

// PushFlash queues a notice for the next page rendered for bucket (a
// session id or the anonymous browser nonce).
func (s *Service) PushFlash(ctx context.Context, bucket string, f response.Flash) error {
	if bucket == "" {
		return nil
	}
	return helpers.RedisPushJSON(ctx, s.Redis, flashKey(bucket), f, time.Hour)
}

// PopFlashes returns and clears the queued notices of bucket.
func (s *Service) PopFlashes(ctx context.Context, bucket string) ([]response.Flash, error) {
	if bucket == "" {
		return nil, nil
	}
	return helpers.RedisDrainJSON[response.Flash](ctx, s.Redis, flashKey(bucket))
}
