package security

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog/config"
	"github.com/oksasatya/go-ddd-blog/internal/infrastructure/memory"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
	"github.com/oksasatya/go-ddd-blog/pkg/mailer"
	"github.com/oksasatya/go-ddd-blog/pkg/response"
)

type fakeMail struct{ jobs []mailer.EmailJob }

func (f *fakeMail) PublishJSON(_ context.Context, body any) error {
	f.jobs = append(f.jobs, body.(mailer.EmailJob))
	return nil
}

func newService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	jwt := helpers.NewJWTManager("session-secret", "csrf-secret", time.Hour, time.Hour)
	cfg := &config.Config{AppName: "Blog", BaseURL: "http://blog.test"}
	svc := NewService(memory.NewStore().Users(), helpers.BcryptHasher{Cost: 4}, jwt, rdb, cfg, nil)
	return svc, mr
}

func register(t *testing.T, svc *Service, email, username string) {
	t.Helper()
	_, errs, err := svc.Register(context.Background(), RegistrationInput{Email: email, Username: username, Password: "Abcd1234!"})
	require.NoError(t, err)
	require.Empty(t, errs)
}

func TestRegisterHashesAndAssignsRoleUser(t *testing.T) {
	svc, _ := newService(t)
	mail := &fakeMail{}
	svc.Mail = mail

	u, errs, err := svc.Register(context.Background(), RegistrationInput{Email: "a@b.com", Username: "alice", Password: "Abcd1234!"})
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "Abcd1234!", u.Password)
	assert.True(t, svc.Hasher.Verify("Abcd1234!", u.Password))
	assert.Equal(t, []string{"ROLE_USER"}, u.Roles())
	assert.True(t, u.IsActive)

	require.Len(t, mail.jobs, 1)
	assert.Equal(t, "welcome", mail.jobs[0].Template)
	assert.Equal(t, "a@b.com", mail.jobs[0].To)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newService(t)
	register(t, svc, "a@b.com", "alice")

	_, errs, err := svc.Register(context.Background(), RegistrationInput{Email: "a@b.com", Username: "other", Password: "Abcd1234!"})
	require.NoError(t, err)
	assert.Equal(t, MsgEmailInUse, errs.Get("email"))
	assert.False(t, errs.Has("username"))

	_, errs, err = svc.Register(context.Background(), RegistrationInput{Email: "c@d.com", Username: "alice", Password: "Abcd1234!"})
	require.NoError(t, err)
	assert.Equal(t, MsgUsernameInUse, errs.Get("username"))
}

func TestRegisterChecksTrimmedUsername(t *testing.T) {
	svc, _ := newService(t)

	u, errs, err := svc.Register(context.Background(), RegistrationInput{Email: "a@b.com", Username: "  ab  ", Password: "Abcd1234!"})
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Equal(t, "Your username should be at least 3 characters", errs.Get("username"))

	taken, err := svc.Users.ExistsByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newService(t)
	register(t, svc, "a@b.com", "alice")
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return at }

	_, err := svc.Authenticate(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	stored, err := svc.Users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Nil(t, stored.LastLogin, "failed login leaves lastLogin untouched")

	_, err = svc.Authenticate(context.Background(), "nobody", "Abcd1234!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	u, err := svc.Authenticate(context.Background(), "a@b.com", "Abcd1234!")
	require.NoError(t, err)
	require.NotNil(t, u.LastLogin)
	assert.Equal(t, at, *u.LastLogin)

	stored, err = svc.Users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
	assert.Equal(t, at, *stored.LastLogin)
}

func TestAuthenticateInactive(t *testing.T) {
	svc, _ := newService(t)
	register(t, svc, "a@b.com", "alice")
	u, err := svc.Users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, svc.Users.Update(context.Background(), u))

	_, err = svc.Authenticate(context.Background(), "alice", "Abcd1234!")
	assert.ErrorIs(t, err, ErrInactiveUser)
}

func TestSessionLifecycle(t *testing.T) {
	svc, mr := newService(t)
	register(t, svc, "a@b.com", "alice")
	u, err := svc.Users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)

	token, exp, err := svc.StartSession(context.Background(), u)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	got, sid, err := svc.ResolveSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.True(t, mr.Exists("blog:session:"+sid))

	require.NoError(t, svc.EndSession(context.Background(), sid))
	_, _, err = svc.ResolveSession(context.Background(), token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, _, err = svc.ResolveSession(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCSRF(t *testing.T) {
	svc, _ := newService(t)
	tok, err := svc.IssueCSRF(IntentionAuthenticate, "nonce-1")
	require.NoError(t, err)

	assert.NoError(t, svc.CheckCSRF(IntentionAuthenticate, "nonce-1", tok))
	assert.ErrorIs(t, svc.CheckCSRF(IntentionAuthenticate, "nonce-2", tok), ErrInvalidCSRF)
	assert.ErrorIs(t, svc.CheckCSRF("delete", "nonce-1", tok), ErrInvalidCSRF)
	assert.ErrorIs(t, svc.CheckCSRF(IntentionAuthenticate, "nonce-1", ""), ErrInvalidCSRF)
}

func TestFlashesAreOneShot(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.PushFlash(ctx, "sid", response.Flash{Type: response.FlashInfo, Message: "You are already logged in."}))
	require.NoError(t, svc.PushFlash(ctx, "sid", response.Flash{Type: response.FlashSuccess, Message: "Saved"}))

	got, err := svc.PopFlashes(ctx, "sid")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "You are already logged in.", got[0].Message)

	got, err = svc.PopFlashes(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, got)
}
