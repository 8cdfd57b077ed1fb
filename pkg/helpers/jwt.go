package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs the session cookie token and the CSRF form tokens.
type JWTManager struct {
	SessionSecret []byte
	CSRFSecret    []byte
	SessionTTL    time.Duration
	CSRFTTL       time.Duration
}

func NewJWTManager(sessionSecret, csrfSecret string, sessionTTL, csrfTTL time.Duration) *JWTManager {
	return &JWTManager{
		SessionSecret: []byte(sessionSecret),
		CSRFSecret:    []byte(csrfSecret),
		SessionTTL:    sessionTTL,
		CSRFTTL:       csrfTTL,
	}
}

// Claims carried by the session cookie. SessionID points at the Redis session.
type Claims struct {
	UserID    int64  `json:"uid"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// CSRFClaims bind a form token to an intention and the browser nonce cookie.
type CSRFClaims struct {
	Intention string `json:"int"`
	Nonce     string `json:"nonce"`
	jwt.RegisteredClaims
}

func (m *JWTManager) GenerateSessionToken(userID int64, sessionID string) (string, time.Time, error) {
	exp := time.Now().Add(m.SessionTTL)
	claims := &Claims{
		UserID:    userID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.SessionSecret)
	return s, exp, err
}

func (m *JWTManager) ParseSessionToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	if err := parseToken(tokenStr, m.SessionSecret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (m *JWTManager) GenerateCSRFToken(intention, nonce string) (string, error) {
	claims := &CSRFClaims{
		Intention: intention,
		Nonce:     nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.CSRFTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.CSRFSecret)
}

func (m *JWTManager) ParseCSRFToken(tokenStr string) (*CSRFClaims, error) {
	claims := &CSRFClaims{}
	if err := parseToken(tokenStr, m.CSRFSecret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func parseToken(tokenStr string, secret []byte, claims jwt.Claims) error {
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return err
	}
	if !tkn.Valid {
		return errors.New("invalid token")
	}
	return nil
}
