package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authdomain "github.com/cides/formadesk/internal/auth/domain"
	"github.com/cides/formadesk/internal/auth/password"
	"github.com/cides/formadesk/internal/clock"
	"github.com/cides/formadesk/pkg/repository"
)

const (
	sessionTokenBytes = 32
	sessionTTL        = 7 * 24 * time.Hour

	minPasswordLength = 8
)

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
}

type Service struct {
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node

	userrepo    repository.Repository[authdomain.User]
	sessionrepo repository.Repository[authdomain.Session]
}

func NewService(p ServiceParam) authdomain.Service {
	return &Service{
		log:   p.Log.Named("auth.service"),
		clock: p.Clock,
		genID: p.GenID,

		userrepo:    repository.ProvideStore[authdomain.User](p.DB),
		sessionrepo: repository.ProvideStore[authdomain.Session](p.DB),
	}
}

func (s *Service) CreateUser(ctx context.Context, req authdomain.CreateUserRequest) (*authdomain.User, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, authdomain.ErrInvalidCredentials
	}
	if len(strings.TrimSpace(req.Password)) < minPasswordLength {
		return nil, authdomain.ErrInvalidCredentials
	}

	existing, err := s.userrepo.FindOne(ctx, &authdomain.User{Email: email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrUserExists
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role != authdomain.RoleAdmin {
		role = authdomain.RoleStaff
	}

	user := &authdomain.User{
		ID:           s.genID.Generate(),
		Email:        email,
		DisplayName:  displayName(req.DisplayName, email),
		PasswordHash: &hashed,
		Role:         role,
	}
	if err := s.userrepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, req authdomain.LoginRequest) (*authdomain.LoginResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, authdomain.ErrInvalidCredentials
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, authdomain.ErrInvalidCredentials
	}

	user, err := s.userrepo.FindOne(ctx, &authdomain.User{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil || !password.Verify(req.Password, *user.PasswordHash) {
		return nil, authdomain.ErrInvalidCredentials
	}

	rawToken, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	session := &authdomain.Session{
		ID:               s.genID.Generate(),
		UserID:           user.ID,
		SessionTokenHash: hashToken(rawToken),
		UserAgent:        strings.TrimSpace(req.UserAgent),
		IPAddress:        strings.TrimSpace(req.IPAddress),
		ExpiresAt:        now.Add(sessionTTL),
		CreatedAt:        now,
		LastSeenAt:       now,
	}
	if err := s.sessionrepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("user logged in", zap.String("user_id", user.ID.String()))

	return &authdomain.LoginResult{
		User:      user,
		RawToken:  rawToken,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *Service) Logout(ctx context.Context, rawToken string) error {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return authdomain.ErrInvalidSession
	}

	session, err := s.sessionrepo.FindOne(ctx, &authdomain.Session{SessionTokenHash: hashToken(token)})
	if err != nil {
		return err
	}
	if session == nil {
		return authdomain.ErrInvalidSession
	}

	now := s.clock.Now()
	return s.sessionrepo.Update(ctx, session.ID.String(), map[string]any{"revoked_at": &now})
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*authdomain.Identity, error) {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return nil, authdomain.ErrInvalidSession
	}

	session, err := s.sessionrepo.FindOne(ctx, &authdomain.Session{SessionTokenHash: hashToken(token)})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, authdomain.ErrInvalidSession
	}

	now := s.clock.Now()
	if session.RevokedAt != nil {
		return nil, authdomain.ErrSessionRevoked
	}
	if now.After(session.ExpiresAt) {
		return nil, authdomain.ErrSessionExpired
	}

	user, err := s.userrepo.FindOne(ctx, &authdomain.User{ID: session.UserID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrInvalidSession
	}

	if err := s.sessionrepo.Update(ctx, session.ID.String(), map[string]any{"last_seen_at": now}); err != nil {
		return nil, err
	}
	session.LastSeenAt = now

	return &authdomain.Identity{User: user, Session: session}, nil
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(addr.Address)), nil
}

func displayName(requested, email string) string {
	if name := strings.TrimSpace(requested); name != "" {
		return name
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
