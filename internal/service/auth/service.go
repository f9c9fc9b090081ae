package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/reboot-ai/crm-backend-go/internal/domain/auth"
	"github.com/reboot-ai/crm-backend-go/internal/domain/user"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/jwt"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/oauth"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/session"
)

type authServiceImpl struct {
	userRepo      user.UserRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
	sessions      *session.Store
}

func NewAuthService(
	userRepo user.UserRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
	sessions *session.Store,
) auth.AuthService {
	return &authServiceImpl{
		userRepo:      userRepo,
		jwtService:    jwtService,
		googleService: googleService,
		sessions:      sessions,
	}
}

// Register implements auth.AuthService. Self-registration creates a
// dashboard admin; staff accounts are provisioned through employee
// management instead.
func (s *authServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if exists {
		return auth.TokenResponse{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	hashStr := string(hash)

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hashStr,
		Role:         user.RoleAdmin,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(ctx, created)
}

// Login implements auth.AuthService.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	found, err := s.userRepo.GetByEmail(ctx, req.Email)
	if errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// A Google-only account has no password hash.
	if found.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*found.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, found)
}

// LoginWithGoogle implements auth.AuthService.
func (s *authServiceImpl) LoginWithGoogle(ctx context.Context) string {
	state := s.googleService.GenerateState()
	return s.googleService.RedirectURL(state)
}

// OAuthCallbackGoogle implements auth.AuthService.
func (s *authServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	account, err := s.googleService.FetchUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	found, err := s.userRepo.GetByEmail(ctx, account.Email)
	if errors.Is(err, user.ErrUserNotFound) {
		// Only known accounts may sign in with Google; the dashboard has
		// no open signup through OAuth.
		return auth.TokenResponse{}, auth.ErrUserNotFound
	}
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if found.OAuthProviderID == nil {
		found, err = s.userRepo.LinkGoogleAccount(ctx, account.GoogleID, account.Email)
		if err != nil {
			return auth.TokenResponse{}, err
		}
	}

	return s.issueTokens(ctx, found)
}

// Logout implements auth.AuthService. Dropping the session record revokes
// the refresh token; the short-lived access token simply expires.
func (s *authServiceImpl) Logout(ctx context.Context, accessToken string) error {
	decoded, err := s.jwtService.JWTAuth().Decode(accessToken)
	if err != nil {
		return auth.ErrInvalidToken
	}

	userID, ok := decoded.Get("user_id")
	if !ok {
		return auth.ErrInvalidToken
	}
	id, ok := userID.(string)
	if !ok {
		return auth.ErrInvalidToken
	}

	return s.sessions.Clear(ctx, id)
}

// RefreshToken implements auth.AuthService.
func (s *authServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	decoded, err := s.jwtService.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := decoded.Get("type"); tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if decoded.Expiration().Before(time.Now()) {
		return auth.AccessTokenResponse{}, auth.ErrTokenExpired
	}

	userID, ok := decoded.Get("user_id")
	if !ok {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	id, ok := userID.(string)
	if !ok {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// The refresh token is only honored while its session record lives.
	rec, err := s.sessions.Get(ctx, id)
	if errors.Is(err, session.ErrNotFound) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if rec.RefreshToken != req.RefreshToken {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(found.ID, found.Email, found.EmployeeID, found.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	return auth.AccessTokenResponse{AccessToken: accessToken, ExpiresAt: expiresAt}, nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	err = s.sessions.Save(ctx, session.Record{
		UserID:       u.ID,
		Email:        u.Email,
		Role:         string(u.Role),
		EmployeeID:   u.EmployeeID,
		RefreshToken: refreshToken,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	slog.Info("user logged in", "user_id", u.ID, "role", u.Role)

	return auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User: auth.SessionUser{
			ID:         u.ID,
			Email:      u.Email,
			Role:       string(u.Role),
			EmployeeID: u.EmployeeID,
		},
	}, nil
}
