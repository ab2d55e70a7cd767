// Package auth resolves the identity behind a request from its session
// cookie. Logging in is handled elsewhere; this package only issues, checks
// and refreshes the signed tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/gdg-garage/camp-profile-api/internal/apperr"
	"github.com/gdg-garage/camp-profile-api/internal/config"
	"github.com/gdg-garage/camp-profile-api/internal/models"
)

const (
	CookieName    = "auth_token"
	TokenDuration = 24 * time.Hour
)

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config, db *gorm.DB) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

func (h *AuthHandler) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

func (h *AuthHandler) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// WithUserID marks ctx as belonging to an authenticated user.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// UserID returns the authenticated user of ctx, if any.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok && id != 0
}

// Viewer loads the user behind ctx. Anonymous requests yield nil without an
// error; a token naming a deleted account is treated the same way.
func (h *AuthHandler) Viewer(ctx context.Context) (*models.User, error) {
	id, ok := UserID(ctx)
	if !ok {
		return nil, nil
	}
	var user models.User
	if err := h.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load viewer %d: %w", id, err)
	}
	return &user, nil
}

// RequireUser is like Viewer but fails for anonymous requests.
func (h *AuthHandler) RequireUser(ctx context.Context) (*models.User, error) {
	user, err := h.Viewer(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

// ErrUnauthenticated is returned when an operation needs a signed-in user.
var ErrUnauthenticated = fmt.Errorf("not signed in: %w", apperr.ErrPermissionDenied)
