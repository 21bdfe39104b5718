package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"PlateTrail/models"
	"PlateTrail/storage"
	"PlateTrail/utils"

	firebaseauth "firebase.google.com/go/auth"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// Claims are the signed session claims. Tokens are real HS256 JWTs, not
// prefix-checked placeholder strings.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService struct {
	Store        storage.Store
	FirebaseAuth *firebaseauth.Client // nil on the file backend
	secretKey    []byte
}

func NewAuthService(store storage.Store, firebaseAuth *firebaseauth.Client, jwtSecret string) *AuthService {
	return &AuthService{
		Store:        store,
		FirebaseAuth: firebaseAuth,
		secretKey:    []byte(jwtSecret),
	}
}

// Register creates a new account and returns the user plus a session token.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	if len(password) < 8 {
		return nil, utils.NewInvalidInput("Password must be at least 8 characters")
	}

	existing, err := s.Store.GetUserByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, utils.NewInvalidInput("Username already registered")
	}
	if err != nil && !utils.HasCode(err, utils.CodeNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewServerError("Failed to hash password")
	}

	user, err := s.Store.CreateUser(ctx, &models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: user, Token: token}, nil
}

// Login verifies the credentials and returns the user plus a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	user, err := s.Store.GetUserByUsername(ctx, username)
	if err != nil {
		if utils.HasCode(err, utils.CodeNotFound) {
			return nil, utils.NewAuthRequired("Invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewAuthRequired("Invalid username or password")
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: user, Token: token}, nil
}

// GoogleLogin exchanges a verified Firebase ID token for a local session,
// provisioning the account on first sign-in. Only available on the firestore
// backend.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*models.AuthResponse, error) {
	if s.FirebaseAuth == nil {
		return nil, utils.NewCustomError(http.StatusServiceUnavailable, "Google sign-in is not available on this backend")
	}

	verified, err := s.FirebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, utils.NewAuthRequired("Invalid Google ID token")
	}

	email, _ := verified.Claims["email"].(string)
	if email == "" {
		return nil, utils.NewAuthRequired("Google token carries no email")
	}

	user, err := s.Store.GetUserByUsername(ctx, email)
	if utils.HasCode(err, utils.CodeNotFound) {
		user, err = s.Store.CreateUser(ctx, &models.User{
			Username: email,
			Email:    email,
		})
	}
	if err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: user, Token: token}, nil
}

// GenerateToken signs a session token for the user.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", utils.NewServerError("Failed to sign token")
	}
	return signed, nil
}

// ValidateToken parses and validates a session token.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secretKey, nil
		},
	)
	if err != nil {
		return nil, utils.NewAuthRequired("Invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, utils.NewAuthRequired("Invalid or expired token")
	}
	return claims, nil
}
