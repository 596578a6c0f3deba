/* 관리자 JWT 토큰 생성 및 검증 */

package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	tokenIssuer  = "PortfolioSite-api"
	tokenSubject = "admin_auth_token"
	tokenTTL     = 24 * time.Hour
)

var (
	mu     sync.RWMutex
	jwtKey []byte
)

// Claims JWT 페이로드, 관리자 사용자명 포함
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Init 서명 키 설정. 비어 있으면 프로세스 수명 동안만 유효한 임의 키 사용
func Init(secret string) {
	mu.Lock()
	defer mu.Unlock()
	if secret == "" {
		secret = uuid.NewString() + uuid.NewString()
		zap.L().Warn("auth.Init(): JWT_SECRET_KEY is not set, tokens will not survive a restart")
	}
	jwtKey = []byte(secret)
}

func key() []byte {
	mu.RLock()
	defer mu.RUnlock()
	return jwtKey
}

// GenerateToken JWT 토큰 생성
func GenerateToken(username string) (string, error) {
	k := key()
	if len(k) == 0 {
		return "", errors.New("auth.GenerateToken(): signing key not initialised")
	}

	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   tokenSubject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(k)
}

// ValidateToken JWT 토큰 검증
func ValidateToken(tokenString string) (*Claims, error) {
	k := key()
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return k, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Issuer != tokenIssuer {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
