package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"data-catalog/internal/pkg/config"
	"data-catalog/pkg/constants"
	pkgErrors "data-catalog/pkg/errors"
)

// UserClaims 用户Claims
type UserClaims struct {
	Username string `json:"username"`
	Type     string `json:"type"` // access or refresh
	jwt.RegisteredClaims
}

// TokenPair 访问Token与刷新Token
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// GenerateAccessToken 生成访问Token
func GenerateAccessToken(cfg config.JWTConfig, username string) (string, error) {
	return generate(cfg, username, constants.JWTTypeAccess, cfg.AccessTokenExpire)
}

// GenerateRefreshToken 生成刷新Token
func GenerateRefreshToken(cfg config.JWTConfig, username string) (string, error) {
	return generate(cfg, username, constants.JWTTypeRefresh, cfg.RefreshTokenExpire)
}

// GenerateTokenPair 同时生成访问Token和刷新Token
func GenerateTokenPair(cfg config.JWTConfig, username string) (*TokenPair, error) {
	access, err := GenerateAccessToken(cfg, username)
	if err != nil {
		return nil, err
	}
	refresh, err := GenerateRefreshToken(cfg, username)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresIn: cfg.AccessTokenExpire}, nil
}

func generate(cfg config.JWTConfig, username, tokenType string, expire int) (string, error) {
	now := time.Now()
	claims := UserClaims{
		Username: username,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expire) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", pkgErrors.Wrap(pkgErrors.CodeInternalError, "签发Token失败", err)
	}
	return signed, nil
}

// ParseToken 解析Token, 过期返回 ErrTokenExpired
func ParseToken(cfg config.JWTConfig, tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, pkgErrors.ErrTokenExpired
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeUnauthorized, "解析Token失败", err)
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, pkgErrors.ErrInvalidToken
}

// ValidateToken 验证Token有效性及类型
func ValidateToken(cfg config.JWTConfig, tokenString, tokenType string) (*UserClaims, error) {
	claims, err := ParseToken(cfg, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != tokenType {
		return nil, pkgErrors.New(pkgErrors.CodeUnauthorized, "无效的Token类型")
	}
	return claims, nil
}
