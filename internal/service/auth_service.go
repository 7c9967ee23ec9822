package service

import (
	"go.uber.org/zap"

	"data-catalog/internal/dto"
	"data-catalog/internal/pkg/config"
	"data-catalog/internal/pkg/jwt"
	"data-catalog/internal/pkg/logger"
	"data-catalog/pkg/constants"
	pkgErrors "data-catalog/pkg/errors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
}

type authService struct {
	cfg         config.AuthConfig
	ldapService LDAPService
}

func NewAuthService(cfg config.AuthConfig, ldapService LDAPService) AuthService {
	return &authService{
		cfg:         cfg,
		ldapService: ldapService,
	}
}

// Login 通过 LDAP 认证后签发Token对
func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if !s.cfg.LDAP.Enabled {
		return nil, pkgErrors.New(pkgErrors.CodeForbidden, "LDAP认证未启用")
	}

	userInfo, err := s.ldapService.Authenticate(req.Username, req.Password)
	if err != nil {
		logger.Warn("登录失败", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	resp, err := s.issue(userInfo.Username)
	if err != nil {
		return nil, err
	}
	resp.User = userInfo

	logger.Info("登录成功", zap.String("username", userInfo.Username))
	return resp, nil
}

func (s *authService) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	claims, err := jwt.ValidateToken(s.cfg.JWT, refreshToken, constants.JWTTypeRefresh)
	if err != nil {
		return nil, err
	}
	return s.issue(claims.Username)
}

func (s *authService) issue(username string) (*dto.LoginResponse, error) {
	pair, err := jwt.GenerateTokenPair(s.cfg.JWT, username)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "生成Token失败", err)
	}
	return &dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
