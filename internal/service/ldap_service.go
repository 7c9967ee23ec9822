package service

import (
	"fmt"

	"github.com/go-ldap/ldap/v3"

	"data-catalog/internal/dto"
	"data-catalog/internal/pkg/config"
	pkgErrors "data-catalog/pkg/errors"
)

type LDAPService interface {
	Authenticate(username, password string) (*dto.UserInfo, error)
}

// ldapConn *ldap.Conn 中用到的方法
type ldapConn interface {
	Bind(username, password string) error
	Search(req *ldap.SearchRequest) (*ldap.SearchResult, error)
}

// ldapDialer 返回连接及其关闭函数
type ldapDialer func(cfg *config.LDAPConfig) (ldapConn, func(), error)

type ldapService struct {
	cfg  *config.LDAPConfig
	dial ldapDialer
}

func NewLDAPService(cfg *config.LDAPConfig) LDAPService {
	return &ldapService{
		cfg:  cfg,
		dial: dialLDAP,
	}
}

func dialLDAP(cfg *config.LDAPConfig) (ldapConn, func(), error) {
	conn, err := ldap.DialURL(cfg.URL())
	if err != nil {
		return nil, nil, err
	}
	return conn, func() { conn.Close() }, nil
}

func (s *ldapService) Authenticate(username, password string) (*dto.UserInfo, error) {
	if !s.cfg.Enabled {
		return nil, pkgErrors.New(pkgErrors.CodeForbidden, "LDAP认证未启用")
	}
	// 空密码会被部分服务端当作匿名绑定
	if password == "" {
		return nil, pkgErrors.ErrInvalidCredentials
	}

	conn, closeConn, err := s.dial(s.cfg)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "LDAP连接失败", err)
	}
	defer closeConn()

	// 使用管理员账号绑定
	if err := conn.Bind(s.cfg.BindDN, s.cfg.BindPassword); err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "LDAP绑定失败", err)
	}

	entry, err := s.searchUser(conn, username)
	if err != nil {
		return nil, err
	}

	// 验证密码
	if err := conn.Bind(entry.DN, password); err != nil {
		return nil, pkgErrors.ErrInvalidCredentials
	}

	return &dto.UserInfo{
		Username:    username,
		Email:       entry.GetAttributeValue(s.cfg.Attributes.Email),
		DisplayName: entry.GetAttributeValue(s.cfg.Attributes.DisplayName),
	}, nil
}

func (s *ldapService) searchUser(conn ldapConn, username string) (*ldap.Entry, error) {
	filter := fmt.Sprintf(s.cfg.UserFilter, ldap.EscapeFilter(username))

	searchRequest := ldap.NewSearchRequest(
		s.cfg.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		0,
		false,
		filter,
		[]string{s.cfg.Attributes.Username, s.cfg.Attributes.Email, s.cfg.Attributes.DisplayName},
		nil,
	)

	result, err := conn.Search(searchRequest)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "LDAP搜索失败", err)
	}

	// 用户不存在与密码错误返回相同的错误
	if len(result.Entries) == 0 {
		return nil, pkgErrors.ErrInvalidCredentials
	}
	if len(result.Entries) > 1 {
		return nil, pkgErrors.New(pkgErrors.CodeAuthError, "找到多个匹配的用户")
	}
	return result.Entries[0], nil
}
