// Package authenticating valida os tokens emitidos pelo backend hospedado.
// Gestão de usuários e senhas fica do lado de lá; aqui só verificamos a
// assinatura e extraímos as claims de tenant e papel.
package authenticating

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/freelahub/agency-ops-api/internal/config"
	"github.com/freelahub/agency-ops-api/internal/domain"
)

var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrMissingTenant = errors.New("token sem tenant")
)

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TenantID == "" {
		return nil, ErrMissingTenant
	}

	return claims, nil
}
