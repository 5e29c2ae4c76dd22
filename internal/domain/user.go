package domain

import "github.com/golang-jwt/jwt/v5"

// Roles de usuário dentro do tenant
const (
	RoleAdmin   = 1
	RoleManager = 2
	RoleMember  = 3
)

// Claims são as claims do token emitido pelo backend hospedado. A API apenas
// valida o token; criação de usuários e senhas ficam do lado de lá.
type Claims struct {
	UserID   int    `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Role     int    `json:"role"`
	jwt.RegisteredClaims
}
