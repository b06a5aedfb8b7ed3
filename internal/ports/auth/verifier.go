package auth

import "context"

// Verifier valida un token de sesión del proveedor de auth y devuelve claims.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
