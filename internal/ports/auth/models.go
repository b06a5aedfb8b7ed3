package auth

// Claims es lo que el proveedor de sesiones devuelve para un token válido.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
