package ports

// PasswordHasher gera e confere hashes de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenService emite e valida tokens de sessão.
// Não há revogação: a expiração é a única forma de invalidar um token.
type TokenService interface {
	Issue(userID uint) (string, error)
	Parse(token string) (uint, error)
}
