package gateway

type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare devolve false para senha errada; erro só para hash corrompido.
	Compare(hash, plain string) (bool, error)
}
