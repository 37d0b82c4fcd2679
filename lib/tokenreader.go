package lib

type tokenReader interface {
	Next() (tok Token, done bool)
}
