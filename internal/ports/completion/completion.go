// Package completion define el puerto hacia el servicio externo de generación de texto.
package completion

import (
	"context"
	"errors"
)

var (
	// ErrMissingCredential: el backend se construyó sin API key. No hay llamada de red.
	ErrMissingCredential = errors.New("completion: missing api credential")
	// ErrEmptyResponse: respuesta exitosa sin content blocks.
	ErrEmptyResponse = errors.New("completion: response has no content blocks")
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

const BlockTypeText = "text"

type Turn struct {
	Role    Role
	Content string
}

type Request struct {
	Model     string
	MaxTokens int
	System    string
	Messages  []Turn
}

// Block es un content block de la respuesta. Type discrimina; Text solo aplica a "text".
type Block struct {
	Type string
	Text string
}

func (b Block) IsText() bool { return b.Type == BlockTypeText }

type Response struct {
	Model  string
	Blocks []Block
}

// Backend hace un único request de completion.
type Backend interface {
	Name() string
	Complete(ctx context.Context, req Request) (Response, error)
}
