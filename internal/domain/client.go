package domain

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrViewerTooSlow    = errors.New("viewer is too slow")
)

type messageType byte

const (
	Hello = messageType(iota)
	Frame
)

type Message struct {
	Type    messageType
	Payload any
}

type HelloPayload struct {
	ViewerUuid string
}

type FramePayload struct {
	Board Board
	Piece *Piece
	Phase Phase
}

func NewFramePayload(snapshot Snapshot) FramePayload {
	return FramePayload{
		Board: snapshot.Board,
		Piece: snapshot.Piece,
		Phase: snapshot.Phase,
	}
}

type HealthCheckResponse struct {
	Phase   Phase
	Viewers int64
}

type Client interface {
	WriteMessage(msg Message) error
	// Wait blocks until the remote side goes away.
	Wait() error
	Uuid() string
}

type HubUseCase interface {
	Renderer
	Handle(ctx context.Context, client Client) error
	Viewers() int64
	Phase() Phase
}
