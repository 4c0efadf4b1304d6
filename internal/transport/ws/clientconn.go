package ws

import (
	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/tetris/internal/domain"
	"github.com/pkg/errors"
)

type client struct {
	conn *websocket.Conn
	uuid string
}

func newClient(conn *websocket.Conn, uuid string) client {
	return client{
		conn: conn,
		uuid: uuid,
	}
}

func (c client) WriteMessage(msg domain.Message) error {
	if err := c.conn.WriteJSON(msg); err != nil {
		return errors.WithMessage(err, "websocket conn write json")
	}
	return nil
}

// Wait reads until the viewer disconnects. Viewers never send anything
// meaningful; reading keeps control frames flowing.
func (c client) Wait() error {
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return errors.WithMessage(err, "websocket conn read")
			}
			return domain.ErrConnectionClosed
		}
	}
}

func (c client) Uuid() string {
	return c.uuid
}

func (c client) Close() {
	_ = c.conn.Close()
}
