package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/tetris/internal/adapters/webapi"
	"github.com/kiryu-dev/tetris/internal/domain"
	"github.com/kiryu-dev/tetris/internal/transport/tui"
	"github.com/kiryu-dev/tetris/pkg/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	host := flag.String("addr", "localhost:8080", "address of a running game")
	flag.Parse()

	health, err := webapi.New().HealthCheck(context.Background(), (&url.URL{Scheme: "http", Host: *host}).String())
	if err != nil {
		logger.Fatal(err.Error())
	}
	logger.Info("game found", zap.Stringer("phase", health.Phase), zap.Int64("viewers", health.Viewers))

	u := url.URL{Scheme: "ws", Host: *host, Path: "/watch"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		logger.Fatal("dial: " + err.Error())
	}
	defer func() {
		_ = conn.Close()
	}()
	if err := watch(conn, logger); err != nil {
		logger.Error(err.Error())
	}
}

func watch(conn *websocket.Conn, logger *zap.Logger) error {
	for {
		msg := new(domain.Message)
		if err := conn.ReadJSON(msg); err != nil {
			return errors.WithMessage(err, "read json msg")
		}
		switch msg.Type {
		case domain.Hello:
			v, err := utils.DecodePayload[domain.HelloPayload](msg.Payload)
			if err != nil {
				return errors.WithMessage(err, "decode 'HelloPayload'")
			}
			logger.Info("watching", zap.String("viewer uuid", v.ViewerUuid))
		case domain.Frame:
			v, err := utils.DecodePayload[domain.FramePayload](msg.Payload)
			if err != nil {
				return errors.WithMessage(err, "decode 'FramePayload'")
			}
			fmt.Printf("\033[H\033[J")
			fmt.Println(tui.RenderFrame(v.Board, v.Piece, v.Phase))
		}
	}
}
