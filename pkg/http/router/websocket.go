package router

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/gobwas/ws"
	http_server "github.com/lintang-b-s/skiproute/pkg/http/server"
	"go.uber.org/zap"
)

// serveWebsocket runs the visualizer endpoint: every connection submits
// a case and receives one JSON frame per solver step, then the final
// result. One goroutine per connection; the step observer never mutates
// solver state.
func (api *API) serveWebsocket(ctx context.Context, config http_server.Config) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", config.WebsocketPort))
	if err != nil {
		return err
	}
	api.log.Info(fmt.Sprintf("visualizer websocket API run on port %d", config.WebsocketPort))

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			api.log.Warn("websocket accept error", zap.Error(err))
			continue
		}

		go func(conn net.Conn) {
			if _, err := ws.Upgrade(conn); err != nil {
				api.log.Warn("websocket upgrade error", zap.Error(err))
				conn.Close()
				return
			}
			user := api.hub.Register(conn)
			defer api.hub.Remove(user)
			for {
				if err := user.SolveStream(); err != nil {
					return
				}
			}
		}(conn)
	}
}
