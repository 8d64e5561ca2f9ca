package cli

import (
	"context"

	"github.com/julianstephens/happyhour/internal/server"
	"github.com/julianstephens/happyhour/internal/server/handlers"
)

type ServeCmd struct {
	Addr string `help:"Listen address. Defaults to the config file's server.addr." placeholder:"HOST:PORT"`
}

func (c *ServeCmd) Run(ctx *Context) error {
	ds, err := ctx.Dataset()
	if err != nil {
		return err
	}

	addr := firstNonEmpty(c.Addr, ctx.Config.Server.Addr)
	handler := handlers.NewHappyHourHandler(ds, ctx.Store, ctx.Clock)

	ctx.printf("Serving %d happy hours on http://%s (Ctrl+C to stop)\n", ds.Len(), addr)
	return server.New(addr, handler).Start(context.Background())
}
