package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/openmirror/mirrorlist/config"
	"github.com/openmirror/mirrorlist/service"
)

type Handlers struct {
	service service.REST

	// testAddr overrides the client address on every request when set.
	testAddr string
}

func New(cfg *config.Config, service service.REST) *Handlers {
	return &Handlers{
		service:  service,
		testAddr: cfg.Geo.TestAddr,
	}
}

// clientAddr resolves the address the selection runs against. A
// configured test address wins, then an explicit ip query parameter,
// then the transport level client ip.
func (h *Handlers) clientAddr(ctx *gin.Context) string {
	if h.testAddr != "" {
		return h.testAddr
	}

	if ip := ctx.Query("ip"); ip != "" {
		return ip
	}

	return ctx.ClientIP()
}
