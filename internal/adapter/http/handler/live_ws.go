package handler

import (
	"net/http"

	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/metrics"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/uuid"
	ws "github.com/Bekzhan-O/tutor-dashboard/pkg/wsHub"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard frontend may be served from a different origin
	// during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Live pushes dataset refresh events to connected dashboard clients.
type Live struct {
	hub         *ws.ConnectionHub
	serviceName string
	l           logger.Logger
}

func NewLive(hub *ws.ConnectionHub, serviceName string, l logger.Logger) *Live {
	return &Live{
		hub:         hub,
		serviceName: serviceName,
		l:           l,
	}
}

// HandleWS godoc
// @Summary      Live updates
// @Description  WebSocket endpoint pushing a message whenever the dataset changes
// @Tags         Live
// @Router       /ws/live [get]
func (h *Live) HandleWS(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "ws_live_connect")

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to upgrade connection", err)
		return
	}

	id := uuid.MustNew()
	conn := ws.NewConn(r.Context(), id, wsConn)

	if err := h.hub.Add(conn); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to register connection", err)
		_ = wsConn.Close()
		return
	}

	metrics.WebSocketConnectionsGauge.WithLabelValues(h.serviceName).Inc()
	h.l.Info(ctx, "dashboard client connected", "conn_id", id)

	// Block until the peer goes away. Inbound frames carry nothing the
	// server acts on.
	err = conn.Listen(nil)

	metrics.WebSocketConnectionsGauge.WithLabelValues(h.serviceName).Dec()
	h.l.Info(ctx, "dashboard client disconnected", "conn_id", id, "reason", err)

	_ = h.hub.Delete(id)
}
