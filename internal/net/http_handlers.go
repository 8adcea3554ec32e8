package net

import (
	"encoding/json"
	"log"
	nethttp "net/http"
	"time"

	"github.com/gorilla/websocket"

	server "starbelt/server"
)

// HTTPHandlerConfig tunes the transport layer.
type HTTPHandlerConfig struct {
	Logger *log.Logger
}

type clientMessage struct {
	Type       string `json:"type"`
	Ship       string `json:"ship"`
	Ore        string `json:"ore"`
	Quantity   int    `json:"qty"`
	Crew       string `json:"crew"`
	Role       string `json:"role"`
	Equipment  string `json:"equipment"`
	Powered    bool   `json:"powered"`
	ClientTime int64  `json:"clientTime"`
}

type heartbeatMessage struct {
	Type       string `json:"type"`
	ServerTime int64  `json:"serverTime"`
	ClientTime int64  `json:"clientTime"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *nethttp.Request) bool { return true },
}

// NewHTTPHandler builds the HTTP mux: health, diagnostics, and the
// websocket session endpoint.
func NewHTTPHandler(hub *server.Hub, cfg HTTPHandlerConfig) nethttp.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	mux := nethttp.NewServeMux()

	mux.HandleFunc("/health", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/diagnostics", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		payload := struct {
			Status     string `json:"status"`
			Tick       uint64 `json:"tick"`
			ServerTime int64  `json:"serverTime"`
		}{
			Status:     "ok",
			Tick:       hub.Tick(),
			ServerTime: time.Now().UnixMilli(),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Printf("failed to write diagnostics: %v", err)
		}
	})

	mux.HandleFunc("/ws", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Printf("websocket upgrade failed: %v", err)
			return
		}
		serveSession(hub, conn, logger)
	})

	return mux
}

// serveSession pumps client commands into the hub until the connection
// drops.
func serveSession(hub *server.Hub, conn *websocket.Conn, logger *log.Logger) {
	sub, snapshot := hub.Subscribe(conn)
	defer hub.Unsubscribe(sub.ID())

	// The broadcast loop shares this connection, so all writes go through
	// the subscriber handle.
	if data, err := json.Marshal(snapshot); err == nil {
		if err := sub.Send(data); err != nil {
			logger.Printf("session %s failed initial snapshot: %v", sub.ID(), err)
			return
		}
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			logger.Printf("session %s closed: %v", sub.ID(), err)
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Printf("session %s sent malformed message: %v", sub.ID(), err)
			return
		}
		if msg.Type == "heartbeat" {
			reply := heartbeatMessage{
				Type:       "heartbeat",
				ServerTime: time.Now().UnixMilli(),
				ClientTime: msg.ClientTime,
			}
			if data, err := json.Marshal(reply); err == nil {
				if err := sub.Send(data); err != nil {
					logger.Printf("session %s failed heartbeat reply: %v", sub.ID(), err)
					return
				}
			}
			continue
		}
		if cmd, ok := commandFrom(msg); ok {
			hub.Enqueue(cmd)
		} else {
			logger.Printf("session %s sent unknown command type %q", sub.ID(), msg.Type)
		}
	}
}

func commandFrom(msg clientMessage) (server.Command, bool) {
	cmd := server.Command{
		ShipID:      msg.Ship,
		Ore:         msg.Ore,
		Quantity:    msg.Quantity,
		CrewID:      msg.Crew,
		Role:        msg.Role,
		EquipmentID: msg.Equipment,
		Powered:     msg.Powered,
	}
	switch server.CommandType(msg.Type) {
	case server.CommandSell, server.CommandSellAll, server.CommandSelectOre,
		server.CommandAssignRole, server.CommandSetPower:
		cmd.Type = server.CommandType(msg.Type)
		return cmd, true
	}
	return server.Command{}, false
}
