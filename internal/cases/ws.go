package cases

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tlogic-co/pqrs-service/internal/pqrs"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Same-host browser clients only; the HTTP CORS policy already
	// gates the rest of the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is a generation request sent by the dashboard client.
type wsRequest struct {
	Type     string `json:"type"` // "generate"
	Category string `json:"category"`
	Contract string `json:"contract"`
	Session  string `json:"session_id"`
}

// wsEvent is a staged progress event pushed back to the client.
// Stage is "record" once the customer record is synthesized, "reply"
// once the draft is ready, and "error" on failure.
type wsEvent struct {
	Stage  string          `json:"stage"`
	Error  string          `json:"error,omitempty"`
	Record any             `json:"record,omitempty"`
	Reply  *pqrs.CaseReply `json:"reply,omitempty"`
}

// handleGenerateSocket serves the websocket generation channel. Each
// connection processes requests sequentially and pushes staged events
// so the client can show the record while the reply is still drafting.
func (a *API) handleGenerateSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				a.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
		if req.Type != "generate" {
			a.sendEvent(conn, wsEvent{Stage: "error", Error: "unknown request type"})
			continue
		}
		a.generateOverSocket(r, conn, req)
	}
}

func (a *API) generateOverSocket(r *http.Request, conn *websocket.Conn, req wsRequest) {
	cat, err := pqrs.ParseCategory(req.Category)
	if err != nil {
		a.sendEvent(conn, wsEvent{Stage: "error", Error: err.Error()})
		return
	}

	rec, err := a.generator.Lookup(req.Contract)
	if err != nil {
		a.sendEvent(conn, wsEvent{Stage: "error", Error: err.Error()})
		return
	}
	a.sendEvent(conn, wsEvent{Stage: "record", Record: rec})

	reply, err := a.generator.Generate(r.Context(), cat, req.Contract)
	if err != nil {
		a.sendEvent(conn, wsEvent{Stage: "error", Error: err.Error()})
		return
	}
	if err := a.store.Add(req.Session, reply); err != nil {
		a.sendEvent(conn, wsEvent{Stage: "error", Error: err.Error()})
		return
	}

	a.logger.Info("case generated over websocket",
		zap.String("case_id", reply.CaseID),
		zap.String("category", string(reply.Category)))
	a.sendEvent(conn, wsEvent{Stage: "reply", Reply: reply})
}

func (a *API) sendEvent(conn *websocket.Conn, ev wsEvent) {
	if err := conn.WriteJSON(ev); err != nil {
		a.logger.Warn("websocket write failed", zap.Error(err))
	}
}
