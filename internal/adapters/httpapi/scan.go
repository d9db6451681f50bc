package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/bnema/twmj/internal/application"
	"github.com/bnema/twmj/internal/domain"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const closeWriteTimeout = time.Second

func (h *Handler) handleStartScan(w http.ResponseWriter, r *http.Request) {
	rawID := r.PathValue("client_id")
	clientID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: client_id must be an integer, got %q", errBadRequest, rawID))
		return
	}

	// Counted before the handshake so Wait cannot return while an upgrade is
	// still in flight.
	h.sessions.Add(1)
	defer h.sessions.Done()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("scan upgrade failed", zap.Int64("client_id", clientID), zap.Error(err))
		return
	}

	h.serveScan(r.Context(), conn, h.scans.NewSession(clientID))
}

// serveScan runs one scan connection. A reader goroutine hands frames to this
// goroutine one at a time so replies go out in receipt order. When the
// connection fails or ctx ends, any frame still being classified is cancelled.
func (h *Handler) serveScan(parent context.Context, conn *websocket.Conn, session *application.ScanSession) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	defer session.Close()
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(h.maxBodyBytes)
	logger := h.logger.With(zap.String("session", session.ID()), zap.Int64("client_id", session.ClientID()))

	frames := make(chan domain.Frame)
	readerDone := make(chan error, 1)
	go func() {
		defer close(frames)
		readerDone <- readFrames(ctx, conn, frames)
		cancel()
	}()

	stopOnShutdown := context.AfterFunc(parent, func() {
		deadline := time.Now().Add(closeWriteTimeout)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"), deadline)
		_ = conn.Close()
	})
	defer stopOnShutdown()

	for frame := range frames {
		result, err := session.HandleFrame(ctx, frame)
		if err != nil {
			logger.Debug("scan session ended while handling frame", zap.Error(err))
			break
		}
		if err := conn.WriteJSON(toScanResponse(result)); err != nil {
			logger.Debug("scan reply failed", zap.Error(err))
			break
		}
	}

	cancel()
	_ = conn.Close()
	for range frames {
	}

	if err := <-readerDone; err != nil && !isExpectedClose(err) {
		logger.Info("scan connection failed", zap.Error(err))
	}
}

func readFrames(ctx context.Context, conn *websocket.Conn, frames chan<- domain.Frame) error {
	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var encoding domain.FrameEncoding
		switch messageType {
		case websocket.TextMessage:
			encoding = domain.FrameText
		case websocket.BinaryMessage:
			encoding = domain.FrameBinary
		default:
			continue
		}

		select {
		case frames <- domain.Frame{Encoding: encoding, Data: data}:
		case <-ctx.Done():
			return nil
		}
	}
}

func isExpectedClose(err error) bool {
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
		return true
	}
	return errors.Is(err, net.ErrClosed)
}
