package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/bnema/twmj/internal/domain"
	"github.com/gorilla/websocket"
)

const closeGracePeriod = time.Second

type scanResponse struct {
	Status          string          `json:"status"`
	ClassifiedDecks *[]deckResponse `json:"classified_decks"`
	Message         string          `json:"message"`
}

// ScanReply is the server's answer to one frame. Decks is nil when the frame
// was rejected; Message then says why.
type ScanReply struct {
	OK      bool
	Decks   []domain.ClassifiedDeck
	Message string
}

// ScanConn is one open streaming session. Send is not safe for concurrent use.
type ScanConn struct {
	conn      *websocket.Conn
	closeOnce sync.Once
	closeErr  error
}

func (c Client) OpenScan(ctx context.Context, clientID int64) (*ScanConn, error) {
	endpoint, err := c.endpoint("ws", "/start-scan/"+strconv.FormatInt(clientID, 10), nil)
	if err != nil {
		return nil, err
	}

	dialCtx, cancel := c.requestContext(ctx)
	defer cancel()
	conn, resp, err := websocket.DefaultDialer.DialContext(dialCtx, endpoint, nil)
	if err != nil {
		if resp != nil {
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode != http.StatusSwitchingProtocols {
				return nil, statusError("/start-scan", resp)
			}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: open scan: %v", domain.ErrServiceUnavailable, err)
	}

	return &ScanConn{conn: conn}, nil
}

// Send writes one frame and waits for its reply. A cancelled ctx closes the
// connection, since the server answers frames strictly in order.
func (s *ScanConn) Send(ctx context.Context, frame domain.Frame) (ScanReply, error) {
	stop := context.AfterFunc(ctx, func() { _ = s.Close() })
	defer stop()

	messageType := websocket.BinaryMessage
	if frame.Encoding == domain.FrameText {
		messageType = websocket.TextMessage
	}
	if err := s.conn.WriteMessage(messageType, frame.Data); err != nil {
		return ScanReply{}, s.ioError(ctx, "send frame", err)
	}

	var response scanResponse
	if err := s.conn.ReadJSON(&response); err != nil {
		return ScanReply{}, s.ioError(ctx, "read reply", err)
	}

	if response.Status != "success" {
		return ScanReply{Message: response.Message}, nil
	}
	reply := ScanReply{OK: true, Decks: []domain.ClassifiedDeck{}}
	if response.ClassifiedDecks != nil {
		reply.Decks = toDecks(*response.ClassifiedDecks)
	}
	return reply, nil
}

// Close ends the session with a normal closure. It is safe to call more than
// once.
func (s *ScanConn) Close() error {
	s.closeOnce.Do(func() {
		message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = s.conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(closeGracePeriod))
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

func (s *ScanConn) ioError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if websocket.IsCloseError(err, websocket.CloseGoingAway) {
		return fmt.Errorf("%w: server is shutting down", domain.ErrScanSessionClosed)
	}
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return fmt.Errorf("%w: %s", domain.ErrScanSessionClosed, closeErr.Text)
	}
	return fmt.Errorf("%s: %w", op, err)
}
