package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/twmj/internal/domain"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

func newTestClient(t *testing.T, handler http.Handler) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.CloseClientConnections()
		server.Close()
	})

	return Client{BaseURL: server.URL, HTTPClient: server.Client(), RequestTimeout: 5 * time.Second}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func TestExportTemplateSendsRecordAndParsesExpiry(t *testing.T) {
	expiresAt := time.Date(2026, 3, 1, 12, 3, 0, 0, time.UTC)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/templates/export", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "k1", body["uuid"])
		assert.Equal(t, "house", body["name"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"uuid":       "k1",
			"expires_at": expiresAt.Format(time.RFC3339Nano),
			"template":   map[string]any{"name": "house", "rules": map[string]any{"a": 1}, "rules_enabled": map[string]any{}},
		})
	}))

	record, err := client.ExportTemplate(context.Background(), "k1", domain.Template{
		Name:         "house",
		Rules:        map[string]any{"a": 1},
		RulesEnabled: map[string]any{},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TemplateKey("k1"), record.Key)
	assert.True(t, expiresAt.Equal(record.ExpiresAt))
	assert.Equal(t, "house", record.Template.Name)
	assert.Equal(t, float64(1), record.Template.Rules["a"])
}

func TestStatusesMapToDomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "conflict", status: http.StatusConflict, want: domain.ErrTemplateConflict},
		{name: "not found", status: http.StatusNotFound, want: domain.ErrTemplateNotFound},
		{name: "bad request", status: http.StatusBadRequest, want: domain.ErrDecode},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, want: domain.ErrValidation},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: domain.ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeDetail(w, tt.status, "nope")
			}))

			_, err := client.ImportTemplate(context.Background(), "k1")
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestImportTemplateEscapesKey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/templates/import/a%2Fb", r.URL.EscapedPath())
		writeDetail(w, http.StatusNotFound, "Template not found or expired.")
	}))

	_, err := client.ImportTemplate(context.Background(), "a/b")
	require.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestClassifyUploadsRawBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classify-hand", r.URL.Path)
		assert.Equal(t, "hand.png", r.URL.Query().Get("filename"))
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "pixels", string(data))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"filename":"hand.png","size":6,"classified_decks":[{"detections":[{"tile":"m1","confidence":0.9,"bbox":{"x1":1,"y1":2,"x2":3,"y2":4}}]}]}`)
	}))

	result, err := client.Classify(context.Background(), "hand.png", []byte("pixels"))
	require.NoError(t, err)

	assert.Equal(t, "hand.png", result.Filename)
	assert.Equal(t, 6, result.Size)
	require.Len(t, result.Decks, 1)
	assert.Equal(t, []domain.Detection{{Tile: "m1", Confidence: 0.9, BBox: domain.BBox{X1: 1, Y1: 2, X2: 3, Y2: 4}}}, result.Decks[0].Detections)
}

func TestClassifyRejectsFlatDeckArrays(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"filename":"hand.png","size":6,"classified_decks":[[{"tile":"m1"}]]}`)
	}))

	_, err := client.Classify(context.Background(), "hand.png", []byte("pixels"))
	require.Error(t, err)
}

func TestGetPointsPostsTiles(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tiles map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&tiles))
		assert.Equal(t, 3, tiles["m1"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"count":8,"logs":["ping hu"],"winning_deck_organized":{"pairs":1}}`)
	}))

	score, err := client.GetPoints(context.Background(), domain.WinnerTiles{"m1": 3})
	require.NoError(t, err)
	assert.Equal(t, 8, score.Count)
	assert.Equal(t, []string{"ping hu"}, score.Logs)
	assert.Equal(t, float64(1), score.WinningDeckOrganized["pairs"])
}

func TestEndpointValidation(t *testing.T) {
	for _, base := range []string{"", "ftp://example.com", "http://"} {
		_, err := Client{BaseURL: base}.ImportTemplate(context.Background(), "k1")
		require.Error(t, err, base)
	}

	ws, err := Client{BaseURL: "https://mj.example.com/api"}.endpoint("ws", "/start-scan/7", nil)
	require.NoError(t, err)
	assert.Equal(t, "wss://mj.example.com/api/start-scan/7", ws)
}

func TestTransportFailureIsServiceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close()

	_, err := Client{BaseURL: base}.GetPoints(context.Background(), domain.WinnerTiles{})
	require.ErrorIs(t, err, domain.ErrServiceUnavailable)
}

func scanHandler(t *testing.T) http.Handler {
	t.Helper()
	upgrader := websocket.Upgrader{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /start-scan/{client_id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("client_id") != "42" {
			writeDetail(w, http.StatusBadRequest, "client_id must be an integer")
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		for {
			messageType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			switch {
			case string(data) == "bad":
				_ = conn.WriteJSON(map[string]any{"status": "error", "message": "decode error: garbage"})
			case messageType == websocket.TextMessage:
				_ = conn.WriteJSON(map[string]any{"status": "success", "classified_decks": []map[string]any{{"detections": []map[string]any{{"tile": "east", "confidence": 0.5}}}}})
			default:
				_ = conn.WriteJSON(map[string]any{"status": "success", "classified_decks": []map[string]any{}})
			}
		}
	})
	return mux
}

func TestScanRoundTripsFrames(t *testing.T) {
	client := newTestClient(t, scanHandler(t))

	scan, err := client.OpenScan(context.Background(), 42)
	require.NoError(t, err)
	defer func() { _ = scan.Close() }()

	reply, err := scan.Send(context.Background(), domain.Frame{Encoding: domain.FrameText, Data: []byte("aW1n")})
	require.NoError(t, err)
	require.True(t, reply.OK)
	require.Len(t, reply.Decks, 1)
	assert.Equal(t, "east", reply.Decks[0].Detections[0].Tile)

	reply, err = scan.Send(context.Background(), domain.Frame{Encoding: domain.FrameBinary, Data: []byte("bad")})
	require.NoError(t, err)
	assert.False(t, reply.OK)
	assert.Nil(t, reply.Decks)
	assert.Equal(t, "decode error: garbage", reply.Message)

	reply, err = scan.Send(context.Background(), domain.Frame{Encoding: domain.FrameBinary, Data: []byte{1, 2}})
	require.NoError(t, err)
	assert.True(t, reply.OK)
	assert.Empty(t, reply.Decks)

	require.NoError(t, scan.Close())
	require.NoError(t, scan.Close())
}

func TestOpenScanRejectedBeforeUpgrade(t *testing.T) {
	client := newTestClient(t, scanHandler(t))

	_, err := client.OpenScan(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrDecode)
	assert.Contains(t, err.Error(), "client_id must be an integer")
}

func TestScanSendHonoursCancellation(t *testing.T) {
	upgrader := websocket.Upgrader{}
	release := make(chan struct{})
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()
		_, _, _ = conn.ReadMessage()
		<-release
	}))
	defer close(release)

	scan, err := client.OpenScan(context.Background(), 42)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = scan.Send(ctx, domain.Frame{Encoding: domain.FrameBinary, Data: []byte{1}})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
