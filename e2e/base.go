package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"jobtalk/auth"
	"jobtalk/domain"
	"jobtalk/gate"
	"jobtalk/gateway"
	"jobtalk/repositories"
	"jobtalk/runtime"
	"jobtalk/services"
)

const testSecret = "e2e-secret"

// BaseSuite boots the whole messaging stack in-process: badger on a temp
// dir, the real service wiring and a live HTTP server. Scenarios talk to it
// exactly the way production clients do, over HTTP and WebSocket.
type BaseSuite struct {
	suite.Suite
	Config Config

	db        *badger.DB
	Directory *repositories.Directory
	server    *httptest.Server
}

func (s *BaseSuite) SetupSuite() {
	cfg, err := LoadConfig()
	s.Require().NoError(err)
	s.Config = cfg

	gin.SetMode(gin.TestMode)

	s.db, err = badger.Open(badger.DefaultOptions(s.T().TempDir()).
		WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)

	log := slog.Default()
	s.Directory = repositories.NewDirectory(s.db)
	messages := repositories.NewMessageRepository(s.db, log)
	chatService := services.NewChatService(log, messages,
		s.Directory, s.Directory, s.Directory, gate.New(messages, s.Directory))
	identity := auth.NewTokenProvider([]byte(testSecret), s.Directory)
	registry := runtime.NewRegistry()
	wsGateway := gateway.NewGateway(log, identity, chatService, registry, cfg.ConnectionBufferSize)

	s.server = httptest.NewServer(gateway.NewRouter(log, identity, chatService, wsGateway))
	s.logStep("Test server started at " + s.server.URL)
}

func (s *BaseSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.db != nil {
		s.Require().NoError(s.db.Close())
	}
}

func (s *BaseSuite) logStep(step string) {
	if s.Config.Colours {
		step = color.New(color.BgBlack, color.FgGreen).Render(step)
	}
	s.T().Log(step)
}

// Token issues a credential for a seeded user.
func (s *BaseSuite) Token(userID string, role domain.Role) string {
	token, err := auth.GenerateToken([]byte(testSecret), userID, role, time.Hour)
	s.Require().NoError(err)
	return token
}

// Dial opens an authenticated WebSocket connection; the caller must close it.
func (s *BaseSuite) Dial(token string) *websocket.Conn {
	endpoint := strings.Replace(s.server.URL, "http://", "ws://", 1) + "/ws?token=" + token
	conn, resp, err := websocket.DefaultDialer.Dial(endpoint, nil)
	s.Require().NoError(err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	return conn
}

// Envelope mirrors the server's wire format for scenario assertions.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ReadEvent reads the next server event, failing the suite on timeout.
func (s *BaseSuite) ReadEvent(conn *websocket.Conn) Envelope {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))
	var envelope Envelope
	s.Require().NoError(conn.ReadJSON(&envelope))
	if s.Config.DebugJSON {
		s.T().Logf("<- %s %s", envelope.Type, string(envelope.Payload))
	}
	return envelope
}

// Send writes a send_message intent on the connection.
func (s *BaseSuite) Send(conn *websocket.Conn, receiverID, body string, jobID *string) {
	payload := map[string]any{
		"type":       "send_message",
		"receiverId": receiverID,
		"message":    body,
	}
	if jobID != nil {
		payload["jobId"] = *jobID
	}
	s.Require().NoError(conn.WriteJSON(payload))
}

// GetJSON performs an authenticated GET and decodes the response body.
func (s *BaseSuite) GetJSON(path, token string, out any) int {
	request, err := http.NewRequest(http.MethodGet, s.server.URL+path, nil)
	s.Require().NoError(err)
	request.Header.Set("Authorization", "Bearer "+token)

	response, err := s.server.Client().Do(request)
	s.Require().NoError(err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	s.Require().NoError(err)
	if s.Config.DebugJSON {
		s.T().Logf("GET %s -> %d %s", path, response.StatusCode, string(body))
	}
	if out != nil {
		s.Require().NoError(json.Unmarshal(body, out),
			fmt.Sprintf("unexpected body: %s", string(body)))
	}
	return response.StatusCode
}
