package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"CHAT_SERVER_ADDR,default=localhost:8080"`
	Token         string `env:"CHAT_TOKEN,required=true"`
	ReceiverID    string `env:"CHAT_RECEIVER_ID,required=true"`
	JobID         string `env:"CHAT_JOB_ID"`
	LogLevel      string `env:"LOG_LEVEL,default=info"`
}

type outgoing struct {
	Type       string  `json:"type"`
	ReceiverID string  `json:"receiverId"`
	Message    string  `json:"message"`
	JobID      *string `json:"jobId,omitempty"`
}

type incoming struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v", err)
	}
	os.Exit(code)
}

// run handles the WebSocket client lifecycle, configuration loading, and the
// interactive send/receive loops.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Connect to the messaging gateway.
	endpoint := url.URL{
		Scheme:   "ws",
		Host:     config.ServerAddress,
		Path:     "/ws",
		RawQuery: url.Values{"token": {config.Token}}.Encode(),
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint.String(), nil)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	header := fmt.Sprintf(">>> Connected to %s! Chatting with %s (Ctrl+C to quit)...",
		config.ServerAddress, config.ReceiverID)
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(header))

	var jobID *string
	if config.JobID != "" {
		jobID = &config.JobID
	}

	// 4. Reception loop in the background; display each event colorized.
	done := make(chan error, 1)
	go func() {
		for {
			var event incoming
			if err := conn.ReadJSON(&event); err != nil {
				done <- err
				return
			}
			display(event)
		}
	}()

	// 5. Send loop: each stdin line becomes one message.
	lines := readLines(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		case err := <-done:
			if ctx.Err() != nil {
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("connection error: %w", err)
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			err := conn.WriteJSON(outgoing{
				Type:       "send_message",
				ReceiverID: config.ReceiverID,
				Message:    line,
				JobID:      jobID,
			})
			if err != nil {
				return exitRuntime, fmt.Errorf("send failed: %w", err)
			}
		}
	}
}

// readLines forwards stdin lines on a channel so the send loop can also
// watch the context and the connection.
func readLines(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func display(event incoming) {
	switch event.Type {
	case "receive_message":
		var message struct {
			SenderID  string    `json:"senderId"`
			Message   string    `json:"message"`
			CreatedAt time.Time `json:"createdAt"`
		}
		if err := json.Unmarshal(event.Payload, &message); err != nil {
			return
		}
		fmt.Println(color.New(color.FgCyan).Render(fmt.Sprintf("[%s] %s: %s",
			message.CreatedAt.Format(time.TimeOnly), message.SenderID, message.Message)))
	case "message_sent":
		fmt.Println(color.New(color.FgGreen).Render("✓ delivered"))
	case "user_typing":
		var typing struct {
			UserID   string `json:"userId"`
			IsTyping bool   `json:"isTyping"`
		}
		if err := json.Unmarshal(event.Payload, &typing); err != nil {
			return
		}
		if typing.IsTyping {
			fmt.Println(color.New(color.FgDarkGray).Render(typing.UserID + " is typing..."))
		}
	case "error":
		var failure struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(event.Payload, &failure)
		fmt.Println(color.New(color.FgRed).Render("✗ " + failure.Message))
	}
}
