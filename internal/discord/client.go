package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds each IPC exchange when the context has no deadline.
const DefaultTimeout = 5 * time.Second

// ErrClosed is returned when using a client after Close.
var ErrClosed = errors.New("discord: connection closed")

// Error is an error reported by the Discord client.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("discord error %d: %s", e.Code, e.Message)
}

// DialFunc opens the raw IPC connection.
type DialFunc func(ctx context.Context) (net.Conn, error)

// Client is a Rich Presence session over Discord's local IPC socket.
type Client struct {
	clientID string
	dial     DialFunc
	pid      int

	mu   sync.Mutex
	conn net.Conn
}

// NewClient creates a client for the given application ID. It does not
// connect until Connect is called.
func NewClient(clientID string) *Client {
	return &Client{
		clientID: clientID,
		dial:     Dial,
		pid:      os.Getpid(),
	}
}

// SetDialer overrides how the IPC socket is opened.
func (c *Client) SetDialer(dial DialFunc) {
	c.dial = dial
}

type handshake struct {
	Version  int    `json:"v"`
	ClientID string `json:"client_id"`
}

type command struct {
	Cmd   string      `json:"cmd"`
	Args  interface{} `json:"args"`
	Nonce string      `json:"nonce"`
}

type activityArgs struct {
	PID      int       `json:"pid"`
	Activity *Activity `json:"activity"`
}

type response struct {
	Cmd   string          `json:"cmd"`
	Evt   string          `json:"evt"`
	Nonce string          `json:"nonce"`
	Data  json.RawMessage `json:"data"`
}

// Connect opens the socket and performs the handshake, waiting for READY.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}
	stop := bindDeadline(ctx, conn)
	defer stop()

	if err := writeFrame(conn, OpHandshake, handshake{Version: 1, ClientID: c.clientID}); err != nil {
		_ = conn.Close()
		return err
	}

	op, payload, err := readFrame(conn)
	if err != nil {
		_ = conn.Close()
		return err
	}
	if op == OpClose {
		_ = conn.Close()
		return closeError(payload)
	}

	var ready response
	if err := json.Unmarshal(payload, &ready); err != nil {
		_ = conn.Close()
		return fmt.Errorf("invalid handshake response: %w", err)
	}
	if ready.Evt != "READY" {
		_ = conn.Close()
		if ready.Evt == "ERROR" {
			return dataError(ready.Data)
		}
		return fmt.Errorf("unexpected handshake event: %q", ready.Evt)
	}

	c.conn = conn
	return nil
}

// SetActivity replaces the displayed activity. A nil activity clears it.
func (c *Client) SetActivity(ctx context.Context, activity *Activity) error {
	return c.send(ctx, "SET_ACTIVITY", activityArgs{PID: c.pid, Activity: activity})
}

// ClearActivity removes the displayed activity.
func (c *Client) ClearActivity(ctx context.Context) error {
	return c.SetActivity(ctx, nil)
}

// Close closes the connection. It is safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	// The deadline left by the last exchange has usually expired by now.
	_ = c.conn.SetWriteDeadline(time.Now().Add(DefaultTimeout))
	if err := writeFrame(c.conn, OpClose, struct{}{}); err != nil {
		slog.Debug("Failed to send Discord close frame", "error", err)
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// send writes a command frame and waits for the response with the same
// nonce, answering pings along the way.
func (c *Client) send(ctx context.Context, cmd string, args interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrClosed
	}
	stop := bindDeadline(ctx, c.conn)
	defer stop()

	nonce := uuid.NewString()
	if err := writeFrame(c.conn, OpFrame, command{Cmd: cmd, Args: args, Nonce: nonce}); err != nil {
		return err
	}

	for {
		op, payload, err := readFrame(c.conn)
		if err != nil {
			return err
		}

		switch op {
		case OpPing:
			if len(payload) == 0 {
				payload = []byte("{}")
			}
			if err := writeFrame(c.conn, OpPong, json.RawMessage(payload)); err != nil {
				return err
			}
			continue
		case OpClose:
			_ = c.conn.Close()
			c.conn = nil
			return closeError(payload)
		case OpFrame:
		default:
			continue
		}

		var resp response
		if err := json.Unmarshal(payload, &resp); err != nil {
			return fmt.Errorf("invalid response: %w", err)
		}
		if resp.Nonce != nonce {
			continue
		}
		if resp.Evt == "ERROR" {
			return dataError(resp.Data)
		}
		return nil
	}
}

// bindDeadline applies the context deadline (or DefaultTimeout) to conn and
// unblocks pending I/O if ctx is cancelled first.
func bindDeadline(ctx context.Context, conn net.Conn) (stop func() bool) {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(DefaultTimeout)
	}
	_ = conn.SetDeadline(deadline)
	return context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
}

func closeError(payload []byte) error {
	e := &Error{}
	if err := json.Unmarshal(payload, e); err != nil || e.Message == "" {
		return fmt.Errorf("%w by discord", ErrClosed)
	}
	return e
}

func dataError(data json.RawMessage) error {
	e := &Error{}
	if err := json.Unmarshal(data, e); err != nil {
		return fmt.Errorf("discord returned an unreadable error: %s", string(data))
	}
	return e
}
