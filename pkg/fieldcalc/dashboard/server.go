// Package dashboard serves a live view of calculation results over HTTP and
// WebSocket. The server implements fieldcalc.EventSink, so wiring it into an
// engine is a single SetEventSink call.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
)

// ResultUpdate is one completed invocation as published to clients. Numeric
// sentinel values (NaN) are encoded as null, since JSON has no NaN literal.
type ResultUpdate struct {
	Timestamp   time.Time      `json:"timestamp"`
	Calculation string         `json:"calculation"`
	Args        map[string]any `json:"args"`
	Results     map[string]any `json:"results"`
}

type Server struct {
	port     int
	server   *http.Server
	logger   zerolog.Logger
	upgrader websocket.Upgrader

	// Each connection carries its own write lock: gorilla/websocket supports
	// at most one concurrent writer per connection, and the broadcast
	// goroutine races with the per-connection ping loop.
	clients      map[*websocket.Conn]*sync.Mutex
	clientsMutex sync.RWMutex
	maxClients   int

	updates chan ResultUpdate
	stop    chan struct{}

	history        []ResultUpdate
	maxHistorySize int
	mutex          sync.RWMutex

	listCalculations func() []string
}

func NewServer(port int) *Server {
	return &Server{
		port:   port,
		logger: zerolog.Nop(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				return origin == fmt.Sprintf("http://localhost:%d", port) ||
					origin == fmt.Sprintf("http://127.0.0.1:%d", port)
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients:        make(map[*websocket.Conn]*sync.Mutex),
		maxClients:     100,
		updates:        make(chan ResultUpdate, 100),
		stop:           make(chan struct{}),
		history:        make([]ResultUpdate, 0, 1000),
		maxHistorySize: 1000,
	}
}

// SetLogger installs a structured logger for connection and broadcast events.
func (s *Server) SetLogger(logger zerolog.Logger) {
	s.logger = logger
}

// SetCalculationLister installs the provider behind /api/calculations,
// typically Engine.Calculations.
func (s *Server) SetCalculationLister(list func() []string) {
	s.listCalculations = list
}

// CalculationCompleted implements fieldcalc.EventSink. Updates are dropped
// rather than blocking the calculating goroutine when the queue is full.
func (s *Server) CalculationCompleted(name string, args fieldcalc.Args, results fieldcalc.Results) {
	update := ResultUpdate{
		Timestamp:   time.Now(),
		Calculation: name,
		Args:        sanitize(args),
		Results:     sanitize(results),
	}
	select {
	case s.updates <- update:
	default:
	}
}

// sanitize copies a result mapping with NaN replaced by nil so the payload
// survives JSON encoding.
func sanitize(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if f, ok := v.(float64); ok && math.IsNaN(f) {
			out[k] = nil
			continue
		}
		out[k] = v
	}
	return out
}

func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/results", s.handleResults)
	mux.HandleFunc("/api/calculations", s.handleCalculations)
	mux.HandleFunc("/ws", s.handleWebSocket)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: mux,
	}

	go s.broadcast()

	s.logger.Info().Int("port", s.port).Msg("starting dashboard")
	return s.server.ListenAndServe()
}

func (s *Server) Stop() error {
	close(s.stop)
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Fieldcalc Dashboard</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
        .header { background: #2c3e50; color: white; padding: 20px; border-radius: 5px; margin-bottom: 20px; }
        .card { background: white; padding: 20px; border-radius: 5px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .result { padding: 10px; margin: 5px 0; border-left: 4px solid #3498db; background: #ecf0f1; }
        .result.sentinel { border-left-color: #e74c3c; }
        .timestamp { font-size: 0.8em; color: #7f8c8d; }
        pre { margin: 5px 0; white-space: pre-wrap; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Fieldcalc Dashboard</h1>
        <p>Live engineering calculation results</p>
    </div>
    <div class="card">
        <h3>Recent Results</h3>
        <div id="results"></div>
    </div>
    <script>
        const container = document.getElementById('results');

        function render(update) {
            const div = document.createElement('div');
            const sentinel = Object.values(update.results).some(v => v === null);
            div.className = sentinel ? 'result sentinel' : 'result';
            div.innerHTML = '<div class="timestamp">' + update.timestamp + ' &mdash; ' +
                update.calculation + '</div><pre>' +
                JSON.stringify(update.results, null, 1) + '</pre>';
            container.prepend(div);
            while (container.children.length > 50) {
                container.removeChild(container.lastChild);
            }
        }

        fetch('/api/results').then(r => r.json()).then(body => {
            (body.data || []).forEach(render);
        });

        const ws = new WebSocket('ws://' + location.host + '/ws');
        ws.onmessage = msg => {
            const parsed = JSON.parse(msg.data);
            if (parsed.type === 'result') {
                render(parsed.data);
            }
        };
    </script>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	s.mutex.RLock()
	results := make([]ResultUpdate, len(s.history))
	copy(results, s.history)
	s.mutex.RUnlock()

	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"data":   results,
	})
}

func (s *Server) handleCalculations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	names := []string{}
	if s.listCalculations != nil {
		names = s.listCalculations()
	}

	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"data":   names,
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.clientsMutex.RLock()
	clientCount := len(s.clients)
	s.clientsMutex.RUnlock()

	if clientCount >= s.maxClients {
		http.Error(w, "Maximum clients reached", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	writeLock := &sync.Mutex{}
	s.clientsMutex.Lock()
	s.clients[conn] = writeLock
	s.clientsMutex.Unlock()

	defer func() {
		s.clientsMutex.Lock()
		delete(s.clients, conn)
		s.clientsMutex.Unlock()
	}()

	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// Drain reads to detect client disconnections.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					s.logger.Debug().Err(err).Msg("websocket read error")
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := writeConn(conn, writeLock, websocket.PingMessage, nil); err != nil {
				return
			}
		case <-readDone:
			return
		case <-s.stop:
			writeConn(conn, writeLock, websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// writeConn serializes writes on a connection so the ping loop and the
// broadcast goroutine never write concurrently.
func writeConn(conn *websocket.Conn, lock *sync.Mutex, messageType int, data []byte) error {
	lock.Lock()
	defer lock.Unlock()
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteMessage(messageType, data)
}

func (s *Server) broadcast() {
	for {
		select {
		case update := <-s.updates:
			s.mutex.Lock()
			s.history = append(s.history, update)
			if len(s.history) > s.maxHistorySize {
				copy(s.history, s.history[1:])
				s.history = s.history[:s.maxHistorySize]
			}
			s.mutex.Unlock()

			s.broadcastMessage(map[string]any{
				"type": "result",
				"data": update,
			})
		case <-s.stop:
			return
		}
	}
}

func (s *Server) broadcastMessage(message any) {
	s.clientsMutex.RLock()
	if len(s.clients) == 0 {
		s.clientsMutex.RUnlock()
		return
	}
	type lockedConn struct {
		conn *websocket.Conn
		lock *sync.Mutex
	}
	clientsCopy := make([]lockedConn, 0, len(s.clients))
	for client, lock := range s.clients {
		clientsCopy = append(clientsCopy, lockedConn{client, lock})
	}
	s.clientsMutex.RUnlock()

	data, err := json.Marshal(message)
	if err != nil {
		s.logger.Error().Err(err).Msg("marshaling broadcast message")
		return
	}

	var failed []*websocket.Conn
	for _, client := range clientsCopy {
		if err := writeConn(client.conn, client.lock, websocket.TextMessage, data); err != nil {
			client.conn.Close()
			failed = append(failed, client.conn)
		}
	}

	if len(failed) > 0 {
		s.clientsMutex.Lock()
		for _, client := range failed {
			delete(s.clients, client)
		}
		s.clientsMutex.Unlock()
	}
}
