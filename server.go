package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/teepbee/go-rak811/at"
	"github.com/teepbee/go-rak811/rak811"
)

// Server handles incoming HTTP requests for interacting with the
// configured LoRa module instance
type Server struct {
	logger *slog.Logger
	device *rak811.Device
	mux    *http.ServeMux

	// The driver does not serialize callers; the module handles one
	// command at a time, so concurrent requests take turns here.
	mu sync.Mutex
}

// NewServer creates a Server exposing the given device over HTTP.
func NewServer(logger *slog.Logger, device *rak811.Device) *Server {
	s := &Server{
		logger: logger,
		device: device,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /send", s.handleSend)
	s.mux.HandleFunc("GET /status", s.handleStatus)
	s.mux.HandleFunc("GET /events", s.handleEvents)
	return s
}

// ServeHTTP implements the http.Handler interface for the Server struct
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) sendError(w http.ResponseWriter, message string, statusCode int) {
	if message == "" {
		w.WriteHeader(statusCode)
		return
	}

	type ErrorResponse struct {
		Message string `json:"message"`
	}
	resp := ErrorResponse{Message: message}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)

}

// handleSend processes incoming HTTP POST requests to transmit an uplink
func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	type SendRequest struct {
		Port    int    `json:"port"`
		Payload string `json:"payload"`
	}

	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Port == 0 {
		req.Port = 1
	}
	if req.Payload == "" {
		s.sendError(w, "'payload' field is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err := s.device.SendLoRa(r.Context(), req.Port, []byte(req.Payload))
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("Failed to send uplink", "error", err, "port", req.Port)
		s.sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.logger.Info("Uplink sent", "port", req.Port, "payload_length", len(req.Payload))
	w.WriteHeader(http.StatusOK)
}

// handleStatus returns the module's LoRa status report
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	lines, err := s.device.Status(r.Context())
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("Failed to query status", "error", err)
		s.sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type StatusResponse struct {
		Status []string `json:"status"`
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StatusResponse{Status: lines})
}

// eventDrainWindow bounds the wait for buffered events so a poll with an
// empty queue returns promptly instead of holding the request open.
const eventDrainWindow = time.Second

// handleEvents drains buffered module events. Downlinks carry their payload
// hex encoded; fault statuses are reported per event rather than failing the
// whole request, since a single burst can mix both.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), eventDrainWindow)
	defer cancel()

	s.mu.Lock()
	events, err := s.device.Events(ctx)
	s.mu.Unlock()
	if err != nil && !errors.Is(err, rak811.ErrTimeout) {
		s.logger.Error("Failed to read events", "error", err)
		s.sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type EventResponse struct {
		Status int    `json:"status"`
		Port   int    `json:"port"`
		RSSI   int    `json:"rssi"`
		SNR    int    `json:"snr"`
		Data   string `json:"data,omitempty"`
		Error  string `json:"error,omitempty"`
	}

	resp := make([]EventResponse, 0, len(events))
	for _, ev := range events {
		item := EventResponse{
			Status: int(ev.Status),
			Port:   ev.Port,
			RSSI:   ev.RSSI,
			SNR:    ev.SNR,
			Data:   hex.EncodeToString(ev.Data),
		}
		switch ev.Status {
		case at.EventRecvData, at.EventTxConfirmed, at.EventTxUnconfirmed:
		default:
			evErr := &rak811.EventError{Status: ev.Status}
			s.logger.Warn("Module reported event fault", "error", evErr)
			item.Error = evErr.Error()
		}
		resp = append(resp, item)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
