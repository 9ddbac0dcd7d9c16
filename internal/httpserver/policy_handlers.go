package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"view-cache-policy/internal/cache/service"
	"view-cache-policy/internal/models"
)

func errorStatus(err error) int {
	if errors.Is(err, service.ErrUnknownView) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func (req *EvaluateRequest) toInput() service.EvaluationInput {
	return service.EvaluationInput{
		View:         req.View,
		Display:      req.Display,
		Contributors: req.Contributors,
		BaseTags:     req.BaseTags,
		BaseContexts: req.BaseContexts,
		Tokens:       req.Tokens,
	}
}

// handleEvaluate computes and returns the cache descriptor for a view
// execution without touching the store.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.View == "" {
		s.writeErrorResponse(w, "Missing required field: view", http.StatusBadRequest)
		return
	}

	descriptor, err := s.evaluationService.Evaluate(req.toInput())
	if err != nil {
		s.writeErrorResponse(w, err.Error(), errorStatus(err))
		return
	}

	s.writeResponse(w, &EvaluateResponse{
		Success:    true,
		Descriptor: descriptor,
	})
}

// handleGet handles cache get requests
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.View == "" {
		s.writeErrorResponse(w, "Missing required field: view", http.StatusBadRequest)
		return
	}

	result, err := s.evaluationService.Get(req.toInput())
	if err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("Evaluation service error: %v", err), errorStatus(err))
		return
	}

	var cacheStatus models.CacheStatus
	switch {
	case result.Bypass:
		cacheStatus = models.CacheStatusBypass
	case result.Found:
		cacheStatus = models.CacheStatusHit
	default:
		cacheStatus = models.CacheStatusMiss
	}

	s.writeResponse(w, &CacheResponse{
		Success:     true,
		Found:       result.Found,
		Data:        string(result.Data),
		Key:         result.Key,
		CacheStatus: cacheStatus,
		Descriptor:  &result.Descriptor,
	})
}

// handleSet handles cache set requests
func (s *Server) handleSet(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.View == "" || req.Data == "" {
		s.writeErrorResponse(w, "Missing required fields: view, data", http.StatusBadRequest)
		return
	}

	descriptor, err := s.evaluationService.Set(req.toInput(), []byte(req.Data))
	if err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("Evaluation service error: %v", err), errorStatus(err))
		return
	}

	s.writeResponse(w, &CacheResponse{
		Success:    true,
		Descriptor: descriptor,
	})
}

// handleInvalidate handles tag invalidation requests
func (s *Server) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	var req InvalidateRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if len(req.Tags) == 0 {
		s.writeErrorResponse(w, "Missing required field: tags", http.StatusBadRequest)
		return
	}

	s.evaluationService.Invalidate(req.Tags)

	s.writeResponse(w, &InvalidateResponse{Success: true})
}
