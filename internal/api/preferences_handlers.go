package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/listenupapp/readconfig/internal/http/response"
	"github.com/listenupapp/readconfig/internal/service"
)

// maxBodyBytes bounds request bodies; preference payloads are tiny.
const maxBodyBytes = 16 << 10

type setColorIndexRequest struct {
	Index *int `json:"index"`
}

type setPageTypeRequest struct {
	PageType string `json:"page_type"`
}

type setAutoReadModeRequest struct {
	AutoReadMode string `json:"auto_read_mode"`
}

type setAutoReadRequest struct {
	Enabled *bool `json:"enabled"`
}

type setThemeRequest struct {
	Mode string `json:"mode"`
}

// decodeBody reads a JSON body into dst, writing a 400 on failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		msg := "invalid request body"
		if errors.Is(err, io.EOF) {
			msg = "request body is required"
		}
		response.BadRequest(w, msg, s.logger)
		return false
	}
	return true
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	response.Success(w, s.preferences.Get(r.Context()), s.logger)
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req service.UpdatePreferencesRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	view, err := s.preferences.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, view, s.logger)
}

func (s *Server) handleSetColorIndex(w http.ResponseWriter, r *http.Request) {
	var req setColorIndexRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Index == nil {
		response.BadRequest(w, "index is required", s.logger)
		return
	}

	view, err := s.preferences.SetColorIndex(r.Context(), *req.Index)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, view, s.logger)
}

func (s *Server) handleSetPageType(w http.ResponseWriter, r *http.Request) {
	var req setPageTypeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	view, err := s.preferences.SetPageType(r.Context(), req.PageType)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, view, s.logger)
}

func (s *Server) handleSetAutoReadMode(w http.ResponseWriter, r *http.Request) {
	var req setAutoReadModeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	view, err := s.preferences.SetAutoReadMode(r.Context(), req.AutoReadMode)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, view, s.logger)
}

func (s *Server) handleSetAutoRead(w http.ResponseWriter, r *http.Request) {
	var req setAutoReadRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Enabled == nil {
		response.BadRequest(w, "enabled is required", s.logger)
		return
	}

	response.Success(w, s.preferences.SetAutoRead(r.Context(), *req.Enabled), s.logger)
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	response.Success(w, s.preferences.Theme(r.Context()), s.logger)
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req setThemeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	view, err := s.preferences.SetTheme(r.Context(), req.Mode)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, view, s.logger)
}
