package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
)

type statusResponse struct {
	Status string `json:"status"`
}

type supplyResponse struct {
	TotalIssued uint64 `json:"total_issued"`
}

type balanceResponse struct {
	Identity string `json:"identity"`
	Balance  uint64 `json:"balance"`
}

type nodeResponse struct {
	ID        string `json:"id"`
	PublicKey string `json:"public_key"`
}

type custodianResponse struct {
	Condition uint8  `json:"condition"`
	NodeID    string `json:"node_id"`
}

type userResponse struct {
	ID         string              `json:"id"`
	PublicKey  string              `json:"public_key"`
	Custodians []custodianResponse `json:"custodians"`
}

type sessionResponse struct {
	UserID           string   `json:"user_id"`
	Status           string   `json:"status"`
	TotalCompletions uint32   `json:"total_completions"`
	Confirmed        []bool   `json:"confirmed"`
	Proofs           []string `json:"proofs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("failed to write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrorValidation):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		s.log.Error("request failed", "path", r.URL.Path, "err", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: common.ErrorInternal.Error()})
	}
}

func (s *Server) handleLivenessCheck(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, statusResponse{Status: "alive"})
}

func (s *Server) handleReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if !s.isReady.Load() {
		s.writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "not ready"})
		return
	}
	s.writeJSON(w, http.StatusOK, statusResponse{Status: "ready"})
}

func (s *Server) handleDrain(w http.ResponseWriter, r *http.Request) {
	if !s.isReady.Swap(false) {
		s.writeJSON(w, http.StatusOK, statusResponse{Status: "already draining"})
		return
	}
	s.log.Info("Server marked as not ready")
	s.writeJSON(w, http.StatusOK, statusResponse{Status: "draining"})
}

func (s *Server) handleUndrain(w http.ResponseWriter, r *http.Request) {
	if s.isReady.Swap(true) {
		s.writeJSON(w, http.StatusOK, statusResponse{Status: "already ready"})
		return
	}
	s.log.Info("Server marked as ready")
	s.writeJSON(w, http.StatusOK, statusResponse{Status: "ready"})
}

func (s *Server) handleSupply(w http.ResponseWriter, r *http.Request) {
	total, err := s.reader.TotalIssued(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, supplyResponse{TotalIssued: uint64(total)})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b, err := s.reader.BalanceOf(r.Context(), models.Identity(id))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, balanceResponse{Identity: id, Balance: uint64(b)})
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	n, err := s.reader.GetNode(r.Context(), models.Identity(chi.URLParam(r, "id")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nodeResponse{ID: string(n.ID), PublicKey: n.PublicKey})
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.reader.GetUser(r.Context(), models.Identity(chi.URLParam(r, "id")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := userResponse{ID: string(u.ID), PublicKey: u.PublicKey}
	for _, c := range u.Custodians {
		resp.Custodians = append(resp.Custodians, custodianResponse{Condition: c.Condition, NodeID: string(c.NodeID)})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleSession never exposes proofs of unconfirmed slots.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	rec, err := s.reader.GetSession(r.Context(), models.Identity(chi.URLParam(r, "id")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := sessionResponse{
		UserID:           string(rec.UserID),
		Status:           rec.Status.String(),
		TotalCompletions: rec.TotalCompletions,
	}
	for _, slot := range rec.Slots {
		resp.Confirmed = append(resp.Confirmed, slot.Confirmed)
		if slot.Confirmed {
			resp.Proofs = append(resp.Proofs, slot.Proof)
		} else {
			resp.Proofs = append(resp.Proofs, "")
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}
