package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pairshare/pairshare/internal/csvimport"
	"github.com/pairshare/pairshare/internal/models"
	"github.com/pairshare/pairshare/internal/textnorm"
)

// maxBodyBytes bounds request bodies; CSV uploads are the largest payloads.
const maxBodyBytes = 10 << 20

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.ledger.ListExpenses(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.Expense
	if !decodeBody(w, r, &expense) {
		return
	}
	created, err := s.ledger.CreateExpense(r.Context(), &expense)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.ledger.DeleteExpense(r.Context(), id); err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListSettlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := s.ledger.ListSettlements(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, settlements)
}

func (s *Server) handleCreateSettlement(w http.ResponseWriter, r *http.Request) {
	var settlement models.Settlement
	if !decodeBody(w, r, &settlement) {
		return
	}
	created, err := s.ledger.CreateSettlement(r.Context(), &settlement)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := s.ledger.Balance(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		models.Balance
		Display string `json:"display"`
	}{
		Balance: balance,
		Display: textnorm.FormatMinorUnits(balance.Net),
	})
}

func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.ledger.MonthlyReport(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.ledger.CategoryReport(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

type importRequest struct {
	CSV         string                        `json:"csv"`
	Mapping     *csvimport.ColumnMapping      `json:"mapping,omitempty"`
	Overrides   map[int]csvimport.RowOverride `json:"overrides,omitempty"`
	SkipInvalid bool                          `json:"skipInvalid"`
}

func (s *Server) handleImportPreview(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if !decodeBody(w, r, &req) {
		return
	}
	preview, err := s.imports.Preview(req.CSV, req.Mapping)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, csvimport.ErrNoHeader) {
			status = http.StatusUnprocessableEntity
		}
		respondError(w, status, err)
		return
	}
	respondJSON(w, http.StatusOK, preview)
}

func (s *Server) handleImportCommit(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result, err := s.imports.Commit(r.Context(), req.CSV, req.Mapping, req.Overrides, req.SkipInvalid)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleReceiptExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	scan, err := s.receipts.ExtractFromJSON(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	respondJSON(w, http.StatusOK, scan)
}
