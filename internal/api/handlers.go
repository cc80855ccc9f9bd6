package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/models"
	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/service"
	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/storage"
)

type handler struct {
	svc *service.EventService
}

type createEventRequest struct {
	Name string `json:"name"`
}

type addParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type addExpenseRequest struct {
	Description  string             `json:"description"`
	Amount       float64            `json:"amount"`
	Payer        string             `json:"payer"`
	Participants []string           `json:"participants"`
	Shares       map[string]float64 `json:"shares,omitempty"`
}

type participantResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type expenseResponse struct {
	ID           string             `json:"id"`
	Description  string             `json:"description"`
	Amount       float64            `json:"amount"`
	Payer        string             `json:"payer"`
	Participants []string           `json:"participants"`
	Shares       map[string]float64 `json:"shares,omitempty"`
	CreatedAt    int64              `json:"created_at"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	CreatedAt    int64                 `json:"created_at"`
	Participants []participantResponse `json:"participants"`
	Expenses     []expenseResponse     `json:"expenses"`
}

type eventSummaryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

type balanceResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type settlementResponse struct {
	Debtor   string  `json:"debtor"`
	Creditor string  `json:"creditor"`
	Amount   float64 `json:"amount"`
}

func (h *handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if !decode(w, r, &req) {
		return
	}

	event, err := h.svc.CreateEvent(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

func (h *handler) listEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListEvents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]eventSummaryResponse, 0, len(events))
	for _, ev := range events {
		resp = append(resp, eventSummaryResponse{ID: ev.ID, Name: ev.Name, CreatedAt: ev.CreatedAt})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) getEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.svc.GetEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(event))
}

func (h *handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteEvent(r.Context(), chi.URLParam(r, "eventID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) resetEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetEvent(r.Context(), chi.URLParam(r, "eventID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) addParticipant(w http.ResponseWriter, r *http.Request) {
	var req addParticipantRequest
	if !decode(w, r, &req) {
		return
	}

	eventID := chi.URLParam(r, "eventID")
	if err := h.svc.AddParticipant(r.Context(), eventID, req.Name, req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, participantResponse{Name: req.Name, Email: req.Email})
}

func (h *handler) addExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if !decode(w, r, &req) {
		return
	}

	expense := &models.Expense{
		Description:  req.Description,
		Amount:       req.Amount,
		Payer:        req.Payer,
		Participants: req.Participants,
		Shares:       req.Shares,
	}
	if err := h.svc.AddExpense(r.Context(), chi.URLParam(r, "eventID"), expense); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseResponse(*expense))
}

func (h *handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.ListExpenses(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, toExpenseResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) getBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.svc.Balances(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]balanceResponse, 0, len(balances))
	for _, b := range balances {
		resp = append(resp, balanceResponse{Name: b.Name, Amount: b.Amount})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) getSettlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := h.svc.Settlements(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]settlementResponse, 0, len(settlements))
	for _, s := range settlements {
		resp = append(resp, settlementResponse{Debtor: s.Debtor, Creditor: s.Creditor, Amount: s.Amount})
	}
	writeJSON(w, http.StatusOK, resp)
}

func toEventResponse(ev *models.Event) eventResponse {
	resp := eventResponse{
		ID:           ev.ID,
		Name:         ev.Name,
		CreatedAt:    ev.CreatedAt,
		Participants: make([]participantResponse, 0, len(ev.Participants)),
		Expenses:     make([]expenseResponse, 0, len(ev.Expenses)),
	}
	for _, p := range ev.Participants {
		resp.Participants = append(resp.Participants, participantResponse{Name: p.Name, Email: p.Email})
	}
	for _, e := range ev.Expenses {
		resp.Expenses = append(resp.Expenses, toExpenseResponse(e))
	}
	return resp
}

func toExpenseResponse(e models.Expense) expenseResponse {
	return expenseResponse{
		ID:           e.ID,
		Description:  e.Description,
		Amount:       e.Amount,
		Payer:        e.Payer,
		Participants: e.Participants,
		Shares:       e.Shares,
		CreatedAt:    e.CreatedAt,
	}
}

// decode parses the JSON request body into v, answering 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid request body: %v", err)})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), map[string]string{"error": err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateParticipant):
		return http.StatusConflict
	case errors.Is(err, service.ErrEmptyName),
		errors.Is(err, models.ErrNonPositiveAmount),
		errors.Is(err, models.ErrNoParticipants),
		errors.Is(err, models.ErrDuplicateName),
		errors.Is(err, models.ErrShareMismatch),
		errors.Is(err, models.ErrShareParticipants),
		errors.Is(err, models.ErrUnknownParticipant):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
