// Package server exposes the ledger and group services as a thin JSON API.
// Handlers only decode, delegate, and encode; every rule about spends,
// balances, and settlement lives in the engine and service layers.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/settlewise/internal/ledger"
	"github.com/mmynk/settlewise/internal/models"
	"github.com/mmynk/settlewise/internal/service"
	"github.com/mmynk/settlewise/internal/storage"
	"github.com/mmynk/settlewise/pkg/money"
)

// Server binds the service operations to HTTP routes.
type Server struct {
	ledger *service.LedgerService
	groups *service.GroupService
}

// New creates a Server over the given services.
func New(ledgerSvc *service.LedgerService, groupSvc *service.GroupService) *Server {
	return &Server{ledger: ledgerSvc, groups: groupSvc}
}

// Handler returns the API routes wrapped with logging and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/groups", s.createGroup)
	mux.HandleFunc("GET /api/groups", s.listGroups)
	mux.HandleFunc("GET /api/groups/{id}", s.getGroup)
	mux.HandleFunc("POST /api/groups/{id}/members", s.addMember)
	mux.HandleFunc("GET /api/groups/{id}/members", s.listMembers)
	mux.HandleFunc("POST /api/groups/{id}/spends", s.recordSpend)
	mux.HandleFunc("GET /api/groups/{id}/spends", s.listSpends)
	mux.HandleFunc("GET /api/groups/{id}/balances", s.getBalances)
	mux.HandleFunc("GET /api/groups/{id}/settlement", s.getSettlementPlan)
	return loggingMiddleware(corsMiddleware(mux))
}

// Wire types. Amounts cross the wire as decimal strings ("12.34"); minor
// units never leak to clients.

type memberJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type groupJSON struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CreatorID string       `json:"creator_id"`
	Members   []memberJSON `json:"members"`
	CreatedAt int64        `json:"created_at"`
}

type createGroupRequest struct {
	Name    string   `json:"name"`
	Creator string   `json:"creator"`
	Members []string `json:"members"`
}

type addMemberRequest struct {
	Name string `json:"name"`
}

type shareJSON struct {
	MemberID string `json:"member_id"`
	Amount   string `json:"amount"`
}

type recordSpendRequest struct {
	PayerID string      `json:"payer_id"`
	Amount  string      `json:"amount"`
	Note    string      `json:"note"`
	Shares  []shareJSON `json:"shares"`
}

type spendJSON struct {
	ID        string      `json:"id"`
	PayerID   string      `json:"payer_id"`
	Amount    string      `json:"amount"`
	Note      string      `json:"note,omitempty"`
	Shares    []shareJSON `json:"shares"`
	CreatedAt int64       `json:"created_at"`
}

type balanceJSON struct {
	MemberID string `json:"member_id"`
	Net      string `json:"net"`
}

type transferJSON struct {
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
	Amount string `json:"amount"`
}

func toGroupJSON(g *models.Group) groupJSON {
	out := groupJSON{
		ID:        g.ID,
		Name:      g.Name,
		CreatorID: g.CreatorID,
		Members:   make([]memberJSON, len(g.Members)),
		CreatedAt: g.CreatedAt,
	}
	for i, m := range g.Members {
		out.Members[i] = memberJSON{ID: m.ID, Name: m.Name}
	}
	return out
}

func toSpendJSON(e *models.SpendEvent) spendJSON {
	out := spendJSON{
		ID:        e.ID,
		PayerID:   e.PayerID,
		Amount:    money.Format(e.Total),
		Note:      e.Note,
		Shares:    make([]shareJSON, len(e.Shares)),
		CreatedAt: e.CreatedAt,
	}
	for i, share := range e.Shares {
		out.Shares[i] = shareJSON{MemberID: share.MemberID, Amount: money.Format(share.Amount)}
	}
	return out
}

func (s *Server) createGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	group, err := s.groups.CreateGroup(r.Context(), req.Name, req.Creator, req.Members)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGroupJSON(group))
}

func (s *Server) listGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groups.ListGroups(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]groupJSON, len(groups))
	for i, g := range groups {
		out[i] = toGroupJSON(g)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getGroup(w http.ResponseWriter, r *http.Request) {
	group, err := s.groups.GetGroup(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupJSON(group))
}

func (s *Server) addMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	member, err := s.groups.AddMember(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, memberJSON{ID: member.ID, Name: member.Name})
}

func (s *Server) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.groups.ListMembers(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]memberJSON, len(members))
	for i, m := range members {
		out[i] = memberJSON{ID: m.ID, Name: m.Name}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) recordSpend(w http.ResponseWriter, r *http.Request) {
	var req recordSpendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	total, err := money.Parse(req.Amount)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	// nil means "equal split"; an explicit empty list is rejected by the
	// validator as EmptyParticipants.
	var shares []models.ParticipantShare
	if req.Shares != nil {
		shares = make([]models.ParticipantShare, len(req.Shares))
		for i, sh := range req.Shares {
			amount, err := money.Parse(sh.Amount)
			if err != nil {
				writeBadRequest(w, err.Error())
				return
			}
			shares[i] = models.ParticipantShare{MemberID: sh.MemberID, Amount: amount}
		}
	}

	eventID, err := s.ledger.RecordSpend(r.Context(), r.PathValue("id"), req.PayerID, total, shares, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"event_id": eventID})
}

func (s *Server) listSpends(w http.ResponseWriter, r *http.Request) {
	spends, err := s.ledger.ListSpends(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]spendJSON, len(spends))
	for i, e := range spends {
		out[i] = toSpendJSON(e)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := s.ledger.GetBalances(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]balanceJSON, len(balances))
	for i, b := range balances {
		out[i] = balanceJSON{MemberID: b.MemberID, Net: money.Format(b.Net)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getSettlementPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.ledger.GetSettlementPlan(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]transferJSON, len(plan.Transfers))
	for i, tr := range plan.Transfers {
		out[i] = transferJSON{FromID: tr.FromID, ToID: tr.ToID, Amount: money.Format(tr.Amount)}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"group_id":  plan.GroupID,
		"transfers": out,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

// writeError maps the error taxonomy to status codes: caller mistakes are
// 400, missing resources 404, a corrupted or unbalanced ledger 500 (it must
// be surfaced, never masked), and an unreachable store 503.
func writeError(w http.ResponseWriter, err error) {
	var verr *ledger.ValidationError
	var lerr *ledger.InvalidLedgerError
	var uerr *ledger.UnbalancedLedgerError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": verr.Msg,
			"code":  string(verr.Code),
		})
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &lerr), errors.As(err, &uerr):
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	case errors.Is(err, storage.ErrUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "store unavailable"})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
}
