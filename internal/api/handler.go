package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/errors"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/logger"
)

type submitOrderRequest struct {
	FundID     string          `json:"fundID"`
	InvestorID string          `json:"investorID"`
	Side       string          `json:"side"`
	Price      decimal.Decimal `json:"price"`
	Quantity   decimal.Decimal `json:"quantity"`
}

func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewErrorDetails("invalid request body", errors.GeneralBadRequestError, ""))
		return
	}

	order, err := s.orders.SubmitOrder(r.Context(), orderv1.NewOrderRequest{
		FundID:     req.FundID,
		InvestorID: req.InvestorID,
		Side:       orderv1.Side(req.Side),
		Price:      req.Price,
		Quantity:   req.Quantity,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.orders.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("id")
	if err := s.orders.CancelOrder(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"orderID": orderID,
		"status":  string(orderv1.StatusCancelled),
	})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := orderv1.Filter{
		FundID:        query.Get("fundID"),
		InvestorID:    query.Get("investorID"),
		Side:          orderv1.Side(query.Get("side")),
		Status:        orderv1.Status(query.Get("status")),
		SortDirection: query.Get("sort"),
	}
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))
	filter.Offset, _ = strconv.Atoi(query.Get("offset"))

	orders, err := s.orders.ListOrders(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleListTrades(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	trades, err := s.orders.ListTrades(r.Context(), r.PathValue("fundID"), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, trades)
}

// handleBookSnapshot serves the fund's last published book snapshot.
// Snapshots come out of Redis, so reads never contend with a matching
// pass. Entries expire with the store's TTL when a fund goes quiet.
func (s *Server) handleBookSnapshot(w http.ResponseWriter, r *http.Request) {
	fundID := r.PathValue("fundID")

	snapshot, err := s.snapshots.Get(r.Context(), fundID)
	if err != nil {
		writeError(w, err)
		return
	}
	if snapshot == nil {
		writeError(w, errors.NewErrorDetails("no book snapshot for fund", errors.GeneralNotFoundError, "fundID"))
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// handleTriggerTick runs a matching pass unless one is already in
// flight. A skip is reported with 409 so external schedulers can tell
// the difference without parsing the body.
func (s *Server) handleTriggerTick(w http.ResponseWriter, r *http.Request) {
	summary := s.coordinator.TriggerPass(r.Context())

	s.logger.InfoContext(r.Context(), "Tick triggered via HTTP",
		logger.Field{Key: "skipped", Value: summary.Skipped},
		logger.Field{Key: "tradesCreated", Value: summary.TradesCreated},
	)

	status := http.StatusOK
	if summary.Skipped {
		status = http.StatusConflict
	}
	writeJSON(w, status, summary)
}
