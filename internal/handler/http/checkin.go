package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/unolo/fieldtrack-backend-go/internal/domain/checkin"
	"github.com/unolo/fieldtrack-backend-go/internal/handler/http/response"
)

type CheckinHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetActiveSession(w http.ResponseWriter, r *http.Request)
	ListAssignedClients(w http.ResponseWriter, r *http.Request)
}

type CheckinHandlerImpl struct {
	checkinService checkin.CheckinService
}

func NewCheckinHandler(checkinService checkin.CheckinService) CheckinHandler {
	return &CheckinHandlerImpl{checkinService: checkinService}
}

// CheckIn implements CheckinHandler.
func (h *CheckinHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req checkin.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.checkinService.CheckIn(r.Context(), employeeID, req)
	if err != nil {
		slog.Error("CheckIn service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked in", "employee_id", employeeID, "client_id", result.ClientID)
	response.Created(w, "Checked in successfully", result)
}

// CheckOut implements CheckinHandler.
func (h *CheckinHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.checkinService.CheckOut(r.Context(), employeeID)
	if err != nil {
		slog.Error("CheckOut service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked out", "employee_id", employeeID, "client_id", result.ClientID)
	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// GetActiveSession implements CheckinHandler.
func (h *CheckinHandlerImpl) GetActiveSession(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.checkinService.GetActiveSession(r.Context(), employeeID)
	if err != nil {
		slog.Error("GetActiveSession service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	// An idle employee is a normal state, not an error.
	response.Success(w, result)
}

// ListAssignedClients implements CheckinHandler.
func (h *CheckinHandlerImpl) ListAssignedClients(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.checkinService.ListAssignedClients(r.Context(), employeeID)
	if err != nil {
		slog.Error("ListAssignedClients service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
