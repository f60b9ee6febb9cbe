package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/domain/user"
	"github.com/leavedesk/leave-backend-go/internal/handler/http/response"
	leaveservice "github.com/leavedesk/leave-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	SetMaxSlots(w http.ResponseWriter, r *http.Request)
	GetSlots(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leaveservice.Service
}

func NewLeaveHandler(leaveService leaveservice.Service) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// viewerFromContext builds the minimal user the service needs for
// ownership checks from JWT claims.
func viewerFromContext(r *http.Request) user.User {
	_, claims, _ := jwtauth.FromContext(r.Context())
	viewer := user.User{}
	if userID, ok := claims["user_id"].(string); ok {
		viewer.ID = userID
	}
	if role, ok := claims["role"].(string); ok {
		viewer.Role = user.Role(role)
	}
	return viewer
}

func filterFromQuery(r *http.Request) leave.LeaveRequestFilter {
	q := r.URL.Query()

	filter := leave.LeaveRequestFilter{
		Page:      getIntQueryParam(r, "page", 1),
		Limit:     getIntQueryParam(r, "limit", 20),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("project_id"); v != "" {
		filter.ProjectID = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	return filter
}

// Create submits a leave request for the authenticated user
func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	created, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// Approve decides a request in the requester's favor (supervisor only)
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	supervisorID := getUserIDFromContext(r)
	if supervisorID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	req := leave.DecideRequestRequest{
		RequestID:    chi.URLParam(r, "id"),
		SupervisorID: supervisorID,
	}

	decided, err := h.leaveService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", decided)
}

// Reject turns a request down (supervisor only)
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	supervisorID := getUserIDFromContext(r)
	if supervisorID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	req := leave.DecideRequestRequest{
		RequestID:    chi.URLParam(r, "id"),
		SupervisorID: supervisorID,
	}

	decided, err := h.leaveService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", decided)
}

// GetByID returns one request, owner or supervisor/admin/hr only
func (h *leaveHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	request, err := h.leaveService.GetByID(r.Context(), id, viewerFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request)
}

// List returns requests across users (supervisor, admin, hr)
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.List(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Requests, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
	})
}

// ListMine returns the authenticated user's own requests
func (h *leaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.leaveService.ListMine(r.Context(), userID, filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Requests, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
	})
}

// SetMaxSlots configures daily capacity for a project (admin only)
func (h *leaveHandlerImpl) SetMaxSlots(w http.ResponseWriter, r *http.Request) {
	var req leave.SetMaxSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	slot, err := h.leaveService.SetMaxSlots(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Capacity updated", slot)
}

// GetSlots lists capacity slots for a project within a date range
func (h *leaveHandlerImpl) GetSlots(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	slots, err := h.leaveService.GetSlots(r.Context(), projectID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slots)
}
