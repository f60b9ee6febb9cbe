package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/domain/notification"
	"github.com/leavedesk/leave-backend-go/internal/domain/user"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
	"github.com/leavedesk/leave-backend-go/internal/pkg/email"
	"github.com/leavedesk/leave-backend-go/internal/pkg/validator"
	"github.com/leavedesk/leave-backend-go/internal/repository/postgresql"
)

type Service interface {
	Create(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error)
	Approve(ctx context.Context, req leave.DecideRequestRequest) (leave.LeaveRequestResponse, error)
	Reject(ctx context.Context, req leave.DecideRequestRequest) (leave.LeaveRequestResponse, error)
	GetByID(ctx context.Context, id string, viewer user.User) (leave.LeaveRequestResponse, error)
	List(ctx context.Context, filter leave.LeaveRequestFilter) (*leave.LeaveRequestListResponse, error)
	ListMine(ctx context.Context, userID string, filter leave.LeaveRequestFilter) (*leave.LeaveRequestListResponse, error)
	SetMaxSlots(ctx context.Context, req leave.SetMaxSlotsRequest) (leave.LeaveSlotResponse, error)
	GetSlots(ctx context.Context, projectID, from, to string) ([]leave.LeaveSlotResponse, error)
}

// txRunner executes fn inside a single database transaction.
type txRunner func(ctx context.Context, fn func(tx pgx.Tx) error) error

type serviceImpl struct {
	runInTx         txRunner
	leaveRepo       leave.LeaveRequestRepository
	slotRepo        leave.LeaveSlotRepository
	userRepo        user.UserRepository
	notificationSvc notification.Service
	emailSvc        email.EmailService
	frontendURL     string
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	slotRepo leave.LeaveSlotRepository,
	userRepo user.UserRepository,
	notificationSvc notification.Service,
	emailSvc email.EmailService,
	frontendURL string,
) Service {
	return &serviceImpl{
		runInTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		leaveRepo:       leaveRepo,
		slotRepo:        slotRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		emailSvc:        emailSvc,
		frontendURL:     frontendURL,
	}
}

// Create submits a leave request. The request is persisted as pending;
// the balance is only checked here, never debited.
func (s *serviceImpl) Create(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	requester, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, end := req.Dates()
	days := leave.DaysInclusive(start, end)

	if days > requester.LeaveBalance {
		return leave.LeaveRequestResponse{}, &leave.InsufficientBalanceError{
			Requested: days,
			Available: requester.LeaveBalance,
		}
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID:    req.UserID,
		Status:    leave.RequestStatusPending,
		StartDate: start,
		EndDate:   end,
		DaysCount: days,
		Reason:    req.Reason,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.notifySubmitted(ctx, requester, created)

	return created.ToResponse(), nil
}

// Approve decides a pending request. The row lock, capacity increments
// and balance debit all happen in one transaction so concurrent
// decisions on the same request or the same dates serialize.
func (s *serviceImpl) Approve(ctx context.Context, req leave.DecideRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var requester user.User
	var request leave.LeaveRequest
	var remainingBalance int

	err := s.runInTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		request, err = s.leaveRepo.GetByIDForUpdate(txCtx, req.RequestID)
		if err != nil {
			return err
		}
		if request.Status != leave.RequestStatusPending {
			return leave.ErrAlreadyProcessed
		}

		requester, err = s.userRepo.GetByID(txCtx, request.UserID)
		if err != nil {
			return err
		}

		// Capacity is tracked per project. Users without a project
		// assignment are not subject to daily caps.
		if requester.ProjectID != nil {
			for _, date := range leave.DatesInRange(request.StartDate, request.EndDate) {
				slot, err := s.slotRepo.GetOrCreateForUpdate(txCtx, *requester.ProjectID, date)
				if err != nil {
					return err
				}
				if !slot.HasCapacity() {
					return &leave.CapacityExceededError{Date: date}
				}
				if err := s.slotRepo.IncrementUsed(txCtx, slot.ID); err != nil {
					return err
				}
			}
		}

		remainingBalance, err = s.userRepo.DebitLeaveBalance(txCtx, request.UserID, request.DaysCount)
		if err != nil {
			return err
		}

		return s.leaveRepo.UpdateStatus(txCtx, request.ID, leave.RequestStatusApproved, req.SupervisorID)
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	decided := s.decidedState(ctx, request, leave.RequestStatusApproved, req.SupervisorID)

	s.notifyDecided(ctx, requester, decided, remainingBalance)

	return decided.ToResponse(), nil
}

// Reject decides a pending request without touching balance or slots.
func (s *serviceImpl) Reject(ctx context.Context, req leave.DecideRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var requester user.User
	var request leave.LeaveRequest

	err := s.runInTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		request, err = s.leaveRepo.GetByIDForUpdate(txCtx, req.RequestID)
		if err != nil {
			return err
		}
		if request.Status != leave.RequestStatusPending {
			return leave.ErrAlreadyProcessed
		}

		requester, err = s.userRepo.GetByID(txCtx, request.UserID)
		if err != nil {
			return err
		}

		return s.leaveRepo.UpdateStatus(txCtx, request.ID, leave.RequestStatusRejected, req.SupervisorID)
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	decided := s.decidedState(ctx, request, leave.RequestStatusRejected, req.SupervisorID)

	s.notifyDecided(ctx, requester, decided, 0)

	return decided.ToResponse(), nil
}

// decidedState folds the committed decision into the locked row. A
// re-read picks up the joined display fields, but the decision already
// committed, so a failed re-read never fails the call.
func (s *serviceImpl) decidedState(ctx context.Context, request leave.LeaveRequest, status leave.RequestStatus, supervisorID string) leave.LeaveRequest {
	request.Status = status
	request.SupervisorID = &supervisorID

	full, err := s.leaveRepo.GetByID(ctx, request.ID)
	if err != nil {
		slog.Warn("failed to re-read decided leave request", "request_id", request.ID, "error", err)
		return request
	}
	return full
}

// GetByID implements Service. Staff may only see their own requests;
// supervisors, admins and HR see everything.
func (s *serviceImpl) GetByID(ctx context.Context, id string, viewer user.User) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.UserID != viewer.ID && !viewer.IsSupervisor() && !viewer.IsHR() {
		return leave.LeaveRequestResponse{}, leave.ErrUnauthorizedAccess
	}

	return request.ToResponse(), nil
}

// List implements Service.
func (s *serviceImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) (*leave.LeaveRequestListResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return buildListResponse(requests, total, filter), nil
}

// ListMine implements Service.
func (s *serviceImpl) ListMine(ctx context.Context, userID string, filter leave.LeaveRequestFilter) (*leave.LeaveRequestListResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, total, err := s.leaveRepo.GetByUserID(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return buildListResponse(requests, total, filter), nil
}

func buildListResponse(requests []leave.LeaveRequest, total int64, filter leave.LeaveRequestFilter) *leave.LeaveRequestListResponse {
	responses := make([]leave.LeaveRequestResponse, len(requests))
	for i := range requests {
		responses[i] = requests[i].ToResponse()
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	return &leave.LeaveRequestListResponse{
		Requests: responses,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
}

// SetMaxSlots implements Service.
func (s *serviceImpl) SetMaxSlots(ctx context.Context, req leave.SetMaxSlotsRequest) (leave.LeaveSlotResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveSlotResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	slot, err := s.slotRepo.SetMaxSlots(ctx, req.ProjectID, date, req.MaxSlots)
	if err != nil {
		return leave.LeaveSlotResponse{}, err
	}

	return slot.ToResponse(), nil
}

// GetSlots implements Service.
func (s *serviceImpl) GetSlots(ctx context.Context, projectID, from, to string) ([]leave.LeaveSlotResponse, error) {
	fromDate, ok := validator.IsValidDate(from)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "from", Message: "from must be formatted as YYYY-MM-DD"}}
	}
	toDate, ok := validator.IsValidDate(to)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "to", Message: "to must be formatted as YYYY-MM-DD"}}
	}

	slots, err := s.slotRepo.GetByProjectAndRange(ctx, projectID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveSlotResponse, len(slots))
	for i := range slots {
		responses[i] = slots[i].ToResponse()
	}
	return responses, nil
}

// notifySubmitted fans out to the requester's project supervisors.
// Failures are logged and swallowed; the request already persisted.
func (s *serviceImpl) notifySubmitted(ctx context.Context, requester user.User, request leave.LeaveRequest) {
	if requester.ProjectID == nil {
		return
	}

	supervisors, err := s.userRepo.GetByProjectAndRole(ctx, *requester.ProjectID, user.RoleSupervisor)
	if err != nil {
		slog.Error("failed to load supervisors for notification", "project_id", *requester.ProjectID, "error", err)
		return
	}

	requesterName := requester.CompanyCode
	if requester.Name != nil {
		requesterName = *requester.Name
	}

	startDate := request.StartDate.Format("2006-01-02")
	endDate := request.EndDate.Format("2006-01-02")
	requestLink := fmt.Sprintf("%s/requests/%s", s.frontendURL, request.ID)

	reqs := make([]notification.CreateNotificationRequest, 0, len(supervisors))
	for _, sup := range supervisors {
		reqs = append(reqs, notification.CreateNotificationRequest{
			UserID:           sup.ID,
			Title:            "New leave request",
			Content:          fmt.Sprintf("%s requested leave from %s to %s (%d days)", requesterName, startDate, endDate, request.DaysCount),
			Type:             notification.TypeSubmitted,
			RelatedRequestID: &request.ID,
		})
	}
	if err := s.notificationSvc.QueueBulkNotification(ctx, reqs); err != nil {
		slog.Error("failed to queue submitted notifications", "request_id", request.ID, "error", err)
	}

	for _, sup := range supervisors {
		if sup.Email == nil {
			continue
		}
		to := *sup.Email
		supName := sup.CompanyCode
		if sup.Name != nil {
			supName = *sup.Name
		}
		go func() {
			if err := s.emailSvc.SendLeaveSubmitted(to, supName, requesterName, startDate, endDate, request.DaysCount, requestLink); err != nil {
				slog.Error("failed to send submitted email", "to", to, "request_id", request.ID, "error", err)
			}
		}()
	}
}

// notifyDecided tells the requester about the outcome. Runs after the
// decision committed; failures never roll the workflow back.
func (s *serviceImpl) notifyDecided(ctx context.Context, requester user.User, request leave.LeaveRequest, remainingBalance int) {
	startDate := request.StartDate.Format("2006-01-02")
	endDate := request.EndDate.Format("2006-01-02")

	approved := request.Status == leave.RequestStatusApproved

	notifType := notification.TypeRejected
	title := "Leave request rejected"
	content := fmt.Sprintf("Your leave from %s to %s was rejected", startDate, endDate)
	if approved {
		notifType = notification.TypeApproved
		title = "Leave request approved"
		content = fmt.Sprintf("Your leave from %s to %s was approved (%d days deducted)", startDate, endDate, request.DaysCount)
	}

	err := s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
		UserID:           request.UserID,
		Title:            title,
		Content:          content,
		Type:             notifType,
		RelatedRequestID: &request.ID,
	})
	if err != nil {
		slog.Error("failed to queue decision notification", "request_id", request.ID, "error", err)
	}

	if requester.Email == nil {
		return
	}
	to := *requester.Email
	requesterName := requester.CompanyCode
	if requester.Name != nil {
		requesterName = *requester.Name
	}
	reason := ""
	if request.Reason != nil {
		reason = *request.Reason
	}

	go func() {
		var err error
		if approved {
			err = s.emailSvc.SendLeaveApproved(to, requesterName, startDate, endDate, request.DaysCount, remainingBalance)
		} else {
			err = s.emailSvc.SendLeaveRejected(to, requesterName, startDate, endDate, reason)
		}
		if err != nil {
			slog.Error("failed to send decision email", "to", to, "request_id", request.ID, "error", err)
		}
	}()
}
