package agent

import (
	"fmt"

	"campus-services/internal/mailer"
	"campus-services/internal/model"
	"campus-services/internal/repository"
)

// LeaveAgent persists a leave request. There is no approval workflow:
// every submitted leave is stored already Approved.
type LeaveAgent struct {
	leaves repository.LeaveRepository
	users  repository.UserRepository
	mail   *mailer.Mailer
}

func NewLeaveAgent(leaves repository.LeaveRepository, users repository.UserRepository, mail *mailer.Mailer) *LeaveAgent {
	return &LeaveAgent{leaves: leaves, users: users, mail: mail}
}

func (a *LeaveAgent) Handle(payload Payload) (Result, error) {
	userID, ok := uintField(payload, "user_id")
	if !ok {
		return nil, &ValidationError{Field: "user_id"}
	}
	leaveType, ok := stringField(payload, "leave_type")
	if !ok {
		return nil, &ValidationError{Field: "leave_type"}
	}
	startDate, ok := stringField(payload, "start_date")
	if !ok {
		return nil, &ValidationError{Field: "start_date"}
	}
	endDate, ok := stringField(payload, "end_date")
	if !ok {
		return nil, &ValidationError{Field: "end_date"}
	}

	leave := model.LeaveRequest{
		UserID:    userID,
		LeaveType: leaveType,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    "Approved",
	}
	if err := a.leaves.Create(&leave); err != nil {
		return nil, fmt.Errorf("create leave request: %w", err)
	}

	if a.mail != nil {
		go a.notify(leave)
	}

	return Result{"status": "Leave Approved", "leave_id": leave.ID}, nil
}

// notify emails the requester, best effort. A missing user or SMTP
// hiccup never affects the already-committed leave.
func (a *LeaveAgent) notify(leave model.LeaveRequest) {
	user, err := a.users.GetByID(leave.UserID)
	if err != nil || user.Email == "" {
		return
	}
	a.mail.SendLeaveApproved(user.Email, leave.LeaveType, leave.StartDate, leave.EndDate)
}
