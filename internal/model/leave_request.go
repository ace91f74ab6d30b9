package model

import "gorm.io/gorm"

// LeaveRequest is immutable once created; the leave agent writes it
// with status already set to Approved.
type LeaveRequest struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"not null"`
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status" gorm:"default:Pending"`
}
