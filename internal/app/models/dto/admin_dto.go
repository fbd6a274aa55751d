package dto

import (
	"time"

	"github.com/yigit/lms/internal/app/models"
)

// CreateMentorRequest is an admin-created mentor account
type CreateMentorRequest struct {
	Email       string  `json:"email" binding:"required,lmsemail"`
	FullName    *string `json:"fullName" binding:"omitempty,max=200"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=32"`
	Password    string  `json:"password" binding:"required,password"`
}

// CreateBatchRequest creates a batch
type CreateBatchRequest struct {
	BatchName      string  `json:"batchName" binding:"required,max=200"`
	NoOfStudents   int     `json:"noOfStudents" binding:"min=0"`
	StartDate      *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	CompletionDate *string `json:"completionDate" binding:"omitempty,datetime=2006-01-02"`
	Status         string  `json:"status" binding:"omitempty,max=50"`
	MentorID       *int64  `json:"mentorId" binding:"omitempty,min=1"`
}

// UpdateBatchStatusRequest changes a batch status
type UpdateBatchStatusRequest struct {
	Status string `json:"status" binding:"required,max=50"`
}

// CreateHireRequest records a student placement
type CreateHireRequest struct {
	UserID       int64  `json:"userId" binding:"required,min=1"`
	Fullname     string `json:"fullname" binding:"required,max=200"`
	Email        string `json:"email" binding:"required,lmsemail"`
	HiredCompany string `json:"hiredCompany" binding:"required,max=200"`
	HiredDate    string `json:"hiredDate" binding:"required,datetime=2006-01-02"`
	BatchID      *int64 `json:"batchId" binding:"omitempty,min=1"`
	DashboardID  *int64 `json:"dashboardId" binding:"omitempty,min=1"`
}

// SetUserActiveRequest toggles a user's active flag
type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// DashboardResponse exposes the admin counters
type DashboardResponse struct {
	ID                    int64 `json:"id"`
	BatchesCompletedCount int64 `json:"batches_completed_count"`
	StudentsHired         int64 `json:"students_hired"`
	NoOfStudents          int64 `json:"no_of_students"`
	NoOfMentors           int64 `json:"no_of_mentors"`
}

// BatchResponse describes a batch
type BatchResponse struct {
	ID             int64   `json:"id"`
	BatchName      string  `json:"batchName"`
	NoOfStudents   int     `json:"noOfStudents"`
	StartDate      *string `json:"startDate"`
	CompletionDate *string `json:"completionDate"`
	Status         string  `json:"status"`
	MentorID       *int64  `json:"mentorId"`
}

// HireResponse describes a recorded hire and the dashboard after recompute
type HireResponse struct {
	ID           int64              `json:"id"`
	UserID       int64              `json:"userId"`
	Fullname     string             `json:"fullname"`
	Email        string             `json:"email"`
	HiredCompany string             `json:"hiredCompany"`
	HiredDate    string             `json:"hiredDate"`
	BatchID      *int64             `json:"batchId"`
	DashboardID  *int64             `json:"dashboardId"`
	Dashboard    *DashboardResponse `json:"dashboard,omitempty"`
}

// NewDashboardResponse converts dashboard counters
func NewDashboardResponse(d *models.AdminDashboard) *DashboardResponse {
	if d == nil {
		return nil
	}
	return &DashboardResponse{
		ID:                    d.ID,
		BatchesCompletedCount: d.BatchesCompletedCount,
		StudentsHired:         d.StudentsHired,
		NoOfStudents:          d.NoOfStudents,
		NoOfMentors:           d.NoOfMentors,
	}
}

// NewBatchResponse converts a batch
func NewBatchResponse(b *models.Batch) *BatchResponse {
	if b == nil {
		return nil
	}
	return &BatchResponse{
		ID:             b.ID,
		BatchName:      b.BatchName,
		NoOfStudents:   b.NoOfStudents,
		StartDate:      formatDate(b.StartDate),
		CompletionDate: formatDate(b.CompletionDate),
		Status:         b.Status,
		MentorID:       b.MentorID,
	}
}

// NewHireResponse converts a hire and the dashboard it updated, if any
func NewHireResponse(h *models.StudentsHired, d *models.AdminDashboard) *HireResponse {
	if h == nil {
		return nil
	}
	return &HireResponse{
		ID:           h.ID,
		UserID:       h.UserID,
		Fullname:     h.Fullname,
		Email:        h.Email,
		HiredCompany: h.HiredCompany,
		HiredDate:    h.HiredDate.Format(models.DateLayout),
		BatchID:      h.BatchID,
		DashboardID:  h.DashboardID,
		Dashboard:    NewDashboardResponse(d),
	}
}

// ParseDate parses an optional YYYY-MM-DD value
func ParseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(models.DateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(models.DateLayout)
	return &s
}
