package models

import "time"

// BatchStatusCompleted is the batch status counted by the dashboard
const BatchStatusCompleted = "Completed"

// Batch is a cohort of students taught by a mentor
type Batch struct {
	ID             int64      `json:"id" db:"id"`
	BatchName      string     `json:"batchName" db:"batch_name"`
	NoOfStudents   int        `json:"noOfStudents" db:"no_of_students"`
	StartDate      *time.Time `json:"startDate,omitempty" db:"start_date"`
	CompletionDate *time.Time `json:"completionDate,omitempty" db:"completion_date"`
	Status         string     `json:"status" db:"status"`
	MentorID       *int64     `json:"mentorId,omitempty" db:"mentor_id"`
}

// AdminDashboard holds counters derived from users, batches and hires.
// The values are never edited directly, only recomputed.
type AdminDashboard struct {
	ID                    int64 `json:"id" db:"id"`
	BatchesCompletedCount int64 `json:"batchesCompletedCount" db:"batches_completed_count"`
	StudentsHired         int64 `json:"studentsHired" db:"students_hired"`
	NoOfStudents          int64 `json:"noOfStudents" db:"no_of_students"`
	NoOfMentors           int64 `json:"noOfMentors" db:"no_of_mentors"`
}

// StudentsHired records a student placement
type StudentsHired struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	Fullname     string    `json:"fullname" db:"fullname"`
	Email        string    `json:"email" db:"email"`
	HiredCompany string    `json:"hiredCompany" db:"hired_company"`
	HiredDate    time.Time `json:"hiredDate" db:"hired_date"`
	BatchID      *int64    `json:"batchId,omitempty" db:"batch_id"`
	DashboardID  *int64    `json:"dashboardId,omitempty" db:"dashboard_id"`
}
