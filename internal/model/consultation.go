package model

// ConsultationStatus represents the lifecycle stage of a consultation.
type ConsultationStatus string

const (
	ConsultationStatusDraft            ConsultationStatus = "Draft"
	ConsultationStatusInProgress       ConsultationStatus = "In Progress"
	ConsultationStatusCompleted        ConsultationStatus = "Completed"
	ConsultationStatusAnalysisComplete ConsultationStatus = "Analysis Complete"
	ConsultationStatusClosed           ConsultationStatus = "Closed"
)

// Valid reports whether s is one of the known statuses.
func (s ConsultationStatus) Valid() bool {
	switch s {
	case ConsultationStatusDraft, ConsultationStatusInProgress, ConsultationStatusCompleted,
		ConsultationStatusAnalysisComplete, ConsultationStatusClosed:
		return true
	}
	return false
}

// Finished reports whether the consultation counts as completed on the dashboard.
func (s ConsultationStatus) Finished() bool {
	return s == ConsultationStatusCompleted || s == ConsultationStatusAnalysisComplete
}

// Consultation represents a government policy feedback process.
type Consultation struct {
	ID          uint               `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title       string             `json:"title" gorm:"size:255;not null"`
	Slug        string             `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Status      ConsultationStatus `json:"status" gorm:"type:varchar(32);not null;index"`
	Submissions int                `json:"submissions" gorm:"not null"`
	EndDate     string             `json:"endDate" gorm:"size:10"`
	PublishDate string             `json:"publishDate,omitempty" gorm:"size:10"`
	Progress    int                `json:"progress" gorm:"not null"`
	Description string             `json:"description,omitempty" gorm:"type:text"`
}
