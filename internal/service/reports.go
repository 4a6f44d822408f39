package service

import (
	"saaransh/internal/analytics"
	"saaransh/internal/model"
)

// NotAvailable is shown where a "most active" label has nothing to rank.
const NotAvailable = "N/A"

// DashboardReport is the landing page summary.
type DashboardReport struct {
	TotalSubmissions       int                     `json:"totalSubmissions"`
	ActiveConsultations    int                     `json:"activeConsultations"`
	CompletedConsultations int                     `json:"completedConsultations"`
	StanceDistribution     []analytics.StanceSlice `json:"stanceDistribution"`
	Consultations          []model.Consultation    `json:"consultations"`
	RecentComments         []model.Comment         `json:"recentComments"`
}

// StanceCounts are the three stances the detail page highlights.
type StanceCounts struct {
	Supportive int `json:"supportive"`
	Opposed    int `json:"opposed"`
	Concerned  int `json:"concerned"`
}

// StakeholderShare is a stakeholder type's share of submissions.
type StakeholderShare struct {
	Type    model.StakeholderType `json:"type"`
	Count   int                   `json:"count"`
	Percent float64               `json:"percent"`
}

// ConsultationReport summarises one consultation.
type ConsultationReport struct {
	Consultation          model.Consultation      `json:"consultation"`
	TotalComments         int                     `json:"totalComments"`
	StanceDistribution    []analytics.StanceSlice `json:"stanceDistribution"`
	StanceCounts          StanceCounts            `json:"stanceCounts"`
	AverageQuality        any                     `json:"averageQuality"`
	StakeholderBreakdown  []StakeholderShare      `json:"stakeholderBreakdown"`
	QualityBands          []analytics.BandCount   `json:"qualityBands"`
	MostActiveStakeholder string                  `json:"mostActiveStakeholder"`
	WordCloud             []analytics.CloudWord   `json:"wordCloud"`
}

// CommentPage is a filtered view of a consultation's comments.
type CommentPage struct {
	ConsultationID uint            `json:"consultationId"`
	Stance         string          `json:"stance"`
	Query          string          `json:"query"`
	Shown          int             `json:"shown"`
	Total          int             `json:"total"`
	Comments       []model.Comment `json:"comments"`
}

// WordCloudReport is one stance bucket of a consultation's word cloud.
type WordCloudReport struct {
	ConsultationID uint                  `json:"consultationId"`
	Stance         string                `json:"stance"`
	Words          []analytics.CloudWord `json:"words"`
}

// StanceMix is the stance breakdown of one stakeholder type.
type StanceMix struct {
	Type    model.StakeholderType           `json:"type"`
	Total   int                             `json:"total"`
	Stances []analytics.Entry[model.Stance] `json:"stances"`
}

// QualityAverage is the mean quality of one stakeholder type.
type QualityAverage struct {
	Type    model.StakeholderType `json:"type"`
	Count   int                   `json:"count"`
	Average any                   `json:"average"`
}

// Coverage is how many of a consultation's submissions have been analysed.
type Coverage struct {
	ConsultationID uint                     `json:"consultationId"`
	Title          string                   `json:"title"`
	Analysed       int                      `json:"analysed"`
	Submissions    int                      `json:"submissions"`
	Percent        float64                  `json:"percent"`
	EndDate        string                   `json:"endDate"`
	Status         model.ConsultationStatus `json:"status"`
}

// AnalyticsReport is the cross-consultation overview.
type AnalyticsReport struct {
	TotalComments       int                   `json:"totalComments"`
	AverageQuality      any                   `json:"averageQuality"`
	StakeholderTypes    int                   `json:"stakeholderTypes"`
	TopStakeholders     []StakeholderShare    `json:"topStakeholders"`
	StanceByType        []StanceMix           `json:"stanceByType"`
	QualityByType       []QualityAverage      `json:"qualityByType"`
	Coverage            []Coverage            `json:"coverage"`
	QualityDistribution []analytics.BandCount `json:"qualityDistribution"`
	TopComments         []model.Comment       `json:"topComments"`
}

// SubmitterStat ranks one submitter.
type SubmitterStat struct {
	Name           string                `json:"name"`
	Type           model.StakeholderType `json:"type"`
	Submissions    int                   `json:"submissions"`
	AverageQuality any                   `json:"averageQuality"`
}

// StakeholderReport describes who takes part.
type StakeholderReport struct {
	Shares       []StakeholderShare `json:"shares"`
	Submitters   []SubmitterStat    `json:"submitters"`
	StanceByType []StanceMix        `json:"stanceByType"`
}

// TrendsReport holds one series per topic.
type TrendsReport struct {
	Periods []string           `json:"periods"`
	Series  []analytics.Series `json:"series"`
}

// ReportType describes a downloadable report.
type ReportType struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Formats      []string `json:"formats"`
	Size         string   `json:"size"`
	GenerateTime string   `json:"generateTime"`
}

// GeneratedReport is an entry of the recent reports list.
type GeneratedReport struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	GeneratedAt string `json:"generatedAt"`
	Size        string `json:"size"`
	Status      string `json:"status"`
}

// ReportCatalog lists available and recently generated reports.
type ReportCatalog struct {
	Types  []ReportType      `json:"types"`
	Recent []GeneratedReport `json:"recent"`
}

var reportCatalog = ReportCatalog{
	Types: []ReportType{
		{Title: "Consultation Report", Description: "Comprehensive analysis report for selected consultation", Formats: []string{"PDF", "DOCX"}, Size: "2-5 MB", GenerateTime: "30 seconds"},
		{Title: "Trend Analysis", Description: "Historical trend analysis across all consultations", Formats: []string{"PDF", "Excel"}, Size: "1-3 MB", GenerateTime: "45 seconds"},
		{Title: "Stakeholder Report", Description: "Detailed stakeholder engagement analysis", Formats: []string{"PDF", "CSV"}, Size: "500 KB - 2 MB", GenerateTime: "20 seconds"},
		{Title: "Raw Data Export", Description: "Export raw submission data for external analysis", Formats: []string{"CSV", "JSON"}, Size: "100 KB - 1 MB", GenerateTime: "10 seconds"},
	},
	Recent: []GeneratedReport{
		{Name: "Companies Amendment Bill Analysis", Type: "Consultation Report", GeneratedAt: "2025-01-15 14:30", Size: "3.2 MB", Status: "Ready"},
		{Name: "Q4 2024 Stakeholder Engagement", Type: "Stakeholder Report", GeneratedAt: "2025-01-14 09:15", Size: "1.8 MB", Status: "Ready"},
		{Name: "CSR Rules Trend Analysis", Type: "Trend Analysis", GeneratedAt: "2025-01-13 16:45", Size: "2.1 MB", Status: "Ready"},
	},
}
