// Package dataset holds the compiled-in consultation catalog served by the dashboard.
package dataset

import (
	"github.com/gosimple/slug"

	"saaransh/internal/model"
)

var consultations = []model.Consultation{
	{
		ID:          1,
		Title:       "Draft Companies (Amendment) Bill, 2025",
		Status:      model.ConsultationStatusAnalysisComplete,
		Submissions: 1345,
		EndDate:     "2025-08-31",
		Progress:    100,
		Description: "Proposed amendments to strengthen corporate governance and transparency",
		PublishDate: "2025-07-15",
	},
	{
		ID:          2,
		Title:       "Rules on Corporate Social Responsibility (CSR)",
		Status:      model.ConsultationStatusInProgress,
		Submissions: 782,
		EndDate:     "2025-09-20",
		Progress:    75,
		Description: "New guidelines for CSR implementation and reporting",
		PublishDate: "2025-08-01",
	},
	{
		ID:          3,
		Title:       "Insolvency & Bankruptcy Code (Second Amendment)",
		Status:      model.ConsultationStatusCompleted,
		Submissions: 2109,
		EndDate:     "2025-07-15",
		Progress:    100,
		Description: "Amendments to improve the insolvency resolution process",
		PublishDate: "2025-06-01",
	},
}

var comments = []model.Comment{
	{
		ID:              101,
		ConsultationID:  1,
		Submitter:       "Apex Law Associates",
		StakeholderType: model.StakeholderLawFirm,
		Date:            "2025-08-15",
		Stance:          model.StanceOpposed,
		Summary:         "Argues Section 185 amendments are overly restrictive for startups and suggests a higher threshold.",
		QualityScore:    4.8,
		OriginalText:    "To the Ministry of Corporate Affairs,\n\nRegarding the Draft Companies (Amendment) Bill, 2025, our firm wishes to express significant concerns about the proposed changes to Section 185...",
		Keywords:        []string{"Section 185", "Director Loans", "Startup Financing"},
	},
	{
		ID:              102,
		ConsultationID:  1,
		Submitter:       "Good Governance Foundation",
		StakeholderType: model.StakeholderNGO,
		Date:            "2025-08-20",
		Stance:          model.StanceSupportive,
		Summary:         "Supports increased disclosure norms for related party transactions to enhance transparency.",
		QualityScore:    4.2,
		OriginalText:    "We at the Good Governance Foundation commend the Ministry for the proposed enhancements to disclosure norms...",
		Keywords:        []string{"Disclosure Norms", "Transparency", "Minority Shareholders"},
	},
	{
		ID:              103,
		ConsultationID:  1,
		Submitter:       "Priya Sharma",
		StakeholderType: model.StakeholderIndividual,
		Date:            "2025-08-18",
		Stance:          model.StanceConcerned,
		Summary:         "Expresses concern about implementation of Section 145 for small businesses due to high compliance costs.",
		QualityScore:    3.5,
		OriginalText:    "Sir, Section 145 ka implementation aasan nahi hoga, especially small businesses ke liye. Isse compliance costs bahut badh jayenge...",
		Keywords:        []string{"Section 145", "Small Businesses", "Compliance Costs"},
		Language:        "Hinglish",
	},
	{
		ID:              104,
		ConsultationID:  1,
		Submitter:       "Federation of Indian Industries",
		StakeholderType: model.StakeholderIndustryBody,
		Date:            "2025-08-22",
		Stance:          model.StanceAlternativeProposal,
		Summary:         "Proposes a centralized, government-managed pool for appointing independent directors.",
		QualityScore:    4.5,
		OriginalText:    "While we appreciate the intent behind the new rules for independent directors, we propose an alternative mechanism...",
		Keywords:        []string{"Independent Directors", "Centralized Pool", "Corporate Governance"},
	},
	{
		ID:              105,
		ConsultationID:  1,
		Submitter:       "ABC Consulting",
		StakeholderType: model.StakeholderConsultingFirm,
		Date:            "2025-08-25",
		Stance:          model.StanceRequestForClarification,
		Summary:         "Seeks clarification on the definition of \"significant beneficial owner\" to avoid compliance challenges.",
		QualityScore:    4.0,
		OriginalText:    "We request clarification regarding the definition of \"significant beneficial owner\" (SBO)...",
		Keywords:        []string{"SBO", "Clarification", "Compliance"},
	},
	{
		ID:              201,
		ConsultationID:  2,
		Submitter:       "Green Earth Initiative",
		StakeholderType: model.StakeholderNGO,
		Date:            "2025-09-10",
		Stance:          model.StanceSupportive,
		Summary:         "Supports the new CSR rules.",
		QualityScore:    4.1,
		OriginalText:    "The new CSR rules are a welcome change.",
		Keywords:        []string{"CSR", "Environment"},
	},
	{
		ID:              301,
		ConsultationID:  3,
		Submitter:       "National Creditors Association",
		StakeholderType: model.StakeholderIndustryBody,
		Date:            "2025-07-10",
		Stance:          model.StanceOpposed,
		Summary:         "Opposes the proposed changes to the IBC.",
		QualityScore:    4.9,
		OriginalText:    "The proposed amendments to the IBC fundamentally weaken the position of financial creditors.",
		Keywords:        []string{"IBC", "Creditor Rights"},
	},
}

type cloudTerm struct {
	text  string
	value int
}

// wordClouds is keyed by consultation, then by stance bucket. Order within a bucket is authoring order.
var wordClouds = map[uint][]struct {
	bucket string
	terms  []cloudTerm
}{
	1: {
		{model.WordCloudAll, []cloudTerm{
			{"Director Liability", 95},
			{"Related Party Transactions", 88},
			{"Corporate Governance", 85},
			{"Compliance Costs", 75},
			{"Minority Shareholders", 72},
			{"Section 185", 68},
		}},
		{string(model.StanceSupportive), []cloudTerm{
			{"Transparency", 80},
			{"Accountability", 70},
			{"Minority Shareholders", 65},
		}},
		{string(model.StanceOpposed), []cloudTerm{
			{"Restrictive Conditions", 90},
			{"Section 185", 85},
			{"Startup Financing", 75},
		}},
		{string(model.StanceConcerned), []cloudTerm{
			{"Compliance Costs", 85},
			{"Small Businesses", 78},
			{"Section 145", 70},
		}},
		{string(model.StanceAlternativeProposal), []cloudTerm{
			{"Independent Directors", 92},
			{"Centralized Pool", 85},
		}},
		{string(model.StanceRequestForClarification), []cloudTerm{
			{"SBO", 88},
			{"Ambiguity", 80},
		}},
	},
}

var trendSeries = []struct {
	period string
	values map[string]int
}{
	{"2021", map[string]int{TopicDataPrivacy: 230, TopicCSRCompliance: 400}},
	{"2022", map[string]int{TopicDataPrivacy: 280, TopicCSRCompliance: 350}},
	{"2023", map[string]int{TopicDataPrivacy: 250, TopicCSRCompliance: 300}},
	{"2024", map[string]int{TopicDataPrivacy: 310, TopicCSRCompliance: 550}},
	{"2025", map[string]int{TopicDataPrivacy: 450, TopicCSRCompliance: 250}},
}

const (
	// TopicDataPrivacy is the trend topic tracking data privacy concerns.
	TopicDataPrivacy = "Data Privacy Concerns"
	// TopicCSRCompliance is the trend topic tracking CSR compliance feedback.
	TopicCSRCompliance = "CSR Compliance"
)

// TrendTopics lists trend topics in display order.
var TrendTopics = []string{TopicDataPrivacy, TopicCSRCompliance}

var accessLogs = []model.AccessLog{
	{ID: 1, Date: "2025-09-20 01:17:05", IP: "103.22.201.12", Location: "Delhi, India", Device: "Chrome on Windows"},
	{ID: 2, Date: "2025-09-19 11:45:12", IP: "103.22.201.12", Location: "Delhi, India", Device: "Chrome on Windows"},
	{ID: 3, Date: "2025-09-18 09:22:34", IP: "45.115.18.2", Location: "Mumbai, India", Device: "Safari on macOS"},
}

// Consultations returns a copy of the consultation list with slugs filled in.
func Consultations() []model.Consultation {
	out := make([]model.Consultation, len(consultations))
	copy(out, consultations)
	for i := range out {
		out[i].Slug = slug.Make(out[i].Title)
	}
	return out
}

// Comments returns a copy of every comment, grouped by consultation in catalog order.
func Comments() []model.Comment {
	out := make([]model.Comment, len(comments))
	for i, c := range comments {
		c.Keywords = append([]string(nil), c.Keywords...)
		out[i] = c
	}
	return out
}

// WordClouds returns every word-cloud entry in authoring order.
func WordClouds() []model.WordCloudEntry {
	var out []model.WordCloudEntry
	for _, c := range consultations {
		for _, bucket := range wordClouds[c.ID] {
			for _, term := range bucket.terms {
				out = append(out, model.WordCloudEntry{
					ConsultationID: c.ID,
					Stance:         bucket.bucket,
					Text:           term.text,
					Value:          term.value,
				})
			}
		}
	}
	return out
}

// Trends returns the trend observations in period order, topics in TrendTopics order.
func Trends() []model.TrendPoint {
	out := make([]model.TrendPoint, 0, len(trendSeries)*len(TrendTopics))
	for _, p := range trendSeries {
		for _, topic := range TrendTopics {
			out = append(out, model.TrendPoint{Period: p.period, Topic: topic, Value: p.values[topic]})
		}
	}
	return out
}

// AccessLogs returns a copy of the access log.
func AccessLogs() []model.AccessLog {
	out := make([]model.AccessLog, len(accessLogs))
	copy(out, accessLogs)
	return out
}

// Catalog is the complete compiled-in dataset.
type Catalog struct {
	Consultations []model.Consultation
	Comments      []model.Comment
	WordClouds    []model.WordCloudEntry
	Trends        []model.TrendPoint
	AccessLogs    []model.AccessLog
}

// Load returns fresh copies of every collection.
func Load() Catalog {
	return Catalog{
		Consultations: Consultations(),
		Comments:      Comments(),
		WordClouds:    WordClouds(),
		Trends:        Trends(),
		AccessLogs:    AccessLogs(),
	}
}

// Validate checks the catalog's consultations and comments.
func (c Catalog) Validate() error {
	return Validate(c.Consultations, c.Comments)
}
