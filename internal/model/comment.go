package model

// Stance is the categorical position a stakeholder comment expresses.
type Stance string

const (
	StanceSupportive              Stance = "Supportive"
	StanceOpposed                 Stance = "Opposed"
	StanceConcerned               Stance = "Concerned"
	StanceAlternativeProposal     Stance = "Alternative Proposal"
	StanceRequestForClarification Stance = "Request for Clarification"
)

// Stances lists every stance in display order.
var Stances = []Stance{
	StanceSupportive,
	StanceOpposed,
	StanceConcerned,
	StanceAlternativeProposal,
	StanceRequestForClarification,
}

// StanceColors maps stances to their chart colour.
var StanceColors = map[Stance]string{
	StanceSupportive:              "#22c55e",
	StanceOpposed:                 "#ef4444",
	StanceConcerned:               "#f97316",
	StanceAlternativeProposal:     "#3b82f6",
	StanceRequestForClarification: "#a855f7",
}

// Valid reports whether s is one of the known stances.
func (s Stance) Valid() bool {
	_, ok := StanceColors[s]
	return ok
}

// StakeholderType is the category of a comment submitter.
type StakeholderType string

const (
	StakeholderLawFirm        StakeholderType = "Law Firm"
	StakeholderNGO            StakeholderType = "NGO"
	StakeholderIndividual     StakeholderType = "Individual"
	StakeholderIndustryBody   StakeholderType = "Industry Body"
	StakeholderConsultingFirm StakeholderType = "Consulting Firm"
	StakeholderGovernment     StakeholderType = "Government"
)

// StakeholderTypes lists every stakeholder type in display order.
var StakeholderTypes = []StakeholderType{
	StakeholderLawFirm,
	StakeholderNGO,
	StakeholderIndividual,
	StakeholderIndustryBody,
	StakeholderConsultingFirm,
	StakeholderGovernment,
}

// Valid reports whether t is one of the known stakeholder types.
func (t StakeholderType) Valid() bool {
	for _, known := range StakeholderTypes {
		if t == known {
			return true
		}
	}
	return false
}

const (
	// MinQualityScore is the lowest quality score a comment can carry.
	MinQualityScore = 0.0
	// MaxQualityScore is the highest quality score a comment can carry.
	MaxQualityScore = 5.0
)

// Comment is a stakeholder submission on a consultation.
type Comment struct {
	ID              uint            `json:"id" gorm:"primaryKey;autoIncrement:false"`
	ConsultationID  uint            `json:"consultationId" gorm:"not null;index"`
	Submitter       string          `json:"submitter" gorm:"size:255;not null"`
	StakeholderType StakeholderType `json:"stakeholderType" gorm:"type:varchar(32);not null;index"`
	Date            string          `json:"date" gorm:"size:10"`
	Stance          Stance          `json:"stance" gorm:"type:varchar(32);not null;index"`
	Summary         string          `json:"summary" gorm:"type:text"`
	QualityScore    float64         `json:"qualityScore" gorm:"not null"`
	OriginalText    string          `json:"originalText" gorm:"type:text"`
	Keywords        []string        `json:"keywords" gorm:"serializer:json"`
	Language        string          `json:"language,omitempty" gorm:"size:32"`

	Consultation Consultation `json:"-" gorm:"foreignKey:ConsultationID"`
}
