package model

// WordCloudAll is the stance bucket covering every comment of a consultation.
const WordCloudAll = "All"

// WordCloudEntry is one weighted term of a consultation's word cloud.
type WordCloudEntry struct {
	ID             uint   `json:"-" gorm:"primaryKey"`
	ConsultationID uint   `json:"-" gorm:"not null;index:idx_word_cloud_bucket"`
	Stance         string `json:"-" gorm:"size:32;not null;index:idx_word_cloud_bucket"`
	Text           string `json:"text" gorm:"size:255;not null"`
	Value          int    `json:"value" gorm:"not null"`
}

// TrendPoint is one observation of a topic in a period.
type TrendPoint struct {
	ID     uint   `json:"-" gorm:"primaryKey"`
	Period string `json:"period" gorm:"size:16;not null;index"`
	Topic  string `json:"topic" gorm:"size:128;not null;index"`
	Value  int    `json:"value" gorm:"not null"`
}

// AccessLog records a past sign-in of the analyst account.
type AccessLog struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Date     string `json:"date" gorm:"size:19"`
	IP       string `json:"ip" gorm:"size:45"`
	Location string `json:"location" gorm:"size:128"`
	Device   string `json:"device" gorm:"size:128"`
}
