package models

// Banner is a promotional carousel entry shown on the home screen.
type Banner struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(50)"`
	ImageURL string `json:"image_url" gorm:"type:text"`
	Link     string `json:"link" gorm:"type:text"`
	AltText  string `json:"alt_text" gorm:"type:varchar(255)"`
}
