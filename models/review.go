package models

type Review struct {
	ReviewID    uint   `gorm:"primaryKey" json:"review_id"`
	UserID      string `gorm:"not null;index" json:"user_id"`
	GameID      uint   `gorm:"not null;index" json:"game_id"`
	Date        string `gorm:"not null" json:"date"`
	Description string `gorm:"not null" json:"description"`
	Score       int    `gorm:"not null" json:"score"`
	Helpfulness int    `gorm:"not null;default:0" json:"helpfulness"`
}

func (Review) TableName() string { return "reviews" }

// ReviewWithGame is a review row joined with its game, used by the profile
// view and the admin listings.
type ReviewWithGame struct {
	Review
	Name    string `json:"name"`
	Genre   string `json:"genre"`
	Image   string `json:"image"`
	GameAvg *int   `json:"game_avg_score"`
}

// WriteReviewInput - review submission form
type WriteReviewInput struct {
	ReviewText string `json:"review_text" form:"review_text" validate:"required,max=200"`
	UserScore  int    `json:"user_score" form:"user_score" validate:"required,gte=1,lte=10"`
}

// DeleteReviewInput - admin deletes a review by id
type DeleteReviewInput struct {
	ReviewID uint `json:"review_id" form:"review_id" validate:"required,gte=1"`
}
