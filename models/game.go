package models

// Game is a catalog entry. AvgScore is derived from reviews on a 0-100 scale
// and stays NULL until the first review lands.
type Game struct {
	GameID      uint   `gorm:"primaryKey" json:"game_id"`
	Name        string `gorm:"not null" json:"name"`
	Genre       string `gorm:"not null" json:"genre"`
	ReleaseDate string `gorm:"not null" json:"release_date"`
	Developer   string `json:"developer"`
	Publisher   string `json:"publisher"`
	AvgScore    *int   `json:"avg_score"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (Game) TableName() string { return "games" }

// AddGameInput - admin add-game form
type AddGameInput struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Genre       string `json:"genre" form:"genre" validate:"required"`
	ReleaseDate string `json:"release_date" form:"release_date" validate:"required,datetime=2006-01-02"`
	Developer   string `json:"developer" form:"developer" validate:"required"`
	Publisher   string `json:"publisher" form:"publisher" validate:"required"`
	Image       string `json:"image" form:"image"`
	Description string `json:"description" form:"description" validate:"required"`
}

// DeleteGameInput - admin deletes a game by id
type DeleteGameInput struct {
	GameID uint `json:"game_id" form:"game_id" validate:"required,gte=1"`
}
