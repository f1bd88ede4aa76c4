package models

import "time"

// Favorite links a user to a film. The composite unique index backs up the
// duplicate pre-check in the service layer under concurrent adds.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_film" json:"user_id"`
	FilmID    uint      `gorm:"not null;uniqueIndex:idx_user_film" json:"film_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
