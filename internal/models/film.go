package models

import (
	"time"
)

type Film struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title       string    `gorm:"not null;index" json:"title" example:"Castle in the Sky"`
	MovieBanner string    `gorm:"not null" json:"movie_banner" example:"https://storage.example.com/films/castle.jpg"`
	Description string    `gorm:"type:text;not null" json:"description" example:"A young boy and a girl with a magic crystal..."`
	Director    string    `gorm:"not null" json:"director" example:"Hayao Miyazaki"`
	Producer    string    `gorm:"not null" json:"producer" example:"Isao Takahata"`
	ReleaseDate int       `gorm:"not null;index" json:"release_date" example:"1986"`
	RTScore     int       `gorm:"not null;index" json:"rt_score" example:"95"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Film) TableName() string {
	return "films"
}
