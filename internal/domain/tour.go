package domain

import "time"

type Tour struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Destination  string    `json:"destination"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration_days"`
	Available    bool      `json:"available"`
	Features     []string  `json:"features"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TourInput struct {
	Title        string   `json:"title"`
	Destination  string   `json:"destination"`
	Description  *string  `json:"description"`
	Price        float64  `json:"price"`
	DurationDays int      `json:"duration_days"`
	Available    bool     `json:"available"`
	Features     []string `json:"features"`
}
