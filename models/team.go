package models

import "time"

// Team is a franchise that can be placed into a tournament group.
type Team struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}

// TeamRef is the lightweight team reference embedded in matches and groups.
type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (t Team) Ref() TeamRef {
	return TeamRef{ID: t.ID, Name: t.Name}
}
