package project

import "time"

// Project groups staff under one administrator and scopes capacity slots.
type Project struct {
	ID        string
	Name      string
	Location  *string
	AdminID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
