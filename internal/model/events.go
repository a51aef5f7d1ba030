package model

import "github.com/deppfellow/procurement-cms/internal/validation"

// Event is a conference, webinar or roundtable.
//
// EventDate and EventTime are kept as entered by the admin ("2025-03-14",
// "09:30"); the site renders them verbatim.
type Event struct {
	Base
	Title           string     `json:"title" validate:"required,notblank"`
	Overview        *string    `json:"overview"`
	EventDate       *string    `json:"event_date"`
	EventTime       *string    `json:"event_time"`
	Venue           *string    `json:"venue"`
	RegistrationURL *string    `json:"registration_url"`
	Img             *string    `json:"img"`
	Speakers        StringList `json:"speakers"`
	KeyFeatures     StringList `json:"key_features"`
	CategoryID      *int64     `json:"category_id"`
	CategoryName    *string    `json:"category_name"`
	LocationID      *int64     `json:"location_id"`
	LocationName    *string    `json:"location_name"`
}

func (e *Event) Validate() error { return validation.Struct(e) }
func (e *Event) Label() string { return e.Title }
