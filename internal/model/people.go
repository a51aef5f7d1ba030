package model

import "github.com/deppfellow/procurement-cms/internal/validation"

// Consultant is a procurement advisor listed in the directory.
type Consultant struct {
	Base
	Name         string     `json:"name" validate:"required,notblank"`
	Title        *string    `json:"title"`
	Company      *string    `json:"company"`
	Overview     *string    `json:"overview"`
	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	LinkedinURL  *string    `json:"linkedin_url"`
	Img          *string    `json:"img"`
	Expertise    StringList `json:"expertise"`
	IndustryID   *int64     `json:"industry_id"`
	IndustryName *string    `json:"industry_name"`
	LocationID   *int64     `json:"location_id"`
	LocationName *string    `json:"location_name"`
}

func (c *Consultant) Validate() error { return validation.Struct(c) }
func (c *Consultant) Label() string { return c.Name }

// Speaker is a person appearing at events.
type Speaker struct {
	Base
	Name        string  `json:"name" validate:"required,notblank"`
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Bio         *string `json:"bio"`
	LinkedinURL *string `json:"linkedin_url"`
	Img         *string `json:"img"`
}

func (s *Speaker) Validate() error { return validation.Struct(s) }
func (s *Speaker) Label() string { return s.Name }

// TalentHiring is a talent and hiring decision-maker listing.
type TalentHiring struct {
	Base
	Name         string     `json:"name" validate:"required,notblank"`
	Title        *string    `json:"title"`
	Overview     *string    `json:"overview"`
	Email        *string    `json:"email"`
	Img          *string    `json:"img"`
	KeyFeatures  StringList `json:"key_features"`
	IndustryID   *int64     `json:"industry_id"`
	IndustryName *string    `json:"industry_name"`
	LocationID   *int64     `json:"location_id"`
	LocationName *string    `json:"location_name"`
}

func (t *TalentHiring) Validate() error { return validation.Struct(t) }
func (t *TalentHiring) Label() string { return t.Name }
