package model

import "github.com/deppfellow/procurement-cms/internal/validation"

// VenuePartner is a venue available for events.
type VenuePartner struct {
	Base
	Name                string     `json:"name" validate:"required,notblank"`
	Overview            *string    `json:"overview"`
	Website             *string    `json:"website"`
	Email               *string    `json:"email"`
	Img                 *string    `json:"img"`
	KeyFeatures         StringList `json:"key_features"`
	CollaborationImages StringList `json:"collaboration_images"`
	LocationID          *int64     `json:"location_id"`
	LocationName        *string    `json:"location_name"`
	CapacityID          *int64     `json:"capacity_id"`
	CapacityName        *string    `json:"capacity_name"`
	AmenityID           *int64     `json:"amenity_id"`
	AmenityName         *string    `json:"amenity_name"`
}

func (v *VenuePartner) Validate() error { return validation.Struct(v) }
func (v *VenuePartner) Label() string { return v.Name }

// LegalCompliance is a legal or compliance firm listing.
type LegalCompliance struct {
	Base
	Name         string     `json:"name" validate:"required,notblank"`
	Overview     *string    `json:"overview"`
	Email        *string    `json:"email"`
	Website      *string    `json:"website"`
	Img          *string    `json:"img"`
	KeyFeatures  StringList `json:"key_features"`
	IndustryID   *int64     `json:"industry_id"`
	IndustryName *string    `json:"industry_name"`
	LocationID   *int64     `json:"location_id"`
	LocationName *string    `json:"location_name"`
}

func (l *LegalCompliance) Validate() error { return validation.Struct(l) }
func (l *LegalCompliance) Label() string { return l.Name }

// ExclusivePartner is a featured partner organisation.
type ExclusivePartner struct {
	Base
	Name         string     `json:"name" validate:"required,notblank"`
	Overview     *string    `json:"overview"`
	Website      *string    `json:"website"`
	Logo         *string    `json:"logo"`
	KeyFeatures  StringList `json:"key_features"`
	IndustryID   *int64     `json:"industry_id"`
	IndustryName *string    `json:"industry_name"`
}

func (e *ExclusivePartner) Validate() error { return validation.Struct(e) }
func (e *ExclusivePartner) Label() string { return e.Name }

// VipRecruitmentPartner is a recruitment agency in the VIP programme.
type VipRecruitmentPartner struct {
	Base
	Name                string     `json:"name" validate:"required,notblank"`
	Overview            *string    `json:"overview"`
	Website             *string    `json:"website"`
	Logo                *string    `json:"logo"`
	CollaborationImages StringList `json:"collaboration_images"`
	IndustryID          *int64     `json:"industry_id"`
	IndustryName        *string    `json:"industry_name"`
	LocationID          *int64     `json:"location_id"`
	LocationName        *string    `json:"location_name"`
}

func (v *VipRecruitmentPartner) Validate() error { return validation.Struct(v) }
func (v *VipRecruitmentPartner) Label() string { return v.Name }
