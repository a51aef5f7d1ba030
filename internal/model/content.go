package model

import "github.com/deppfellow/procurement-cms/internal/validation"

// ProcuretechSolution is a procurement software vendor.
type ProcuretechSolution struct {
	Base
	Name         string     `json:"name" validate:"required,notblank"`
	Overview     *string    `json:"overview"`
	Website      *string    `json:"website"`
	FoundedYear  *int       `json:"founded_year"`
	Logo         *string    `json:"logo"`
	KeyFeatures  StringList `json:"key_features"`
	CategoryID   *int64     `json:"category_id"`
	CategoryName *string    `json:"category_name"`
}

func (p *ProcuretechSolution) Validate() error { return validation.Struct(p) }
func (p *ProcuretechSolution) Label() string { return p.Name }

// InnovationVault is a showcase entry, usually a video.
type InnovationVault struct {
	Base
	Title        string     `json:"title" validate:"required,notblank"`
	Overview     *string    `json:"overview"`
	VideoURL     *string    `json:"video_url"`
	Img          *string    `json:"img"`
	KeyFeatures  StringList `json:"key_features"`
	CategoryID   *int64     `json:"category_id"`
	CategoryName *string    `json:"category_name"`
}

func (i *InnovationVault) Validate() error { return validation.Struct(i) }
func (i *InnovationVault) Label() string { return i.Title }

// ExclusiveIntelligenceReport is a downloadable market report. ReportURL
// points at the stored document.
type ExclusiveIntelligenceReport struct {
	Base
	Title         string     `json:"title" validate:"required,notblank"`
	Overview      *string    `json:"overview"`
	PublishedDate *string    `json:"published_date"`
	ReportURL     *string    `json:"report_url"`
	Img           *string    `json:"img"`
	KeyFindings   StringList `json:"key_findings"`
	IndustryID    *int64     `json:"industry_id"`
	IndustryName  *string    `json:"industry_name"`
}

func (r *ExclusiveIntelligenceReport) Validate() error { return validation.Struct(r) }
func (r *ExclusiveIntelligenceReport) Label() string { return r.Title }
