// Package repository runs the SQL behind the CMS.
//
// Every entity table goes through the same generic CRUD type; what differs
// per entity is its Table descriptor in tables.go. Rows are never removed:
// delete sets deleted_at and every read filters on it.
package repository

import (
	"github.com/deppfellow/procurement-cms/internal/model"
	"github.com/deppfellow/procurement-cms/internal/server"
)

// Repositories holds one repository per table.
type Repositories struct {
	Consultants            *CRUD[*model.Consultant]
	Events                 *CRUD[*model.Event]
	Speakers               *CRUD[*model.Speaker]
	VenuePartners          *CRUD[*model.VenuePartner]
	LegalCompliance        *CRUD[*model.LegalCompliance]
	Procuretech            *CRUD[*model.ProcuretechSolution]
	InnovationVault        *CRUD[*model.InnovationVault]
	IntelligenceReports    *CRUD[*model.ExclusiveIntelligenceReport]
	ExclusivePartners      *CRUD[*model.ExclusivePartner]
	TalentHiring           *CRUD[*model.TalentHiring]
	VipRecruitmentPartners *CRUD[*model.VipRecruitmentPartner]
	Lookups                *LookupRepository
}

// NewRepositories wires every repository to the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool, nil)
}

// New builds the repositories on any DBTX with the given clock.
func New(db DBTX, now Clock) *Repositories {
	return &Repositories{
		Consultants:            NewCRUD(db, ConsultantTable, now),
		Events:                 NewCRUD(db, EventTable, now),
		Speakers:               NewCRUD(db, SpeakerTable, now),
		VenuePartners:          NewCRUD(db, VenuePartnerTable, now),
		LegalCompliance:        NewCRUD(db, LegalComplianceTable, now),
		Procuretech:            NewCRUD(db, ProcuretechTable, now),
		InnovationVault:        NewCRUD(db, InnovationVaultTable, now),
		IntelligenceReports:    NewCRUD(db, IntelligenceReportTable, now),
		ExclusivePartners:      NewCRUD(db, ExclusivePartnerTable, now),
		TalentHiring:           NewCRUD(db, TalentHiringTable, now),
		VipRecruitmentPartners: NewCRUD(db, VipRecruitmentPartnerTable, now),
		Lookups:                NewLookupRepository(db),
	}
}
