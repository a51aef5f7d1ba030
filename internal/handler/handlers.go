package handler

import (
	"github.com/deppfellow/procurement-cms/internal/model"
	"github.com/deppfellow/procurement-cms/internal/repository"
	"github.com/deppfellow/procurement-cms/internal/server"
	"github.com/deppfellow/procurement-cms/internal/service"
)

// Handlers groups every HTTP handler so the router takes one value.
type Handlers struct {
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	EmailPreview *EmailPreviewHandler
	Lookups      *LookupHandler
	Upload       *UploadHandler

	Consultants            *EntityHandler[*model.Consultant]
	Events                 *EntityHandler[*model.Event]
	Speakers               *EntityHandler[*model.Speaker]
	VenuePartners          *EntityHandler[*model.VenuePartner]
	LegalCompliance        *EntityHandler[*model.LegalCompliance]
	Procuretech            *EntityHandler[*model.ProcuretechSolution]
	InnovationVault        *EntityHandler[*model.InnovationVault]
	IntelligenceReports    *EntityHandler[*model.ExclusiveIntelligenceReport]
	ExclusivePartners      *EntityHandler[*model.ExclusivePartner]
	TalentHiring           *EntityHandler[*model.TalentHiring]
	VipRecruitmentPartners *EntityHandler[*model.VipRecruitmentPartner]
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		EmailPreview: &EmailPreviewHandler{},
		Lookups:      NewLookupHandler(s, services.Lookups),
		Upload:       NewUploadHandler(s, services.Upload, s.Storage),

		Consultants:            NewEntityHandler(s, services.Consultants, repository.ConsultantTable.New),
		Events:                 NewEntityHandler(s, services.Events, repository.EventTable.New),
		Speakers:               NewEntityHandler(s, services.Speakers, repository.SpeakerTable.New),
		VenuePartners:          NewEntityHandler(s, services.VenuePartners, repository.VenuePartnerTable.New),
		LegalCompliance:        NewEntityHandler(s, services.LegalCompliance, repository.LegalComplianceTable.New),
		Procuretech:            NewEntityHandler(s, services.Procuretech, repository.ProcuretechTable.New),
		InnovationVault:        NewEntityHandler(s, services.InnovationVault, repository.InnovationVaultTable.New),
		IntelligenceReports:    NewEntityHandler(s, services.IntelligenceReports, repository.IntelligenceReportTable.New),
		ExclusivePartners:      NewEntityHandler(s, services.ExclusivePartners, repository.ExclusivePartnerTable.New),
		TalentHiring:           NewEntityHandler(s, services.TalentHiring, repository.TalentHiringTable.New),
		VipRecruitmentPartners: NewEntityHandler(s, services.VipRecruitmentPartners, repository.VipRecruitmentPartnerTable.New),
	}
}
