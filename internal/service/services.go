// Package service contains the business logic.
//
// It sits between the handler and repository layers. Entity services add
// the side effects a plain repository call does not have: queueing cleanup
// of stored files after a delete and admin notifications after a change.
package service

import (
	"github.com/deppfellow/procurement-cms/internal/model"
	"github.com/deppfellow/procurement-cms/internal/repository"
	"github.com/deppfellow/procurement-cms/internal/server"
)

type Services struct {
	Consultants            *EntityService[*model.Consultant]
	Events                 *EntityService[*model.Event]
	Speakers               *EntityService[*model.Speaker]
	VenuePartners          *EntityService[*model.VenuePartner]
	LegalCompliance        *EntityService[*model.LegalCompliance]
	Procuretech            *EntityService[*model.ProcuretechSolution]
	InnovationVault        *EntityService[*model.InnovationVault]
	IntelligenceReports    *EntityService[*model.ExclusiveIntelligenceReport]
	ExclusivePartners      *EntityService[*model.ExclusivePartner]
	TalentHiring           *EntityService[*model.TalentHiring]
	VipRecruitmentPartners *EntityService[*model.VipRecruitmentPartner]

	Lookups *LookupService
	Upload  *UploadService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var jobs Jobs
	if s.Job != nil {
		jobs = s.Job
	}
	return newServices(repos, jobs, NewUploadService(s.Storage)), nil
}

func newServices(repos *repository.Repositories, jobs Jobs, upload *UploadService) *Services {
	return &Services{
		Consultants:            forRepository(repos.Consultants, jobs),
		Events:                 forRepository(repos.Events, jobs),
		Speakers:               forRepository(repos.Speakers, jobs),
		VenuePartners:          forRepository(repos.VenuePartners, jobs),
		LegalCompliance:        forRepository(repos.LegalCompliance, jobs),
		Procuretech:            forRepository(repos.Procuretech, jobs),
		InnovationVault:        forRepository(repos.InnovationVault, jobs),
		IntelligenceReports:    forRepository(repos.IntelligenceReports, jobs),
		ExclusivePartners:      forRepository(repos.ExclusivePartners, jobs),
		TalentHiring:           forRepository(repos.TalentHiring, jobs),
		VipRecruitmentPartners: forRepository(repos.VipRecruitmentPartners, jobs),
		Lookups:                NewLookupService(repos.Lookups),
		Upload:                 upload,
	}
}

func forRepository[T model.Entity](repo *repository.CRUD[T], jobs Jobs) *EntityService[T] {
	return NewEntityService[T](repo, repo.Table().DisplayName(), jobs)
}
