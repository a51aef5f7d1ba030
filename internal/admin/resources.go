package admin

import "github.com/deppfellow/procurement-cms/internal/model"

// Resource describes how the panel edits one entity.
type Resource[T model.Entity] struct {
	// Path under the API root, e.g. "speakers".
	Path string
	Name string
	// LabelField is the required JSON field, "name" or "title".
	LabelField string
	// FileField is the JSON field holding the record's single file URL;
	// empty when the form has no upload.
	FileField string
	// Folder groups uploads in the object store.
	Folder string
	New    func() T
	// Search returns the text the list filter matches against.
	Search func(T) []string
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var (
	Consultants = Resource[*model.Consultant]{
		Path: "consultants", Name: "Consultant", LabelField: "name", FileField: "img", Folder: "consultants",
		New: func() *model.Consultant { return &model.Consultant{} },
		Search: func(c *model.Consultant) []string {
			return []string{c.Name, str(c.Company), str(c.Title), str(c.IndustryName)}
		},
	}

	Events = Resource[*model.Event]{
		Path: "events", Name: "Event", LabelField: "title", FileField: "img", Folder: "events",
		New: func() *model.Event { return &model.Event{} },
		Search: func(e *model.Event) []string {
			return []string{e.Title, str(e.Venue), str(e.LocationName)}
		},
	}

	Speakers = Resource[*model.Speaker]{
		Path: "speakers", Name: "Speaker", LabelField: "name", FileField: "img", Folder: "speakers",
		New: func() *model.Speaker { return &model.Speaker{} },
		Search: func(s *model.Speaker) []string {
			return []string{s.Name, str(s.Company), str(s.Title)}
		},
	}

	VenuePartners = Resource[*model.VenuePartner]{
		Path: "venue-partners", Name: "Venue Partner", LabelField: "name", FileField: "img", Folder: "venue-partners",
		New: func() *model.VenuePartner { return &model.VenuePartner{} },
		Search: func(v *model.VenuePartner) []string {
			return []string{v.Name, str(v.LocationName), str(v.CapacityName)}
		},
	}

	LegalCompliance = Resource[*model.LegalCompliance]{
		Path: "legal-compliance", Name: "Legal Compliance", LabelField: "name", FileField: "img", Folder: "legal-compliance",
		New: func() *model.LegalCompliance { return &model.LegalCompliance{} },
		Search: func(l *model.LegalCompliance) []string {
			return []string{l.Name, str(l.IndustryName), str(l.LocationName)}
		},
	}

	Procuretech = Resource[*model.ProcuretechSolution]{
		Path: "procuretech", Name: "Procuretech Solution", LabelField: "name", FileField: "logo", Folder: "procuretech",
		New: func() *model.ProcuretechSolution { return &model.ProcuretechSolution{} },
		Search: func(p *model.ProcuretechSolution) []string {
			return []string{p.Name, str(p.CategoryName)}
		},
	}

	InnovationVault = Resource[*model.InnovationVault]{
		Path: "innovation-vault", Name: "Innovation Vault", LabelField: "title", FileField: "img", Folder: "innovation-vault",
		New: func() *model.InnovationVault { return &model.InnovationVault{} },
		Search: func(i *model.InnovationVault) []string {
			return []string{i.Title, str(i.CategoryName)}
		},
	}

	IntelligenceReports = Resource[*model.ExclusiveIntelligenceReport]{
		Path: "intelligence-reports", Name: "Intelligence Report", LabelField: "title", FileField: "report_url", Folder: "reports",
		New: func() *model.ExclusiveIntelligenceReport { return &model.ExclusiveIntelligenceReport{} },
		Search: func(r *model.ExclusiveIntelligenceReport) []string {
			return []string{r.Title, str(r.IndustryName), str(r.PublishedDate)}
		},
	}

	ExclusivePartners = Resource[*model.ExclusivePartner]{
		Path: "exclusive-partners", Name: "Exclusive Partner", LabelField: "name", FileField: "logo", Folder: "exclusive-partners",
		New: func() *model.ExclusivePartner { return &model.ExclusivePartner{} },
		Search: func(e *model.ExclusivePartner) []string {
			return []string{e.Name, str(e.IndustryName)}
		},
	}

	TalentHiring = Resource[*model.TalentHiring]{
		Path: "talent-hiring", Name: "Talent Hiring", LabelField: "name", FileField: "img", Folder: "talent-hiring",
		New: func() *model.TalentHiring { return &model.TalentHiring{} },
		Search: func(t *model.TalentHiring) []string {
			return []string{t.Name, str(t.Title), str(t.IndustryName), str(t.LocationName)}
		},
	}

	VipRecruitmentPartners = Resource[*model.VipRecruitmentPartner]{
		Path: "vip-recruitment-partners", Name: "VIP Recruitment Partner", LabelField: "name", FileField: "logo", Folder: "vip-recruitment-partners",
		New: func() *model.VipRecruitmentPartner { return &model.VipRecruitmentPartner{} },
		Search: func(v *model.VipRecruitmentPartner) []string {
			return []string{v.Name, str(v.IndustryName), str(v.LocationName)}
		},
	}
)
