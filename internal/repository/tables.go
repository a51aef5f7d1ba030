package repository

import "github.com/deppfellow/procurement-cms/internal/model"

var (
	industryLookup = Lookup{Column: "industry_id", Table: model.LookupIndustries, As: "industry_name"}
	locationLookup = Lookup{Column: "location_id", Table: model.LookupLocations, As: "location_name"}
	categoryLookup = Lookup{Column: "category_id", Table: model.LookupCategories, As: "category_name"}
	capacityLookup = Lookup{Column: "capacity_id", Table: model.LookupCapacities, As: "capacity_name"}
	amenityLookup  = Lookup{Column: "amenity_id", Table: model.LookupAmenities, As: "amenity_name"}

	imgFile           = FileColumn{Name: "img"}
	logoFile          = FileColumn{Name: "logo"}
	reportFile        = FileColumn{Name: "report_url"}
	collaborationFile = FileColumn{Name: "collaboration_images", List: true}
)

var ConsultantTable = Table[*model.Consultant]{
	Name:     "consultants",
	Singular: "consultant",
	Plural:   "consultants",
	Columns: []string{
		"name", "title", "company", "overview", "email", "phone",
		"linkedin_url", "img", "expertise", "industry_id", "location_id",
	},
	Lookups: []Lookup{industryLookup, locationLookup},
	Files:   []FileColumn{imgFile},
	New:     func() *model.Consultant { return &model.Consultant{} },
	Values: func(c *model.Consultant) []any {
		return []any{
			c.Name, c.Title, c.Company, c.Overview, c.Email, c.Phone,
			c.LinkedinURL, c.Img, c.Expertise, c.IndustryID, c.LocationID,
		}
	},
	Targets: func(c *model.Consultant) []any {
		return []any{
			&c.Name, &c.Title, &c.Company, &c.Overview, &c.Email, &c.Phone,
			&c.LinkedinURL, &c.Img, &c.Expertise, &c.IndustryID, &c.LocationID,
			&c.IndustryName, &c.LocationName,
		}
	},
}

var EventTable = Table[*model.Event]{
	Name:     "events",
	Singular: "event",
	Plural:   "events",
	Columns: []string{
		"title", "overview", "event_date", "event_time", "venue", "registration_url",
		"img", "speakers", "key_features", "category_id", "location_id",
	},
	Lookups: []Lookup{categoryLookup, locationLookup},
	Files:   []FileColumn{imgFile},
	New:     func() *model.Event { return &model.Event{} },
	Values: func(e *model.Event) []any {
		return []any{
			e.Title, e.Overview, e.EventDate, e.EventTime, e.Venue, e.RegistrationURL,
			e.Img, e.Speakers, e.KeyFeatures, e.CategoryID, e.LocationID,
		}
	},
	Targets: func(e *model.Event) []any {
		return []any{
			&e.Title, &e.Overview, &e.EventDate, &e.EventTime, &e.Venue, &e.RegistrationURL,
			&e.Img, &e.Speakers, &e.KeyFeatures, &e.CategoryID, &e.LocationID,
			&e.CategoryName, &e.LocationName,
		}
	},
}

var SpeakerTable = Table[*model.Speaker]{
	Name:     "speakers",
	Singular: "speaker",
	Plural:   "speakers",
	Columns:  []string{"name", "title", "company", "bio", "linkedin_url", "img"},
	Files:    []FileColumn{imgFile},
	New:      func() *model.Speaker { return &model.Speaker{} },
	Values: func(s *model.Speaker) []any {
		return []any{s.Name, s.Title, s.Company, s.Bio, s.LinkedinURL, s.Img}
	},
	Targets: func(s *model.Speaker) []any {
		return []any{&s.Name, &s.Title, &s.Company, &s.Bio, &s.LinkedinURL, &s.Img}
	},
}

var VenuePartnerTable = Table[*model.VenuePartner]{
	Name:     "venue_partners",
	Singular: "venue partner",
	Plural:   "venue partners",
	Columns: []string{
		"name", "overview", "website", "email", "img", "key_features",
		"collaboration_images", "location_id", "capacity_id", "amenity_id",
	},
	Lookups: []Lookup{locationLookup, capacityLookup, amenityLookup},
	Files:   []FileColumn{imgFile, collaborationFile},
	New:     func() *model.VenuePartner { return &model.VenuePartner{} },
	Values: func(v *model.VenuePartner) []any {
		return []any{
			v.Name, v.Overview, v.Website, v.Email, v.Img, v.KeyFeatures,
			v.CollaborationImages, v.LocationID, v.CapacityID, v.AmenityID,
		}
	},
	Targets: func(v *model.VenuePartner) []any {
		return []any{
			&v.Name, &v.Overview, &v.Website, &v.Email, &v.Img, &v.KeyFeatures,
			&v.CollaborationImages, &v.LocationID, &v.CapacityID, &v.AmenityID,
			&v.LocationName, &v.CapacityName, &v.AmenityName,
		}
	},
}

var LegalComplianceTable = Table[*model.LegalCompliance]{
	Name:     "legal_compliance",
	Singular: "legal compliance entry",
	Plural:   "legal compliance entries",
	Columns: []string{
		"name", "overview", "email", "website", "img", "key_features",
		"industry_id", "location_id",
	},
	Lookups: []Lookup{industryLookup, locationLookup},
	Files:   []FileColumn{imgFile},
	New:     func() *model.LegalCompliance { return &model.LegalCompliance{} },
	Values: func(l *model.LegalCompliance) []any {
		return []any{
			l.Name, l.Overview, l.Email, l.Website, l.Img, l.KeyFeatures,
			l.IndustryID, l.LocationID,
		}
	},
	Targets: func(l *model.LegalCompliance) []any {
		return []any{
			&l.Name, &l.Overview, &l.Email, &l.Website, &l.Img, &l.KeyFeatures,
			&l.IndustryID, &l.LocationID,
			&l.IndustryName, &l.LocationName,
		}
	},
}

var ProcuretechTable = Table[*model.ProcuretechSolution]{
	Name:     "procuretech_solutions",
	Singular: "procuretech solution",
	Plural:   "procuretech solutions",
	Columns:  []string{"name", "overview", "website", "founded_year", "logo", "key_features", "category_id"},
	Lookups:  []Lookup{categoryLookup},
	Files:    []FileColumn{logoFile},
	New:      func() *model.ProcuretechSolution { return &model.ProcuretechSolution{} },
	Values: func(p *model.ProcuretechSolution) []any {
		return []any{p.Name, p.Overview, p.Website, p.FoundedYear, p.Logo, p.KeyFeatures, p.CategoryID}
	},
	Targets: func(p *model.ProcuretechSolution) []any {
		return []any{
			&p.Name, &p.Overview, &p.Website, &p.FoundedYear, &p.Logo, &p.KeyFeatures, &p.CategoryID,
			&p.CategoryName,
		}
	},
}

var InnovationVaultTable = Table[*model.InnovationVault]{
	Name:     "innovation_vault",
	Singular: "innovation vault item",
	Plural:   "innovation vault items",
	Columns:  []string{"title", "overview", "video_url", "img", "key_features", "category_id"},
	Lookups:  []Lookup{categoryLookup},
	Files:    []FileColumn{imgFile},
	New:      func() *model.InnovationVault { return &model.InnovationVault{} },
	Values: func(i *model.InnovationVault) []any {
		return []any{i.Title, i.Overview, i.VideoURL, i.Img, i.KeyFeatures, i.CategoryID}
	},
	Targets: func(i *model.InnovationVault) []any {
		return []any{
			&i.Title, &i.Overview, &i.VideoURL, &i.Img, &i.KeyFeatures, &i.CategoryID,
			&i.CategoryName,
		}
	},
}

var IntelligenceReportTable = Table[*model.ExclusiveIntelligenceReport]{
	Name:     "intelligence_reports",
	Singular: "intelligence report",
	Plural:   "intelligence reports",
	Columns: []string{
		"title", "overview", "published_date", "report_url", "img", "key_findings", "industry_id",
	},
	Lookups: []Lookup{industryLookup},
	Files:   []FileColumn{imgFile, reportFile},
	New:     func() *model.ExclusiveIntelligenceReport { return &model.ExclusiveIntelligenceReport{} },
	Values: func(r *model.ExclusiveIntelligenceReport) []any {
		return []any{r.Title, r.Overview, r.PublishedDate, r.ReportURL, r.Img, r.KeyFindings, r.IndustryID}
	},
	Targets: func(r *model.ExclusiveIntelligenceReport) []any {
		return []any{
			&r.Title, &r.Overview, &r.PublishedDate, &r.ReportURL, &r.Img, &r.KeyFindings, &r.IndustryID,
			&r.IndustryName,
		}
	},
}

var ExclusivePartnerTable = Table[*model.ExclusivePartner]{
	Name:     "exclusive_partners",
	Singular: "exclusive partner",
	Plural:   "exclusive partners",
	Columns:  []string{"name", "overview", "website", "logo", "key_features", "industry_id"},
	Lookups:  []Lookup{industryLookup},
	Files:    []FileColumn{logoFile},
	New:      func() *model.ExclusivePartner { return &model.ExclusivePartner{} },
	Values: func(e *model.ExclusivePartner) []any {
		return []any{e.Name, e.Overview, e.Website, e.Logo, e.KeyFeatures, e.IndustryID}
	},
	Targets: func(e *model.ExclusivePartner) []any {
		return []any{
			&e.Name, &e.Overview, &e.Website, &e.Logo, &e.KeyFeatures, &e.IndustryID,
			&e.IndustryName,
		}
	},
}

var TalentHiringTable = Table[*model.TalentHiring]{
	Name:     "talent_hiring",
	Singular: "talent hiring entry",
	Plural:   "talent hiring entries",
	Columns: []string{
		"name", "title", "overview", "email", "img", "key_features", "industry_id", "location_id",
	},
	Lookups: []Lookup{industryLookup, locationLookup},
	Files:   []FileColumn{imgFile},
	New:     func() *model.TalentHiring { return &model.TalentHiring{} },
	Values: func(t *model.TalentHiring) []any {
		return []any{t.Name, t.Title, t.Overview, t.Email, t.Img, t.KeyFeatures, t.IndustryID, t.LocationID}
	},
	Targets: func(t *model.TalentHiring) []any {
		return []any{
			&t.Name, &t.Title, &t.Overview, &t.Email, &t.Img, &t.KeyFeatures, &t.IndustryID, &t.LocationID,
			&t.IndustryName, &t.LocationName,
		}
	},
}

var VipRecruitmentPartnerTable = Table[*model.VipRecruitmentPartner]{
	Name:     "vip_recruitment_partners",
	Singular: "VIP recruitment partner",
	Plural:   "VIP recruitment partners",
	Columns: []string{
		"name", "overview", "website", "logo", "collaboration_images", "industry_id", "location_id",
	},
	Lookups: []Lookup{industryLookup, locationLookup},
	Files:   []FileColumn{logoFile, collaborationFile},
	New:     func() *model.VipRecruitmentPartner { return &model.VipRecruitmentPartner{} },
	Values: func(v *model.VipRecruitmentPartner) []any {
		return []any{v.Name, v.Overview, v.Website, v.Logo, v.CollaborationImages, v.IndustryID, v.LocationID}
	},
	Targets: func(v *model.VipRecruitmentPartner) []any {
		return []any{
			&v.Name, &v.Overview, &v.Website, &v.Logo, &v.CollaborationImages, &v.IndustryID, &v.LocationID,
			&v.IndustryName, &v.LocationName,
		}
	},
}
