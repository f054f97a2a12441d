package schema

// ProjectTable represents the 'project' table
type ProjectTable struct {
	Table      string
	ID         string
	Name       string
	NameEn     string
	NameAr     string
	Location   string
	LocationEn string
	LocationAr string
	CreatedAt  string
	UpdatedAt  string
}

// Project is the schema definition for project
var Project = ProjectTable{
	Table:      "project",
	ID:         "id",
	Name:       "name",
	NameEn:     "name_en",
	NameAr:     "name_ar",
	Location:   "location",
	LocationEn: "location_en",
	LocationAr: "location_ar",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

func (t ProjectTable) Columns() []string {
	return []string{t.ID, t.Name, t.NameEn, t.NameAr, t.Location, t.LocationEn, t.LocationAr, t.CreatedAt, t.UpdatedAt}
}
