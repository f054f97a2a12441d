package schema

// UnitsAvailabilityTable represents the 'units_availability' table, the
// inventory maintained by the operations team.
type UnitsAvailabilityTable struct {
	Table        string
	ID           string
	Project      string
	UsageType    string
	RoofArea     string
	GardenArea   string
	BUA          string
	UnitName     string
	Floor        string
	NoOfBedrooms string
	NominalPrice string
	CreatedAt    string
	UpdatedAt    string
}

// UnitsAvailability is the schema definition for units_availability
var UnitsAvailability = UnitsAvailabilityTable{
	Table:        "units_availability",
	ID:           "id",
	Project:      "project",
	UsageType:    "usage_type",
	RoofArea:     "roof_area",
	GardenArea:   "garden_area",
	BUA:          "bua",
	UnitName:     "unit_name",
	Floor:        "floor",
	NoOfBedrooms: "no_of_bedrooms",
	NominalPrice: "nominal_price",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
