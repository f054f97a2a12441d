package schema

// SalesAvailabilityTable represents the 'sales_availability' table, the
// inventory exported by the sales team.
type SalesAvailabilityTable struct {
	Table                       string
	ID                          string
	Project                     string
	Stage                       string
	Category                    string
	UnitType                    string
	UnitCode                    string
	GrandTotal                  string
	TotalFinishingPrice         string
	UnitTotalWithFinishingPrice string
	PlannedDeliveryDate         string
	ActualDeliveryDate          string
	CompletionProgress          string
	LandArea                    string
	BuiltArea                   string
	BasementArea                string
	UncoveredBasementArea       string
	PenthouseArea               string
	SemiCoveredRoofArea         string
	RoofArea                    string
	GardenOutdoorArea           string
	GarageArea                  string
	PergolaArea                 string
	StorageArea                 string
	ExtraBuiltupArea            string
	FinishingSpecs              string
	Club                        string
	CreatedAt                   string
	UpdatedAt                   string
}

// SalesAvailability is the schema definition for sales_availability
var SalesAvailability = SalesAvailabilityTable{
	Table:                       "sales_availability",
	ID:                          "id",
	Project:                     "project",
	Stage:                       "stage",
	Category:                    "category",
	UnitType:                    "unit_type",
	UnitCode:                    "unit_code",
	GrandTotal:                  "grand_total",
	TotalFinishingPrice:         "total_finishing_price",
	UnitTotalWithFinishingPrice: "unit_total_with_finishing_price",
	PlannedDeliveryDate:         "planned_delivery_date",
	ActualDeliveryDate:          "actual_delivery_date",
	CompletionProgress:          "completion_progress",
	LandArea:                    "land_area",
	BuiltArea:                   "built_area",
	BasementArea:                "basement_area",
	UncoveredBasementArea:       "uncovered_basement_area",
	PenthouseArea:               "penthouse_area",
	SemiCoveredRoofArea:         "semi_covered_roof_area",
	RoofArea:                    "roof_area",
	GardenOutdoorArea:           "garden_outdoor_area",
	GarageArea:                  "garage_area",
	PergolaArea:                 "pergola_area",
	StorageArea:                 "storage_area",
	ExtraBuiltupArea:            "extra_builtup_area",
	FinishingSpecs:              "finishing_specs",
	Club:                        "club",
	CreatedAt:                   "created_at",
	UpdatedAt:                   "updated_at",
}
