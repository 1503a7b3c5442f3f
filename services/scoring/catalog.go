package scoring

// Sentinel preset labels shared by every remark list.
const (
	SelectPrompt = "-- Select --"
	OtherManual  = "Other (manual)"
)

// Checklist categories as stored on a unit audit.
const (
	CategoryKitchen    = "kitchen"
	CategoryHygiene    = "hygiene"
	CategoryFoodSafety = "foodSafety"
)

// ChecklistItems is the fixed question set per category.
var ChecklistItems = map[string][]string{
	CategoryKitchen: {
		"Cooking area clean",
		"Equipment in working condition",
		"Exhaust and ventilation working",
		"Gas cylinders stored safely",
		"Waste segregated and covered",
	},
	CategoryHygiene: {
		"Staff in clean uniform",
		"Hairnets and gloves worn",
		"Handwash station stocked",
		"Washrooms clean",
	},
	CategoryFoodSafety: {
		"Raw and cooked food separated",
		"Refrigeration at safe temperature",
		"Food labelled and dated",
		"No expired stock on premises",
	},
}

// Categories lists checklist categories in display order.
var Categories = []string{CategoryKitchen, CategoryHygiene, CategoryFoodSafety}

// RemarkOptions is a preset list for one remark field.
type RemarkOptions struct {
	Field   string   `json:"field"`
	NoIssue string   `json:"noIssue"`
	Presets []string `json:"presets"`
}

// Contains reports whether preset is a known option, sentinels included.
func (o RemarkOptions) Contains(preset string) bool {
	if preset == o.NoIssue || preset == OtherManual {
		return true
	}
	for _, p := range o.Presets {
		if p == preset {
			return true
		}
	}
	return false
}

var (
	ObservationOptions = RemarkOptions{
		Field:   "observations",
		NoIssue: "No issues observed",
		Presets: []string{
			"Minor cleanliness issues",
			"Pest activity noticed",
			"Improper food storage",
			"Staff hygiene lapses",
		},
	}
	MaintenanceOptions = RemarkOptions{
		Field:   "maintenance",
		NoIssue: "No maintenance required",
		Presets: []string{
			"Minor repairs needed",
			"Equipment breakdown",
			"Plumbing issue",
			"Electrical issue",
		},
	}
	ActionPlanOptions = RemarkOptions{
		Field:   "actionPlan",
		NoIssue: "No action required",
		Presets: []string{
			"Deep cleaning scheduled",
			"Staff retraining",
			"Vendor called for repair",
			"Follow-up audit in one week",
		},
	}
)

// StaffParameters are the rated evaluation parameters.
var StaffParameters = []string{
	"Punctuality",
	"Grooming & Hygiene",
	"Customer Service",
	"Teamwork",
	"Job Knowledge",
}

// Catalog is the full option set a form needs to render.
type Catalog struct {
	Checklist       map[string][]string `json:"checklist"`
	Categories      []string            `json:"categories"`
	Observations    RemarkOptions       `json:"observations"`
	Maintenance     RemarkOptions       `json:"maintenance"`
	ActionPlan      RemarkOptions       `json:"actionPlan"`
	StaffParameters []string            `json:"staffParameters"`
	RatingLevels    map[string]int      `json:"ratingLevels"`
	SelectPrompt    string              `json:"selectPrompt"`
	OtherManual     string              `json:"otherManual"`
	PointsPerItem   int                 `json:"pointsPerItem"`
	MaxChecklist    int                 `json:"maxChecklist"`
}

// DefaultCatalog returns the reference configuration.
func DefaultCatalog() Catalog {
	return Catalog{
		Checklist:       ChecklistItems,
		Categories:      Categories,
		Observations:    ObservationOptions,
		Maintenance:     MaintenanceOptions,
		ActionPlan:      ActionPlanOptions,
		StaffParameters: StaffParameters,
		RatingLevels:    ratingValues,
		SelectPrompt:    SelectPrompt,
		OtherManual:     OtherManual,
		PointsPerItem:   PointsPerItem,
		MaxChecklist:    MaxChecklist(),
	}
}
