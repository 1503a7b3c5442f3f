package models

// RemarkKind tags which branch of a preset/manual remark selection was taken.
type RemarkKind int

const (
	// RemarkUnset means no preset was chosen; any text came from the manual box.
	RemarkUnset RemarkKind = iota
	// RemarkNoIssue is the category's "nothing wrong" preset.
	RemarkNoIssue
	// RemarkPreset is any other catalog preset.
	RemarkPreset
	// RemarkOther is the "other" preset with manual text.
	RemarkOther
)

func (k RemarkKind) String() string {
	switch k {
	case RemarkNoIssue:
		return "noIssue"
	case RemarkPreset:
		return "preset"
	case RemarkOther:
		return "other"
	}
	return "unset"
}

// Remark is a resolved observation/maintenance/action-plan selection.
type Remark struct {
	Kind   RemarkKind
	Preset string
	Manual string
}

// Text is the free text stored on the record.
func (r Remark) Text() string {
	switch r.Kind {
	case RemarkNoIssue, RemarkPreset:
		return r.Preset
	}
	return r.Manual
}

// RemarkInput is the raw (preset, manual text) pair received from a form.
type RemarkInput struct {
	Preset string `json:"preset" bson:"preset" firestore:"preset"`
	Manual string `json:"manual,omitempty" bson:"manual,omitempty" firestore:"manual,omitempty"`
}
