package domain

// SourceOfFunds is the declared origin of the foreign currency being exchanged.
type SourceOfFunds string

const (
	SourceVacation   SourceOfFunds = "vacation"
	SourceRelatives  SourceOfFunds = "relatives"
	SourceTourists   SourceOfFunds = "tourists"
	SourceUnutilized SourceOfFunds = "unutilized"
	SourceOther      SourceOfFunds = "other"
)

// SourceOption pairs a source value with its receipt label.
type SourceOption struct {
	Value SourceOfFunds
	Label string
}

var sourceOptions = []SourceOption{
	{Value: SourceVacation, Label: "Persons return for vacation from foreign employment"},
	{Value: SourceRelatives, Label: "Relatives of those employees abroad"},
	{Value: SourceTourists, Label: "Foreign tourists (directly or through Tour Guides)"},
	{Value: SourceUnutilized, Label: "Unutilized foreign currency obtained for travel purpose by residents"},
	{Value: SourceOther, Label: "Other"},
}

// SourceOptions returns the selectable sources in display order.
func SourceOptions() []SourceOption {
	out := make([]SourceOption, len(sourceOptions))
	copy(out, sourceOptions)
	return out
}

// IsValid reports whether s is one of the known sources.
func (s SourceOfFunds) IsValid() bool {
	for _, opt := range sourceOptions {
		if opt.Value == s {
			return true
		}
	}
	return false
}

// Label returns the human readable label, or an empty string for unknown values.
func (s SourceOfFunds) Label() string {
	for _, opt := range sourceOptions {
		if opt.Value == s {
			return opt.Label
		}
	}
	return ""
}

// CustomerRecord is the identity and source-of-funds declaration captured in step one.
type CustomerRecord struct {
	Name        string        `json:"name"`
	IDNumber    string        `json:"idNumber"` // NIC or passport number
	Source      SourceOfFunds `json:"source"`
	OtherSource string        `json:"otherSource,omitempty"` // Set only when Source is SourceOther
}

// SourceDescription resolves the text printed on the receipt for the customer's source.
func (c CustomerRecord) SourceDescription() string {
	if c.Source == SourceOther {
		return c.OtherSource
	}
	return c.Source.Label()
}
