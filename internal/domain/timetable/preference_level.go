package timetable

// Prolog codes of the preference scale, from required to prohibited.
const (
	PrefRequired            = "R"
	PrefStronglyPreferred   = "-2"
	PrefPreferred           = "-1"
	PrefNeutral             = "0"
	PrefDiscouraged         = "1"
	PrefStronglyDiscouraged = "2"
	PrefProhibited          = "P"
)

type PreferenceLevel struct {
	ID         uint   `gorm:"primaryKey"`
	PrefProlog string `gorm:"column:pref_prolog"`
	PrefName   string `gorm:"column:pref_name"`
	Ord        int
}

var prologColors = map[string]string{
	PrefRequired:            "#660099",
	PrefStronglyPreferred:   "#006600",
	PrefPreferred:           "#009900",
	PrefNeutral:             "#ffffff",
	PrefDiscouraged:         "#cca500",
	PrefStronglyDiscouraged: "#ff9900",
	PrefProhibited:          "#660000",
}

// Prolog2Color maps a prolog preference code to its background color.
// Unknown codes render neutral.
func Prolog2Color(prolog string) string {
	if color, ok := prologColors[prolog]; ok {
		return color
	}
	return prologColors[PrefNeutral]
}
