package subjective

import "github.com/google/uuid"

// BellKind identifies what a bell rings for. The set is closed: the wire
// format's free-form bell type name collapses into one of these, and
// anything unrecognized becomes a bell with no data at all.
type BellKind int

const (
	// KindClass is a class tied to a subject.
	KindClass BellKind = iota
	// KindTime is an important time, such as the start and end of the school
	// day, and assemblies.
	KindTime
	// KindBreak is a recess, lunch, or another break between classes.
	KindBreak
	// KindStudy is a study period.
	KindStudy
	// KindPause is a miscellaneous break.
	KindPause
)

// kindNames is the wire contract: these exact strings appear in the
// bellType.name field of the data file.
var kindNames = map[BellKind]string{
	KindClass: "Class",
	KindTime:  "Time",
	KindBreak: "Break",
	KindStudy: "Study",
	KindPause: "Pause",
}

func (k BellKind) String() string {
	return kindNames[k]
}

// kindFromName maps a bellType name back to its kind. Class never appears as
// a bellType on disk, so only the four fixed kinds resolve.
func kindFromName(name string) (BellKind, bool) {
	switch name {
	case "Time":
		return KindTime, true
	case "Break":
		return KindBreak, true
	case "Study":
		return KindStudy, true
	case "Pause":
		return KindPause, true
	}
	return 0, false
}

// BellData classifies a bell. SubjectID and Location are meaningful only
// when Kind is KindClass.
type BellData struct {
	Kind      BellKind
	SubjectID uuid.UUID
	Location  string
}

// Icon returns the SF Symbols name associated with the bell kind. Class
// bells have no icon of their own (the subject defines one), reported by
// ok == false.
func (d *BellData) Icon() (string, bool) {
	switch d.Kind {
	case KindTime:
		return "clock.fill", true
	case KindBreak:
		return "fork.knife", true
	case KindStudy:
		return "book.fill", true
	case KindPause:
		return "pause.fill", true
	}
	return "", false
}

// IsClass reports whether the bell rings for a class.
func (d *BellData) IsClass() bool {
	return d.Kind == KindClass
}

// BellTime is one scheduled timetable event. A nil Data means the bell is a
// plain named marker with no pedagogical meaning.
type BellTime struct {
	ID      uuid.UUID
	Name    string
	Time    Clock
	Data    *BellData
	Enabled bool
}
