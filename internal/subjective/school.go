package subjective

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Day is the ordered set of bells for one weekday. The search operations
// require it sorted ascending by time; producers are responsible for that.
type Day = []BellTime

// Week is one variant of the timetable in a rotating cycle (e.g. week A /
// week B). Days holds five entries, Monday through Friday.
type Week struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Days     []Day     `json:"days"`
	Cyclical bool      `json:"cyclical"`
}

// UnmarshalJSON fills in a fresh ID when the record carries none, matching
// older exports that predate week identifiers.
func (w *Week) UnmarshalJSON(data []byte) error {
	var ir struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Days     []Day  `json:"days"`
		Cyclical bool   `json:"cyclical"`
	}
	if err := json.Unmarshal(data, &ir); err != nil {
		return err
	}
	id := uuid.New()
	if ir.ID != "" {
		parsed, err := uuid.Parse(ir.ID)
		if err != nil {
			return fmt.Errorf("week %q: invalid id: %w", ir.Name, err)
		}
		id = parsed
	}
	*w = Week{ID: id, Name: ir.Name, Days: ir.Days, Cyclical: ir.Cyclical}
	return nil
}

// Link is a website related to a school, carried through unchanged.
type Link struct {
	ID          string `json:"id"`
	Name        string `json:"title"`
	Icon        string `json:"icon"`
	Destination string `json:"destination"`
}

// Notice is an announcement related to a school, carried through unchanged.
type Notice struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Priority bool      `json:"priority"`
}

// School holds the timetable's week variants plus descriptive records.
type School struct {
	Name        string   `json:"name"`
	Notices     []Notice `json:"notices"`
	Links       []Link   `json:"links"`
	UserCreated bool     `json:"userCreated"`
	BellTimes   []Week   `json:"bellTimes"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
	Version     string   `json:"version"`
}

// UnmarshalJSON accepts both bellTimes encodings seen across data file
// versions: the canonical ordered list of week objects, and the legacy
// name-to-days map. The map form is normalized to a list sorted by name,
// since variant rotation is positional.
func (s *School) UnmarshalJSON(data []byte) error {
	type school School
	ir := struct {
		*school
		BellTimes json.RawMessage `json:"bellTimes"`
	}{school: (*school)(s)}
	if err := json.Unmarshal(data, &ir); err != nil {
		return err
	}
	weeks, err := decodeWeeks(ir.BellTimes)
	if err != nil {
		return err
	}
	s.BellTimes = weeks
	return nil
}

func decodeWeeks(raw json.RawMessage) ([]Week, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var weeks []Week
	listErr := json.Unmarshal(raw, &weeks)
	if listErr == nil {
		return weeks, nil
	}
	var legacy map[string][]Day
	if err := json.Unmarshal(raw, &legacy); err != nil {
		// Report the canonical form's failure; the map form is a fallback.
		return nil, fmt.Errorf("bellTimes: %w", listErr)
	}
	names := make([]string, 0, len(legacy))
	for name := range legacy {
		names = append(names, name)
	}
	sort.Strings(names)
	weeks = make([]Week, 0, len(names))
	for _, name := range names {
		weeks = append(weeks, Week{ID: uuid.New(), Name: name, Days: legacy[name], Cyclical: true})
	}
	return weeks, nil
}

// BellCount is the number of bells across all variants and days.
func (s *School) BellCount() int {
	count := 0
	for _, week := range s.BellTimes {
		for _, day := range week.Days {
			count += len(day)
		}
	}
	return count
}

// Summary is the one-line description shown beside the school name in the
// picker, e.g. "(3 links, 2 weeks, 45 bells, in Sydney)".
func (s *School) Summary() string {
	plural := "s"
	if len(s.BellTimes) == 1 {
		plural = ""
	}
	return fmt.Sprintf("(%d links, %d week%s, %d bells, in %s)",
		len(s.Links), len(s.BellTimes), plural, s.BellCount(), s.Location)
}
