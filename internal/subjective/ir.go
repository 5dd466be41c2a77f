package subjective

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// The IR types mirror the on-disk shape of a bell entry byte for byte. The
// data file has drifted over time (optional fields, renamed keys, ID format
// changes); all of that is absorbed here so the domain types stay strict.

type bellTimeIR struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Minute    int         `json:"minute"`
	Hour      int         `json:"hour"`
	SubjectID *string     `json:"subjectID"`
	Location  string      `json:"location"`
	BellType  *bellTypeIR `json:"bellType"`
	Enabled   *bool       `json:"enabled"`
}

type bellTypeIR struct {
	Name string `json:"name"`
	Icon string `json:"iconName"`
}

// UnmarshalJSON reconstructs a domain BellTime from its IR form. Out-of-range
// times and malformed identifiers are hard failures; an unrecognized bellType
// name degrades to a bell with no data.
func (b *BellTime) UnmarshalJSON(data []byte) error {
	var ir bellTimeIR
	if err := json.Unmarshal(data, &ir); err != nil {
		return err
	}

	id := uuid.New()
	if ir.ID != "" {
		parsed, err := uuid.Parse(ir.ID)
		if err != nil {
			return fmt.Errorf("bell %q: invalid id: %w", ir.Name, err)
		}
		id = parsed
	}

	clock, err := NewClock(ir.Hour, ir.Minute)
	if err != nil {
		return fmt.Errorf("bell %q: %w", ir.Name, err)
	}

	// An absent or empty subjectID means "no subject"; only a present,
	// malformed value is an error.
	subjectID := uuid.Nil
	if ir.SubjectID != nil && *ir.SubjectID != "" {
		parsed, err := uuid.Parse(*ir.SubjectID)
		if err != nil {
			return fmt.Errorf("bell %q: invalid subjectID: %w", ir.Name, err)
		}
		subjectID = parsed
	}

	var bellData *BellData
	switch {
	case ir.BellType != nil:
		if kind, ok := kindFromName(ir.BellType.Name); ok {
			bellData = &BellData{Kind: kind}
		}
	case subjectID != uuid.Nil:
		bellData = &BellData{Kind: KindClass, SubjectID: subjectID, Location: ir.Location}
	}

	enabled := true
	if ir.Enabled != nil {
		enabled = *ir.Enabled
	}

	*b = BellTime{
		ID:      id,
		Name:    ir.Name,
		Time:    clock,
		Data:    bellData,
		Enabled: enabled,
	}
	return nil
}

// MarshalJSON writes the IR form. Class bells serialize through subjectID and
// location; the fixed kinds re-derive their bellType name and icon token.
func (b BellTime) MarshalJSON() ([]byte, error) {
	ir := bellTimeIR{
		ID:      b.ID.String(),
		Name:    b.Name,
		Minute:  b.Time.Minute,
		Hour:    b.Time.Hour,
		Enabled: &b.Enabled,
	}
	if b.Data != nil {
		if b.Data.IsClass() {
			id := b.Data.SubjectID.String()
			ir.SubjectID = &id
			ir.Location = b.Data.Location
		} else {
			icon, _ := b.Data.Icon()
			ir.BellType = &bellTypeIR{Name: b.Data.Kind.String(), Icon: icon}
		}
	}
	return json.Marshal(ir)
}
