package models

import "fmt"

// Checklist is the fixed set of sixteen daily practice flags. The field set
// is closed; item ids match the JSON keys used by the persisted record.
type Checklist struct {
	DawnPrayer       bool `json:"dawnPrayer"`
	MorningPrayer    bool `json:"morningPrayer"`
	NoonPrayer       bool `json:"noonPrayer"`
	AfternoonPrayer  bool `json:"afternoonPrayer"`
	NightPrayer      bool `json:"nightPrayer"`
	Worship          bool `json:"worship"`
	Exercise         bool `json:"exercise"`
	Recitation       bool `json:"recitation"`
	Cleaning         bool `json:"cleaning"`
	Organization     bool `json:"organization"`
	Recycling        bool `json:"recycling"`
	Hygiene          bool `json:"hygiene"`
	DoorLightCheck   bool `json:"doorLightCheck"`
	EnvironmentCheck bool `json:"environmentCheck"`
	SlowChewing      bool `json:"slowChewing"`
	BedsidePrep      bool `json:"bedsidePrep"`
}

// ChecklistItemCount is the number of flags in a Checklist.
const ChecklistItemCount = 16

// field returns a pointer to the flag named by id.
func (c *Checklist) field(id string) (*bool, error) {
	switch id {
	case "dawnPrayer":
		return &c.DawnPrayer, nil
	case "morningPrayer":
		return &c.MorningPrayer, nil
	case "noonPrayer":
		return &c.NoonPrayer, nil
	case "afternoonPrayer":
		return &c.AfternoonPrayer, nil
	case "nightPrayer":
		return &c.NightPrayer, nil
	case "worship":
		return &c.Worship, nil
	case "exercise":
		return &c.Exercise, nil
	case "recitation":
		return &c.Recitation, nil
	case "cleaning":
		return &c.Cleaning, nil
	case "organization":
		return &c.Organization, nil
	case "recycling":
		return &c.Recycling, nil
	case "hygiene":
		return &c.Hygiene, nil
	case "doorLightCheck":
		return &c.DoorLightCheck, nil
	case "environmentCheck":
		return &c.EnvironmentCheck, nil
	case "slowChewing":
		return &c.SlowChewing, nil
	case "bedsidePrep":
		return &c.BedsidePrep, nil
	default:
		return nil, fmt.Errorf("unknown checklist item: %s", id)
	}
}

// Get returns the flag named by id.
func (c *Checklist) Get(id string) (bool, error) {
	f, err := c.field(id)
	if err != nil {
		return false, err
	}
	return *f, nil
}

// Set assigns the flag named by id.
func (c *Checklist) Set(id string, value bool) error {
	f, err := c.field(id)
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// Toggle flips the flag named by id and returns the new value.
func (c *Checklist) Toggle(id string) (bool, error) {
	f, err := c.field(id)
	if err != nil {
		return false, err
	}
	*f = !*f
	return *f, nil
}

// Completed returns the number of flags currently set.
func (c *Checklist) Completed() int {
	flags := []bool{
		c.DawnPrayer, c.MorningPrayer, c.NoonPrayer, c.AfternoonPrayer,
		c.NightPrayer, c.Worship, c.Exercise, c.Recitation,
		c.Cleaning, c.Organization, c.Recycling, c.Hygiene,
		c.DoorLightCheck, c.EnvironmentCheck, c.SlowChewing, c.BedsidePrep,
	}
	count := 0
	for _, f := range flags {
		if f {
			count++
		}
	}
	return count
}
