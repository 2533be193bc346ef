package pingdom

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/NordCoder/uptime-report/internal/domain/summary"
)

type checksResp struct {
	Checks *[]checkDTO `json:"checks"`
}

type checkDTO struct {
	ID   checkID `json:"id"`
	Name string  `json:"name"`
}

// checkID accepts both numeric and string ids.
type checkID string

func (c *checkID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = checkID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("check id: %w", err)
	}
	*c = checkID(n.String())
	return nil
}

type summaryResp struct {
	Summary struct {
		Weeks *[]summary.WeeklyRecord `json:"weeks"`
	} `json:"summary"`
}
