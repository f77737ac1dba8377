package utils

import (
	"encoding/json"
	"time"
)

const dateOnly = "2006-01-02"

type RFC3339Date struct {
	time.Time
}

func (d RFC3339Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// UnmarshalJSON accepts RFC 3339 timestamps and bare dates. An empty string
// leaves the zero time.
func (d *RFC3339Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	if str == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		var dateErr error
		if t, dateErr = time.Parse(dateOnly, str); dateErr != nil {
			return err
		}
	}

	d.Time = t
	return nil
}
