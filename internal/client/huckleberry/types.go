package huckleberry

import (
	"fmt"
	"strconv"
	"strings"

	go_json "github.com/goccy/go-json"
)

type Child struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Birthday  string `json:"birthday"`
	CreatedAt int64  `json:"createdAt"`
}

// Update is the document pushed on the prefs stream, shaped as
// {"prefs":{"lastBottle":{...}}}.
type Update struct {
	Prefs Prefs `json:"prefs"`
}

type Prefs struct {
	LastBottle *LastBottle `json:"lastBottle"`
}

// Bottle returns the last-bottle record carried by the update, or
// ok=false when the update has none or the record lacks a start time.
func (p Prefs) Bottle() (LastBottle, bool) {
	if p.LastBottle == nil || p.LastBottle.Start == 0 {
		return LastBottle{}, false
	}
	return *p.LastBottle, true
}

type LastBottle struct {
	Start        float64    `json:"start"`
	BottleAmount FlexNumber `json:"bottleAmount"`
	BottleUnits  string     `json:"bottleUnits"`
}

// FlexNumber decodes a JSON number that the backend sometimes delivers as
// a quoted string ("120"). Null and empty string decode to zero.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := go_json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("parsing %q as number: %w", str, err)
		}
		*n = FlexNumber(f)
		return nil
	}

	var f float64
	if err := go_json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = FlexNumber(f)
	return nil
}

func (n FlexNumber) Float() float64 {
	return float64(n)
}
