package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// foodItem is one catalog entry. Only Name and Calories drive recommendations;
// every other field from the catalog is kept in Details and written back out
// unchanged so clients see the full record. keys remembers the field order of
// the source object.
type foodItem struct {
	Name     string
	Calories float64
	Details  map[string]any
	keys     []string
}

// MarshalJSON emits a flat object: name, calories and Details in the order they
// were read, then anything not seen on input. Details never overrides Name or
// Calories.
func (f foodItem) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	written := make(map[string]bool, len(f.Details)+2)

	write := func(key string) error {
		if written[key] {
			return nil
		}
		var v any
		switch key {
		case "name":
			v = f.Name
		case "calories":
			v = f.Calories
		default:
			var ok bool
			if v, ok = f.Details[key]; !ok {
				return nil
			}
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if len(written) > 0 {
			buf.WriteByte(',')
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		written[key] = true
		return nil
	}

	order := append(slices.Clone(f.keys), "name", "calories")
	detailKeys := make([]string, 0, len(f.Details))
	for k := range f.Details {
		detailKeys = append(detailKeys, k)
	}
	slices.Sort(detailKeys)
	order = append(order, detailKeys...)
	for _, key := range order {
		if err := write(key); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat catalog object. "calories" must be a number when
// present; a missing value counts as 0. A repeated key keeps its last value
// and its first position.
func (f *foodItem) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("food item must be a JSON object, got %v", tok)
	}

	var item foodItem
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}

		switch key {
		case "name":
			err = json.Unmarshal(raw, &item.Name)
		case "calories":
			err = json.Unmarshal(raw, &item.Calories)
		default:
			var v any
			if err = json.Unmarshal(raw, &v); err == nil {
				if item.Details == nil {
					item.Details = make(map[string]any)
				}
				item.Details[key] = v
			}
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if !slices.Contains(item.keys, key) {
			item.keys = append(item.keys, key)
		}
	}

	*f = item
	return nil
}

// foodItemRow maps to the food_items table. Position fixes catalog order.
type foodItemRow struct {
	Position int            `db:"position"`
	Name     string         `db:"name"`
	Calories float64        `db:"calories"`
	Details  map[string]any `db:"details"`
}

func (r foodItemRow) toFoodItem() foodItem {
	return foodItem{Name: r.Name, Calories: r.Calories, Details: r.Details}
}

// recommendRequest is the request body for POST /getRecomend. Every field is a
// pointer so a missing key can be told apart from a present one; zero values
// are still rejected as missing. DietObjective takes any JSON value: a
// non-string objective is not an error, it just applies no filter.
type recommendRequest struct {
	Gender        *string  `json:"gender"`
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	Age           *int     `json:"age"`
	Activity      *string  `json:"activity"`
	DietObjective any      `json:"dietObjective"`
}

// recommendResponse is the 200 response for POST /getRecomend.
type recommendResponse struct {
	DailyCalories    int        `json:"dailyCalories"`
	RecommendedFoods []foodItem `json:"recommendedFoods"`
}
