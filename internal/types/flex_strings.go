package types

import (
	"encoding/json"
)

// FlexStrings is a string slice that unmarshals from either a single JSON
// string or a JSON array of strings. Filter and metadata payloads arrive in
// both shapes depending on how the client serialized its selection.
type FlexStrings []string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '[' {
		var slice []string
		if err := json.Unmarshal(data, &slice); err != nil {
			return err
		}
		*f = FlexStrings(slice)
		return nil
	}

	var item string
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*f = FlexStrings{item}
	return nil
}

// Slice converts FlexStrings back to []string.
func (f FlexStrings) Slice() []string {
	return []string(f)
}
