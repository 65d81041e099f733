package webhook

import "github.com/tidwall/gjson"

// Unwrap peels the envelopes the workflow is known to add around its
// payload: the payload may arrive as-is, wrapped in a single-element
// JSON array, inside an "output" field, or any nesting of the two.
// Non-JSON input is returned unchanged; decoding it is the caller's
// problem and will produce a proper error there.
func Unwrap(data []byte) []byte {
	const maxDepth = 4

	if !gjson.ValidBytes(data) {
		return data
	}

	current := gjson.ParseBytes(data)
	for i := 0; i < maxDepth; i++ {
		switch {
		case current.IsArray():
			arr := current.Array()
			if len(arr) == 0 {
				return []byte(current.Raw)
			}
			current = arr[0]
		case current.IsObject() && current.Get("output").Exists():
			current = current.Get("output")
		default:
			return []byte(current.Raw)
		}
	}
	return []byte(current.Raw)
}
