package airtable

// Record is one Airtable row with its untyped field bag.
type Record struct {
	ID          string         `json:"id"`
	CreatedTime string         `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

// listResponse represents one page of the list records endpoint.
type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}

// errorResponse covers both shapes Airtable uses for errors:
// {"error": "NOT_FOUND"} and {"error": {"type": "...", "message": "..."}}.
type errorResponse struct {
	Error any `json:"error"`
}

func (e errorResponse) message() string {
	switch v := e.Error.(type) {
	case string:
		return v
	case map[string]any:
		msg, _ := v["message"].(string)
		typ, _ := v["type"].(string)
		if msg == "" {
			return typ
		}
		if typ == "" {
			return msg
		}
		return typ + ": " + msg
	}
	return ""
}
