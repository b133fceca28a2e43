package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Provider error codes mapped to error kinds.
const (
	errCodeUnauthorized = "E_UNAUTH"
	errCodeInvalidInput = "E_INVLDINPUT"
	errCodeRateLimited  = "E_MAXAPI"
)

// envelope is the JSON wrapper around every legacy API response.
type envelope struct {
	Result   string          `json:"result"`
	Msg      string          `json:"msg"`
	ErrCode  string          `json:"err_code,omitempty"`
	Response json.RawMessage `json:"response,omitempty"`
}

// recordsPayload is the "response" payload of a rec_load_all call.
type recordsPayload struct {
	Recs struct {
		HasMore bool        `json:"has_more"`
		Count   int         `json:"count"`
		Objs    []apiRecord `json:"objs"`
	} `json:"recs"`
}

// apiRecord is one record object as returned on the wire. The legacy API
// is inconsistent about whether identifiers and TTLs arrive as JSON
// strings or numbers, so both are tolerated.
type apiRecord struct {
	ID      flexString `json:"rec_id"`
	Type    string     `json:"type"`
	Name    string     `json:"name"`
	TTL     flexInt    `json:"ttl"`
	Content *string    `json:"content,omitempty"`
}

// toRecord normalizes a wire record into the Record shape.
func (r apiRecord) toRecord() Record {
	rec := Record{
		ID:   string(r.ID),
		Type: RecordType(strings.ToUpper(r.Type)),
		Name: r.Name,
		TTL:  int(r.TTL),
	}
	if r.Content != nil {
		rec.Content = *r.Content
	}
	return rec
}

// flexString decodes a JSON string or number into a string.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		*s = ""
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(raw)
	return nil
}

// flexInt decodes a JSON number or numeric string into an int.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", raw, err)
	}
	*n = flexInt(v)
	return nil
}

// interpretResponse decodes the response envelope, distinguishing success
// from failure. Failures surface as *APIError carrying the original result
// marker and message, tagged with the kind matching err_code.
func interpretResponse(body []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parsing response JSON: %w", err)
	}

	if env.Result != "success" {
		apiErr := &APIError{
			Result:  env.Result,
			Code:    env.ErrCode,
			Message: env.Msg,
		}
		switch env.ErrCode {
		case errCodeUnauthorized:
			apiErr.kind = ErrUnauthorized
		case errCodeInvalidInput:
			apiErr.kind = ErrInvalidInput
		case errCodeRateLimited:
			apiErr.kind = ErrRateLimited
		}
		return nil, apiErr
	}

	return env.Response, nil
}
