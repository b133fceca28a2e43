package api

import (
	"encoding/json"
	"testing"
)

func TestInterpretResponse_Success(t *testing.T) {
	body := []byte(`{"result":"success","msg":"","response":{"recs":{"has_more":false,"count":0,"objs":[]}}}`)

	payload, err := interpretResponse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var recs recordsPayload
	if err := json.Unmarshal(payload, &recs); err != nil {
		t.Fatalf("failed to parse payload: %v", err)
	}
}

func TestInterpretResponse_ErrorCodes(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(error) bool
	}{
		{
			"unauthorized",
			`{"result":"error","msg":"Invalid api key.","err_code":"E_UNAUTH"}`,
			IsUnauthorized,
		},
		{
			"invalid input",
			`{"result":"error","msg":"Invalid zone.","err_code":"E_INVLDINPUT"}`,
			IsInvalidInput,
		},
		{
			"rate limited",
			`{"result":"error","msg":"Too many calls.","err_code":"E_MAXAPI"}`,
			IsRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := interpretResponse([]byte(tt.body))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.check(err) {
				t.Errorf("error %v does not match expected kind", err)
			}
		})
	}
}

func TestInterpretResponse_PreservesProviderMessage(t *testing.T) {
	body := []byte(`{"result":"error","msg":"Invalid api key.","err_code":"E_UNAUTH"}`)

	_, err := interpretResponse(body)
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Result != "error" {
		t.Errorf("expected result %q, got %q", "error", apiErr.Result)
	}
	if apiErr.Code != "E_UNAUTH" {
		t.Errorf("expected code E_UNAUTH, got %q", apiErr.Code)
	}
	if apiErr.Message != "Invalid api key." {
		t.Errorf("expected provider message to be preserved, got %q", apiErr.Message)
	}
}

func TestInterpretResponse_GenericError(t *testing.T) {
	body := []byte(`{"result":"error","msg":"Something went wrong."}`)

	_, err := interpretResponse(body)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if _, ok := AsAPIError(err); !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if IsUnauthorized(err) || IsInvalidInput(err) || IsRateLimited(err) {
		t.Errorf("generic failure should not match a specific kind: %v", err)
	}
}

func TestInterpretResponse_MalformedJSON(t *testing.T) {
	if _, err := interpretResponse([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestAPIRecord_FlexibleDecoding(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantID      string
		wantTTL     int
		wantContent string
	}{
		{
			"string fields",
			`{"rec_id":"16606009","type":"A","name":"sub.example.com","ttl":"1","content":"10.0.0.1"}`,
			"16606009", 1, "10.0.0.1",
		},
		{
			"numeric fields",
			`{"rec_id":16606009,"type":"A","name":"sub.example.com","ttl":3600,"content":"10.0.0.1"}`,
			"16606009", 3600, "10.0.0.1",
		},
		{
			"missing content",
			`{"rec_id":"1","type":"A","name":"sub.example.com","ttl":1}`,
			"1", 1, "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec apiRecord
			if err := json.Unmarshal([]byte(tt.body), &rec); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := rec.toRecord()
			if got.ID != tt.wantID {
				t.Errorf("expected id %q, got %q", tt.wantID, got.ID)
			}
			if got.TTL != tt.wantTTL {
				t.Errorf("expected ttl %d, got %d", tt.wantTTL, got.TTL)
			}
			if got.Content != tt.wantContent {
				t.Errorf("expected content %q, got %q", tt.wantContent, got.Content)
			}
		})
	}
}
