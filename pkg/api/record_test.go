package api

import "testing"

func TestParseRecordType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RecordType
		wantErr bool
	}{
		{"upper case", "A", RecordTypeA, false},
		{"lower case normalized", "cname", RecordTypeCNAME, false},
		{"mixed case", "TxT", RecordTypeTXT, false},
		{"spf accepted", "spf", RecordTypeSPF, false},
		{"loc accepted", "LOC", RecordTypeLOC, false},
		{"unknown type", "PTR", "", true},
		{"empty", "", "", true},
		{"garbage", "bogus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecordType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				if !IsInvalidInput(err) {
					t.Errorf("expected invalid input error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
