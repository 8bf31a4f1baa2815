package models

import (
	"encoding/json"
	"testing"
)

func TestStringList_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []string
		wantErr bool
	}{
		{name: "array", payload: `["salt", "pepper"]`, want: []string{"salt", "pepper"}},
		{name: "bare string", payload: `"salt"`, want: []string{"salt"}},
		{name: "empty array", payload: `[]`, want: []string{}},
		{name: "number", payload: `5`, wantErr: true},
		{name: "object", payload: `{"a":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			err := json.Unmarshal([]byte(tt.payload), &l)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", l)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(l) != len(tt.want) {
				t.Fatalf("length: got %d, want %d", len(l), len(tt.want))
			}
			for i := range l {
				if l[i] != tt.want[i] {
					t.Fatalf("element %d: got %q, want %q", i, l[i], tt.want[i])
				}
			}
		})
	}
}

func TestUser_JSONNeverExposesHash(t *testing.T) {
	u := User{ID: 1, Username: "alice", Email: "a@b.co", PasswordHash: "$2a$10$secret"}
	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for key := range out {
		if key == "password" || key == "password_hash" {
			t.Fatalf("serialized user exposes %q", key)
		}
	}
}
