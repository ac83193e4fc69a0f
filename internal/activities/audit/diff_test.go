package audit

import (
	"reflect"
	"testing"
)

func TestSnapshot(t *testing.T) {
	type animal struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}

	m := Snapshot(animal{Name: "Milo", Status: "ADOPTED"})
	if m["name"] != "Milo" || m["status"] != "ADOPTED" {
		t.Errorf("unexpected snapshot: %v", m)
	}
	if Snapshot(nil) != nil {
		t.Error("nil value must snapshot to nil")
	}
}

func TestChangedKeys(t *testing.T) {
	tests := []struct {
		name          string
		before, after map[string]any
		want          []string
	}{
		{
			name:   "value change",
			before: map[string]any{"name": "Milo", "status": "SHELTERED"},
			after:  map[string]any{"name": "Milo", "status": "ADOPTED"},
			want:   []string{"status"},
		},
		{
			name:   "key added",
			before: map[string]any{"name": "Milo"},
			after:  map[string]any{"name": "Milo", "alias": "Mi"},
			want:   []string{"alias"},
		},
		{
			name:   "no change",
			before: map[string]any{"name": "Milo"},
			after:  map[string]any{"name": "Milo"},
			want:   nil,
		},
		{
			name:   "nested change",
			before: map[string]any{"tags": []any{"a"}},
			after:  map[string]any{"tags": []any{"a", "b"}},
			want:   []string{"tags"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChangedKeys(tt.before, tt.after)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ChangedKeys() = %v, want %v", got, tt.want)
			}
		})
	}
}
