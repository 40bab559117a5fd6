package vectorstore

import (
	"context"
	"testing"

	"github.com/qdrant/go-client/qdrant"
)

func TestNewQdrantStore(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "standard url", url: "http://localhost:6333", wantErr: false},
		{name: "host only", url: "http://qdrant", wantErr: false},
		{name: "custom port", url: "http://qdrant:7000", wantErr: false},
		{name: "invalid url", url: "http://[::1]:namedport", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQdrantStore(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewQdrantStore(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestQdrantStore_Search_Validation(t *testing.T) {
	store, err := NewQdrantStore("http://localhost:6333")
	if err != nil {
		t.Fatalf("NewQdrantStore() error = %v", err)
	}
	ctx := context.Background()

	// Both guards run before any network call.
	if _, err := store.Search(ctx, "learnings", []float32{0.1}, 0, 1); err == nil {
		t.Error("Search() with k=0 error = nil, want error")
	}
	if _, err := store.Search(ctx, "learnings", []float32{0.1}, 3, 0); err == nil {
		t.Error("Search() without a user filter error = nil, want error")
	}
	if _, err := store.Search(ctx, "learnings", []float32{0.1}, 3, -1); err == nil {
		t.Error("Search() with negative userID error = nil, want error")
	}
}

func TestConvertValue(t *testing.T) {
	tests := []struct {
		name  string
		value *qdrant.Value
		want  any
	}{
		{
			name:  "bool",
			value: &qdrant.Value{Kind: &qdrant.Value_BoolValue{BoolValue: true}},
			want:  true,
		},
		{
			name:  "integer",
			value: &qdrant.Value{Kind: &qdrant.Value_IntegerValue{IntegerValue: 42}},
			want:  int64(42),
		},
		{
			name:  "double",
			value: &qdrant.Value{Kind: &qdrant.Value_DoubleValue{DoubleValue: 1.5}},
			want:  1.5,
		},
		{
			name:  "string",
			value: &qdrant.Value{Kind: &qdrant.Value_StringValue{StringValue: "hello"}},
			want:  "hello",
		},
		{
			name:  "nil kind",
			value: &qdrant.Value{},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertValue(tt.value); got != tt.want {
				t.Errorf("convertValue() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestConvertPayloadToMap(t *testing.T) {
	payload := map[string]*qdrant.Value{
		"user_id":    {Kind: &qdrant.Value_IntegerValue{IntegerValue: 10}},
		"project_id": {Kind: &qdrant.Value_IntegerValue{IntegerValue: 7}},
		"nil_entry":  nil,
	}

	got := convertPayloadToMap(payload)

	if got["user_id"] != int64(10) {
		t.Errorf("user_id = %v, want 10", got["user_id"])
	}
	if got["project_id"] != int64(7) {
		t.Errorf("project_id = %v, want 7", got["project_id"])
	}
	if _, ok := got["nil_entry"]; ok {
		t.Error("nil payload entries should be skipped")
	}
}
