package botbuilder

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestBotParams_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		params BotParams
		want   map[string]any
	}{
		{
			name:   "typed fields",
			params: BotParams{Name: "Support", Description: "helps"},
			want:   map[string]any{"name": "Support", "description": "helps"},
		},
		{
			name:   "empty fields omitted",
			params: BotParams{Name: "Support"},
			want:   map[string]any{"name": "Support"},
		},
		{
			name:   "typed field overrides extra",
			params: BotParams{Name: "Typed", Extra: Fields{"name": "extra", "model": "gpt"}},
			want:   map[string]any{"name": "Typed", "model": "gpt"},
		},
		{
			name:   "extra kept when typed empty",
			params: BotParams{Extra: Fields{"name": "extra"}},
			want:   map[string]any{"name": "extra"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.params)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParams_DoNotMutateExtra(t *testing.T) {
	extra := Fields{"k": "v"}
	p := BotParams{Name: "n", Extra: extra}
	_ = p.fields()

	if len(extra) != 1 {
		t.Errorf("Extra mutated: %v", extra)
	}
}

func TestWebhookParams_Fields(t *testing.T) {
	got := WebhookParams{URL: "https://h.example.com", Events: []string{"message.created"}}.fields()

	if got["url"] != "https://h.example.com" {
		t.Errorf("url = %v", got["url"])
	}
	if !reflect.DeepEqual(got["events"], []string{"message.created"}) {
		t.Errorf("events = %v", got["events"])
	}

	empty := WebhookParams{}.fields()
	if _, ok := empty["events"]; ok {
		t.Error("events should be omitted when empty")
	}
}

func TestUploadParams_Form(t *testing.T) {
	p := UploadParams{Category: "faq", Metadata: map[string]string{"category": "other", "lang": "en"}}
	got := p.form()

	want := map[string]string{"category": "faq", "lang": "en"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("form() = %v, want %v", got, want)
	}
}

func TestFilters_Query(t *testing.T) {
	if Filters(nil).query() != nil {
		t.Error("nil filters should give nil query")
	}
	if (Filters{}).query() != nil {
		t.Error("empty filters should give nil query")
	}
	q := Filters{"a": "1"}.query()
	if q["a"] != "1" {
		t.Errorf("query = %v", q)
	}
}
