package botbuilder

import "testing"

func TestObject_String(t *testing.T) {
	o := Object{"id": "b1", "count": 3.0}

	if o.String("id") != "b1" {
		t.Errorf("String(id) = %q", o.String("id"))
	}
	if o.String("count") != "" {
		t.Errorf("String(count) = %q, want empty", o.String("count"))
	}
	if o.String("missing") != "" {
		t.Errorf("String(missing) = %q, want empty", o.String("missing"))
	}
	if Object(nil).String("id") != "" {
		t.Error("nil object should return empty string")
	}
}

func TestObject_DecodeBot(t *testing.T) {
	o := Object{
		"id":          "b1",
		"name":        "Support",
		"description": "helps",
		"created_at":  "2024-01-01T00:00:00Z",
		"unknown":     true,
	}

	var bot Bot
	if err := o.Decode(&bot); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := Bot{ID: "b1", Name: "Support", Description: "helps", CreatedAt: "2024-01-01T00:00:00Z"}
	if bot != want {
		t.Errorf("bot = %+v, want %+v", bot, want)
	}
}

func TestObject_DecodeWeakTypes(t *testing.T) {
	// JSON numbers arrive as float64; a numeric id still decodes into a string.
	o := Object{"id": float64(42), "bot_id": "b1", "role": "assistant"}

	var msg Message
	if err := o.Decode(&msg); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if msg.ID != "42" {
		t.Errorf("ID = %q, want 42", msg.ID)
	}
	if msg.BotID != "b1" || msg.Role != "assistant" {
		t.Errorf("msg = %+v", msg)
	}
}

func TestObject_DecodeNonPointer(t *testing.T) {
	var bot Bot
	if err := (Object{"id": "b1"}).Decode(bot); err == nil {
		t.Error("Decode() into non-pointer should fail")
	}
}

func TestToObjects(t *testing.T) {
	if toObjects(nil) != nil {
		t.Error("toObjects(nil) should be nil")
	}
	got := toObjects([]map[string]any{{"id": "1"}})
	if len(got) != 1 || got[0].String("id") != "1" {
		t.Errorf("toObjects = %v", got)
	}
}
