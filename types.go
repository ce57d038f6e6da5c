package botbuilder

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Object is a JSON object returned by the API. Its shape is whatever the
// server sent; the SDK does not validate or reshape it.
type Object map[string]any

// String returns the value at key if it is a string, or "".
func (o Object) String(key string) string {
	s, _ := o[key].(string)
	return s
}

// Decode copies the object into v, a pointer to a struct whose fields carry
// json tags. Numbers and strings are converted where unambiguous.
func (o Object) Decode(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(o)); err != nil {
		return fmt.Errorf("decode object: %w", err)
	}
	return nil
}

// Bot is a typed view of a bot object. Obtain it with Object.Decode.
type Bot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// Message is a typed view of a message object. Obtain it with Object.Decode.
type Message struct {
	ID        string `json:"id"`
	BotID     string `json:"bot_id"`
	Content   string `json:"content"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func toObjects(in []map[string]any) []Object {
	if in == nil {
		return nil
	}
	out := make([]Object, len(in))
	for i, m := range in {
		out[i] = Object(m)
	}
	return out
}
