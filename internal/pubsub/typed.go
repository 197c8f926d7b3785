package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/nfrund/ledgerline/internal/topics"
)

// Event[T] is a topic whose payload is always a T. Declaring one registers
// the topic, with T's JSON field names, in the default topic registry.
type Event[T any] struct {
	topicName string
}

// NewEvent declares a typed event. It panics if the name is invalid or
// already declared.
func NewEvent[T any](name, description string) Event[T] {
	var zero T
	t := reflect.TypeOf(zero)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var fields []string
	typeName := ""
	if t != nil {
		typeName = t.Name()
		if t.Kind() == reflect.Struct {
			for i := 0; i < t.NumField(); i++ {
				tag := t.Field(i).Tag.Get("json")
				name, _, _ := strings.Cut(tag, ",")
				if name != "" && name != "-" {
					fields = append(fields, name)
				}
			}
		}
	}

	topics.Default().MustRegister(topics.Topic{
		Name:          name,
		Description:   description,
		TypeName:      typeName,
		PayloadFields: fields,
	})

	return Event[T]{topicName: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Publish sends a typed event.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], clientID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event.Name(), err)
	}
	return p.Publish(ctx, Message{
		Topic:    event.Name(),
		ClientID: clientID,
		Payload:  data,
	})
}

// Subscribe registers a handler that receives decoded payloads of event.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], handler func(ctx context.Context, payload T) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Name(), err)
		}
		return handler(ctx, payload)
	})
}
