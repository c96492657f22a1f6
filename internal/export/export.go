// Package export writes board events to an output destination. Events are
// small JSON documents tagged with an id and timestamp so a session can be
// replayed or inspected after the fact.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lucsky/cuid"
)

const (
	TopicMenuLoaded = "kitchen.menu_loaded"
	TopicDishServed = "kitchen.dish_served"
	TopicReport     = "kitchen.report"
)

type Sink interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type event struct {
	EventID   string      `json:"event_id"`
	Topic     string      `json:"topic"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Emit wraps payload in an event envelope and writes it to the sink.
func Emit(sink Sink, topic string, payload interface{}) error {
	msg, err := json.Marshal(event{
		EventID:   cuid.New(),
		Topic:     topic,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", topic, err)
	}
	return sink.WriteMessage(topic, msg)
}

type ConsoleSink struct{}

func (c *ConsoleSink) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))
	if _, err := os.Stdout.Write([]byte(output)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleSink) Close() error { return nil }

// JSONSink appends events to a single file, one JSON document per line.
type JSONSink struct {
	file *os.File
}

func NewJSONSink(path string) (*JSONSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &JSONSink{file: file}, nil
}

func (j *JSONSink) WriteMessage(topic string, msg []byte) error {
	if _, err := j.file.Write(msg); err != nil {
		return fmt.Errorf("failed to write event to %s: %w", j.file.Name(), err)
	}
	_, err := j.file.WriteString("\n")
	return err
}

func (j *JSONSink) Close() error {
	return j.file.Close()
}
