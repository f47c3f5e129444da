package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledanim/anim"
)

// ErrUnknownCommand is returned for control messages with an unknown type.
var ErrUnknownCommand = errors.New("unknown control command")

// ControlMessage asks the host to change the playback of an animation.
type ControlMessage struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Control applies control messages to a registry.
type Control struct {
	registry *anim.Registry
}

// NewControl creates a Control for registry.
func NewControl(registry *anim.Registry) *Control {
	c := new(Control)
	c.registry = registry
	return c
}

// Apply performs msg. "play", "reverse" and "stop" act on a single
// animation; "stopAll" stops every registered animation.
func (c *Control) Apply(msg ControlMessage) error {
	if msg.Type == "stopAll" {
		for _, name := range c.registry.Names() {
			if a, ok := c.registry.Lookup(name); ok {
				a.Stop()
			}
		}
		return nil
	}

	switch msg.Type {
	case "play", "reverse", "stop":
	default:
		return fmt.Errorf("stream: %q: %w", msg.Type, ErrUnknownCommand)
	}

	a, ok := c.registry.Lookup(msg.Name)
	if !ok {
		return fmt.Errorf("stream: %s %q: %w", msg.Type, msg.Name, anim.ErrNotFound)
	}
	switch msg.Type {
	case "play":
		a.Play()
	case "reverse":
		a.PlayReverse()
	case "stop":
		a.Stop()
	}
	return nil
}

// Handle decodes a JSON payload and applies it.
func (c *Control) Handle(payload []byte) error {
	var msg ControlMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("stream: decode control message: %w", err)
	}
	return c.Apply(msg)
}

func (c *Control) handleClientMessages(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())
	if err := c.Handle(msg.Payload()); err != nil {
		log.Println(err)
	}
}

// Subscribe listens for control messages on topic.
func (c *Control) Subscribe(client mqtt.Client, topic string) error {
	if token := client.Subscribe(topic, 0, c.handleClientMessages); token.Wait() && token.Error() != nil {
		return fmt.Errorf("stream: subscribe %s: %w", topic, token.Error())
	}
	return nil
}
