package stream

import (
	"fmt"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// A Sink delivers encoded frames.
type Sink interface {
	Send(topic string, payload []byte) error
}

// MqttSink publishes frames over MQTT.
type MqttSink struct {
	client  mqtt.Client
	qos     byte
	timeout time.Duration
}

// NewMqttSink creates a sink on client. Publishing waits at most timeout for
// the broker.
func NewMqttSink(client mqtt.Client, qos byte, timeout time.Duration) *MqttSink {
	s := new(MqttSink)
	s.client = client
	s.qos = qos
	s.timeout = timeout
	return s
}

// Send publishes payload and waits for the token.
func (s *MqttSink) Send(topic string, payload []byte) error {
	token := s.client.Publish(topic, s.qos, false, payload)
	if !token.WaitTimeout(s.timeout) {
		return fmt.Errorf("stream: publish to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("stream: publish to %s: %w", topic, err)
	}
	return nil
}
