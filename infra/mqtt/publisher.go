package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/kilianp07/gridcheck/core/validator"
)

// Config defines settings for the MQTT report publisher.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
	Retained bool   `json:"retained"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "gridcheck"
	}
	if c.Topic == "" {
		c.Topic = "gridcheck/report"
	}
}

// Validate checks mandatory fields when the publisher is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("broker is required when mqtt is enabled")
	}
	if c.QoS > 2 {
		return fmt.Errorf("qos must be 0, 1 or 2")
	}
	return nil
}

// Publisher sends validation reports to interested subscribers.
type Publisher interface {
	PublishReport(rep validator.Report) error
	Close()
}

// PahoPublisher publishes reports over MQTT using the paho client.
type PahoPublisher struct {
	client mqtt.Client
	cfg    Config
}

// NewPahoPublisher connects to the broker and returns a ready publisher.
func NewPahoPublisher(cfg Config) (*PahoPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &PahoPublisher{client: client, cfg: cfg}, nil
}

// PublishReport marshals the report to JSON and publishes it on the
// configured topic.
func (p *PahoPublisher) PublishReport(rep validator.Report) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	token := p.client.Publish(p.cfg.Topic, p.cfg.QoS, p.cfg.Retained, payload)
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker.
func (p *PahoPublisher) Close() {
	if p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}

// MockPublisher records reports in memory for tests.
type MockPublisher struct {
	Reports []validator.Report
	Fail    bool
}

// PublishReport appends the report or returns an error if configured to fail.
func (m *MockPublisher) PublishReport(rep validator.Report) error {
	if m.Fail {
		return fmt.Errorf("publish failed")
	}
	m.Reports = append(m.Reports, rep)
	return nil
}

// Close is a no-op.
func (m *MockPublisher) Close() {}
