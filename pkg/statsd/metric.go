package statsd

import (
	"fmt"

	"github.com/goto/salt/log"
)

// Metric represents a statsd metric.
type Metric struct {
	logger        log.Logger
	name          string
	rate          float64
	tags          map[string]string
	withInfluxTag bool
	publishFunc   func(name string, tags []string, rate float64) error
}

// Tag adds a tag to the metric.
func (m *Metric) Tag(key, val string) *Metric {
	if m == nil {
		return nil
	}
	if m.tags == nil {
		m.tags = map[string]string{}
	}
	m.tags[key] = val
	return m
}

// Publish publishes the metric with collected tags. Intended to be used
// with defer.
func (m *Metric) Publish() {
	if m == nil {
		return
	}

	var ddTags []string
	if m.withInfluxTag {
		m.name = m.influxName()
	} else {
		for k, v := range m.tags {
			ddTags = append(ddTags, fmt.Sprintf("%s:%s", k, v))
		}
	}
	go func() {
		if err := m.publishFunc(m.name, ddTags, m.rate); err != nil {
			m.logger.Warn("failed to publish metric", "name", m.name, "err", err)
		}
	}()
}

func (m *Metric) influxName() string {
	name := m.name
	for k, v := range m.tags {
		name = fmt.Sprintf("%s,%s=%s", name, k, v)
	}
	return name
}
