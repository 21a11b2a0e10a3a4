// Package alert delivers transient user-facing messages. Alerts auto-expire
// after their duration; interested consumers receive them over an explicit
// channel rather than a broadcast subject.
package alert

import (
	"sync"
	"time"

	"medibill/internal/domain"
)

// Message is one transient notification.
type Message struct {
	Type     domain.AlertType
	Title    string
	Text     string
	Duration time.Duration
}

// Default durations per alert type; warnings linger a little longer.
const (
	defaultDuration = 4 * time.Second
	warningDuration = 5 * time.Second
)

// Service queues alerts for display. A pending alert survives one screen
// transition so a message raised just before navigation is still shown.
type Service struct {
	mu      sync.Mutex
	ch      chan Message
	pending *Message
}

// NewService creates an alert service with a buffered delivery channel.
func NewService() *Service {
	return &Service{ch: make(chan Message, 16)}
}

// Messages returns the delivery channel.
func (s *Service) Messages() <-chan Message { return s.ch }

// Show queues an alert. Delivery never blocks; if no consumer is draining
// the channel the oldest undelivered alert is dropped.
func (s *Service) Show(m Message) {
	if m.Duration <= 0 {
		m.Duration = defaultDuration
	}
	s.mu.Lock()
	s.pending = &m
	s.mu.Unlock()

	for {
		select {
		case s.ch <- m:
			return
		default:
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

// ConsumePending returns and clears the alert carried across a transition.
func (s *Service) ConsumePending() *Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.pending
	s.pending = nil
	return m
}

// Success queues a success alert.
func (s *Service) Success(text string) {
	s.Show(Message{Type: domain.AlertSuccess, Title: "Success", Text: text})
}

// Error queues an error alert.
func (s *Service) Error(text string) {
	s.Show(Message{Type: domain.AlertError, Title: "Error", Text: text})
}

// Warning queues a warning alert.
func (s *Service) Warning(text string) {
	s.Show(Message{Type: domain.AlertWarning, Title: "Warning", Text: text, Duration: warningDuration})
}

// Info queues an informational alert.
func (s *Service) Info(text string) {
	s.Show(Message{Type: domain.AlertInfo, Title: "Info", Text: text})
}
