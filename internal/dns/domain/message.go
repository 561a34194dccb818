package domain

import (
	"fmt"
	"strings"
)

// Message represents a complete DNS message: header plus the four
// ordered sections of RFC 1035 §4.1. The message owns every contained
// question and record exclusively; section counts live nowhere — they
// are the lengths of these slices.
type Message struct {
	Header     Header
	Questions  []Question
	Answers    []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord
}

// NewMessage constructs an empty message around the given header.
func NewMessage(h Header) Message {
	return Message{Header: h}
}

// AddQuestion appends a question to the question section.
func (m *Message) AddQuestion(q Question) {
	m.Questions = append(m.Questions, q)
}

// AddAnswer appends a record to the answer section.
func (m *Message) AddAnswer(rr ResourceRecord) {
	m.Answers = append(m.Answers, rr)
}

// AddAuthority appends a record to the authority section.
func (m *Message) AddAuthority(rr ResourceRecord) {
	m.Authority = append(m.Authority, rr)
}

// AddAdditional appends a record to the additional section.
func (m *Message) AddAdditional(rr ResourceRecord) {
	m.Additional = append(m.Additional, rr)
}

// Validate checks the header and every entry of every section.
func (m Message) Validate() error {
	if err := m.Header.Validate(); err != nil {
		return fmt.Errorf("invalid header: %w", err)
	}
	for i, q := range m.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("invalid question at index %d: %w", i, err)
		}
	}
	sections := []struct {
		name    string
		records []ResourceRecord
	}{
		{"answer", m.Answers},
		{"authority", m.Authority},
		{"additional", m.Additional},
	}
	for _, s := range sections {
		for i, rr := range s.records {
			if err := rr.Validate(); err != nil {
				return fmt.Errorf("invalid %s record at index %d: %w", s.name, i, err)
			}
		}
	}
	return nil
}

// String returns a dig-style debug dump enumerating every field of the
// header and every entry of every section.
func (m Message) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, ";; HEADER: %s\n", m.Header)
	fmt.Fprintf(&sb, ";; counts: qd=%d an=%d ns=%d ar=%d\n",
		len(m.Questions), len(m.Answers), len(m.Authority), len(m.Additional))
	if len(m.Questions) > 0 {
		sb.WriteString(";; QUESTION SECTION:\n")
		for _, q := range m.Questions {
			fmt.Fprintf(&sb, ";%s\n", q)
		}
	}
	writeSection := func(title string, records []ResourceRecord) {
		if len(records) == 0 {
			return
		}
		fmt.Fprintf(&sb, ";; %s SECTION:\n", title)
		for _, rr := range records {
			fmt.Fprintf(&sb, "%s\n", rr)
		}
	}
	writeSection("ANSWER", m.Answers)
	writeSection("AUTHORITY", m.Authority)
	writeSection("ADDITIONAL", m.Additional)
	return sb.String()
}
