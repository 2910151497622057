// Package models defines the data exchanged with the academy backend and
// the local files attached to requests.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a backend identifier. The backend may emit ids as JSON strings or
// numbers; both decode to the same textual form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Price is a non-negative decimal amount. Decimal columns are sometimes
// serialised as strings, so both forms are accepted on input; output is
// always a JSON number.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*p = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", s, err)
		}
		*p = Price(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Price(v)
	return nil
}

// String renders the price as a currency amount, e.g. "$19.99".
func (p Price) String() string {
	return FormatPrice(float64(p))
}

// FormatPrice renders v with two decimals and a dollar sign.
func FormatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Course is a catalogue item owned by the backend.
type Course struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
	Picture     string `json:"picture,omitempty"`
}

// CourseInput carries the core fields of a create or update request.
// Price is always sent as a JSON number.
type CourseInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Attachment is a local file selected for upload.
type Attachment struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// NewAttachment builds an Attachment whose Size matches data.
func NewAttachment(name, contentType string, data []byte) *Attachment {
	return &Attachment{Name: name, ContentType: contentType, Size: int64(len(data)), Data: data}
}
