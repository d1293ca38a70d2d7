//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	maxListEntries   = 100
	maxEntryLen      = 120
	maxCandidatesCap = 10000
)

//nolint:gochecknoglobals // validator caches struct metadata; one instance is the documented usage.
var validate = validator.New(validator.WithRequiredStructEnabled())

// BotSettings is the recruitment bot configuration edited from the dashboard.
type BotSettings struct {
	MaximumCandidates      int       `json:"maximumCandidates"      validate:"gte=0,lte=10000"`
	AutoScreeningEnabled   bool      `json:"autoScreeningEnabled"`
	JobTitles              []string  `json:"jobTitles"              validate:"max=100,dive,max=120"`
	Keywords               []string  `json:"keywords"               validate:"max=100,dive,max=120"`
	AutoResponseThreshold  float64   `json:"autoResponseThreshold"  validate:"gte=0,gtefield=AutoRejectionThreshold"`
	AutoRejectionThreshold float64   `json:"autoRejectionThreshold" validate:"gte=0"`
	UpdatedAt              time.Time `json:"updatedAt"`
	UpdatedBy              string    `json:"updatedBy,omitempty"`
}

// DefaultBotSettings returns the settings served before anything was saved.
func DefaultBotSettings() BotSettings {
	return BotSettings{
		MaximumCandidates: 50,
		JobTitles:         []string{},
		Keywords:          []string{},
	}
}

// Clone returns a copy that shares no slices with s.
func (s BotSettings) Clone() BotSettings {
	out := s
	out.JobTitles = append(make([]string, 0, len(s.JobTitles)), s.JobTitles...)
	out.Keywords = append(make([]string, 0, len(s.Keywords)), s.Keywords...)
	return out
}

// Normalize trims list entries and drops empty ones.
func (s *BotSettings) Normalize() {
	s.JobTitles = normalizeList(s.JobTitles)
	s.Keywords = normalizeList(s.Keywords)
}

// Validate checks field ranges and the threshold ordering.
func (s BotSettings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// FieldErrors maps JSON field names to messages for form display.
func (s BotSettings) FieldErrors() map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(validate.Struct(s), &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[jsonName(fe.StructField())] = describeFieldError(fe)
	}
	return out
}

func describeFieldError(fe validator.FieldError) string {
	field := jsonName(fe.StructField())
	switch fe.Tag() {
	case "gte":
		if fe.Param() == "0" {
			return field + " must be a non-negative number"
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s cannot exceed %d", field, maxCandidatesCap)
	case "gtefield":
		return "autoResponseThreshold must be equal to or greater than autoRejectionThreshold"
	case "max":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("%s cannot have more than %d entries", field, maxListEntries)
		}
		return fmt.Sprintf("%s entries cannot exceed %d characters", field, maxEntryLen)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func jsonName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
