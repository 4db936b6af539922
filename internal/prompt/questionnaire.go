package prompt

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/goliatone/go-bmecat/pkg/builder"
)

var (
	languagePattern = regexp.MustCompile(`^[a-z]{3}$`)
	versionPattern  = regexp.MustCompile(`^[0-9]{1,3}\.[0-9]{1,3}$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Questionnaire asks for the catalog header and returns it as configuration.
type Questionnaire struct {
	Driver Driver
	// Versions lists the selectable format versions; the first is the default.
	Versions []string
	// Now stamps the generation date. Defaults to time.Now.
	Now func() time.Time
}

// Answers holds the collected header configuration and the chosen format
// version. A chosen version is also written to Config as
// document.format_version.
type Answers struct {
	Version string
	Config  builder.Config
}

// Run walks the header prompts in document order.
func (q Questionnaire) Run(ctx context.Context) (Answers, error) {
	if q.Driver == nil {
		return Answers{}, fmt.Errorf("prompt: driver is required")
	}
	now := q.Now
	if now == nil {
		now = time.Now
	}

	var answers Answers
	if len(q.Versions) > 0 {
		idx, err := q.Driver.Select(ctx, SelectConfig{
			Message: "Format version",
			Options: q.Versions,
		})
		if err != nil {
			return Answers{}, err
		}
		if idx < 0 || idx >= len(q.Versions) {
			idx = 0
		}
		answers.Version = q.Versions[idx]
	}

	ask := func(message, def string, validate func(string) error) (*string, error) {
		v, err := q.Driver.Input(ctx, InputConfig{Message: message, Default: def, Validator: validate})
		if err != nil {
			return nil, err
		}
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, nil
		}
		return &v, nil
	}

	header := &builder.HeaderConfig{
		Catalog:  &builder.CatalogConfig{},
		Supplier: &builder.SupplierConfig{},
	}
	steps := []struct {
		message  string
		def      string
		validate func(string) error
		target   **string
	}{
		{"Generator info", "go-bmecat", nil, &header.GeneratorInfo},
		{"Catalog language", "eng", match(languagePattern, "three lowercase letters"), &header.Catalog.Language},
		{"Catalog id", "", required, &header.Catalog.ID},
		{"Catalog version", "1.0", match(versionPattern, "major.minor"), &header.Catalog.Version},
		{"Catalog name", "", nil, &header.Catalog.Name},
		{"Catalog currency", "EUR", optional(match(currencyPattern, "three uppercase letters")), &header.Catalog.Currency},
		{"Supplier id", "", required, &header.Supplier.ID},
		{"Supplier name", "", required, &header.Supplier.Name},
	}
	for _, step := range steps {
		v, err := ask(step.message, step.def, step.validate)
		if err != nil {
			return Answers{}, err
		}
		*step.target = v
	}

	stamp, err := q.Driver.Confirm(ctx, ConfirmConfig{Message: "Stamp the generation date?", Default: true})
	if err != nil {
		return Answers{}, err
	}
	if stamp {
		t := now()
		date, clock, zone := t.Format("2006-01-02"), t.Format("15:04:05"), t.Format("-07:00")
		header.Catalog.DateTime = &builder.DateTimeConfig{Date: &date, Time: &clock, Timezone: &zone}
	}

	answers.Config = builder.Config{Document: builder.DocumentConfig{Header: header}}
	if answers.Version != "" {
		v := answers.Version
		answers.Config.Document.FormatVersion = &v
	}
	return answers, nil
}

func required(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func match(re *regexp.Regexp, hint string) func(string) error {
	return func(v string) error {
		if !re.MatchString(strings.TrimSpace(v)) {
			return fmt.Errorf("expected %s", hint)
		}
		return nil
	}
}

func optional(check func(string) error) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return check(v)
	}
}
