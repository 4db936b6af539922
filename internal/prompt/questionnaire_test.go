package prompt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type scriptedDriver struct {
	inputs  map[string]string
	confirm bool
	selects int
	infos   []string
	asked   []string
	errOn   string
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if cfg.Message == d.errOn {
		return "", ErrAborted
	}
	v, ok := d.inputs[cfg.Message]
	if !ok {
		v = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (d *scriptedDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	return d.confirm, nil
}

func (d *scriptedDriver) Select(context.Context, SelectConfig) (int, error) {
	return d.selects, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestQuestionnaire_Run(t *testing.T) {
	driver := &scriptedDriver{
		inputs: map[string]string{
			"Catalog id":    "MY_CATALOG",
			"Supplier id":   "BMECAT_TEST",
			"Supplier name": "TestSupplier",
			"Catalog name":  "",
		},
		confirm: true,
	}
	q := Questionnaire{
		Driver:   driver,
		Versions: []string{"2005.1"},
		Now: func() time.Time {
			return time.Date(1979, 1, 1, 10, 59, 54, 0, time.FixedZone("", -3600))
		},
	}

	answers, err := q.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if answers.Version != "2005.1" {
		t.Fatalf("unexpected version %q", answers.Version)
	}

	want := []string{
		"document.format_version",
		"document.header.generator_info",
		"document.header.catalog.language",
		"document.header.catalog.id",
		"document.header.catalog.version",
		"document.header.catalog.datetime.date",
		"document.header.catalog.datetime.time",
		"document.header.catalog.datetime.timezone",
		"document.header.catalog.currency",
		"document.header.supplier.id",
		"document.header.supplier.name",
	}
	if diff := cmp.Diff(want, answers.Config.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if got := *answers.Config.Document.Header.Catalog.DateTime.Timezone; got != "-01:00" {
		t.Fatalf("unexpected timezone %q", got)
	}
}

func TestQuestionnaire_Aborted(t *testing.T) {
	driver := &scriptedDriver{errOn: "Catalog id"}
	_, err := Questionnaire{Driver: driver}.Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestQuestionnaire_RequiresDriver(t *testing.T) {
	if _, err := (Questionnaire{}).Run(context.Background()); err == nil {
		t.Fatalf("expected error without driver")
	}
}

func TestValidators(t *testing.T) {
	if err := match(languagePattern, "x")("ENG"); err == nil {
		t.Fatalf("expected uppercase language to be rejected")
	}
	if err := optional(match(currencyPattern, "x"))(""); err != nil {
		t.Fatalf("expected empty optional value to pass, got %v", err)
	}
	if err := required("  "); err == nil {
		t.Fatalf("expected blank value to be rejected")
	}
}
