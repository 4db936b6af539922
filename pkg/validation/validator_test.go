package validation_test

import (
	"errors"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	bmeerrors "github.com/goliatone/go-bmecat/pkg/errors"
	"github.com/goliatone/go-bmecat/pkg/schema"
	"github.com/goliatone/go-bmecat/pkg/serialize"
	"github.com/goliatone/go-bmecat/pkg/testsupport"
	"github.com/goliatone/go-bmecat/pkg/validation"
)

const minimalXML = `<?xml version="1.0" encoding="UTF-8"?>
<BMECAT version="2005.1" xmlns="http://www.bmecat.org/bmecat/2005">
  <HEADER>
    <CATALOG>
      <LANGUAGE>eng</LANGUAGE>
      <CATALOG_ID>C1</CATALOG_ID>
      <CATALOG_VERSION>1.0</CATALOG_VERSION>
    </CATALOG>
    <SUPPLIER>
      <SUPPLIER_ID>S1</SUPPLIER_ID>
      <SUPPLIER_NAME>Supplier</SUPPLIER_NAME>
    </SUPPLIER>
  </HEADER>
</BMECAT>
`

const missingSupplierIDXML = `<?xml version="1.0" encoding="UTF-8"?>
<BMECAT version="2005.1" xmlns="http://www.bmecat.org/bmecat/2005">
  <HEADER>
    <CATALOG>
      <LANGUAGE>eng</LANGUAGE>
      <CATALOG_ID>C1</CATALOG_ID>
      <CATALOG_VERSION>1.0</CATALOG_VERSION>
    </CATALOG>
    <SUPPLIER>
      <SUPPLIER_NAME>Supplier</SUPPLIER_NAME>
    </SUPPLIER>
  </HEADER>
</BMECAT>
`

const swappedSupplierXML = `<?xml version="1.0" encoding="UTF-8"?>
<BMECAT version="2005.1" xmlns="http://www.bmecat.org/bmecat/2005">
  <HEADER>
    <CATALOG>
      <LANGUAGE>eng</LANGUAGE>
      <CATALOG_ID>C1</CATALOG_ID>
      <CATALOG_VERSION>1.0</CATALOG_VERSION>
    </CATALOG>
    <SUPPLIER>
      <SUPPLIER_NAME>Supplier</SUPPLIER_NAME>
      <SUPPLIER_ID>S1</SUPPLIER_ID>
    </SUPPLIER>
  </HEADER>
</BMECAT>
`

const mimeBeforePricesXML = `<?xml version="1.0" encoding="UTF-8"?>
<BMECAT version="2005.1" xmlns="http://www.bmecat.org/bmecat/2005">
  <HEADER>
    <CATALOG>
      <LANGUAGE>eng</LANGUAGE>
      <CATALOG_ID>C1</CATALOG_ID>
      <CATALOG_VERSION>1.0</CATALOG_VERSION>
    </CATALOG>
    <SUPPLIER>
      <SUPPLIER_ID>S1</SUPPLIER_ID>
      <SUPPLIER_NAME>Supplier</SUPPLIER_NAME>
    </SUPPLIER>
  </HEADER>
  <T_NEW_CATALOG>
    <PRODUCT>
      <SUPPLIER_PID>1</SUPPLIER_PID>
      <MIME_INFO>
        <MIME>
          <MIME_SOURCE>a.jpg</MIME_SOURCE>
        </MIME>
      </MIME_INFO>
      <PRODUCT_PRICE_DETAILS>
        <PRODUCT_PRICE>
          <PRICE_AMOUNT>10.5</PRICE_AMOUNT>
        </PRODUCT_PRICE>
      </PRODUCT_PRICE_DETAILS>
    </PRODUCT>
  </T_NEW_CATALOG>
</BMECAT>
`

func TestValidator_ElementOrderViolations(t *testing.T) {
	cases := map[string]string{
		"supplier name before id": swappedSupplierXML,
		"mime info before prices": mimeBeforePricesXML,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			v := validation.New()

			ok, err := v.IsValid(input, schema.DefaultVersion)
			if err != nil {
				t.Fatalf("expected schema violation without hard error, got %v", err)
			}
			if ok {
				t.Fatalf("expected out of order elements to be rejected")
			}

			verr, isValidation := bmeerrors.AsValidation(v.Validate(input, schema.DefaultVersion))
			if !isValidation {
				t.Fatalf("expected ValidationError")
			}
			if verr.Malformed {
				t.Fatalf("expected well formed input")
			}
			if len(verr.Violations) == 0 {
				t.Fatalf("expected at least one violation")
			}
		})
	}
}

func TestValidator_IsValid(t *testing.T) {
	v := validation.New()

	ok, err := v.IsValid(minimalXML, schema.DefaultVersion)
	if err != nil || !ok {
		t.Fatalf("expected minimal document to validate: ok=%v err=%v", ok, err)
	}

	ok, err = v.IsValid(missingSupplierIDXML, schema.DefaultVersion)
	if err != nil {
		t.Fatalf("expected schema violation without hard error, got %v", err)
	}
	if ok {
		t.Fatalf("expected missing SUPPLIER_ID to be rejected")
	}
}

func TestValidator_ValidateReportsViolations(t *testing.T) {
	err := validation.New().Validate(missingSupplierIDXML, schema.DefaultVersion)
	verr, ok := bmeerrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Malformed {
		t.Fatalf("expected well formed input")
	}
	if len(verr.Violations) == 0 {
		t.Fatalf("expected at least one violation")
	}
	if verr.Version != schema.DefaultVersion {
		t.Fatalf("unexpected version %q", verr.Version)
	}
}

func TestValidator_MalformedInput(t *testing.T) {
	for _, input := range []string{"", "not xml", "<BMECAT><HEADER></BMECAT>"} {
		ok, err := validation.New().IsValid(input, schema.DefaultVersion)
		if ok {
			t.Fatalf("IsValid(%q): expected false", input)
		}
		verr, isValidation := bmeerrors.AsValidation(err)
		if !isValidation || !verr.Malformed {
			t.Fatalf("IsValid(%q): expected malformed ValidationError, got %v", input, err)
		}
	}
}

func TestValidator_UnknownVersion(t *testing.T) {
	ok, err := validation.IsValid(minimalXML, "1.2")
	if ok {
		t.Fatalf("expected false for unknown version")
	}
	if !errors.Is(err, bmeerrors.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestValidator_BrokenSchemaResource(t *testing.T) {
	reg := schema.NewRegistry()
	reg.MustRegister(schema.Version{
		ID:       "0.1",
		Resource: "broken.xsd",
		FS:       fstest.MapFS{"broken.xsd": &fstest.MapFile{Data: []byte("<not-a-schema")}},
	})

	_, err := validation.New(validation.WithRegistry(reg)).IsValid(minimalXML, "0.1")
	if !errors.Is(err, bmeerrors.ErrConfiguration) {
		t.Fatalf("expected configuration error for broken schema, got %v", err)
	}
}

func TestValidator_ReferenceDocumentsConcurrently(t *testing.T) {
	doc := testsupport.ReferenceDocument()
	inputs := make([]string, 0, 2)
	for _, null := range []bool{true, false} {
		out, err := serialize.Serialize(doc, serialize.Options{SerializeNull: null})
		if err != nil {
			t.Fatalf("serialize: %v", err)
		}
		inputs = append(inputs, out)
	}

	v := validation.New()
	var wg sync.WaitGroup
	results := make([]bool, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := v.IsValid(inputs[i%len(inputs)], schema.DefaultVersion)
			results[i] = ok && err == nil
		}(i)
	}
	wg.Wait()

	want := []bool{true, true, true, true, true, true, true, true}
	if diff := cmp.Diff(want, results); diff != "" {
		t.Fatalf("concurrent validation mismatch (-want +got):\n%s", diff)
	}
}

func TestValidator_Versions(t *testing.T) {
	if diff := cmp.Diff([]string{"2005.1"}, validation.New().Versions()); diff != "" {
		t.Fatalf("versions mismatch (-want +got):\n%s", diff)
	}
}
