package core

import "testing"

func strptr(s string) *string { return &s }

func TestCreatePayloadValidate(t *testing.T) {
	good := CreatePayload{Amount: 12.5, Type: "lunch"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		p    CreatePayload
	}{
		{"zero amount", CreatePayload{Amount: 0, Type: "lunch"}},
		{"negative amount", CreatePayload{Amount: -5, Type: "lunch"}},
		{"unknown type", CreatePayload{Amount: 1, Type: "groceries"}},
		{"empty type", CreatePayload{Amount: 1, Type: ""}},
	}
	for _, tc := range cases {
		err := tc.p.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !IsKind(err, KindValidation) {
			t.Fatalf("%s: expected validation kind, got %v", tc.name, KindOf(err))
		}
	}
}

func TestCreatePayloadNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   *string
		want *string
	}{
		{"nil stays nil", nil, nil},
		{"empty becomes nil", strptr(""), nil},
		{"whitespace becomes nil", strptr("   "), nil},
		{"text trimmed", strptr("  taxi home "), strptr("taxi home")},
	}
	for _, tc := range cases {
		got := CreatePayload{Amount: 1, Type: "transport", Remarks: tc.in}.Normalize()
		switch {
		case tc.want == nil && got.Remarks != nil:
			t.Fatalf("%s: expected nil remarks, got %q", tc.name, *got.Remarks)
		case tc.want != nil && (got.Remarks == nil || *got.Remarks != *tc.want):
			t.Fatalf("%s: expected %q, got %v", tc.name, *tc.want, got.Remarks)
		}
	}
}

func TestExpenseTypeLabel(t *testing.T) {
	if got := ExpenseTypeLabel("personal_care"); got != "Personal Care" {
		t.Fatalf("unexpected label: %q", got)
	}
	// Unknown codes must fall back to the raw code, not break display.
	if got := ExpenseTypeLabel("legacy_code"); got != "legacy_code" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestErrorKindCodes(t *testing.T) {
	cases := map[ErrorKind]string{
		KindValidation:         "VALIDATION_ERROR",
		KindNotFound:           "NOT_FOUND_ERROR",
		KindPermission:         "PERMISSION_ERROR",
		KindQueryUnsupported:   "QUERY_UNSUPPORTED",
		KindCorruptRecord:      "CORRUPT_RECORD",
		KindStorageUnavailable: "STORAGE_UNAVAILABLE",
		KindInternal:           "SERVER_ERROR",
	}
	for kind, want := range cases {
		if got := kind.Code(); got != want {
			t.Fatalf("kind %d: expected %q, got %q", kind, want, got)
		}
	}
}
