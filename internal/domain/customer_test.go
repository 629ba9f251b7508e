package domain_test

import (
	"testing"

	"github.com/vladislavdragonenkov/ors/internal/domain"
)

func TestCustomerSetIDOnce(t *testing.T) {
	c := domain.NewCustomer()

	if _, ok := c.ID(); ok {
		t.Fatal("fresh customer must not have an id")
	}
	if err := c.SetID(0); err != nil {
		t.Fatalf("zero is a valid id, got %v", err)
	}
	if err := c.SetID(42); err != nil {
		t.Fatalf("second valid assignment should be a no-op, got %v", err)
	}
	id, ok := c.ID()
	if !ok || id != 0 {
		t.Errorf("id must keep first value 0, got %d (assigned=%v)", id, ok)
	}

	if err := c.SetID(-1); !domain.IsInvalidArgument(err) {
		t.Errorf("negative id must always be rejected, got %v", err)
	}
}

func TestCustomerSetName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		first string
		last  string
	}{
		{name: "first last", input: "Eric Meyer", first: "Eric", last: "Meyer"},
		{name: "last comma first", input: "Meyer, Eric", first: "Eric", last: "Meyer"},
		{name: "last semicolon first", input: "Meyer;Eric", first: "Eric", last: "Meyer"},
		{name: "semicolon with space", input: "Meyer; Eric", first: "Eric", last: "Meyer"},
		{name: "single token", input: "Meyer", first: "", last: "Meyer"},
		{name: "multi first names", input: "Nadine Ulla Blumenfeld", first: "Nadine Ulla", last: "Blumenfeld"},
		// Точка с запятой побеждает прочие разделители.
		{name: "semicolon precedence", input: "Meyer, Tim;Tom", first: "Tom", last: "Meyer, Tim"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := domain.NewCustomer()
			if err := c.SetName(tc.input); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.FirstName() != tc.first || c.LastName() != tc.last {
				t.Errorf("split %q: got first=%q last=%q, want first=%q last=%q",
					tc.input, c.FirstName(), c.LastName(), tc.first, tc.last)
			}
		})
	}

	c := domain.NewCustomer()
	if err := c.SetName(""); !domain.IsInvalidArgument(err) {
		t.Errorf("empty name should be rejected, got %v", err)
	}
	if _, err := domain.NewCustomerWithName(""); err == nil {
		t.Error("constructor must reject empty name")
	}
}

func TestCustomerAddContact(t *testing.T) {
	c := domain.NewCustomer()

	if err := c.AddContact("  1234567  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := c.Contacts()
	if len(got) != 1 || got[0] != "1234567" {
		t.Fatalf("contact must be stored trimmed, got %v", got)
	}

	// Слишком короткий контакт отклоняется до нормализации.
	if err := c.AddContact("12345"); !domain.IsInvalidArgument(err) {
		t.Errorf("raw contact shorter than 6 chars should fail, got %v", err)
	}
	// После вычистки разделителей длина проверяется повторно.
	if err := c.AddContact("\"1;2,3\"\t\n"); !domain.IsInvalidArgument(err) {
		t.Errorf("contact collapsing below 6 chars should fail, got %v", err)
	}

	// Дубликат нормализованного значения молча игнорируется.
	if err := c.AddContact("\"1234567\""); err != nil {
		t.Fatalf("duplicate contact must be silently ignored, got %v", err)
	}
	if c.ContactsCount() != 1 {
		t.Errorf("duplicate must not grow the list, got %d contacts", c.ContactsCount())
	}

	if err := c.AddContact("eric98@yahoo.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ContactsCount() != 2 {
		t.Errorf("expected 2 contacts, got %d", c.ContactsCount())
	}
}

func TestCustomerDeleteContacts(t *testing.T) {
	c := domain.NewCustomer()
	for _, contact := range []string{"eric98@yahoo.com", "(030) 3945-642298", "fax: 030222222"} {
		if err := c.AddContact(contact); err != nil {
			t.Fatalf("seed contact failed: %v", err)
		}
	}

	// Индексы вне диапазона — no-op.
	c.DeleteContact(-1)
	c.DeleteContact(c.ContactsCount())
	if c.ContactsCount() != 3 {
		t.Fatalf("out-of-range delete must not change the list, got %d", c.ContactsCount())
	}

	c.DeleteContact(0)
	if c.ContactsCount() != 2 {
		t.Errorf("expected 2 contacts after delete, got %d", c.ContactsCount())
	}
	if c.Contacts()[0] != "(030) 3945-642298" {
		t.Errorf("delete must preserve order of remaining contacts, got %v", c.Contacts())
	}

	c.DeleteAllContacts()
	if c.ContactsCount() != 0 {
		t.Errorf("expected no contacts, got %d", c.ContactsCount())
	}
}
