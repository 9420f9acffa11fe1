/*
gostdecoder — GOST R 56042 payment payload decoder tools
Copyright (C) 2025 Steve Clarke <stephenlclarke@mac.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

In accordance with section 13 of the AGPL, if you modify this program,
your modified version must prominently offer all users interacting with it
remotely through a computer network an opportunity to receive the source
code of your version.
*/
package gost

import (
	"reflect"
	"strings"
	"testing"
)

func TestCatalogSize(t *testing.T) {
	if got := len(AllFields()); got != 50 {
		t.Fatalf("AllFields() returned %d entries, want 50", got)
	}

	total := 0
	for _, g := range []Group{GroupRequired, GroupAdditional, GroupOther} {
		total += len(FieldsInGroup(g))
	}

	if total != len(AllFields()) {
		t.Errorf("groups cover %d fields, catalog has %d", total, len(AllFields()))
	}
}

func TestGroupSizes(t *testing.T) {
	tests := []struct {
		group Group
		want  int
	}{
		{GroupRequired, 5},
		{GroupAdditional, 13},
		{GroupOther, 32},
	}

	for _, tt := range tests {
		if got := len(FieldsInGroup(tt.group)); got != tt.want {
			t.Errorf("FieldsInGroup(%s) returned %d entries, want %d", tt.group, got, tt.want)
		}
	}
}

func TestRequiredFields(t *testing.T) {
	want := []PaymentField{Name, PersonalAcc, BankName, BIC, CorrespAcc}

	if got := RequiredFields(); !reflect.DeepEqual(got, want) {
		t.Errorf("RequiredFields() = %v, want %v", got, want)
	}

	for _, f := range want {
		if !f.IsRequired() {
			t.Errorf("%s should be required", f)
		}
	}

	if Sum.IsRequired() || TechCode.IsRequired() {
		t.Error("optional fields reported as required")
	}
}

func TestRequiredFieldsReturnsCopy(t *testing.T) {
	got := RequiredFields()
	got[0] = TechCode

	if RequiredFields()[0] != Name {
		t.Error("RequiredFields() exposed its backing slice")
	}
}

func TestFieldSpellingAndKey(t *testing.T) {
	tests := []struct {
		field PaymentField
		name  string
		key   string
	}{
		{Name, "Name", "name"},
		{PersonalAcc, "PersonalAcc", "personalacc"},
		{BIC, "BIC", "bic"},
		{PayeeINN, "PayeeINN", "payeeinn"},
		{TaxPaytKind, "TaxPaytKind", "taxpaytkind"},
		{PersonalAccount, "PersonalAccount", "personalaccount"},
		{UIN, "UIN", "uin"},
		{TechCode, "TechCode", "techcode"},
	}

	for _, tt := range tests {
		if got := tt.field.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.field.Key(); got != tt.key {
			t.Errorf("%s.Key() = %q, want %q", tt.name, got, tt.key)
		}
	}
}

func TestLookupFieldIgnoresCase(t *testing.T) {
	for _, name := range []string{"personalacc", "PERSONALACC", "PersonalAcc", " pErSoNaLaCc "} {
		f, ok := LookupField(name)
		if !ok || f != PersonalAcc {
			t.Errorf("LookupField(%q) = %v, %v; want PersonalAcc, true", name, f, ok)
		}
	}

	if _, ok := LookupField("KaznPersonalAcc"); ok {
		t.Error("custom key resolved to a catalog field")
	}
}

func TestLookupFieldRoundTripsEveryEntry(t *testing.T) {
	for _, f := range AllFields() {
		got, ok := LookupField(strings.ToUpper(f.String()))
		if !ok || got != f {
			t.Errorf("LookupField(%q) = %v, %v", f, got, ok)
		}
		if f.Description() == "" {
			t.Errorf("%s has no description", f)
		}
	}
}

func TestInvalidField(t *testing.T) {
	bad := PaymentField(999)

	if bad.Valid() {
		t.Fatal("PaymentField(999) reported valid")
	}
	if got := bad.String(); got != "PaymentField(999)" {
		t.Errorf("String() = %q", got)
	}
	if bad.IsRequired() || bad.IsSensitive() || bad.Description() != "" {
		t.Error("invalid field carries metadata")
	}
}

func TestGroupString(t *testing.T) {
	if GroupRequired.String() != "Required" || GroupAdditional.String() != "Additional" || GroupOther.String() != "Other" {
		t.Error("unexpected group names")
	}
	if Group(7).String() != "Group(7)" {
		t.Errorf("Group(7).String() = %q", Group(7).String())
	}
}

func TestSensitiveFields(t *testing.T) {
	got := SensitiveFields()
	if len(got) == 0 {
		t.Fatal("no sensitive fields")
	}

	for _, f := range got {
		if f.IsRequired() {
			t.Errorf("required field %s marked sensitive", f)
		}
	}

	if !LastName.IsSensitive() || !PayerINN.IsSensitive() || Sum.IsSensitive() {
		t.Error("unexpected sensitivity flags")
	}
}
