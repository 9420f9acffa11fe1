// paymentfield.go
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
	"strconv"
	"strings"
)

// PaymentField is one of the well-known GOST R 56042 requisite names.
type PaymentField int

// Group classifies a PaymentField the way the standard lays out its tables.
type Group int

const (
	GroupRequired Group = iota
	GroupAdditional
	GroupOther
)

func (g Group) String() string {
	switch g {
	case GroupRequired:
		return "Required"
	case GroupAdditional:
		return "Additional"
	case GroupOther:
		return "Other"
	default:
		return "Group(" + strconv.Itoa(int(g)) + ")"
	}
}

// Required requisites
const (
	Name PaymentField = iota
	PersonalAcc
	BankName
	BIC
	CorrespAcc

	// Additional requisites
	Sum
	Purpose
	PayeeINN
	PayerINN
	DrawerStatus
	KPP
	CBC
	OKTMO
	PaytReason
	TaxPeriod
	DocNo
	DocDate
	TaxPaytKind

	// Other additional requisites
	LastName
	FirstName
	MiddleName
	PayerAddress
	PersonalAccount
	DocIdx
	PensAccNo
	Contract
	PersAcc
	Flat
	Phone
	PayerIdType
	PayerIdNum
	ChildFio
	BirthDate
	PaymTerm
	PaymPeriod
	Category
	ServiceName
	CounterId
	CounterVal
	QuittId
	QuittDate
	InstNum
	ClassNum
	SpecFio
	AddAmount
	RuleId
	ExecId
	RegType
	UIN
	TechCode

	fieldCount
)

type fieldInfo struct {
	name        string
	group       Group
	sensitive   bool
	description string
}

var catalog = [fieldCount]fieldInfo{
	Name:        {"Name", GroupRequired, false, "Payee name"},
	PersonalAcc: {"PersonalAcc", GroupRequired, false, "Payee account number"},
	BankName:    {"BankName", GroupRequired, false, "Payee bank name"},
	BIC:         {"BIC", GroupRequired, false, "Bank identification code"},
	CorrespAcc:  {"CorrespAcc", GroupRequired, false, "Payee bank correspondent account"},

	Sum:          {"Sum", GroupAdditional, false, "Payment amount, kopecks"},
	Purpose:      {"Purpose", GroupAdditional, false, "Payment purpose"},
	PayeeINN:     {"PayeeINN", GroupAdditional, false, "Payee taxpayer number (INN)"},
	PayerINN:     {"PayerINN", GroupAdditional, true, "Payer taxpayer number (INN)"},
	DrawerStatus: {"DrawerStatus", GroupAdditional, false, "Payment document drawer status"},
	KPP:          {"KPP", GroupAdditional, false, "Payee tax registration reason code (KPP)"},
	CBC:          {"CBC", GroupAdditional, false, "Budget classification code (KBK)"},
	OKTMO:        {"OKTMO", GroupAdditional, false, "Municipal territory classifier code (OKTMO)"},
	PaytReason:   {"PaytReason", GroupAdditional, false, "Tax payment reason"},
	TaxPeriod:    {"TaxPeriod", GroupAdditional, false, "Tax period"},
	DocNo:        {"DocNo", GroupAdditional, false, "Document number"},
	DocDate:      {"DocDate", GroupAdditional, false, "Document date"},
	TaxPaytKind:  {"TaxPaytKind", GroupAdditional, false, "Tax payment kind"},

	LastName:        {"LastName", GroupOther, true, "Payer last name"},
	FirstName:       {"FirstName", GroupOther, true, "Payer first name"},
	MiddleName:      {"MiddleName", GroupOther, true, "Payer middle name"},
	PayerAddress:    {"PayerAddress", GroupOther, true, "Payer address"},
	PersonalAccount: {"PersonalAccount", GroupOther, false, "Budget recipient personal account"},
	DocIdx:          {"DocIdx", GroupOther, false, "Payment document index"},
	PensAccNo:       {"PensAccNo", GroupOther, true, "Pension fund personal account number (SNILS)"},
	Contract:        {"Contract", GroupOther, false, "Contract number"},
	PersAcc:         {"PersAcc", GroupOther, true, "Payer account number with the provider"},
	Flat:            {"Flat", GroupOther, false, "Flat number"},
	Phone:           {"Phone", GroupOther, true, "Phone number"},
	PayerIdType:     {"PayerIdType", GroupOther, false, "Payer identity document type"},
	PayerIdNum:      {"PayerIdNum", GroupOther, true, "Payer identity document number"},
	ChildFio:        {"ChildFio", GroupOther, true, "Child or student full name"},
	BirthDate:       {"BirthDate", GroupOther, true, "Date of birth"},
	PaymTerm:        {"PaymTerm", GroupOther, false, "Payment term or invoice date"},
	PaymPeriod:      {"PaymPeriod", GroupOther, false, "Payment period"},
	Category:        {"Category", GroupOther, false, "Payment kind"},
	ServiceName:     {"ServiceName", GroupOther, false, "Service code or meter name"},
	CounterId:       {"CounterId", GroupOther, false, "Meter number"},
	CounterVal:      {"CounterVal", GroupOther, false, "Meter reading"},
	QuittId:         {"QuittId", GroupOther, false, "Notice, charge or invoice number"},
	QuittDate:       {"QuittDate", GroupOther, false, "Notice, charge or invoice date"},
	InstNum:         {"InstNum", GroupOther, false, "Institution number"},
	ClassNum:        {"ClassNum", GroupOther, false, "Kindergarten group or school class"},
	SpecFio:         {"SpecFio", GroupOther, false, "Teacher or specialist full name"},
	AddAmount:       {"AddAmount", GroupOther, false, "Insurance, extra service or penalty amount, kopecks"},
	RuleId:          {"RuleId", GroupOther, false, "Resolution number"},
	ExecId:          {"ExecId", GroupOther, false, "Enforcement proceedings number"},
	RegType:         {"RegType", GroupOther, false, "Payment type code"},
	UIN:             {"UIN", GroupOther, false, "Unique charge identifier (UIN)"},
	TechCode:        {"TechCode", GroupOther, false, "Provider technical code"},
}

var (
	byKey    = make(map[string]PaymentField, fieldCount)
	required []PaymentField
)

func init() {
	for f := range fieldCount {
		byKey[strings.ToLower(catalog[f].name)] = f
		if catalog[f].group == GroupRequired {
			required = append(required, f)
		}
	}
}

// Valid reports whether f is a member of the catalog.
func (f PaymentField) Valid() bool {
	return f >= 0 && f < fieldCount
}

// String returns the canonical spelling, e.g. "PersonalAcc".
func (f PaymentField) String() string {
	if !f.Valid() {
		return "PaymentField(" + strconv.Itoa(int(f)) + ")"
	}
	return catalog[f].name
}

// Key returns the case-folded spelling used as a PaymentData key.
func (f PaymentField) Key() string {
	return strings.ToLower(f.String())
}

func (f PaymentField) Group() Group {
	if !f.Valid() {
		return GroupOther
	}
	return catalog[f].group
}

func (f PaymentField) Description() string {
	if !f.Valid() {
		return ""
	}
	return catalog[f].description
}

func (f PaymentField) IsRequired() bool {
	return f.Valid() && catalog[f].group == GroupRequired
}

// IsSensitive reports whether the field carries payer identity data.
func (f PaymentField) IsSensitive() bool {
	return f.Valid() && catalog[f].sensitive
}

// AllFields returns every catalog entry in declaration order.
func AllFields() []PaymentField {
	out := make([]PaymentField, 0, fieldCount)
	for f := range fieldCount {
		out = append(out, f)
	}
	return out
}

// RequiredFields returns the five requisites a strict parse insists on.
func RequiredFields() []PaymentField {
	return append([]PaymentField(nil), required...)
}

func FieldsInGroup(g Group) []PaymentField {
	var out []PaymentField
	for f := range fieldCount {
		if catalog[f].group == g {
			out = append(out, f)
		}
	}
	return out
}

// LookupField resolves a wire key to its catalog entry, ignoring case.
func LookupField(name string) (PaymentField, bool) {
	f, ok := byKey[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// SensitiveFields returns the fields the obfuscator rewrites by default.
func SensitiveFields() []PaymentField {
	var out []PaymentField
	for f := range fieldCount {
		if catalog[f].sensitive {
			out = append(out, f)
		}
	}
	return out
}
