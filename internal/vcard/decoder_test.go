package vcard

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func crlf(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}

func decodeOne(t *testing.T, text string) Bundle {
	t.Helper()
	bundles, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(bundles) != 1 {
		t.Fatalf("want 1 bundle, got %d", len(bundles))
	}
	return bundles[0]
}

func TestDecodeBasicCard(t *testing.T) {
	b := decodeOne(t, crlf(
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Dr. Jane Doe, MD",
		"N:Doe;Jane;;Dr.;MD",
		"NICKNAME:JD",
		"BDAY:19900615",
		"TEL;TYPE=work,voice:+1-555-0100",
		"TEL;TYPE=VOICE:+1-555-0101",
		"TEL;VALUE=uri;TYPE=cell:tel:+1-555-0102",
		"EMAIL;TYPE=INTERNET,HOME:jane@example.com",
		"END:VCARD",
	))
	r := b.Record
	if r.Kind != KindIndividual {
		t.Errorf("Kind = %q, want individual", r.Kind)
	}
	if r.Prefix != "Dr." || r.First != "Jane" || r.Middle != "" || r.Last != "Doe" || r.Suffix != "MD" {
		t.Errorf("name = %+v", r)
	}
	if r.Nickname != "JD" {
		t.Errorf("Nickname = %q", r.Nickname)
	}
	if r.Birthday != (YearlessDate{Month: time.June, Day: 15}) || r.BirthdayYear != 1990 {
		t.Errorf("birthday = %+v / %d", r.Birthday, r.BirthdayYear)
	}
	wantPhones := []Phone{
		{Type: PhoneWork, Number: "+1-555-0100"},
		{Type: PhoneVoice, Number: "+1-555-0101"},
		{Type: PhoneCell, Number: "+1-555-0102"},
	}
	if len(b.Phones) != len(wantPhones) {
		t.Fatalf("phones = %+v", b.Phones)
	}
	for i, p := range wantPhones {
		if b.Phones[i] != p {
			t.Errorf("phone[%d] = %+v, want %+v", i, b.Phones[i], p)
		}
	}
	if len(b.Emails) != 1 || b.Emails[0] != (Email{Type: InfoHome, Address: "jane@example.com"}) {
		t.Errorf("emails = %+v", b.Emails)
	}
}

func TestDecodeAcceptsLFAndFolding(t *testing.T) {
	text := "BEGIN:VCARD\nFN:Alexander\n  Hamilton\nNOTE:first\nNOTE:second\nEND:VCARD\n"
	b := decodeOne(t, text)
	if b.Record.Last != "Alexander Hamilton" {
		t.Errorf("Last = %q, want FN fallback", b.Record.Last)
	}
	if b.Record.Note != "first\nsecond" {
		t.Errorf("Note = %q", b.Record.Note)
	}
}

func TestDecodeKind(t *testing.T) {
	cases := map[string]Kind{
		"KIND:org":          KindOrganization,
		"KIND:Group":        KindGroup,
		"KIND:location":     KindLocation,
		"KIND:organization": KindOrganization,
		"KIND:spaceship":    KindIndividual,
	}
	for line, want := range cases {
		b := decodeOne(t, crlf("BEGIN:VCARD", line, "KIND:group", "FN:X", "END:VCARD"))
		if b.Record.Kind != want {
			t.Errorf("%s: Kind = %q, want %q", line, b.Record.Kind, want)
		}
	}
}

func TestDecodePrefersPrefName(t *testing.T) {
	b := decodeOne(t, crlf(
		"BEGIN:VCARD",
		"N:Smith;John;;;",
		"N;TYPE=pref:Doe;Jane;Ann;Ms.;",
		"END:VCARD",
	))
	if b.Record.Last != "Doe" || b.Record.First != "Jane" || b.Record.Middle != "Ann" || b.Record.Prefix != "Ms." {
		t.Fatalf("record = %+v", b.Record)
	}

	b = decodeOne(t, crlf("BEGIN:VCARD", "N:Smith;John;;;", "N:Doe;Jane;;;", "END:VCARD"))
	if b.Record.Last != "Smith" {
		t.Fatalf("without pref the first N wins, got %q", b.Record.Last)
	}
}

func TestDecodeYearlessBirthday(t *testing.T) {
	b := decodeOne(t, crlf("BEGIN:VCARD", "FN:X", "BDAY;X-APPLE-OMIT-YEAR=1604:1604-06-15", "ANNIVERSARY:--0302", "END:VCARD"))
	if b.Record.Birthday != (YearlessDate{Month: time.June, Day: 15}) || b.Record.BirthdayYear != 0 {
		t.Errorf("birthday = %+v / %d", b.Record.Birthday, b.Record.BirthdayYear)
	}
	if b.Record.Anniversary != (YearlessDate{Month: time.March, Day: 2}) || b.Record.AnniversaryYear != 0 {
		t.Errorf("anniversary = %+v / %d", b.Record.Anniversary, b.Record.AnniversaryYear)
	}
}

func TestDecodeBadDateKeepsRecord(t *testing.T) {
	b := decodeOne(t, crlf("BEGIN:VCARD", "FN:X", "BDAY:not-a-date", "BDAY:1990", "NICKNAME:still here", "END:VCARD"))
	if !b.Record.Birthday.IsZero() || b.Record.BirthdayYear != 0 {
		t.Errorf("birthday should be unset, got %+v / %d", b.Record.Birthday, b.Record.BirthdayYear)
	}
	if b.Record.Nickname != "still here" {
		t.Errorf("Nickname = %q", b.Record.Nickname)
	}
}

func TestDecodeGender(t *testing.T) {
	b := decodeOne(t, crlf("BEGIN:VCARD", "FN:X", "GENDER:f;she/her", "END:VCARD"))
	if b.Record.Sex != SexFemale || b.Record.Gender != "she/her" {
		t.Fatalf("sex/gender = %q/%q", b.Record.Sex, b.Record.Gender)
	}
}

func TestDecodeAddress(t *testing.T) {
	b := decodeOne(t, crlf(
		"BEGIN:VCARD",
		"FN:X",
		"ADR;TYPE=home,pref:;;42 Elm St;Springfield;IL;62701;USA",
		"ADR;TYPE=parcel:;;;;;;",
		"ADR:;;;Paris;;;France",
		"END:VCARD",
	))
	if len(b.Addresses) != 2 {
		t.Fatalf("addresses = %+v", b.Addresses)
	}
	want := Address{Type: InfoHome, Street1: "42 Elm St", City: "Springfield", State: "IL", Zip: "62701", Country: "USA"}
	if b.Addresses[0] != want {
		t.Errorf("address[0] = %+v", b.Addresses[0])
	}
	if b.Addresses[1].Type != InfoUnset || b.Addresses[1].City != "Paris" {
		t.Errorf("address[1] = %+v", b.Addresses[1])
	}
}

func TestDecodeOrgProperties(t *testing.T) {
	b := decodeOne(t, crlf(
		"BEGIN:VCARD",
		"FN:X",
		"ORG:Acme;Research;Lab 3",
		"TITLE:Engineer",
		"ROLE:Lead",
		"TITLE:Mentor",
		"END:VCARD",
	))
	want := []OrgProperty{NewTitle("Engineer"), NewTitle("Mentor"), NewRole("Lead"), NewOrg("Acme, Research, Lab 3")}
	if len(b.OrgProperties) != len(want) {
		t.Fatalf("org properties = %+v", b.OrgProperties)
	}
	for i := range want {
		if b.OrgProperties[i] != want[i] {
			t.Errorf("org[%d] = %+v, want %+v", i, b.OrgProperties[i], want[i])
		}
	}
}

func TestDecodeCategories(t *testing.T) {
	b := decodeOne(t, crlf("BEGIN:VCARD", "FN:X", "CATEGORIES:friend, vip", "CATEGORIES:alumni,,", "END:VCARD"))
	want := []string{"friend", "vip", "alumni"}
	if len(b.Tags) != len(want) {
		t.Fatalf("tags = %+v", b.Tags)
	}
	for i, l := range want {
		if b.Tags[i].Label != l {
			t.Errorf("tag[%d] = %q, want %q", i, b.Tags[i].Label, l)
		}
	}
}

func TestDecodeURLsAndSocialProfiles(t *testing.T) {
	b := decodeOne(t, crlf(
		"BEGIN:VCARD",
		"FN:X",
		"X-SOCIALPROFILE;TYPE=twitter:https://twitter.com/jane",
		"URL;TYPE=work,LinkedIn:https://linkedin.com/in/jane",
		"URL;TYPE=pref:https://example.com",
		"END:VCARD",
	))
	want := []URL{
		{Type: InfoWork, URL: "https://linkedin.com/in/jane", Label: "LinkedIn"},
		{URL: "https://example.com"},
		{URL: "https://twitter.com/jane", Label: "twitter"},
	}
	if len(b.URLs) != len(want) {
		t.Fatalf("urls = %+v", b.URLs)
	}
	for i := range want {
		if b.URLs[i] != want[i] {
			t.Errorf("url[%d] = %+v, want %+v", i, b.URLs[i], want[i])
		}
	}
}

func TestDecodeLegacyBareParams(t *testing.T) {
	b := decodeOne(t, crlf("BEGIN:VCARD", "VERSION:2.1", "N:Doe;John", "TEL;HOME;VOICE:555-1234", "END:VCARD"))
	if len(b.Phones) != 1 || b.Phones[0].Type != PhoneHome {
		t.Fatalf("phones = %+v", b.Phones)
	}
	if b.Record.First != "John" || b.Record.Last != "Doe" {
		t.Fatalf("name = %+v", b.Record)
	}
}

func TestDecodeSkipsLinesWithoutColon(t *testing.T) {
	b := decodeOne(t, crlf("BEGIN:VCARD", "FN:X", "garbage line", "TEL:123", "END:VCARD"))
	if len(b.Phones) != 1 || b.Phones[0].Number != "123" {
		t.Fatalf("phones = %+v", b.Phones)
	}
}

func TestDecodeMultipleComponents(t *testing.T) {
	text := crlf(
		"BEGIN:VCARD", "FN:First Person", "END:VCARD",
		"",
		"begin:vcard", "FN:Second Person", "end:vcard",
	)
	bundles, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(bundles) != 2 {
		t.Fatalf("want 2 bundles, got %d", len(bundles))
	}
	if bundles[0].Record.Last != "First Person" || bundles[1].Record.Last != "Second Person" {
		t.Fatalf("bundles out of order: %q, %q", bundles[0].Record.Last, bundles[1].Record.Last)
	}
}

func TestDecodeMalformedSecondComponentKeepsFirst(t *testing.T) {
	cases := map[string]string{
		"missing END": crlf("BEGIN:VCARD", "FN:Kept", "END:VCARD", "BEGIN:VCARD", "FN:Lost"),
		"nested BEGIN": crlf("BEGIN:VCARD", "FN:Kept", "END:VCARD", "BEGIN:VCARD", "FN:Lost", "BEGIN:VCARD", "END:VCARD"),
		"stray content": crlf("BEGIN:VCARD", "FN:Kept", "END:VCARD", "FN:Lost"),
		"bad BEGIN value": crlf("BEGIN:VCARD", "FN:Kept", "END:VCARD", "BEGIN:VCALENDAR", "END:VCALENDAR"),
	}
	for name, text := range cases {
		bundles, err := Decode(text)
		var me *MalformedVcardError
		if !errors.As(err, &me) {
			t.Fatalf("%s: want MalformedVcardError, got %v", name, err)
		}
		if me.Index != 1 {
			t.Errorf("%s: Index = %d, want 1", name, me.Index)
		}
		if len(bundles) != 1 || bundles[0].Record.Last != "Kept" {
			t.Errorf("%s: bundles = %+v", name, bundles)
		}
	}
}

func TestDecodeMalformedFirstComponent(t *testing.T) {
	bundles, err := Decode("END:VCARD\n")
	me, ok := AsMalformed(err)
	if !ok || me.Index != 0 || me.Line != 1 {
		t.Fatalf("err = %v", err)
	}
	if len(bundles) != 0 {
		t.Fatalf("bundles = %+v", bundles)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	bundles, err := Decode("  \r\n\r\n")
	if err != nil || len(bundles) != 0 {
		t.Fatalf("Decode(blank) = %v, %v", bundles, err)
	}
}

func TestDecodeTwoDigitYearUsesReferenceTime(t *testing.T) {
	dec := NewDecoder(WithReferenceTime(func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }))
	bundles, err := dec.Decode(crlf("BEGIN:VCARD", "FN:X", "BDAY:290101", "END:VCARD"))
	if err != nil {
		t.Fatal(err)
	}
	if bundles[0].Record.BirthdayYear != 2029 {
		t.Fatalf("BirthdayYear = %d, want 2029", bundles[0].Record.BirthdayYear)
	}
}

func TestDecodeEscapedSeparators(t *testing.T) {
	b := decodeOne(t, crlf(
		"BEGIN:VCARD",
		`N:O\;Brien\\;Jane;;;`,
		`ADR;TYPE=home:;;12 Elm\, Apt 3;Springfield\; East;IL;62701;`,
		`ORG:Acme\; Inc;R&D`,
		`CATEGORIES:friends\, family,vip`,
		"END:VCARD",
	))
	if b.Record.Last != `O;Brien\` || b.Record.First != "Jane" {
		t.Fatalf("name = %+v", b.Record)
	}
	if len(b.Addresses) != 1 || b.Addresses[0].Street1 != "12 Elm, Apt 3" || b.Addresses[0].City != "Springfield; East" || b.Addresses[0].Zip != "62701" {
		t.Fatalf("addresses = %+v", b.Addresses)
	}
	if len(b.OrgProperties) != 1 || b.OrgProperties[0].Value != "Acme; Inc, R&D" {
		t.Fatalf("org = %+v", b.OrgProperties)
	}
	if len(b.Tags) != 2 || b.Tags[0].Label != "friends, family" {
		t.Fatalf("tags = %+v", b.Tags)
	}
}
