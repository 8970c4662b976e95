package vcard

import (
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, 10, 14, 8, 30, 0, 0, time.FixedZone("CST", 8*3600))

func janeDoe() (ContactRecord, Children) {
	r := ContactRecord{
		Kind:         KindIndividual,
		Prefix:       "Dr.",
		First:        "Jane",
		Last:         "Doe",
		Suffix:       "MD",
		Nickname:     "JD",
		Birthday:     YearlessDate{Month: time.June, Day: 15},
		BirthdayYear: 1990,
		Anniversary:  YearlessDate{Month: time.March, Day: 2},
		Sex:          SexFemale,
		Note:         "met at the conference",
	}
	ch := Children{
		Addresses: []Address{{Type: InfoWork, Street1: "1 Main St", Street2: "Suite 200", City: "Springfield", State: "IL", Zip: "62701", Country: "USA"}},
		Phones:    []Phone{{Type: PhoneCell, Number: "+1-555-0100"}, {Type: PhoneOther, Number: "+1-555-0101"}},
		Emails:    []Email{{Type: InfoHome, Address: "jane@example.com"}, {Address: "jd@example.org"}},
		OrgProperties: []OrgProperty{
			NewOrg("Acme, Research"),
			NewTitle("Chief Scientist"),
			NewRole("Lead"),
			NewTitle("Professor"),
		},
		Tags: []Tag{{Label: "friend"}, {Label: "vip"}, {Label: "alumni"}},
		URLs: []URL{
			{Type: InfoWork, URL: "https://example.com"},
			{URL: "https://linkedin.com/in/jane", Label: "LinkedIn"},
		},
	}
	return r, ch
}

func TestEncodeFullRecord(t *testing.T) {
	r, ch := janeDoe()
	got := NewEncoder(WithClock(func() time.Time { return fixedNow })).Encode(r, ch)
	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:4.0",
		"KIND:individual",
		"FN:Dr. Jane Doe, MD",
		"N:Doe;Jane;;Dr.;MD",
		"NICKNAME:JD",
		"BDAY:19900615",
		"ANNIVERSARY;X-APPLE-OMIT-YEAR=1604:16040302",
		"GENDER:F;",
		"ADR;TYPE=WORK:;;1 Main St,Suite 200;Springfield;IL;62701;USA",
		"TEL;TYPE=CELL:+1-555-0100",
		"TEL:+1-555-0101",
		"EMAIL;TYPE=INTERNET,HOME:jane@example.com",
		"EMAIL;TYPE=INTERNET:jd@example.org",
		"TITLE:Chief Scientist",
		"TITLE:Professor",
		"ROLE:Lead",
		"ORG:Acme, Research",
		"NOTE:met at the conference",
		"CATEGORIES:friend,vip,alumni",
		"URL;TYPE=WORK:https://example.com",
		"URL;TYPE=LinkedIn:https://linkedin.com/in/jane",
		"REV:20261014T003000Z",
		"END:VCARD",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("Encode mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormattedName(t *testing.T) {
	cases := []struct {
		r    ContactRecord
		want string
	}{
		{ContactRecord{Prefix: "Dr.", First: "Jane", Last: "Doe", Suffix: "MD"}, "Dr. Jane Doe, MD"},
		{ContactRecord{First: "Jane", Middle: "Q", Last: "Doe"}, "Jane Q Doe"},
		{ContactRecord{First: "Jane"}, "Jane"},
		{ContactRecord{Kind: KindOrganization, Last: "Acme Inc"}, "Acme Inc"},
		{ContactRecord{Suffix: "Jr."}, "Jr."},
		{ContactRecord{}, ""},
	}
	for _, c := range cases {
		if got := FormattedName(c.r); got != c.want {
			t.Errorf("FormattedName(%+v) = %q, want %q", c.r, got, c.want)
		}
	}
}

func TestStructuredName(t *testing.T) {
	r := ContactRecord{Prefix: "Dr.", First: "Jane", Last: "Doe", Suffix: "MD"}
	if got := StructuredName(r); got != "Doe;Jane;;Dr.;MD" {
		t.Fatalf("StructuredName = %q", got)
	}
	if got := StructuredName(ContactRecord{}); got != ";;;;" {
		t.Fatalf("StructuredName of empty record = %q", got)
	}
}

func TestEncodeOmitsEmptyProperties(t *testing.T) {
	got := Encode(ContactRecord{First: "Solo"}, Children{})
	for _, name := range []string{"NICKNAME", "BDAY", "ANNIVERSARY", "GENDER", "ADR", "TEL", "EMAIL", "TITLE", "ROLE", "ORG", "NOTE", "CATEGORIES", "URL"} {
		if strings.Contains(got, "\n"+name) {
			t.Errorf("unexpected %s line in\n%s", name, got)
		}
	}
	if !strings.Contains(got, "\nKIND:individual\n") {
		t.Errorf("KIND should default to individual:\n%s", got)
	}
	if strings.Contains(got, "\r") {
		t.Errorf("encoder must emit LF only")
	}
}

func TestEncodeGender(t *testing.T) {
	cases := []struct {
		sex    Sex
		gender string
		want   string
	}{
		{SexMale, "", "GENDER:M;"},
		{SexUnspecified, "nonbinary", "GENDER:;nonbinary"},
		{SexOther, "fluid", "GENDER:O;fluid"},
	}
	for _, c := range cases {
		got := Encode(ContactRecord{Last: "X", Sex: c.sex, Gender: c.gender}, Children{})
		if !strings.Contains(got, "\n"+c.want+"\n") {
			t.Errorf("want %q in\n%s", c.want, got)
		}
	}
}

func TestEncodeRevIsLastProperty(t *testing.T) {
	got := NewEncoder(WithClock(func() time.Time { return fixedNow })).Encode(ContactRecord{Last: "X"}, Children{})
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if lines[len(lines)-2] != "REV:20261014T003000Z" || lines[len(lines)-1] != "END:VCARD" {
		t.Fatalf("unexpected tail %q", lines[len(lines)-2:])
	}
}

func TestEncodeEscapesNote(t *testing.T) {
	got := Encode(ContactRecord{Last: "X", Note: "line one\nline two"}, Children{})
	if !strings.Contains(got, "\nNOTE:line one\\nline two\n") {
		t.Fatalf("note not escaped:\n%s", got)
	}
}

func TestEncodeLineFolding(t *testing.T) {
	note := strings.Repeat("名片", 60)
	enc := NewEncoder(WithLineFolding())
	got := enc.Encode(ContactRecord{Last: "X", Note: note}, Children{})
	var unfolded []string
	for _, l := range strings.Split(got, "\n") {
		if len(l) > foldWidth {
			t.Fatalf("line longer than %d octets: %q", foldWidth, l)
		}
		if strings.HasPrefix(l, " ") {
			unfolded[len(unfolded)-1] += l[1:]
			continue
		}
		unfolded = append(unfolded, l)
	}
	if !strings.Contains(strings.Join(unfolded, "\n"), "NOTE:"+note) {
		t.Fatalf("folded note does not unfold back")
	}

	plain := Encode(ContactRecord{Last: "X", Note: note}, Children{})
	if !strings.Contains(plain, "NOTE:"+note+"\n") {
		t.Fatalf("default encoder should not fold")
	}
}
