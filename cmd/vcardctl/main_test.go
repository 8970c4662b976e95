package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"kama_card_server/internal/vcard"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDecodeThenEncode(t *testing.T) {
	out, err := run(t, "BEGIN:VCARD\nN:Doe;Jane;;;\nTEL;TYPE=cell:1\nEND:VCARD\n", "decode")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	var bundles []vcard.Bundle
	if err := json.Unmarshal([]byte(out), &bundles); err != nil {
		t.Fatalf("decode output is not json: %v\n%s", err, out)
	}
	if len(bundles) != 1 || bundles[0].Record.First != "Jane" {
		t.Fatalf("bundles = %+v", bundles)
	}

	text, err := run(t, out, "encode")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(text, "FN:Jane Doe") || !strings.Contains(text, "TEL;TYPE=CELL:1") {
		t.Fatalf("encode output:\n%s", text)
	}
}

func TestDecodeMalformedPrintsPartial(t *testing.T) {
	out, err := run(t, "BEGIN:VCARD\nFN:Kept\nEND:VCARD\nBEGIN:VCARD\n", "decode")
	if _, ok := vcard.AsMalformed(err); !ok {
		t.Fatalf("want malformed error, got %v", err)
	}
	if !strings.Contains(out, "Kept") {
		t.Fatalf("partial result missing:\n%s", out)
	}
}

func TestParseBundlesAcceptsSingleObject(t *testing.T) {
	bundles, err := parseBundles([]byte(`{"record":{"kind":"org","last":"Acme"}}`))
	if err != nil || len(bundles) != 1 || bundles[0].Record.Last != "Acme" {
		t.Fatalf("parseBundles = %+v, %v", bundles, err)
	}
	if _, err := parseBundles([]byte("not json")); err == nil {
		t.Fatalf("want error for invalid json")
	}
}
