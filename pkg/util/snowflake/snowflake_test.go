package snowflake

import "testing"

func TestGenerateIDString(t *testing.T) {
	Init(3)
	a, b := GenerateIDString(), GenerateIDString()
	if a == "" || a == b {
		t.Fatalf("ids = %q, %q", a, b)
	}
}
