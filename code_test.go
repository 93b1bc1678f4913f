package huffman

import (
	"testing"
)

func TestMakeCode(t *testing.T) {
	type testRow struct {
		size   byte
		bits   uint64
		expect Code
	}

	testData := [...]testRow{
		{size: 0, bits: 0x00, expect: ""},
		{size: 1, bits: 0x00, expect: "0"},
		{size: 1, bits: 0x01, expect: "1"},
		{size: 3, bits: 0x01, expect: "001"},
		{size: 4, bits: 0x0c, expect: "1100"},
		{size: 2, bits: 0x0f, expect: "11"},
	}
	for _, row := range testData {
		actual := MakeCode(row.size, row.bits)
		if actual != row.expect {
			t.Errorf("MakeCode(%d, %#x): expected %s, got %s", row.size, row.bits, row.expect, actual)
		}
	}
}

func TestCode_String(t *testing.T) {
	if s := Code("").String(); s != `""` {
		t.Errorf("wrong output for empty code: %s", s)
	}
	if s := Code("0110").String(); s != `"0110"` {
		t.Errorf("wrong output: %s", s)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	hc := Code("0110")
	for _, prefix := range []Code{"", "0", "01", "011", "0110"} {
		if !hc.HasPrefix(prefix) {
			t.Errorf("expected %s to have prefix %s", hc, prefix)
		}
	}
	for _, prefix := range []Code{"1", "00", "01101"} {
		if hc.HasPrefix(prefix) {
			t.Errorf("expected %s not to have prefix %s", hc, prefix)
		}
	}
}

func TestCode_Valid(t *testing.T) {
	valid := []Code{"0", "1", "0101"}
	invalid := []Code{"", "2", "01a", " 0"}
	for _, hc := range valid {
		if !hc.Valid() {
			t.Errorf("expected %s to be valid", hc)
		}
	}
	for _, hc := range invalid {
		if hc.Valid() {
			t.Errorf("expected %s to be invalid", hc)
		}
	}
}
