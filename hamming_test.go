package xorcrack

import "testing"

func TestHammingDistance(t *testing.T) {
	cases := []struct {
		a, b []byte
		want int
	}{
		{
			[]byte("this is a test"),
			[]byte("wokka wokka!!!"),
			37,
		},
		{
			[]byte{0x00},
			[]byte{0xff},
			8,
		},
		{
			[]byte("same"),
			[]byte("same"),
			0,
		},
		{
			nil,
			nil,
			0,
		},
	}
	for _, c := range cases {
		got, err := HammingDistance(c.a, c.b)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("HammingDistance(%q, %q) == %v, want %v", c.a, c.b, got, c.want)
		}
		reversed, err := HammingDistance(c.b, c.a)
		if err != nil {
			t.Fatal(err)
		}
		if reversed != got {
			t.Errorf("HammingDistance not symmetric for %q, %q", c.a, c.b)
		}
		if got < 0 || got > 8*len(c.a) {
			t.Errorf("HammingDistance(%q, %q) == %v, outside [0, %v]", c.a, c.b, got, 8*len(c.a))
		}
	}
}

func TestHammingDistanceLengthMismatch(t *testing.T) {
	if _, err := HammingDistance([]byte("short"), []byte("longer")); err != ErrLengthMismatch {
		t.Errorf("HammingDistance on mismatched lengths returned %v, want ErrLengthMismatch", err)
	}
}
