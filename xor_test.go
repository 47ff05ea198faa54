package xorcrack

import (
	"bytes"
	"testing"
)

func TestXOR(t *testing.T) {
	cases := []struct {
		data, key, want []byte
	}{
		{
			[]byte("hello world"),
			[]byte{0x00},
			[]byte("hello world"),
		},
		{
			[]byte{0x0c, 0x22, 0x38, 0x4e},
			[]byte{0x5a},
			[]byte{0x0c ^ 0x5a, 0x22 ^ 0x5a, 0x38 ^ 0x5a, 0x4e ^ 0x5a},
		},
		{
			[]byte{0x01, 0x02, 0x03, 0x04, 0x05},
			[]byte{0x10, 0x20},
			[]byte{0x11, 0x22, 0x13, 0x24, 0x15},
		},
		{
			nil,
			[]byte("key"),
			[]byte{},
		},
	}
	for _, c := range cases {
		got, err := XOR(c.data, c.key)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, c.want) {
			t.Errorf("XOR(%v, %v) == %v, want %v", c.data, c.key, got, c.want)
		}
		if len(got) != len(c.data) {
			t.Errorf("XOR output length %v, want %v", len(got), len(c.data))
		}
	}
}

func TestXOREmptyKey(t *testing.T) {
	if _, err := XOR([]byte("data"), nil); err != ErrInvalidKey {
		t.Errorf("XOR with empty key returned %v, want ErrInvalidKey", err)
	}
}

func TestXORInvolution(t *testing.T) {
	data := []byte("Burning 'em, if you ain't quick and nimble")
	keys := [][]byte{
		{0x37},
		[]byte("ICE"),
		[]byte("a longer key than the data needs"),
	}
	for _, key := range keys {
		once, err := XOR(data, key)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := XOR(once, key)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(twice, data) {
			t.Errorf("double XOR with key %q did not restore input", key)
		}
	}
}

func TestXORDoesNotMutateInputs(t *testing.T) {
	data := []byte("original data")
	key := []byte("key")
	dataCopy := append([]byte(nil), data...)
	keyCopy := append([]byte(nil), key...)
	if _, err := XOR(data, key); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, dataCopy) || !bytes.Equal(key, keyCopy) {
		t.Error("XOR modified an input slice")
	}
}
