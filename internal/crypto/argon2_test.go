package crypto

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/crypto/argon2"
)

func TestDeriveKey_KnownAnswer(t *testing.T) {
	password := []byte("wasm18tnvnwkklyv4dyuj8x357n7vray4v4zur4crdj")
	salt := []byte("16898739935670952395686488112")

	want := []byte{
		29, 244, 252, 166, 105, 232, 244, 214, 91, 151, 71, 223, 4, 50, 225, 64, 35, 214, 21,
		191, 196, 41, 144, 25, 192, 29, 99, 168, 195, 10, 205, 163,
	}

	got, err := DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("DeriveKey() = %v, want %v", got, want)
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	first, err := DeriveKey([]byte("pw"), []byte("saltsalt"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := DeriveKey([]byte("pw"), []byte("saltsalt"))
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != KeySize {
		t.Errorf("key length = %d, want %d", len(first), KeySize)
	}
	if !bytes.Equal(first, second) {
		t.Error("same password and salt produced different keys")
	}

	other, err := DeriveKey([]byte("pw2"), []byte("saltsalt"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(first, other) {
		t.Error("different passwords produced the same key")
	}
}

// Version 0x13 must agree with golang.org/x/crypto/argon2, which shares the
// whole algorithm except the overwrite rule.
func TestArgon2id_Version13MatchesXCrypto(t *testing.T) {
	tests := []struct {
		name   string
		params KDFParams
	}{
		{"single lane", KDFParams{Version: Argon2Version13, Memory: 64, Iterations: 4, Parallelism: 1, KeyLen: 32}},
		{"two lanes", KDFParams{Version: Argon2Version13, Memory: 64, Iterations: 2, Parallelism: 2, KeyLen: 32}},
		{"long output", KDFParams{Version: Argon2Version13, Memory: 32, Iterations: 1, Parallelism: 1, KeyLen: 100}},
		{"unaligned memory", KDFParams{Version: Argon2Version13, Memory: 70, Iterations: 3, Parallelism: 1, KeyLen: 16}},
	}

	password := []byte("password")
	salt := []byte("somesalt")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Argon2id(password, salt, tt.params)
			if err != nil {
				t.Fatalf("Argon2id() error = %v", err)
			}

			want := argon2.IDKey(password, salt, tt.params.Iterations, tt.params.Memory, tt.params.Parallelism, tt.params.KeyLen)
			if !bytes.Equal(got, want) {
				t.Errorf("Argon2id() = %x, want %x", got, want)
			}
		})
	}
}

func TestArgon2id_VersionsDiffer(t *testing.T) {
	password := []byte("password")
	salt := []byte("somesalt")

	v10 := KDFParamsV1
	v13 := KDFParamsV1
	v13.Version = Argon2Version13

	a, err := Argon2id(password, salt, v10)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Argon2id(password, salt, v13)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(a, b) {
		t.Error("versions 0x10 and 0x13 produced the same key")
	}
}

func TestArgon2id_SaltTooShort(t *testing.T) {
	tests := []struct {
		name string
		salt []byte
	}{
		{"empty", nil},
		{"seven bytes", []byte("1234567")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveKey([]byte("password"), tt.salt)
			if !errors.Is(err, ErrSaltTooShort) {
				t.Errorf("expected ErrSaltTooShort, got %v", err)
			}
		})
	}
}

func TestArgon2id_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params KDFParams
	}{
		{"unknown version", KDFParams{Version: 0x12, Memory: 64, Iterations: 1, Parallelism: 1, KeyLen: 32}},
		{"zero iterations", KDFParams{Version: Argon2Version10, Memory: 64, Iterations: 0, Parallelism: 1, KeyLen: 32}},
		{"zero parallelism", KDFParams{Version: Argon2Version10, Memory: 64, Iterations: 1, Parallelism: 0, KeyLen: 32}},
		{"too little memory", KDFParams{Version: Argon2Version10, Memory: 7, Iterations: 1, Parallelism: 1, KeyLen: 32}},
		{"short output", KDFParams{Version: Argon2Version10, Memory: 64, Iterations: 1, Parallelism: 1, KeyLen: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Argon2id([]byte("password"), []byte("somesalt"), tt.params)
			if !errors.Is(err, ErrInvalidKDFParams) {
				t.Errorf("expected ErrInvalidKDFParams, got %v", err)
			}
		})
	}
}

func BenchmarkDeriveKey(b *testing.B) {
	password := []byte("wasm18tnvnwkklyv4dyuj8x357n7vray4v4zur4crdj")
	salt := []byte("16898739935670952395686488112")

	for i := 0; i < b.N; i++ {
		_, _ = DeriveKey(password, salt)
	}
}
