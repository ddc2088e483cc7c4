// Command testhelper exposes the key derivation, envelope encryption and
// address helpers over stdin/stdout JSON, so that other implementations can
// check they interoperate with this one.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	cwkit "github.com/cwkit/cwkit-go"
	"github.com/cwkit/cwkit-go/bech32addr"
	"github.com/cwkit/cwkit-go/cw"
)

// Config holds the streams the helper reads from and writes to.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

const usage = "usage: testhelper <derive-key|address-salt|encrypt|decrypt|convert-address> [args]"

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New(usage)
	}

	switch args[1] {
	case "derive-key":
		return deriveKey(cfg)
	case "address-salt":
		return addressSalt(cfg)
	case "encrypt":
		return encrypt(cfg)
	case "decrypt":
		return decrypt(cfg)
	case "convert-address":
		if len(args) < 4 {
			return errors.New("usage: testhelper convert-address <address> <prefix>")
		}
		return convertAddress(cfg, args[2], args[3])
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

// DeriveKeyInput is read by derive-key.
type DeriveKeyInput struct {
	Password string `json:"password"`
	Salt     string `json:"salt"`
}

// KeyOutput is written by derive-key.
type KeyOutput struct {
	Key string `json:"key"`
}

func deriveKey(cfg *Config) error {
	var in DeriveKeyInput
	if err := readInput(cfg.Stdin, &in); err != nil {
		return err
	}

	key, err := cwkit.CalcHashBytes(in.Password, in.Salt)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}
	return writeOutput(cfg.Stdout, KeyOutput{Key: cwkit.Hash(key).String()})
}

// AddressSaltInput is read by address-salt.
type AddressSaltInput struct {
	Address string `json:"address"`
}

// SaltOutput is written by address-salt.
type SaltOutput struct {
	Salt string `json:"salt"`
}

func addressSalt(cfg *Config) error {
	var in AddressSaltInput
	if err := readInput(cfg.Stdin, &in); err != nil {
		return err
	}
	return writeOutput(cfg.Stdout, SaltOutput{Salt: cwkit.AddressToSalt(in.Address)})
}

// EncryptInput is read by encrypt. Key is hex encoded.
type EncryptInput struct {
	Key       string          `json:"key"`
	Timestamp cw.Timestamp    `json:"timestamp"`
	Value     json.RawMessage `json:"value"`
}

func encrypt(cfg *Config) error {
	var in EncryptInput
	if err := readInput(cfg.Stdin, &in); err != nil {
		return err
	}

	key, err := cwkit.ParseHash(in.Key)
	if err != nil {
		return fmt.Errorf("parse key: %w", err)
	}

	resp, err := cwkit.SerializeEncrypt(key, in.Timestamp, in.Value)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	return writeOutput(cfg.Stdout, resp)
}

// DecryptInput is read by decrypt. Key is hex encoded.
type DecryptInput struct {
	Key      string                  `json:"key"`
	Response cwkit.EncryptedResponse `json:"response"`
}

// DecryptOutput is written by decrypt.
type DecryptOutput struct {
	Value json.RawMessage `json:"value"`
}

func decrypt(cfg *Config) error {
	var in DecryptInput
	if err := readInput(cfg.Stdin, &in); err != nil {
		return err
	}

	key, err := cwkit.ParseHash(in.Key)
	if err != nil {
		return fmt.Errorf("parse key: %w", err)
	}

	value, err := cwkit.DecryptResponse[json.RawMessage](key, &in.Response)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	return writeOutput(cfg.Stdout, DecryptOutput{Value: value})
}

// AddressOutput is written by convert-address.
type AddressOutput struct {
	Address string `json:"address"`
}

func convertAddress(cfg *Config, address, prefix string) error {
	converted, err := bech32addr.Convert(address, prefix)
	if err != nil {
		return fmt.Errorf("convert address: %w", err)
	}
	return writeOutput(cfg.Stdout, AddressOutput{Address: converted})
}

func readInput(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	return nil
}

func writeOutput(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
