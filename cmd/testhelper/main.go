// Command testhelper exposes the SDK's crypto operations on the
// command line so the other ChainUp SDK implementations can check
// byte-for-byte compatibility of ciphertext, signatures and canonical
// sign strings against this one.
//
// Keys come from CUSTODY_PRIVATE_KEY and CUSTODY_PUBLIC_KEY (PEM or
// bare base64), loaded from the environment or a local .env file.
// Payloads are read from stdin with trailing newlines stripped.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	custody "github.com/chainup-custody/custody-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: testhelper <encrypt|decrypt|sign|verify|canonical> [args]")
	}
	_ = godotenv.Load()

	switch os.Args[1] {
	case "encrypt":
		encrypt(newProvider())
	case "decrypt":
		decrypt(newProvider())
	case "sign":
		sign(newProvider())
	case "verify":
		if len(os.Args) < 3 {
			fatal("usage: testhelper verify <signature>")
		}
		verify(newProvider(), os.Args[2])
	case "canonical":
		canonical()
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

// newProvider builds the RSA provider from the environment. Either key
// may be absent as long as the commands used do not need it.
func newProvider() custody.CryptoProvider {
	provider, err := custody.NewRSAProvider(
		os.Getenv("CUSTODY_PRIVATE_KEY"),
		os.Getenv("CUSTODY_PUBLIC_KEY"),
	)
	if err != nil {
		fatal("load keys: %v", err)
	}
	return provider
}

func readInput() string {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}
	return strings.TrimRight(string(data), "\r\n")
}

func encrypt(p custody.CryptoProvider) {
	cipher, err := p.EncryptWithPrivateKey(readInput())
	if err != nil {
		fatal("encrypt: %v", err)
	}
	fmt.Println(cipher)
}

func decrypt(p custody.CryptoProvider) {
	plain, err := p.DecryptWithPublicKey(readInput())
	if err != nil {
		fatal("decrypt: %v", err)
	}
	fmt.Println(plain)
}

func sign(p custody.CryptoProvider) {
	signature, err := p.Sign(readInput())
	if err != nil {
		fatal("sign: %v", err)
	}
	fmt.Println(signature)
}

func verify(p custody.CryptoProvider, signature string) {
	valid := p.Verify(readInput(), signature)
	json.NewEncoder(os.Stdout).Encode(map[string]bool{"valid": valid})
	if !valid {
		os.Exit(1)
	}
}

// canonical reads a JSON object from stdin and prints the canonical
// sign string for its fields, without touching any key material.
func canonical() {
	dec := json.NewDecoder(os.Stdin)
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		fatal("parse fields: %v", err)
	}

	flat, err := flatten(fields)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(custody.SignString(flat))
}

// flatten converts decoded JSON fields to the string map SignString
// takes. Null fields are dropped; anything non-scalar is an error.
func flatten(fields map[string]any) (map[string]string, error) {
	flat := make(map[string]string, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case string:
			flat[k] = val
		case json.Number:
			flat[k] = val.String()
		case bool:
			flat[k] = strconv.FormatBool(val)
		case nil:
			// dropped by the canonical form anyway
		default:
			return nil, fmt.Errorf("field %s: only scalar values can be signed", k)
		}
	}
	return flat, nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
