package strval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stellar/go/strkey"
)

// Known-good strkeys from SEP-23.
const (
	validAccount  = "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ"
	validContract = "CA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUWDA"
)

func genAccount(t *testing.T, fill byte) string {
	t.Helper()
	s, err := strkey.Encode(strkey.VersionByteAccountID, bytes.Repeat([]byte{fill}, 32))
	if err != nil {
		t.Fatalf("encode account: %v", err)
	}
	return s
}

func genContract(t *testing.T, fill byte) string {
	t.Helper()
	s, err := strkey.Encode(strkey.VersionByteContract, bytes.Repeat([]byte{fill}, 32))
	if err != nil {
		t.Fatalf("encode contract: %v", err)
	}
	return s
}

func flipLastChar(s string) string {
	replacement := byte('A')
	if s[len(s)-1] == 'A' {
		replacement = 'B'
	}
	return s[:len(s)-1] + string(replacement)
}

func TestValidateAddressAccepted(t *testing.T) {
	if !ValidateAccountAddress(validAccount) {
		t.Fatalf("known account rejected")
	}
	if !ValidateContractAddress(validContract) {
		t.Fatalf("known contract rejected")
	}
	if !ValidateAddress(validAccount) || !ValidateAddress(validContract) {
		t.Fatalf("ValidateAddress rejected a valid form")
	}

	if !ValidateAccountAddress(genAccount(t, 0x5c)) {
		t.Fatalf("generated account rejected")
	}
	if !ValidateContractAddress(genContract(t, 0x5c)) {
		t.Fatalf("generated contract rejected")
	}
}

func TestValidateAddressChecksum(t *testing.T) {
	account := genAccount(t, 0x01)
	if ValidateAddress(flipLastChar(account)) {
		t.Fatalf("flipped account checksum accepted")
	}

	contract := genContract(t, 0x02)
	if ValidateAddress(flipLastChar(contract)) {
		t.Fatalf("flipped contract checksum accepted")
	}
}

func TestValidateAddressLength(t *testing.T) {
	account := genAccount(t, 0x03)
	if ValidateAddress(account[:len(account)-1]) {
		t.Fatalf("truncated address accepted")
	}
	if ValidateAddress(account + "A") {
		t.Fatalf("padded address accepted")
	}
	if ValidateAddress("") {
		t.Fatalf("empty address accepted")
	}
}

func TestValidateAddressDiscriminator(t *testing.T) {
	// swapping the leading discriminator invalidates the checksum, which
	// covers the version byte
	account := genAccount(t, 0x04)
	if ValidateAddress("C" + account[1:]) {
		t.Fatalf("account with contract discriminator accepted")
	}

	contract := genContract(t, 0x05)
	if ValidateAddress("G" + contract[1:]) {
		t.Fatalf("contract with account discriminator accepted")
	}
}

func TestValidateAddressAlphabet(t *testing.T) {
	account := genAccount(t, 0x06)
	lowered := strings.ToLower(account[1:])
	if ValidateAddress(account[:1] + lowered) {
		t.Fatalf("lowercase address accepted")
	}
}

func TestValidateIdentifier(t *testing.T) {
	valid := []string{
		"minter",
		"a",
		"Z",
		"0",
		"_",
		"123",
		"____",
		"_leading",
		"9starts_with_digit",
		"MIXED_case_123",
		strings.Repeat("x", 32),
	}
	for _, s := range valid {
		if !ValidateIdentifier(s) {
			t.Fatalf("valid identifier rejected: %q", s)
		}
	}

	invalid := []string{
		"",
		strings.Repeat("x", 33),
		"has-dash",
		"has space",
		"role!",
		"tab\tchar",
		"ünïcode",
	}
	for _, s := range invalid {
		if ValidateIdentifier(s) {
			t.Fatalf("invalid identifier accepted: %q", s)
		}
	}
}
