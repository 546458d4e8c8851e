package strval

import "github.com/stellar/go/strkey"

// ValidateAccountAddress reports whether s is a well-formed ed25519
// account strkey (G...): 56 chars, restricted base32 alphabet, matching
// CRC16-XMODEM checksum and account version byte.
func ValidateAccountAddress(s string) bool {
	return strkey.IsValidEd25519PublicKey(s)
}

// ValidateContractAddress reports whether s is a well-formed contract
// strkey (C...), checked the same way.
func ValidateContractAddress(s string) bool {
	_, err := strkey.Decode(strkey.VersionByteContract, s)
	return err == nil
}

// ValidateAddress accepts either of the two recognized address forms.
func ValidateAddress(s string) bool {
	return ValidateAccountAddress(s) || ValidateContractAddress(s)
}
