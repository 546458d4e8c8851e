package scval

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
)

func symVal(s string) xdr.ScVal {
	sym := xdr.ScSymbol(s)
	return xdr.ScVal{Type: xdr.ScValTypeScvSymbol, Sym: &sym}
}

func strVal(s string) xdr.ScVal {
	str := xdr.ScString(s)
	return xdr.ScVal{Type: xdr.ScValTypeScvString, Str: &str}
}

func bytesVal(b []byte) xdr.ScVal {
	bs := xdr.ScBytes(b)
	return xdr.ScVal{Type: xdr.ScValTypeScvBytes, Bytes: &bs}
}

func boolVal(b bool) xdr.ScVal {
	return xdr.ScVal{Type: xdr.ScValTypeScvBool, B: &b}
}

func u32Val(n uint32) xdr.ScVal {
	u := xdr.Uint32(n)
	return xdr.ScVal{Type: xdr.ScValTypeScvU32, U32: &u}
}

func i64Val(n int64) xdr.ScVal {
	i := xdr.Int64(n)
	return xdr.ScVal{Type: xdr.ScValTypeScvI64, I64: &i}
}

func vecVal(items ...xdr.ScVal) xdr.ScVal {
	vec := xdr.ScVec(items)
	pv := &vec
	return xdr.ScVal{Type: xdr.ScValTypeScvVec, Vec: &pv}
}

func mapVal(entries ...xdr.ScMapEntry) xdr.ScVal {
	m := xdr.ScMap(entries)
	pm := &m
	return xdr.ScVal{Type: xdr.ScValTypeScvMap, Map: &pm}
}

func TestDecodeScalars(t *testing.T) {
	if got := Decode(symVal("minter")); got.Kind() != KindString {
		t.Fatalf("symbol kind mismatch: %v", got.Kind())
	} else if s, _ := got.AsString(); s != "minter" {
		t.Fatalf("symbol value mismatch: %q", s)
	}

	if s, _ := Decode(strVal("hello")).AsString(); s != "hello" {
		t.Fatalf("string value mismatch: %q", s)
	}

	if b, _ := Decode(bytesVal([]byte{1, 2, 3})).AsBytes(); !bytes.Equal(b, []byte{1, 2, 3}) {
		t.Fatalf("bytes value mismatch: %v", b)
	}

	if b, _ := Decode(boolVal(true)).AsBool(); !b {
		t.Fatalf("bool value mismatch")
	}

	if got := Decode(xdr.ScVal{Type: xdr.ScValTypeScvVoid}); got.Kind() != KindNull {
		t.Fatalf("void kind mismatch: %v", got.Kind())
	}

	if n, _ := Decode(u32Val(4294967295)).AsInt(); n.Uint64() != 4294967295 {
		t.Fatalf("u32 value mismatch: %s", n)
	}

	if n, _ := Decode(i64Val(-42)).AsInt(); n.Int64() != -42 {
		t.Fatalf("i64 value mismatch: %s", n)
	}
}

func TestDecodeI128(t *testing.T) {
	neg := xdr.Int128Parts{Hi: -1, Lo: 0xFFFFFFFFFFFFFFFF}
	if n, _ := Decode(xdr.ScVal{Type: xdr.ScValTypeScvI128, I128: &neg}).AsInt(); n.Int64() != -1 {
		t.Fatalf("negative i128 mismatch: %s", n)
	}

	pos := xdr.Int128Parts{Hi: 1, Lo: 5}
	want := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(5))
	if n, _ := Decode(xdr.ScVal{Type: xdr.ScValTypeScvI128, I128: &pos}).AsInt(); n.Cmp(want) != 0 {
		t.Fatalf("positive i128 mismatch: %s != %s", n, want)
	}
}

func TestDecodeU128(t *testing.T) {
	parts := xdr.UInt128Parts{Hi: 0xFFFFFFFFFFFFFFFF, Lo: 0xFFFFFFFFFFFFFFFF}
	want := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	if n, _ := Decode(xdr.ScVal{Type: xdr.ScValTypeScvU128, U128: &parts}).AsInt(); n.Cmp(want) != 0 {
		t.Fatalf("u128 mismatch: %s != %s", n, want)
	}
}

func TestDecodeAddress(t *testing.T) {
	accountRaw := bytes.Repeat([]byte{0x11}, 32)
	accountStr, err := strkey.Encode(strkey.VersionByteAccountID, accountRaw)
	if err != nil {
		t.Fatalf("encode account: %v", err)
	}
	aid := xdr.MustAddress(accountStr)
	sa := xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeAccount, AccountId: &aid}
	if s, _ := Decode(xdr.ScVal{Type: xdr.ScValTypeScvAddress, Address: &sa}).AsString(); s != accountStr {
		t.Fatalf("account address mismatch: %q != %q", s, accountStr)
	}

	contractRaw := bytes.Repeat([]byte{0x22}, 32)
	contractStr, err := strkey.Encode(strkey.VersionByteContract, contractRaw)
	if err != nil {
		t.Fatalf("encode contract: %v", err)
	}
	var hash xdr.Hash
	copy(hash[:], contractRaw)
	ca := xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeContract, ContractId: &hash}
	if s, _ := Decode(xdr.ScVal{Type: xdr.ScValTypeScvAddress, Address: &ca}).AsString(); s != contractStr {
		t.Fatalf("contract address mismatch: %q != %q", s, contractStr)
	}
}

func TestDecodeVecAndMap(t *testing.T) {
	val := mapVal(
		xdr.ScMapEntry{Key: symVal("first"), Val: u32Val(1)},
		xdr.ScMapEntry{Key: symVal("second"), Val: vecVal(strVal("a"), strVal("b"))},
	)

	decoded := Decode(val)
	entries, ok := decoded.AsMap()
	if !ok {
		t.Fatalf("expected map, got %v", decoded.Kind())
	}
	if len(entries) != 2 || entries[0].Key != "first" || entries[1].Key != "second" {
		t.Fatalf("map order mismatch: %+v", entries)
	}

	second, ok := decoded.MapGet("second")
	if !ok {
		t.Fatalf("missing key second")
	}
	items, ok := second.AsList()
	if !ok || len(items) != 2 {
		t.Fatalf("nested list mismatch")
	}
	if s, _ := items[1].AsString(); s != "b" {
		t.Fatalf("nested list value mismatch: %q", s)
	}

	if _, ok := decoded.MapGet("third"); ok {
		t.Fatalf("unexpected key third")
	}
}

func TestDecodeMalformed(t *testing.T) {
	if got := Decode(xdr.ScVal{Type: xdr.ScValTypeScvBool}); !got.IsAbsent() {
		t.Fatalf("nil bool should be absent")
	}

	if got := Decode(xdr.ScVal{Type: xdr.ScValTypeScvLedgerKeyNonce}); !got.IsAbsent() {
		t.Fatalf("unsupported tag should be absent")
	}

	// non-symbol map key poisons the map, not its siblings
	badMap := mapVal(xdr.ScMapEntry{Key: u32Val(1), Val: strVal("x")})
	wrapped := vecVal(strVal("ok"), badMap)
	decoded := Decode(wrapped)
	items, ok := decoded.AsList()
	if !ok || len(items) != 2 {
		t.Fatalf("wrapper list mismatch")
	}
	if s, _ := items[0].AsString(); s != "ok" {
		t.Fatalf("sibling corrupted: %q", s)
	}
	if !items[1].IsAbsent() {
		t.Fatalf("bad map should be absent")
	}
}

func TestDecodeDepthBound(t *testing.T) {
	val := u32Val(7)
	for i := 0; i < 40; i++ {
		val = vecVal(val)
	}

	decoded := DecodeWithDepth(val, 8)
	depth := 0
	for decoded.Kind() == KindList {
		items, _ := decoded.AsList()
		if len(items) != 1 {
			t.Fatalf("unexpected list size at depth %d", depth)
		}
		decoded = items[0]
		depth++
	}
	if !decoded.IsAbsent() {
		t.Fatalf("expected absent beyond depth bound, got %v", decoded.Kind())
	}
	if depth >= 40 {
		t.Fatalf("depth bound not enforced: reached %d levels", depth)
	}
}
