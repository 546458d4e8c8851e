package scval

import (
	"math/big"

	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
)

// DefaultMaxDepth bounds decode recursion over nested vectors and maps.
const DefaultMaxDepth = 32

// Decode converts one ScVal into a native Value with the default depth
// bound. It is pure and total: malformed input yields Absent at the point
// of failure without affecting already-decoded siblings.
func Decode(v xdr.ScVal) Value {
	return DecodeWithDepth(v, DefaultMaxDepth)
}

// DecodeWithDepth decodes with an explicit recursion bound. Exceeding the
// bound collapses the subtree to Absent.
func DecodeWithDepth(v xdr.ScVal, maxDepth int) (out Value) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	defer func() {
		if recover() != nil {
			out = Absent()
		}
	}()
	return decode(v, maxDepth)
}

func decode(v xdr.ScVal, depth int) Value {
	if depth <= 0 {
		return Absent()
	}

	switch v.Type {
	case xdr.ScValTypeScvBool:
		if v.B == nil {
			return Absent()
		}
		return Bool(*v.B)
	case xdr.ScValTypeScvVoid:
		return Null()
	case xdr.ScValTypeScvU32:
		if v.U32 == nil {
			return Absent()
		}
		return Int(new(big.Int).SetUint64(uint64(*v.U32)))
	case xdr.ScValTypeScvI32:
		if v.I32 == nil {
			return Absent()
		}
		return Int(big.NewInt(int64(*v.I32)))
	case xdr.ScValTypeScvU64:
		if v.U64 == nil {
			return Absent()
		}
		return Int(new(big.Int).SetUint64(uint64(*v.U64)))
	case xdr.ScValTypeScvI64:
		if v.I64 == nil {
			return Absent()
		}
		return Int(big.NewInt(int64(*v.I64)))
	case xdr.ScValTypeScvTimepoint:
		if v.Timepoint == nil {
			return Absent()
		}
		return Int(new(big.Int).SetUint64(uint64(*v.Timepoint)))
	case xdr.ScValTypeScvDuration:
		if v.Duration == nil {
			return Absent()
		}
		return Int(new(big.Int).SetUint64(uint64(*v.Duration)))
	case xdr.ScValTypeScvU128:
		if v.U128 == nil {
			return Absent()
		}
		return Int(u128ToBig(*v.U128))
	case xdr.ScValTypeScvI128:
		if v.I128 == nil {
			return Absent()
		}
		return Int(i128ToBig(*v.I128))
	case xdr.ScValTypeScvU256:
		if v.U256 == nil {
			return Absent()
		}
		return Int(u256ToBig(*v.U256))
	case xdr.ScValTypeScvI256:
		if v.I256 == nil {
			return Absent()
		}
		return Int(i256ToBig(*v.I256))
	case xdr.ScValTypeScvBytes:
		if v.Bytes == nil {
			return Absent()
		}
		data := make([]byte, len(*v.Bytes))
		copy(data, *v.Bytes)
		return Bytes(data)
	case xdr.ScValTypeScvString:
		if v.Str == nil {
			return Absent()
		}
		return Str(string(*v.Str))
	case xdr.ScValTypeScvSymbol:
		if v.Sym == nil {
			return Absent()
		}
		return Str(string(*v.Sym))
	case xdr.ScValTypeScvAddress:
		if v.Address == nil {
			return Absent()
		}
		return decodeAddress(*v.Address)
	case xdr.ScValTypeScvVec:
		if v.Vec == nil || *v.Vec == nil {
			return Absent()
		}
		return decodeVec(**v.Vec, depth)
	case xdr.ScValTypeScvMap:
		if v.Map == nil || *v.Map == nil {
			return Absent()
		}
		return decodeMap(**v.Map, depth)
	default:
		return Absent()
	}
}

func decodeVec(vec xdr.ScVec, depth int) Value {
	elems := make([]Value, 0, len(vec))
	for _, item := range vec {
		elems = append(elems, decode(item, depth-1))
	}
	return List(elems)
}

func decodeMap(m xdr.ScMap, depth int) Value {
	entries := make([]MapEntry, 0, len(m))
	for _, entry := range m {
		key := decode(entry.Key, depth-1)
		keyStr, ok := key.AsString()
		if !ok {
			// keys are symbols in practice; anything else is malformed
			return Absent()
		}
		entries = append(entries, MapEntry{Key: keyStr, Val: decode(entry.Val, depth-1)})
	}
	return Map(entries)
}

func decodeAddress(a xdr.ScAddress) Value {
	switch a.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		if a.AccountId == nil {
			return Absent()
		}
		return Str(a.AccountId.Address())
	case xdr.ScAddressTypeScAddressTypeContract:
		if a.ContractId == nil {
			return Absent()
		}
		encoded, err := strkey.Encode(strkey.VersionByteContract, a.ContractId[:])
		if err != nil {
			return Absent()
		}
		return Str(encoded)
	default:
		return Absent()
	}
}

func u128ToBig(p xdr.UInt128Parts) *big.Int {
	out := new(big.Int).SetUint64(uint64(p.Hi))
	out.Lsh(out, 64)
	return out.Add(out, new(big.Int).SetUint64(uint64(p.Lo)))
}

func i128ToBig(p xdr.Int128Parts) *big.Int {
	out := big.NewInt(int64(p.Hi))
	out.Lsh(out, 64)
	return out.Add(out, new(big.Int).SetUint64(uint64(p.Lo)))
}

func u256ToBig(p xdr.UInt256Parts) *big.Int {
	out := new(big.Int).SetUint64(uint64(p.HiHi))
	for _, limb := range []uint64{uint64(p.HiLo), uint64(p.LoHi), uint64(p.LoLo)} {
		out.Lsh(out, 64)
		out.Add(out, new(big.Int).SetUint64(limb))
	}
	return out
}

func i256ToBig(p xdr.Int256Parts) *big.Int {
	out := big.NewInt(int64(p.HiHi))
	for _, limb := range []uint64{uint64(p.HiLo), uint64(p.LoHi), uint64(p.LoLo)} {
		out.Lsh(out, 64)
		out.Add(out, new(big.Int).SetUint64(limb))
	}
	return out
}
