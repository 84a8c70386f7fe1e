package ffi

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/blinklabs-io/gouplc/data"
)

// dataJSON mirrors the wire JSON schema for Plutus Data:
//
//	{"int": n} | {"bytes": hex} | {"list": [...]} |
//	{"map": [{"k": ..., "v": ...}]} | {"constructor": t, "fields": [...]}
type dataJSON struct {
	Int         *string        `json:"int,omitempty"`
	Bytes       *string        `json:"bytes,omitempty"`
	List        []dataJSON     `json:"list,omitempty"`
	Map         []dataJSONPair `json:"map,omitempty"`
	Constructor *uint64        `json:"constructor,omitempty"`
	Fields      []dataJSON     `json:"fields,omitempty"`
}

type dataJSONPair struct {
	K dataJSON `json:"k"`
	V dataJSON `json:"v"`
}

// ParseDataJSON decodes the wire JSON schema into a Data value.
func ParseDataJSON(raw []byte) (data.Data, error) {
	var dj dataJSON
	if err := json.Unmarshal(raw, &dj); err != nil {
		return nil, fmt.Errorf("ffi: invalid data JSON: %w", err)
	}
	return dj.toData()
}

func (dj dataJSON) toData() (data.Data, error) {
	switch {
	case dj.Int != nil:
		n, ok := new(big.Int).SetString(*dj.Int, 10)
		if !ok {
			return nil, fmt.Errorf("ffi: invalid integer literal %q", *dj.Int)
		}
		return data.I{Value: n}, nil
	case dj.Bytes != nil:
		b, err := hex.DecodeString(*dj.Bytes)
		if err != nil {
			return nil, fmt.Errorf("ffi: invalid bytes literal: %w", err)
		}
		return data.B{Value: b}, nil
	case dj.List != nil:
		items := make([]data.Data, len(dj.List))
		for i, el := range dj.List {
			d, err := el.toData()
			if err != nil {
				return nil, err
			}
			items[i] = d
		}
		return data.List{Items: items}, nil
	case dj.Map != nil:
		pairs := make([]data.Pair, len(dj.Map))
		for i, p := range dj.Map {
			k, err := p.K.toData()
			if err != nil {
				return nil, err
			}
			v, err := p.V.toData()
			if err != nil {
				return nil, err
			}
			pairs[i] = data.Pair{Key: k, Value: v}
		}
		return data.Map{Pairs: pairs}, nil
	case dj.Constructor != nil:
		args := make([]data.Data, len(dj.Fields))
		for i, f := range dj.Fields {
			d, err := f.toData()
			if err != nil {
				return nil, err
			}
			args[i] = d
		}
		return data.Constr{Tag: *dj.Constructor, Args: args}, nil
	default:
		return nil, fmt.Errorf("ffi: data JSON object matches no known variant")
	}
}

// EncodeDataJSON renders d in the wire JSON schema.
func EncodeDataJSON(d data.Data) ([]byte, error) {
	dj, err := fromData(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(dj)
}

func fromData(d data.Data) (dataJSON, error) {
	switch v := d.(type) {
	case data.I:
		s := v.Value.String()
		return dataJSON{Int: &s}, nil
	case data.B:
		s := hex.EncodeToString(v.Value)
		return dataJSON{Bytes: &s}, nil
	case data.List:
		items := make([]dataJSON, len(v.Items))
		for i, el := range v.Items {
			dj, err := fromData(el)
			if err != nil {
				return dataJSON{}, err
			}
			items[i] = dj
		}
		return dataJSON{List: items}, nil
	case data.Map:
		pairs := make([]dataJSONPair, len(v.Pairs))
		for i, p := range v.Pairs {
			k, err := fromData(p.Key)
			if err != nil {
				return dataJSON{}, err
			}
			val, err := fromData(p.Value)
			if err != nil {
				return dataJSON{}, err
			}
			pairs[i] = dataJSONPair{K: k, V: val}
		}
		return dataJSON{Map: pairs}, nil
	case data.Constr:
		tag := v.Tag
		fields := make([]dataJSON, len(v.Args))
		for i, a := range v.Args {
			dj, err := fromData(a)
			if err != nil {
				return dataJSON{}, err
			}
			fields[i] = dj
		}
		return dataJSON{Constructor: &tag, Fields: fields}, nil
	default:
		return dataJSON{}, fmt.Errorf("ffi: unrecognized Data variant %T", d)
	}
}
