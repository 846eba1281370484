package monitor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"gopkg.in/yaml.v3"

	"github.com/l1sload/l1scroller/l1-scroller/scroller"
	"github.com/l1sload/l1scroller/op-service/cliutil"
)

var (
	ErrNoQueries       = errors.New("no queries")
	ErrDuplicateQuery  = errors.New("duplicate query name")
	ErrUnknownFormat   = errors.New("unknown query file format")
	ErrMissingName     = errors.New("query name is required")
	ErrMissingContract = errors.New("query contract is required")
)

// Query is one slot to poll, as written in a query file:
//
//	[[query]]
//	name = "counter"
//	contract = "0xA8E50c2607678747D9d8A24AC52234712bE41fD9"
//	slot = "0"
//	kind = "uint"
type Query struct {
	Name     string `toml:"name" yaml:"name"`
	Contract string `toml:"contract" yaml:"contract"`
	Slot     string `toml:"slot" yaml:"slot"`
	Kind     string `toml:"kind" yaml:"kind"`
}

type queryFile struct {
	Queries []Query `toml:"query" yaml:"query"`
}

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// LoadQueries reads a query file, picking the format from its extension.
func LoadQueries(path string) ([]Query, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}
	return ParseQueries(data, format)
}

func ParseQueries(data []byte, format Format) ([]Query, error) {
	var f queryFile
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode toml queries: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown query fields: %v", undecoded)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode yaml queries: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if len(f.Queries) == 0 {
		return nil, ErrNoQueries
	}
	return f.Queries, nil
}

// target is a validated query.
type target struct {
	name     string
	contract common.Address
	slot     *uint256.Int
	kind     scroller.Kind
}

func (q Query) target() (target, error) {
	if q.Name == "" {
		return target{}, ErrMissingName
	}
	if q.Contract == "" {
		return target{}, fmt.Errorf("query %s: %w", q.Name, ErrMissingContract)
	}
	contract, err := cliutil.ParseAddress(q.Contract)
	if err != nil {
		return target{}, fmt.Errorf("query %s: %w", q.Name, err)
	}
	slot, err := cliutil.ParseUint256(q.Slot)
	if err != nil {
		return target{}, fmt.Errorf("query %s: invalid slot: %w", q.Name, err)
	}
	kind := scroller.KindUint
	if q.Kind != "" {
		if kind, err = scroller.ParseKind(q.Kind); err != nil {
			return target{}, fmt.Errorf("query %s: %w", q.Name, err)
		}
	}
	return target{name: q.Name, contract: contract, slot: slot, kind: kind}, nil
}

func targets(queries []Query) ([]target, error) {
	if len(queries) == 0 {
		return nil, ErrNoQueries
	}
	seen := make(map[string]struct{}, len(queries))
	out := make([]target, 0, len(queries))
	for _, q := range queries {
		t, err := q.target()
		if err != nil {
			return nil, err
		}
		if _, ok := seen[t.name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateQuery, t.name)
		}
		seen[t.name] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}
