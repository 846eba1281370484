package monitor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/l1sload/l1scroller/l1-scroller/scroller"
	"github.com/l1sload/l1scroller/op-service/cliutil"
)

const tomlQueries = `
[[query]]
name = "counter"
contract = "0xA8E50c2607678747D9d8A24AC52234712bE41fD9"
slot = "0"

[[query]]
name = "owner"
contract = "0xA8E50c2607678747D9d8A24AC52234712bE41fD9"
slot = "0x1"
kind = "address"
`

const yamlQueries = `
query:
  - name: counter
    contract: "0xA8E50c2607678747D9d8A24AC52234712bE41fD9"
    slot: "0"
  - name: owner
    contract: "0xA8E50c2607678747D9d8A24AC52234712bE41fD9"
    slot: "0x1"
    kind: address
`

func TestParseQueriesFormatsAgree(t *testing.T) {
	fromTOML, err := ParseQueries([]byte(tomlQueries), FormatTOML)
	require.NoError(t, err)
	fromYAML, err := ParseQueries([]byte(yamlQueries), FormatYAML)
	require.NoError(t, err)
	if diff := cmp.Diff(fromTOML, fromYAML); diff != "" {
		t.Fatalf("toml and yaml queries differ (-toml +yaml):\n%s", diff)
	}
	require.Len(t, fromTOML, 2)
	require.Equal(t, "owner", fromTOML[1].Name)
	require.Equal(t, "address", fromTOML[1].Kind)
}

func TestLoadQueries(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	fromTOML, err := LoadQueries(write("q.toml", tomlQueries))
	require.NoError(t, err)
	fromYML, err := LoadQueries(write("q.yml", yamlQueries))
	require.NoError(t, err)
	require.Equal(t, fromTOML, fromYML)

	_, err = LoadQueries(write("q.json", "{}"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadQueries(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseQueriesRejectsUnknownFields(t *testing.T) {
	_, err := ParseQueries([]byte("[[query]]\nname = \"a\"\nslots = \"1\"\n"), FormatTOML)
	require.ErrorContains(t, err, "slots")

	_, err = ParseQueries([]byte("query:\n  - name: a\n    slots: \"1\"\n"), FormatYAML)
	require.ErrorContains(t, err, "slots")
}

func TestParseQueriesEmpty(t *testing.T) {
	_, err := ParseQueries([]byte(""), FormatTOML)
	require.ErrorIs(t, err, ErrNoQueries)
	_, err = ParseQueries([]byte("query: []\n"), FormatYAML)
	require.ErrorIs(t, err, ErrNoQueries)
	_, err = ParseQueries([]byte(""), Format("ini"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestTargets(t *testing.T) {
	queries, err := ParseQueries([]byte(tomlQueries), FormatTOML)
	require.NoError(t, err)
	ts, err := targets(queries)
	require.NoError(t, err)
	require.Equal(t, scroller.KindUint, ts[0].kind)
	require.Equal(t, scroller.KindAddress, ts[1].kind)
	require.Equal(t, uint256.NewInt(1), ts[1].slot)

	valid := Query{Name: "a", Contract: "0xA8E50c2607678747D9d8A24AC52234712bE41fD9", Slot: "1"}
	tests := []struct {
		name   string
		mutate func(q *Query)
		err    error
	}{
		{name: "missing name", mutate: func(q *Query) { q.Name = "" }, err: ErrMissingName},
		{name: "missing contract", mutate: func(q *Query) { q.Contract = "" }, err: ErrMissingContract},
		{name: "bad contract", mutate: func(q *Query) { q.Contract = "0x12" }, err: cliutil.ErrInvalidAddress},
		{name: "missing slot", mutate: func(q *Query) { q.Slot = "" }, err: cliutil.ErrFlagBlank},
		{name: "overflowing slot", mutate: func(q *Query) { q.Slot = "0x10000000000000000000000000000000000000000000000000000000000000000" }, err: cliutil.ErrOverflow},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := valid
			test.mutate(&q)
			_, err := targets([]Query{q})
			require.ErrorIs(t, err, test.err)
		})
	}

	bad := valid
	bad.Kind = "int"
	_, err = targets([]Query{bad})
	require.ErrorContains(t, err, "unknown kind")

	_, err = targets([]Query{valid, valid})
	require.ErrorIs(t, err, ErrDuplicateQuery)

	_, err = targets(nil)
	require.ErrorIs(t, err, ErrNoQueries)
}
