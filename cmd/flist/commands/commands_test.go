package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const citiesSchema = `
columns:
  - {name: country, type: string}
  - {name: city, type: string}
  - {name: pop, type: int}
`

const cities = `fr,paris,2100
de,berlin,3600
fr,lyon,500
fr,paris,2100
de,hamburg,1800
`

const capitalsSchema = `
separator: ";"
columns:
  - {name: code, type: string}
  - {name: capital, type: string}
pattern: [code, capital]
`

const capitals = `fr;paris
it;rome
de;berlin
`

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

type fixture struct {
	cities, citiesSchema     string
	capitals, capitalsSchema string
}

func newFixture(t *testing.T) fixture {
	dir := t.TempDir()
	return fixture{
		cities:         writeFile(t, dir, "cities.csv", cities),
		citiesSchema:   writeFile(t, dir, "cities.yaml", citiesSchema),
		capitals:       writeFile(t, dir, "capitals.txt", capitals),
		capitalsSchema: writeFile(t, dir, "capitals.yaml", capitalsSchema),
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestGroup(t *testing.T) {
	fx := newFixture(t)

	out, err := execute(t, "group", fx.cities, "-s", fx.citiesSchema, "--key", "country", "--value", "city")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"fr\tparis, lyon, paris",
		"de\tberlin, hamburg",
	}, lines(out))
}

func TestGroupWholeRow(t *testing.T) {
	fx := newFixture(t)

	out, err := execute(t, "group", fx.capitals, "-s", fx.capitalsSchema, "-k", "code")
	require.NoError(t, err)
	assert.Equal(t, "fr\t(fr, paris)", lines(out)[0])
}

func TestGroupUnknownName(t *testing.T) {
	fx := newFixture(t)

	_, err := execute(t, "group", fx.cities, "-s", fx.citiesSchema, "--key", "region")
	assert.ErrorContains(t, err, `has no name "region"`)
}

func TestGroupRequiresSchema(t *testing.T) {
	fx := newFixture(t)

	_, err := execute(t, "group", fx.cities, "--key", "country")
	assert.Error(t, err)
}

func TestReduce(t *testing.T) {
	fx := newFixture(t)

	cases := []struct {
		op   string
		want []string
	}{
		{"sum", []string{"fr\t4700", "de\t5400"}},
		{"count", []string{"fr\t3", "de\t2"}},
		{"max", []string{"fr\t2100", "de\t3600"}},
		{"min", []string{"fr\t500", "de\t1800"}},
		{"first", []string{"fr\t2100", "de\t3600"}},
		{"last", []string{"fr\t2100", "de\t1800"}},
	}
	for _, tc := range cases {
		t.Run(tc.op, func(t *testing.T) {
			out, err := execute(t, "reduce", fx.cities, "-s", fx.citiesSchema, "-k", "country", "--value", "pop", "--op", tc.op)
			require.NoError(t, err)
			assert.Equal(t, tc.want, lines(out))
		})
	}
}

func TestReduceStrings(t *testing.T) {
	fx := newFixture(t)

	out, err := execute(t, "reduce", fx.cities, "-s", fx.citiesSchema, "-k", "country", "--value", "city", "--op", "min")
	require.NoError(t, err)
	assert.Equal(t, []string{"fr\tlyon", "de\tberlin"}, lines(out))

	_, err = execute(t, "reduce", fx.cities, "-s", fx.citiesSchema, "-k", "country", "--value", "city", "--op", "sum")
	assert.ErrorContains(t, err, "is not a number")
}

func TestReduceUnknownOp(t *testing.T) {
	fx := newFixture(t)

	_, err := execute(t, "reduce", fx.cities, "-s", fx.citiesSchema, "-k", "country", "--op", "median")
	assert.ErrorContains(t, err, `unknown reduction "median"`)
}

func TestJoin(t *testing.T) {
	fx := newFixture(t)

	out, err := execute(t, "join", fx.capitals, fx.cities,
		"--left-schema", fx.capitalsSchema, "--right-schema", fx.citiesSchema,
		"--on", "code", "--right-on", "country")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"fr\tparis\tfr\tparis\t2100",
		"fr\tparis\tfr\tlyon\t500",
		"fr\tparis\tfr\tparis\t2100",
		"de\tberlin\tde\tberlin\t3600",
		"de\tberlin\tde\thamburg\t1800",
	}, lines(out))
}

func TestJoinKeepKey(t *testing.T) {
	fx := newFixture(t)

	out, err := execute(t, "join", fx.capitals, fx.cities,
		"--left-schema", fx.capitalsSchema, "--right-schema", fx.citiesSchema,
		"--on", "capital", "--right-on", "city", "--keep-key")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"paris\tfr\tparis\tfr\tparis\t2100",
		"paris\tfr\tparis\tfr\tparis\t2100",
		"berlin\tde\tberlin\tde\tberlin\t3600",
	}, lines(out))
}

func TestJoinSameSchema(t *testing.T) {
	fx := newFixture(t)

	out, err := execute(t, "join", fx.capitals, fx.capitals, "--left-schema", fx.capitalsSchema, "--on", "code")
	require.NoError(t, err)
	assert.Len(t, lines(out), 3)
}

func TestJoinBadRightKey(t *testing.T) {
	fx := newFixture(t)

	_, err := execute(t, "join", fx.capitals, fx.cities,
		"--left-schema", fx.capitalsSchema, "--right-schema", fx.citiesSchema, "--on", "code")
	assert.ErrorContains(t, err, "right:")
}

func TestDistinct(t *testing.T) {
	fx := newFixture(t)

	out, err := execute(t, "distinct", fx.cities, "-s", fx.citiesSchema)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"fr\tparis\t2100",
		"de\tberlin\t3600",
		"fr\tlyon\t500",
		"de\thamburg\t1800",
	}, lines(out))
}

func TestDistinctBy(t *testing.T) {
	fx := newFixture(t)

	out, err := execute(t, "distinct", fx.cities, "-s", fx.citiesSchema, "--by", "country")
	require.NoError(t, err)
	assert.Equal(t, []string{"fr", "de"}, lines(out))

	out, err = execute(t, "distinct", fx.cities, "-s", fx.citiesSchema, "--by", "city,country")
	require.NoError(t, err)
	assert.Equal(t, []string{"paris\tfr", "berlin\tde", "lyon\tfr", "hamburg\tde"}, lines(out))
}

func TestTableFormat(t *testing.T) {
	fx := newFixture(t)

	out, err := execute(t, "distinct", fx.cities, "-s", fx.citiesSchema, "--by", "country,city", "--format", "table")
	require.NoError(t, err)
	assert.Equal(t, "fr  paris", lines(out)[0])
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, "version", "--format", "xml")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestBadSchemaFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "bad.yaml", "columns: [{name: a, type: decimal}]")
	data := writeFile(t, dir, "a.csv", "1\n")

	_, err := execute(t, "distinct", data, "-s", schemaPath)
	assert.ErrorContains(t, err, `unknown column type "decimal"`)
}

func TestBadRow(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "s.yaml", "columns: [{name: a, type: int}]")
	data := writeFile(t, dir, "a.csv", "1\nnope\n")

	_, err := execute(t, "distinct", data, "-s", schemaPath)
	assert.ErrorContains(t, err, "line 2 column 0")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "flist version dev\n", out)
}

func TestReduceSumKeepsIntegersExact(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "n.yaml", "columns: [{name: k, type: string}, {name: n, type: int}, {name: f, type: float}]")
	data := writeFile(t, dir, "n.csv", `big,9007199254740993,1e21
big,1,1e21
edge,9223372036854775807,0.5
edge,1,0.25
`)

	out, err := execute(t, "reduce", data, "-s", schemaPath, "-k", "k", "--value", "n", "--op", "sum")
	require.NoError(t, err)
	assert.Equal(t, []string{"big\t9007199254740994", "edge\t9223372036854775808"}, lines(out))

	out, err = execute(t, "reduce", data, "-s", schemaPath, "-k", "k", "--value", "f", "--op", "sum")
	require.NoError(t, err)
	assert.Equal(t, []string{"big\t2000000000000000000000", "edge\t0.75"}, lines(out))

	out, err = execute(t, "reduce", data, "-s", schemaPath, "-k", "k", "--value", "n", "--op", "max")
	require.NoError(t, err)
	assert.Equal(t, []string{"big\t9007199254740993", "edge\t9223372036854775807"}, lines(out))
}

func TestDistinctNestedRows(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "p.yaml", `
columns:
  - {name: id, type: string}
  - {name: lat, type: float}
  - {name: lon, type: float}
pattern: [id, lat, lon]
`)
	data := writeFile(t, dir, "p.csv", "a,1.5,2\nb,1.5,2\na,1.5,2\n")

	out, err := execute(t, "distinct", data, "-s", schemaPath, "--by", "lat,lon")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.5\t2"}, lines(out))
}
