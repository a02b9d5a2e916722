package params_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopchain/params"
	"github.com/katalvlaran/loopchain/params/paramstest"
)

func TestLoad_ScenarioFileMatchesFixture(t *testing.T) {
	fromFile, err := params.Load("../testdata/scenario.yaml")
	require.NoError(t, err)
	fixture := paramstest.Scenario()

	assert.Equal(t, fixture.Sets(), fromFile.Sets())
	for _, id := range fixture.Sets().Collections {
		want, _ := fixture.Collection(id)
		got, err := fromFile.Collection(id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	wantP, _ := fixture.Product("Mono")
	gotP, err := fromFile.Product("Mono")
	require.NoError(t, err)
	assert.Equal(t, wantP, gotP)
	assert.Equal(t, fixture.Transport(), fromFile.Transport())
	assert.Equal(t, fixture.QualityMix(), fromFile.QualityMix())
	assert.Equal(t, fixture.Distance("O1", "F1"), fromFile.Distance("O1", "F1"))
}

func TestDecode_RejectsMissingDistanceDefault(t *testing.T) {
	doc := `
sets: {plants: [P], customers: [C], products: [K]}
plants: {P: {production_cost: 1, emission: 1, capacity: {limit: 10, unit: count}}}
products: {K: {weight: 1}}
distance: {pairs: []}
`
	_, err := params.Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, params.ErrNoDefaultDistance)
}

func TestDecode_RejectsUnknownKeysAndUnits(t *testing.T) {
	_, err := params.Decode(strings.NewReader("sets: {plants: [P]}\nbogus: 1\n"))
	require.Error(t, err)

	doc := `
sets: {plants: [P], customers: [C], products: [K]}
plants: {P: {production_cost: 1, emission: 1, capacity: {limit: 10, unit: litres}}}
products: {K: {weight: 1}}
distance: {default: 10}
`
	_, err = params.Decode(strings.NewReader(doc))
	assert.ErrorIs(t, err, params.ErrInvalidValue)
}

func TestDecode_MinimalNetwork(t *testing.T) {
	doc := `
sets: {plants: [P], customers: [C], products: [K]}
plants: {P: {production_cost: 1, emission: 2, capacity: {limit: 10, unit: count}}}
products: {K: {weight: 3, shortage_penalty: 9}}
demand: [{customer: C, product: K, demand: 4}]
distance: {default: 10}
transport: {cost_rate: 0.1}
`
	b, err := params.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 4.0, b.Demand("C", "K"))
	assert.Equal(t, 0.0, b.Returns("C", "K"))
	assert.Equal(t, 10.0, b.Distance("P", "C"))
}
