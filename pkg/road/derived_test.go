package road

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hist(cols ...Column[Outcome]) History[Outcome] {
	return History[Outcome](cols)
}

func col(m Outcome, n int) Column[Outcome] {
	return Column[Outcome]{Marker: m, Length: n}
}

func TestKind_Signal(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		history  History[Outcome]
		expected Signal
	}{
		{"empty history", BigEye, nil, NoSignal},
		{"big eye first column", BigEye, hist(col(Player, 3)), NoSignal},
		{"big eye second column head", BigEye, hist(col(Player, 1), col(Banker, 1)), NoSignal},
		{"big eye new column, lengths differ", BigEye, hist(col(Player, 3), col(Banker, 2), col(Player, 3), col(Banker, 1)), Chop},
		{"big eye new column, lengths match", BigEye, hist(col(Player, 2), col(Banker, 2), col(Player, 1)), Same},
		{"big eye growing, reference ended one row up", BigEye, hist(col(Player, 1), col(Banker, 2)), Chop},
		{"big eye growing, reference still running", BigEye, hist(col(Player, 3), col(Banker, 2)), Same},
		{"big eye growing, reference ended earlier", BigEye, hist(col(Player, 1), col(Banker, 3)), Same},

		{"small road needs three columns", SmallRoad, hist(col(Player, 1), col(Banker, 1), col(Player, 1)), NoSignal},
		{"small road growing second column", SmallRoad, hist(col(Player, 1), col(Banker, 2)), NoSignal},
		{"small road new column, lengths match", SmallRoad, hist(col(Player, 1), col(Banker, 2), col(Player, 1), col(Banker, 1)), Same},
		{"small road new column, lengths differ", SmallRoad, hist(col(Player, 2), col(Banker, 2), col(Player, 3), col(Banker, 1)), Chop},
		{"small road growing, reference ended one row up", SmallRoad, hist(col(Player, 1), col(Banker, 1), col(Player, 2)), Chop},
		{"small road growing, reference longer", SmallRoad, hist(col(Player, 2), col(Banker, 1), col(Player, 2)), Same},

		{"cockroach needs four columns", Cockroach, hist(col(Player, 1), col(Banker, 1), col(Player, 1), col(Banker, 1)), NoSignal},
		{"cockroach new column, lengths match", Cockroach, hist(col(Player, 1), col(Banker, 1), col(Player, 1), col(Banker, 1), col(Player, 1)), Same},
		{"cockroach new column, lengths differ", Cockroach, hist(col(Player, 2), col(Banker, 1), col(Player, 1), col(Banker, 1), col(Player, 1)), Chop},
		{"cockroach growing, reference ended one row up", Cockroach, hist(col(Player, 1), col(Banker, 1), col(Player, 1), col(Banker, 2)), Chop},
		{"cockroach growing, reference longer", Cockroach, hist(col(Player, 4), col(Banker, 1), col(Player, 1), col(Banker, 2)), Same},

		{"zero kind never signals", Kind{}, hist(col(Player, 3), col(Banker, 2), col(Player, 3), col(Banker, 1)), NoSignal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.Signal(tt.history))
		})
	}
}

func TestKind_Properties(t *testing.T) {
	assert.Equal(t, []Kind{BigEye, SmallRoad, Cockroach}, Kinds())
	assert.Equal(t, 2, BigEye.Offset())
	assert.Equal(t, 3, SmallRoad.Offset())
	assert.Equal(t, 4, Cockroach.Offset())
	assert.Equal(t, 1, BigEye.Index())
	assert.Equal(t, 3, Cockroach.Index())
	assert.Equal(t, "Small Road", SmallRoad.String())

	assert.NoError(t, Cockroach.Validate())
	assert.Error(t, Kind{}.Validate())
	assert.Error(t, Kind{offset: 5, index: 4, name: "Five"}.Validate())
}

func TestNewDerivedRoad(t *testing.T) {
	d, err := NewDerivedRoad(SmallRoad, DefaultSize)
	require.NoError(t, err)
	assert.Equal(t, SmallRoad, d.Kind())

	_, err = NewDerivedRoad(Kind{}, DefaultSize)
	assert.Error(t, err)

	_, err = NewDerivedRoad(BigEye, Size{})
	assert.Error(t, err)
}

func TestDerivedRoad_MarkAndRender(t *testing.T) {
	d, err := NewDerivedRoad(BigEye, DefaultSize)
	require.NoError(t, err)

	assert.False(t, d.Mark(NoSignal))
	assert.True(t, d.Mark(Same))
	assert.True(t, d.Mark(Same))
	assert.True(t, d.Mark(Chop))

	assert.Equal(t, History[Signal]{{Same, 2}, {Chop, 1}}, d.History())
	expected := expectBoard(1, []string{"sC", "s"}, []int{2, 1, 0, 0, 0, 0})
	assert.Equal(t, expected, d.String())

	require.True(t, d.RemoveLast())
	assert.Equal(t, expectBoard(1, []string{"s", "s"}, []int{1, 1, 0, 0, 0, 0}), d.String())

	d.Reset()
	assert.Empty(t, d.History())
}

func TestDerivedRoad_Update(t *testing.T) {
	big := newTestBigRoad(t)
	eye, err := NewDerivedRoad(BigEye, DefaultSize)
	require.NoError(t, err)

	// P P B B P B : columns (P2)(B2)(P1)(B1)
	var written []Signal
	for _, o := range outcomes(t, "PPBBPB") {
		big.Mark(o)
		if s, ok := eye.Update(big.History()); ok {
			written = append(written, s)
		}
	}

	// B2 growing vs P2: Same; P1 opens: B2 vs P2 Same; B1 opens: P1 vs B2 Chop
	assert.Equal(t, []Signal{Same, Same, Chop}, written)
	assert.Equal(t, History[Signal]{{Same, 2}, {Chop, 1}}, eye.History())
}

func TestSignal_Text(t *testing.T) {
	assert.Equal(t, "s", Same.String())
	assert.Equal(t, "C", Chop.String())
	assert.Equal(t, " ", NoSignal.String())

	var s Signal
	require.NoError(t, s.UnmarshalText([]byte("C")))
	assert.Equal(t, Chop, s)
	assert.Error(t, s.UnmarshalText([]byte("x")))
}
