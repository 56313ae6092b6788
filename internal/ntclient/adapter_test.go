package ntclient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokertrainer/poker"
	"github.com/lox/pokertrainer/trainer"
)

func generate(t *testing.T, topic trainer.TrainingTopic, seed uint64) trainer.TrainingScenario {
	t.Helper()
	req := trainer.NewRequest(topic)
	req.Seed = &seed
	return trainer.GenerateTraining(req)
}

func TestClientCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card string
		want string
	}{
		{"Tc", "10c"},
		{"Th", "10h"},
		{"As", "As"},
		{"9d", "9d"},
		{"Kh", "Kh"},
	}
	for _, tt := range tests {
		got := ClientCard(poker.MustParseCard(tt.card))
		assert.Equal(t, tt.want, got)
	}
}

func TestGameState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PreFlop", GameState(0))
	assert.Equal(t, "Flop", GameState(3))
	assert.Equal(t, "Turn", GameState(4))
	assert.Equal(t, "River", GameState(5))
}

func TestToTableStateSeats(t *testing.T) {
	t.Parallel()

	scenario := generate(t, trainer.PostflopContinuationBet, 21)
	state := ToTableState(&scenario, 77)

	assert.Equal(t, "NtTableState", state.NtType)
	assert.Equal(t, uint32(77), state.PlayerID)
	assert.Equal(t, "free", state.ServiceType)
	assert.Equal(t, "training/"+scenario.ScenarioID, state.Data.DataState.DisplayTableID)

	seats := state.Data.SeatsState
	require.Len(t, seats, 6)

	hero := seats[1]
	assert.Equal(t, 1, hero.SeatIdx)
	assert.Equal(t, uint32(77), hero.PlayerID)
	assert.Equal(t, "You", hero.Name)
	assert.True(t, hero.IsPlaying)
	assert.True(t, hero.IsActive)
	require.Len(t, hero.Cards, 2)
	assert.Equal(t, ClientCard(scenario.TableSetup.HeroHand[0]), hero.Cards[0].Card)

	villain := seats[2]
	assert.Equal(t, 2, villain.SeatIdx)
	assert.Equal(t, uint32(78), villain.PlayerID)
	assert.Equal(t, "Villain", villain.Name)
	require.Len(t, villain.Cards, 2)
	assert.Equal(t, "b", villain.Cards[0].Card)
	assert.Equal(t, "b", villain.Cards[1].Card)

	for _, idx := range []int{0, 3, 4, 5} {
		assert.False(t, seats[idx].IsPlaying, "seat %d should be empty", idx)
		assert.Empty(t, seats[idx].Cards)
	}
}

func TestToTableStateCommunityCards(t *testing.T) {
	t.Parallel()

	scenario := generate(t, trainer.TurnBarrelDecision, 4)
	state := ToTableState(&scenario, 1)

	slots := state.Data.TableState.CommunityCards
	require.Len(t, slots, 5)
	assert.Equal(t, "Turn", state.Data.TableState.GameState)

	for i := 0; i < 4; i++ {
		assert.Equal(t, ClientCard(scenario.TableSetup.Board[i]), slots[i].Card)
	}
	assert.Equal(t, "", slots[4].Card, "unused slot padded with empty string")
}

func TestToTableStatePreflop(t *testing.T) {
	t.Parallel()

	scenario := generate(t, trainer.PreflopDecision, 9)
	state := ToTableState(&scenario, 1)

	assert.Equal(t, "PreFlop", state.Data.TableState.GameState)
	for _, slot := range state.Data.TableState.CommunityCards {
		assert.Equal(t, "", slot.Card)
	}
}

func TestToTableStateBetAndPot(t *testing.T) {
	t.Parallel()

	scenario := generate(t, trainer.RiverCallOrFold, 17)
	state := ToTableState(&scenario, 1)

	setup := scenario.TableSetup
	require.Positive(t, setup.CurrentBet)

	villain := state.Data.SeatsState[2]
	assert.Equal(t, setup.CurrentBet, villain.Bet)
	assert.Equal(t, "Bet", villain.LastAction)

	hero := state.Data.SeatsState[1]
	assert.Equal(t, setup.CurrentBet, hero.ActionOption.CallAmount)

	require.Len(t, state.Data.DataState.Pot, 1)
	assert.Equal(t, float64(setup.PotSize), state.Data.DataState.Pot[0])
}

func TestToTableStateCurrency(t *testing.T) {
	t.Parallel()

	scenario := generate(t, trainer.PreflopDecision, 2)
	state := ToTableState(&scenario, 1)

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"currency":"xPKR"`)
}
