// Package ntclient reshapes a training scenario into the table-state JSON
// the web table client renders. The client expects a fixed 6-seat layout
// with the hero in seat 1 and the villain in seat 2, a 5-slot community
// card array padded with empty strings, and hidden cards written as "b".
package ntclient

import (
	"fmt"

	"github.com/lox/pokertrainer/poker"
	"github.com/lox/pokertrainer/trainer"
)

// Currency is the play-money currency code the client displays.
const Currency = "xPKR"

// TableState is the top-level NtTableState message.
type TableState struct {
	NtType      string `json:"nt_type"`
	PlayerID    uint32 `json:"player_id"`
	PoolID      int    `json:"pool_id"`
	Data        Data   `json:"data"`
	ServiceType string `json:"service_type"`
}

// Data wraps the three state sections of an NtTableState.
type Data struct {
	DataState  DataState   `json:"data_state"`
	TableState StreetState `json:"table_state"`
	SeatsState []Seat      `json:"seats_state"`
}

// DataState carries table-level metadata: blinds, pot, button position.
type DataState struct {
	TableID         int         `json:"table_id"`
	DisplayTableID  string      `json:"display_table_id"`
	ActiveSeatIdx   int         `json:"active_seat_idx"`
	SeatIdxBB       int         `json:"seat_idx_bb"`
	SeatIdxSB       int         `json:"seat_idx_sb"`
	SeatIdxButton   int         `json:"seat_idx_button"`
	Pot             []float64   `json:"pot"`
	SBAmount        float64     `json:"sb_amount"`
	BBAmount        float64     `json:"bb_amount"`
	ActionTimeLimit Duration    `json:"action_time_limit"`
	DelayType       string      `json:"delay_type"`
	PoolType        string      `json:"pool_type"`
	Blitz           bool        `json:"blitz"`
	Spectating      bool        `json:"spectating"`
	Pots            [][]PotView `json:"pots"`
}

// Duration mirrors the client's {secs, nanos} encoding.
type Duration struct {
	Secs  int `json:"secs"`
	Nanos int `json:"nanos"`
}

// PotView is one rendered pot.
type PotView struct {
	PotID        int     `json:"pot_id"`
	Value        float64 `json:"value"`
	DisplayValue float64 `json:"displayValue"`
	Position     string  `json:"position"`
}

// StreetState carries the street name and the 5 community card slots.
type StreetState struct {
	GameState      string        `json:"game_state"`
	CommunityCards []CardSlot    `json:"community_cards"`
	ShowdownState  ShowdownState `json:"showdown_state"`
}

// ShowdownState is always empty in a training scenario.
type ShowdownState struct {
	FirstSeatIdxToShow int            `json:"first_seat_idx_to_show"`
	Winners            map[string]any `json:"winners"`
}

// CardSlot is one rendered card. Card is "" for an empty slot and "b" for
// a face-down card.
type CardSlot struct {
	ID              int    `json:"id"`
	Card            string `json:"card"`
	IsCombination   bool   `json:"isCombination"`
	IsNoCombination bool   `json:"isNoCombination"`
}

// Amount is a currency-tagged chip value.
type Amount struct {
	Value    int    `json:"value"`
	Currency string `json:"currency"`
}

// ActionOption lists the actions currently open to a seat.
type ActionOption struct {
	Actions    []string `json:"actions"`
	MinBet     int      `json:"min_bet"`
	MaxBet     int      `json:"max_bet"`
	CallAmount int      `json:"call_amount"`
}

// PreActions is the pre-select checkbox state, always all false here.
type PreActions struct {
	Check bool `json:"check"`
	Call  bool `json:"call"`
	Fold  bool `json:"fold"`
	Raise bool `json:"raise"`
	Bet   bool `json:"bet"`
}

// Seat is one of the six seats the client renders.
type Seat struct {
	SeatIdx      int          `json:"seat_idx"`
	PlayerID     uint32       `json:"player_id"`
	IsPlaying    bool         `json:"is_playing"`
	IsFolded     bool         `json:"is_folded"`
	IsAllIn      bool         `json:"is_all_in"`
	IsInSitOut   bool         `json:"is_in_sit_out"`
	RebuyTime    *int         `json:"rebuy_time"`
	Stack        Amount       `json:"stack"`
	Name         string       `json:"name"`
	Bet          int          `json:"bet"`
	LastAction   string       `json:"last_action"`
	Cards        []CardSlot   `json:"cards"`
	ActionOption ActionOption `json:"action_option"`
	PreActions   PreActions   `json:"pre_actions"`
	Country      *string      `json:"country"`
	Image        *string      `json:"image"`
	IsShowdown   bool         `json:"isShowdown"`
	IsActive     bool         `json:"is_active"`
	Emoji        *string      `json:"emoji"`
}

// ClientCard renders a card the way the table client expects: rank ten is
// spelled out as "10", everything else uses the usual short form.
func ClientCard(c poker.Card) string {
	if c.Rank == poker.Ten {
		return "10" + c.Suit.String()
	}
	return c.String()
}

// GameState derives the client street name from the board length.
func GameState(boardLen int) string {
	switch boardLen {
	case 0:
		return "PreFlop"
	case 3:
		return "Flop"
	case 4:
		return "Turn"
	default:
		return "River"
	}
}

func communityCards(board []poker.Card) []CardSlot {
	slots := make([]CardSlot, 5)
	for i := range slots {
		slots[i].ID = i
		if i < len(board) {
			slots[i].Card = ClientCard(board[i])
		}
	}
	return slots
}

func hiddenCard(id int) CardSlot {
	return CardSlot{ID: id, Card: "b"}
}

func visibleCard(id int, c poker.Card) CardSlot {
	return CardSlot{ID: id, Card: ClientCard(c)}
}

func emptySeat(idx int) Seat {
	return Seat{
		SeatIdx:      idx,
		Stack:        Amount{Currency: Currency},
		Cards:        []CardSlot{},
		ActionOption: ActionOption{Actions: []string{}},
	}
}

// positionSeats maps the blind and button positions onto seat indices.
// 0 means no seat holds that position.
func positionSeats(heroPos, villainPos trainer.Position) (bb, sb, btn int) {
	seatFor := func(p trainer.Position) int {
		if p == heroPos {
			return 1
		}
		return 2
	}
	for _, pos := range []trainer.Position{heroPos, villainPos} {
		switch pos {
		case trainer.BB:
			bb = seatFor(pos)
		case trainer.SB:
			sb = seatFor(pos)
		case trainer.BTN:
			btn = seatFor(pos)
		}
	}
	return bb, sb, btn
}

// ToTableState maps a training scenario to the NtTableState the client
// renders. heroPlayerID is the numeric player id of the viewing user.
func ToTableState(scenario *trainer.TrainingScenario, heroPlayerID uint32) TableState {
	setup := &scenario.TableSetup
	board := setup.Board

	// The client renders heads-up: seat 1 is the hero, seat 2 the first
	// listed opponent. Extra opponents in multiway scenarios are not drawn.
	villainPos := trainer.BB
	villainStack := 100
	heroStack := 100
	villainFound := false
	for _, p := range setup.Players {
		switch {
		case p.IsHero:
			heroStack = p.Stack
		case !villainFound:
			villainPos = p.Position
			villainStack = p.Stack
			villainFound = true
		}
	}

	bbSeat, sbSeat, btnSeat := positionSeats(setup.HeroPosition, villainPos)

	pot := float64(setup.PotSize)
	currentBet := setup.CurrentBet

	heroSeat := Seat{
		SeatIdx:   1,
		PlayerID:  heroPlayerID,
		IsPlaying: true,
		IsActive:  true,
		Stack:     Amount{Value: heroStack, Currency: Currency},
		Name:      "You",
		Cards: []CardSlot{
			visibleCard(0, setup.HeroHand[0]),
			visibleCard(1, setup.HeroHand[1]),
		},
		ActionOption: ActionOption{Actions: []string{}, CallAmount: currentBet},
	}

	villainLastAction := ""
	if currentBet > 0 {
		villainLastAction = "Bet"
	}
	villainSeat := Seat{
		SeatIdx:      2,
		PlayerID:     heroPlayerID + 1,
		IsPlaying:    true,
		Stack:        Amount{Value: villainStack, Currency: Currency},
		Name:         "Villain",
		Bet:          currentBet,
		LastAction:   villainLastAction,
		Cards:        []CardSlot{hiddenCard(0), hiddenCard(1)},
		ActionOption: ActionOption{Actions: []string{}},
	}

	return TableState{
		NtType:   "NtTableState",
		PlayerID: heroPlayerID,
		Data: Data{
			DataState: DataState{
				TableID:        9999,
				DisplayTableID: fmt.Sprintf("training/%s", scenario.ScenarioID),
				ActiveSeatIdx:  1,
				SeatIdxBB:      bbSeat,
				SeatIdxSB:      sbSeat,
				SeatIdxButton:  btnSeat,
				Pot:            []float64{pot},
				SBAmount:       1.0,
				BBAmount:       2.0,
				DelayType:      "UserActionDelay",
				PoolType:       "CommonHoldem",
				Pots: [][]PotView{{
					{PotID: 0, Value: pot, DisplayValue: pot},
				}},
			},
			TableState: StreetState{
				GameState:      GameState(len(board)),
				CommunityCards: communityCards(board),
				ShowdownState:  ShowdownState{Winners: map[string]any{}},
			},
			SeatsState: []Seat{
				emptySeat(0),
				heroSeat,
				villainSeat,
				emptySeat(3),
				emptySeat(4),
				emptySeat(5),
			},
		},
		ServiceType: "free",
	}
}
