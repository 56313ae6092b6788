package trainer

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/pokertrainer/internal/randutil"
)

// GenerateTraining generates a complete training scenario. It is the single
// entry point of the package.
//
// The RNG is constructed once per call: seeded deterministically when the
// request carries a seed, from entropy otherwise. It is consumed in a fixed
// order: street resolution (when the selector names a street), then one
// Uint32 for the scenario id, then the topic generator. This ordering is
// load-bearing; changing it changes every deterministic output.
func GenerateTraining(req TrainingRequest) TrainingScenario {
	var rng *rand.Rand
	if req.Seed != nil {
		rng = randutil.New(*req.Seed)
	} else {
		rng = randutil.NewEntropy()
	}

	topic := resolveTopic(req.Topic, rng)
	scenarioID := makeScenarioID(topic, rng)

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = Beginner
	}
	ts := req.TextStyle
	if ts == "" {
		ts = Simple
	}

	switch topic {
	case PreflopDecision:
		return generatePreflop(rng, difficulty, scenarioID, ts)
	case ICMAndTournamentDecision:
		return generateICM(rng, difficulty, scenarioID, ts)
	case AntiLimperIsolation:
		return generateAntiLimper(rng, difficulty, scenarioID, ts)
	case SqueezePlay:
		return generateSqueeze(rng, difficulty, scenarioID, ts)
	case BigBlindDefense:
		return generateBBDefense(rng, difficulty, scenarioID, ts)
	case PostflopContinuationBet:
		return generateCbet(rng, difficulty, scenarioID, ts)
	case PotOddsAndEquity:
		return generatePotOdds(rng, difficulty, scenarioID, ts)
	case CheckRaiseSpot:
		return generateCheckRaise(rng, difficulty, scenarioID, ts)
	case SemiBluffDecision:
		return generateSemiBluff(rng, difficulty, scenarioID, ts)
	case ThreeBetPotCbet:
		return generateThreeBetCbet(rng, difficulty, scenarioID, ts)
	case MultiwayPot:
		return generateMultiway(rng, difficulty, scenarioID, ts)
	case TurnBarrelDecision:
		return generateBarrel(rng, difficulty, scenarioID, ts)
	case TurnProbeBet:
		return generateProbe(rng, difficulty, scenarioID, ts)
	case DelayedCbet:
		return generateDelayedCbet(rng, difficulty, scenarioID, ts)
	case BluffSpot:
		return generateBluff(rng, difficulty, scenarioID, ts)
	case RiverValueBet:
		return generateValueBet(rng, difficulty, scenarioID, ts)
	case RiverCallOrFold:
		return generateCallOrFold(rng, difficulty, scenarioID, ts)
	}
	panic(fmt.Sprintf("trainer: no generator for topic %q", string(topic)))
}

// resolveTopic resolves a selector to a concrete topic. Street selectors
// consume one RNG draw to pick among the street's topics.
func resolveTopic(sel TopicSelector, rng *rand.Rand) TrainingTopic {
	if sel.Street != nil {
		topics := sel.Street.Topics()
		return topics[rng.IntN(len(topics))]
	}
	return sel.Topic
}

// makeScenarioID derives the scenario id from one Uint32 draw:
// "{2-letter prefix}-{8 uppercase hex digits}".
func makeScenarioID(topic TrainingTopic, rng *rand.Rand) string {
	return fmt.Sprintf("%s-%08X", topic.Prefix(), rng.Uint32())
}
