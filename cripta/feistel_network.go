package cripta

import (
	"fmt"
)

// FeistelNetwork runs a balanced Feistel network over two 32-bit halves.
// Every round computes left, right = right, left ^ F(right, k[round]), and
// the halves are emitted right-then-left after the last round, which undoes
// the final swap.
type FeistelNetwork struct {
	keySchedule   IKeySchedule
	roundFunction IRoundFunction

	roundsCount int

	roundKeys []uint64
}

func NewFeistelNetwork(
	keyScheduleImpl IKeySchedule,
	roundFunctionImpl IRoundFunction,
	roundsCount int,
) (*FeistelNetwork, error) {

	if keyScheduleImpl == nil {
		return nil, fmt.Errorf("key schedule implementation cannot be nil")
	}
	if roundFunctionImpl == nil {
		return nil, fmt.Errorf("round function implementation cannot be nil")
	}
	if roundsCount <= 0 {
		return nil, fmt.Errorf("rounds count must be positive, got %d",
			roundsCount)
	}

	return &FeistelNetwork{
		keySchedule:   keyScheduleImpl,
		roundFunction: roundFunctionImpl,
		roundsCount:   roundsCount,
	}, nil
}

func (fn *FeistelNetwork) RoundsCount() int {
	return fn.roundsCount
}

// SetKey expands key through the key schedule. Round keys are replaced only
// when the schedule succeeds.
func (fn *FeistelNetwork) SetKey(key []uint8) error {
	roundKeys, err := fn.keySchedule.GenerateRoundKeys(key)
	if err != nil {
		return fmt.Errorf("failed to generate round keys: %w", err)
	}

	if len(roundKeys) < fn.roundsCount {
		return fmt.Errorf("key schedule generated insufficient round "+
			"keys: got %d, need %d", len(roundKeys), fn.roundsCount)
	}

	fn.roundKeys = roundKeys

	log.Tracef("Feistel network keyed: %d rounds", fn.roundsCount)

	return nil
}

// EncryptHalves runs every round over (left, right) and returns the halves
// in output order: the final right half first, then the final left half.
func (fn *FeistelNetwork) EncryptHalves(left, right uint32) (uint32, uint32,
	error) {

	if len(fn.roundKeys) == 0 {
		return 0, 0, fmt.Errorf("%w: call SetKey() before encryption",
			ErrKeyNotSet)
	}

	for round := 0; round < fn.roundsCount; round++ {
		left, right = right,
			left^fn.roundFunction.Apply(right, fn.roundKeys[round])
	}

	return right, left, nil
}
