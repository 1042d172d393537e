package ai

import (
	"fmt"

	"geier-toolbox/internal/player"
)

// similarToUs reports whether the opponent's win count sits inside the window around
// half of ours, which suggests it plays a strategy much like this one.
func (e *Engine) similarToUs() bool {
	spread := e.settings.TotalRounds / 10
	half := e.deps.Self.WinCount() / 2
	theirs := e.deps.Opponent.WinCount()
	return half-spread < theirs && theirs < half+spread
}

// assignField returns the bucket the middle-field strategy uses for pointValue.
func (e *Engine) assignField(pointValue int) BucketID {
	return Classify(pointValue, e.similarToUs())
}

// middleFieldCard draws a random value from the point's bucket. Unplayable picks
// and unmapped point values fall back to a random card from the whole hand.
func (e *Engine) middleFieldCard(pointValue int) (int, error) {
	bucket := e.assignField(pointValue)
	if bucket == BucketNone {
		e.log.Debugf("Point value %d has no field; playing a random card.", pointValue)
		return e.randomCard()
	}

	value, ok := e.chooser.Choose(e.fields.Values(bucket))
	if !ok {
		e.log.Debugf("Field %s is exhausted; playing a random card.", bucket)
		return e.randomCard()
	}
	if !e.deps.Hand.CanPlay(value) {
		// Already spent through the statistical path.
		e.log.Debugf("Field %s picked %d but it is gone; playing a random card.", bucket, value)
		return e.randomCard()
	}

	e.fields.Remove(bucket, value)
	e.log.Debugf("Middle field %s answers %d with %d.", bucket, pointValue, value)
	return e.take(value)
}

func (e *Engine) randomCard() (int, error) {
	value, ok := e.chooser.Choose(e.deps.Hand.Remaining())
	if !ok {
		return 0, ErrEmptyHand
	}
	return e.take(value)
}

func (e *Engine) take(value int) (int, error) {
	card, ok := e.deps.Hand.Take(value)
	if !ok {
		return 0, fmt.Errorf("take %d: %w", value, player.ErrIllegalCard)
	}
	return card, nil
}
