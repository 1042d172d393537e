package ai

// Predict picks the card for pointValue. Once enough rounds have been played it looks
// for a predictable opponent response and tries to beat it by one; every other path
// ends in the middle-field strategy.
func (e *Engine) Predict(pointValue int) (int, error) {
	if len(e.deps.Hand.Remaining()) == 0 {
		return 0, ErrEmptyHand
	}

	round := e.deps.Clock.RoundsPlayed()
	if round < e.settings.MinRounds || round < e.settings.TotalRounds/10 {
		return e.middleFieldCard(pointValue)
	}

	ranked, ok := e.stats.Query(pointValue)
	if !ok {
		e.log.Debugf("No statistics for point value %d yet.", pointValue)
		return e.middleFieldCard(pointValue)
	}

	sum := e.stats.Total(pointValue)
	for i, r := range ranked {
		last := i == len(ranked)-1
		share := float64(r.Weight) * 100 / float64(sum)

		// Ranked heaviest first, so nothing after this can clear the threshold either.
		if share <= e.settings.ConfidenceThreshold {
			e.log.Debugf("Top response %d to %d has only %.1f%%; opponent looks random.", r.Value, pointValue, share)
			return e.middleFieldCard(pointValue)
		}

		if e.deps.Opponent.CanPlay(r.Value) {
			card, ok, err := e.cardThatBeats(r.Value, pointValue)
			if err != nil {
				return 0, err
			}
			if ok {
				return card, nil
			}
			continue
		}

		if last {
			return e.middleFieldCard(pointValue)
		}
	}

	return e.middleFieldCard(pointValue)
}

// cardThatBeats plays predicted+1 when we hold it. A predicted MaxCardValue is not
// contested; the middle-field card is returned instead. ok is false when the
// caller should try the next-ranked response.
func (e *Engine) cardThatBeats(predicted, pointValue int) (card int, ok bool, err error) {
	if predicted == MaxCardValue {
		e.log.Debugf("Expecting %d for %d; not wasting a card on a draw.", predicted, pointValue)
		card, err = e.middleFieldCard(pointValue)
		return card, err == nil, err
	}

	answer := predicted + 1
	if !e.deps.Hand.CanPlay(answer) {
		return 0, false, nil
	}

	// Keep the fallback fields in step with cards spent here.
	e.fields.Remove(e.assignField(pointValue), answer)
	e.log.Infof("Expecting %d for point value %d; answering with %d.", predicted, pointValue, answer)
	card, err = e.take(answer)
	return card, err == nil, err
}
