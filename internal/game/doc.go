// Package game implements a single-player Jacks or Better video poker session.
//
// A Session owns its own deck and moves through a fixed cycle of phases:
//
//	PhaseBetting  -> Bet(amount), then Deal()
//	PhaseHolding  -> ToggleHold(pos) / Hold(positions...), then Draw()
//	PhaseSettled  -> Bet(amount) starts the next hand
//	PhaseBroke    -> balance is exhausted, no further play
//
// # Basic Usage
//
//	s, err := game.NewSession(game.WithBalance(100))
//	if err != nil {
//	    return err
//	}
//	_ = s.Bet(5)
//	hand, _ := s.Deal()
//	_ = s.Hold(1, 4, 5)
//	outcome, _ := s.Draw()
//	fmt.Println(outcome.Result.Describe(), outcome.Payout)
//
// # Deterministic Testing
//
// Inject the random source and clock so deals and record timestamps repeat:
//
//	s, _ := game.NewSession(
//	    game.WithRand(randutil.New(42)),
//	    game.WithClock(quartz.NewMock(t)),
//	)
package game
