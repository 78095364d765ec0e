// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// Tally returns the index of the proposal with the most votes. Proposals
// are scanned in index order and the leader only changes on a strictly
// greater count, so the lowest index wins a tie. An empty slice or one with
// no votes yields 0.
func Tally(proposals []Proposal) int {
	winner := 0
	best := 0
	for i, p := range proposals {
		if p.VoteCount > best {
			best = p.VoteCount
			winner = i
		}
	}
	return winner
}
