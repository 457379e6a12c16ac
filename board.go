/*
Copyright © 2026 jelly972
*/

package main

import (
	"crypto/rand"
	"encoding/binary"
)

// randIndex returns an unbiased random int in [0, n) using rejection
// sampling over crypto/rand.
func randIndex(n int) int {
	if n <= 1 {
		return 0
	}

	// Largest multiple of n that fits in 32 bits; values above it would
	// bias the modulo.
	limit := (uint64(1) << 32) / uint64(n) * uint64(n)
	buf := make([]byte, 4)

	for {
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		if v := uint64(binary.BigEndian.Uint32(buf)); v < limit {
			return int(v % uint64(n))
		}
	}
}

// shuffleCards permutes cards in place with a Fisher-Yates shuffle.
func shuffleCards(cards []CardType) {
	for i := len(cards) - 1; i > 0; i-- {
		j := randIndex(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// checkDistribution validates settings and returns the neutral card count.
func checkDistribution(settings Settings) (int, error) {
	dim := settings.Dimension()
	if dim == 0 {
		return 0, errInvalidInput("unknown board size %q", settings.BoardSize)
	}
	if settings.TeamCount < 2 || settings.TeamCount > len(teamPool) {
		return 0, errInvalidInput("team count must be between 2 and %d, got %d", len(teamPool), settings.TeamCount)
	}
	if settings.WordsPerTeam < 1 {
		return 0, errInvalidInput("words per team must be at least 1, got %d", settings.WordsPerTeam)
	}
	if settings.AssassinCount < 0 {
		return 0, errInvalidInput("assassin count cannot be negative, got %d", settings.AssassinCount)
	}

	total := dim * dim
	// First team in rotation order gets one extra card.
	teamCards := settings.TeamCount*settings.WordsPerTeam + 1
	neutral := total - teamCards - settings.AssassinCount
	if neutral < 0 {
		return 0, errInvalidInput("board of %d cards cannot hold %d team cards and %d assassins", total, teamCards, settings.AssassinCount)
	}

	return neutral, nil
}

// GenerateBoard selects dimension² unique words from src and pairs them with
// a uniformly shuffled key card. The first team in rotation order receives
// wordsPerTeam+1 cards, every other team wordsPerTeam, assassins exactly as
// configured, and the remainder is neutral.
func GenerateBoard(settings Settings, src WordSource) ([]string, []CardType, error) {
	neutral, err := checkDistribution(settings)
	if err != nil {
		return nil, nil, err
	}

	total := settings.Dimension() * settings.Dimension()
	words, err := src.Words(total)
	if err != nil {
		return nil, nil, errInvalidInput("word source: %v", err)
	}

	keyCard := make([]CardType, 0, total)
	for i, team := range activeTeams(settings.TeamCount) {
		count := settings.WordsPerTeam
		if i == 0 {
			count++
		}
		for j := 0; j < count; j++ {
			keyCard = append(keyCard, CardType(team))
		}
	}
	for i := 0; i < settings.AssassinCount; i++ {
		keyCard = append(keyCard, CardAssassin)
	}
	for i := 0; i < neutral; i++ {
		keyCard = append(keyCard, CardNeutral)
	}

	shuffleCards(keyCard)

	return words, keyCard, nil
}

// InitializeScores builds the per-team counters matching the card
// distribution, including the first-team bonus card.
func InitializeScores(settings Settings) map[Team]*Score {
	scores := make(map[Team]*Score, settings.TeamCount)
	for i, team := range activeTeams(settings.TeamCount) {
		total := settings.WordsPerTeam
		if i == 0 {
			total++
		}
		scores[team] = &Score{Total: total}
	}
	return scores
}
