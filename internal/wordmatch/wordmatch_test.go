package wordmatch

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type WordMatchTestSuite struct {
	suite.Suite
	matcher *Matcher
}

func (s *WordMatchTestSuite) SetupTest() {
	s.matcher = New(nil)
}

func TestWordMatchTestSuite(t *testing.T) {
	suite.Run(t, new(WordMatchTestSuite))
}

func (s *WordMatchTestSuite) TestRejectsMissingWord() {
	// "Two" is absent entirely, so the guess must be rejected
	s.False(s.matcher.HasAllSignificantWords("Two Under Par", "Under Par"))

	missing := s.matcher.MissingWords("Two Under Par", "Under Par")
	s.Equal([]string{"two"}, missing)
}

func (s *WordMatchTestSuite) TestAcceptsAllWordsAnyOrder() {
	s.True(s.matcher.HasAllSignificantWords("Two Under Par", "par under two"))
}

func (s *WordMatchTestSuite) TestAcceptsExtraWords() {
	s.True(s.matcher.HasAllSignificantWords("Two Under Par", "is it two under par maybe"))
}

func (s *WordMatchTestSuite) TestIgnoresArticles() {
	s.True(s.matcher.HasAllSignificantWords("A Piece of the Pie", "piece of pie"))
}

func (s *WordMatchTestSuite) TestToleratesSmallTypos() {
	// "undre" is one transposition pair (two edits) from "under"
	s.True(s.matcher.HasAllSignificantWords("Two Under Par", "two undre par"))

	// "pear" is within two edits of "par"
	s.True(s.matcher.HasAllSignificantWords("Two Under Par", "two under pear"))
}

func (s *WordMatchTestSuite) TestRejectsHeavyTypos() {
	s.False(s.matcher.HasAllSignificantWords("Two Under Par", "two xyzzy par"))
}

func (s *WordMatchTestSuite) TestEmptyGuess() {
	s.False(s.matcher.HasAllSignificantWords("Two Under Par", ""))
	s.True(s.matcher.HasAllSignificantWords("", "anything at all"))
}

func (s *WordMatchTestSuite) TestLevenshtein() {
	s.Equal(0, Levenshtein("kitten", "kitten"))
	s.Equal(3, Levenshtein("kitten", "sitting"))
	s.Equal(5, Levenshtein("", "holes"))
	s.Equal(5, Levenshtein("holes", ""))
	s.Equal(1, Levenshtein("par", "pear"))

	// symmetric
	s.Equal(Levenshtein("sunday", "saturday"), Levenshtein("saturday", "sunday"))
}

func (s *WordMatchTestSuite) TestCustomEditDistance() {
	strict := New(&Config{MaxEditDistance: 1})

	s.True(strict.HasAllSignificantWords("par", "pear"))
	s.False(strict.HasAllSignificantWords("par", "pearl"))
}
