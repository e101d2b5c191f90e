package services

import (
	"errors"
	"regexp"

	"gorm.io/gorm"

	"github.com/sumacommu/sumatest-sub000/models"
)

// ErrMatchNotFound covers both a missing record and a caller who is not a
// participant, so the response never leaks whether the match exists.
var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrUnknownCharacter   = errors.New("unknown character")
	ErrUnknownStage       = errors.New("unknown stage")
	ErrInvalidMiiMoves    = errors.New("invalid mii moves code")
	ErrCharacterNotChosen = errors.New("character not chosen yet")
	ErrSetupComplete      = errors.New("setup already complete")
)

// Each digit selects one of the three specials for its slot; at most four
// slots.
var miiMovesPattern = regexp.MustCompile(`^[1-3]{1,4}$`)

// SetupService walks a matched record through the post-match configuration
// flow: character, Mii special-move detail when the Mii Fighter slot was
// picked, then stage.
type SetupService struct {
	db *gorm.DB
}

func NewSetupService(db *gorm.DB) *SetupService {
	return &SetupService{
		db: db,
	}
}

// GetMatchFor loads a matched record on behalf of a participant.
func (s *SetupService) GetMatchFor(matchID, userID string) (*models.Match, error) {
	var match models.Match
	if err := s.db.First(&match, "id = ?", matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	if match.Status != models.MatchStatusMatched || !match.HasParticipant(userID) {
		return nil, ErrMatchNotFound
	}

	return &match, nil
}

// SelectCharacter records the character choice. Picking the Mii Fighter slot
// persists nothing: the flow moves to the special-move detail step and the
// choice is only written by SetMiiMoves. Any other character is persisted
// immediately and the flow moves to stage selection. The character may be
// re-selected until the stage is picked; after that the flow is closed.
func (s *SetupService) SelectCharacter(matchID, userID, characterID string) (*models.Match, error) {
	match, err := s.GetMatchFor(matchID, userID)
	if err != nil {
		return nil, err
	}

	if match.Stage != "" {
		return nil, ErrSetupComplete
	}

	if _, ok := models.CharacterName(characterID); !ok {
		return nil, ErrUnknownCharacter
	}

	if characterID == models.MiiFighterID {
		match.Character = models.MiiFighterID
		return match, nil
	}

	if err := s.db.Model(match).Update("character", characterID).Error; err != nil {
		return nil, err
	}
	match.Character = characterID
	return match, nil
}

// SetMiiMoves persists the Mii Fighter choice together with its special-move
// code.
func (s *SetupService) SetMiiMoves(matchID, userID, movesCode string) (*models.Match, error) {
	match, err := s.GetMatchFor(matchID, userID)
	if err != nil {
		return nil, err
	}

	if match.Stage != "" {
		return nil, ErrSetupComplete
	}

	if !miiMovesPattern.MatchString(movesCode) {
		return nil, ErrInvalidMiiMoves
	}

	err = s.db.Model(match).Updates(map[string]interface{}{
		"character": models.MiiFighterID,
		"mii_moves": movesCode,
	}).Error
	if err != nil {
		return nil, err
	}
	match.Character = models.MiiFighterID
	match.MiiMoves = movesCode
	return match, nil
}

// SelectStage persists the stage choice and completes the flow. A character
// must already be set; the stage step cannot be jumped to directly. Once the
// stage is written the setup is final.
func (s *SetupService) SelectStage(matchID, userID, stageID string) (*models.Match, error) {
	match, err := s.GetMatchFor(matchID, userID)
	if err != nil {
		return nil, err
	}

	if match.Stage != "" {
		return nil, ErrSetupComplete
	}
	if match.Character == "" {
		return nil, ErrCharacterNotChosen
	}
	if !models.ValidStage(stageID) {
		return nil, ErrUnknownStage
	}

	if err := s.db.Model(match).Update("stage", stageID).Error; err != nil {
		return nil, err
	}
	match.Stage = stageID
	return match, nil
}
