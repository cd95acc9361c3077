package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Валидация и бизнес-правила
	ErrValidationFailed        = errors.New("validation failed")
	ErrTeamNameRequired        = errors.New("team name is required")
	ErrTournamentNameRequired  = errors.New("tournament name is required")
	ErrTournamentInvalidYear   = errors.New("tournament year must be positive")
	ErrTournamentInvalidFormat = errors.New("invalid tournament format")
	ErrGroupNameRequired       = errors.New("group name is required")
	ErrInvalidConference       = errors.New("conference must be one of AFC, NFC")
	ErrTooManyGroups           = errors.New("tournament already has the maximum number of groups")
	ErrConferenceFull          = errors.New("conference already has the maximum number of groups")
	ErrGroupFull               = errors.New("group already has the maximum number of teams")
	ErrInvalidScore            = errors.New("invalid match score")
	ErrInvalidMatchFilter      = errors.New("showMatches must be one of played, pending")
	ErrInvalidLogo             = errors.New("logo must be a png, jpeg or webp image")

	// Конфликты
	ErrTeamNameConflict       = errors.New("team name is already in use")
	ErrTeamInUse              = errors.New("team is assigned to a group and cannot be deleted")
	ErrTournamentNameConflict = errors.New("tournament with this name and year already exists")
	ErrGroupNameConflict      = errors.New("group name already exists in this tournament")
	ErrTeamAlreadyGrouped     = errors.New("team already belongs to a group of this tournament")
	ErrMatchesAlreadyCreated  = errors.New("matches have already been generated for this tournament")

	// Аутентификация
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Сущности
	ErrTeamNotFound       = errors.New("team not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrGroupTeamNotFound  = errors.New("team is not a member of this group")
	ErrMatchNotFound      = errors.New("match not found")

	// Внешние зависимости
	ErrStorageUnavailable = errors.New("file storage is not configured")
)
