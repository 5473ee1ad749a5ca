package remote

const (
	defaultBaseURL = "http://localhost:8000/frontend"
	errorBodyLimit = 512

	OpListGames     = "list_games"
	OpGetGame       = "get_game"
	OpGetGameDetail = "get_game_detail"
	opDecode        = "decode"
)
