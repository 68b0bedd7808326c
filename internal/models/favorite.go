package models

// FavoriteLocation links a user to a location they favorited.
type FavoriteLocation struct {
	ID       int64    `json:"id"`
	User     User     `json:"user"`
	Location Location `json:"location"`
}

// FavoriteCharacter links a user to a character they favorited.
type FavoriteCharacter struct {
	ID        int64     `json:"id"`
	User      User      `json:"user"`
	Character Character `json:"character"`
}

// FavoriteEpisode links a user to an episode they favorited. Unlike the
// other two kinds it carries no nested user in its wire shape.
type FavoriteEpisode struct {
	ID      int64   `json:"id"`
	Episode Episode `json:"episode"`
}

// FavoriteSummary groups all of one user's favorites by kind.
type FavoriteSummary struct {
	Locations  []FavoriteLocation  `json:"favorite_locations"`
	Characters []FavoriteCharacter `json:"favorite_characters"`
	Episodes   []FavoriteEpisode   `json:"favorite_episodes"`
}
